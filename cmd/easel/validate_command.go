package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"easel/internal/catalog"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := cfg.Paths.CSVPath
			if csvPath != "" {
				path = csvPath
			}
			records, err := catalog.Load(path, cfg.Gallery.Affirmative)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			result := catalog.Validate(cfg, records)
			for _, warning := range result.Warnings() {
				fmt.Fprintln(out, renderStatusLine("Warning", statusWarn, warning.String(), colorize))
			}
			for _, violation := range result.Errors() {
				fmt.Fprintln(out, renderStatusLine("Error", statusError, violation.String(), colorize))
			}
			if result.Failed() {
				return fmt.Errorf("catalog invalid: %d violation(s)", len(result.Errors()))
			}

			featured := len(catalog.Featured(records))
			fmt.Fprintf(out, "Catalog valid: %d records (%d featured)\n", len(records), featured)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Catalog CSV path (overrides the configured path)")
	return cmd
}
