package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"easel/internal/catalog"
	"easel/internal/render"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var csvPath string
	var includeScript bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the rendered gallery markup without touching any page",
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
			result := catalog.Validate(cfg, records)
			if result.Failed() {
				for _, violation := range result.Errors() {
					fmt.Fprintln(cmd.ErrOrStderr(), violation.String())
				}
				return fmt.Errorf("catalog invalid: %d violation(s)", len(result.Errors()))
			}

			renderer, err := render.New(cfg)
			if err != nil {
				return err
			}
			frag, err := renderer.Render(records)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, frag.Sections())
			if includeScript {
				fmt.Fprintln(out, renderer.ScriptBlock())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Catalog CSV path (overrides the configured path)")
	cmd.Flags().BoolVar(&includeScript, "script", false, "Also print the gallery tab script")
	return cmd
}
