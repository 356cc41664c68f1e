package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"easel/internal/publish"
)

func newPublishCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var csvPath string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render the catalog and splice it into every target page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger := ctx.newLogger(cfg, cmd.ErrOrStderr())
			store, err := ctx.openHistory(cfg)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			if store != nil {
				defer store.Close()
			}

			publisher := publish.New(cfg, logger, store)
			summary, err := publisher.Run(cmd.Context(), publish.Options{
				DryRun:  dryRun,
				CSVPath: csvPath,
			})
			if err != nil {
				return err
			}

			printSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render and report without writing any files")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Catalog CSV path (overrides the configured path)")
	return cmd
}

func printSummary(cmd *cobra.Command, summary *publish.Summary) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	if summary.DryRun {
		fmt.Fprintln(out, "Dry run: no files were written")
	}
	fmt.Fprintf(out, "Published %d records (%d featured)\n", summary.TotalRecords, summary.FeaturedCount)

	keys := make([]string, 0, len(summary.CategoryCounts))
	for key := range summary.CategoryCounts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, fmt.Sprintf("%d", summary.CategoryCounts[key])})
	}
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable(
			[]string{"Category", "Records"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}

	targetRows := make([][]string, 0, len(summary.Targets))
	for _, target := range summary.Targets {
		targetRows = append(targetRows, []string{
			target.Path,
			yesNo(target.Updated),
			yesNo(target.StylesPatched),
			yesNo(target.ScriptPatched),
		})
	}
	if len(targetRows) > 0 {
		fmt.Fprintln(out, renderTable(
			[]string{"Target", "Updated", "Styles", "Script"},
			targetRows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
		))
	}

	for _, warning := range summary.Warnings {
		fmt.Fprintln(out, renderStatusLine("Warning", statusWarn, warning, colorize))
	}
}
