package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent publish runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			store, err := ctx.openHistory(cfg)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			if store == nil {
				fmt.Fprintln(out, "History recording is disabled")
				return nil
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list publish runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No publish runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				detail := run.Error
				if detail == "" {
					detail = fmt.Sprintf("%d records, %d featured", run.TotalRecords, run.FeaturedCount)
				}
				rows = append(rows, []string{
					run.StartedAt.Local().Format(time.DateTime),
					run.Status,
					fmt.Sprintf("%d", run.TargetsUpdated),
					detail,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Status", "Targets", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	return cmd
}
