package cli

import (
	"time"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/report"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			rows := make([]report.HistoryRow, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, report.HistoryRow{
					ID:                    run.ID,
					Policy:                run.Policy,
					TimeQuantum:           run.TimeQuantum,
					Processes:             len(run.Request.Jobs),
					AverageWaitingTime:    run.Result.AverageWaitingTime,
					AverageTurnAroundTime: run.Result.AverageTurnAroundTime,
					CreatedAt:             run.CreatedAt.Format(time.RFC3339),
				})
			}
			report.WriteHistory(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	return cmd
}
