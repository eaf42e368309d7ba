package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/store"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		policyNames []string
		quantum     int
		format      string
		gantt       bool
		record      bool
	)

	cmd := &cobra.Command{
		Use:   "simulate [file]",
		Short: "Run scheduling policies over a process table or workload file",
		Long: "Reads processes from a table file, a YAML/JSON workload, or stdin (no file or \"-\")\n" +
			"and prints the result of each policy. All six policies run by default.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			policies, err := parsePolicies(policyNames)
			if err != nil {
				return err
			}
			reportFormat, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			set, fileQuantum, err := loader.Load(path, cmd.InOrStdin(), a.logger)
			if err != nil {
				return err
			}

			rr, prr := a.config.RoundRobinTimeQuantum, a.config.PriorityRoundRobinTimeQuantum
			if fileQuantum != 0 {
				rr, prr = fileQuantum, fileQuantum
			}
			if cmd.Flags().Changed("quantum") {
				rr, prr = quantum, quantum
			}

			sim := schedulers.NewSimulator(a.logger, rr, prr)
			sim.Limits = a.config.Limits()
			outcomes, err := sim.RunAll(set, policies)
			if err != nil {
				return err
			}

			results := make([]responses.ScheduleResponse, 0, len(outcomes))
			for _, outcome := range outcomes {
				results = append(results, schedulers.GenerateResponse(outcome))
			}

			if record {
				if err := a.record(cmd.Context(), set, outcomes, results); err != nil {
					return err
				}
			}
			return report.Write(cmd.OutOrStdout(), results, report.Options{Format: reportFormat, Gantt: gantt})
		},
	}

	cmd.Flags().StringSliceVarP(&policyNames, "policy", "p", nil, "Policies to run (fcfs, sjf, srt, rr, priority, priority-rr); default all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Time quantum for both round robin variants (overrides config)")
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatPlain), "Output format (plain, table, json)")
	cmd.Flags().BoolVar(&gantt, "gantt", false, "Print the Gantt timeline of each policy")
	cmd.Flags().BoolVar(&record, "record", false, "Store every run in the history database")
	return cmd
}

func parsePolicies(names []string) ([]schedulers.Policy, error) {
	if len(names) == 0 {
		return schedulers.AllPolicies(), nil
	}
	policies := make([]schedulers.Policy, 0, len(names))
	for _, name := range names {
		p, err := schedulers.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}

// record stores one run per outcome.
func (a *app) record(ctx context.Context, set core.ProcessSet, outcomes []*schedulers.Outcome, results []responses.ScheduleResponse) error {
	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	for i, outcome := range outcomes {
		run := &store.Run{
			Policy:      string(outcome.Policy),
			TimeQuantum: outcome.TimeQuantum,
			Request:     requests.FromProcessSet(set, outcome.TimeQuantum),
			Result:      results[i],
		}
		if err := st.CreateRun(ctx, run); err != nil {
			return fmt.Errorf("record %s: %w", outcome.Policy, err)
		}
		a.logger.Info("run recorded", "policy", outcome.Policy, "id", run.ID)
	}
	return nil
}

func (a *app) openStore(ctx context.Context) (*store.SQLiteStore, error) {
	if err := a.requireDB(); err != nil {
		return nil, err
	}
	st, err := store.NewSQLiteStore(a.config.DBPath, a.logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}
