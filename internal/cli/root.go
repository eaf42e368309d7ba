package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/logging"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	debug      bool
	logLevel   string
	logFormat  string
	dbPath     string

	config *config.SchedulerConfig
	logger *slog.Logger
}

// NewRootCmd creates the root cobra command for the cpusched CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cpusched",
		Short: "Deterministic CPU scheduling simulator",
		Long: "cpusched simulates FCFS, SJF, SRT, Round Robin, non-preemptive Priority and\n" +
			"preemptive Priority with Round Robin over a logical clock.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default ./config.yaml if present)")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format (text, json)")
	flags.StringVar(&a.dbPath, "db", "", "SQLite database for run history")

	root.AddCommand(
		newSimulateCmd(a),
		newServeCmd(a),
		newHistoryCmd(a),
	)
	return root
}

// init loads config and applies flag overrides on top of it.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	if flags.Changed("db") {
		cfg.DBPath = a.dbPath
	}

	a.config = cfg
	a.logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
	return nil
}

func (a *app) requireDB() error {
	if a.config.DBPath == "" {
		return errors.New("no database configured: set --db or database.path")
	}
	return nil
}
