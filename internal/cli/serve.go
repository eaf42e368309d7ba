package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.config.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var st store.Store
			if a.config.DBPath != "" {
				sqlite, err := a.openStore(ctx)
				if err != nil {
					return err
				}
				defer sqlite.Close()
				st = sqlite
			}

			server := api.NewApp(api.NewSchedulerHandlerImpl(a.config, st, a.logger), a.logger)
			go func() {
				<-ctx.Done()
				a.logger.Info("shutting down")
				_ = server.Shutdown()
			}()

			addr := fmt.Sprintf(":%d", a.config.Port)
			a.logger.Info("listening", "addr", addr, "history", st != nil)
			return server.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
	return cmd
}

