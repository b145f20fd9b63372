package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/petal-labs/sous/server"
)

func (a *App) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chat backend server",
		Long: `Run the HTTP chat backend.

The server exposes POST /v1/chat for chat turns and GET /healthz for
liveness. It refuses to start without a provider API key.`,
		RunE: a.runServe,
	}

	cmd.Flags().StringVar(&a.serveAddr, "addr", "", "listen address (overrides listen_addr in config)")

	return cmd
}

func (a *App) runServe(cmd *cobra.Command, args []string) error {
	logger := a.logger()

	orchestrator, err := a.buildOrchestrator(logger)
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	addr := a.serveAddr
	if addr == "" {
		addr = a.cfg.ListenAddr
	}

	srv := server.New(addr, orchestrator, server.WithLogger(logger))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
