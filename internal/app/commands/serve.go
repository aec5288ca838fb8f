package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"stock_synth/internal/app/di"
	"stock_synth/internal/app/router"
	"stock_synth/internal/platform/scheduler"
	"stock_synth/internal/platform/seed"
)

func newServeCommand() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Start the dashboard API server.

The workspace purge job runs on WORKSPACE_PURGE_CRON inside this process.
SIGINT/SIGTERM shut the server down gracefully within SERVER_SHUTDOWN_TIMEOUT.

Examples:
  stocksynth serve             # listen on SERVER_PORT (default 8080)
  stocksynth serve --port 9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides SERVER_PORT)")
	return cmd
}

func runServe(ctx context.Context, port int) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	fixtures, err := seed.Default()
	if err != nil {
		return err
	}
	payload, err := fixtures.PredictionPayload()
	if err != nil {
		return err
	}

	app, err := di.NewApp(cfg, st.db, st.rdb, payload)
	if err != nil {
		return err
	}

	sched := scheduler.NewScheduler(ctx, app.Workspaces)
	if err := sched.RegisterPurge(cfg.Workspace.PurgeCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.NewRouter(app.Handlers, app.Options),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
