package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/lovetype/internal/api"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classifier over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (env LOVETYPE_HTTP_ADDR, default :8000)")
	cmd.Flags().Int("rate-limit", 0, "requests per minute per client IP on /score, 0 disables (env LOVETYPE_RATE_LIMIT, default 120)")
	cmd.Flags().StringSlice("cors-origins", nil, "allowed CORS origins (env LOVETYPE_CORS_ORIGINS, default *)")
	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests for up to the configured shutdown timeout.
func (a *app) serve(ctx context.Context) error {
	if err := a.lt.Preload(); err != nil {
		slog.Warn("reference data incomplete, affected requests will fail until it is fixed",
			"data_dir", a.cfg.DataDir, "error", err)
	}

	srv := &http.Server{
		Addr: a.cfg.HTTP.Addr,
		Handler: api.NewRouter(a.lt, api.Config{
			CORSOrigins: a.cfg.HTTP.CORSOrigins,
			RateLimit:   a.cfg.HTTP.RateLimit,
			Logger:      slog.Default(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("lovetype: listening", "addr", srv.Addr, "data_dir", a.cfg.DataDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("lovetype: shutting down", "timeout", a.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
