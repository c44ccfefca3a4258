package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plainterms/plainterms/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		RunE:  runServe,
	}
	cmd.Flags().String("port", "", "listen port (overrides PORT)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if a.cfg.Dev() && a.cfg.TemplateDir != "" {
		stopWatch, err := a.render.Watch(a.log)
		if err != nil {
			return err
		}
		defer stopWatch()
	}

	port, _ := cmd.Flags().GetString("port")
	if port == "" {
		port = a.cfg.Port
	}

	srv := server.New(a.db, a.render, a.log)
	httpServer := &http.Server{
		Addr:    ":" + port,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	a.log.Info("server started", zap.String("addr", httpServer.Addr), zap.String("env", a.cfg.Env))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	a.log.Info("server stopped")
	return nil
}
