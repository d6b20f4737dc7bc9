package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/angeloszaimis/typesafe-env/config"
	"github.com/angeloszaimis/typesafe-env/env"
	"github.com/angeloszaimis/typesafe-env/internal/httpserver"
	"github.com/angeloszaimis/typesafe-env/internal/metrics"
	"github.com/angeloszaimis/typesafe-env/internal/startup"
	"github.com/angeloszaimis/typesafe-env/pkg/logger"
)

const serviceName = "envkit"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   serviceName,
		Short: "envkit validates the server and client environment before anything runs",
		Long: `envkit validates environment variables in two trust domains.

Server variables (NODE_ENV, PORT, COOKIE_SECRET) are sensitive and never leave
the server. Client variables (NODE_ENV, NEXT_PUBLIC_APP_URL) are safe to expose.

  envkit check    # validate and exit non-zero on any missing or invalid variable
  envkit serve    # validate, then serve /api/env, /healthz and /metrics`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd(), newServeCmd())

	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the environment and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := bootstrapLogger()
			if err != nil {
				return err
			}

			startup.MustCheck(env.New(env.OS(), env.WithLogger(log)), log)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Validate the environment, then serve the status endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", slog.Any("err", err))
				return err
			}

			log := logger.New(cfg.LogLevel, cfg.LogSource, cfg.NodeEnv)
			collector := metrics.NewCollector(1024, log)
			e := env.New(env.OS(), env.WithLogger(log), env.WithObserver(collector.ObserveEnv))

			startup.MustCheck(e, log)

			return serve(cmd.Context(), cfg, e, collector, log)
		},
	}
}

func bootstrapLogger() (*slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		return nil, err
	}
	return logger.New(cfg.LogLevel, cfg.LogSource, cfg.NodeEnv), nil
}

// serve starts collector and blocks until the server stops. Events emitted
// before the call stay buffered in collector.
func serve(parent context.Context, cfg *config.Config, e *env.Env, collector *metrics.Collector, log *slog.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server, err := e.ServerEnv()
	if err != nil {
		return err
	}

	collector.Start(ctx)

	addr := listenAddr(cfg.Host, server, cfg.DefaultPort)
	srv, err := httpserver.New(addr, setupRouter(log, e, collector))
	if err != nil {
		log.Error("Failed to create server", slog.String("addr", addr), slog.Any("err", err))
		return err
	}

	srvErrCh := make(chan error, 1)

	go func() {
		log.Info("Serving environment status", slog.String("addr", addr))
		srvErrCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
			return err
		}
	case err := <-srvErrCh:
		if err != nil {
			log.Error("Error starting server", slog.Any("err", err))
			return fmt.Errorf("serve %s: %w", addr, err)
		}
	}

	return nil
}

// listenAddr uses the validated PORT and falls back to the configured default.
func listenAddr(host string, server *env.ServerEnv, fallback int) string {
	port := fallback
	if p, ok := server.Port(); ok {
		port = p
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}
