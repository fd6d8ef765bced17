// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/workspace-service/internal/config"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring/prometheus"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/version"
	"github.com/canonical/workspace-service/pkg/container"
	"github.com/canonical/workspace-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := config.Load(envFile)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("workspace-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, "workspace-service", version.Version, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	b, err := newBackend(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer b.close()

	services, invites := newServices(specs, b.storage, tracer, monitor, logger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if specs.ReconcileInterval > 0 {
		reconciler := container.NewReconciler(b.storage, invites, tracer, monitor, logger)
		logger.Infof("Starting reconciler every %v", specs.ReconcileInterval)
		go reconciler.Run(ctx, specs.ReconcileInterval)
	}

	router := web.NewRouter(services, b.checker, specs.CORSAllowedOrigins, tracer, monitor, logger)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: specs.HTTPWriteTimeout,
		ReadTimeout:  specs.HTTPReadTimeout,
		IdleTimeout:  specs.HTTPIdleTimeout,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c
	stop()

	// Create a deadline to wait for.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	if err := tracer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("failed to flush traces: %v", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
