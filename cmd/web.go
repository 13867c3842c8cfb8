/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/swasthya/engine"
	"github.com/humaidq/swasthya/routes"
)

const shutdownTimeout = 10 * time.Second

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the duplicate-check API server",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Value:   "8080",
			Sources: cli.EnvVars("PORT"),
			Usage:   "the web server port",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string holding the test registry (optional)",
		},
		&cli.StringFlag{
			Name:    "runtime-env",
			Sources: cli.EnvVars(runtimeEnvVar),
			Usage:   "development or production",
		},
	}, engineFlags...),
	Action: start,
}

func start(ctx context.Context, cmd *cli.Command) error {
	if err := configureLogging(cmd, cmd.String("runtime-env")); err != nil {
		return err
	}

	reg, store, err := loadRegistry(ctx, cmd.String("database-url"), cmd.String("registry-file"))
	if err != nil {
		return err
	}

	opts := routes.Options{
		Version: cmd.Root().Version,
	}

	// A nil *db.Store must not become a non-nil Pinger.
	if store != nil {
		defer store.Close()
		opts.Database = store
	}

	eng := engine.New(reg, engineOptions(cmd))

	f := routes.NewRouter(eng, opts)

	port := cmd.String("port")

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", port),
		Handler:      f,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     requestStdLogger,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		appLogger.Info("Starting web server", "port", port, "tests", len(reg.Definitions()), "aliases", len(reg.Aliases()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("web server failed: %w", err)

	case <-ctx.Done():
		appLogger.Info("Shutting down web server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down web server: %w", err)
		}

		return nil
	}
}
