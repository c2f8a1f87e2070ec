package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinikit/internal/app/server/api"
	"clinikit/internal/config"
	"clinikit/internal/infrastructure/storage/sqlite"
	"clinikit/internal/utils/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:           "clinikit-server",
	Short:         "CliniKit - clinic management backend",
	Long:          `CliniKit serves the clinic management API: authentication, patient records, user permissions and the appointment book over a single SQLite database.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func run(_ *cobra.Command, _ []string) error {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	storage, err := sqlite.New(cfg.DB.DatabasePath, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close()

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: api.New(storage, cfg, log),
	}

	if cfg.Env == config.EnvLocal {
		color.Green("CliniKit listening on %s", cfg.Server.RunAddress)
		color.Yellow("database: %s", cfg.DB.DatabasePath)
	}
	log.Info("starting server", slog.String("address", cfg.Server.RunAddress))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
