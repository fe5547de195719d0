package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/wichananm65/users-api/internal/config"
	"github.com/wichananm65/users-api/internal/database"
	"github.com/wichananm65/users-api/internal/logging"
	"github.com/wichananm65/users-api/internal/server"
	"github.com/wichananm65/users-api/internal/user"
)

type store interface {
	user.Repository
	server.Pinger
}

func main() {
	configPath := flag.String("config", "", "optional path to a config file (yaml, json or toml)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "users-api: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeDB, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	userHandler := user.NewHandler(user.NewService(repo, logger), logger)

	app := server.New(cfg.Server, logger, repo)
	userHandler.RegisterRoutes(app)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Server.Addr, "driver", cfg.Database.Driver)
		errCh <- app.Listen(cfg.Server.Addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore returns the repository for the configured driver and a func that
// releases it.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store, func(), error) {
	if cfg.Driver == "memory" {
		logger.Warn("using in-memory store; data is lost on exit")
		return user.NewInMemoryRepository(nil), func() {}, nil
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CreateSchema {
		if err := database.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error("close database", "error", err)
		}
	}
	return user.NewSQLRepository(db), closeDB, nil
}
