package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"imsweather.app/internal/app"
	"imsweather.app/internal/config"
	"imsweather.app/pkg/logger"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger.NewWithLevel(logger.ParseLevel(cfg.Logging.Level)).Logger)

	// Create application with dependency injection
	application, err := app.NewApplication(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	slog.Info("Configuration loaded successfully")
	slog.Info("Server configuration",
		"port", cfg.Server.Port,
		"imsBaseURL", cfg.IMS.BaseURL,
		"cache", cfg.Cache.Type.String(),
		"database", cfg.Database.Driver.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting IMS Weather service...")
		errCh <- application.Start(ctx)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal...")
	case err := <-errCh:
		if err != nil {
			slog.Error("Failed to start application", "error", err)
			exitCode = 1
		}
	}

	// Give the application time to shut down gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
		exitCode = 1
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
