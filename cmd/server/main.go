// Package main implements the entry point for the task board API
// server, which exposes users and tasks as REST resources backed by
// MongoDB.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/taskboard/api/internal/config"
	"github.com/taskboard/api/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components:
// logging, the database connection and the stores.
// Returns the assembled application and any initialization error.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, err
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	return newApplication(ctx, cfg, appLogger)
}
