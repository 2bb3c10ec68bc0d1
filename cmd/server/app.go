package main

import (
	"context"
	"log/slog"

	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/taskboard/api/internal/config"
	"github.com/taskboard/api/internal/platform/mongo"
	"github.com/taskboard/api/internal/store"
)

// application holds the wired dependencies shared across the server's
// lifetime: configuration, the root logger, the database client and the
// per-resource stores.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	dbClient  *driver.Client
	userStore store.UserStore
	taskStore store.TaskStore
}

// newApplication connects to the database and builds the store layer.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	client, db, err := mongo.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	logger.Info("Connected to MongoDB", "database", cfg.Database.Name)

	return &application{
		config:    cfg,
		logger:    logger,
		dbClient:  client,
		userStore: mongo.NewUserStore(db, cfg.Database.Timeout),
		taskStore: mongo.NewTaskStore(db, cfg.Database.Timeout),
	}, nil
}

// cleanup releases resources held by the application on shutdown.
func (app *application) cleanup() {
	if app.dbClient != nil {
		if err := app.dbClient.Disconnect(context.Background()); err != nil {
			app.logger.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}
}
