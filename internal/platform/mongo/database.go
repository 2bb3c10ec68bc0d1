// Package mongo implements the store interfaces on top of MongoDB using
// the official driver.
package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/taskboard/api/internal/config"
)

// Collection names.
const (
	usersCollection = "users"
	tasksCollection = "tasks"
)

// Connect establishes a client connection to the configured MongoDB
// deployment and verifies it with a ping. The caller owns the returned
// client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, errors.Wrap(err, "connecting to mongodb")
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		// Best effort teardown of the half-open client.
		_ = client.Disconnect(context.Background())
		return nil, nil, errors.Wrap(err, "pinging mongodb")
	}

	return client, client.Database(cfg.Name), nil
}

// opContext bounds a single store operation. A zero timeout means the
// caller's context is used as is.
func opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
