// Package mongodb implements the persistence layer on MongoDB.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"tracker/config"
	"tracker/internal/domain/lifecycle"
	"tracker/internal/errors"
)

const (
	accountsCollection  = "accounts"
	employeesCollection = "employees"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database.
// The connection is verified and indexes are ensured when the application starts.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil {
		return nil, errors.New("mongo configuration is required")
	}

	clientOpts := options.Client().ApplyURI(params.Config.Mongo.URI)
	if params.Config.Storage.Timeout > 0 {
		clientOpts.SetTimeout(params.Config.Storage.Timeout)
	}

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if params.Config.Storage.AutoMigrate {
				if err := EnsureIndexes(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("MongoDB indexes ensured", slog.String("database", db.Name()))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique email indexes and the query indexes of both collections.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(accountsCollection).Indexes().CreateMany(ctx, accountIndexes); err != nil {
		return errors.Wrap(err, "failed to create account indexes")
	}
	if _, err := db.Collection(employeesCollection).Indexes().CreateMany(ctx, employeeIndexes); err != nil {
		return errors.Wrap(err, "failed to create employee indexes")
	}

	return nil
}

// withStoreTimeout bounds a single round trip to the database.
func withStoreTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, timeout)
}

func storeTimeoutOf(cfg *config.Config) time.Duration {
	if cfg == nil {
		return 0
	}

	return cfg.Storage.Timeout
}
