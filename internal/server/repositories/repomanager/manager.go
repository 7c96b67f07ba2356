// Package repomanager vends the user repository for the configured storage
// backend and owns the backend's connection and schema setup.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usermgmt/internal/server/config"
	"github.com/dmitrijs2005/usermgmt/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Close() error
}

// New opens the backend selected by cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		db, err := OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return NewPostgresRepositoryManager(db), nil
	case config.StorageDynamoDB:
		return NewDynamoDBRepositoryManager(ctx, DynamoDBOptions{
			Region:     cfg.AWSRegion,
			Endpoint:   cfg.DynamoDBEndpoint,
			Table:      cfg.UserTable,
			EmailIndex: cfg.UserEmailIndex,
		})
	case config.StorageMemory:
		return NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
