package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/logger"
)

// Storages aggregates every repository the application uses, plus the
// shared connection handle for lifecycle management.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
}

// NewStorages opens the database selected by cfg.Driver, applies pending
// migrations, and wires the repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
	}, nil
}
