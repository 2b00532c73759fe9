package store

import (
	"database/sql"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/migrations"
)

// DB wraps an open database/sql connection pool together with the dialect
// of the backend it talks to. The dialect supplies the placeholder format
// for query building and the driver-specific unique-violation check, which
// is everything the rest of the package needs to know about the backend.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// Dialect returns the SQL dialect of the underlying backend.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all pending schema migrations embedded in the migrations
// package, using the goose dialect that matches the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.GooseDialect())
}
