package store

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Dialect abstracts the backend-specific pieces of SQL handling so the
// repository code stays identical across relational backends: the
// placeholder style used when building queries, the goose dialect name
// used for migrations, and the detection of unique-constraint violations
// in driver errors.
type Dialect interface {
	// Name returns a short human-readable dialect label ("postgres", "sqlite").
	Name() string

	// GooseDialect returns the dialect string accepted by goose.SetDialect.
	GooseDialect() string

	// Placeholder returns the squirrel placeholder format for this backend
	// ($1, $2, ... for PostgreSQL; ? for SQLite).
	Placeholder() sq.PlaceholderFormat

	// IsUniqueViolation reports whether err (possibly wrapped) is the
	// backend's unique-constraint violation.
	IsUniqueViolation(err error) bool
}

type postgresDialect struct{}

// NewPostgresDialect returns the [Dialect] for PostgreSQL backends.
func NewPostgresDialect() Dialect {
	return postgresDialect{}
}

func (postgresDialect) Name() string                   { return "postgres" }
func (postgresDialect) GooseDialect() string           { return "pgx" }
func (postgresDialect) Placeholder() sq.PlaceholderFormat { return sq.Dollar }

// IsUniqueViolation unwraps err to a *pgconn.PgError and compares its code
// against pgerrcode.UniqueViolation (23505).
func (postgresDialect) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

type sqliteDialect struct{}

// NewSQLiteDialect returns the [Dialect] for SQLite backends.
func NewSQLiteDialect() Dialect {
	return sqliteDialect{}
}

func (sqliteDialect) Name() string                   { return "sqlite" }
func (sqliteDialect) GooseDialect() string           { return "sqlite3" }
func (sqliteDialect) Placeholder() sq.PlaceholderFormat { return sq.Question }

// IsUniqueViolation unwraps err to a sqlite3.Error and checks the extended
// code for a UNIQUE (or primary-key) constraint failure.
func (sqliteDialect) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
