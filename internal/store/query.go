package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-user-api/internal/logger"
)

// Executor is the narrow capability the data-access layer needs from a
// relational backend: run a row-returning query and run a statement.
// *sql.DB, *sql.Tx, and [*DB] all satisfy it, so the same code path works
// against any backend (and inside or outside a transaction) without caring
// which concrete driver sits underneath.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Row is a single backend-agnostic result row: the column names in their
// native order plus a textual value per column. NULL columns map to "".
type Row struct {
	Columns []string
	Values  map[string]string
}

// Get returns the textual value of the named column, or "" if the column
// is not present in the row.
func (r Row) Get(column string) string {
	return r.Values[column]
}

// QueryOutcome reports the effect of a non-query statement.
type QueryOutcome struct {
	RowsAffected int64
}

// DBError is the uniform error shape returned by [Fetch] and [Exec].
// Callers see every backend failure (connectivity, syntax, constraint)
// through this one type; the wrapped cause remains reachable for
// driver-specific inspection via errors.As (see [Dialect.IsUniqueViolation]).
type DBError struct {
	Op  string
	Err error
}

func (e *DBError) Error() string {
	return fmt.Sprintf("db %s: %v", e.Op, e.Err)
}

func (e *DBError) Unwrap() error {
	return e.Err
}

// Fetch issues the query against the executor and returns every resulting
// row in backend-agnostic form. The query must be fully formed; args are
// bound by the driver. Any failure is returned as a *DBError.
func Fetch(ctx context.Context, ex Executor, query string, args ...any) ([]Row, error) {
	log := logger.FromContext(ctx)

	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "store.Fetch").Str("query", query).Msg("query failed")
		return nil, &DBError{Op: "fetch", Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		log.Err(err).Str("func", "store.Fetch").Msg("reading column names failed")
		return nil, &DBError{Op: "fetch", Err: err}
	}

	results := make([]Row, 0, 8)

	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if scanErr := rows.Scan(dest...); scanErr != nil {
			log.Err(scanErr).Str("func", "store.Fetch").Msg("scanning row failed")
			return nil, &DBError{Op: "fetch", Err: scanErr}
		}

		row := Row{
			Columns: columns,
			Values:  make(map[string]string, len(columns)),
		}
		for i, col := range columns {
			if values[i].Valid {
				row.Values[col] = values[i].String
			} else {
				row.Values[col] = ""
			}
		}

		results = append(results, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "store.Fetch").Msg("rows iteration failed")
		return nil, &DBError{Op: "fetch", Err: rowsErr}
	}

	return results, nil
}

// Exec issues a non-query statement against the executor and returns the
// number of rows it affected. Any failure is returned as a *DBError.
func Exec(ctx context.Context, ex Executor, query string, args ...any) (QueryOutcome, error) {
	log := logger.FromContext(ctx)

	result, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "store.Exec").Str("query", query).Msg("statement failed")
		return QueryOutcome{}, &DBError{Op: "exec", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "store.Exec").Msg("reading affected row count failed")
		return QueryOutcome{}, &DBError{Op: "exec", Err: err}
	}

	return QueryOutcome{RowsAffected: affected}, nil
}
