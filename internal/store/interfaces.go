package store

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// UserRepository is the data-access surface for the usuario table.
//
// Reads return backend-agnostic [Row] values (column order preserved) so
// the transport layer can render them either as typed JSON or as a generic
// column dump without re-querying.
type UserRepository interface {
	// FindByLogin returns the rows whose login column matches login.
	// An empty slice means no such user; that is not an error here.
	FindByLogin(ctx context.Context, login string) ([]Row, error)

	// FindAll returns every user row.
	FindAll(ctx context.Context) ([]Row, error)

	// Create inserts a new user. A duplicate login yields
	// [ErrLoginAlreadyExists].
	Create(ctx context.Context, user models.User) error

	// Update replaces all three fields of the user identified by login.
	// Zero affected rows yields [ErrUserNotFound]; a new login that
	// collides with another user yields [ErrLoginAlreadyExists].
	Update(ctx context.Context, login string, user models.User) error

	// Delete removes the user identified by login. Zero affected rows
	// yields [ErrUserNotFound].
	Delete(ctx context.Context, login string) error
}
