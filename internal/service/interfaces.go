package service

import (
	"context"

	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/models"
)

// UserService carries the business rules of the user CRUD operations:
// field-length validation and the interpretation of empty results.
// Persistence errors pass through unchanged so the transport layer can
// classify them with errors.Is.
type UserService interface {
	// GetUser returns the single row matching login, or
	// [store.ErrUserNotFound] when no such user exists.
	GetUser(ctx context.Context, login string) (store.Row, error)

	// GetAllUsers returns every user row, or [store.ErrUserNotFound]
	// when the table is empty.
	GetAllUsers(ctx context.Context) ([]store.Row, error)

	// CreateUser validates field lengths and inserts the user.
	CreateUser(ctx context.Context, user models.User) error

	// UpdateUser validates field lengths and replaces all fields of the
	// user identified by login.
	UpdateUser(ctx context.Context, login string, user models.User) error

	// DeleteUser removes the user identified by login.
	DeleteUser(ctx context.Context, login string) error
}

// AppInfoService reports application metadata such as the running version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
