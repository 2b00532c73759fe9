// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the user REST API.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-api/models"
)

// ServerAdapter defines transport-agnostic communication with the user API
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// GetUser fetches the user identified by login. Returns [ErrNotFound]
	// (wrapped) when no such user exists.
	GetUser(ctx context.Context, login string) (models.User, error)

	// GetAllUsers fetches every registered user. Returns [ErrNotFound]
	// (wrapped) when the server reports an empty table.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// CreateUser registers a new user. Returns [ErrConflict] (wrapped) when
	// the login is already taken and [ErrBadRequest] (wrapped) when the
	// server rejects the field values.
	CreateUser(ctx context.Context, user models.User) error

	// UpdateUser replaces all fields of the user identified by login.
	// Returns [ErrNotFound] (wrapped) when no such user exists.
	UpdateUser(ctx context.Context, login string, user models.User) error

	// DeleteUser removes the user identified by login. Returns [ErrNotFound]
	// (wrapped) when no such user exists.
	DeleteUser(ctx context.Context, login string) error

	// GetServerVersion fetches the build version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
