// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-user-api/models"
)

const usersTable = "usuario"

// userColumns is the canonical column order of the usuario table.
var userColumns = []string{"nome", "login", "senha"}

// buildSelectUserByLoginQuery builds the parameter-bound lookup of a single
// user by login.
func buildSelectUserByLoginQuery(d Dialect, login string) (string, []any, error) {
	query, args, err := sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		PlaceholderFormat(d.Placeholder()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectAllUsersQuery builds the listing of every user row.
func buildSelectAllUsersQuery(d Dialect) (string, []any, error) {
	query, args, err := sq.Select(userColumns...).
		From(usersTable).
		PlaceholderFormat(d.Placeholder()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertUserQuery builds the INSERT for a new user. Uniqueness of the
// login is left to the table's UNIQUE constraint; the caller maps the
// resulting driver error through [Dialect.IsUniqueViolation].
func buildInsertUserQuery(d Dialect, user models.User) (string, []any, error) {
	query, args, err := sq.Insert(usersTable).
		Columns(userColumns...).
		Values(user.Nome, user.Login, user.Senha).
		PlaceholderFormat(d.Placeholder()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery builds the UPDATE that replaces all three fields of
// the user currently identified by login.
func buildUpdateUserQuery(d Dialect, login string, user models.User) (string, []any, error) {
	query, args, err := sq.Update(usersTable).
		Set("nome", user.Nome).
		Set("login", user.Login).
		Set("senha", user.Senha).
		Where(sq.Eq{"login": login}).
		PlaceholderFormat(d.Placeholder()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteUserQuery builds the DELETE of the user identified by login.
func buildDeleteUserQuery(d Dialect, login string) (string, []any, error) {
	query, args, err := sq.Delete(usersTable).
		Where(sq.Eq{"login": login}).
		PlaceholderFormat(d.Placeholder()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
