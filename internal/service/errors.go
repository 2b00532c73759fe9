package service

import "errors"

var (
	// ErrFieldTooLong is returned when nome exceeds 50 characters or
	// login/senha exceed 30 characters.
	ErrFieldTooLong = errors.New("'nome' must not be longer than 50 characters, 'login' and 'senha' must not be longer than 30 characters")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// configuration carries no version string.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
