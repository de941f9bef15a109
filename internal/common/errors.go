// Package common defines shared sentinel errors and small helpers used across
// the passvault packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Configuration errors.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrUnsupportedCipher = errors.New("unsupported cipher suite")
)
