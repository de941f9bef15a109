// Package metadata stores small key/value settings next to the vault, such
// as the last username used to log in. Values are never secret.
package metadata

import "context"

// KeyLastUsername remembers who logged in last so the login form can be
// prefilled.
const KeyLastUsername = "last_username"

type Repository interface {
	// Get returns "" for an absent key.
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value of key.
	Set(ctx context.Context, key, value string) error
}
