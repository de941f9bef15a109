// Package models defines the records persisted by the vault store and the
// list helpers (ordering, search, sentinels) shared by the session views.
package models

import "time"

// User is an operator account. It is created at registration and never
// updated by the vault.
type User struct {
	// ID is an opaque identifier (uuid).
	ID string

	// Username is unique across the store.
	Username string

	// PasswordHash is a PHC-encoded argon2id hash of the login password.
	PasswordHash string

	// KeySalt salts the derivation of the entry encryption key.
	KeySalt []byte

	// Cipher names the AEAD suite used for this user's entry secrets.
	Cipher string

	CreatedAt time.Time
}

// VaultEntry is one stored credential. Secret holds nonce || ciphertext.
type VaultEntry struct {
	ID       string
	OwnerID  string
	Account  string
	Username string
	Secret   []byte

	// Sentinel marks a display-only placeholder row; it is never persisted
	// and ignores Enter.
	Sentinel bool
}
