// Package cryptox holds the cryptographic primitives used by passvault:
// argon2id password hashing and key derivation, HKDF key expansion and
// AEAD sealing of single fields in the nonce||ciphertext layout.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// NonceSize is the length of the random nonce prepended to every blob (96 bits).
const NonceSize = 12

// KeySize is the length of every symmetric key handled here.
const KeySize = 32

var (
	ErrTooShort             = errors.New("ciphertext too short")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidEncoding      = errors.New("plaintext is not valid utf-8")
	ErrUnknownSuite         = errors.New("unknown cipher suite")
)

// Suite names the AEAD algorithm used to seal entry secrets.
type Suite string

const (
	SuiteAES256GCM        Suite = "aes-256-gcm"
	SuiteChaCha20Poly1305 Suite = "chacha20-poly1305"
)

// ParseSuite validates a suite name coming from configuration or storage.
func ParseSuite(s string) (Suite, error) {
	switch Suite(s) {
	case SuiteAES256GCM, SuiteChaCha20Poly1305:
		return Suite(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSuite, s)
}

// NewAEAD builds the AEAD for suite keyed with key. Both suites use a
// 12-byte nonce.
func NewAEAD(suite Suite, key []byte) (cipher.AEAD, error) {
	switch suite {
	case SuiteAES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("create cipher: %w", err)
		}
		return cipher.NewGCM(block)
	case SuiteChaCha20Poly1305:
		return chacha20poly1305.New(key)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, suite)
}

// Seal encrypts plaintext under a fresh random nonce and returns
// nonce || ciphertext || tag.
func Seal(aead cipher.AEAD, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal. Blobs shorter than the nonce fail with ErrTooShort,
// a tag that does not verify fails with ErrAuthenticationFailed.
func Open(aead cipher.AEAD, blob []byte) ([]byte, error) {
	if len(blob) < aead.NonceSize() {
		return nil, ErrTooShort
	}
	nonce, ciphertext := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// DeriveMasterKey stretches a password with argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

const entryKeyInfo = "passvault entry key"

// DeriveEntryKey expands a master key into the key used for entry secrets.
func DeriveEntryKey(masterKey []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, masterKey, nil, []byte(entryKeyInfo))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("hkdf expand: %w", err)
	}
	return key, nil
}
