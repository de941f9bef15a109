package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/passvault/internal/cryptox"
)

// VaultCipher seals single entry secrets with the operator's suite. Blobs
// are nonce || ciphertext || tag with a fresh 96-bit nonce per call.
type VaultCipher struct {
	Suite cryptox.Suite
}

func (c VaultCipher) Encrypt(secret string, key []byte) ([]byte, error) {
	aead, err := cryptox.NewAEAD(c.Suite, key)
	if err != nil {
		return nil, err
	}
	return cryptox.Seal(aead, []byte(secret))
}

// Decrypt fails with cryptox.ErrTooShort, cryptox.ErrAuthenticationFailed or
// cryptox.ErrInvalidEncoding and never returns partial plaintext.
func (c VaultCipher) Decrypt(blob, key []byte) (string, error) {
	aead, err := cryptox.NewAEAD(c.Suite, key)
	if err != nil {
		return "", err
	}
	plaintext, err := cryptox.Open(aead, blob)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", cryptox.ErrInvalidEncoding
	}
	return string(plaintext), nil
}

// Reveal decrypts blob into a SecretResult.
func (c VaultCipher) Reveal(blob, key []byte) SecretResult {
	text, err := c.Decrypt(blob, key)
	return SecretResult{Text: text, Err: err}
}

// SecretResult is a decrypted secret or the reason it could not be read.
type SecretResult struct {
	Text string
	Err  error
}

func (r SecretResult) OK() bool {
	return r.Err == nil
}

// String renders the secret, or the failure as "corrupted: <reason>".
func (r SecretResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("corrupted: %v", r.Err)
	}
	return r.Text
}
