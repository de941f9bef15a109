// Package services contains the application services the session drives:
// credential authentication (AuthService), sealing of entry secrets
// (VaultCipher) and entry persistence with ordering and search (EntryService).
package services
