// Package client bootstraps the local vault store.
//
// InitDatabase opens the configured driver (modernc SQLite by default, or
// PostgreSQL through pgx), applies the embedded goose migrations for the
// matching dialect and returns the repositories bound to the connection.
//
//	repos, err := client.InitDatabase(ctx, "sqlite", "passvault.db")
//	if err != nil { ... }
//	defer repos.Close()
package client
