// Package migrations embeds the goose migrations for every supported dialect.
// Each dialect lives in its own directory named after dbx.Dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
