// Package migrations embeds the SQL schema migrations applied by tern.
package migrations

import "embed"

//go:embed *.sql
var MigrationFiles embed.FS
