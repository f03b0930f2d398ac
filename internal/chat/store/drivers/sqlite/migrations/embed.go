// Package migrations embeds the SQL migration files so the binary carries
// its own schema and can initialize a fresh database on first start.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
