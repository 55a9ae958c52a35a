// Package migrations embeds the SQL migration files so the SQLite backend
// can apply them without relying on a filesystem path at runtime.
package migrations

import "embed"

// FS holds the per-backend migration directories embedded at compile time.
//
//go:embed sqlite/*.sql
var FS embed.FS
