// Package migrations holds the numbered schema files of the profile
// database. Each NNN_name.up.sql is applied once, in order; the matching
// .down.sql is kept for manual rollback.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
