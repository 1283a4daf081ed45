// Package migrations embeds the versioned schema migration files for
// both storage backends.
package migrations

import "embed"

//go:embed sqlite postgres
var FS embed.FS
