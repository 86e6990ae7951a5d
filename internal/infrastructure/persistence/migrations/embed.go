// Package migrations embeds the versioned SQL migration scripts.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
