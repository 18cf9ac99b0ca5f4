// Package migrations embeds the schema for every supported SQL dialect.
package migrations

import "embed"

// FS holds one directory of migrations per dialect.
//
//go:embed mysql/*.sql postgres/*.sql sqlite/*.sql
var FS embed.FS
