package database

import "embed"

// EmbeddedMigrations holds the SQL files under migrations/, compiled into
// the binary so deploys need no files next to it.
// Use fs.Sub(EmbeddedMigrations, "migrations") to reach the subdirectory.
//
//go:embed migrations/*.sql
var EmbeddedMigrations embed.FS
