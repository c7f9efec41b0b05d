// Package migrations схема Postgres в формате goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
