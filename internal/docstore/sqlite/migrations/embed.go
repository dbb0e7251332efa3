package migrations

import "embed"

// FS contains the embedded document-store schema.
//
//go:embed *.sql
var FS embed.FS
