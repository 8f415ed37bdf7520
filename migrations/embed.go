// migrations/embed.go
//
// Embeds the SQL schema applied at startup by database.Migrate.

package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
