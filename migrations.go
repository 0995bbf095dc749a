// Package swimdeck holds assets compiled into the binaries.
package swimdeck

import "embed"

// MigrationsFS embeds the SQL schema migrations so the server runs them
// without depending on the working directory.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
