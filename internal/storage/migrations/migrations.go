// Package migrations embeds the schema migrations for each supported driver.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
