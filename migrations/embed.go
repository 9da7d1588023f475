// Package migrations embeds the SQL schema migrations shipped with the
// binary so stores can apply them without an external migrations directory.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
