// Package shareit embeds the goose migrations for the ShareIt schema.
package shareit

import "embed"

//go:embed *.sql
var FS embed.FS
