// Package assets embeds the static game data.
package assets

import "embed"

// Scenarios holds the starting layouts, one YAML file each.
//
//go:embed scenarios/*.yaml
var Scenarios embed.FS
