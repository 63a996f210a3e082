// Package ui embeds the compiled frontend assets.
package ui

import "embed"

//go:embed dist
var DistFS embed.FS
