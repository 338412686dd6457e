// Package shaders embeds the built-in GLSL sources.
package shaders

import "embed"

//go:embed *.vert *.frag
var FS embed.FS
