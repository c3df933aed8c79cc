package component

import "github.com/gdamore/tcell/v2"

// SpriteComponent holds the drawable appearance of an entity
type SpriteComponent struct {
	Glyph  rune
	Style  tcell.Style
	Width  float64 // Field units, used for spawn offsets
	Height float64
}
