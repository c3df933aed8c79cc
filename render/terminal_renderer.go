package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/engine"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// minFlipScale is the width below which a flipped frame draws nothing
const minFlipScale = 0.05

// drawOrder paints projectiles under monsters and the player on top
var drawOrder = []component.Kind{component.KindProjectile, component.KindMonster, component.KindPlayer}

// TerminalRenderer draws field content onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	layout Layout

	// Horizontal scale about the screen center, negative mirrors
	flip float64
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, cellW, cellH float64) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, flip: 1}
	cols, rows := screen.Size()
	r.layout = NewLayout(cols, rows, cellW, cellH)
	return r
}

// Resize re-reads the screen size and returns the new layout
func (r *TerminalRenderer) Resize() Layout {
	cols, rows := r.screen.Size()
	r.layout = NewLayout(cols, rows, r.layout.CellW, r.layout.CellH)
	return r.layout
}

// Layout returns the current layout
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// Begin clears the frame
func (r *TerminalRenderer) Begin() {
	r.screen.SetStyle(StyleBackground)
	r.screen.Clear()
	r.flip = 1
}

// SetFlip sets the horizontal scale for subsequent field drawing
func (r *TerminalRenderer) SetFlip(scale float64) {
	r.flip = scale
}

// Show pushes the frame to the terminal
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// setCell draws a field cell through the flip transform
func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if math.Abs(r.flip) < minFlipScale {
		return
	}
	if r.flip != 1 {
		cx := float64(r.layout.Cols) / 2
		x = int(math.Round(cx + (float64(x)+0.5-cx)*r.flip - 0.5))
	}
	if !r.layout.InField(x, y) {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// DrawSprite fills the cells covered by the sprite
func (r *TerminalRenderer) DrawSprite(pos vmath.Vec2, s component.SpriteComponent) {
	x0, y0, cols, rows := r.layout.Span(pos, s.Width, s.Height)
	style := s.Style.Background(RgbBackground)
	for dy := 0; dy < rows; dy++ {
		for dx := 0; dx < cols; dx++ {
			r.setCell(x0+dx, y0+dy, s.Glyph, style)
		}
	}
}

// DrawWorld draws every entity that has both a position and a sprite
func (r *TerminalRenderer) DrawWorld(w *engine.World) {
	for _, kind := range drawOrder {
		for _, e := range w.EntitiesOf(kind) {
			pos, ok := w.Positions.Get(e)
			if !ok {
				continue
			}
			sprite, ok := w.Sprites.Get(e)
			if !ok {
				continue
			}
			r.DrawSprite(pos, sprite)
		}
	}
}

// DrawText writes a string starting at cell (x, y) within the field
func (r *TerminalRenderer) DrawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.setCell(x, y, ch, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
}

// DrawCentered writes text horizontally centered on row y
func (r *TerminalRenderer) DrawCentered(y int, text string, style tcell.Style) {
	x := (r.layout.Cols - runewidth.StringWidth(text)) / 2
	r.DrawText(max(x, 0), y, text, style)
}

// DrawStatus fills the status row with left-aligned and right-aligned text
// The status row is never flipped
func (r *TerminalRenderer) DrawStatus(left, right string) {
	y := r.layout.StatusRow()
	if y >= r.layout.Rows {
		return
	}
	for x := 0; x < r.layout.Cols; x++ {
		r.screen.SetContent(x, y, ' ', nil, StyleStatus)
	}

	x := 1
	for _, ch := range left {
		r.screen.SetContent(x, y, ch, nil, StyleStatus)
		x += max(runewidth.RuneWidth(ch), 1)
	}

	x = r.layout.Cols - runewidth.StringWidth(right) - 1
	for _, ch := range right {
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, StyleScore)
		}
		x += max(runewidth.RuneWidth(ch), 1)
	}
}
