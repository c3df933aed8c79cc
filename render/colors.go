package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(41, 46, 66)
	RgbScore      = tcell.NewRGBColor(255, 215, 0)
	RgbWin        = tcell.NewRGBColor(80, 250, 123)
	RgbLose       = tcell.NewRGBColor(255, 85, 85)
	RgbHint       = tcell.NewRGBColor(140, 140, 160)
)

var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	StyleStatus     = tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusBar)
	StyleScore      = StyleStatus.Foreground(RgbScore).Bold(true)
)

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Blend interpolates two colors in Lab space, t clamped to [0, 1]
func Blend(from, to tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	c := toColorful(from).BlendLab(toColorful(to), t).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
