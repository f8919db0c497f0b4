package core

import (
	"fmt"
	"image/color"
)

// Palette used by the renderer. The terminal and browser frontends share
// it so they agree on colors.
var (
	ColorSkyTop      = color.RGBA{R: 0x1c, G: 0x3f, B: 0x80, A: 0xff}
	ColorSkyBottom   = color.RGBA{R: 0xf0, G: 0x8c, B: 0x4a, A: 0xff}
	ColorWire        = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	ColorSpark       = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	ColorChimney     = color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
	ColorChimneyCap  = color.RGBA{R: 0x65, G: 0x43, B: 0x21, A: 0xff}
	ColorHUD         = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorButton      = color.RGBA{R: 0xea, G: 0xb3, B: 0x08, A: 0xff}
	ColorButtonHover = color.RGBA{R: 0xca, G: 0x8a, B: 0x04, A: 0xff}
	ColorFrame       = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
	ColorHint        = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
)

// NoColor marks a cell that uses the terminal's default color.
var NoColor = color.RGBA{}

// Hex returns the color as a #rrggbb string, or "" for NoColor.
func Hex(c color.RGBA) string {
	if c.A == 0 {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp linearly interpolates between two colors, t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = ClampF(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
