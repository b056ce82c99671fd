package core

import (
	"fmt"
	"math/rand"
)

// Color is an opaque 24-bit RGB color. Games only pick colors; frontends
// decide how to paint them (truecolor, 256-color, or not at all).
type Color struct {
	R, G, B uint8
	Set     bool // false means "terminal default"
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// ColorDefault leaves the terminal's own color in place.
var ColorDefault = Color{}

// Named colors shared by games and renderers.
var (
	ColorBlack     = RGB(0, 0, 0)
	ColorWhite     = RGB(255, 255, 255)
	ColorLightBlue = RGB(173, 216, 230)
	ColorDarkBrown = RGB(101, 67, 33)
	ColorYellow    = RGB(218, 165, 32)
	ColorDarkGreen = RGB(0, 100, 0)
	ColorLightBrn  = RGB(139, 69, 19)
	ColorDarkGray  = RGB(64, 64, 64)
)

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RandomColor draws each channel uniformly from [lo, hi].
func RandomColor(rng *rand.Rand, lo, hi uint8) Color {
	span := int(hi) - int(lo) + 1
	return RGB(
		lo+uint8(rng.Intn(span)),
		lo+uint8(rng.Intn(span)),
		lo+uint8(rng.Intn(span)),
	)
}

// PickColor returns a uniformly chosen entry of the palette.
func PickColor(rng *rand.Rand, palette []Color) Color {
	if len(palette) == 0 {
		return ColorDefault
	}
	return palette[rng.Intn(len(palette))]
}
