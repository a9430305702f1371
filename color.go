package tilectx

import "image/color"

// Common cell colors.  Consoles and ViewportOptions use color.RGBA
// directly; these are only convenient named values.
var (
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// RGB creates an opaque color from 8-bit RGB components.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
