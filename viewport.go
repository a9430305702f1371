package tilectx

import (
	"image"
	"image/color"
	"math"
)

// ViewportOptions controls how a console is placed on the display
// surface during Present.  The zero value stretches the console to fill
// the surface and clears with opaque black; DefaultViewport centers the
// console instead.
//
// ViewportOptions is a plain value: construct a fresh one per Present
// call, it is never retained.
type ViewportOptions struct {
	// KeepAspect preserves the console aspect ratio with a letterbox.
	// When false the console is stretched to fill the surface exactly.
	KeepAspect bool

	// IntegerScaling floors the scale factor to a whole number of
	// pixels per tile, never below 1.  A console larger than the
	// surface may therefore overflow it; that overflow is accepted
	// rather than clamped.
	IntegerScaling bool

	// ClearColor fills the surface area outside the viewport.
	ClearColor color.RGBA

	// AlignX and AlignY place the viewport inside the leftover surface
	// area: 0 is flush to the top/left edge, 1 flush to the bottom/right
	// edge, 0.5 centered.  Values are clamped to [0, 1].
	AlignX, AlignY float64
}

// DefaultViewport returns the conventional presentation options:
// stretch to fill, clear to black, centered.
func DefaultViewport() ViewportOptions {
	return ViewportOptions{
		ClearColor: color.RGBA{A: 255},
		AlignX:     0.5,
		AlignY:     0.5,
	}
}

// WithKeepAspect returns a copy with KeepAspect set.
func (o ViewportOptions) WithKeepAspect(keep bool) ViewportOptions {
	o.KeepAspect = keep
	return o
}

// WithIntegerScaling returns a copy with IntegerScaling set.
func (o ViewportOptions) WithIntegerScaling(integer bool) ViewportOptions {
	o.IntegerScaling = integer
	return o
}

// WithClearColor returns a copy with the specified clear color.
func (o ViewportOptions) WithClearColor(c color.RGBA) ViewportOptions {
	o.ClearColor = c
	return o
}

// WithAlign returns a copy with the specified alignment.
func (o ViewportOptions) WithAlign(x, y float64) ViewportOptions {
	o.AlignX, o.AlignY = x, y
	return o
}

// clamp01 clamps v to the [0, 1] range.
func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// ComputeViewport computes the placement rectangle for a console of
// columns×rows cells on a surfaceW×surfaceH pixel surface.
//
// The scale is measured in pixels per tile: surfaceW/columns horizontally
// and surfaceH/rows vertically.  KeepAspect uses the smaller of the two
// on both axes; IntegerScaling floors each used scale to an integer, but
// never below 1, so oversized consoles overflow the surface instead of
// shrinking below one pixel per tile.  The rectangle is then aligned
// inside the surface per AlignX/AlignY and may have negative origin
// components when it overflows.
func ComputeViewport(columns, rows, surfaceW, surfaceH int, opts ViewportOptions) image.Rectangle {
	if columns < 1 || rows < 1 || surfaceW < 1 || surfaceH < 1 {
		return image.Rectangle{}
	}

	scaleX := float64(surfaceW) / float64(columns)
	scaleY := float64(surfaceH) / float64(rows)
	if opts.KeepAspect {
		s := math.Min(scaleX, scaleY)
		scaleX, scaleY = s, s
	}
	if opts.IntegerScaling {
		scaleX = math.Max(1, math.Floor(scaleX))
		scaleY = math.Max(1, math.Floor(scaleY))
	}

	w := int(math.Round(float64(columns) * scaleX))
	h := int(math.Round(float64(rows) * scaleY))
	x := int(math.Round(clamp01(opts.AlignX) * float64(surfaceW-w)))
	y := int(math.Round(clamp01(opts.AlignY) * float64(surfaceH-h)))
	return image.Rect(x, y, x+w, y+h)
}
