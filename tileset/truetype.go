// Copyright 2026 The tilectx Authors
// SPDX-License-Identifier: MIT

package tileset

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LoadTrueType rasterizes a TrueType/OpenType font into a fixed-grid
// atlas with the given tile size.  Glyphs are rendered at the tile
// height and centered horizontally in their tile, which suits monospace
// fonts; proportional fonts work but wide glyphs are clipped to the
// tile.
//
// The rendered repertoire is the CP437 set plus printable ASCII; runes
// the font lacks are left unmapped.
func LoadTrueType(data []byte, tileW, tileH int) (*Atlas, error) {
	if tileW < 1 || tileH < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTileSize, tileW, tileH)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("tileset: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(tileH),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("tileset: create face: %w", err)
	}
	defer face.Close()

	a := &Atlas{
		tileW:  tileW,
		tileH:  tileH,
		glyphs: make(map[rune]image.Image, 256),
	}
	ascent := face.Metrics().Ascent.Round()
	for _, r := range CP437() {
		if r == 0 {
			continue
		}
		if _, ok := a.glyphs[r]; ok {
			continue
		}
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		// Center the glyph horizontally in its tile.
		offset := (fixed.I(tileW) - advance) / 2
		mask := image.NewAlpha(image.Rect(0, 0, tileW, tileH))
		d := font.Drawer{
			Dst:  mask,
			Src:  image.White,
			Face: face,
			Dot:  fixed.Point26_6{X: offset, Y: fixed.I(ascent)},
		}
		d.DrawString(string(r))
		a.glyphs[r] = mask
	}
	return a, nil
}

// LoadTrueTypeFile reads path and calls LoadTrueType.
func LoadTrueTypeFile(path string, tileW, tileH int) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tileset: read font: %w", err)
	}
	return LoadTrueType(data, tileW, tileH)
}
