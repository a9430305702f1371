// Copyright 2026 The tilectx Authors
// SPDX-License-Identifier: MIT

// Package tileset provides glyph-atlas implementations for tilectx:
// fixed-grid atlas images, TrueType-rendered atlases, and a compiled-in
// fallback font.
//
// All tilesets in this package satisfy the tilectx.Tileset interface.
package tileset

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/text/encoding/charmap"
)

// Errors returned by tileset constructors.
var (
	// ErrInvalidGrid is returned when the atlas image does not divide
	// evenly into the requested tile grid.
	ErrInvalidGrid = errors.New("tileset: atlas does not divide into tile grid")

	// ErrInvalidTileSize is returned for non-positive tile dimensions.
	ErrInvalidTileSize = errors.New("tileset: invalid tile size")
)

// Atlas is a glyph atlas mapping runes to fixed-size tile images.
type Atlas struct {
	tileW, tileH int
	glyphs       map[rune]image.Image
}

// CP437 returns the 256-rune code page 437 layout used by classic
// roguelike tilesheets, decoded through x/text's charmap tables.
func CP437() []rune {
	runes := make([]rune, 256)
	for i := range runes {
		runes[i] = charmap.CodePage437.DecodeByte(byte(i))
	}
	return runes
}

// FromImage slices an atlas image laid out as columns×rows equally sized
// tiles.  codepage maps tile index (left to right, top to bottom) to the
// rune it depicts; a zero rune skips the tile.  A nil codepage uses
// CP437, the de facto layout for 16×16 tilesheets.
//
// Tiles are copied out of img, so the caller may discard it afterwards.
func FromImage(img image.Image, columns, rows int, codepage []rune) (*Atlas, error) {
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrInvalidGrid, columns, rows)
	}
	bounds := img.Bounds()
	if bounds.Dx()%columns != 0 || bounds.Dy()%rows != 0 {
		return nil, fmt.Errorf("%w: %dx%d image, %dx%d grid",
			ErrInvalidGrid, bounds.Dx(), bounds.Dy(), columns, rows)
	}
	if codepage == nil {
		codepage = CP437()
	}

	tileW, tileH := bounds.Dx()/columns, bounds.Dy()/rows
	a := &Atlas{
		tileW:  tileW,
		tileH:  tileH,
		glyphs: make(map[rune]image.Image, len(codepage)),
	}
	for i, r := range codepage {
		if r == 0 || i >= columns*rows {
			continue
		}
		col, row := i%columns, i/columns
		src := image.Rect(
			bounds.Min.X+col*tileW,
			bounds.Min.Y+row*tileH,
			bounds.Min.X+(col+1)*tileW,
			bounds.Min.Y+(row+1)*tileH,
		)
		tile := image.NewRGBA(image.Rect(0, 0, tileW, tileH))
		draw.Draw(tile, tile.Bounds(), img, src.Min, draw.Src)
		a.glyphs[r] = tile
	}
	return a, nil
}

// TileSize returns the size of a single tile in source pixels.
func (a *Atlas) TileSize() (int, int) {
	return a.tileW, a.tileH
}

// Glyph returns the tile image for a rune, or nil when unmapped.
func (a *Atlas) Glyph(r rune) image.Image {
	return a.glyphs[r]
}

// SetGlyph maps a rune to a custom tile image.  The image should match
// the atlas tile size; it is used as-is.
func (a *Atlas) SetGlyph(r rune, img image.Image) {
	if img == nil {
		delete(a.glyphs, r)
		return
	}
	a.glyphs[r] = img
}
