// Copyright 2026 The tilectx Authors
// SPDX-License-Identifier: MIT

package tileset

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestCP437Layout(t *testing.T) {
	runes := CP437()
	if len(runes) != 256 {
		t.Fatalf("len(CP437()) = %d, want 256", len(runes))
	}
	// ASCII range is identity-mapped.
	if runes[0x41] != 'A' {
		t.Errorf("CP437()[0x41] = %q, want 'A'", runes[0x41])
	}
	if runes[0x20] != ' ' {
		t.Errorf("CP437()[0x20] = %q, want space", runes[0x20])
	}
	// High half carries box drawing and symbols.
	if runes[0xC9] != '╔' {
		t.Errorf("CP437()[0xC9] = %q, want '╔'", runes[0xC9])
	}
	if runes[0xDB] != '█' {
		t.Errorf("CP437()[0xDB] = %q, want '█'", runes[0xDB])
	}
}

func TestFromImage(t *testing.T) {
	// A 32x32 atlas sliced as a 4x4 grid of 8x8 tiles, with each tile
	// filled by a distinct red value so slicing can be verified.
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for i := 0; i < 16; i++ {
		col, row := i%4, i/4
		tint := color.RGBA{R: uint8(i * 16), A: 255}
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				img.SetRGBA(col*8+x, row*8+y, tint)
			}
		}
	}
	codepage := make([]rune, 16)
	for i := range codepage {
		codepage[i] = rune('a' + i)
	}

	a, err := FromImage(img, 4, 4, codepage)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if w, h := a.TileSize(); w != 8 || h != 8 {
		t.Errorf("TileSize = %dx%d, want 8x8", w, h)
	}

	// Tile index 5 is grid position (1, 1), rune 'f'.
	glyph := a.Glyph('f')
	if glyph == nil {
		t.Fatal("Glyph('f') = nil")
	}
	r, _, _, _ := glyph.At(0, 0).RGBA()
	if uint8(r>>8) != 5*16 {
		t.Errorf("glyph 'f' red = %d, want %d", uint8(r>>8), 5*16)
	}
	if a.Glyph('z') != nil {
		t.Error("Glyph for unmapped rune is not nil")
	}
}

func TestFromImageSkipsZeroRunes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	codepage := []rune{'a', 0, 'c', 0}
	a, err := FromImage(img, 2, 2, codepage)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if a.Glyph('a') == nil || a.Glyph('c') == nil {
		t.Error("mapped runes missing")
	}
	if a.Glyph(0) != nil {
		t.Error("zero rune was mapped")
	}
}

func TestFromImageInvalidGrid(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	if _, err := FromImage(img, 4, 4, nil); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("30x30 into 4x4: err = %v, want ErrInvalidGrid", err)
	}
	if _, err := FromImage(img, 0, 4, nil); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("zero columns: err = %v, want ErrInvalidGrid", err)
	}
}

func TestFromImageDefaultCodepage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	a, err := FromImage(img, 16, 16, nil)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	// CP437 index of 'A' is 0x41, well inside the 16x16 grid.
	if a.Glyph('A') == nil {
		t.Error("default codepage did not map 'A'")
	}
}

func TestSetGlyph(t *testing.T) {
	a, err := FromImage(image.NewRGBA(image.Rect(0, 0, 16, 16)), 2, 2, []rune{'a', 'b', 'c', 'd'})
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	custom := image.NewRGBA(image.Rect(0, 0, 8, 8))
	a.SetGlyph('z', custom)
	if a.Glyph('z') != custom {
		t.Error("SetGlyph did not store the image")
	}
	a.SetGlyph('a', nil)
	if a.Glyph('a') != nil {
		t.Error("SetGlyph(nil) did not remove the mapping")
	}
}

func TestFallback(t *testing.T) {
	a := Fallback()
	if a != Fallback() {
		t.Error("Fallback is not a shared instance")
	}
	w, h := a.TileSize()
	if w != 7 || h != 13 {
		t.Errorf("TileSize = %dx%d, want 7x13", w, h)
	}
	glyph := a.Glyph('A')
	if glyph == nil {
		t.Fatal("Glyph('A') = nil")
	}
	// The rendered glyph must have some opaque coverage.
	opaque := false
	b := glyph.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !opaque; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, alpha := glyph.At(x, y).RGBA(); alpha > 0 {
				opaque = true
				break
			}
		}
	}
	if !opaque {
		t.Error("Glyph('A') has no coverage")
	}
	if a.Glyph('\t') != nil {
		t.Error("control rune is mapped")
	}
}

func TestLoadTrueType(t *testing.T) {
	a, err := LoadTrueType(gomono.TTF, 8, 16)
	if err != nil {
		t.Fatalf("LoadTrueType: %v", err)
	}
	if w, h := a.TileSize(); w != 8 || h != 16 {
		t.Errorf("TileSize = %dx%d, want 8x16", w, h)
	}
	for _, r := range []rune{'A', '@', '#'} {
		if a.Glyph(r) == nil {
			t.Errorf("Glyph(%q) = nil", r)
		}
	}
}

func TestLoadTrueTypeErrors(t *testing.T) {
	if _, err := LoadTrueType(gomono.TTF, 0, 16); !errors.Is(err, ErrInvalidTileSize) {
		t.Errorf("zero tile width: err = %v, want ErrInvalidTileSize", err)
	}
	if _, err := LoadTrueType([]byte("not a font"), 8, 16); err == nil {
		t.Error("garbage font data did not fail")
	}
}
