// Copyright 2026 The tilectx Authors
// SPDX-License-Identifier: MIT

package tileset

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	fallbackOnce sync.Once
	fallback     *Atlas
)

// Fallback returns the compiled-in fallback tileset, built from the
// basicfont 7x13 face.  It covers printable ASCII, which is enough for
// prototyping; ship a real tileset for anything user-facing, since the
// fallback's look is not stable across releases.
//
// The atlas is built once and shared; treat it as read-only.
func Fallback() *Atlas {
	fallbackOnce.Do(func() {
		face := basicfont.Face7x13
		fallback = &Atlas{
			tileW:  face.Advance,
			tileH:  face.Height,
			glyphs: make(map[rune]image.Image, 95),
		}
		for r := rune(0x20); r <= 0x7e; r++ {
			mask := image.NewAlpha(image.Rect(0, 0, face.Advance, face.Height))
			d := font.Drawer{
				Dst:  mask,
				Src:  image.White,
				Face: face,
				Dot:  fixed.P(0, face.Ascent),
			}
			d.DrawString(string(r))
			fallback.glyphs[r] = mask
		}
	})
	return fallback
}
