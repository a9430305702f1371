package tilectx

import "image"

// Tileset is the external glyph atlas mapping cell runes to visuals.
//
// Contexts never own a Tileset: it is borrowed for the duration of the
// call that uses it (ChangeTileset installs the reference into the
// driver, which takes over the borrow).  The tilectx/tileset package
// provides atlas-image, TrueType, and built-in fallback implementations.
type Tileset interface {
	// TileSize returns the size of a single tile in source pixels.
	TileSize() (width, height int)

	// Glyph returns the image for a rune, or nil when the rune has no
	// glyph in this tileset.  The glyph's alpha channel is used to
	// blend the cell foreground color over its background.
	Glyph(r rune) image.Image
}
