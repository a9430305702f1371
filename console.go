package tilectx

import "image/color"

// Cell is a single console cell: a glyph plus foreground and background
// colors.
type Cell struct {
	// Rune selects the glyph drawn in the cell.
	Rune rune

	// Fg is the glyph color.
	Fg color.RGBA

	// Bg is the cell background color.
	Bg color.RGBA
}

// Console is the external grid-of-cells buffer presented by a Context.
//
// tilectx borrows a Console only for the duration of a Present call and
// never retains it.  The console/tilectx/console package provides a
// ready-made implementation; any cell grid satisfying this interface
// works.
type Console interface {
	// Size returns the console dimensions in cells.
	Size() (columns, rows int)

	// Cells returns the raw cell buffer in row-major order.  The slice
	// must hold columns*rows entries.
	Cells() []Cell
}
