// Copyright 2026 The tilectx Authors
// SPDX-License-Identifier: MIT

// Package console provides a minimal cell-grid buffer satisfying the
// tilectx.Console interface.
package console

import (
	"fmt"
	"image/color"

	"github.com/tilectx/tilectx"
)

// Console is a columns×rows grid of cells stored row-major.
type Console struct {
	columns, rows int
	cells         []tilectx.Cell
}

// Interface compliance check.
var _ tilectx.Console = (*Console)(nil)

// New creates a console of the given size with all cells cleared to a
// space on black.  It panics on non-positive dimensions, which are
// always a programming error.
func New(columns, rows int) *Console {
	if columns < 1 || rows < 1 {
		panic(fmt.Sprintf("console: invalid size %dx%d", columns, rows))
	}
	c := &Console{
		columns: columns,
		rows:    rows,
		cells:   make([]tilectx.Cell, columns*rows),
	}
	c.Clear()
	return c
}

// Size returns the console dimensions in cells.
func (c *Console) Size() (int, int) {
	return c.columns, c.rows
}

// Cells returns the raw cell buffer in row-major order.
func (c *Console) Cells() []tilectx.Cell {
	return c.cells
}

// In reports whether the cell position is inside the console.
func (c *Console) In(x, y int) bool {
	return x >= 0 && x < c.columns && y >= 0 && y < c.rows
}

// At returns the cell at a position.  Out-of-range positions return the
// zero Cell.
func (c *Console) At(x, y int) tilectx.Cell {
	if !c.In(x, y) {
		return tilectx.Cell{}
	}
	return c.cells[y*c.columns+x]
}

// Put sets the cell at a position.  Out-of-range positions are ignored.
func (c *Console) Put(x, y int, cell tilectx.Cell) {
	if !c.In(x, y) {
		return
	}
	c.cells[y*c.columns+x] = cell
}

// Fill sets every cell to the given value.
func (c *Console) Fill(cell tilectx.Cell) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

// Clear resets every cell to a space with white foreground on black.
func (c *Console) Clear() {
	c.Fill(tilectx.Cell{Rune: ' ', Fg: tilectx.White, Bg: tilectx.Black})
}

// Print writes a string left to right starting at (x, y) with the given
// colors, clipping at the console edge.
func (c *Console) Print(x, y int, s string, fg, bg color.RGBA) {
	for _, r := range s {
		if x >= c.columns {
			return
		}
		c.Put(x, y, tilectx.Cell{Rune: r, Fg: fg, Bg: bg})
		x++
	}
}
