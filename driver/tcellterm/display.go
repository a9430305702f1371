// Copyright 2026 The tilectx Authors
// SPDX-License-Identifier: MIT

// Package tcellterm provides a tilectx display driver rendering to a
// text terminal via gdamore/tcell.  One terminal cell equals one pixel,
// so the context's pixel and cell coordinate spaces coincide and the
// tileset (if any) is ignored: the terminal's own font draws the runes.
//
// Import for side effects to register the driver:
//
//	import _ "github.com/tilectx/tilectx/driver/tcellterm"
package tcellterm

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/tilectx/tilectx"
)

func init() {
	tilectx.Register("terminal", 30, New, nil)
}

// Display presents consoles to a tcell screen.
type Display struct {
	screen tcell.Screen
	// last holds the rune grid of the most recent Present, for text
	// screenshots.
	last   [][]rune
	closed bool
}

var (
	_ tilectx.Display        = (*Display)(nil)
	_ tilectx.WindowProvider = (*Display)(nil)
)

// New creates a terminal display on the process TTY.  The requested
// size is advisory: the terminal dictates the real size, so callers
// should follow up with RecommendedConsoleSize.
func New(opts tilectx.DisplayOptions) (tilectx.Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellterm: init: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an already initialized tcell screen.  Useful for
// tests with tcell's SimulationScreen.  The display takes ownership of
// the screen and finalizes it on Close.
func NewWithScreen(screen tcell.Screen) *Display {
	return &Display{screen: screen}
}

// Size returns the terminal size.  One cell is one "pixel".
func (d *Display) Size() (int, int) {
	if d.closed {
		return 0, 0
	}
	return d.screen.Size()
}

// CellSize returns 1x1: pixel space and cell space coincide.
func (d *Display) CellSize() (int, int) {
	return 1, 1
}

// Present draws the console into the viewport rectangle of the
// terminal.  The terminal area outside the viewport is filled with the
// clear color.  Integer scaling greater than one repeats each console
// cell over the covered terminal cells.
func (d *Display) Present(con tilectx.Console, viewport image.Rectangle, clear color.RGBA) error {
	if d.closed {
		return tilectx.ErrClosed
	}
	if con == nil {
		return tilectx.ErrNilConsole
	}
	columns, rows := con.Size()
	if columns < 1 || rows < 1 {
		return tilectx.ErrInvalidDimensions
	}
	cells := con.Cells()
	if len(cells) < columns*rows {
		return tilectx.ErrInvalidDimensions
	}

	width, height := d.screen.Size()
	clearStyle := tcell.StyleDefault.Background(toTcell(clear)).Foreground(toTcell(clear))
	d.last = make([][]rune, height)
	for y := 0; y < height; y++ {
		d.last[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			r := ' '
			style := clearStyle
			if (image.Point{X: x, Y: y}).In(viewport) {
				col := (x - viewport.Min.X) * columns / viewport.Dx()
				row := (y - viewport.Min.Y) * rows / viewport.Dy()
				cell := cells[row*columns+col]
				r = cell.Rune
				style = tcell.StyleDefault.
					Foreground(toTcell(cell.Fg)).
					Background(toTcell(cell.Bg))
			}
			d.last[y][x] = r
			d.screen.SetContent(x, y, r, nil, style)
		}
	}
	d.screen.Show()
	return nil
}

// SetTileset is a no-op: the terminal renders with its own font.
func (d *Display) SetTileset(ts tilectx.Tileset) error {
	if d.closed {
		return tilectx.ErrClosed
	}
	return nil
}

// Screenshot writes the last presented frame as plain text, one line
// per terminal row.  An empty path selects a timestamped .txt file.
func (d *Display) Screenshot(path string) error {
	if d.closed {
		return tilectx.ErrClosed
	}
	if path == "" {
		path = tilectx.DefaultScreenshotPath("txt")
	}
	var b strings.Builder
	for _, row := range d.last {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("tcellterm: screenshot: %w", err)
	}
	return nil
}

// Window returns the underlying tcell.Screen.
func (d *Display) Window() any {
	return d.screen
}

// Close finalizes the terminal.  Close is idempotent.
func (d *Display) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.screen.Fini()
	return nil
}

// toTcell converts an RGBA color to a tcell color.  Alpha is ignored;
// terminals have no compositing.
func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
