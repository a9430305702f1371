package tilectx

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// BlitConsole composes a console into dst.  The area outside viewport is
// filled with the clear color, each cell's background is painted, and
// glyphs are scaled to the cell size with their alpha blending the
// foreground color over the background.
//
// Drivers that present CPU-composed frames (software, desktop window,
// host GPU upload) share this path; a nil tileset paints backgrounds
// only.
func BlitConsole(dst *image.RGBA, con Console, ts Tileset, viewport image.Rectangle, clear color.RGBA) error {
	if con == nil {
		return ErrNilConsole
	}
	columns, rows := con.Size()
	if columns < 1 || rows < 1 {
		return ErrInvalidDimensions
	}
	cells := con.Cells()
	if len(cells) < columns*rows {
		return ErrInvalidDimensions
	}

	bounds := dst.Bounds()
	draw.Draw(dst, bounds, image.NewUniform(clear), image.Point{}, draw.Src)

	// Scratch image reused for glyph scaling across cells.
	var scratch *image.RGBA

	vw, vh := viewport.Dx(), viewport.Dy()
	for row := 0; row < rows; row++ {
		// Integer partition of the viewport keeps cell edges exact.
		y0 := viewport.Min.Y + row*vh/rows
		y1 := viewport.Min.Y + (row+1)*vh/rows
		for col := 0; col < columns; col++ {
			x0 := viewport.Min.X + col*vw/columns
			x1 := viewport.Min.X + (col+1)*vw/columns
			cellRect := image.Rect(x0, y0, x1, y1).Intersect(bounds)
			if cellRect.Empty() {
				continue
			}

			cell := cells[row*columns+col]
			draw.Draw(dst, cellRect, image.NewUniform(cell.Bg), image.Point{}, draw.Src)

			if ts == nil {
				continue
			}
			glyph := ts.Glyph(cell.Rune)
			if glyph == nil {
				continue
			}

			target := image.Rect(x0, y0, x1, y1)
			if scratch == nil || scratch.Bounds().Dx() != target.Dx() || scratch.Bounds().Dy() != target.Dy() {
				scratch = image.NewRGBA(image.Rect(0, 0, target.Dx(), target.Dy()))
			} else {
				clearRGBA(scratch)
			}
			xdraw.NearestNeighbor.Scale(scratch, scratch.Bounds(), glyph, glyph.Bounds(), xdraw.Src, nil)

			// The scaled glyph's alpha masks the foreground color.
			draw.DrawMask(dst, cellRect,
				image.NewUniform(cell.Fg), image.Point{},
				scratch, image.Point{X: cellRect.Min.X - target.Min.X, Y: cellRect.Min.Y - target.Min.Y},
				draw.Over)
		}
	}
	return nil
}

// clearRGBA zeroes an RGBA image in place.
func clearRGBA(img *image.RGBA) {
	for i := range img.Pix {
		img.Pix[i] = 0
	}
}
