package tilectx

import (
	"image"
	"math"
)

// transform is the affine mapping from display-pixel space to grid-cell
// space.  It is derived from the viewport rectangle and console size of
// the most recent Present call and is invalid before the first one.
type transform struct {
	valid         bool
	rect          image.Rectangle
	columns, rows int
}

// update derives the transform from a freshly computed viewport.
func (t *transform) update(rect image.Rectangle, columns, rows int) {
	t.rect = rect
	t.columns = columns
	t.rows = rows
	t.valid = rect.Dx() > 0 && rect.Dy() > 0 && columns > 0 && rows > 0
}

// subTile converts a pixel position to fractional tile coordinates.
func (t *transform) subTile(x, y float64) (float64, float64, error) {
	if !t.valid {
		return 0, 0, ErrNoTransform
	}
	cellW := float64(t.rect.Dx()) / float64(t.columns)
	cellH := float64(t.rect.Dy()) / float64(t.rows)
	tx := (x - float64(t.rect.Min.X)) / cellW
	ty := (y - float64(t.rect.Min.Y)) / cellH
	return tx, ty, nil
}

// tile converts a pixel position to the enclosing whole tile.  Positions
// outside the viewport produce out-of-range tile coordinates rather than
// an error; callers hit-test against the console size.
func (t *transform) tile(x, y int) (int, int, error) {
	tx, ty, err := t.subTile(float64(x), float64(y))
	if err != nil {
		return 0, 0, err
	}
	return int(math.Floor(tx)), int(math.Floor(ty)), nil
}
