package tilectx

// Point is an integer 2-vector used for pixel and tile positions.
type Point struct {
	X, Y int
}

// PixelEvent is an input event carrying a pixel position that a Context
// can annotate with the corresponding tile position.  The event types in
// this package implement it; event types from other input layers can
// too.
type PixelEvent interface {
	// PixelPosition returns the event position in display pixels.
	PixelPosition() (x, y int)

	// SetTile stores the converted tile position on the event.
	SetTile(x, y int)
}

// MotionEvent is a PixelEvent that additionally carries a pixel-space
// movement delta, converted by the Context into a tile-space delta.
type MotionEvent interface {
	PixelEvent

	// PixelDelta returns the movement since the previous event in
	// display pixels.
	PixelDelta() (dx, dy int)

	// SetTileDelta stores the converted tile-space movement.
	SetTileDelta(dx, dy int)
}

// MouseState is a pointer event with a pixel position and, after
// Context.ConvertEvent, the tile position under the pointer.
type MouseState struct {
	// Pixel is the pointer position in display pixels.
	Pixel Point

	// Tile is the grid cell under the pointer.  Filled in by
	// Context.ConvertEvent.
	Tile Point
}

// PixelPosition implements PixelEvent.
func (e *MouseState) PixelPosition() (int, int) { return e.Pixel.X, e.Pixel.Y }

// SetTile implements PixelEvent.
func (e *MouseState) SetTile(x, y int) { e.Tile = Point{X: x, Y: y} }

// MouseMotion is a pointer-motion event: a MouseState plus the movement
// since the previous motion event.
type MouseMotion struct {
	MouseState

	// PixelMotion is the movement in display pixels.
	PixelMotion Point

	// TileMotion is the movement in grid cells.  Filled in by
	// Context.ConvertEvent.
	TileMotion Point
}

// PixelDelta implements MotionEvent.
func (e *MouseMotion) PixelDelta() (int, int) { return e.PixelMotion.X, e.PixelMotion.Y }

// SetTileDelta implements MotionEvent.
func (e *MouseMotion) SetTileDelta(dx, dy int) { e.TileMotion = Point{X: dx, Y: dy} }

// Interface compliance checks.
var (
	_ PixelEvent  = (*MouseState)(nil)
	_ MotionEvent = (*MouseMotion)(nil)
)
