package tilectx

import (
	"fmt"
	"io"
	"log/slog"
)

// Context owns a live display surface and its presentation state.
//
// Create contexts with NewWindow or NewTerminal.  A Context exclusively
// owns its Display handle: it is either open or closed, and every
// operation except Close fails with ErrClosed once closed.  Context
// implements io.Closer; pair creation with a deferred Close so the
// display is released on every exit path:
//
//	ctx, err := tilectx.NewTerminal(80, 50)
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
// A Context must be used from a single goroutine or be serialized by the
// caller.
type Context struct {
	display  Display
	driver   string
	renderer Renderer
	tf       transform
	closed   bool
}

// Ensure Context implements io.Closer.
var _ io.Closer = (*Context)(nil)

// Present composes a console onto the display surface.
//
// The viewport rectangle is computed from the console size, the current
// surface size, and opts; the surface outside it is filled with
// opts.ClearColor.  Present also establishes the pixel-to-tile transform
// used by PixelToTile, PixelToSubtile, and ConvertEvent, so conversions
// track window resizes as long as the caller keeps presenting.
func (c *Context) Present(con Console, opts ViewportOptions) error {
	if c.closed {
		return ErrClosed
	}
	if con == nil {
		return ErrNilConsole
	}
	columns, rows := con.Size()
	if columns < 1 || rows < 1 {
		return fmt.Errorf("%w: %dx%d console", ErrInvalidDimensions, columns, rows)
	}

	surfaceW, surfaceH := c.display.Size()
	viewport := ComputeViewport(columns, rows, surfaceW, surfaceH, opts)
	c.tf.update(viewport, columns, rows)

	Logger().Debug("tilectx: present",
		slog.String("driver", c.driver),
		slog.Int("columns", columns), slog.Int("rows", rows),
		slog.Int("x", viewport.Min.X), slog.Int("y", viewport.Min.Y),
		slog.Int("w", viewport.Dx()), slog.Int("h", viewport.Dy()))

	if err := c.display.Present(con, viewport, opts.ClearColor); err != nil {
		return fmt.Errorf("tilectx: present: %w", err)
	}
	return nil
}

// PixelToTile converts a display-pixel position to the enclosing grid
// cell.  It fails with ErrNoTransform before the first Present call.
func (c *Context) PixelToTile(x, y int) (int, int, error) {
	if c.closed {
		return 0, 0, ErrClosed
	}
	return c.tf.tile(x, y)
}

// PixelToSubtile converts a display-pixel position to fractional tile
// coordinates, for smooth cursors and sub-cell hit testing.  It fails
// with ErrNoTransform before the first Present call.
func (c *Context) PixelToSubtile(x, y float64) (float64, float64, error) {
	if c.closed {
		return 0, 0, ErrClosed
	}
	return c.tf.subTile(x, y)
}

// ConvertEvent annotates a pointer event with tile coordinates.
//
// For a MotionEvent the tile-space delta is derived by converting the
// current pixel position minus the pixel delta, not from a cached
// previous tile, so the delta stays correct when the transform changed
// since the previous event.  Both conversions see the same transform
// because only Present mutates it and calls are synchronous.
func (c *Context) ConvertEvent(ev PixelEvent) error {
	if c.closed {
		return ErrClosed
	}
	x, y := ev.PixelPosition()
	tx, ty, err := c.tf.tile(x, y)
	if err != nil {
		return err
	}
	ev.SetTile(tx, ty)

	if motion, ok := ev.(MotionEvent); ok {
		dx, dy := motion.PixelDelta()
		prevX, prevY, err := c.tf.tile(x-dx, y-dy)
		if err != nil {
			return err
		}
		motion.SetTileDelta(tx-prevX, ty-prevY)
	}
	return nil
}

// SaveScreenshot writes the last presented frame to path.  An empty
// path lets the driver pick a timestamped default filename.
func (c *Context) SaveScreenshot(path string) error {
	if c.closed {
		return ErrClosed
	}
	if err := c.display.Screenshot(path); err != nil {
		return fmt.Errorf("tilectx: screenshot: %w", err)
	}
	return nil
}

// ChangeTileset swaps the active glyph atlas.  A nil tileset reverts to
// the driver's built-in fallback.  The display is not re-presented; the
// swap becomes visible on the next Present call, and callers should poll
// RecommendedConsoleSize afterwards since the cell size may have
// changed.
func (c *Context) ChangeTileset(ts Tileset) error {
	if c.closed {
		return ErrClosed
	}
	if err := c.display.SetTileset(ts); err != nil {
		return fmt.Errorf("tilectx: change tileset: %w", err)
	}
	return nil
}

// RecommendedConsoleSize returns the console size that best fits the
// current surface with the active tileset, floored at minColumns and
// minRows (values below 1 are treated as 1).
//
// Call it again after any window resize or ChangeTileset rather than
// caching the result.
func (c *Context) RecommendedConsoleSize(minColumns, minRows int) (columns, rows int, err error) {
	if c.closed {
		return 0, 0, ErrClosed
	}
	if minColumns < 1 {
		minColumns = 1
	}
	if minRows < 1 {
		minRows = 1
	}
	surfaceW, surfaceH := c.display.Size()
	cellW, cellH := c.display.CellSize()
	if cellW < 1 || cellH < 1 {
		return 0, 0, fmt.Errorf("%w: tileset reports %dx%d cell", ErrInvalidDimensions, cellW, cellH)
	}
	columns = max(minColumns, surfaceW/cellW)
	rows = max(minRows, surfaceH/cellH)
	return columns, rows, nil
}

// RendererType returns the driver family behind this context.
func (c *Context) RendererType() (Renderer, error) {
	if c.closed {
		return RendererAuto, ErrClosed
	}
	return c.renderer, nil
}

// Window returns the driver-specific native window handle.  It fails
// with ErrNoWindow when the driver has no native surface (for example
// the offscreen software driver).  The handle becomes invalid once the
// context is closed.
func (c *Context) Window() (any, error) {
	if c.closed {
		return nil, ErrClosed
	}
	wp, ok := c.display.(WindowProvider)
	if !ok {
		return nil, ErrNoWindow
	}
	return wp.Window(), nil
}

// Close releases the display, closing any window it opened.  Close is
// idempotent: the first call releases the handle and returns any driver
// error, subsequent calls are no-ops.  Close is safe to call during
// error unwinding.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.display.Close(); err != nil {
		Logger().Warn("tilectx: close", slog.String("driver", c.driver), slog.Any("error", err))
		return fmt.Errorf("tilectx: close: %w", err)
	}
	return nil
}
