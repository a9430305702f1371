package tilectx

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// fakeDisplay records driver calls for lifecycle tests.
type fakeDisplay struct {
	w, h       int
	cellW      int
	cellH      int
	presents   int
	closes     int
	viewport   image.Rectangle
	clear      color.RGBA
	tileset    Tileset
	shotPath   string
	presentErr error
}

func (d *fakeDisplay) Size() (int, int)     { return d.w, d.h }
func (d *fakeDisplay) CellSize() (int, int) { return d.cellW, d.cellH }

func (d *fakeDisplay) Present(con Console, viewport image.Rectangle, clear color.RGBA) error {
	d.presents++
	d.viewport = viewport
	d.clear = clear
	return d.presentErr
}

func (d *fakeDisplay) SetTileset(ts Tileset) error { d.tileset = ts; return nil }
func (d *fakeDisplay) Screenshot(path string) error {
	d.shotPath = path
	return nil
}
func (d *fakeDisplay) Close() error { d.closes++; return nil }

// windowedFake adds a native handle.
type windowedFake struct {
	fakeDisplay
	handle any
}

func (d *windowedFake) Window() any { return d.handle }

// gridConsole is an in-package test console.
type gridConsole struct {
	columns, rows int
	cells         []Cell
}

func newGridConsole(columns, rows int) *gridConsole {
	return &gridConsole{columns: columns, rows: rows, cells: make([]Cell, columns*rows)}
}

func (c *gridConsole) Size() (int, int) { return c.columns, c.rows }
func (c *gridConsole) Cells() []Cell    { return c.cells }

// newTestContext builds a context around a fake display through a
// private registry, exercising the same factory path as production.
func newTestContext(t *testing.T, d Display) *Context {
	t.Helper()
	r := NewRegistry()
	r.Register("software", 10, func(DisplayOptions) (Display, error) { return d, nil }, nil)
	ctx, err := NewWindow(800, 600, withRegistry(r))
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	return ctx
}

// TestContextLifecycle checks the open/closed invariant: every
// operation fails with ErrClosed after Close, and Close is idempotent.
func TestContextLifecycle(t *testing.T) {
	fake := &fakeDisplay{w: 800, h: 600, cellW: 10, cellH: 12}
	ctx := newTestContext(t, fake)

	if err := ctx.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if fake.closes != 1 {
		t.Errorf("display closed %d times, want 1", fake.closes)
	}

	con := newGridConsole(80, 50)
	checks := []struct {
		name string
		call func() error
	}{
		{"Present", func() error { return ctx.Present(con, DefaultViewport()) }},
		{"PixelToTile", func() error { _, _, err := ctx.PixelToTile(0, 0); return err }},
		{"PixelToSubtile", func() error { _, _, err := ctx.PixelToSubtile(0, 0); return err }},
		{"ConvertEvent", func() error { return ctx.ConvertEvent(&MouseState{}) }},
		{"SaveScreenshot", func() error { return ctx.SaveScreenshot("x.png") }},
		{"ChangeTileset", func() error { return ctx.ChangeTileset(nil) }},
		{"RecommendedConsoleSize", func() error { _, _, err := ctx.RecommendedConsoleSize(1, 1); return err }},
		{"RendererType", func() error { _, err := ctx.RendererType(); return err }},
		{"Window", func() error { _, err := ctx.Window(); return err }},
	}
	for _, c := range checks {
		if err := c.call(); !errors.Is(err, ErrClosed) {
			t.Errorf("%s after Close: err = %v, want ErrClosed", c.name, err)
		}
	}
}

// TestContextPresent verifies viewport delegation and transform
// establishment.
func TestContextPresent(t *testing.T) {
	fake := &fakeDisplay{w: 1000, h: 600, cellW: 10, cellH: 12}
	ctx := newTestContext(t, fake)
	defer ctx.Close()

	// Conversions are undefined before the first present.
	if _, _, err := ctx.PixelToTile(0, 0); !errors.Is(err, ErrNoTransform) {
		t.Errorf("PixelToTile before Present: err = %v, want ErrNoTransform", err)
	}

	con := newGridConsole(80, 50)
	clear := RGB(20, 0, 40)
	opts := DefaultViewport().WithKeepAspect(true).WithClearColor(clear)
	if err := ctx.Present(con, opts); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if fake.presents != 1 {
		t.Fatalf("display presented %d times, want 1", fake.presents)
	}
	if want := image.Rect(20, 0, 980, 600); fake.viewport != want {
		t.Errorf("viewport = %v, want %v", fake.viewport, want)
	}
	if fake.clear != clear {
		t.Errorf("clear = %v, want %v", fake.clear, clear)
	}

	// Transform established: viewport origin maps to tile (0, 0).
	x, y, err := ctx.PixelToTile(20, 0)
	if err != nil || x != 0 || y != 0 {
		t.Errorf("PixelToTile(20, 0) = (%d, %d), %v; want (0, 0)", x, y, err)
	}

	// Present with a nil console fails without touching the driver.
	if err := ctx.Present(nil, opts); !errors.Is(err, ErrNilConsole) {
		t.Errorf("Present(nil): err = %v, want ErrNilConsole", err)
	}
	if fake.presents != 1 {
		t.Errorf("nil console reached the driver")
	}
}

// TestContextPresentError verifies driver failures propagate wrapped.
func TestContextPresentError(t *testing.T) {
	driverErr := errors.New("device lost")
	fake := &fakeDisplay{w: 800, h: 600, cellW: 8, cellH: 8, presentErr: driverErr}
	ctx := newTestContext(t, fake)
	defer ctx.Close()

	err := ctx.Present(newGridConsole(10, 10), DefaultViewport())
	if !errors.Is(err, driverErr) {
		t.Errorf("Present: err = %v, want wrapped %v", err, driverErr)
	}
}

// TestContextConvertEvent replays the motion scenario: with a 12-pixel
// cell viewport at (20, 0), pixel (105, 50) moving by (5, 0) crosses
// from tile 6 to tile 7.
func TestContextConvertEvent(t *testing.T) {
	fake := &fakeDisplay{w: 1000, h: 600, cellW: 10, cellH: 12}
	ctx := newTestContext(t, fake)
	defer ctx.Close()

	if err := ctx.ConvertEvent(&MouseState{}); !errors.Is(err, ErrNoTransform) {
		t.Fatalf("ConvertEvent before Present: err = %v, want ErrNoTransform", err)
	}

	if err := ctx.Present(newGridConsole(80, 50), DefaultViewport().WithKeepAspect(true)); err != nil {
		t.Fatalf("Present: %v", err)
	}

	state := &MouseState{Pixel: Point{X: 105, Y: 50}}
	if err := ctx.ConvertEvent(state); err != nil {
		t.Fatalf("ConvertEvent: %v", err)
	}
	if want := (Point{X: 7, Y: 4}); state.Tile != want {
		t.Errorf("Tile = %v, want %v", state.Tile, want)
	}

	motion := &MouseMotion{
		MouseState:  MouseState{Pixel: Point{X: 105, Y: 50}},
		PixelMotion: Point{X: 5, Y: 0},
	}
	if err := ctx.ConvertEvent(motion); err != nil {
		t.Fatalf("ConvertEvent(motion): %v", err)
	}
	if want := (Point{X: 7, Y: 4}); motion.Tile != want {
		t.Errorf("motion Tile = %v, want %v", motion.Tile, want)
	}
	// Previous pixel (100, 50) is tile 6: delta is one cell.
	if want := (Point{X: 1, Y: 0}); motion.TileMotion != want {
		t.Errorf("TileMotion = %v, want %v", motion.TileMotion, want)
	}
}

// TestContextRecommendedConsoleSize checks the best-fit computation and
// its minimum floors.
func TestContextRecommendedConsoleSize(t *testing.T) {
	fake := &fakeDisplay{w: 800, h: 600, cellW: 10, cellH: 12}
	ctx := newTestContext(t, fake)
	defer ctx.Close()

	columns, rows, err := ctx.RecommendedConsoleSize(1, 1)
	if err != nil {
		t.Fatalf("RecommendedConsoleSize: %v", err)
	}
	if columns != 80 || rows != 50 {
		t.Errorf("size = %dx%d, want 80x50", columns, rows)
	}

	// Minimums floor the result; zero minimums are treated as 1.
	columns, rows, err = ctx.RecommendedConsoleSize(100, 0)
	if err != nil {
		t.Fatalf("RecommendedConsoleSize: %v", err)
	}
	if columns != 100 || rows != 50 {
		t.Errorf("floored size = %dx%d, want 100x50", columns, rows)
	}
}

// TestContextTilesetAndScreenshot verifies pass-through operations.
func TestContextTilesetAndScreenshot(t *testing.T) {
	fake := &fakeDisplay{w: 100, h: 100, cellW: 5, cellH: 5}
	ctx := newTestContext(t, fake)
	defer ctx.Close()

	if err := ctx.ChangeTileset(nil); err != nil {
		t.Fatalf("ChangeTileset(nil): %v", err)
	}
	if fake.tileset != nil {
		t.Errorf("nil tileset not forwarded as nil")
	}
	if err := ctx.SaveScreenshot("shot.png"); err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}
	if fake.shotPath != "shot.png" {
		t.Errorf("screenshot path = %q, want shot.png", fake.shotPath)
	}
}

// TestContextWindow verifies the native-handle capability probe.
func TestContextWindow(t *testing.T) {
	plain := &fakeDisplay{w: 10, h: 10, cellW: 1, cellH: 1}
	ctx := newTestContext(t, plain)
	defer ctx.Close()
	if _, err := ctx.Window(); !errors.Is(err, ErrNoWindow) {
		t.Errorf("Window on plain display: err = %v, want ErrNoWindow", err)
	}

	handle := &struct{ name string }{"native"}
	windowed := &windowedFake{fakeDisplay: fakeDisplay{w: 10, h: 10, cellW: 1, cellH: 1}, handle: handle}
	ctx2 := newTestContext(t, windowed)
	defer ctx2.Close()
	got, err := ctx2.Window()
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if got != any(handle) {
		t.Errorf("Window = %v, want the driver handle", got)
	}
}
