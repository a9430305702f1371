package tilectx

import (
	"fmt"
	"image"
	"image/color"
	"time"
)

// DisplayMode selects how a display's initial size is specified.
type DisplayMode int

const (
	// DisplayModeWindow sizes the display in pixels.
	DisplayModeWindow DisplayMode = iota

	// DisplayModeTerminal sizes the display in console cells; the
	// driver derives the pixel size from the tileset's tile size.
	DisplayModeTerminal
)

// DisplayOptions is the construction request handed to a driver factory.
// It is consumed during creation and not retained.
type DisplayOptions struct {
	// Mode selects pixel or cell sizing.
	Mode DisplayMode

	// Width and Height are the requested pixel size (window mode).
	Width, Height int

	// Columns and Rows are the requested console size (terminal mode).
	Columns, Rows int

	// Tileset is the initial glyph atlas.  May be nil in window mode,
	// in which case the driver uses its built-in fallback; terminal
	// mode drivers that need a tile size fail with ErrMissingTileset
	// when it is nil.
	Tileset Tileset

	// VSync requests vertical sync where the driver supports it.
	VSync bool

	// WindowFlags carries window construction hints.
	WindowFlags WindowFlags

	// Title is the window title.
	Title string
}

// Display is the underlying display subsystem behind a Context: one
// open surface plus its presentation state.  Driver packages implement
// it and register factories with Register.
//
// Contexts call every method synchronously and serialize access; a
// Display does not need internal locking unless the driver itself runs a
// render loop.
type Display interface {
	// Size returns the current surface size in pixels.  It may change
	// between calls when the user resizes the window.
	Size() (width, height int)

	// CellSize returns the active tileset's tile size in surface
	// pixels.
	CellSize() (width, height int)

	// Present composes the console into the given viewport rectangle,
	// filling the rest of the surface with the clear color.
	Present(con Console, viewport image.Rectangle, clear color.RGBA) error

	// SetTileset swaps the active glyph atlas.  A nil tileset reverts
	// to the driver's built-in fallback.
	SetTileset(ts Tileset) error

	// Screenshot writes the last presented frame to path.  An empty
	// path means a driver-chosen default filename.
	Screenshot(path string) error

	// Close releases the display.  Close is idempotent.
	Close() error
}

// WindowProvider is an optional interface for displays with a native
// window or surface handle.  Context.Window fails with ErrNoWindow when
// the driver does not implement it.
type WindowProvider interface {
	// Window returns the driver-specific native handle.  The handle
	// becomes invalid once the display is closed.
	Window() any
}

// DefaultScreenshotPath returns a timestamped filename in the working
// directory for drivers that receive an empty screenshot path.  ext is
// the extension without the dot.
func DefaultScreenshotPath(ext string) string {
	return fmt.Sprintf("screenshot-%s.%s", time.Now().Format("20060102-150405"), ext)
}
