package tilectx

import "errors"

// Sentinel errors returned by contexts, factories, and the driver
// registry.  Driver failures are wrapped with fmt.Errorf("...: %w", err)
// so callers can match them with errors.Is.
var (
	// ErrClosed is returned by any operation on a context after Close.
	ErrClosed = errors.New("tilectx: context is closed")

	// ErrNoTransform is returned by coordinate conversions before the
	// first Present call has established a viewport transform.
	ErrNoTransform = errors.New("tilectx: no viewport transform established")

	// ErrNoWindow is returned by Context.Window when the driver has no
	// native display surface (e.g. the offscreen software driver).
	ErrNoWindow = errors.New("tilectx: context does not have a native window")

	// ErrMissingTileset is returned when a terminal-size display is
	// requested without a resolvable tileset.
	ErrMissingTileset = errors.New("tilectx: terminal context requires a tileset")

	// ErrInvalidDimensions is returned when requested window or console
	// dimensions are not positive.
	ErrInvalidDimensions = errors.New("tilectx: invalid dimensions")

	// ErrNilConsole is returned by Present when the console is nil.
	ErrNilConsole = errors.New("tilectx: nil console")

	// ErrNoDriver is returned when no display driver is registered or
	// available.
	ErrNoDriver = errors.New("tilectx: no display driver available")
)
