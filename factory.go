package tilectx

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tilectx/tilectx/tileset"
)

// NewWindow creates a context with the desired pixel resolution.
//
// width and height are the requested window size in pixels.  Defaults:
// best available driver, vsync on, a resizable window, and the invoking
// program's base name as title; see the With* options.
//
// Driver fallback (a requested renderer that is unavailable) is a
// recovered condition: construction succeeds on the fallback driver and
// a warning is logged.  Unrecoverable driver failures are returned as
// errors.
func NewWindow(width, height int, opts ...Option) (*Context, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrInvalidDimensions, width, height)
	}
	o := buildOptions(opts)
	return create(o, DisplayOptions{
		Mode:        DisplayModeWindow,
		Width:       width,
		Height:      height,
		Tileset:     o.tileset,
		VSync:       o.vsync,
		WindowFlags: o.flags,
		Title:       o.title,
	})
}

// NewTerminal creates a context with the desired console size.
//
// columns and rows are the console grid size; the driver derives the
// pixel size from the tileset's tile size.  Without WithTileset the
// compiled-in fallback tileset is used, so terminal creation only fails
// with ErrMissingTileset when no tileset can be resolved at all.  The
// remaining options match NewWindow.
func NewTerminal(columns, rows int, opts ...Option) (*Context, error) {
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrInvalidDimensions, columns, rows)
	}
	o := buildOptions(opts)
	ts := o.tileset
	if ts == nil {
		ts = tileset.Fallback()
	}
	if ts == nil {
		return nil, ErrMissingTileset
	}
	return create(o, DisplayOptions{
		Mode:        DisplayModeTerminal,
		Columns:     columns,
		Rows:        rows,
		Tileset:     ts,
		VSync:       o.vsync,
		WindowFlags: o.flags,
		Title:       o.title,
	})
}

// buildOptions applies Option functions over the defaults and resolves
// the default title.
func buildOptions(opts []Option) contextOptions {
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.titleSet {
		o.title = filepath.Base(os.Args[0])
	}
	return o
}

// create selects a driver, constructs its display, and wraps it.
func create(o contextOptions, dopts DisplayOptions) (*Context, error) {
	entry, err := o.registry.selectDriver(o.renderer)
	if err != nil {
		return nil, err
	}
	display, err := entry.Factory(dopts)
	if err != nil {
		return nil, fmt.Errorf("tilectx: driver %q: %w", entry.Name, err)
	}
	Logger().Info("tilectx: context created",
		slog.String("driver", entry.Name))
	return &Context{
		display:  display,
		driver:   entry.Name,
		renderer: rendererForDriver(entry.Name),
	}, nil
}
