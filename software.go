package tilectx

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/tilectx/tilectx/tileset"
)

// SoftwareDisplay is an offscreen display rendering to an *image.RGBA.
// It has no window and is always available, which makes it the fallback
// driver and the natural choice for headless rendering and tests.
type SoftwareDisplay struct {
	frame   *image.RGBA
	active  Tileset
	builtin Tileset
	closed  bool
}

// Interface compliance check.  SoftwareDisplay deliberately does not
// implement WindowProvider: it has no native surface.
var _ Display = (*SoftwareDisplay)(nil)

func init() {
	Register("software", 10, newSoftwareDisplay, nil)
}

// newSoftwareDisplay is the registered driver factory.
func newSoftwareDisplay(opts DisplayOptions) (Display, error) {
	builtin := tileset.Fallback()
	width, height := opts.Width, opts.Height
	if opts.Mode == DisplayModeTerminal {
		if opts.Tileset == nil {
			return nil, ErrMissingTileset
		}
		if opts.Columns < 1 || opts.Rows < 1 {
			return nil, fmt.Errorf("%w: %dx%d cells", ErrInvalidDimensions, opts.Columns, opts.Rows)
		}
		tw, th := opts.Tileset.TileSize()
		width, height = opts.Columns*tw, opts.Rows*th
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrInvalidDimensions, width, height)
	}

	active := opts.Tileset
	if active == nil {
		active = builtin
	}
	return &SoftwareDisplay{
		frame:   image.NewRGBA(image.Rect(0, 0, width, height)),
		active:  active,
		builtin: builtin,
	}, nil
}

// Size returns the surface size in pixels.
func (d *SoftwareDisplay) Size() (int, int) {
	if d.frame == nil {
		return 0, 0
	}
	return d.frame.Bounds().Dx(), d.frame.Bounds().Dy()
}

// CellSize returns the active tileset's tile size.
func (d *SoftwareDisplay) CellSize() (int, int) {
	return d.active.TileSize()
}

// Present composes the console into the offscreen frame.
func (d *SoftwareDisplay) Present(con Console, viewport image.Rectangle, clear color.RGBA) error {
	if d.closed {
		return ErrClosed
	}
	return BlitConsole(d.frame, con, d.active, viewport, clear)
}

// SetTileset swaps the glyph atlas; nil reverts to the built-in
// fallback.
func (d *SoftwareDisplay) SetTileset(ts Tileset) error {
	if d.closed {
		return ErrClosed
	}
	if ts == nil {
		ts = d.builtin
	}
	d.active = ts
	return nil
}

// Screenshot writes the frame as PNG.  An empty path selects a
// timestamped file in the working directory.
func (d *SoftwareDisplay) Screenshot(path string) error {
	if d.closed {
		return ErrClosed
	}
	if path == "" {
		path = DefaultScreenshotPath("png")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tilectx: screenshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, d.frame); err != nil {
		return fmt.Errorf("tilectx: screenshot: %w", err)
	}
	return nil
}

// Frame returns the composed frame.  The image is reused by the next
// Present call; copy it to keep the contents.
func (d *SoftwareDisplay) Frame() *image.RGBA {
	return d.frame
}

// Close releases the frame.  Close is idempotent.
func (d *SoftwareDisplay) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.frame = nil
	return nil
}
