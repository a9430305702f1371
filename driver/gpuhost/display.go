// Copyright 2026 The tilectx Authors
// SPDX-License-Identifier: MIT

package gpuhost

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/gpucontext"

	"github.com/tilectx/tilectx"
	"github.com/tilectx/tilectx/tileset"
)

// Driver errors.
var (
	// ErrNoHost is returned when no host draw context is attached.
	ErrNoHost = errors.New("gpuhost: no host attached")

	// ErrTextureUpload is returned when the host cannot create a
	// texture from the composed frame.
	ErrTextureUpload = errors.New("gpuhost: texture upload failed")
)

// textureDestroyer matches host texture handles that support explicit
// destruction.
type textureDestroyer interface {
	Destroy()
}

// Display composes consoles on the CPU and presents them through the
// attached host's texture drawer.
type Display struct {
	frame   *image.RGBA
	texture any // current host texture
	active  tilectx.Tileset
	builtin tilectx.Tileset
	closed  bool
}

var (
	_ tilectx.Display        = (*Display)(nil)
	_ tilectx.WindowProvider = (*Display)(nil)
)

// New creates a display bound to the attached host surface.  The
// requested size is ignored in window mode: the host surface dictates
// the real size.
func New(opts tilectx.DisplayOptions) (tilectx.Display, error) {
	drawer, _, _ := host()
	if drawer == nil {
		return nil, ErrNoHost
	}
	if opts.Mode == tilectx.DisplayModeTerminal && opts.Tileset == nil {
		return nil, tilectx.ErrMissingTileset
	}
	builtin := tileset.Fallback()
	active := opts.Tileset
	if active == nil {
		active = builtin
	}
	return &Display{active: active, builtin: builtin}, nil
}

// Size returns the host surface size.
func (d *Display) Size() (int, int) {
	_, w, h := host()
	return w, h
}

// CellSize returns the active tileset's tile size.
func (d *Display) CellSize() (int, int) {
	return d.active.TileSize()
}

// Present composes the console into a CPU frame, uploads it as a host
// texture, and draws it at the surface origin.  The previous frame's
// texture is destroyed only after the new upload completed, matching
// the host's GPU synchronization expectations.
func (d *Display) Present(con tilectx.Console, viewport image.Rectangle, clear color.RGBA) error {
	if d.closed {
		return tilectx.ErrClosed
	}
	drawer, width, height := host()
	if drawer == nil {
		return ErrNoHost
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: host surface %dx%d", tilectx.ErrInvalidDimensions, width, height)
	}

	if d.frame == nil || d.frame.Bounds().Dx() != width || d.frame.Bounds().Dy() != height {
		d.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	if err := tilectx.BlitConsole(d.frame, con, d.active, viewport, clear); err != nil {
		return err
	}

	creator := drawer.TextureCreator()
	if creator == nil {
		return ErrNoHost
	}
	tex, err := creator.NewTextureFromRGBA(width, height, d.frame.Pix)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTextureUpload, err)
	}
	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		if destroyer, ok := tex.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		return ErrTextureUpload
	}

	// NewTextureFromRGBA waits for prior GPU work, so the outgoing
	// texture is no longer referenced; it must be released before the
	// draw so a draw failure cannot strand it.
	d.installTexture(tex)

	if err := drawer.DrawTexture(gpuTex, 0, 0); err != nil {
		return fmt.Errorf("gpuhost: draw: %w", err)
	}
	return nil
}

// installTexture destroys the current texture and stores the new one.
func (d *Display) installTexture(tex any) {
	if destroyer, ok := d.texture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	d.texture = tex
}

// SetTileset swaps the glyph atlas; nil reverts to the built-in
// fallback.
func (d *Display) SetTileset(ts tilectx.Tileset) error {
	if d.closed {
		return tilectx.ErrClosed
	}
	if ts == nil {
		ts = d.builtin
	}
	d.active = ts
	return nil
}

// Screenshot writes the last composed frame as PNG.
func (d *Display) Screenshot(path string) error {
	if d.closed {
		return tilectx.ErrClosed
	}
	if d.frame == nil {
		return fmt.Errorf("gpuhost: screenshot: nothing presented yet")
	}
	if path == "" {
		path = tilectx.DefaultScreenshotPath("png")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gpuhost: screenshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, d.frame); err != nil {
		return fmt.Errorf("gpuhost: screenshot: %w", err)
	}
	return nil
}

// Window returns the host draw context serving as the native surface
// handle.
func (d *Display) Window() any {
	drawer, _, _ := host()
	return drawer
}

// Close destroys the display's texture.  Close is idempotent.
func (d *Display) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.installTexture(nil)
	d.frame = nil
	return nil
}
