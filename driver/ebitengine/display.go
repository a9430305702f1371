// Copyright 2026 The tilectx Authors
// SPDX-License-Identifier: MIT

// Package ebitengine provides a tilectx display driver backed by a
// desktop window via hajimehoshi/ebiten.
//
// Ebitengine requires its render loop on the main OS thread (RunGame
// binds the main goroutine to it), so the driver splits ownership:
// creating a context registers the window, and the program's main
// goroutine runs the loop by calling Main, which blocks until the
// context is closed.  Run the game itself on another goroutine:
//
//	import "github.com/tilectx/tilectx/driver/ebitengine"
//
//	func main() {
//	    ctx, err := tilectx.NewWindow(800, 600)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    go run(ctx) // Present/ConvertEvent loop, then ctx.Close
//	    if err := ebitengine.Main(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Present composes the console into a CPU frame under a mutex and the
// loop uploads it.  The tilectx side stays synchronous; a render loop
// failure is reported by the next Present call.
package ebitengine

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tilectx/tilectx"
	"github.com/tilectx/tilectx/tileset"
)

// ErrNoDisplay is returned by Main when no window context is awaiting
// the render loop.
var ErrNoDisplay = errors.New("ebitengine: no display awaiting Main")

func init() {
	tilectx.Register("window", 80, New, nil)
}

// Display presents consoles to an ebitengine window.
type Display struct {
	mu      sync.Mutex
	frame   *image.RGBA // last composed frame, nil before first Present
	tex     *ebiten.Image
	active  tilectx.Tileset
	builtin tilectx.Tileset
	width   int // logical window size
	height  int
	closed  bool

	loopErr chan error
}

var _ tilectx.Display = (*Display)(nil)

// pending holds the display whose render loop Main has not started
// yet.
var pending struct {
	mu sync.Mutex
	d  *Display
}

func setPending(d *Display) {
	pending.mu.Lock()
	defer pending.mu.Unlock()
	if pending.d != nil {
		tilectx.Logger().Warn("ebitengine: replacing display awaiting Main")
	}
	pending.d = d
}

func takePending() *Display {
	pending.mu.Lock()
	defer pending.mu.Unlock()
	d := pending.d
	pending.d = nil
	return d
}

// Main runs the window's render loop on the calling goroutine and
// blocks until the display is closed or the loop fails.  Ebitengine
// binds the loop to the main OS thread, so Main must be called from the
// program's main goroutine after the window context is created.
func Main() error {
	d := takePending()
	if d == nil {
		return ErrNoDisplay
	}
	err := ebiten.RunGame(&game{d: d})
	if err != nil {
		tilectx.Logger().Warn("ebitengine: render loop exited", slog.Any("error", err))
	}
	d.loopErr <- err
	return err
}

// New configures the window and registers it for Main, which runs the
// render loop.
func New(opts tilectx.DisplayOptions) (tilectx.Display, error) {
	builtin := tileset.Fallback()
	active := opts.Tileset
	if active == nil {
		active = builtin
	}

	width, height := opts.Width, opts.Height
	if opts.Mode == tilectx.DisplayModeTerminal {
		if opts.Tileset == nil {
			return nil, tilectx.ErrMissingTileset
		}
		if opts.Columns < 1 || opts.Rows < 1 {
			return nil, fmt.Errorf("%w: %dx%d cells", tilectx.ErrInvalidDimensions, opts.Columns, opts.Rows)
		}
		tw, th := opts.Tileset.TileSize()
		width, height = opts.Columns*tw, opts.Rows*th
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d pixels", tilectx.ErrInvalidDimensions, width, height)
	}

	d := &Display{
		active:  active,
		builtin: builtin,
		width:   width,
		height:  height,
		loopErr: make(chan error, 1),
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetVsyncEnabled(opts.VSync)
	if opts.WindowFlags&tilectx.WindowResizable != 0 {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if opts.WindowFlags&(tilectx.WindowFullscreen|tilectx.WindowFullscreenDesktop) != 0 {
		ebiten.SetFullscreen(true)
	}

	setPending(d)
	return d, nil
}

// game adapts Display to the ebiten.Game interface.
type game struct {
	d *Display
}

func (g *game) Update() error {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()
	if g.d.closed {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()
	if g.d.frame == nil {
		return
	}
	w, h := g.d.frame.Bounds().Dx(), g.d.frame.Bounds().Dy()
	if g.d.tex == nil || g.d.tex.Bounds().Dx() != w || g.d.tex.Bounds().Dy() != h {
		g.d.tex = ebiten.NewImage(w, h)
	}
	g.d.tex.WritePixels(g.d.frame.Pix)
	screen.DrawImage(g.d.tex, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.d.mu.Lock()
	defer g.d.mu.Unlock()
	if outsideWidth > 0 && outsideHeight > 0 {
		g.d.width, g.d.height = outsideWidth, outsideHeight
	}
	return g.d.width, g.d.height
}

// Size returns the logical window size, tracking user resizes.
func (d *Display) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height
}

// CellSize returns the active tileset's tile size.
func (d *Display) CellSize() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active.TileSize()
}

// Present composes the console into the frame consumed by the render
// loop.  A dead render loop surfaces here as an error.
func (d *Display) Present(con tilectx.Console, viewport image.Rectangle, clear color.RGBA) error {
	select {
	case err := <-d.loopErr:
		if err != nil {
			return fmt.Errorf("ebitengine: render loop: %w", err)
		}
	default:
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return tilectx.ErrClosed
	}
	if d.frame == nil || d.frame.Bounds().Dx() != d.width || d.frame.Bounds().Dy() != d.height {
		d.frame = image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	}
	return tilectx.BlitConsole(d.frame, con, d.active, viewport, clear)
}

// SetTileset swaps the glyph atlas; nil reverts to the built-in
// fallback.
func (d *Display) SetTileset(ts tilectx.Tileset) error {
	d.mu.Lock()
	defer d.mu.Unlock()
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
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return tilectx.ErrClosed
	}
	if d.frame == nil {
		return fmt.Errorf("ebitengine: screenshot: nothing presented yet")
	}
	if path == "" {
		path = tilectx.DefaultScreenshotPath("png")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ebitengine: screenshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, d.frame); err != nil {
		return fmt.Errorf("ebitengine: screenshot: %w", err)
	}
	return nil
}

// Close stops the render loop, which closes the window.  A display
// still awaiting Main is withdrawn so a later Main does not open a
// window for it.  Close is idempotent.
func (d *Display) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	d.frame = nil
	d.mu.Unlock()

	pending.mu.Lock()
	if pending.d == d {
		pending.d = nil
	}
	pending.mu.Unlock()
	return nil
}
