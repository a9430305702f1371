// Package tilectx manages display contexts for tile-grid consoles.
//
// # Overview
//
// tilectx owns the lifetime and presentation behavior of a rendering
// surface (a "context") that displays a grid of character/tile cells (a
// "console").  It composes consoles onto the display under a configurable
// scaling/letterboxing/alignment policy and translates between display
// pixels and grid cells in both directions.
//
// # Quick Start
//
//	import (
//	    "github.com/tilectx/tilectx"
//	    "github.com/tilectx/tilectx/console"
//	)
//
//	ctx, err := tilectx.NewTerminal(80, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	con := console.New(80, 50)
//	con.Fill(tilectx.Cell{Rune: '.', Fg: tilectx.White, Bg: tilectx.Black})
//	if err := ctx.Present(con, tilectx.DefaultViewport()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Drivers
//
// The actual display subsystem is pluggable.  The built-in software
// driver renders to an offscreen image and is always available.  Driver
// packages register themselves on import:
//
//	import (
//	    _ "github.com/tilectx/tilectx/driver/ebitengine" // desktop window
//	    _ "github.com/tilectx/tilectx/driver/tcellterm"  // text terminal
//	    _ "github.com/tilectx/tilectx/driver/gpuhost"    // host GPU surface
//	)
//
// NewWindow and NewTerminal pick the best available driver, or a specific
// one via WithRenderer.  A requested but unavailable renderer falls back
// to the next best and logs a warning; it is not a hard failure.
//
// The ebitengine driver additionally needs its render loop on the main
// goroutine: after creating the context, call ebitengine.Main from main
// and run the game elsewhere.  See that package's documentation.
//
// # Coordinate System
//
// Pixel coordinates have their origin at the top-left of the display
// surface, X increasing right and Y increasing down.  Tile coordinates
// address console cells the same way.  The pixel-to-tile mapping is
// established by Present and changes whenever the viewport does.
//
// # Concurrency
//
// A Context must be used from a single goroutine, or calls must be
// serialized by the caller.  All operations are synchronous: each call
// either completes or fails before it returns.
package tilectx
