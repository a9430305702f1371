package tilectx

// Option configures context creation in NewWindow and NewTerminal.
//
// Example:
//
//	// Default driver selection, fallback tileset
//	ctx, err := tilectx.NewWindow(800, 600)
//
//	// Specific renderer and tileset
//	ctx, err := tilectx.NewWindow(800, 600,
//	    tilectx.WithRenderer(tilectx.RendererWindow),
//	    tilectx.WithTileset(ts))
type Option func(*contextOptions)

// contextOptions holds optional configuration for context creation.
type contextOptions struct {
	renderer Renderer
	tileset  Tileset
	vsync    bool
	flags    WindowFlags
	title    string
	titleSet bool
	registry *Registry
}

// defaultContextOptions returns the construction defaults: automatic
// driver selection, vsync on, a resizable window, and the invoking
// program's base name as the title.
func defaultContextOptions() contextOptions {
	return contextOptions{
		renderer: RendererAuto,
		vsync:    true,
		flags:    WindowResizable,
		registry: globalRegistry,
	}
}

// WithRenderer requests a specific display driver family.  When the
// requested renderer is unavailable the factory falls back to the best
// available one and logs a warning; construction still succeeds.
func WithRenderer(r Renderer) Option {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithTileset sets the initial glyph atlas.  Without it, window
// contexts start on the driver's built-in fallback tileset and terminal
// contexts use the compiled-in fallback from tilectx/tileset.
func WithTileset(ts Tileset) Option {
	return func(o *contextOptions) {
		o.tileset = ts
	}
}

// WithVSync sets the vertical-sync request.  The default of true is
// recommended; disable it for benchmarking.
func WithVSync(enabled bool) Option {
	return func(o *contextOptions) {
		o.vsync = enabled
	}
}

// WithWindowFlags replaces the default WindowResizable flag set.
func WithWindowFlags(flags WindowFlags) Option {
	return func(o *contextOptions) {
		o.flags = flags
	}
}

// WithTitle sets the window title.  The default is the base name of the
// invoking program.
func WithTitle(title string) Option {
	return func(o *contextOptions) {
		o.title = title
		o.titleSet = true
	}
}

// withRegistry points a factory at a private registry.  Used by tests.
func withRegistry(r *Registry) Option {
	return func(o *contextOptions) {
		o.registry = r
	}
}
