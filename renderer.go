package tilectx

// Renderer identifies the display driver family behind a context.
type Renderer int

const (
	// RendererAuto selects the best available driver.
	RendererAuto Renderer = iota

	// RendererSoftware renders to an offscreen image with no window.
	RendererSoftware

	// RendererTerminal renders to a text terminal.
	RendererTerminal

	// RendererWindow renders to a desktop window.
	RendererWindow

	// RendererGPU renders through a host-provided GPU surface.
	RendererGPU
)

// String returns the renderer name, which matches the driver registry
// name for everything but RendererAuto.
func (r Renderer) String() string {
	switch r {
	case RendererAuto:
		return "auto"
	case RendererSoftware:
		return "software"
	case RendererTerminal:
		return "terminal"
	case RendererWindow:
		return "window"
	case RendererGPU:
		return "gpu"
	default:
		return "unknown"
	}
}

// rendererForDriver maps a registry driver name back to its renderer
// constant.
func rendererForDriver(name string) Renderer {
	switch name {
	case "software":
		return RendererSoftware
	case "terminal":
		return RendererTerminal
	case "window":
		return RendererWindow
	case "gpu":
		return RendererGPU
	default:
		return RendererAuto
	}
}

// WindowFlags is a bitfield of window construction hints.  Drivers apply
// the flags they understand and ignore the rest.
type WindowFlags uint32

const (
	// WindowFullscreen requests exclusive fullscreen mode.
	// WindowFullscreenDesktop should be preferred whenever possible.
	WindowFullscreen WindowFlags = 1 << iota

	// WindowFullscreenDesktop requests a borderless fullscreen window
	// at the desktop resolution.
	WindowFullscreenDesktop

	// WindowHidden creates the window hidden.
	WindowHidden

	// WindowBorderless creates the window without a decorative border.
	WindowBorderless

	// WindowResizable allows the user to resize the window.
	WindowResizable

	// WindowMinimized creates the window minimized.
	WindowMinimized

	// WindowMaximized creates the window maximized.
	WindowMaximized

	// WindowAllowHighDPI opts in to high-DPI mode where supported.
	WindowAllowHighDPI
)
