package tilectx

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// DriverFactory creates a new Display from construction options.
// Implementations should validate options and return descriptive errors.
type DriverFactory func(opts DisplayOptions) (Display, error)

// DriverEntry represents a registered display driver.
type DriverEntry struct {
	// Name is the unique identifier for this driver.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: host GPU surfaces
	//   - 80: desktop windows
	//   - 30: text terminals
	//   - 10: offscreen software
	Priority int

	// Factory creates display instances.
	Factory DriverFactory

	// Available reports if the driver can run on this system.  The
	// result is cached on first use; probing may be expensive.
	Available func() bool

	availOnce sync.Once
	avail     bool
}

// available caches and returns the driver's availability.
func (e *DriverEntry) available() bool {
	e.availOnce.Do(func() {
		e.avail = e.Available == nil || e.Available()
	})
	return e.avail
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry manages registered display drivers.
//
// The registry enables driver packages to register themselves via init()
// without the core importing them.  Most code uses the global registry
// through Register and the NewWindow/NewTerminal factories; a private
// Registry is useful for tests.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*DriverEntry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*DriverEntry)}
}

// Register adds a driver to the global registry.
//
// If available is nil, the driver is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory DriverFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a driver from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Drivers returns all registered driver names sorted by priority
// (highest first).
func Drivers() []string {
	return globalRegistry.Drivers()
}

// Register adds a driver to the registry.
func (r *Registry) Register(name string, priority int, factory DriverFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = &DriverEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a driver from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Get returns a registered driver by name.
func (r *Registry) Get(name string) (*DriverEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Drivers returns all registered driver names sorted by priority
// (highest first), name as tie-breaker.
func (r *Registry) Drivers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]*DriverEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// best returns the highest-priority available driver.
func (r *Registry) best() (*DriverEntry, bool) {
	for _, name := range r.Drivers() {
		e, ok := r.Get(name)
		if ok && e.available() {
			return e, true
		}
	}
	return nil, false
}

// selectDriver resolves a renderer request against the registry.
//
// RendererAuto picks the best available driver.  A named renderer that
// is unregistered or unavailable falls back to the best available one;
// the fallback is a recovered condition logged at Warn level, not an
// error.  Only an empty registry is a hard failure.
func (r *Registry) selectDriver(renderer Renderer) (*DriverEntry, error) {
	if renderer != RendererAuto {
		if e, ok := r.Get(renderer.String()); ok && e.available() {
			return e, nil
		}
		fallback, ok := r.best()
		if !ok {
			return nil, fmt.Errorf("%w: renderer %q", ErrNoDriver, renderer)
		}
		Logger().Warn("tilectx: requested renderer unavailable, falling back",
			slog.String("requested", renderer.String()),
			slog.String("driver", fallback.Name))
		return fallback, nil
	}
	e, ok := r.best()
	if !ok {
		return nil, ErrNoDriver
	}
	return e, nil
}
