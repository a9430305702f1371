package tilectx

import (
	"errors"
	"testing"
)

func noopFactory(DisplayOptions) (Display, error) {
	return &fakeDisplay{w: 1, h: 1, cellW: 1, cellH: 1}, nil
}

func TestRegistryOrdering(t *testing.T) {
	r := NewRegistry()
	r.Register("software", 10, noopFactory, nil)
	r.Register("gpu", 100, noopFactory, nil)
	r.Register("terminal", 30, noopFactory, nil)
	r.Register("window", 80, noopFactory, nil)

	got := r.Drivers()
	want := []string{"gpu", "window", "terminal", "software"}
	if len(got) != len(want) {
		t.Fatalf("Drivers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Drivers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryTieBreak(t *testing.T) {
	r := NewRegistry()
	r.Register("beta", 50, noopFactory, nil)
	r.Register("alpha", 50, noopFactory, nil)

	got := r.Drivers()
	if got[0] != "alpha" || got[1] != "beta" {
		t.Errorf("Drivers() = %v, want name order at equal priority", got)
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("software", 10, noopFactory, nil)
	r.Unregister("software")
	if _, ok := r.Get("software"); ok {
		t.Error("Get after Unregister found the driver")
	}
	if len(r.Drivers()) != 0 {
		t.Errorf("Drivers() = %v, want empty", r.Drivers())
	}
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	r.Register("software", 10, noopFactory, nil)
	r.Register("software", 99, noopFactory, nil)
	e, ok := r.Get("software")
	if !ok || e.Priority != 99 {
		t.Errorf("re-registration did not replace entry: %+v", e)
	}
}

// TestSelectDriverAuto verifies automatic selection skips unavailable
// drivers in priority order.
func TestSelectDriverAuto(t *testing.T) {
	r := NewRegistry()
	r.Register("gpu", 100, noopFactory, func() bool { return false })
	r.Register("window", 80, noopFactory, func() bool { return true })
	r.Register("software", 10, noopFactory, nil)

	e, err := r.selectDriver(RendererAuto)
	if err != nil {
		t.Fatalf("selectDriver: %v", err)
	}
	if e.Name != "window" {
		t.Errorf("selected %q, want window", e.Name)
	}
}

// TestSelectDriverFallback verifies a named but unavailable renderer
// falls back to the best available driver instead of failing.
func TestSelectDriverFallback(t *testing.T) {
	r := NewRegistry()
	r.Register("software", 10, noopFactory, nil)

	e, err := r.selectDriver(RendererGPU)
	if err != nil {
		t.Fatalf("selectDriver: %v", err)
	}
	if e.Name != "software" {
		t.Errorf("selected %q, want software fallback", e.Name)
	}
}

func TestSelectDriverEmpty(t *testing.T) {
	r := NewRegistry()
	if _, err := r.selectDriver(RendererAuto); !errors.Is(err, ErrNoDriver) {
		t.Errorf("auto on empty registry: err = %v, want ErrNoDriver", err)
	}
	if _, err := r.selectDriver(RendererWindow); !errors.Is(err, ErrNoDriver) {
		t.Errorf("named on empty registry: err = %v, want ErrNoDriver", err)
	}
}

// TestAvailabilityCached verifies the probe runs at most once per entry.
func TestAvailabilityCached(t *testing.T) {
	calls := 0
	r := NewRegistry()
	r.Register("gpu", 100, noopFactory, func() bool { calls++; return true })

	e, _ := r.Get("gpu")
	e.available()
	e.available()
	if _, err := r.selectDriver(RendererAuto); err != nil {
		t.Fatalf("selectDriver: %v", err)
	}
	if calls != 1 {
		t.Errorf("availability probed %d times, want 1", calls)
	}
}

// TestNewWindowFallbackRenderer verifies the factory path: requesting an
// unregistered renderer against a software-only registry still yields a
// working context reporting its actual driver family.
func TestNewWindowFallbackRenderer(t *testing.T) {
	r := NewRegistry()
	r.Register("software", 10, func(opts DisplayOptions) (Display, error) {
		return newSoftwareDisplay(opts)
	}, nil)

	ctx, err := NewWindow(320, 200, WithRenderer(RendererWindow), withRegistry(r))
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	defer ctx.Close()

	renderer, err := ctx.RendererType()
	if err != nil {
		t.Fatalf("RendererType: %v", err)
	}
	if renderer != RendererSoftware {
		t.Errorf("RendererType = %v, want RendererSoftware", renderer)
	}
}
