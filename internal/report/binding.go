package report

import (
	"errors"
	"sync"
)

// ErrSurfaceBound signals an attempt to attach a chart to a surface whose
// previous binding was never released. Rendering a surface twice produces
// duplicate overlapping artifacts, so the old binding must be torn down
// first.
var ErrSurfaceBound = errors.New("chart surface already bound")

// ChartBindings tracks which output surfaces currently have a chart
// attached. A binding is a scoped resource: Acquire claims the surface and
// the returned release func must run before the surface can be bound again.
// Each claim carries a generation; a release only tears down the binding it
// belongs to, so a stale release func left over from before a Rebind is a
// no-op.
type ChartBindings struct {
	mu    sync.Mutex
	gen   uint64
	bound map[string]uint64
}

// NewChartBindings returns an empty registry.
func NewChartBindings() *ChartBindings {
	return &ChartBindings{bound: make(map[string]uint64)}
}

// Acquire claims a surface. It fails with ErrSurfaceBound if the surface is
// already held.
func (b *ChartBindings) Acquire(surface string) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, held := b.bound[surface]; held {
		return nil, ErrSurfaceBound
	}

	return b.claim(surface), nil
}

// Rebind tears down any existing binding for the surface and claims it
// again, atomically, for callers refreshing a chart in place.
func (b *ChartBindings) Rebind(surface string) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.claim(surface)
}

// claim records a new generation for the surface and returns its release
// func. Callers hold b.mu.
func (b *ChartBindings) claim(surface string) func() {
	b.gen++
	gen := b.gen
	b.bound[surface] = gen

	return func() {
		b.mu.Lock()
		if b.bound[surface] == gen {
			delete(b.bound, surface)
		}
		b.mu.Unlock()
	}
}

// Bound reports whether a surface currently has a chart attached.
func (b *ChartBindings) Bound(surface string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, held := b.bound[surface]
	return held
}
