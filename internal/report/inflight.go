package report

import (
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrLoadInFlight signals that a load for the same report type is already
// running. The second request is dropped, not queued; the user's next
// refresh is the retry mechanism.
var ErrLoadInFlight = errors.New("report load already in flight")

// InflightGuard prevents duplicate overlapping loads per report type, e.g.
// from a double-clicked refresh.
type InflightGuard struct {
	mu    sync.Mutex
	slots map[string]*semaphore.Weighted
}

// NewInflightGuard returns an empty guard.
func NewInflightGuard() *InflightGuard {
	return &InflightGuard{slots: make(map[string]*semaphore.Weighted)}
}

// Begin claims the slot for a report type. It returns a release func on
// success and ErrLoadInFlight when a load is already pending.
func (g *InflightGuard) Begin(reportType string) (func(), error) {
	g.mu.Lock()
	slot, ok := g.slots[reportType]
	if !ok {
		slot = semaphore.NewWeighted(1)
		g.slots[reportType] = slot
	}
	g.mu.Unlock()

	if !slot.TryAcquire(1) {
		return nil, ErrLoadInFlight
	}
	return func() { slot.Release(1) }, nil
}
