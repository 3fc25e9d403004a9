// Package trigger schedules hit reporting on start and on counter changes.
package trigger

import "sync"

// CounterTrigger invokes its callback once on the first observed counter id
// and once more each time the observed id changes. Repeated observations of
// the same id are ignored.
type CounterTrigger struct {
	fire func(counterID int)

	mu      sync.Mutex
	started bool
	last    int
}

// NewCounterTrigger returns a trigger that calls fire.
func NewCounterTrigger(fire func(counterID int)) *CounterTrigger {
	return &CounterTrigger{fire: fire}
}

// Observe records counterID and fires if it is the first observation or
// differs from the previous one. It reports whether the callback ran.
func (t *CounterTrigger) Observe(counterID int) bool {
	t.mu.Lock()
	if t.started && t.last == counterID {
		t.mu.Unlock()
		return false
	}
	t.started = true
	t.last = counterID
	t.mu.Unlock()

	t.fire(counterID)
	return true
}

// Last returns the most recently observed counter id and whether any
// observation has happened yet.
func (t *CounterTrigger) Last() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last, t.started
}
