package busy

import "sync"

// Tracker is a reference-counted busy gate. Every in-flight network request
// holds one reference; the indicator stays visible until the last reference
// is released. It replaces the ambient global loader state the UI used to
// mutate from request interceptors: callers receive an injected *Tracker and
// call Begin/End explicitly.
type Tracker struct {
	mu       sync.Mutex
	count    int
	onChange func(active bool, count int)
}

// New creates a Tracker. onChange may be nil; when set it is invoked after
// every Begin/End with the current activity state, under the tracker lock.
func New(onChange func(active bool, count int)) *Tracker {
	return &Tracker{onChange: onChange}
}

// Begin acquires one busy reference.
func (t *Tracker) Begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count++
	t.notify()
}

// End releases one busy reference. Ending with no outstanding reference is a
// no-op; the count never goes negative.
func (t *Tracker) End() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.count == 0 {
		return
	}
	t.count--
	t.notify()
}

// Active reports whether any request is in flight.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count > 0
}

// Count returns the number of in-flight requests.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

func (t *Tracker) notify() {
	if t.onChange != nil {
		t.onChange(t.count > 0, t.count)
	}
}
