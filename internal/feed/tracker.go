// Package feed implements the viewport activity tracker: deciding which
// single video slot is active as the viewer scrolls.
package feed

import "sync"

// ActiveThreshold is the visible fraction at which a slot becomes active.
const ActiveThreshold = 0.6

// Tracker turns a stream of per-slot visibility events into a single active
// index. A slot becomes active when its visible fraction reaches the
// threshold. When several slots cross the threshold in the same batch of
// events, the last event wins; the tracker does not compare visibility
// magnitudes. This matches the observation callback it was built against
// and is a known limitation, kept on purpose.
//
// The tracker is level-triggered: events below the threshold never change
// the active index, so a fast scroll-through that never settles leaves the
// last settled slot active. The index starts at 0 and is never debounced.
type Tracker struct {
	mu     sync.Mutex
	active int
	subs   []chan int
}

// NewTracker creates a tracker with the active index at 0.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe reports one visibility event for a slot. Negative indexes are
// ignored. Returns true if the event changed the active index.
func (t *Tracker) Observe(index int, ratio float64) bool {
	if index < 0 || ratio < ActiveThreshold {
		return false
	}

	t.mu.Lock()
	changed := t.active != index
	t.active = index
	subs := make([]chan int, len(t.subs))
	copy(subs, t.subs)
	t.mu.Unlock()

	if changed {
		for _, ch := range subs {
			select {
			case ch <- index:
			default:
				// Subscriber is not keeping up; drop rather than block.
			}
		}
	}
	return changed
}

// ActiveIndex returns the current active index.
func (t *Tracker) ActiveIndex() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Subscribe returns a channel that receives the new active index whenever
// it changes.
func (t *Tracker) Subscribe() <-chan int {
	ch := make(chan int, 16)
	t.mu.Lock()
	t.subs = append(t.subs, ch)
	t.mu.Unlock()
	return ch
}
