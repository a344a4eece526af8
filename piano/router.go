// Package piano routes key and pointer presses to catalog notes and keeps the
// transient set of notes shown as pressed.
package piano

import (
	"sort"
	"time"

	"go-piano/debug"
	"go-piano/keys"
)

// ResetDelay is how long a note stays pressed after it is triggered.
// Physical key release is never consulted.
const ResetDelay = 150 * time.Millisecond

// Scheduler runs fn once after d. Callbacks must run on the same loop that
// calls the Router.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Emitter plays a tone; *tone.Emitter satisfies it.
type Emitter interface {
	Acquire()
	Emit(freqHz float64)
}

// Router owns the active note set. It is mutated only by its own methods,
// all of which must be called from a single event loop.
type Router struct {
	catalog   keys.Catalog
	emitter   Emitter
	scheduler Scheduler

	active  map[string]struct{}
	gesture bool
}

// NewRouter builds a router over catalog.
func NewRouter(catalog keys.Catalog, emitter Emitter, scheduler Scheduler) *Router {
	return &Router{
		catalog:   catalog,
		emitter:   emitter,
		scheduler: scheduler,
		active:    make(map[string]struct{}),
	}
}

// Catalog returns the keys the router resolves against.
func (r *Router) Catalog() keys.Catalog {
	return r.catalog
}

// Gesture records a user interaction. The first one opens the shared audio
// output; every later call is a no-op.
func (r *Router) Gesture() {
	if r.gesture {
		return
	}
	r.gesture = true
	debug.Log("router", "first gesture, acquiring audio")
	r.emitter.Acquire()
}

// PressKey handles a computer key press. Unbound keys and notes that are
// already pressed are ignored.
func (r *Router) PressKey(ch rune) bool {
	k, ok := r.catalog.ByTrigger(ch)
	if !ok {
		return false
	}
	if r.IsActive(k.Note) {
		debug.Log("router", "key %q ignored, %s already active", ch, k.Note)
		return false
	}
	r.trigger(k)
	return true
}

// PressNote handles a pointer press on a key. Unlike PressKey it does not
// check whether the note is already pressed.
func (r *Router) PressNote(note string) bool {
	k, ok := r.catalog.ByNote(note)
	if !ok {
		return false
	}
	r.trigger(k)
	return true
}

func (r *Router) trigger(k keys.PianoKey) {
	r.active[k.Note] = struct{}{}
	r.emitter.Emit(k.Frequency)
	note := k.Note
	r.scheduler.After(ResetDelay, func() { r.Release(note) })
	debug.Log("router", "%s on (%.2fHz)", k.Note, k.Frequency)
}

// Release clears a note from the active set.
func (r *Router) Release(note string) {
	if _, ok := r.active[note]; !ok {
		return
	}
	delete(r.active, note)
	debug.Log("router", "%s off", note)
}

// IsActive reports whether note is shown as pressed.
func (r *Router) IsActive(note string) bool {
	_, ok := r.active[note]
	return ok
}

// Active returns the pressed notes in catalog order.
func (r *Router) Active() []string {
	out := make([]string, 0, len(r.active))
	for note := range r.active {
		out = append(out, note)
	}
	order := make(map[string]int, len(r.catalog))
	for i, k := range r.catalog {
		order[k.Note] = i
	}
	sort.Slice(out, func(i, j int) bool { return order[out[i]] < order[out[j]] })
	return out
}

// ActiveSet returns a copy of the active set for rendering.
func (r *Router) ActiveSet() map[string]bool {
	out := make(map[string]bool, len(r.active))
	for note := range r.active {
		out[note] = true
	}
	return out
}
