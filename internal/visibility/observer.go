// Package visibility observes when laid-out blocks intersect the viewport and
// reacts once or continuously. Reveal animations and the active navigation
// section are both built on Observer.
package visibility

import (
	"fmt"
)

// Options configures one observed target.
type Options struct {
	// Threshold is the fraction of the target (0..1) that must be inside the
	// root for it to count as intersecting. Zero means any contact.
	Threshold float64
	// RootMargin adjusts the viewport, in CSS margin shorthand.
	RootMargin string
	// TriggerOnce stops observing the target after its first intersection.
	TriggerOnce bool
}

// DefaultOptions mirrors the defaults of a reveal wrapper.
func DefaultOptions() Options {
	return Options{Threshold: 0.1, RootMargin: "0px"}
}

// Entry reports a target's intersection state.
type Entry struct {
	ID           string
	Intersecting bool
	Ratio        float64
	Bounds       Rect
}

// Callback receives entries for one target.
type Callback func(Entry)

// Layout locates observed targets. Targets it does not know about are
// treated as unmounted and produce no entries.
type Layout interface {
	Bounds(id string) (Rect, bool)
}

// LayoutMap is a Layout backed by a map.
type LayoutMap map[string]Rect

// Bounds implements Layout.
func (m LayoutMap) Bounds(id string) (Rect, bool) {
	r, ok := m[id]
	return r, ok
}

type target struct {
	id       string
	opts     Options
	margin   Margin
	callback Callback
	reported bool
	last     bool
}

// Observer tracks a set of targets. It is driven by the host's single event
// loop and is not safe for concurrent use.
type Observer struct {
	targets []*target
}

// NewObserver returns an observer with no targets.
func NewObserver() *Observer {
	return &Observer{}
}

// Observe registers id. Observing an id again replaces its options and
// callback and resets its state.
func (o *Observer) Observe(id string, opts Options, cb Callback) error {
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return fmt.Errorf("observe %q: threshold %v outside [0, 1]", id, opts.Threshold)
	}
	margin, err := ParseMargin(opts.RootMargin)
	if err != nil {
		return fmt.Errorf("observe %q: %w", id, err)
	}

	o.Unobserve(id)
	o.targets = append(o.targets, &target{id: id, opts: opts, margin: margin, callback: cb})
	return nil
}

// Unobserve stops delivering entries for id.
func (o *Observer) Unobserve(id string) {
	for i, t := range o.targets {
		if t.id == id {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			return
		}
	}
}

// Disconnect unobserves every target.
func (o *Observer) Disconnect() {
	o.targets = nil
}

// Observing reports whether id is registered.
func (o *Observer) Observing(id string) bool {
	for _, t := range o.targets {
		if t.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of registered targets.
func (o *Observer) Len() int {
	return len(o.targets)
}

// Update recomputes intersections against viewport. Each target gets an
// entry on its first computation and whenever its intersecting state flips.
// Entries are delivered in observation order; callbacks may unobserve.
func (o *Observer) Update(viewport Rect, layout Layout) {
	snapshot := append([]*target(nil), o.targets...)
	for _, t := range snapshot {
		if !o.Observing(t.id) {
			continue
		}
		bounds, ok := layout.Bounds(t.id)
		if !ok {
			continue
		}

		entry := compute(t, viewport, bounds)
		if t.reported && entry.Intersecting == t.last {
			continue
		}
		t.reported = true
		t.last = entry.Intersecting

		if entry.Intersecting && t.opts.TriggerOnce {
			o.Unobserve(t.id)
		}
		if t.callback != nil {
			t.callback(entry)
		}
	}
}

func compute(t *target, viewport, bounds Rect) Entry {
	root := t.margin.Apply(viewport)
	overlap, touching := bounds.intersect(root)

	ratio := 0.0
	if touching {
		if area := bounds.Area(); area > 0 {
			ratio = overlap.Area() / area
		} else {
			ratio = 1
		}
	}

	intersecting := touching
	if t.opts.Threshold > 0 {
		intersecting = touching && ratio >= t.opts.Threshold
	}

	return Entry{ID: t.id, Intersecting: intersecting, Ratio: ratio, Bounds: bounds}
}
