package visibility

import "strings"

// Animation names an entry transition.
type Animation string

const (
	Fade       Animation = "fade"
	SlideUp    Animation = "slide-up"
	SlideLeft  Animation = "slide-left"
	SlideRight Animation = "slide-right"
)

// Alternate returns SlideLeft for even indexes and SlideRight for odd ones.
func Alternate(index int) Animation {
	if index%2 == 0 {
		return SlideLeft
	}
	return SlideRight
}

// RevealOptions are the options of an animated section: one-shot at 10%.
func RevealOptions() Options {
	opts := DefaultOptions()
	opts.TriggerOnce = true
	return opts
}

// Reveal wraps one content block and tracks whether it has been revealed.
type Reveal struct {
	ID        string
	Animation Animation
	// DelayMS staggers the transition of sibling blocks.
	DelayMS int

	opts    Options
	obs     *Observer
	visible bool
}

// NewReveal starts observing id on obs. With a nil observer the host has no
// observation capability and the block is visible immediately.
func NewReveal(obs *Observer, id string, animation Animation, delayMS int, opts Options) (*Reveal, error) {
	r := &Reveal{ID: id, Animation: animation, DelayMS: delayMS, opts: opts, obs: obs}
	if obs == nil {
		r.visible = true
		return r, nil
	}
	if err := obs.Observe(id, opts, r.handle); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reveal) handle(e Entry) {
	if e.Intersecting {
		r.visible = true
		return
	}
	if !r.opts.TriggerOnce {
		r.visible = false
	}
}

// Visible reports whether the block is currently revealed.
func (r *Reveal) Visible() bool {
	return r.visible
}

// Close stops observing the block.
func (r *Reveal) Close() {
	if r.obs != nil {
		r.obs.Unobserve(r.ID)
	}
}

// Class returns the presentation classes for the block.
func (r *Reveal) Class() string {
	classes := []string{"reveal", "reveal--" + string(r.Animation)}
	if r.visible {
		classes = append(classes, "reveal--visible")
	}
	return strings.Join(classes, " ")
}
