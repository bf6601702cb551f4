package visibility

// SectionOptions biases section tracking toward the upper middle of the
// viewport: a section is active while it crosses the band between 20% and
// 40% of the viewport height.
func SectionOptions() Options {
	return Options{Threshold: 0, RootMargin: "-20% 0px -60% 0px"}
}

// ActiveTracker follows which page section is in focus. When several
// sections start intersecting in one update the last in observation order
// wins.
type ActiveTracker struct {
	obs    *Observer
	ids    []string
	active string
	// OnChange, when set, runs after the active section changes.
	OnChange func(string)
}

// NewActiveTracker observes ids on obs with SectionOptions. initial is active
// until a section reports an intersection.
func NewActiveTracker(obs *Observer, ids []string, initial string) (*ActiveTracker, error) {
	t := &ActiveTracker{obs: obs, ids: append([]string(nil), ids...), active: initial}
	if obs == nil {
		return t, nil
	}
	for _, id := range t.ids {
		if err := obs.Observe(id, SectionOptions(), t.handle); err != nil {
			t.Close()
			return nil, err
		}
	}
	return t, nil
}

func (t *ActiveTracker) handle(e Entry) {
	if !e.Intersecting || e.ID == t.active {
		return
	}
	t.active = e.ID
	if t.OnChange != nil {
		t.OnChange(e.ID)
	}
}

// Active returns the current section id.
func (t *ActiveTracker) Active() string {
	return t.active
}

// Close unobserves every tracked section.
func (t *ActiveTracker) Close() {
	if t.obs == nil {
		return
	}
	for _, id := range t.ids {
		t.obs.Unobserve(id)
	}
}
