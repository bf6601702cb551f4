package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewportAt(top float64) Rect {
	return Rect{Top: top, Width: 100, Height: 100}
}

func TestParseMargin(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty", input: "", want: "0px 0px 0px 0px"},
		{name: "single", input: "0px", want: "0px 0px 0px 0px"},
		{name: "unitless zero", input: "0", want: "0px 0px 0px 0px"},
		{name: "two", input: "10px 5%", want: "10px 5% 10px 5%"},
		{name: "three", input: "1px 2px 3px", want: "1px 2px 3px 2px"},
		{name: "four", input: "-20% 0px -60% 0px", want: "-20% 0px -60% 0px"},
		{name: "missing unit", input: "10", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "too many", input: "1px 2px 3px 4px 5px", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMargin(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMarginApplyShrinksToBand(t *testing.T) {
	m, err := ParseMargin("-20% 0px -60% 0px")
	require.NoError(t, err)

	band := m.Apply(Rect{Top: 0, Width: 80, Height: 50})
	assert.Equal(t, Rect{Top: 10, Width: 80, Height: 10}, band)
}

func TestObserveRejectsBadOptions(t *testing.T) {
	obs := NewObserver()
	require.Error(t, obs.Observe("a", Options{Threshold: 1.5}, nil))
	require.Error(t, obs.Observe("a", Options{RootMargin: "wide"}, nil))
	assert.Equal(t, 0, obs.Len())
}

func TestObserverDeliversFirstAndChanges(t *testing.T) {
	obs := NewObserver()
	var entries []Entry
	require.NoError(t, obs.Observe("block", DefaultOptions(), func(e Entry) {
		entries = append(entries, e)
	}))
	layout := LayoutMap{"block": {Top: 300, Width: 100, Height: 50}}

	obs.Update(viewportAt(0), layout)
	obs.Update(viewportAt(10), layout)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Intersecting)

	obs.Update(viewportAt(250), layout)
	require.Len(t, entries, 2)
	assert.True(t, entries[1].Intersecting)
	assert.InDelta(t, 1.0, entries[1].Ratio, 1e-9)

	obs.Update(viewportAt(260), layout)
	assert.Len(t, entries, 2)
}

func TestObserverThreshold(t *testing.T) {
	obs := NewObserver()
	var last Entry
	require.NoError(t, obs.Observe("block", Options{Threshold: 0.5}, func(e Entry) { last = e }))
	layout := LayoutMap{"block": {Top: 100, Width: 100, Height: 100}}

	// 40% visible
	obs.Update(viewportAt(40), layout)
	assert.False(t, last.Intersecting)
	assert.InDelta(t, 0.4, last.Ratio, 1e-9)

	obs.Update(viewportAt(50), layout)
	assert.True(t, last.Intersecting)
}

func TestObserverZeroThresholdCountsEdgeContact(t *testing.T) {
	obs := NewObserver()
	var last Entry
	require.NoError(t, obs.Observe("block", Options{}, func(e Entry) { last = e }))

	obs.Update(viewportAt(0), LayoutMap{"block": {Top: 100, Width: 100, Height: 10}})
	assert.True(t, last.Intersecting)
	assert.Zero(t, last.Ratio)
}

func TestObserverSkipsUnmountedTargets(t *testing.T) {
	obs := NewObserver()
	calls := 0
	require.NoError(t, obs.Observe("ghost", DefaultOptions(), func(Entry) { calls++ }))
	obs.Update(viewportAt(0), LayoutMap{})
	assert.Zero(t, calls)
	assert.True(t, obs.Observing("ghost"))
}

func TestObserverUnobserveAndDisconnect(t *testing.T) {
	obs := NewObserver()
	require.NoError(t, obs.Observe("a", DefaultOptions(), nil))
	require.NoError(t, obs.Observe("b", DefaultOptions(), nil))
	require.NoError(t, obs.Observe("a", DefaultOptions(), nil))
	assert.Equal(t, 2, obs.Len())

	obs.Unobserve("a")
	assert.False(t, obs.Observing("a"))
	assert.True(t, obs.Observing("b"))

	obs.Disconnect()
	assert.Zero(t, obs.Len())
}

func TestRevealTriggerOnceStaysVisible(t *testing.T) {
	obs := NewObserver()
	r, err := NewReveal(obs, "card", SlideUp, 0, RevealOptions())
	require.NoError(t, err)
	layout := LayoutMap{"card": {Top: 200, Width: 100, Height: 50}}

	obs.Update(viewportAt(0), layout)
	assert.False(t, r.Visible())

	obs.Update(viewportAt(150), layout)
	assert.True(t, r.Visible())
	assert.False(t, obs.Observing("card"))

	obs.Update(viewportAt(0), layout)
	assert.True(t, r.Visible())
	assert.Equal(t, "reveal reveal--slide-up reveal--visible", r.Class())
}

func TestRevealWithoutTriggerOnceFollowsView(t *testing.T) {
	obs := NewObserver()
	r, err := NewReveal(obs, "card", Fade, 0, DefaultOptions())
	require.NoError(t, err)
	layout := LayoutMap{"card": {Top: 200, Width: 100, Height: 50}}

	var states []bool
	for _, top := range []float64{0, 150, 0} {
		obs.Update(viewportAt(top), layout)
		states = append(states, r.Visible())
	}
	assert.Equal(t, []bool{false, true, false}, states)
	assert.Equal(t, "reveal reveal--fade", r.Class())
}

func TestRevealWithoutObserverIsVisible(t *testing.T) {
	r, err := NewReveal(nil, "card", Fade, 0, RevealOptions())
	require.NoError(t, err)
	assert.True(t, r.Visible())
	r.Close()
}

func TestRevealClose(t *testing.T) {
	obs := NewObserver()
	r, err := NewReveal(obs, "card", Fade, 150, RevealOptions())
	require.NoError(t, err)
	r.Close()
	assert.False(t, obs.Observing("card"))
	assert.Equal(t, 150, r.DelayMS)
}

func TestAlternate(t *testing.T) {
	assert.Equal(t, SlideLeft, Alternate(0))
	assert.Equal(t, SlideRight, Alternate(1))
	assert.Equal(t, SlideLeft, Alternate(2))
}

func sectionLayout() LayoutMap {
	// Stacked sections of height 100 in a 100-tall viewport.
	return LayoutMap{
		"hero":       {Top: 0, Width: 100, Height: 100},
		"experience": {Top: 100, Width: 100, Height: 100},
		"projects":   {Top: 200, Width: 100, Height: 100},
		"skills":     {Top: 300, Width: 100, Height: 100},
		"contact":    {Top: 400, Width: 100, Height: 100},
	}
}

func TestActiveTrackerInitialAndScroll(t *testing.T) {
	obs := NewObserver()
	ids := []string{"hero", "experience", "projects", "skills", "contact"}
	tracker, err := NewActiveTracker(obs, ids, "hero")
	require.NoError(t, err)

	var changes []string
	tracker.OnChange = func(id string) { changes = append(changes, id) }
	assert.Equal(t, "hero", tracker.Active())

	layout := sectionLayout()
	obs.Update(viewportAt(0), layout)
	assert.Equal(t, "hero", tracker.Active())

	// Band is [top+20, top+40].
	obs.Update(viewportAt(190), layout)
	assert.Equal(t, "projects", tracker.Active())

	obs.Update(viewportAt(290), layout)
	assert.Equal(t, "skills", tracker.Active())
	assert.Equal(t, []string{"projects", "skills"}, changes)
}

func TestActiveTrackerLastIntersectingWins(t *testing.T) {
	obs := NewObserver()
	tracker, err := NewActiveTracker(obs, []string{"hero", "experience", "projects"}, "hero")
	require.NoError(t, err)

	// Band [120, 140] overlaps both experience and projects.
	layout := LayoutMap{
		"hero":       {Top: 0, Width: 100, Height: 60},
		"experience": {Top: 60, Width: 100, Height: 70},
		"projects":   {Top: 130, Width: 100, Height: 100},
	}
	obs.Update(viewportAt(100), layout)
	assert.Equal(t, "projects", tracker.Active())
}

func TestActiveTrackerClose(t *testing.T) {
	obs := NewObserver()
	tracker, err := NewActiveTracker(obs, []string{"hero", "contact"}, "hero")
	require.NoError(t, err)
	tracker.Close()
	assert.Zero(t, obs.Len())

	nilTracker, err := NewActiveTracker(nil, []string{"hero"}, "hero")
	require.NoError(t, err)
	assert.Equal(t, "hero", nilTracker.Active())
	nilTracker.Close()
}
