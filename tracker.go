package touchstrip

import (
	"maps"
	"slices"
)

// DefaultProbeRadius is the radius, in panel units, of the disc hit-tested
// around each touch position.
const DefaultProbeRadius = 8.0

// touchState is what the tracker remembers about one active touch.
type touchState struct {
	zones ZoneSet
	last  Vec2
}

// StepFunc receives the zone transitions produced by one tracker step.
// Disengaged zones must be delivered before engaged ones.
type StepFunc func(engaged, disengaged ZoneSet)

// Tracker owns the per-touch state and turns touch updates into zone
// claims. Every change to a touch's zone set goes through the ClaimTable in
// the same call, so the table always matches the tracked touches.
type Tracker struct {
	// Radius is the probe radius used for hit testing.
	Radius float64
	// Samples is the number of path samples checked per move.
	Samples int

	hits    HitTester
	claims  *ClaimTable
	onStep  StepFunc
	touches map[TouchID]*touchState
	seen    map[TouchID]struct{}
	pathBuf []Vec2
	steps   int
}

// NewTracker returns a tracker that hit-tests against hits, records claims
// in claims and reports every non-empty transition to onStep.
func NewTracker(hits HitTester, claims *ClaimTable, onStep StepFunc) *Tracker {
	return &Tracker{
		Radius:  DefaultProbeRadius,
		Samples: DefaultSampleCount,
		hits:    hits,
		claims:  claims,
		onStep:  onStep,
		touches: make(map[TouchID]*touchState),
		seen:    make(map[TouchID]struct{}),
	}
}

// SetHitTester replaces the hit tester used for subsequent updates. Zones
// already held are not re-evaluated.
func (t *Tracker) SetHitTester(hits HitTester) {
	t.hits = hits
}

// Advance applies one frame: every update in order, then implicit release
// of tracked touches the frame did not mention.
func (t *Tracker) Advance(f Frame) {
	clear(t.seen)
	for _, u := range f.Touches {
		t.seen[u.ID] = struct{}{}
		switch u.Action {
		case ActionDown:
			t.Down(u.ID, u.Pos)
		case ActionMove:
			t.Move(u.ID, u.Pos)
		case ActionUp:
			t.Up(u.ID)
		}
	}
	t.endFrame(t.seen)
}

// Down starts tracking a touch at p. A touch that lands on no zone is still
// tracked so that it can later slide into one. A Down for a touch that is
// already tracked is handled as a Move.
func (t *Tracker) Down(id TouchID, p Vec2) {
	if _, ok := t.touches[id]; ok {
		t.Move(id, p)
		return
	}
	zones := t.hits.HitTest(p, t.Radius)
	t.touches[id] = &touchState{zones: zones, last: p}
	t.step(zones, 0)
}

// Move advances a touch toward p. The path from the last known position is
// sampled and the first sample whose zone set differs is applied; the touch
// stops there and later transitions are picked up on the next frame. An
// unknown touch is treated as a Down at p. A report at the last position
// changes nothing, even after a layout switch.
func (t *Tracker) Move(id TouchID, p Vec2) {
	st, ok := t.touches[id]
	if !ok {
		t.Down(id, p)
		return
	}
	if p == st.last {
		return
	}

	t.pathBuf = SamplePath(st.last, p, t.Samples, t.pathBuf)
	for _, sp := range t.pathBuf {
		zones := t.hits.HitTest(sp, t.Radius)
		if zones == st.zones {
			continue
		}
		joined := zones.Diff(st.zones)
		left := st.zones.Diff(zones)
		st.zones = zones
		st.last = sp
		t.step(joined, left)
		return
	}
	st.last = p
}

// Up releases a touch, dropping its claims. Unknown touches are ignored.
func (t *Tracker) Up(id TouchID) {
	st, ok := t.touches[id]
	if !ok {
		return
	}
	delete(t.touches, id)
	t.step(0, st.zones)
}

// EndFrame releases every tracked touch whose id is not in reported.
func (t *Tracker) EndFrame(reported ...TouchID) {
	seen := make(map[TouchID]struct{}, len(reported))
	for _, id := range reported {
		seen[id] = struct{}{}
	}
	t.endFrame(seen)
}

func (t *Tracker) endFrame(seen map[TouchID]struct{}) {
	if len(t.touches) == 0 {
		return
	}
	var lost []TouchID
	for id := range t.touches {
		if _, ok := seen[id]; !ok {
			lost = append(lost, id)
		}
	}
	slices.Sort(lost)
	for _, id := range lost {
		t.Up(id)
	}
}

// Reset forgets every touch and disengages each active zone exactly once.
// Calling it again is a no-op.
func (t *Tracker) Reset() {
	clear(t.touches)
	if was := t.claims.Clear(); !was.Empty() {
		t.steps++
		if t.onStep != nil {
			t.onStep(0, was)
		}
	}
}

// Len returns the number of tracked touches.
func (t *Tracker) Len() int {
	return len(t.touches)
}

// IDs returns the tracked touch ids in ascending order.
func (t *Tracker) IDs() []TouchID {
	return slices.Sorted(maps.Keys(t.touches))
}

// Zones returns the zones held by touch id.
func (t *Tracker) Zones(id TouchID) (ZoneSet, bool) {
	st, ok := t.touches[id]
	if !ok {
		return 0, false
	}
	return st.zones, true
}

// Position returns the last position recorded for touch id.
func (t *Tracker) Position(id TouchID) (Vec2, bool) {
	st, ok := t.touches[id]
	if !ok {
		return Vec2{}, false
	}
	return st.last, true
}

// step records one transition in the claim table and forwards whatever
// changed at zone level.
func (t *Tracker) step(joined, left ZoneSet) {
	if joined.Empty() && left.Empty() {
		return
	}
	engaged, disengaged := t.claims.Apply(joined, left)
	if engaged.Empty() && disengaged.Empty() {
		return
	}
	t.steps++
	if t.onStep != nil {
		t.onStep(engaged, disengaged)
	}
}
