package touchstrip

import (
	"fmt"
	"testing"
)

// square returns a zone covering [x, x+size] × [y, y+size].
func square(name string, tag ButtonValue, x, y, size float64) Zone {
	return Zone{
		Name: name,
		Tag:  tag,
		Shape: Polygon{
			{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size},
		},
	}
}

// stripZones returns n adjacent 100×100 squares along X, zone i tagged i
// and named Z<i>.
func stripZones(n int) []Zone {
	zones := make([]Zone, n)
	for i := range zones {
		zones[i] = square(fmt.Sprintf("Z%d", i), ButtonValue(i), float64(100*i), 0, 100)
	}
	return zones
}

func stripCatalog(t *testing.T, n int) *Catalog {
	t.Helper()
	c, err := NewCatalog(stripZones(n))
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

// eventLog records consumer calls as "+<tag>" and "-<tag>".
type eventLog struct {
	calls []string
}

func (l *eventLog) Engage(tag ButtonValue)    { l.calls = append(l.calls, fmt.Sprintf("+%d", tag)) }
func (l *eventLog) Disengage(tag ButtonValue) { l.calls = append(l.calls, fmt.Sprintf("-%d", tag)) }

func (l *eventLog) take() []string {
	c := l.calls
	l.calls = nil
	return c
}

func newTestPanel(t *testing.T, zones []Zone) (*Panel, *eventLog) {
	t.Helper()
	c, err := NewCatalog(zones)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	p := NewPanel(c)
	p.SetProbeRadius(0)
	log := &eventLog{}
	p.AddConsumer(log)
	return p, log
}

func down(id TouchID, x, y float64) TouchUpdate {
	return TouchUpdate{ID: id, Pos: Vec2{x, y}, Action: ActionDown}
}

func move(id TouchID, x, y float64) TouchUpdate {
	return TouchUpdate{ID: id, Pos: Vec2{x, y}, Action: ActionMove}
}

func up(id TouchID) TouchUpdate {
	return TouchUpdate{ID: id, Action: ActionUp}
}

func frameOf(updates ...TouchUpdate) Frame {
	return Frame{Touches: updates}
}

func equalCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
