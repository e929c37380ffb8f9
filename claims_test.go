package touchstrip

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestClaimTableApply(t *testing.T) {
	ct := NewClaimTable(nil)

	tests := []struct {
		name         string
		joined, left ZoneSet
		engaged      ZoneSet
		disengaged   ZoneSet
		active       ZoneSet
	}{
		{"first touch", ZoneSetOf(1, 2), 0, ZoneSetOf(1, 2), 0, ZoneSetOf(1, 2)},
		{"second touch on 2", ZoneSetOf(2), 0, 0, 0, ZoneSetOf(1, 2)},
		{"first leaves 2 and 1", 0, ZoneSetOf(1, 2), 0, ZoneSetOf(1), ZoneSetOf(2)},
		{"both sets cancel", ZoneSetOf(5), ZoneSetOf(5), 0, 0, ZoneSetOf(2)},
		{"swap", ZoneSetOf(3), ZoneSetOf(2), ZoneSetOf(3), ZoneSetOf(2), ZoneSetOf(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, d := ct.Apply(tt.joined, tt.left)
			if e != tt.engaged || d != tt.disengaged {
				t.Errorf("Apply = (%v, %v), want (%v, %v)", e, d, tt.engaged, tt.disengaged)
			}
			if ct.Active() != tt.active {
				t.Errorf("Active = %v, want %v", ct.Active(), tt.active)
			}
		})
	}
	if ct.Count(3) != 1 || ct.Count(2) != 0 || ct.Count(5) != 0 {
		t.Errorf("counts 2,3,5 = %d,%d,%d", ct.Count(2), ct.Count(3), ct.Count(5))
	}
	if ct.Underflows() != 0 {
		t.Errorf("Underflows = %d", ct.Underflows())
	}
}

func TestClaimTableUnderflow(t *testing.T) {
	log, hook := test.NewNullLogger()
	ct := NewClaimTable(log)

	e, d := ct.Apply(0, ZoneSetOf(4))
	if !e.Empty() || !d.Empty() {
		t.Errorf("Apply = (%v, %v), want nothing", e, d)
	}
	if ct.Count(4) != 0 {
		t.Errorf("Count = %d, want 0", ct.Count(4))
	}
	if ct.Underflows() != 1 {
		t.Errorf("Underflows = %d, want 1", ct.Underflows())
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected a warning, got %v", entry)
	}
	if entry.Data["zone"] != ZoneID(4) {
		t.Errorf("zone field = %v", entry.Data["zone"])
	}
}

func TestClaimTableClear(t *testing.T) {
	ct := NewClaimTable(nil)
	ct.Apply(ZoneSetOf(1, 2), 0)
	ct.Apply(ZoneSetOf(2), 0)

	if was := ct.Clear(); was != ZoneSetOf(1, 2) {
		t.Errorf("Clear = %v", was)
	}
	if !ct.Active().Empty() || ct.Count(2) != 0 {
		t.Error("table not empty after Clear")
	}
	if was := ct.Clear(); !was.Empty() {
		t.Errorf("second Clear = %v", was)
	}
	if ct.Count(200) != 0 {
		t.Error("Count out of range")
	}
}
