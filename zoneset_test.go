package touchstrip

import "testing"

func TestZoneSetBasics(t *testing.T) {
	s := ZoneSetOf(3, 0, 63)
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	for _, id := range []ZoneID{0, 3, 63} {
		if !s.Has(id) {
			t.Errorf("Has(%d) = false", id)
		}
	}
	if s.Has(1) || s.Has(64) {
		t.Error("unexpected member")
	}
	if got := s.Add(64); got != s {
		t.Errorf("Add(64) changed the set to %v", got)
	}
	if got := s.Remove(3); got.Has(3) || got.Len() != 2 {
		t.Errorf("Remove(3) = %v", got)
	}
	if !ZoneSet(0).Empty() || s.Empty() {
		t.Error("Empty mismatch")
	}
}

func TestZoneSetOps(t *testing.T) {
	a := ZoneSetOf(1, 2, 3)
	b := ZoneSetOf(3, 4)

	tests := []struct {
		name string
		got  ZoneSet
		want ZoneSet
	}{
		{"union", a.Union(b), ZoneSetOf(1, 2, 3, 4)},
		{"intersect", a.Intersect(b), ZoneSetOf(3)},
		{"diff", a.Diff(b), ZoneSetOf(1, 2)},
		{"diff reversed", b.Diff(a), ZoneSetOf(4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestZoneSetEachAscending(t *testing.T) {
	s := ZoneSetOf(40, 5, 17, 0)
	ids := s.IDs()
	want := []ZoneID{0, 5, 17, 40}
	if len(ids) != len(want) {
		t.Fatalf("IDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs = %v, want %v", ids, want)
		}
	}
	if got := s.String(); got != "{0 5 17 40}" {
		t.Errorf("String = %q", got)
	}
	if got := ZoneSet(0).String(); got != "{}" {
		t.Errorf("empty String = %q", got)
	}
}
