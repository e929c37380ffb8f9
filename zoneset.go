package touchstrip

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxZones is the largest number of zones a Catalog can hold.
const MaxZones = 64

// ZoneSet is a set of zone ids. The zero value is the empty set. Sets are
// values and compare by content with ==.
type ZoneSet uint64

// ZoneSetOf returns a set holding the given ids.
func ZoneSetOf(ids ...ZoneID) ZoneSet {
	var s ZoneSet
	for _, id := range ids {
		s = s.Add(id)
	}
	return s
}

// Has reports whether id is in the set.
func (s ZoneSet) Has(id ZoneID) bool {
	return id < MaxZones && s&(1<<id) != 0
}

// Add returns s with id added.
func (s ZoneSet) Add(id ZoneID) ZoneSet {
	if id >= MaxZones {
		return s
	}
	return s | 1<<id
}

// Remove returns s with id removed.
func (s ZoneSet) Remove(id ZoneID) ZoneSet {
	if id >= MaxZones {
		return s
	}
	return s &^ (1 << id)
}

// Union returns s ∪ o.
func (s ZoneSet) Union(o ZoneSet) ZoneSet { return s | o }

// Intersect returns s ∩ o.
func (s ZoneSet) Intersect(o ZoneSet) ZoneSet { return s & o }

// Diff returns s − o.
func (s ZoneSet) Diff(o ZoneSet) ZoneSet { return s &^ o }

// Empty reports whether the set has no members.
func (s ZoneSet) Empty() bool { return s == 0 }

// Len returns the number of members.
func (s ZoneSet) Len() int { return bits.OnesCount64(uint64(s)) }

// Each calls fn for every member in ascending id order.
func (s ZoneSet) Each(fn func(ZoneID)) {
	for v := uint64(s); v != 0; v &= v - 1 {
		fn(ZoneID(bits.TrailingZeros64(v)))
	}
}

// IDs returns the members in ascending order.
func (s ZoneSet) IDs() []ZoneID {
	ids := make([]ZoneID, 0, s.Len())
	s.Each(func(id ZoneID) { ids = append(ids, id) })
	return ids
}

func (s ZoneSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.Each(func(id ZoneID) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.Itoa(int(id)))
	})
	b.WriteByte('}')
	return b.String()
}
