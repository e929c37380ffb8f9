package touchstrip

import "github.com/sirupsen/logrus"

// ClaimTable counts, per zone, how many tracked touches currently hold it.
// A zone is active while its count is above zero.
type ClaimTable struct {
	counts     [MaxZones]int
	active     ZoneSet
	underflows int
	log        logrus.FieldLogger
}

// NewClaimTable returns an empty table that reports invariant violations to
// log. A nil log uses the logrus standard logger.
func NewClaimTable(log logrus.FieldLogger) *ClaimTable {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ClaimTable{log: log}
}

// Apply adds one claim for every zone in joined and drops one for every zone
// in left. Zones in both sets are left untouched. It returns the zones whose
// count went from zero to one (engaged) and from one to zero (disengaged).
func (t *ClaimTable) Apply(joined, left ZoneSet) (engaged, disengaged ZoneSet) {
	both := joined.Intersect(left)
	joined = joined.Diff(both)
	left = left.Diff(both)

	left.Each(func(id ZoneID) {
		switch t.counts[id] {
		case 0:
			// A touch released a zone it was never recorded as holding.
			t.underflows++
			t.log.WithField("zone", id).Warn("touchstrip: claim count underflow, clamped to zero")
		case 1:
			t.counts[id] = 0
			disengaged = disengaged.Add(id)
		default:
			t.counts[id]--
		}
	})
	joined.Each(func(id ZoneID) {
		t.counts[id]++
		if t.counts[id] == 1 {
			engaged = engaged.Add(id)
		}
	})

	t.active = t.active.Diff(disengaged).Union(engaged)
	return engaged, disengaged
}

// Count returns the number of claims on id.
func (t *ClaimTable) Count(id ZoneID) int {
	if id >= MaxZones {
		return 0
	}
	return t.counts[id]
}

// Active returns every zone with at least one claim.
func (t *ClaimTable) Active() ZoneSet {
	return t.active
}

// Underflows returns how many times a release was clamped at zero. It stays
// zero unless the tracker and the table disagree.
func (t *ClaimTable) Underflows() int {
	return t.underflows
}

// Clear drops every claim and returns the zones that were active.
func (t *ClaimTable) Clear() ZoneSet {
	was := t.active
	t.counts = [MaxZones]int{}
	t.active = 0
	return was
}
