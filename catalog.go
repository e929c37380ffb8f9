package touchstrip

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

// ErrInvalidZone is returned (wrapped) by NewCatalog for zones that cannot be
// hit-tested.
var ErrInvalidZone = errors.New("invalid zone")

// Zone is one named hit region. Shape is used for the normal layout and
// EnlargedShape for the enlarged one; a nil EnlargedShape reuses Shape.
type Zone struct {
	Name          string
	Tag           ButtonValue
	Shape         Polygon
	EnlargedShape Polygon
}

// HitTester reports which zones a probe disc touches.
type HitTester interface {
	HitTest(center Vec2, radius float64) ZoneSet
}

// zoneShape is one zone's active polygon with its cached bounds.
type zoneShape struct {
	poly   Polygon
	bounds Rect
}

// shapeSet is the complete set of active shapes, published as a unit.
type shapeSet struct {
	enlarged bool
	shapes   []zoneShape
}

// Catalog is the immutable set of zones plus the currently selected layout.
// Zone identities never change; only which polygon set is active.
type Catalog struct {
	zones    []Zone
	byName   map[string]ZoneID
	normal   *shapeSet
	enlarged *shapeSet
	active   atomic.Pointer[shapeSet]
}

// NewCatalog validates zones and builds a catalog. The i-th zone gets
// ZoneID i.
func NewCatalog(zones []Zone) (*Catalog, error) {
	if len(zones) == 0 {
		return nil, fmt.Errorf("new catalog: no zones: %w", ErrInvalidZone)
	}
	if len(zones) > MaxZones {
		return nil, fmt.Errorf("new catalog: %d zones exceeds %d: %w", len(zones), MaxZones, ErrInvalidZone)
	}

	c := &Catalog{
		zones:    make([]Zone, len(zones)),
		byName:   make(map[string]ZoneID, len(zones)),
		normal:   &shapeSet{shapes: make([]zoneShape, len(zones))},
		enlarged: &shapeSet{enlarged: true, shapes: make([]zoneShape, len(zones))},
	}
	for i, z := range zones {
		if z.Name == "" {
			return nil, fmt.Errorf("new catalog: zone %d has no name: %w", i, ErrInvalidZone)
		}
		if _, dup := c.byName[z.Name]; dup {
			return nil, fmt.Errorf("new catalog: duplicate zone %q: %w", z.Name, ErrInvalidZone)
		}
		if err := checkPolygon(z.Shape); err != nil {
			return nil, fmt.Errorf("new catalog: zone %q shape: %w", z.Name, err)
		}
		big := z.EnlargedShape
		if big == nil {
			big = z.Shape
		} else if err := checkPolygon(big); err != nil {
			return nil, fmt.Errorf("new catalog: zone %q enlarged shape: %w", z.Name, err)
		}

		z.Shape = append(Polygon(nil), z.Shape...)
		z.EnlargedShape = append(Polygon(nil), big...)
		c.zones[i] = z
		c.byName[z.Name] = ZoneID(i)
		c.normal.shapes[i] = zoneShape{poly: z.Shape, bounds: z.Shape.Bounds()}
		c.enlarged.shapes[i] = zoneShape{poly: z.EnlargedShape, bounds: z.EnlargedShape.Bounds()}
	}
	c.active.Store(c.normal)
	return c, nil
}

func checkPolygon(p Polygon) error {
	if len(p) < 3 {
		return fmt.Errorf("%d vertices, need at least 3: %w", len(p), ErrInvalidZone)
	}
	for _, v := range p {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return fmt.Errorf("non-finite vertex (%v, %v): %w", v.X, v.Y, ErrInvalidZone)
		}
	}
	return nil
}

// Len returns the number of zones.
func (c *Catalog) Len() int {
	return len(c.zones)
}

// Zone returns the zone with the given id. The returned polygons MUST NOT be
// mutated.
func (c *Catalog) Zone(id ZoneID) Zone {
	return c.zones[id]
}

// Lookup returns the id of the zone with the given name.
func (c *Catalog) Lookup(name string) (ZoneID, bool) {
	id, ok := c.byName[name]
	return id, ok
}

// Tag returns the tag of the zone with the given id.
func (c *Catalog) Tag(id ZoneID) ButtonValue {
	return c.zones[id].Tag
}

// All returns the set of every zone id in the catalog.
func (c *Catalog) All() ZoneSet {
	if len(c.zones) == MaxZones {
		return ^ZoneSet(0)
	}
	return ZoneSet(1)<<len(c.zones) - 1
}

// SetLayout selects the normal or enlarged polygons. The switch is atomic
// with respect to concurrent HitTest and Shape calls.
func (c *Catalog) SetLayout(enlarged bool) {
	if enlarged {
		c.active.Store(c.enlarged)
	} else {
		c.active.Store(c.normal)
	}
}

// Enlarged reports whether the enlarged layout is active.
func (c *Catalog) Enlarged() bool {
	return c.active.Load().enlarged
}

// Shape returns the active polygon for the zone with the given id.
func (c *Catalog) Shape(id ZoneID) Polygon {
	return c.active.Load().shapes[id].poly
}

// HitTest returns every zone whose active polygon intersects the disc of the
// given radius around center.
func (c *Catalog) HitTest(center Vec2, radius float64) ZoneSet {
	set := c.active.Load()
	probe := Circle{Center: center, Radius: math.Max(radius, 0)}
	var hits ZoneSet
	for i := range set.shapes {
		sh := &set.shapes[i]
		if !sh.bounds.Inflate(probe.Radius).Contains(center.X, center.Y) {
			continue
		}
		if sh.poly.IntersectsCircle(probe) {
			hits = hits.Add(ZoneID(i))
		}
	}
	return hits
}
