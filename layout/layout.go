// Package layout builds the standard zone geometry of the circular touch
// panel: eight A zones on the outer ring, eight B zones on the inner ring,
// the centre split into C1 and C2, small D wedges on the rim between the A
// zones and E diamonds between the A and B rings.
package layout

import (
	"math"

	"github.com/phanxgames/touchstrip"
	"github.com/phanxgames/touchstrip/sensor"
)

// EnlargeFactor is how much each zone grows about its centroid in the
// enlarged layout.
const EnlargeFactor = 1.15

// arcSegments is the number of straight segments used per 45° of arc.
const arcSegments = 6

// Ring radii as fractions of the panel radius.
const (
	aInner = 0.60
	bInner = 0.22
	bOuter = 0.50
	cOuter = 0.24
	dInner = 0.80
	eInner = 0.45
	eMid   = 0.60
	eOuter = 0.75
)

// Half-widths in degrees.
const (
	aHalf      = 19.0
	bHalf      = 22.5
	dHalf      = 6.0
	eHalfWidth = 9.0
)

// Standard returns the 34 zones for a square panel of the given side, in
// device button order. Each zone is named after its button and tagged with
// its sensor button value.
func Standard(size float64) []touchstrip.Zone {
	g := geometry{c: touchstrip.Vec2{X: size / 2, Y: size / 2}, r: size / 2}

	zones := make([]touchstrip.Zone, 0, sensor.NumButtons)
	add := func(tag touchstrip.ButtonValue, shape touchstrip.Polygon) {
		zones = append(zones, touchstrip.Zone{
			Name:          sensor.ButtonName(tag),
			Tag:           tag,
			Shape:         shape,
			EnlargedShape: shape.Scaled(EnlargeFactor),
		})
	}

	for k := 0; k < 8; k++ {
		a := 22.5 + 45*float64(k)
		add(sensor.A1+touchstrip.ButtonValue(k), g.sector(aInner, 1, a-aHalf, a+aHalf))
	}
	for k := 0; k < 8; k++ {
		a := 22.5 + 45*float64(k)
		add(sensor.B1+touchstrip.ButtonValue(k), g.sector(bInner, bOuter, a-bHalf, a+bHalf))
	}
	add(sensor.C1, g.halfDisc(cOuter, 0))
	add(sensor.C2, g.halfDisc(cOuter, 180))
	for k := 0; k < 8; k++ {
		d := 45 * float64(k)
		add(sensor.D1+touchstrip.ButtonValue(k), g.sector(dInner, 1, d-dHalf, d+dHalf))
	}
	for k := 0; k < 8; k++ {
		d := 45 * float64(k)
		add(sensor.E1+touchstrip.ButtonValue(k), touchstrip.Polygon{
			g.polar(eInner, d),
			g.polar(eMid, d+eHalfWidth),
			g.polar(eOuter, d),
			g.polar(eMid, d-eHalfWidth),
		})
	}
	return zones
}

// Anchor returns a point well inside the named zone of a Standard layout of
// the given side, away from every other zone. It is meant for tests and
// calibration tools.
func Anchor(size float64, tag touchstrip.ButtonValue) touchstrip.Vec2 {
	g := geometry{c: touchstrip.Vec2{X: size / 2, Y: size / 2}, r: size / 2}
	switch {
	case tag <= sensor.A8:
		return g.polar((aInner+1)/2, 22.5+45*float64(tag-sensor.A1))
	case tag <= sensor.B8:
		return g.polar((bInner+bOuter)/2, 22.5+45*float64(tag-sensor.B1))
	case tag == sensor.C1:
		return g.polar(cOuter/2, 90)
	case tag == sensor.C2:
		return g.polar(cOuter/2, 270)
	case tag <= sensor.D8:
		return g.polar((dInner+1)/2, 45*float64(tag-sensor.D1))
	default:
		return g.polar(eMid, 45*float64(tag-sensor.E1))
	}
}

// geometry places points on a circle of radius r around c. Angles are in
// degrees, clockwise from 12 o'clock.
type geometry struct {
	c touchstrip.Vec2
	r float64
}

func (g geometry) polar(frac, deg float64) touchstrip.Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return touchstrip.Vec2{
		X: g.c.X + frac*g.r*sin,
		Y: g.c.Y - frac*g.r*cos,
	}
}

// arc appends points along radius frac from deg0 to deg1 inclusive.
func (g geometry) arc(dst touchstrip.Polygon, frac, deg0, deg1 float64) touchstrip.Polygon {
	n := int(math.Ceil(math.Abs(deg1-deg0) / 45 * arcSegments))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		dst = append(dst, g.polar(frac, deg0+(deg1-deg0)*float64(i)/float64(n)))
	}
	return dst
}

// sector is the ring segment between radii inner and outer and angles
// deg0..deg1.
func (g geometry) sector(inner, outer, deg0, deg1 float64) touchstrip.Polygon {
	p := g.arc(nil, outer, deg0, deg1)
	return g.arc(p, inner, deg1, deg0)
}

// halfDisc is the half of the disc of radius frac starting at angle deg.
func (g geometry) halfDisc(frac, deg float64) touchstrip.Polygon {
	p := touchstrip.Polygon{g.c}
	return g.arc(p, frac, deg, deg+180)
}
