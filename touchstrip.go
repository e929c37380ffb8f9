package touchstrip

// Vec2 is a 2D point in panel coordinates. The origin is the top-left of the
// panel, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Lerp returns the point at fraction t along the segment from v to o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Inflate returns r grown by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// TouchID identifies one physical contact for its lifetime. IDs are unique
// among active touches and may be reused after release.
type TouchID int

// MouseTouchID is the touch id used for the left mouse button when an
// EbitenSource has mouse input enabled.
const MouseTouchID TouchID = -1

// ZoneID is a zone's index in its Catalog.
type ZoneID uint8

// ButtonValue is the opaque tag a zone carries. Consumers receive tags, never
// zone ids.
type ButtonValue uint8

// Action is the kind of a single touch update inside a frame.
type Action uint8

const (
	ActionDown Action = iota // contact started
	ActionMove               // contact moved or is still held
	ActionUp                 // contact lifted
)

// String returns the action's lower-case name.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	default:
		return "unknown"
	}
}

// EventType identifies a zone-level transition.
type EventType uint8

const (
	EventEngage    EventType = iota // zone went from zero to one claimant
	EventDisengage                  // zone went from one to zero claimants
)

// String returns the event type's lower-case name.
func (e EventType) String() string {
	if e == EventEngage {
		return "engage"
	}
	return "disengage"
}

// TouchUpdate is one touch's report inside a Frame.
type TouchUpdate struct {
	ID     TouchID
	Pos    Vec2
	Action Action
}

// Frame is everything the input source reported for one polling tick.
// Touches are applied in order. Any tracked touch whose id does not appear
// in Touches is treated as released at the end of the frame.
type Frame struct {
	Touches []TouchUpdate
}
