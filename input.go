package touchstrip

import (
	"maps"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSource polls ebiten's touch (and optionally mouse) state once per
// tick and reports it as touch updates in panel coordinates.
type EbitenSource struct {
	// Viewport maps screen to panel coordinates. Nil means identity.
	Viewport *Viewport
	// Mouse reports the left mouse button as touch MouseTouchID.
	Mouse bool

	touchIDs  []ebiten.TouchID
	prev      map[TouchID]Vec2
	cur       map[TouchID]Vec2
	mouseDown bool
}

// NewEbitenSource returns a source mapping screen coordinates through vp.
func NewEbitenSource(vp *Viewport) *EbitenSource {
	return &EbitenSource{
		Viewport: vp,
		prev:     make(map[TouchID]Vec2),
		cur:      make(map[TouchID]Vec2),
	}
}

// screenToPanel converts screen coordinates using the source's viewport.
func (s *EbitenSource) screenToPanel(sx, sy float64) Vec2 {
	if s.Viewport != nil {
		return s.Viewport.ScreenToPanel(sx, sy)
	}
	return Vec2{sx, sy}
}

// Poll appends this tick's touch updates to dst and returns it. New touches
// are reported as Down, held touches as Move and touches that disappeared
// since the previous poll as Up at their last position.
func (s *EbitenSource) Poll(dst []TouchUpdate) []TouchUpdate {
	if s.prev == nil {
		s.prev = make(map[TouchID]Vec2)
		s.cur = make(map[TouchID]Vec2)
	}
	clear(s.cur)

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, tid := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		id := TouchID(tid)
		pos := s.screenToPanel(float64(tx), float64(ty))
		s.cur[id] = pos
		dst = append(dst, TouchUpdate{ID: id, Pos: pos, Action: s.action(id)})
	}

	if s.Mouse {
		dst = s.pollMouse(dst)
	}

	// Lift any touch that was present last tick and is gone now.
	for _, id := range slices.Sorted(maps.Keys(s.prev)) {
		if _, ok := s.cur[id]; !ok && id != MouseTouchID {
			dst = append(dst, TouchUpdate{ID: id, Pos: s.prev[id], Action: ActionUp})
		}
	}

	s.prev, s.cur = s.cur, s.prev
	return dst
}

// pollMouse handles the left mouse button as a single touch.
func (s *EbitenSource) pollMouse(dst []TouchUpdate) []TouchUpdate {
	mx, my := ebiten.CursorPosition()
	pos := s.screenToPanel(float64(mx), float64(my))
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !s.mouseDown:
		s.mouseDown = true
		s.cur[MouseTouchID] = pos
		dst = append(dst, TouchUpdate{ID: MouseTouchID, Pos: pos, Action: ActionDown})
	case pressed && s.mouseDown:
		s.cur[MouseTouchID] = pos
		dst = append(dst, TouchUpdate{ID: MouseTouchID, Pos: pos, Action: ActionMove})
	case !pressed && s.mouseDown:
		s.mouseDown = false
		dst = append(dst, TouchUpdate{ID: MouseTouchID, Pos: pos, Action: ActionUp})
	}
	return dst
}

func (s *EbitenSource) action(id TouchID) Action {
	if _, held := s.prev[id]; held {
		return ActionMove
	}
	return ActionDown
}
