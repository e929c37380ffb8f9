package touchstrip

import (
	"maps"
	"slices"
)

// Injected touches are queued as whole frames. Each queued frame carries
// every synthetic touch that is held at that point, so a held touch is not
// lost to implicit release while another one moves. Between queued frames
// the held touches are repeated in place. Pick synthetic ids that do not
// collide with the real input source's ids.

// InjectFrame queues a raw frame. It is merged with the source's touches
// on the next Update. The frame's touches that are not lifted become the
// held synthetic touches; any other synthetic touch is released with it.
func (p *Panel) InjectFrame(f Frame) {
	clear(p.injectHeld)
	for _, u := range f.Touches {
		if u.Action == ActionUp {
			delete(p.injectHeld, u.ID)
		} else {
			p.injectHeld[u.ID] = u.Pos
		}
	}
	p.injectQueue = append(p.injectQueue, f)
}

// InjectDown queues a frame in which touch id lands at (x, y).
func (p *Panel) InjectDown(id TouchID, x, y float64) {
	p.injectOne(TouchUpdate{ID: id, Pos: Vec2{x, y}, Action: ActionDown})
}

// InjectMove queues a frame in which held touch id moves to (x, y).
func (p *Panel) InjectMove(id TouchID, x, y float64) {
	p.injectOne(TouchUpdate{ID: id, Pos: Vec2{x, y}, Action: ActionMove})
}

// InjectUp queues a frame in which touch id lifts.
func (p *Panel) InjectUp(id TouchID) {
	pos := p.injectHeld[id]
	p.injectOne(TouchUpdate{ID: id, Pos: pos, Action: ActionUp})
}

// InjectTap queues a down then an up at (x, y). Consumes two frames.
func (p *Panel) InjectTap(id TouchID, x, y float64) {
	p.InjectDown(id, x, y)
	p.InjectUp(id)
}

// InjectSwipe queues a full swipe: down at (fromX, fromY), moves linearly
// interpolated over frames-2 intermediate frames, a final move to
// (toX, toY) and an up. The sequence consumes frames+1 frames; frames is at
// least 2.
func (p *Panel) InjectSwipe(id TouchID, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectDown(id, fromX, fromY)
	from, to := Vec2{fromX, fromY}, Vec2{toX, toY}
	steps := frames - 1
	for i := 1; i <= steps; i++ {
		pt := from.Lerp(to, float64(i)/float64(steps))
		p.InjectMove(id, pt.X, pt.Y)
	}
	p.InjectUp(id)
}

// Pending returns the number of queued injected frames.
func (p *Panel) Pending() int {
	return len(p.injectQueue)
}

// injectOne builds a frame holding every other held synthetic touch in
// place plus u.
func (p *Panel) injectOne(u TouchUpdate) {
	f := Frame{Touches: make([]TouchUpdate, 0, len(p.injectHeld)+1)}
	for _, id := range slices.Sorted(maps.Keys(p.injectHeld)) {
		if id == u.ID {
			continue
		}
		f.Touches = append(f.Touches, TouchUpdate{ID: id, Pos: p.injectHeld[id], Action: ActionMove})
	}
	f.Touches = append(f.Touches, u)
	p.InjectFrame(f)
}

// popInjected appends the next queued frame's updates to dst. With an empty
// queue it repeats every held synthetic touch in place.
func (p *Panel) popInjected(dst []TouchUpdate) []TouchUpdate {
	if len(p.injectQueue) == 0 {
		for _, id := range slices.Sorted(maps.Keys(p.injectHeld)) {
			dst = append(dst, TouchUpdate{ID: id, Pos: p.injectHeld[id], Action: ActionMove})
		}
		return dst
	}
	f := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue[len(p.injectQueue)-1] = Frame{}
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	return append(dst, f.Touches...)
}
