package touchstrip

import "testing"

func TestInjectTap(t *testing.T) {
	p, log := newTestPanel(t, stripZones(1))

	p.InjectTap(1, 50, 50)
	if p.Pending() != 2 {
		t.Fatalf("expected 2 queued frames, got %d", p.Pending())
	}

	// Frame 1: down
	p.Update()
	if p.Pending() != 1 {
		t.Fatalf("expected 1 remaining frame, got %d", p.Pending())
	}
	if got := log.take(); !equalCalls(got, []string{"+0"}) {
		t.Fatalf("frame 1 calls = %v", got)
	}

	// Frame 2: up
	p.Update()
	if got := log.take(); !equalCalls(got, []string{"-0"}) {
		t.Fatalf("frame 2 calls = %v", got)
	}
	if p.Pending() != 0 || p.TouchCount() != 0 {
		t.Errorf("pending %d, touches %d", p.Pending(), p.TouchCount())
	}
}

func TestInjectHeldTouchSurvivesIdleFrames(t *testing.T) {
	p, log := newTestPanel(t, stripZones(1))

	p.InjectDown(1, 50, 50)
	for i := 0; i < 5; i++ {
		p.Update()
	}
	if p.TouchCount() != 1 {
		t.Fatalf("held touch lost, touches = %d", p.TouchCount())
	}
	if got := log.take(); !equalCalls(got, []string{"+0"}) {
		t.Fatalf("calls = %v", got)
	}

	p.InjectUp(1)
	p.Update()
	if got := log.take(); !equalCalls(got, []string{"-0"}) {
		t.Fatalf("calls = %v", got)
	}
}

func TestInjectTwoTouches(t *testing.T) {
	p, log := newTestPanel(t, stripZones(2))

	p.InjectDown(1, 50, 50)
	p.InjectDown(2, 150, 50)
	p.InjectUp(1)
	for p.Pending() > 0 {
		p.Update()
	}
	if got := log.take(); !equalCalls(got, []string{"+0", "+1", "-0"}) {
		t.Fatalf("calls = %v", got)
	}
	if zs, ok := p.TouchZones(2); !ok || zs != ZoneSetOf(1) {
		t.Errorf("touch 2 zones = %v, %v", zs, ok)
	}
}

func TestInjectSwipe(t *testing.T) {
	p, log := newTestPanel(t, stripZones(3))
	p.SetSampleCount(1)

	p.InjectSwipe(1, 50, 50, 250, 50, 4)
	// down + 3 moves + up
	if p.Pending() != 5 {
		t.Fatalf("expected 5 queued frames, got %d", p.Pending())
	}
	for p.Pending() > 0 {
		p.Update()
	}
	// Moves land at x = 116.7, 183.3 and 250.
	want := []string{"+0", "-0", "+1", "-1", "+2", "-2"}
	if got := log.take(); !equalCalls(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestInjectSwipeMinFrames(t *testing.T) {
	p, _ := newTestPanel(t, stripZones(1))
	p.InjectSwipe(1, 0, 0, 10, 10, 0)
	if p.Pending() != 3 {
		t.Errorf("expected 3 queued frames, got %d", p.Pending())
	}
}

func TestInjectFrame(t *testing.T) {
	p, log := newTestPanel(t, stripZones(2))
	p.InjectFrame(frameOf(down(1, 50, 50), down(2, 150, 50)))
	p.InjectFrame(frameOf(move(2, 150, 50)))
	p.Update()
	p.Update()
	if got := log.take(); !equalCalls(got, []string{"+0", "+1", "-0"}) {
		t.Fatalf("calls = %v", got)
	}
	// Touch 2 is still held and repeated while the queue is empty.
	p.Update()
	if p.TouchCount() != 1 {
		t.Errorf("touches = %d", p.TouchCount())
	}
}

func TestResetDropsHeldInjections(t *testing.T) {
	p, _ := newTestPanel(t, stripZones(1))
	p.InjectDown(1, 50, 50)
	p.Update()
	p.Reset()
	p.Update()
	if p.TouchCount() != 0 {
		t.Errorf("touches = %d after Reset", p.TouchCount())
	}
}

func TestResetDropsQueuedFrames(t *testing.T) {
	p, log := newTestPanel(t, stripZones(2))

	p.InjectDown(1, 50, 50)
	p.Update()
	log.take()

	p.InjectMove(1, 150, 50)
	p.InjectMove(1, 160, 50)
	p.Reset()
	if got := log.take(); !equalCalls(got, []string{"-0"}) {
		t.Fatalf("Reset calls = %v", got)
	}
	if p.Pending() != 0 {
		t.Fatalf("pending after Reset = %d", p.Pending())
	}

	p.Update()
	p.Update()
	if got := log.take(); len(got) != 0 {
		t.Errorf("calls after Reset = %v", got)
	}
	if p.TouchCount() != 0 {
		t.Errorf("touches after Reset = %d", p.TouchCount())
	}
}
