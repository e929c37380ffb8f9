package touchstrip

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a touch script.
type testStep struct {
	Action   string  `json:"action"`
	ID       TouchID `json:"id,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Enlarged bool    `json:"enlarged,omitempty"`
}

// testScript is the top-level JSON structure for a touch script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"down": true, "move": true, "up": true, "tap": true,
	"swipe": true, "wait": true, "layout": true, "reset": true,
}

// TestRunner sequences injected touches, layout switches and resets across
// frames for automated testing. Attach to a Panel via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON touch script and returns a TestRunner ready
// to be attached to a Panel via SetTestRunner.
//
//	{"steps": [
//		{"action": "down", "id": 1, "x": 540, "y": 80},
//		{"action": "move", "id": 1, "x": 700, "y": 120},
//		{"action": "up", "id": 1},
//		{"action": "swipe", "id": 2, "fromX": 0, "fromY": 0, "toX": 10, "toY": 10, "frames": 4},
//		{"action": "wait", "frames": 3},
//		{"action": "layout", "enlarged": true},
//		{"action": "reset"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the panel. The runner's step method
// is called from Panel.Update before input is processed each frame.
func (p *Panel) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Panel.Update.
func (r *TestRunner) step(p *Panel) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(p.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "down":
		p.InjectDown(st.ID, st.X, st.Y)
	case "move":
		p.InjectMove(st.ID, st.X, st.Y)
	case "up":
		p.InjectUp(st.ID)
	case "tap":
		p.InjectTap(st.ID, st.X, st.Y)
	case "swipe":
		p.InjectSwipe(st.ID, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "layout":
		p.SetLayout(st.Enlarged)
	case "reset":
		p.Reset()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}
