package thicket

import (
	"encoding/json"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Key    string `json:"key,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	FromX  int    `json:"fromX,omitempty"`
	FromY  int    `json:"fromY,omitempty"`
	ToX    int    `json:"toX,omitempty"`
	ToY    int    `json:"toY,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across ticks for
// automated visual testing. Attach it to a Screen with SetTestRunner.
//
// Actions: "screenshot" (label), "click" (x, y), "drag" (fromX, fromY,
// toX, toY, frames), "key" (key, an ebiten.Key name such as "Space" or
// "ArrowLeft") and "wait" (frames).
type TestRunner struct {
	steps     []testStep
	keys      []ebiten.Key
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached with SetTestRunner. Unknown actions and key names are
// rejected here rather than at run time.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, errors.Wrapf(ErrFormat, "thicket: parse test script: %v", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.Wrap(ErrFormat, "thicket: parse test script: no steps")
	}
	r := &TestRunner{steps: script.Steps, keys: make([]ebiten.Key, len(script.Steps))}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "click", "drag", "wait":
		case "key":
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(strings.TrimSpace(st.Key))); err != nil {
				return nil, errors.Wrapf(ErrFormat, "thicket: parse test script: step %d: unknown key %q", i, st.Key)
			}
			r.keys[i] = k
		default:
			return nil, errors.Wrapf(ErrFormat, "thicket: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return r, nil
}

// SetTestRunner attaches a TestRunner to the screen. The runner advances
// once per tick, before input is read.
func (s *Screen) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Screen.Update.
func (r *TestRunner) step(s *Screen) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
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

	i := r.cursor
	st := r.steps[i]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		s.InjectKey(r.keys[i])
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
