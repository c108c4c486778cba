package thicket

import "github.com/hajimehoshi/ebiten/v2"

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)

	mouseButtonCount
)

// InputState is a snapshot of keyboard and mouse state for one tick.
type InputState struct {
	Keys    [ebiten.KeyMax + 1]bool
	Buttons [mouseButtonCount]bool
	CursorX int
	CursorY int
}

// key reports whether k is down in the snapshot. Unknown keys are up.
func (st *InputState) key(k ebiten.Key) bool {
	if k < 0 || int(k) >= len(st.Keys) {
		return false
	}
	return st.Keys[k]
}

func (st *InputState) button(b MouseButton) bool {
	if b >= mouseButtonCount {
		return false
	}
	return st.Buttons[b]
}

// PollInput reads the current keyboard and mouse state from Ebitengine.
// Call it from within ebiten.Game.Update.
func PollInput() InputState {
	var st InputState
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		st.Keys[k] = ebiten.IsKeyPressed(k)
	}
	st.Buttons[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	st.Buttons[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	st.Buttons[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	st.CursorX, st.CursorY = ebiten.CursorPosition()
	return st
}

// Input tracks the current and previous snapshots so edge queries (pressed
// this tick, released this tick) need no global state. Feed it one snapshot
// per tick with Update.
type Input struct {
	current  InputState
	previous InputState
}

// Update makes next the current snapshot.
func (in *Input) Update(next InputState) {
	in.previous = in.current
	in.current = next
}

// KeyHeld reports whether k is down.
func (in *Input) KeyHeld(k ebiten.Key) bool {
	return in.current.key(k)
}

// KeyPressed reports whether k went down this tick.
func (in *Input) KeyPressed(k ebiten.Key) bool {
	return in.current.key(k) && !in.previous.key(k)
}

// KeyReleased reports whether k went up this tick.
func (in *Input) KeyReleased(k ebiten.Key) bool {
	return !in.current.key(k) && in.previous.key(k)
}

// ButtonHeld reports whether b is down.
func (in *Input) ButtonHeld(b MouseButton) bool {
	return in.current.button(b)
}

// ButtonPressed reports whether b went down this tick.
func (in *Input) ButtonPressed(b MouseButton) bool {
	return in.current.button(b) && !in.previous.button(b)
}

// ButtonReleased reports whether b went up this tick.
func (in *Input) ButtonReleased(b MouseButton) bool {
	return !in.current.button(b) && in.previous.button(b)
}

// Cursor returns the cursor position in frame coordinates.
func (in *Input) Cursor() (x, y int) {
	return in.current.CursorX, in.current.CursorY
}
