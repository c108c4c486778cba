package thicket

import "github.com/hajimehoshi/ebiten/v2"

// Synthetic input replaces the real devices for one tick per queued
// snapshot, so scripted sessions and tests can drive a Screen. Each
// injection starts from the last queued snapshot (or the current input),
// so keys and buttons held by earlier injections stay held.

// lastInjected returns the snapshot new injections build on.
func (s *Screen) lastInjected() InputState {
	if n := len(s.injectQueue); n > 0 {
		return s.injectQueue[n-1]
	}
	return s.Input.current
}

// InjectState queues a complete input snapshot for one tick.
func (s *Screen) InjectState(st InputState) {
	s.injectQueue = append(s.injectQueue, st)
}

// InjectKeyDown queues a tick with k held.
func (s *Screen) InjectKeyDown(k ebiten.Key) {
	st := s.lastInjected()
	if k >= 0 && int(k) < len(st.Keys) {
		st.Keys[k] = true
	}
	s.InjectState(st)
}

// InjectKeyUp queues a tick with k released.
func (s *Screen) InjectKeyUp(k ebiten.Key) {
	st := s.lastInjected()
	if k >= 0 && int(k) < len(st.Keys) {
		st.Keys[k] = false
	}
	s.InjectState(st)
}

// InjectKey queues a press followed by a release of k. Consumes two ticks.
func (s *Screen) InjectKey(k ebiten.Key) {
	s.InjectKeyDown(k)
	s.InjectKeyUp(k)
}

func (s *Screen) injectPointer(x, y int, pressed bool) {
	st := s.lastInjected()
	st.CursorX, st.CursorY = x, y
	st.Buttons[MouseButtonLeft] = pressed
	s.InjectState(st)
}

// InjectPress queues a left-button press at frame coordinates (x, y).
func (s *Screen) InjectPress(x, y int) { s.injectPointer(x, y, true) }

// InjectMove queues a cursor move to (x, y) with the left button held.
func (s *Screen) InjectMove(x, y int) { s.injectPointer(x, y, true) }

// InjectRelease queues a left-button release at (x, y).
func (s *Screen) InjectRelease(x, y int) { s.injectPointer(x, y, false) }

// InjectClick queues a press followed by a release at (x, y). Consumes two
// ticks.
func (s *Screen) InjectClick(x, y int) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), evenly spaced moves and a
// release at (toX, toY). The sequence consumes frames ticks, at least 2.
func (s *Screen) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/(steps+1)
		y := fromY + (toY-fromY)*i/(steps+1)
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued snapshot into Input. It reports
// whether one was consumed, in which case the real devices are skipped.
func (s *Screen) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	st := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.Input.Update(st)
	return true
}
