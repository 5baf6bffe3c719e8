package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"skyhaul/input"
)

// Gamepad axis tuning.
const (
	// axisDeadZone is the fraction of travel treated as centred
	axisDeadZone = 0.1

	// axisJitter is the smallest change of a quantised axis value worth
	// reporting
	axisJitter = 256
)

var modKeys = []struct {
	key ebiten.Key
	mod input.RawMod
}{
	{ebiten.KeyShiftLeft, input.RawShiftLeft},
	{ebiten.KeyShiftRight, input.RawShiftRight},
	{ebiten.KeyControlLeft, input.RawCtrlLeft},
	{ebiten.KeyControlRight, input.RawCtrlRight},
	{ebiten.KeyAltLeft, input.RawAltLeft},
	{ebiten.KeyAltRight, input.RawAltRight},
	{ebiten.KeyMetaLeft, input.RawMetaLeft},
	{ebiten.KeyMetaRight, input.RawMetaRight},
}

var mouseButtons = []struct {
	button ebiten.MouseButton
	input  input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
	{ebiten.MouseButtonRight, input.MouseRight},
}

// Source turns ebiten's polled input state into input.RawEvents. Ebiten
// reports state per tick, so Source keeps the previous state to produce
// edges. Only the first connected gamepad is read.
type Source struct {
	keys    []ebiten.Key
	buttons []ebiten.GamepadButton
	pads    []ebiten.GamepadID

	pad    ebiten.GamepadID
	hasPad bool
	axes   []int

	cx, cy int
	events []input.RawEvent
}

// NewSource returns a source with no previous state.
func NewSource() *Source {
	return &Source{
		keys:   make([]ebiten.Key, 0, 8),
		events: make([]input.RawEvent, 0, 16),
	}
}

// Poll returns the events since the previous call. The slice is reused by
// the next call.
func (s *Source) Poll() []input.RawEvent {
	s.events = s.events[:0]
	mod := rawMod(ebiten.IsKeyPressed)

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.events = append(s.events, input.RawEvent{Type: input.EventKeyDown, Key: input.Key(k), Mod: mod})
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.events = append(s.events, input.RawEvent{Type: input.EventKeyUp, Key: input.Key(k), Mod: mod})
	}

	s.pollGamepad()
	s.pollMouse()
	return s.events
}

func (s *Source) pollGamepad() {
	s.pads = ebiten.AppendGamepadIDs(s.pads[:0])
	if len(s.pads) == 0 {
		s.hasPad = false
		return
	}
	if !s.hasPad || s.pad != s.pads[0] {
		s.pad, s.hasPad = s.pads[0], true
		s.axes = s.axes[:0]
	}

	s.buttons = inpututil.AppendJustPressedGamepadButtons(s.pad, s.buttons[:0])
	for _, b := range s.buttons {
		s.events = append(s.events, input.RawEvent{Type: input.EventJoyButtonDown, Key: input.Key(b)})
	}
	s.buttons = inpututil.AppendJustReleasedGamepadButtons(s.pad, s.buttons[:0])
	for _, b := range s.buttons {
		s.events = append(s.events, input.RawEvent{Type: input.EventJoyButtonUp, Key: input.Key(b)})
	}

	n := ebiten.GamepadAxisCount(s.pad)
	for len(s.axes) < n {
		s.axes = append(s.axes, 0)
	}
	for i := 0; i < n; i++ {
		v := axisValue(ebiten.GamepadAxisValue(s.pad, ebiten.GamepadAxisType(i)))
		if axisChanged(s.axes[i], v) {
			s.axes[i] = v
			s.events = append(s.events, input.RawEvent{Type: input.EventJoyAxis, Key: input.Key(i), Value: v})
		}
	}
}

func (s *Source) pollMouse() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if x != s.cx || y != s.cy {
		s.cx, s.cy = x, y
		s.events = append(s.events, input.RawEvent{Type: input.EventMouseMotion, X: fx, Y: fy})
	}
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.button) {
			s.events = append(s.events, input.RawEvent{Type: input.EventMouseDown, Button: mb.input, X: fx, Y: fy})
		}
		if inpututil.IsMouseButtonJustReleased(mb.button) {
			s.events = append(s.events, input.RawEvent{Type: input.EventMouseUp, Button: mb.input, X: fx, Y: fy})
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.events = append(s.events, input.RawEvent{Type: input.EventMouseWheel, WheelY: wy, X: fx, Y: fy})
	}
}

// rawMod reads the modifier keys through pressed.
func rawMod(pressed func(ebiten.Key) bool) input.RawMod {
	var m input.RawMod
	for _, mk := range modKeys {
		if pressed(mk.key) {
			m |= mk.mod
		}
	}
	return m
}

// axisValue quantises an ebiten axis value in [-1, 1] to the integer range
// the input filter works with.
func axisValue(v float64) int {
	if math.Abs(v) < axisDeadZone {
		return 0
	}
	return int(math.Round(clamp(v, -1, 1) * input.AxisMax))
}

// axisChanged reports whether cur differs enough from prev to be sent.
// Returning to centre and flipping sides are always sent.
func axisChanged(prev, cur int) bool {
	if prev == cur {
		return false
	}
	if cur == 0 || (prev < 0) != (cur < 0) {
		return true
	}
	d := cur - prev
	return d >= axisJitter || d <= -axisJitter
}
