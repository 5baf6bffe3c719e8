package input

// EventType tells which fields of a RawEvent are meaningful.
type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventJoyAxis
	EventJoyButtonDown
	EventJoyButtonUp
	EventJoyHat
	EventMouseDown
	EventMouseUp
	EventMouseWheel
	EventMouseMotion
)

// Joystick hat direction bits carried in RawEvent.Value.
const (
	HatUp    = 1 << 0
	HatRight = 1 << 1
	HatDown  = 1 << 2
	HatLeft  = 1 << 3
)

// AxisMax is the magnitude of a fully deflected joystick axis.
const AxisMax = 32767

// MouseButton numbers a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota + 1
	MouseMiddle
	MouseRight
)

// RawEvent is one platform event, already reduced to plain values.
type RawEvent struct {
	Type EventType

	// Key is the keyboard key, joystick button, hat or axis number.
	Key Key
	Mod RawMod
	// Repeat marks OS auto-repeat of a held key.
	Repeat bool

	// Value is the axis position in [-AxisMax, AxisMax] or the hat bitmask.
	Value int

	// X and Y are the cursor position in screen pixels.
	X, Y   float64
	Button MouseButton
	WheelY float64
}

// IsMouse reports whether ev came from the mouse.
func (ev RawEvent) IsMouse() bool {
	switch ev.Type {
	case EventMouseDown, EventMouseUp, EventMouseMotion:
		return true
	}
	return false
}

// Signal is a raw event resolved to an action.
type Signal struct {
	Action Action
	Press  bool
	// Abs is the analog magnitude in [0,1], or -1 for digital sources.
	Abs    float64
	Repeat bool
}

// Digital reports whether the signal came from a key or button.
func (s Signal) Digital() bool {
	return s.Abs < 0
}
