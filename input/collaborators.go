package input

// Control names which part of the player's autopilot a manual input takes
// back.
type Control int

const (
	ControlAll Control = iota
	ControlMovement
	ControlBraking
)

// Turn selects a turning direction.
type Turn int

const (
	TurnLeft Turn = iota
	TurnRight
)

// EscortOrder is a fleet command.
type EscortOrder int

const (
	EscortAttack EscortOrder = iota
	EscortHold
	EscortReturn
	EscortClear
)

// FlightCommands steer the player's ship.
type FlightCommands interface {
	RestoreControl(c Control)
	Accel(throttle float64)
	AccelOver()
	Afterburn()
	AfterburnOver()
	// SetTurn sets the turn rate in [0,1] for one direction; 0 stops turning.
	SetTurn(dir Turn, rate float64)
	SetReverse(on bool)
	SetFace(on bool)
	Brake()
	ToggleMouseFly()
	// MouseMove reports the cursor position in screen pixels for mouse flight.
	MouseMove(x, y float64)
}

// TargetCommands change the player's selection.
type TargetCommands interface {
	TargetNext(hostile bool)
	TargetPrev(hostile bool)
	TargetNearest()
	TargetHostile()
	TargetClear()
	TargetEscort(prev bool)
	CyclePlanetTarget()
	CycleHyperspaceTarget()

	SelectPilot(id uint64)
	SelectPlanet(id uint64)
	SelectJump(id uint64)
	SelectAsteroid(field, id uint64)
	// SelectMapJump selects the jump's destination on the star map.
	SelectMapJump(id uint64)
}

// CombatCommands fire weapons and order escorts.
type CombatCommands interface {
	SetPrimary(on bool)
	SetSecondary(on bool)
	WeaponSetPress(index int, press, repeat bool)
	Escort(order EscortOrder)
	Board()
}

// NavCommands drive autonav, landing and jumping.
type NavCommands interface {
	AutonavStart()
	// AutonavStartMap starts autonav along the path selected on the map.
	AutonavStartMap()
	AutonavToPilot(id uint64)
	AutonavToPlanet(id uint64)
	AutonavToPosition(x, y float64)
	Land()
	Jump()
	Hail()
	HailPlanet()
	Autohail()
}

// InterfaceCommands open screens and tweak the session.
type InterfaceCommands interface {
	OpenStarmap()
	Overlay(press bool)
	ScrollLog(lines int)
	RadarZoom(delta int)
	// Zoom multiplies the camera zoom target.
	Zoom(factor float64)
	Screenshot()
	ToggleFullscreen()
	TogglePause()
	CycleSpeed()
	OpenMenu()
	OpenInfo()
	OpenConsole()
}

// Commands is the game-command sink the dispatcher and click resolver call.
type Commands interface {
	FlightCommands
	TargetCommands
	CombatCommands
	NavCommands
	InterfaceCommands
}

// PlayerState answers the guard questions about the player's ship.
type PlayerState interface {
	// Present is false before the player ship exists or after it is destroyed.
	Present() bool
	Dead() bool
	Hyperspacing() bool
	Landed() bool
}

// UIState reports which screens are open.
type UIState interface {
	// BlockingUIOpen is true while a modal window owns the input.
	BlockingUIOpen() bool
	MapOpen() bool
}

// Notifier receives one call per accepted input for scripting hooks.
type Notifier interface {
	Notify(action string, press bool)
	NotifyMouse(button MouseButton)
}

// Viewport maps screen pixels to world units.
type Viewport interface {
	ScreenSize() (w, h int)
	ScreenToWorld(x, y float64) (wx, wy float64)
	// Zoom is the magnification in screen pixels per world unit.
	Zoom() float64
}

// Cursor shows and hides the platform mouse cursor.
type Cursor interface {
	ShowCursor()
	HideCursor()
}

// Interceptor gets every event before the game does. Returning true stops
// further processing.
type Interceptor interface {
	Intercept(ev RawEvent) bool
}

// InterceptorFunc adapts a function to Interceptor.
type InterceptorFunc func(ev RawEvent) bool

func (f InterceptorFunc) Intercept(ev RawEvent) bool { return f(ev) }
