package input

import (
	"log/slog"
	"time"
)

type guard uint8

const (
	inGame guard = 1 << iota
	noHyperspace
	notDead
	notLanded
)

type handler struct {
	guards   guard
	noRepeat bool
	run      func(d *Dispatcher, s Signal)
}

// onPress wraps f so it only runs on presses.
func onPress(f func(c Commands)) func(d *Dispatcher, s Signal) {
	return func(d *Dispatcher, s Signal) {
		if s.Press {
			f(d.cmds)
		}
	}
}

// handlers is indexed by Action. Actions with a nil run are not handled by
// the dispatcher at all.
var handlers [NumActions]handler

func init() {
	h := &handlers

	h[ActionAccel] = handler{noRepeat: true, run: (*Dispatcher).accel}
	h[ActionLeft] = handler{noRepeat: true, run: turn(TurnLeft)}
	h[ActionRight] = handler{noRepeat: true, run: turn(TurnRight)}
	h[ActionReverse] = handler{noRepeat: true, run: (*Dispatcher).reverse}

	h[ActionPrimary] = handler{guards: notDead, noRepeat: true, run: func(d *Dispatcher, s Signal) { d.cmds.SetPrimary(s.Press) }}
	h[ActionTargetNext] = handler{guards: inGame | notDead, run: onPress(func(c Commands) { c.TargetNext(false) })}
	h[ActionTargetPrev] = handler{guards: inGame | notDead, run: onPress(func(c Commands) { c.TargetPrev(false) })}
	h[ActionTargetNearest] = handler{guards: inGame | notDead, run: onPress(Commands.TargetNearest)}
	h[ActionTargetNextHostile] = handler{guards: inGame | notDead, run: onPress(func(c Commands) { c.TargetNext(true) })}
	h[ActionTargetPrevHostile] = handler{guards: inGame | notDead, run: onPress(func(c Commands) { c.TargetPrev(true) })}
	h[ActionTargetHostile] = handler{guards: inGame | notDead, run: onPress(Commands.TargetHostile)}
	h[ActionTargetClear] = handler{guards: inGame | notDead, run: onPress(Commands.TargetClear)}
	h[ActionFace] = handler{guards: inGame | notDead, noRepeat: true, run: (*Dispatcher).face}
	h[ActionBoard] = handler{guards: inGame | noHyperspace | notDead, noRepeat: true, run: onPress(func(c Commands) {
		c.RestoreControl(ControlAll)
		c.Board()
	})}

	h[ActionEscortTargetNext] = handler{guards: inGame | notDead, noRepeat: true, run: onPress(func(c Commands) { c.TargetEscort(false) })}
	h[ActionEscortTargetPrev] = handler{guards: inGame | notDead, noRepeat: true, run: onPress(func(c Commands) { c.TargetEscort(true) })}
	h[ActionEscortAttack] = handler{guards: inGame | notDead, noRepeat: true, run: escort(EscortAttack)}
	h[ActionEscortHold] = handler{guards: inGame | notDead, noRepeat: true, run: escort(EscortHold)}
	h[ActionEscortReturn] = handler{guards: inGame | notDead, noRepeat: true, run: escort(EscortReturn)}
	h[ActionEscortClear] = handler{guards: inGame | notDead, noRepeat: true, run: escort(EscortClear)}

	h[ActionSecondary] = handler{guards: noHyperspace | notDead, noRepeat: true, run: func(d *Dispatcher, s Signal) { d.cmds.SetSecondary(s.Press) }}
	for a := ActionWeaponSet1; a <= ActionWeaponSet0; a++ {
		h[a] = handler{guards: inGame | notDead, run: (*Dispatcher).weaponSet}
	}

	h[ActionAutonav] = handler{guards: noHyperspace | notDead, run: (*Dispatcher).autonav}
	h[ActionTargetPlanet] = handler{guards: inGame | noHyperspace | notLanded | notDead, run: onPress(Commands.CyclePlanetTarget)}
	h[ActionLand] = handler{guards: inGame | noHyperspace | notLanded | notDead, run: onPress(Commands.Land)}
	h[ActionTargetHyperspace] = handler{guards: noHyperspace | notLanded | notDead, run: onPress(Commands.CycleHyperspaceTarget)}
	h[ActionStarmap] = handler{guards: noHyperspace | notDead, noRepeat: true, run: onPress(Commands.OpenStarmap)}
	h[ActionJump] = handler{guards: inGame, noRepeat: true, run: onPress(func(c Commands) {
		c.RestoreControl(ControlAll)
		c.Jump()
	})}
	h[ActionOverlay] = handler{guards: notDead | inGame, noRepeat: true, run: func(d *Dispatcher, s Signal) { d.cmds.Overlay(s.Press) }}
	h[ActionMouseFly] = handler{guards: notDead, noRepeat: true, run: onPress(Commands.ToggleMouseFly)}
	h[ActionAutobrake] = handler{guards: noHyperspace | notLanded | notDead, noRepeat: true, run: onPress(func(c Commands) {
		c.RestoreControl(ControlBraking)
		c.Brake()
	})}

	h[ActionLogUp] = handler{guards: inGame | notDead, run: onPress(func(c Commands) { c.ScrollLog(logScrollLines) })}
	h[ActionLogDown] = handler{guards: inGame | notDead, run: onPress(func(c Commands) { c.ScrollLog(-logScrollLines) })}
	h[ActionHail] = handler{guards: inGame | noHyperspace | notDead, noRepeat: true, run: onPress(Commands.Hail)}
	h[ActionAutohail] = handler{guards: inGame | noHyperspace | notDead, noRepeat: true, run: onPress(Commands.Autohail)}

	h[ActionRadarZoomIn] = handler{guards: inGame | notDead, run: onPress(func(c Commands) { c.RadarZoom(-1) })}
	h[ActionRadarZoomOut] = handler{guards: inGame | notDead, run: onPress(func(c Commands) { c.RadarZoom(1) })}
	h[ActionScreenshot] = handler{run: onPress(Commands.Screenshot)}
	h[ActionToggleFullscreen] = handler{noRepeat: true, run: onPress(Commands.ToggleFullscreen)}
	h[ActionPause] = handler{noRepeat: true, run: (*Dispatcher).pause}
	h[ActionSpeed] = handler{noRepeat: true, run: onPress(Commands.CycleSpeed)}
	h[ActionMenu] = handler{guards: notDead, noRepeat: true, run: onPress(Commands.OpenMenu)}
	h[ActionInfo] = handler{guards: noHyperspace | notDead, noRepeat: true, run: onPress(Commands.OpenInfo)}
	h[ActionConsole] = handler{guards: notDead, noRepeat: true, run: onPress(Commands.OpenConsole)}
}

const logScrollLines = 5

func turn(dir Turn) func(d *Dispatcher, s Signal) {
	return func(d *Dispatcher, s Signal) {
		switch {
		case !s.Digital():
			d.cmds.RestoreControl(ControlMovement)
			d.cmds.SetTurn(dir, s.Abs)
		case s.Press:
			d.cmds.RestoreControl(ControlMovement)
			d.cmds.SetTurn(dir, 1)
		default:
			d.cmds.SetTurn(dir, 0)
		}
	}
}

func escort(order EscortOrder) func(d *Dispatcher, s Signal) {
	return onPress(func(c Commands) { c.Escort(order) })
}

// Dispatcher runs the command bound to each signal, subject to the action's
// guards, and drives the timer-based key repeat.
type Dispatcher struct {
	cmds     Commands
	player   PlayerState
	ui       UIState
	notifier Notifier
	settings Settings
	now      func() time.Time
	log      *slog.Logger

	repeatAction Action
	repeatAt     time.Time
	repeatCount  int

	accelHeld   bool
	reverseHeld bool
	faceHeld    bool
	lastAccel   time.Time
}

// NewDispatcher builds a dispatcher over the collaborators in deps.
func NewDispatcher(deps Deps, settings Settings) *Dispatcher {
	deps = deps.withDefaults()
	return &Dispatcher{
		cmds:         deps.Commands,
		player:       deps.Player,
		ui:           deps.UI,
		notifier:     deps.Notifier,
		settings:     settings,
		now:          deps.Now,
		log:          deps.Log,
		repeatAction: ActionNone,
	}
}

// SetSettings replaces the timings. Pending repeat state is kept.
func (d *Dispatcher) SetSettings(s Settings) {
	d.settings = s
	if s.RepeatDelay == 0 {
		d.repeatAction = ActionNone
	}
}

// Dispatch runs one signal.
func (d *Dispatcher) Dispatch(s Signal) {
	if !s.Action.Valid() {
		return
	}

	if d.settings.RepeatDelay != 0 {
		if s.Press && !s.Repeat {
			d.repeatAction = s.Action
			d.repeatAt = d.now()
			d.repeatCount = 0
		} else if !s.Press {
			d.repeatAction = ActionNone
			d.repeatCount = 0
		}
	}

	h := &handlers[s.Action]
	if h.run == nil {
		return
	}
	if h.noRepeat && s.Repeat {
		return
	}
	if !d.allowed(h.guards) {
		return
	}
	h.run(d, s)
	d.notifier.Notify(s.Action.String(), s.Press)
}

// Tick re-sends the held action once its repeat deadline has passed.
func (d *Dispatcher) Tick() {
	if d.settings.RepeatDelay == 0 || d.repeatAction == ActionNone {
		return
	}
	deadline := d.settings.RepeatDelay + time.Duration(d.repeatCount)*d.settings.RepeatFreq
	if d.now().Sub(d.repeatAt) <= deadline {
		return
	}
	d.repeatCount++
	d.Dispatch(Signal{Action: d.repeatAction, Press: true, Abs: -1, Repeat: true})
}

func (d *Dispatcher) allowed(g guard) bool {
	if g&inGame != 0 && d.ui.BlockingUIOpen() {
		return false
	}
	if g&(noHyperspace|notDead|notLanded) != 0 && !d.player.Present() {
		return false
	}
	if g&noHyperspace != 0 && d.player.Hyperspacing() {
		return false
	}
	if g&notDead != 0 && d.player.Dead() {
		return false
	}
	if g&notLanded != 0 && d.player.Landed() {
		return false
	}
	return true
}

func (d *Dispatcher) accel(s Signal) {
	if !s.Digital() {
		d.cmds.RestoreControl(ControlMovement)
		d.cmds.Accel(s.Abs)
		return
	}

	if !s.Press {
		d.cmds.AccelOver()
		d.cmds.AfterburnOver()
		d.accelHeld = false
		return
	}

	now := d.now()
	double := d.settings.AfterburnSens != 0 &&
		d.allowed(inGame|noHyperspace|notDead) &&
		!d.lastAccel.IsZero() &&
		now.Sub(d.lastAccel) <= d.settings.AfterburnSens

	d.cmds.RestoreControl(ControlMovement)
	if double {
		d.log.Debug("afterburner engaged")
		d.cmds.Afterburn()
	} else {
		d.cmds.Accel(1)
	}
	d.accelHeld = true
	d.lastAccel = now
}

func (d *Dispatcher) reverse(s Signal) {
	if s.Press {
		d.cmds.RestoreControl(ControlMovement)
		d.cmds.SetReverse(true)
		d.reverseHeld = true
		return
	}
	if !d.reverseHeld {
		return
	}
	d.reverseHeld = false
	d.cmds.SetReverse(false)
	if !d.accelHeld {
		d.cmds.AccelOver()
	}
}

func (d *Dispatcher) face(s Signal) {
	if s.Press {
		d.cmds.RestoreControl(ControlMovement)
		d.cmds.SetFace(true)
		d.faceHeld = true
		return
	}
	if d.faceHeld {
		d.faceHeld = false
		d.cmds.SetFace(false)
	}
}

func (d *Dispatcher) weaponSet(s Signal) {
	idx, _ := s.Action.WeaponSet()
	d.cmds.WeaponSetPress(idx, s.Press, s.Repeat)
}

func (d *Dispatcher) autonav(s Signal) {
	if !s.Press {
		return
	}
	if d.ui.MapOpen() {
		d.cmds.AutonavStartMap()
	} else if !d.ui.BlockingUIOpen() {
		d.cmds.AutonavStart()
	}
}

func (d *Dispatcher) pause(s Signal) {
	if s.Press && !d.ui.BlockingUIOpen() {
		d.cmds.TogglePause()
	}
}
