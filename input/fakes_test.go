package input

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"
)

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recorder implements Commands by logging every call.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (r *recorder) has(call string) bool { return r.count(call) > 0 }

func (r *recorder) reset() { r.calls = nil }

func (r *recorder) RestoreControl(c Control)         { r.add("RestoreControl(%d)", c) }
func (r *recorder) Accel(v float64)                  { r.add("Accel(%g)", v) }
func (r *recorder) AccelOver()                       { r.add("AccelOver") }
func (r *recorder) Afterburn()                       { r.add("Afterburn") }
func (r *recorder) AfterburnOver()                   { r.add("AfterburnOver") }
func (r *recorder) SetTurn(dir Turn, rate float64)   { r.add("SetTurn(%d,%g)", dir, rate) }
func (r *recorder) SetReverse(on bool)               { r.add("SetReverse(%t)", on) }
func (r *recorder) SetFace(on bool)                  { r.add("SetFace(%t)", on) }
func (r *recorder) Brake()                           { r.add("Brake") }
func (r *recorder) ToggleMouseFly()                  { r.add("ToggleMouseFly") }
func (r *recorder) MouseMove(x, y float64)           { r.add("MouseMove(%g,%g)", x, y) }
func (r *recorder) TargetNext(hostile bool)          { r.add("TargetNext(%t)", hostile) }
func (r *recorder) TargetPrev(hostile bool)          { r.add("TargetPrev(%t)", hostile) }
func (r *recorder) TargetNearest()                   { r.add("TargetNearest") }
func (r *recorder) TargetHostile()                   { r.add("TargetHostile") }
func (r *recorder) TargetClear()                     { r.add("TargetClear") }
func (r *recorder) TargetEscort(prev bool)           { r.add("TargetEscort(%t)", prev) }
func (r *recorder) CyclePlanetTarget()               { r.add("CyclePlanetTarget") }
func (r *recorder) CycleHyperspaceTarget()           { r.add("CycleHyperspaceTarget") }
func (r *recorder) SelectPilot(id uint64)            { r.add("SelectPilot(%d)", id) }
func (r *recorder) SelectPlanet(id uint64)           { r.add("SelectPlanet(%d)", id) }
func (r *recorder) SelectJump(id uint64)             { r.add("SelectJump(%d)", id) }
func (r *recorder) SelectAsteroid(field, id uint64)  { r.add("SelectAsteroid(%d,%d)", field, id) }
func (r *recorder) SelectMapJump(id uint64)          { r.add("SelectMapJump(%d)", id) }
func (r *recorder) SetPrimary(on bool)               { r.add("SetPrimary(%t)", on) }
func (r *recorder) SetSecondary(on bool)             { r.add("SetSecondary(%t)", on) }
func (r *recorder) WeaponSetPress(i int, p, rp bool) { r.add("WeaponSetPress(%d,%t,%t)", i, p, rp) }
func (r *recorder) Escort(o EscortOrder)             { r.add("Escort(%d)", o) }
func (r *recorder) Board()                           { r.add("Board") }
func (r *recorder) AutonavStart()                    { r.add("AutonavStart") }
func (r *recorder) AutonavStartMap()                 { r.add("AutonavStartMap") }
func (r *recorder) AutonavToPilot(id uint64)         { r.add("AutonavToPilot(%d)", id) }
func (r *recorder) AutonavToPlanet(id uint64)        { r.add("AutonavToPlanet(%d)", id) }
func (r *recorder) AutonavToPosition(x, y float64)   { r.add("AutonavToPosition(%g,%g)", x, y) }
func (r *recorder) Land()                            { r.add("Land") }
func (r *recorder) Jump()                            { r.add("Jump") }
func (r *recorder) Hail()                            { r.add("Hail") }
func (r *recorder) HailPlanet()                      { r.add("HailPlanet") }
func (r *recorder) Autohail()                        { r.add("Autohail") }
func (r *recorder) OpenStarmap()                     { r.add("OpenStarmap") }
func (r *recorder) Overlay(press bool)               { r.add("Overlay(%t)", press) }
func (r *recorder) ScrollLog(n int)                  { r.add("ScrollLog(%d)", n) }
func (r *recorder) RadarZoom(d int)                  { r.add("RadarZoom(%d)", d) }
func (r *recorder) Zoom(f float64)                   { r.add("Zoom(%g)", f) }
func (r *recorder) Screenshot()                      { r.add("Screenshot") }
func (r *recorder) ToggleFullscreen()                { r.add("ToggleFullscreen") }
func (r *recorder) TogglePause()                     { r.add("TogglePause") }
func (r *recorder) CycleSpeed()                      { r.add("CycleSpeed") }
func (r *recorder) OpenMenu()                        { r.add("OpenMenu") }
func (r *recorder) OpenInfo()                        { r.add("OpenInfo") }
func (r *recorder) OpenConsole()                     { r.add("OpenConsole") }

type fakePlayer struct {
	absent, dead, hyper, landed bool
}

func (p *fakePlayer) Present() bool      { return !p.absent }
func (p *fakePlayer) Dead() bool         { return p.dead }
func (p *fakePlayer) Hyperspacing() bool { return p.hyper }
func (p *fakePlayer) Landed() bool       { return p.landed }

type fakeUI struct {
	blocking, mapOpen bool
}

func (u *fakeUI) BlockingUIOpen() bool { return u.blocking }
func (u *fakeUI) MapOpen() bool        { return u.mapOpen }

type notification struct {
	action string
	press  bool
}

type fakeNotifier struct {
	events []notification
	mouse  []MouseButton
}

func (n *fakeNotifier) Notify(action string, press bool) {
	n.events = append(n.events, notification{action, press})
}

func (n *fakeNotifier) NotifyMouse(b MouseButton) { n.mouse = append(n.mouse, b) }

type fakeCursor struct {
	shown, hidden int
}

func (c *fakeCursor) ShowCursor() { c.shown++ }
func (c *fakeCursor) HideCursor() { c.hidden++ }

// fakeClock is advanced by hand.
type fakeClock struct {
	t time.Time
}

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// fakeNamer numbers keys in the order of its name list.
type fakeNamer struct {
	names []string
}

func newNamer() *fakeNamer {
	names := []string{
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
		"Digit0", "Digit1", "Digit2", "Digit3", "Digit4", "Digit5", "Digit6", "Digit7", "Digit8", "Digit9",
		"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight", "Space", "ShiftLeft", "Backspace", "Tab",
		"End", "Insert", "Delete", "Home", "PageUp", "PageDown", "NumpadAdd", "NumpadSubtract",
		"NumpadMultiply", "F2", "F11", "Pause", "Backquote", "Escape",
	}
	return &fakeNamer{names: names}
}

func (n *fakeNamer) KeyCode(name string) (Key, bool) {
	for i, s := range n.names {
		if strings.EqualFold(s, name) {
			return Key(i), true
		}
	}
	return KeyUnknown, false
}

func (n *fakeNamer) KeyName(k Key) string {
	if k < 0 || int(k) >= len(n.names) {
		return "Unknown"
	}
	return n.names[k]
}

func (n *fakeNamer) key(name string) Key {
	k, ok := n.KeyCode(name)
	if !ok {
		panic("unknown test key " + name)
	}
	return k
}

// fakeWorld is a flat list of entities with the player at (px, py).
type fakeWorld struct {
	px, py   float64
	noPlayer bool
	pilots   []Target
	assets   []Target
	selected map[TargetKind]uint64
	gone     map[Ref]bool
}

func newWorld() *fakeWorld {
	return &fakeWorld{selected: map[TargetKind]uint64{}, gone: map[Ref]bool{}}
}

func (w *fakeWorld) PlayerPosition() (float64, float64, bool) {
	return w.px, w.py, !w.noPlayer
}

func nearest(list []Target, x, y float64) (Target, float64, bool) {
	best, bestD, ok := Target{}, math.Inf(1), false
	for _, t := range list {
		if d := dist2(x, y, t.X, t.Y); d < bestD {
			best, bestD, ok = t, d, true
		}
	}
	return best, bestD, ok
}

func (w *fakeWorld) nearestAngle(list []Target, bearing float64) (Target, float64, bool) {
	best, bestDev, bestAng, ok := Target{}, math.Inf(1), 0.0, false
	for _, t := range list {
		ang := math.Atan2(t.Y-w.py, t.X-w.px)
		if dev := math.Abs(angleDiff(bearing, ang)); dev < bestDev {
			best, bestDev, bestAng, ok = t, dev, ang, true
		}
	}
	return best, bestAng, ok
}

func (w *fakeWorld) NearestPilot(x, y float64) (Target, float64, bool) { return nearest(w.pilots, x, y) }
func (w *fakeWorld) NearestAsset(x, y float64) (Target, float64, bool) { return nearest(w.assets, x, y) }
func (w *fakeWorld) NearestPilotAngle(b float64) (Target, float64, bool) {
	return w.nearestAngle(w.pilots, b)
}
func (w *fakeWorld) NearestAssetAngle(b float64) (Target, float64, bool) {
	return w.nearestAngle(w.assets, b)
}

func (w *fakeWorld) Selected(kind TargetKind) (Target, bool) {
	id, ok := w.selected[kind]
	if !ok {
		return Target{}, false
	}
	list := w.assets
	if kind == TargetPilot {
		list = w.pilots
	}
	for _, t := range list {
		if t.Kind == kind && t.ID == id {
			return t, true
		}
	}
	return Target{}, false
}

func (w *fakeWorld) Exists(ref Ref) bool { return !w.gone[ref] }

// fakeViewport centres the camera on the player at zoom 1.
type fakeViewport struct {
	w, h  int
	world *fakeWorld
}

func (v *fakeViewport) ScreenSize() (int, int) { return v.w, v.h }
func (v *fakeViewport) ScreenToWorld(x, y float64) (float64, float64) {
	return x - float64(v.w)/2 + v.world.px, y - float64(v.h)/2 + v.world.py
}
func (v *fakeViewport) Zoom() float64 { return 1 }
