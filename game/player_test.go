package game

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"skyhaul/input"
	"skyhaul/space"
)

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type playerRig struct {
	world  *space.World
	cam    *Camera
	player *Player
}

func newPlayerRig(t *testing.T) *playerRig {
	t.Helper()
	w := space.New(space.Config{CellSize: 500, MinX: -10000, MinY: -10000, Width: 20000, Height: 20000}, quietLog())
	cam := NewCamera(800, 600)
	class, ok := ShipClassByName("Courier")
	if !ok {
		t.Fatal("no Courier class")
	}
	p := NewPlayer(w, cam, NewLoadout(class), 0, 0, quietLog())
	return &playerRig{world: w, cam: cam, player: p}
}

func (r *playerRig) spawn(kind input.TargetKind, name string, x, y, radius float64, traits space.Traits) input.Ref {
	return r.world.Spawn(space.Spec{Kind: kind, Name: name, X: x, Y: y, Radius: radius, Traits: traits})
}

func (r *playerRig) setVelocity(vx, vy float64) {
	b, _ := r.world.Body(r.player.Ref)
	b.VX, b.VY = vx, vy
	r.world.SetBody(r.player.Ref, b)
}

func TestPlayerState(t *testing.T) {
	r := newPlayerRig(t)
	p := r.player
	if !p.Present() || p.Dead() || p.Landed() || p.Hyperspacing() {
		t.Fatalf("fresh player state wrong")
	}
	if ref, ok := r.world.Player(); !ok || ref != p.Ref {
		t.Errorf("world player = %v, %v", ref, ok)
	}
	p.Kill()
	if !p.Dead() {
		t.Error("Dead() = false after Kill")
	}
	r.world.Remove(p.Ref)
	if p.Present() {
		t.Error("Present() = true after removal")
	}
}

func TestTargetCycling(t *testing.T) {
	r := newPlayerRig(t)
	p := r.player
	a := r.spawn(input.TargetPilot, "A", 100, 0, 10, space.Traits{})
	b := r.spawn(input.TargetPilot, "B", 200, 0, 10, space.Traits{Hostile: true})
	c := r.spawn(input.TargetPilot, "C", 300, 0, 10, space.Traits{})

	selected := func() input.Ref {
		ref, _ := r.world.SelectedRef(input.TargetPilot)
		return ref
	}

	steps := []struct {
		name string
		do   func()
		want input.Ref
	}{
		{"next", func() { p.TargetNext(false) }, a},
		{"next", func() { p.TargetNext(false) }, b},
		{"next", func() { p.TargetNext(false) }, c},
		{"next wraps", func() { p.TargetNext(false) }, a},
		{"prev wraps", func() { p.TargetPrev(false) }, c},
		{"prev", func() { p.TargetPrev(false) }, b},
		{"next hostile", func() { p.TargetNext(true) }, b},
		{"nearest", func() { p.TargetNearest() }, a},
		{"hostile", func() { p.TargetHostile() }, b},
	}
	for _, s := range steps {
		s.do()
		if got := selected(); got != s.want {
			t.Fatalf("%s: selected %v, want %v", s.name, got, s.want)
		}
	}

	p.TargetClear()
	if _, ok := r.world.SelectedRef(input.TargetPilot); ok {
		t.Error("TargetClear left a selection")
	}
}

func TestCyclePlanetSkipsUnknown(t *testing.T) {
	r := newPlayerRig(t)
	known := r.spawn(input.TargetPlanet, "Haven", 500, 0, 50, space.Traits{Known: true})
	r.spawn(input.TargetPlanet, "Veil", 900, 0, 50, space.Traits{})

	r.player.CyclePlanetTarget()
	r.player.CyclePlanetTarget()
	if ref, _ := r.world.SelectedRef(input.TargetPlanet); ref != known {
		t.Errorf("selected %v, want %v", ref, known)
	}
}

func TestTargetEscort(t *testing.T) {
	r := newPlayerRig(t)
	p := r.player
	e1 := r.spawn(input.TargetPilot, "Wing 1", 50, 0, 10, space.Traits{})
	e2 := r.spawn(input.TargetPilot, "Wing 2", 60, 0, 10, space.Traits{})
	p.AddEscort(e1)
	p.AddEscort(e2)

	p.TargetEscort(false)
	p.TargetEscort(false)
	if ref, _ := r.world.SelectedRef(input.TargetPilot); ref != e2 {
		t.Fatalf("selected %v, want %v", ref, e2)
	}
	r.world.Remove(e1)
	p.TargetEscort(true)
	if ref, _ := r.world.SelectedRef(input.TargetPilot); ref != e2 {
		t.Errorf("after losing an escort selected %v, want %v", ref, e2)
	}
}

func TestLand(t *testing.T) {
	r := newPlayerRig(t)
	p := r.player
	planet := r.spawn(input.TargetPlanet, "Haven", 20, 0, 100, space.Traits{Known: true, Landable: true})

	p.Land()
	if ref, _ := r.world.SelectedRef(input.TargetPlanet); ref != planet {
		t.Fatalf("first Land() selected %v, want %v", ref, planet)
	}
	if p.Landed() {
		t.Fatal("first Land() landed")
	}

	r.setVelocity(200, 0)
	p.Land()
	if p.Landed() {
		t.Fatal("landed while too fast")
	}

	r.setVelocity(10, 0)
	p.Land()
	if !p.Landed() || p.landed {
		t.Fatal("Land() did not start the approach")
	}
	p.Update(p.Attr.LandDelay + 0.1)
	if !p.landed {
		t.Fatal("approach did not finish")
	}

	p.TakeOff()
	if p.Landed() {
		t.Error("still landed after TakeOff")
	}
}

func TestJump(t *testing.T) {
	r := newPlayerRig(t)
	p := r.player
	gate := r.spawn(input.TargetJump, "Kestrel", 300, 0, 50, space.Traits{Known: true})
	exit := r.spawn(input.TargetJump, "Orrin", 5000, 0, 50, space.Traits{Known: true})

	p.Jump()
	if p.Hyperspacing() {
		t.Fatal("jumped without a target")
	}

	p.SelectJump(gate.ID)
	p.Jump()
	if !p.Hyperspacing() {
		t.Fatal("Jump() did not start")
	}
	p.Update(p.Attr.JumpDelay + 0.1)
	if p.Hyperspacing() {
		t.Fatal("jump did not complete")
	}

	b, _ := r.world.Body(p.Ref)
	tgt, _ := r.world.Target(exit)
	if d := math.Hypot(b.X-tgt.X, b.Y-tgt.Y); d > jumpRange {
		t.Errorf("arrived %v units from %s", d, "Orrin")
	}
	if _, ok := r.world.SelectedRef(input.TargetJump); ok {
		t.Error("jump target still selected after arrival")
	}
}

func TestJumpTooFar(t *testing.T) {
	r := newPlayerRig(t)
	gate := r.spawn(input.TargetJump, "Kestrel", 3000, 0, 50, space.Traits{Known: true})
	r.player.SelectJump(gate.ID)
	r.player.Jump()
	if r.player.Hyperspacing() {
		t.Error("jumped from too far away")
	}
}

func TestAccelerate(t *testing.T) {
	r := newPlayerRig(t)
	p := r.player
	p.Accel(1)
	for range 60 {
		p.Update(1.0 / 60)
	}
	b, _ := r.world.Body(p.Ref)
	if b.VX <= 0 || math.Abs(b.VY) > 1e-9 {
		t.Fatalf("velocity = (%v, %v), want forward along +X", b.VX, b.VY)
	}

	p.AccelOver()
	p.Brake()
	for range 600 {
		p.Update(1.0 / 60)
	}
	b, _ = r.world.Body(p.Ref)
	if v := math.Hypot(b.VX, b.VY); v > 1 {
		t.Errorf("speed after braking = %v", v)
	}
}

func TestAutonavAbort(t *testing.T) {
	r := newPlayerRig(t)
	p := r.player
	p.AutonavToPosition(1000, 1000)
	if p.nav.kind != navPosition {
		t.Fatal("autonav not engaged")
	}
	p.RestoreControl(input.ControlMovement)
	if p.nav.kind != navOff {
		t.Error("RestoreControl left autonav on")
	}

	p.AutonavStart()
	if p.nav.kind != navOff {
		t.Error("autonav started without a jump target")
	}
}

func TestInterfaceToggles(t *testing.T) {
	r := newPlayerRig(t)
	p := r.player

	p.OpenMenu()
	if !p.BlockingUIOpen() {
		t.Error("menu does not block")
	}
	p.OpenMenu()
	p.OpenStarmap()
	if p.BlockingUIOpen() || !p.MapOpen() {
		t.Error("starmap state wrong")
	}

	p.TogglePause()
	if p.TimeScale() != 0 {
		t.Errorf("TimeScale() = %v while paused", p.TimeScale())
	}
	p.TogglePause()
	p.CycleSpeed()
	if p.TimeScale() != 2 {
		t.Errorf("TimeScale() = %v, want 2", p.TimeScale())
	}

	p.Screenshot()
	if !p.TakeScreenshot() || p.TakeScreenshot() {
		t.Error("screenshot request not consumed once")
	}

	p.Zoom(2)
	if r.cam.Zoom() != 2 {
		t.Errorf("Zoom() = %v, want 2", r.cam.Zoom())
	}
	for range 20 {
		p.Zoom(2)
	}
	if r.cam.Zoom() != maxZoom {
		t.Errorf("Zoom() = %v, want clamp at %v", r.cam.Zoom(), maxZoom)
	}
}

func TestWeaponSet(t *testing.T) {
	r := newPlayerRig(t)
	p := r.player
	p.WeaponSetPress(3, true, false)
	p.WeaponSetPress(5, true, true)
	p.WeaponSetPress(6, false, false)
	if p.weaponSet != 3 {
		t.Errorf("weaponSet = %d, want 3", p.weaponSet)
	}
}
