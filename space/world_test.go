package space

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"skyhaul/input"
)

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestWorld() (*World, input.Ref) {
	w := New(smallConfig(), quietLog())
	player := w.Spawn(Spec{Kind: input.TargetPilot, Name: "player", Radius: 15})
	w.SetPlayer(player)
	return w, player
}

func TestSpawnAndRemove(t *testing.T) {
	w, _ := newTestWorld()
	ref := w.Spawn(Spec{Kind: input.TargetPlanet, Name: "Haven", X: 300, Y: 0, Radius: 80, Traits: Traits{Known: true, Landable: true}})

	tgt, ok := w.Target(ref)
	if !ok || tgt.Kind != input.TargetPlanet || tgt.Radius != 80 || !tgt.Landable {
		t.Fatalf("Target() = %+v, %v", tgt, ok)
	}
	if w.Name(ref) != "Haven" {
		t.Errorf("Name() = %q", w.Name(ref))
	}

	var removed []input.Ref
	w.OnRemove(func(r input.Ref) { removed = append(removed, r) })
	w.Select(input.TargetPlanet, ref.ID)

	if !w.Remove(ref) {
		t.Fatal("Remove() = false")
	}
	if w.Exists(ref) {
		t.Error("removed entity still exists")
	}
	if _, ok := w.Selected(input.TargetPlanet); ok {
		t.Error("selection survived removal")
	}
	if len(removed) != 1 || removed[0] != ref {
		t.Errorf("remove callbacks = %v", removed)
	}
	if w.Remove(ref) {
		t.Error("second Remove() = true")
	}

	next := w.Spawn(Spec{Kind: input.TargetPlanet, X: 300})
	if next.ID <= ref.ID {
		t.Errorf("id %d reused after %d", next.ID, ref.ID)
	}
	if got := w.Spawn(Spec{Kind: input.TargetNone}); got != (input.Ref{}) {
		t.Errorf("invalid spawn = %+v", got)
	}
}

func TestNearestSkipsPlayer(t *testing.T) {
	w, _ := newTestWorld()
	far := w.Spawn(Spec{Kind: input.TargetPilot, X: 750, Y: -600, Radius: 10})

	got, d, ok := w.NearestPilot(0, 0)
	if !ok || got.Ref != far {
		t.Fatalf("NearestPilot() = %+v, %v; want %v", got, ok, far)
	}
	if d != 750*750+600*600 {
		t.Errorf("distance² = %v, want %v", d, 750*750+600*600)
	}

	near := w.Spawn(Spec{Kind: input.TargetPilot, X: -20, Y: 30, Radius: 10})
	if got, _, _ := w.NearestPilot(0, 0); got.Ref != near {
		t.Errorf("NearestPilot() = %v, want %v", got.Ref, near)
	}
}

func TestNearestAcrossCells(t *testing.T) {
	w, _ := newTestWorld()
	// the closest asset sits in a farther ring than a worse candidate
	diag := w.Spawn(Spec{Kind: input.TargetJump, X: 190, Y: 190, Radius: 10})
	straight := w.Spawn(Spec{Kind: input.TargetPlanet, X: 210, Y: 0, Radius: 10})

	got, _, ok := w.NearestAsset(0, 0)
	if !ok || got.Ref != straight {
		t.Errorf("NearestAsset() = %v, want %v (not %v)", got.Ref, straight, diag)
	}

	empty := New(smallConfig(), quietLog())
	if _, _, ok := empty.NearestAsset(0, 0); ok {
		t.Error("empty world found an asset")
	}
}

func TestNearestAngle(t *testing.T) {
	w, _ := newTestWorld()
	east := w.Spawn(Spec{Kind: input.TargetPilot, X: 500, Y: 10})
	north := w.Spawn(Spec{Kind: input.TargetPilot, X: 0, Y: -800})
	planet := w.Spawn(Spec{Kind: input.TargetPlanet, X: -900, Y: 0})

	got, ang, ok := w.NearestPilotAngle(-math.Pi / 2)
	if !ok || got.Ref != north || math.Abs(ang+math.Pi/2) > 1e-9 {
		t.Errorf("NearestPilotAngle(north) = %v at %v", got.Ref, ang)
	}
	if got, _, _ := w.NearestPilotAngle(0.1); got.Ref != east {
		t.Errorf("NearestPilotAngle(east) = %v, want %v", got.Ref, east)
	}
	got, ang, _ = w.NearestAssetAngle(3)
	if got.Ref != planet || math.Abs(ang-math.Pi) > 1e-9 {
		t.Errorf("NearestAssetAngle() = %v at %v", got.Ref, ang)
	}
}

func TestStepRefilesMovingBodies(t *testing.T) {
	w, player := newTestWorld()
	b, _ := w.Body(player)
	b.VX = 250
	w.SetBody(player, b)

	w.Step(2)
	x, y, ok := w.PlayerPosition()
	if !ok || x != 500 || y != 0 {
		t.Fatalf("PlayerPosition() = %v, %v, %v", x, y, ok)
	}
	if got := w.InRadius(500, 0, 1); len(got) != 1 || got[0].Ref != player {
		t.Errorf("InRadius() = %+v, want the player", got)
	}
	if got := w.InRadius(0, 0, 50); len(got) != 0 {
		t.Errorf("old position still holds %+v", got)
	}
}

func TestTargetsOrdered(t *testing.T) {
	w, _ := newTestWorld()
	a := w.Spawn(Spec{Kind: input.TargetPilot, X: 900})
	b := w.Spawn(Spec{Kind: input.TargetPilot, X: -900, Traits: Traits{Hostile: true}})
	w.Spawn(Spec{Kind: input.TargetPlanet})

	got := w.Targets(input.TargetPilot)
	if len(got) != 2 || got[0].Ref != a || got[1].Ref != b {
		t.Errorf("Targets() = %+v", got)
	}
	if !w.Hostile(b) || w.Hostile(a) {
		t.Error("hostile flags wrong")
	}
}

func TestImplementsWorld(t *testing.T) {
	var _ input.World = (*World)(nil)
}
