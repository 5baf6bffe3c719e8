// Package space holds the entities a ship can click on or target: pilots,
// planets, jump points and asteroids, filed in a spatial grid.
package space

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"skyhaul/input"
)

// Spec describes an entity to spawn.
type Spec struct {
	Kind   input.TargetKind
	Name   string
	X, Y   float64
	Radius float64
	// Field is the asteroid field an asteroid belongs to.
	Field  uint64
	Traits Traits
}

// World is a donburi world of space entities addressed by input.Ref.
// It implements input.World.
type World struct {
	ecs  donburi.World
	grid *Grid
	log  *slog.Logger

	ids    map[input.Ref]donburi.Entity
	nextID uint64

	player    input.Ref
	hasPlayer bool
	selected  map[input.TargetKind]uint64

	onRemove []func(input.Ref)
}

// New returns an empty world.
func New(cfg Config, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	return &World{
		ecs:      donburi.NewWorld(),
		grid:     NewGrid(cfg),
		log:      log.With("component", "space"),
		ids:      make(map[input.Ref]donburi.Entity),
		selected: make(map[input.TargetKind]uint64),
	}
}

// Spawn creates an entity and returns its handle. IDs are never reused.
func (w *World) Spawn(s Spec) input.Ref {
	tag := tagFor(s.Kind)
	if tag == nil {
		w.log.Warn("spawn with invalid kind", "kind", s.Kind)
		return input.Ref{}
	}
	w.nextID++
	ref := input.Ref{Kind: s.Kind, ID: w.nextID}

	e := w.ecs.Create(BodyComponent, IdentityComponent, TraitsComponent, tag)
	entry := w.ecs.Entry(e)
	cx, cy := w.grid.Insert(e, s.X, s.Y)
	BodyComponent.SetValue(entry, Body{X: s.X, Y: s.Y, Radius: s.Radius, CellX: cx, CellY: cy})
	IdentityComponent.SetValue(entry, Identity{Ref: ref, Name: s.Name, Field: s.Field})
	TraitsComponent.SetValue(entry, s.Traits)

	w.ids[ref] = e
	w.log.Debug("spawned", "kind", s.Kind, "id", ref.ID, "name", s.Name)
	return ref
}

// OnRemove registers fn to run whenever an entity leaves the world.
func (w *World) OnRemove(fn func(input.Ref)) {
	w.onRemove = append(w.onRemove, fn)
}

// Remove deletes ref. Selections and the player pointing at it are cleared.
func (w *World) Remove(ref input.Ref) bool {
	entry := w.entry(ref)
	if entry == nil {
		return false
	}
	b := BodyComponent.Get(entry)
	w.grid.Remove(entry.Entity(), b.CellX, b.CellY)
	w.ecs.Remove(entry.Entity())
	delete(w.ids, ref)

	if w.selected[ref.Kind] == ref.ID {
		delete(w.selected, ref.Kind)
	}
	if w.hasPlayer && w.player == ref {
		w.hasPlayer = false
	}
	for _, fn := range w.onRemove {
		fn(ref)
	}
	return true
}

func (w *World) entry(ref input.Ref) *donburi.Entry {
	e, ok := w.ids[ref]
	if !ok || !w.ecs.Valid(e) {
		return nil
	}
	return w.ecs.Entry(e)
}

// Len returns the number of entities.
func (w *World) Len() int { return len(w.ids) }

// SetPlayer marks the pilot ref as the player's ship.
func (w *World) SetPlayer(ref input.Ref) {
	w.player, w.hasPlayer = ref, ref.Kind == input.TargetPilot && w.Exists(ref)
}

// Player returns the player's ship.
func (w *World) Player() (input.Ref, bool) {
	return w.player, w.hasPlayer
}

// Body returns a copy of the physical state of ref.
func (w *World) Body(ref input.Ref) (Body, bool) {
	entry := w.entry(ref)
	if entry == nil {
		return Body{}, false
	}
	return *BodyComponent.Get(entry), true
}

// SetBody replaces the physical state of ref and refiles it in the grid.
func (w *World) SetBody(ref input.Ref, b Body) {
	entry := w.entry(ref)
	if entry == nil {
		return
	}
	cur := BodyComponent.Get(entry)
	b.CellX, b.CellY = w.grid.Move(entry.Entity(), cur.CellX, cur.CellY, b.X, b.Y)
	*cur = b
}

// Step moves every entity by its velocity.
func (w *World) Step(dt float64) {
	donburi.NewQuery(filter.Contains(BodyComponent)).Each(w.ecs, func(entry *donburi.Entry) {
		b := BodyComponent.Get(entry)
		if b.VX == 0 && b.VY == 0 {
			return
		}
		b.X += b.VX * dt
		b.Y += b.VY * dt
		b.CellX, b.CellY = w.grid.Move(entry.Entity(), b.CellX, b.CellY, b.X, b.Y)
	})
}

// Select makes id the current target of its kind. Zero clears it.
func (w *World) Select(kind input.TargetKind, id uint64) {
	if id == 0 {
		delete(w.selected, kind)
		return
	}
	w.selected[kind] = id
}

// SelectedRef returns the current target of kind.
func (w *World) SelectedRef(kind input.TargetKind) (input.Ref, bool) {
	id, ok := w.selected[kind]
	return input.Ref{Kind: kind, ID: id}, ok
}

// Target returns the click view of ref.
func (w *World) Target(ref input.Ref) (input.Target, bool) {
	entry := w.entry(ref)
	if entry == nil {
		return input.Target{}, false
	}
	return targetOf(entry), true
}

// Name returns the display name of ref.
func (w *World) Name(ref input.Ref) string {
	entry := w.entry(ref)
	if entry == nil {
		return ""
	}
	return IdentityComponent.Get(entry).Name
}

// Targets lists every entity of kind ordered by ID, skipping the player.
func (w *World) Targets(kind input.TargetKind) []input.Target {
	tag := tagFor(kind)
	if tag == nil {
		return nil
	}
	var out []input.Target
	donburi.NewQuery(filter.Contains(tag)).Each(w.ecs, func(entry *donburi.Entry) {
		t := targetOf(entry)
		if w.isPlayer(t.Ref) {
			return
		}
		out = append(out, t)
	})
	slices.SortFunc(out, func(a, b input.Target) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// InRadius returns every entity whose centre lies within r of (x, y).
func (w *World) InRadius(x, y, r float64) []input.Target {
	var out []input.Target
	w.grid.Near(x, y, r, func(e donburi.Entity) {
		entry := w.ecs.Entry(e)
		b := BodyComponent.Get(entry)
		if dist2(x, y, b.X, b.Y) <= r*r {
			out = append(out, targetOf(entry))
		}
	})
	return out
}

func (w *World) isPlayer(ref input.Ref) bool {
	return w.hasPlayer && ref == w.player
}

func targetOf(entry *donburi.Entry) input.Target {
	b := BodyComponent.Get(entry)
	id := IdentityComponent.Get(entry)
	tr := TraitsComponent.Get(entry)
	return input.Target{
		Ref:       id.Ref,
		Field:     id.Field,
		X:         b.X,
		Y:         b.Y,
		Radius:    b.Radius,
		Known:     tr.Known,
		Usable:    tr.Usable,
		Boardable: tr.Boardable,
		Landable:  tr.Landable,
	}
}

// Hostile reports whether ref is flagged hostile.
func (w *World) Hostile(ref input.Ref) bool {
	entry := w.entry(ref)
	if entry == nil {
		return false
	}
	return TraitsComponent.Get(entry).Hostile
}

// PlayerPosition implements input.World.
func (w *World) PlayerPosition() (float64, float64, bool) {
	if !w.hasPlayer {
		return 0, 0, false
	}
	b, ok := w.Body(w.player)
	return b.X, b.Y, ok
}

// NearestPilot implements input.World. The player's own ship is skipped.
func (w *World) NearestPilot(x, y float64) (input.Target, float64, bool) {
	return w.nearest(x, y, func(entry *donburi.Entry) bool {
		return entry.HasComponent(PilotTag) && !w.isPlayer(IdentityComponent.Get(entry).Ref)
	})
}

// NearestAsset implements input.World. Assets are planets, jump points and
// asteroids.
func (w *World) NearestAsset(x, y float64) (input.Target, float64, bool) {
	return w.nearest(x, y, func(entry *donburi.Entry) bool {
		return !entry.HasComponent(PilotTag)
	})
}

// nearest searches outward ring by ring and stops once no unvisited cell
// can hold anything closer.
func (w *World) nearest(x, y float64, match func(*donburi.Entry) bool) (input.Target, float64, bool) {
	var (
		best  *donburi.Entry
		bestD = math.Inf(1)
	)
	cx, cy := w.grid.CellOf(x, y)
	for r := 0; ; r++ {
		inside := w.grid.Ring(cx, cy, r, func(e donburi.Entity) {
			entry := w.ecs.Entry(e)
			if !match(entry) {
				return
			}
			b := BodyComponent.Get(entry)
			if d := dist2(x, y, b.X, b.Y); d < bestD {
				best, bestD = entry, d
			}
		})
		if !inside {
			break
		}
		reach := float64(r) * w.grid.cfg.CellSize
		if best != nil && bestD <= reach*reach {
			break
		}
	}
	if best == nil {
		return input.Target{}, 0, false
	}
	return targetOf(best), bestD, true
}

// NearestPilotAngle implements input.World.
func (w *World) NearestPilotAngle(bearing float64) (input.Target, float64, bool) {
	return w.nearestAngle(bearing, filter.Contains(PilotTag))
}

// NearestAssetAngle implements input.World.
func (w *World) NearestAssetAngle(bearing float64) (input.Target, float64, bool) {
	return w.nearestAngle(bearing, filter.Not(filter.Contains(PilotTag)))
}

func (w *World) nearestAngle(bearing float64, f filter.LayoutFilter) (input.Target, float64, bool) {
	px, py, ok := w.PlayerPosition()
	if !ok {
		return input.Target{}, 0, false
	}
	var (
		best    *donburi.Entry
		bestDev = math.Inf(1)
		bestAng float64
	)
	donburi.NewQuery(filter.And(filter.Contains(BodyComponent), f)).Each(w.ecs, func(entry *donburi.Entry) {
		if w.isPlayer(IdentityComponent.Get(entry).Ref) {
			return
		}
		b := BodyComponent.Get(entry)
		ang := math.Atan2(b.Y-py, b.X-px)
		if dev := math.Abs(angleDiff(bearing, ang)); dev < bestDev {
			best, bestDev, bestAng = entry, dev, ang
		}
	})
	if best == nil {
		return input.Target{}, 0, false
	}
	return targetOf(best), bestAng, true
}

// Selected implements input.World.
func (w *World) Selected(kind input.TargetKind) (input.Target, bool) {
	ref, ok := w.SelectedRef(kind)
	if !ok {
		return input.Target{}, false
	}
	return w.Target(ref)
}

// Exists implements input.World.
func (w *World) Exists(ref input.Ref) bool {
	return w.entry(ref) != nil
}

func dist2(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return dx*dx + dy*dy
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	switch {
	case d > math.Pi:
		d -= 2 * math.Pi
	case d < -math.Pi:
		d += 2 * math.Pi
	}
	return d
}
