package game

import (
	"fmt"
	"math"
	"math/rand/v2"

	"skyhaul/input"
	"skyhaul/space"
)

type body struct {
	name   string
	x, y   float64
	radius float64
	traits space.Traits
}

var planets = []body{
	{"Haven", 0, -1400, 140, space.Traits{Known: true, Usable: true, Landable: true}},
	{"Cinder", 3200, 1800, 220, space.Traits{Known: true, Usable: true}},
	{"Tallow", -2600, -2200, 90, space.Traits{Known: true, Usable: true, Landable: true}},
	{"Veil", -4400, 2600, 160, space.Traits{}},
}

var jumps = []body{
	{"Kestrel Gate", 6500, 0, 70, space.Traits{Known: true, Usable: true}},
	{"Orrin Gate", -6000, -3500, 70, space.Traits{Known: true, Usable: true}},
	{"Drift Gate", 500, 7000, 70, space.Traits{}},
}

// asteroid field layout
const (
	fieldID        = 1
	fieldX, fieldY = -1800.0, 1600.0
	fieldRadius    = 900.0
	fieldSize      = 24
	npcCount       = 10
)

// spawnSystem fills w with the system's planets, jump points, asteroids and
// NPC pilots and returns the NPCs.
func spawnSystem(w *space.World, rng *rand.Rand) []*NPC {
	for _, b := range planets {
		w.Spawn(space.Spec{Kind: input.TargetPlanet, Name: b.name, X: b.x, Y: b.y, Radius: b.radius, Traits: b.traits})
	}
	for _, b := range jumps {
		w.Spawn(space.Spec{Kind: input.TargetJump, Name: b.name, X: b.x, Y: b.y, Radius: b.radius, Traits: b.traits})
	}

	for i := range fieldSize {
		angle := rng.Float64() * 2 * math.Pi
		dist := math.Sqrt(rng.Float64()) * fieldRadius
		w.Spawn(space.Spec{
			Kind:   input.TargetAsteroid,
			Name:   fmt.Sprintf("Asteroid %d", i+1),
			X:      fieldX + math.Cos(angle)*dist,
			Y:      fieldY + math.Sin(angle)*dist,
			Radius: 8 + rng.Float64()*16,
			Field:  fieldID,
			Traits: space.Traits{Known: true},
		})
	}

	npcs := make([]*NPC, 0, npcCount)
	for i := range npcCount {
		npcs = append(npcs, spawnNPC(w, rng, RandomRole(rng), i+1))
	}
	return npcs
}

// spawnNPC places a pilot of role at a random spot of the inner system.
func spawnNPC(w *space.World, rng *rand.Rand, role Role, n int) *NPC {
	rc := GetRoleConfig(role)
	class, ok := ShipClassByName(rc.Class)
	if !ok {
		class = shipClasses[0]
	}

	// Spawn around the system centre at a distance
	dist := 1500 + rng.Float64()*3000
	angle := rng.Float64() * 2 * math.Pi
	x, y := math.Cos(angle)*dist, math.Sin(angle)*dist

	ref := w.Spawn(space.Spec{
		Kind:   input.TargetPilot,
		Name:   fmt.Sprintf("%s %d", rc.Name, n),
		X:      x,
		Y:      y,
		Radius: class.Radius,
		Traits: space.Traits{Known: true, Hostile: rc.Hostile, Boardable: rc.Boardable},
	})
	return &NPC{
		Ref:         ref,
		Behavior:    rc.Behavior,
		Class:       class,
		Attr:        NewLoadout(class).Attributes(),
		HomeX:       x,
		HomeY:       y,
		PatternTime: rng.Float64() * 10,
	}
}
