package space

import (
	"github.com/yohamta/donburi"

	"skyhaul/input"
)

// Body is the physical state of an entity.
type Body struct {
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Radius   float64

	// cell the entity is filed under
	CellX, CellY int
}

// Identity ties a donburi entity to its stable handle.
type Identity struct {
	Ref   input.Ref
	Name  string
	Field uint64
}

// Traits are the flags click and target resolution look at.
type Traits struct {
	Known     bool
	Usable    bool
	Boardable bool
	Landable  bool
	Hostile   bool
}

var (
	BodyComponent     = donburi.NewComponentType[Body]()
	IdentityComponent = donburi.NewComponentType[Identity]()
	TraitsComponent   = donburi.NewComponentType[Traits]()

	PilotTag    = donburi.NewTag().SetName("Pilot")
	PlanetTag   = donburi.NewTag().SetName("Planet")
	JumpTag     = donburi.NewTag().SetName("Jump")
	AsteroidTag = donburi.NewTag().SetName("Asteroid")
)

func tagFor(kind input.TargetKind) donburi.IComponentType {
	switch kind {
	case input.TargetPilot:
		return PilotTag
	case input.TargetPlanet:
		return PlanetTag
	case input.TargetJump:
		return JumpTag
	case input.TargetAsteroid:
		return AsteroidTag
	}
	return nil
}
