package input

// TargetKind is the family of a clickable entity.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetPilot
	TargetPlanet
	TargetJump
	TargetAsteroid
)

func (k TargetKind) String() string {
	switch k {
	case TargetPilot:
		return "pilot"
	case TargetPlanet:
		return "planet"
	case TargetJump:
		return "jump"
	case TargetAsteroid:
		return "asteroid"
	}
	return "none"
}

// Ref is a stable, non-owning handle to a world entity.
type Ref struct {
	Kind TargetKind
	ID   uint64
}

// Target is a world entity as seen by the click resolver.
type Target struct {
	Ref
	// Field is the asteroid field of an asteroid.
	Field  uint64
	X, Y   float64
	Radius float64

	// Known is false for planets the player has not discovered.
	Known bool
	// Usable is false for jump points that cannot be taken.
	Usable bool
	// Boardable is set for disabled or otherwise boardable pilots.
	Boardable bool
	// Landable is set for planets that grant landing.
	Landable bool
}

// World answers the spatial queries of the click resolver. Distances are
// squared world units; bearings are radians measured from the player ship
// to the entity.
type World interface {
	PlayerPosition() (x, y float64, ok bool)

	// NearestPilot returns the pilot closest to (x, y), excluding the player.
	NearestPilot(x, y float64) (t Target, dist2 float64, ok bool)
	// NearestAsset returns the closest planet, jump point or asteroid.
	NearestAsset(x, y float64) (t Target, dist2 float64, ok bool)
	// NearestPilotAngle returns the pilot whose bearing is closest to bearing.
	NearestPilotAngle(bearing float64) (t Target, angle float64, ok bool)
	// NearestAssetAngle returns the asset whose bearing is closest to bearing.
	NearestAssetAngle(bearing float64) (t Target, angle float64, ok bool)

	// Selected returns the player's current target of the given kind.
	Selected(kind TargetKind) (Target, bool)

	Exists(ref Ref) bool
}
