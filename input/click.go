package input

import (
	"log/slog"
	"math"
	"time"
)

const (
	// BorderBand is the width in pixels of the screen edge where clicks
	// select by bearing instead of position.
	BorderBand = 15
	// AutonavMinDistance is the smallest distance from the ship at which an
	// unresolved right click flies to the clicked position.
	AutonavMinDistance = 1500.0

	borderMaxDeviation = math.Pi / 64
	pilotSizeApprox    = 0.8
	minPilotRadiusPx   = 10.0
	minAssetRadiusPx   = 15.0
)

// ClickResolver turns mouse clicks into selections, primary actions and
// autonav orders.
type ClickResolver struct {
	world World
	cmds  Commands
	dbl   *DoubleClick
	now   func() time.Time
	log   *slog.Logger
}

// NewClickResolver builds a resolver over the collaborators in deps. dbl
// holds the double-click state and may be shared with the caller.
func NewClickResolver(deps Deps, dbl *DoubleClick) *ClickResolver {
	deps = deps.withDefaults()
	return &ClickResolver{
		world: deps.World,
		cmds:  deps.Commands,
		dbl:   dbl,
		now:   deps.Now,
		log:   deps.Log,
	}
}

// ClickAt resolves a click at world position (x, y). It reports whether the
// click was used.
//
// zoom is the magnification in screen pixels per world unit, so 2 means
// zoomed in. The pixel acceptance radii are converted to world units with
// res = 1/zoom. Callers holding a world-units-per-pixel resolution (a radar
// or map scale) must pass its reciprocal. Zero or less counts as 1.
func (r *ClickResolver) ClickAt(x, y float64, button MouseButton, zoom float64) bool {
	if zoom <= 0 {
		zoom = 1
	}
	res := 1 / zoom
	minpr := minPilotRadiusPx * res
	minr := minAssetRadiusPx * res

	// The right button never picks a new pilot so ships passing under the
	// cursor cannot hijack autonav.
	var (
		pilot     Target
		dp        float64
		havePilot bool
	)
	if button == MouseRight {
		pilot, havePilot = r.world.Selected(TargetPilot)
		if havePilot {
			dp = dist2(x, y, pilot.X, pilot.Y)
		}
	} else {
		pilot, dp, havePilot = r.world.NearestPilot(x, y)
	}

	asset, d, haveAsset := r.world.NearestAsset(x, y)

	rp := math.Max(1.5*pilotSizeApprox*pilot.Radius*res, minpr)
	var ra float64
	if haveAsset {
		ra = assetRadius(asset, res, minr)
	}

	if havePilot && (dp > rp*rp || (haveAsset && d < ra*ra && dp > d)) {
		havePilot = false
	}
	if haveAsset && d > ra*ra {
		haveAsset = false
	}

	switch button {
	case MouseLeft:
		switch {
		case havePilot:
			return r.clickedPilot(pilot, false)
		case haveAsset:
			return r.clickedAsset(asset, false)
		}
	case MouseRight:
		if havePilot && r.clickedPilot(pilot, true) {
			return true
		}
		if haveAsset && asset.Kind != TargetAsteroid && r.clickedAsset(asset, true) {
			return true
		}
		px, py, ok := r.world.PlayerPosition()
		if ok && dist2(x, y, px, py) >= AutonavMinDistance*AutonavMinDistance {
			r.log.Debug("autonav to position", "x", x, "y", y)
			r.cmds.AutonavToPosition(x, y)
			return true
		}
	}
	return false
}

// ClickBearing resolves a click in the screen border by comparing the
// bearing from the ship to (x, y) against the bearings of pilots and assets.
// It reports whether the click was used; unused clicks fall through to
// ClickAt.
func (r *ClickResolver) ClickBearing(x, y float64, button MouseButton) bool {
	px, py, ok := r.world.PlayerPosition()
	if !ok {
		return false
	}
	bearing := math.Atan2(y-py, x-px)
	autonav := button == MouseRight

	pilot, angp, havePilot := r.world.NearestPilotAngle(bearing)
	asset, anga, haveAsset := r.world.NearestAssetAngle(bearing)
	devp := math.Abs(angleDiff(bearing, angp))
	deva := math.Abs(angleDiff(bearing, anga))

	if havePilot && (devp > borderMaxDeviation || (haveAsset && deva < devp)) {
		havePilot = false
	}
	if haveAsset && deva > borderMaxDeviation {
		haveAsset = false
	}
	if havePilot && autonav {
		sel, ok := r.world.Selected(TargetPilot)
		havePilot = ok && sel.ID == pilot.ID
	}

	switch {
	case havePilot:
		return r.clickedPilot(pilot, autonav)
	case haveAsset:
		return r.clickedAsset(asset, autonav)
	}
	return false
}

func (r *ClickResolver) clickedAsset(t Target, autonav bool) bool {
	switch t.Kind {
	case TargetPlanet:
		return r.clickedPlanet(t, autonav)
	case TargetJump:
		return r.clickedJump(t, autonav)
	case TargetAsteroid:
		return r.clickedAsteroid(t)
	}
	return false
}

func (r *ClickResolver) isSelected(t Target) bool {
	sel, ok := r.world.Selected(t.Kind)
	return ok && sel.ID == t.ID
}

func (r *ClickResolver) clickedPilot(t Target, autonav bool) bool {
	if autonav {
		r.cmds.SelectPilot(t.ID)
		r.cmds.AutonavToPilot(t.ID)
		return true
	}

	now := r.now()
	if r.isSelected(t) && r.dbl.IsDouble(t.Ref, now, r.world.Exists) {
		if t.Boardable {
			r.cmds.Board()
		} else {
			r.cmds.Hail()
		}
	} else {
		r.cmds.SelectPilot(t.ID)
	}
	r.dbl.Clicked(t.Ref, now)
	return true
}

func (r *ClickResolver) clickedPlanet(t Target, autonav bool) bool {
	if !t.Known {
		return false
	}
	if autonav {
		r.cmds.SelectPlanet(t.ID)
		r.cmds.AutonavToPlanet(t.ID)
		return true
	}

	now := r.now()
	if r.isSelected(t) && r.dbl.IsDouble(t.Ref, now, r.world.Exists) {
		if t.Landable {
			r.cmds.Land()
		} else {
			r.cmds.HailPlanet()
		}
	} else {
		r.cmds.SelectPlanet(t.ID)
	}
	r.dbl.Clicked(t.Ref, now)
	return true
}

func (r *ClickResolver) clickedJump(t Target, autonav bool) bool {
	if !t.Usable {
		return false
	}

	selected := r.isSelected(t)
	if !selected {
		r.cmds.SelectMapJump(t.ID)
	}
	if autonav {
		r.cmds.SelectJump(t.ID)
		r.cmds.AutonavStart()
		return true
	}

	now := r.now()
	if selected && r.dbl.IsDouble(t.Ref, now, r.world.Exists) {
		r.cmds.Jump()
	} else {
		r.cmds.SelectJump(t.ID)
	}
	r.dbl.Clicked(t.Ref, now)
	return true
}

func (r *ClickResolver) clickedAsteroid(t Target) bool {
	r.cmds.SelectAsteroid(t.Field, t.ID)
	r.dbl.Clicked(t.Ref, r.now())
	return true
}

// assetRadius is the acceptance radius of an asset in world units.
func assetRadius(t Target, res, min float64) float64 {
	if t.Kind == TargetAsteroid {
		return math.Max(2*t.Radius*res, min)
	}
	return math.Max(1.5*t.Radius*res, min)
}

func dist2(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return dx*dx + dy*dy
}

// angleDiff returns b-a wrapped to [-pi, pi].
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
