package game

import (
	"log/slog"
	"math"

	"skyhaul/input"
	"skyhaul/space"
)

// Player limits.
const (
	// landSpeed is the fastest a ship may move and still land or jump
	landSpeed = 50.0

	// boardRange is the gap between hulls within which boarding works
	boardRange = 30.0

	// jumpRange is how far outside a jump point's radius a jump can start
	jumpRange = 500.0

	// arriveDistance is where autonav to a position hands back control
	arriveDistance = 50.0

	// mouseFlyDeadZone is the cursor distance in pixels below which mouse
	// flight stops thrusting
	mouseFlyDeadZone = 40.0
)

var timeSpeeds = []float64{1, 2, 4}

type navKind int

const (
	navOff navKind = iota
	navJump
	navPilot
	navPlanet
	navPosition
)

type navGoal struct {
	kind navKind
	ref  input.Ref
	x, y float64
}

// Player is the player's ship and session. It implements input.Commands,
// input.PlayerState and input.UIState.
type Player struct {
	world *space.World
	cam   *Camera
	log   *slog.Logger

	Ref     input.Ref
	Loadout *Loadout
	Attr    Attributes
	Ship    Ship

	throttle            float64
	turnLeft, turnRight float64
	face                bool
	mouseFly            bool
	mouseX, mouseY      float64

	primary, secondary bool
	weaponSet          int

	escorts     []input.Ref
	escortOrder input.EscortOrder

	nav navGoal

	dead       bool
	landed     bool
	landing    float64 // seconds left until landed
	hyperspace float64 // seconds left until the jump completes
	jumping    bool
	jumpFrom   input.Ref

	paused  bool
	speed   int
	mapOpen bool
	menu    bool
	info    bool
	console bool
	overlay bool

	radarZoom int
	logOffset int

	screenshot bool
	fullscreen bool
}

// NewPlayer spawns the player's ship at (x, y).
func NewPlayer(w *space.World, cam *Camera, loadout *Loadout, x, y float64, log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	p := &Player{
		world:   w,
		cam:     cam,
		log:     log.With("component", "player"),
		Loadout: loadout,
	}
	p.Attr = loadout.Attributes()
	p.Ref = w.Spawn(space.Spec{
		Kind:   input.TargetPilot,
		Name:   "Player",
		X:      x,
		Y:      y,
		Radius: loadout.Class.Radius,
		Traits: space.Traits{Known: true},
	})
	w.SetPlayer(p.Ref)
	return p
}

// Refit recomputes the attributes after the loadout changed.
func (p *Player) Refit() {
	p.Attr = p.Loadout.Attributes()
}

// AddEscort puts ref under the player's command.
func (p *Player) AddEscort(ref input.Ref) {
	p.escorts = append(p.escorts, ref)
}

// Kill marks the ship destroyed.
func (p *Player) Kill() {
	p.dead = true
	p.nav = navGoal{}
}

// Present implements input.PlayerState.
func (p *Player) Present() bool { return p.world.Exists(p.Ref) }

// Dead implements input.PlayerState.
func (p *Player) Dead() bool { return p.dead }

// Hyperspacing implements input.PlayerState.
func (p *Player) Hyperspacing() bool { return p.jumping }

// Landed implements input.PlayerState. A ship in its landing approach
// counts as landed.
func (p *Player) Landed() bool { return p.landed || p.landing > 0 }

// BlockingUIOpen implements input.UIState.
func (p *Player) BlockingUIOpen() bool { return p.menu || p.info || p.console }

// MapOpen implements input.UIState.
func (p *Player) MapOpen() bool { return p.mapOpen }

// Paused reports whether the game clock is stopped.
func (p *Player) Paused() bool { return p.paused }

// TimeScale is the factor game time runs at relative to real time.
func (p *Player) TimeScale() float64 {
	if p.paused {
		return 0
	}
	return timeSpeeds[p.speed] * p.Attr.TimeSpeedup
}

// Overlaid reports whether the overlay map is shown.
func (p *Player) Overlaid() bool { return p.overlay }

// TakeScreenshot reports and clears a pending screenshot request.
func (p *Player) TakeScreenshot() bool {
	v := p.screenshot
	p.screenshot = false
	return v
}

// TakeFullscreenToggle reports and clears a pending fullscreen toggle.
func (p *Player) TakeFullscreenToggle() bool {
	v := p.fullscreen
	p.fullscreen = false
	return v
}

func (p *Player) body() (space.Body, bool) {
	return p.world.Body(p.Ref)
}

// Update flies the ship for dt seconds of game time.
func (p *Player) Update(dt float64) {
	if p.dead || !p.Present() {
		return
	}
	if p.jumping {
		p.hyperspace -= dt
		if p.hyperspace <= 0 {
			p.arrive()
		}
		return
	}
	if p.landing > 0 {
		p.landing -= dt
		if p.landing <= 0 {
			p.landing = 0
			p.landed = true
			p.log.Info("landed", "planet", p.world.Name(p.selected(input.TargetPlanet)))
		}
		return
	}
	if p.landed {
		return
	}

	b, _ := p.body()
	p.Ship.Controls = p.controls(b)
	p.Ship.Fly(&b, p.Attr, dt)
	p.world.SetBody(p.Ref, b)

	if p.Ship.Controls.Brake && math.Hypot(b.VX, b.VY) < 1 {
		p.Ship.Controls.Brake = false
	}
}

func (p *Player) controls(b space.Body) Controls {
	c := Controls{
		Throttle:  p.throttle,
		Afterburn: p.Ship.Controls.Afterburn,
		Turn:      p.turnRight - p.turnLeft,
		Reverse:   p.Ship.Controls.Reverse,
		Brake:     p.Ship.Controls.Brake,
	}

	switch {
	case p.nav.kind != navOff:
		p.autonav(b, &c)
	case p.mouseFly:
		wx, wy := p.cam.ScreenToWorld(p.mouseX, p.mouseY)
		c.Turn = steer(b.Rotation, math.Atan2(wy-b.Y, wx-b.X))
		if d := math.Hypot(p.mouseX-p.cam.Width/2, p.mouseY-p.cam.Height/2); d > mouseFlyDeadZone && c.Throttle == 0 {
			c.Throttle = min(1, d/(p.cam.Height/2))
		}
	case p.face:
		if t, ok := p.faceTarget(); ok {
			c.Turn = steer(b.Rotation, math.Atan2(t.Y-b.Y, t.X-b.X))
		}
	}
	return c
}

func (p *Player) faceTarget() (input.Target, bool) {
	if t, ok := p.world.Selected(input.TargetPilot); ok {
		return t, true
	}
	if t, ok := p.world.Selected(input.TargetPlanet); ok {
		return t, true
	}
	return p.world.Selected(input.TargetJump)
}

func (p *Player) autonav(b space.Body, c *Controls) {
	gx, gy, stop := p.nav.x, p.nav.y, arriveDistance
	if p.nav.kind != navPosition {
		t, ok := p.world.Target(p.nav.ref)
		if !ok {
			p.log.Info("autonav target lost")
			p.nav = navGoal{}
			return
		}
		gx, gy, stop = t.X, t.Y, t.Radius+arriveDistance
	}

	dist := math.Hypot(gx-b.X, gy-b.Y)
	if dist <= stop {
		c.Throttle = 0
		c.Brake = true
		if math.Hypot(b.VX, b.VY) <= landSpeed {
			p.arrived()
		}
		return
	}

	heading := math.Atan2(gy-b.Y, gx-b.X)
	c.Turn = steer(b.Rotation, heading)
	c.Throttle = 0
	if math.Abs(angleTo(b.Rotation, heading)) < math.Pi/8 {
		c.Throttle = 1
	}
	// Start braking once the remaining distance roughly matches the
	// stopping distance
	if v := math.Hypot(b.VX, b.VY); v*v/(2*p.Attr.Thrust) > dist-stop {
		c.Throttle = 0
		c.Brake = true
	}
}

func (p *Player) arrived() {
	kind := p.nav.kind
	p.nav = navGoal{}
	switch kind {
	case navJump:
		p.Jump()
	case navPlanet:
		p.Land()
	default:
		p.log.Info("autonav arrived")
	}
}

func (p *Player) selected(kind input.TargetKind) input.Ref {
	ref, _ := p.world.SelectedRef(kind)
	return ref
}

// RestoreControl implements input.FlightCommands.
func (p *Player) RestoreControl(c input.Control) {
	switch c {
	case input.ControlAll, input.ControlMovement:
		if p.nav.kind != navOff {
			p.log.Info("autonav aborted")
		}
		p.nav = navGoal{}
		p.Ship.Controls.Brake = false
	case input.ControlBraking:
		p.Ship.Controls.Brake = false
	}
}

// Accel implements input.FlightCommands.
func (p *Player) Accel(throttle float64) { p.throttle = clamp(throttle, 0, 1) }

// AccelOver implements input.FlightCommands.
func (p *Player) AccelOver() { p.throttle = 0 }

// Afterburn implements input.FlightCommands.
func (p *Player) Afterburn() {
	p.Ship.Controls.Afterburn = true
	p.throttle = 1
}

// AfterburnOver implements input.FlightCommands.
func (p *Player) AfterburnOver() { p.Ship.Controls.Afterburn = false }

// SetTurn implements input.FlightCommands.
func (p *Player) SetTurn(dir input.Turn, rate float64) {
	rate = clamp(rate, 0, 1)
	if dir == input.TurnLeft {
		p.turnLeft = rate
	} else {
		p.turnRight = rate
	}
}

// SetReverse implements input.FlightCommands.
func (p *Player) SetReverse(on bool) { p.Ship.Controls.Reverse = on }

// SetFace implements input.FlightCommands.
func (p *Player) SetFace(on bool) { p.face = on }

// Brake implements input.FlightCommands.
func (p *Player) Brake() {
	p.nav = navGoal{}
	p.throttle = 0
	p.Ship.Controls.Brake = true
}

// ToggleMouseFly implements input.FlightCommands.
func (p *Player) ToggleMouseFly() {
	p.mouseFly = !p.mouseFly
	p.log.Info("mouse flight", "enabled", p.mouseFly)
}

// MouseMove implements input.FlightCommands.
func (p *Player) MouseMove(x, y float64) { p.mouseX, p.mouseY = x, y }

func (p *Player) cycle(kind input.TargetKind, keep func(input.Target) bool, backwards bool) {
	var list []input.Target
	for _, t := range p.world.Targets(kind) {
		if keep == nil || keep(t) {
			list = append(list, t)
		}
	}
	if len(list) == 0 {
		p.world.Select(kind, 0)
		return
	}

	cur := p.selected(kind).ID
	pick := list[0]
	if backwards {
		pick = list[len(list)-1]
		for i := len(list) - 1; i >= 0; i-- {
			if list[i].ID < cur {
				pick = list[i]
				break
			}
		}
	} else {
		for _, t := range list {
			if t.ID > cur {
				pick = t
				break
			}
		}
	}
	p.world.Select(kind, pick.ID)
}

func (p *Player) hostile(t input.Target) bool { return p.world.Hostile(t.Ref) }

// TargetNext implements input.TargetCommands.
func (p *Player) TargetNext(hostile bool) {
	if hostile {
		p.cycle(input.TargetPilot, p.hostile, false)
	} else {
		p.cycle(input.TargetPilot, nil, false)
	}
}

// TargetPrev implements input.TargetCommands.
func (p *Player) TargetPrev(hostile bool) {
	if hostile {
		p.cycle(input.TargetPilot, p.hostile, true)
	} else {
		p.cycle(input.TargetPilot, nil, true)
	}
}

// TargetNearest implements input.TargetCommands.
func (p *Player) TargetNearest() {
	b, ok := p.body()
	if !ok {
		return
	}
	if t, _, ok := p.world.NearestPilot(b.X, b.Y); ok {
		p.world.Select(input.TargetPilot, t.ID)
	}
}

// TargetHostile implements input.TargetCommands.
func (p *Player) TargetHostile() {
	b, ok := p.body()
	if !ok {
		return
	}
	var (
		best  input.Target
		bestD = math.Inf(1)
	)
	for _, t := range p.world.Targets(input.TargetPilot) {
		if !p.hostile(t) {
			continue
		}
		if d := math.Hypot(t.X-b.X, t.Y-b.Y); d < bestD {
			best, bestD = t, d
		}
	}
	if !math.IsInf(bestD, 1) {
		p.world.Select(input.TargetPilot, best.ID)
	}
}

// TargetClear implements input.TargetCommands.
func (p *Player) TargetClear() {
	p.world.Select(input.TargetPilot, 0)
	p.world.Select(input.TargetAsteroid, 0)
}

// TargetEscort implements input.TargetCommands.
func (p *Player) TargetEscort(prev bool) {
	var alive []input.Ref
	for _, e := range p.escorts {
		if p.world.Exists(e) {
			alive = append(alive, e)
		}
	}
	p.escorts = alive
	if len(alive) == 0 {
		return
	}

	cur := p.selected(input.TargetPilot)
	i := -1
	for j, e := range alive {
		if e == cur {
			i = j
		}
	}
	switch {
	case i < 0 && prev:
		i = len(alive) - 1
	case i < 0:
		i = 0
	case prev:
		i = (i - 1 + len(alive)) % len(alive)
	default:
		i = (i + 1) % len(alive)
	}
	p.world.Select(input.TargetPilot, alive[i].ID)
}

func known(t input.Target) bool { return t.Known }

// CyclePlanetTarget implements input.TargetCommands.
func (p *Player) CyclePlanetTarget() { p.cycle(input.TargetPlanet, known, false) }

// CycleHyperspaceTarget implements input.TargetCommands.
func (p *Player) CycleHyperspaceTarget() { p.cycle(input.TargetJump, known, false) }

// SelectPilot implements input.TargetCommands.
func (p *Player) SelectPilot(id uint64) { p.world.Select(input.TargetPilot, id) }

// SelectPlanet implements input.TargetCommands.
func (p *Player) SelectPlanet(id uint64) { p.world.Select(input.TargetPlanet, id) }

// SelectJump implements input.TargetCommands.
func (p *Player) SelectJump(id uint64) { p.world.Select(input.TargetJump, id) }

// SelectAsteroid implements input.TargetCommands.
func (p *Player) SelectAsteroid(field, id uint64) {
	p.world.Select(input.TargetAsteroid, id)
	p.log.Debug("asteroid selected", "field", field, "id", id)
}

// SelectMapJump implements input.TargetCommands.
func (p *Player) SelectMapJump(id uint64) {
	p.world.Select(input.TargetJump, id)
	p.log.Info("route set", "jump", p.world.Name(input.Ref{Kind: input.TargetJump, ID: id}))
}

// SetPrimary implements input.CombatCommands.
func (p *Player) SetPrimary(on bool) { p.primary = on }

// SetSecondary implements input.CombatCommands.
func (p *Player) SetSecondary(on bool) { p.secondary = on }

// WeaponSetPress implements input.CombatCommands.
func (p *Player) WeaponSetPress(index int, press, repeat bool) {
	if press && !repeat {
		p.weaponSet = index
	}
}

// Escort implements input.CombatCommands.
func (p *Player) Escort(order input.EscortOrder) {
	p.escortOrder = order
	p.log.Info("escort order", "order", order, "escorts", len(p.escorts))
}

// Board implements input.CombatCommands.
func (p *Player) Board() {
	t, ok := p.world.Selected(input.TargetPilot)
	if !ok {
		p.log.Info("no boarding target")
		return
	}
	b, _ := p.body()
	tb, _ := p.world.Body(t.Ref)
	switch {
	case !t.Boardable:
		p.log.Info("target cannot be boarded", "target", p.world.Name(t.Ref))
	case math.Hypot(t.X-b.X, t.Y-b.Y) > b.Radius+t.Radius+boardRange:
		p.log.Info("too far to board", "target", p.world.Name(t.Ref))
	case math.Hypot(b.VX-tb.VX, b.VY-tb.VY) > landSpeed:
		p.log.Info("moving too fast to board", "target", p.world.Name(t.Ref))
	default:
		p.log.Info("boarded", "target", p.world.Name(t.Ref))
	}
}

// AutonavStart implements input.NavCommands.
func (p *Player) AutonavStart() {
	ref, ok := p.world.SelectedRef(input.TargetJump)
	if !ok {
		p.log.Info("no hyperspace target for autonav")
		return
	}
	p.nav = navGoal{kind: navJump, ref: ref}
}

// AutonavStartMap implements input.NavCommands.
func (p *Player) AutonavStartMap() {
	p.mapOpen = false
	p.AutonavStart()
}

// AutonavToPilot implements input.NavCommands.
func (p *Player) AutonavToPilot(id uint64) {
	p.nav = navGoal{kind: navPilot, ref: input.Ref{Kind: input.TargetPilot, ID: id}}
}

// AutonavToPlanet implements input.NavCommands.
func (p *Player) AutonavToPlanet(id uint64) {
	p.world.Select(input.TargetPlanet, id)
	p.nav = navGoal{kind: navPlanet, ref: input.Ref{Kind: input.TargetPlanet, ID: id}}
}

// AutonavToPosition implements input.NavCommands.
func (p *Player) AutonavToPosition(x, y float64) {
	p.nav = navGoal{kind: navPosition, x: x, y: y}
}

// Land implements input.NavCommands. Without a landable planet selected it
// selects the nearest one instead.
func (p *Player) Land() {
	b, ok := p.body()
	if !ok {
		return
	}
	t, ok := p.world.Selected(input.TargetPlanet)
	if !ok || !t.Landable {
		p.selectNearestLandable(b)
		return
	}
	switch {
	case math.Hypot(t.X-b.X, t.Y-b.Y) > t.Radius:
		p.log.Info("too far to land", "planet", p.world.Name(t.Ref))
	case math.Hypot(b.VX, b.VY) > landSpeed:
		p.log.Info("too fast to land", "planet", p.world.Name(t.Ref))
	default:
		b.VX, b.VY = 0, 0
		p.world.SetBody(p.Ref, b)
		p.nav = navGoal{}
		p.landing = max(p.Attr.LandDelay, 1e-9)
	}
}

func (p *Player) selectNearestLandable(b space.Body) {
	var (
		best  input.Target
		bestD = math.Inf(1)
	)
	for _, t := range p.world.Targets(input.TargetPlanet) {
		if !t.Landable {
			continue
		}
		if d := math.Hypot(t.X-b.X, t.Y-b.Y); d < bestD {
			best, bestD = t, d
		}
	}
	if math.IsInf(bestD, 1) {
		p.log.Info("no landable planet")
		return
	}
	p.world.Select(input.TargetPlanet, best.ID)
}

// TakeOff leaves the planet the ship is landed on.
func (p *Player) TakeOff() {
	if !p.landed {
		return
	}
	p.landed = false
	p.log.Info("took off")
}

// Jump implements input.NavCommands.
func (p *Player) Jump() {
	b, ok := p.body()
	if !ok {
		return
	}
	t, ok := p.world.Selected(input.TargetJump)
	if !ok {
		p.log.Info("no hyperspace target")
		return
	}
	switch {
	case math.Hypot(t.X-b.X, t.Y-b.Y) > t.Radius+jumpRange:
		p.log.Info("too far from jump point", "jump", p.world.Name(t.Ref))
	case math.Hypot(b.VX, b.VY) > landSpeed && !p.Attr.InstantJump:
		p.log.Info("too fast to jump", "jump", p.world.Name(t.Ref))
	default:
		p.jumping = true
		p.jumpFrom = t.Ref
		p.hyperspace = p.Attr.JumpDelay
		p.nav = navGoal{}
		if p.hyperspace <= 0 {
			p.arrive()
		}
	}
}

// arrive completes a jump at the next jump point of the system.
func (p *Player) arrive() {
	p.jumping = false
	p.hyperspace = 0

	jumps := p.world.Targets(input.TargetJump)
	exit, ok := p.world.Target(p.jumpFrom)
	for i, j := range jumps {
		if j.Ref == p.jumpFrom {
			exit, ok = jumps[(i+1)%len(jumps)], true
		}
	}
	if !ok {
		return
	}
	b, _ := p.body()
	b.X, b.Y = exit.X+exit.Radius+jumpRange/2, exit.Y
	b.VX, b.VY = 0, 0
	p.world.SetBody(p.Ref, b)
	p.world.Select(input.TargetJump, 0)
	p.log.Info("jumped", "from", p.world.Name(p.jumpFrom), "to", p.world.Name(exit.Ref))
}

// Hail implements input.NavCommands.
func (p *Player) Hail() {
	if t, ok := p.world.Selected(input.TargetPilot); ok {
		p.log.Info("hailing", "pilot", p.world.Name(t.Ref))
		return
	}
	p.HailPlanet()
}

// HailPlanet implements input.NavCommands.
func (p *Player) HailPlanet() {
	if t, ok := p.world.Selected(input.TargetPlanet); ok {
		p.log.Info("hailing", "planet", p.world.Name(t.Ref))
		return
	}
	p.log.Info("nothing to hail")
}

// Autohail implements input.NavCommands.
func (p *Player) Autohail() {
	p.log.Info("answering hail")
}

// OpenStarmap implements input.InterfaceCommands.
func (p *Player) OpenStarmap() { p.mapOpen = !p.mapOpen }

// Overlay implements input.InterfaceCommands.
func (p *Player) Overlay(press bool) {
	if press {
		p.overlay = !p.overlay
	}
}

// ScrollLog implements input.InterfaceCommands.
func (p *Player) ScrollLog(lines int) { p.logOffset = max(0, p.logOffset+lines) }

// RadarZoom implements input.InterfaceCommands.
func (p *Player) RadarZoom(delta int) { p.radarZoom = max(-3, min(p.radarZoom+delta, 3)) }

// Zoom implements input.InterfaceCommands.
func (p *Player) Zoom(factor float64) { p.cam.ZoomBy(factor) }

// Screenshot implements input.InterfaceCommands.
func (p *Player) Screenshot() { p.screenshot = true }

// ToggleFullscreen implements input.InterfaceCommands.
func (p *Player) ToggleFullscreen() { p.fullscreen = true }

// TogglePause implements input.InterfaceCommands.
func (p *Player) TogglePause() { p.paused = !p.paused }

// CycleSpeed implements input.InterfaceCommands.
func (p *Player) CycleSpeed() {
	p.speed = (p.speed + 1) % len(timeSpeeds)
	p.log.Info("time speed", "factor", timeSpeeds[p.speed])
}

// OpenMenu implements input.InterfaceCommands.
func (p *Player) OpenMenu() { p.menu = !p.menu }

// OpenInfo implements input.InterfaceCommands.
func (p *Player) OpenInfo() { p.info = !p.info }

// OpenConsole implements input.InterfaceCommands.
func (p *Player) OpenConsole() { p.console = !p.console }

var (
	_ input.Commands    = (*Player)(nil)
	_ input.PlayerState = (*Player)(nil)
	_ input.UIState     = (*Player)(nil)
)
