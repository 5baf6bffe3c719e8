// Package game runs the ebiten game loop around the input context, the
// space world and the player's ship.
package game

import (
	"fmt"
	"image/png"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"skyhaul/input"
	"skyhaul/space"
)

// Options are the collaborators and settings a Game is built from.
type Options struct {
	Config   Config
	Settings input.Settings
	// Layout is the keyboard preset applied before any keybind file.
	Layout string
	// Outfits is the outfit catalogue the starting loadout is drawn from.
	Outfits  map[string]Outfit
	Notifier input.Notifier
	Log      *slog.Logger
	// Seed makes the generated system reproducible.
	Seed uint64
}

// Game represents the main game state
type Game struct {
	config Config
	log    *slog.Logger

	world    *space.World
	camera   *Camera
	renderer *Renderer
	source   *Source
	keys     *EbitenKeys
	input    *input.Context

	player *Player
	npcs   []*NPC

	// swallowT is set while the release of the T key that took off is
	// still outstanding.
	swallowT bool

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance
func NewGame(opts Options) (*Game, error) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	cfg := opts.Config

	class, ok := ShipClassByName(cfg.Class)
	if !ok {
		return nil, fmt.Errorf("unknown ship class %q", cfg.Class)
	}
	loadout := NewLoadout(class)
	for _, name := range cfg.Outfits {
		o, ok := opts.Outfits[name]
		if !ok {
			log.Warn("unknown outfit", "outfit", name)
			continue
		}
		if err := loadout.Add(o); err != nil {
			log.Warn("outfit not equipped", "error", err)
		}
	}

	world := space.New(cfg.Grid, log)
	camera := NewCamera(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x5eed))

	g := &Game{
		config:         cfg,
		log:            log,
		world:          world,
		camera:         camera,
		renderer:       NewRenderer(camera),
		source:         NewSource(),
		keys:           NewEbitenKeys(),
		lastUpdateTime: time.Now(),
	}
	g.npcs = spawnSystem(world, rng)
	g.player = NewPlayer(world, camera, loadout, 0, 0, log)
	if escort, ok := g.spawnEscort(rng); ok {
		g.player.AddEscort(escort)
	}

	g.input = input.NewContext(opts.Settings, input.Deps{
		Commands: g.player,
		Player:   g.player,
		World:    world,
		UI:       g.player,
		Notifier: opts.Notifier,
		Viewport: camera,
		Cursor:   cursor{},
		Log:      log,
	})
	layout := opts.Layout
	if layout == "" {
		layout = input.LayoutArrows
	}
	if err := g.input.Registry.ApplyLayout(layout, g.keys); err != nil {
		return nil, err
	}
	g.input.AddInterceptor(input.InterceptorFunc(g.takeOff))
	world.OnRemove(g.input.Forget)
	world.OnRemove(g.dropNPC)

	log.Info("game ready",
		"class", class.Name,
		"outfits", len(loadout.Outfits),
		"entities", world.Len())
	return g, nil
}

func (g *Game) spawnEscort(rng *rand.Rand) (input.Ref, bool) {
	npc := spawnNPC(g.world, rng, RolePatrol, 0)
	b, ok := g.world.Body(npc.Ref)
	if !ok {
		return input.Ref{}, false
	}
	b.X, b.Y = -80, 60
	g.world.SetBody(npc.Ref, b)
	npc.HomeX, npc.HomeY = b.X, b.Y
	g.npcs = append(g.npcs, npc)
	return npc.Ref, true
}

// takeOff lets the T key leave a planet while the in-flight bindings are
// locked out by the landed state.
// The matching release is swallowed too so no binding sees a lone key up.
func (g *Game) takeOff(ev input.RawEvent) bool {
	if ev.Key != input.Key(ebiten.KeyT) {
		return false
	}
	switch ev.Type {
	case input.EventKeyDown:
		if !g.player.landed {
			return false
		}
		g.player.TakeOff()
		g.swallowT = true
		return true
	case input.EventKeyUp:
		if g.swallowT {
			g.swallowT = false
			return true
		}
	}
	return false
}

func (g *Game) dropNPC(ref input.Ref) {
	for i, n := range g.npcs {
		if n.Ref == ref {
			g.npcs = append(g.npcs[:i], g.npcs[i+1:]...)
			return
		}
	}
}

// Input returns the input context, for loading keybinds and wiring the
// keybind watcher.
func (g *Game) Input() *input.Context { return g.input }

// Keys returns the key namer keybind files are written with.
func (g *Game) Keys() *EbitenKeys { return g.keys }

// World returns the space world.
func (g *Game) World() *space.World { return g.world }

// Player returns the player's ship.
func (g *Game) Player() *Player { return g.player }

// Update advances the game by one tick.
func (g *Game) Update() error {
	// Calculate delta time
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	for _, ev := range g.source.Poll() {
		g.input.ProcessEvent(ev)
	}
	g.input.Tick(time.Duration(deltaTime * float64(time.Second)))

	if g.player.TakeFullscreenToggle() {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	g.step(deltaTime * g.player.TimeScale())
	return nil
}

// step advances the simulation by dt seconds of game time.
func (g *Game) step(dt float64) {
	if dt <= 0 || g.player.BlockingUIOpen() {
		return
	}
	px, py, ok := g.world.PlayerPosition()
	for _, n := range g.npcs {
		n.Update(g.world, px, py, ok, dt)
	}
	g.player.Update(dt)
	g.world.Step(dt)

	if x, y, ok := g.world.PlayerPosition(); ok {
		g.camera.Follow(x, y)
	}
}

// Draw renders the world and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.world, g.player.Ref)
	if g.player.Overlaid() {
		drawOverlay(screen, g.camera, g.player, g.world)
	}
	drawHUD(screen, g.player, g.world)

	if g.player.TakeScreenshot() {
		if path, err := g.saveScreenshot(screen); err != nil {
			g.log.Error("screenshot failed", "error", err)
		} else {
			g.log.Info("screenshot saved", "path", path)
		}
	}
}

func (g *Game) saveScreenshot(screen *ebiten.Image) (string, error) {
	if err := os.MkdirAll(g.config.ScreenshotDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(g.config.ScreenshotDir, time.Now().Format("screenshot-20060102-150405.000.png"))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, screen); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
