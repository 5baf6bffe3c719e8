package input

import (
	"log/slog"
	"time"
)

// Deps are the collaborators of the input subsystem. Commands and Player
// are required; the rest fall back to inert implementations.
type Deps struct {
	Commands Commands
	Player   PlayerState
	World    World
	UI       UIState
	Notifier Notifier
	Viewport Viewport
	Cursor   Cursor
	Log      *slog.Logger
	Now      func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.UI == nil {
		d.UI = noUI{}
	}
	if d.Notifier == nil {
		d.Notifier = nopNotifier{}
	}
	if d.Cursor == nil {
		d.Cursor = nopCursor{}
	}
	if d.World == nil {
		d.World = emptyWorld{}
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

type noUI struct{}

func (noUI) BlockingUIOpen() bool { return false }
func (noUI) MapOpen() bool        { return false }

type nopNotifier struct{}

func (nopNotifier) Notify(string, bool)     {}
func (nopNotifier) NotifyMouse(MouseButton) {}

type nopCursor struct{}

func (nopCursor) ShowCursor() {}
func (nopCursor) HideCursor() {}

type emptyWorld struct{}

func (emptyWorld) PlayerPosition() (float64, float64, bool)              { return 0, 0, false }
func (emptyWorld) NearestPilot(float64, float64) (Target, float64, bool) { return Target{}, 0, false }
func (emptyWorld) NearestAsset(float64, float64) (Target, float64, bool) { return Target{}, 0, false }
func (emptyWorld) NearestPilotAngle(float64) (Target, float64, bool)     { return Target{}, 0, false }
func (emptyWorld) NearestAssetAngle(float64) (Target, float64, bool)     { return Target{}, 0, false }
func (emptyWorld) Selected(TargetKind) (Target, bool)                    { return Target{}, false }
func (emptyWorld) Exists(Ref) bool                                       { return false }

// Context owns all input state: bindings, repeat and double-click state and
// the cursor timer. It must only be used from one goroutine; the keybind
// Watcher hands reloads over through Reloads.
type Context struct {
	Registry *Registry

	deps       Deps
	filter     *Filter
	dispatcher *Dispatcher
	clicks     *ClickResolver
	dbl        *DoubleClick

	interceptors []Interceptor
	reloads      chan []BindingSpec
	signals      []Signal

	mouseTimer   time.Duration
	mouseCounter int
}

// NewContext builds an input context with every action unbound.
func NewContext(settings Settings, deps Deps) *Context {
	deps = deps.withDefaults()
	reg := NewRegistry(deps.Log)
	dbl := &DoubleClick{Threshold: settings.DoubleClick}
	return &Context{
		Registry:   reg,
		deps:       deps,
		filter:     NewFilter(reg),
		dispatcher: NewDispatcher(deps, settings),
		clicks:     NewClickResolver(deps, dbl),
		dbl:        dbl,
		reloads:    make(chan []BindingSpec, 4),
	}
}

// SetSettings replaces the timings.
func (c *Context) SetSettings(s Settings) {
	c.dispatcher.SetSettings(s)
	c.dbl.Threshold = s.DoubleClick
}

// AddInterceptor appends an event interceptor. Interceptors run in the order
// they were added.
func (c *Context) AddInterceptor(i Interceptor) {
	c.interceptors = append(c.interceptors, i)
}

// Reloads is where the keybind watcher delivers new bindings.
func (c *Context) Reloads() chan<- []BindingSpec {
	return c.reloads
}

// ProcessEvent handles one platform event.
func (c *Context) ProcessEvent(ev RawEvent) {
	mouse := ev.IsMouse()
	if mouse {
		c.mouseTimer = MouseHideDelay
		c.deps.Cursor.ShowCursor()
	}

	for _, i := range c.interceptors {
		if i.Intercept(ev) {
			return
		}
	}
	// The wheel does not wake the cursor but is still absorbed by a blocking
	// window like the rest of the mouse.
	if (mouse || ev.Type == EventMouseWheel) && c.deps.UI.BlockingUIOpen() {
		return
	}

	switch ev.Type {
	case EventMouseDown:
		c.mouseDown(ev)
	case EventMouseWheel:
		if !c.deps.Player.Present() {
			return
		}
		if ev.WheelY > 0 {
			c.deps.Commands.Zoom(1.1)
		} else {
			c.deps.Commands.Zoom(0.9)
		}
	case EventMouseMotion:
		c.deps.Commands.MouseMove(ev.X, ev.Y)
	case EventMouseUp:
	default:
		c.signals = c.filter.AppendSignals(c.signals[:0], ev)
		for _, s := range c.signals {
			c.dispatcher.Dispatch(s)
		}
	}
}

func (c *Context) mouseDown(ev RawEvent) {
	c.deps.Notifier.NotifyMouse(ev.Button)

	p := c.deps.Player
	if !p.Present() || p.Dead() {
		return
	}
	switch ev.Button {
	case MouseMiddle:
		c.deps.Commands.ToggleMouseFly()
		return
	case MouseLeft, MouseRight:
	default:
		return
	}
	if c.deps.Viewport == nil {
		return
	}

	w, h := c.deps.Viewport.ScreenSize()
	mx, my := ev.X, ev.Y
	if mx <= BorderBand || my <= BorderBand || mx >= float64(w)-BorderBand || my >= float64(h)-BorderBand {
		if px, py, ok := c.deps.World.PlayerPosition(); ok {
			x := mx - float64(w)/2 + px
			y := my - float64(h)/2 + py
			if c.clicks.ClickBearing(x, y, ev.Button) {
				return
			}
		}
	}

	x, y := c.deps.Viewport.ScreenToWorld(mx, my)
	c.clicks.ClickAt(x, y, ev.Button, c.deps.Viewport.Zoom())
}

// ClickAt resolves a click at a world position, e.g. from the radar or the
// overlay map. zoom is in screen pixels per world unit, the same value
// Viewport.Zoom returns; a map drawn at s world units per pixel passes 1/s.
func (c *Context) ClickAt(x, y float64, button MouseButton, zoom float64) bool {
	return c.clicks.ClickAt(x, y, button, zoom)
}

// Forget drops ref from the double-click state. Call it when an entity
// leaves the world.
func (c *Context) Forget(ref Ref) {
	c.dbl.Forget(ref)
}

// ShowMouse keeps the cursor visible until a matching HideMouse.
func (c *Context) ShowMouse() {
	c.deps.Cursor.ShowCursor()
	c.mouseCounter++
}

// HideMouse releases a ShowMouse. The cursor hides once the idle timer runs
// out.
func (c *Context) HideMouse() {
	c.mouseCounter--
	if c.mouseCounter <= 0 {
		c.mouseTimer = MouseHideDelay
		c.mouseCounter = 0
	}
}

// Tick advances the cursor timer, applies pending keybind reloads and runs
// the key repeat. Call it once per frame between event batches.
func (c *Context) Tick(dt time.Duration) {
	if c.mouseTimer > 0 {
		c.mouseTimer -= dt
		if c.mouseTimer <= 0 && c.mouseCounter <= 0 {
			c.deps.Cursor.HideCursor()
		}
	}

drain:
	for {
		select {
		case specs := <-c.reloads:
			n := ApplyBindings(c.Registry, specs)
			c.deps.Log.Info("keybinds reloaded", "bindings", n)
		default:
			break drain
		}
	}

	c.dispatcher.Tick()
}
