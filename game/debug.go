package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"skyhaul/input"
	"skyhaul/shipstats"
	"skyhaul/space"
)

// hudLines builds the status text shown in the top left corner.
func hudLines(p *Player, w *space.World) []string {
	var lines []string
	if b, ok := p.body(); ok {
		lines = append(lines, fmt.Sprintf("%s  speed %.0f/%.0f  throttle %.0f%%",
			p.Loadout.Class.Name, math.Hypot(b.VX, b.VY), p.Attr.Speed, p.throttle*100))
	}
	if p.Ship.Controls.Afterburn {
		lines = append(lines, "afterburner")
	}

	for _, sel := range []struct {
		kind  input.TargetKind
		label string
	}{
		{input.TargetPilot, "target"},
		{input.TargetPlanet, "planet"},
		{input.TargetJump, "jump"},
		{input.TargetAsteroid, "asteroid"},
	} {
		if ref, ok := w.SelectedRef(sel.kind); ok {
			lines = append(lines, fmt.Sprintf("%s: %s", sel.label, w.Name(ref)))
		}
	}

	switch {
	case p.Dead():
		lines = append(lines, "ship destroyed")
	case p.Hyperspacing():
		lines = append(lines, fmt.Sprintf("hyperspace in %.1fs", p.hyperspace))
	case p.landed:
		lines = append(lines, "landed, press T to take off")
	case p.landing > 0:
		lines = append(lines, "landing")
	case p.nav.kind != navOff:
		lines = append(lines, "autonav")
	}
	if p.mouseFly {
		lines = append(lines, "mouse flight")
	}
	if p.paused {
		lines = append(lines, "PAUSED")
	} else if p.speed > 0 {
		lines = append(lines, fmt.Sprintf("time x%.0f", timeSpeeds[p.speed]))
	}
	lines = append(lines, fmt.Sprintf("weapon set %d", p.weaponSet))

	if p.info {
		stats := p.Loadout.Stats()
		lines = append(lines, "", "-- ship info --",
			fmt.Sprintf("armour %.0f  shield %.0f  energy %.0f  cpu %.0f/%.0f",
				p.Attr.Armour, p.Attr.Shield, p.Attr.Energy, p.Loadout.CPUUsed(), p.Attr.CPU))
		for _, o := range p.Loadout.Outfits {
			lines = append(lines, "* "+o.Name)
		}
		if d := shipstats.Desc(&stats); d != "" {
			lines = append(lines, strings.Split(d, "\n")...)
		}
	}
	if p.menu {
		lines = append(lines, "", "-- menu --")
	}
	if p.console {
		lines = append(lines, "", "-- console --")
	}
	return lines
}

// drawHUD prints the status text.
func drawHUD(screen *ebiten.Image, p *Player, w *space.World) {
	ebitenutil.DebugPrintAt(screen, strings.Join(hudLines(p, w), "\n"), 8, 8)
}

// overlayScale is world units per overlay pixel.
const overlayScale = 50.0

// drawOverlay draws every known entity around the player on a small map in
// the top right corner.
func drawOverlay(screen *ebiten.Image, cam *Camera, p *Player, w *space.World) {
	const size = 200
	ox, oy := float32(cam.Width-size-8), float32(8)
	vector.StrokeRect(screen, ox, oy, size, size, 1, colornames.Dimgray, false)

	b, ok := p.body()
	if !ok {
		return
	}
	reach := overlayScale * size / 2
	for _, t := range w.InRadius(b.X, b.Y, reach*math.Sqrt2) {
		dx, dy := (t.X-b.X)/overlayScale, (t.Y-b.Y)/overlayScale
		if math.Abs(dx) > size/2 || math.Abs(dy) > size/2 {
			continue
		}
		if t.Kind == input.TargetPlanet && !t.Known {
			continue
		}
		x, y := ox+size/2+float32(dx), oy+size/2+float32(dy)
		vector.DrawFilledRect(screen, x-1, y-1, 3, 3, colorOf(w, t, t.Ref == p.Ref), false)
	}
}
