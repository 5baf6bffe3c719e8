package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"skyhaul/input"
	"skyhaul/space"
)

// Renderer handles rendering of space entities
type Renderer struct {
	camera *Camera
}

// NewRenderer creates a new renderer
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{camera: camera}
}

// Render draws every entity within sight of the camera and marks the
// player's current targets.
func (r *Renderer) Render(screen *ebiten.Image, w *space.World, player input.Ref) {
	screen.Fill(colornames.Black)

	c := r.camera
	reach := math.Hypot(c.Width, c.Height)/2/c.Zoom() + 200
	for _, t := range w.InRadius(c.X, c.Y, reach) {
		r.renderTarget(screen, w, t, t.Ref == player)
	}

	for _, kind := range []input.TargetKind{input.TargetPilot, input.TargetPlanet, input.TargetJump, input.TargetAsteroid} {
		if t, ok := w.Selected(kind); ok {
			r.renderSelection(screen, t)
		}
	}
}

func colorOf(w *space.World, t input.Target, player bool) color.Color {
	switch t.Kind {
	case input.TargetPilot:
		if player {
			return colornames.Limegreen
		}
		if w.Hostile(t.Ref) {
			return colornames.Red
		}
		return colornames.Lightskyblue
	case input.TargetPlanet:
		if !t.Known {
			return colornames.Dimgray
		}
		return colornames.Steelblue
	case input.TargetJump:
		return colornames.Gold
	case input.TargetAsteroid:
		return colornames.Sienna
	}
	return colornames.White
}

// renderTarget renders a single entity
func (r *Renderer) renderTarget(screen *ebiten.Image, w *space.World, t input.Target, player bool) {
	sx, sy := r.camera.WorldToScreen(t.X, t.Y)

	// Skip if outside screen bounds (with margin)
	radius := max(t.Radius*r.camera.Zoom(), 1)
	margin := radius + 10
	if sx < -margin || sx > r.camera.Width+margin ||
		sy < -margin || sy > r.camera.Height+margin {
		return
	}

	clr := colorOf(w, t, player)
	if t.Kind == input.TargetJump {
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), 2, clr, true)
		return
	}
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), clr, true)

	// Draw direction indicator (small line)
	if t.Kind == input.TargetPilot {
		b, _ := w.Body(t.Ref)
		dirLength := radius * 1.5
		endX := sx + math.Cos(b.Rotation)*dirLength
		endY := sy + math.Sin(b.Rotation)*dirLength
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(endX), float32(endY), 2, clr, true)
	}
}

func (r *Renderer) renderSelection(screen *ebiten.Image, t input.Target) {
	sx, sy := r.camera.WorldToScreen(t.X, t.Y)
	radius := max(t.Radius*r.camera.Zoom(), 4) + 6
	vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), 1, colornames.Yellow, true)
}
