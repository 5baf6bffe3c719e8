package game

import "github.com/hajimehoshi/ebiten/v2"

// Zoom limits of the camera.
const (
	minZoom = 0.1
	maxZoom = 4.0
)

// Camera represents the viewport into the world. It implements
// input.Viewport.
type Camera struct {
	X, Y   float64 // Camera position in world coordinates
	Width  float64 // Viewport width
	Height float64 // Viewport height

	zoom float64
}

// NewCamera creates a new camera
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height, zoom: 1}
}

// Follow centres the camera on a world position.
func (c *Camera) Follow(x, y float64) {
	c.X, c.Y = x, y
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx-c.X)*c.zoom + c.Width/2, (wy-c.Y)*c.zoom + c.Height/2
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx-c.Width/2)/c.zoom + c.X, (sy-c.Height/2)/c.zoom + c.Y
}

// ScreenSize returns the viewport size in pixels.
func (c *Camera) ScreenSize() (int, int) {
	return int(c.Width), int(c.Height)
}

// Zoom returns the current zoom level; 1 is one pixel per world unit.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// ZoomBy multiplies the zoom level by factor within the camera's limits.
func (c *Camera) ZoomBy(factor float64) {
	c.zoom = clamp(c.zoom*factor, minZoom, maxZoom)
}

// Resize updates the viewport to the window's layout size.
func (c *Camera) Resize(w, h int) {
	c.Width, c.Height = float64(w), float64(h)
}

// cursor shows and hides the system cursor through ebiten. It implements
// input.Cursor.
type cursor struct{}

func (cursor) ShowCursor() { ebiten.SetCursorMode(ebiten.CursorModeVisible) }
func (cursor) HideCursor() { ebiten.SetCursorMode(ebiten.CursorModeHidden) }
