package game

import (
	"math"

	"skyhaul/input"
	"skyhaul/space"
)

// AIBehavior selects how an NPC pilot picks where to fly.
type AIBehavior int

const (
	AIBehaviorPatrol AIBehavior = iota
	AIBehaviorCircle
	AIBehaviorChase
)

// chaseRange is how close the player must be for a chasing pilot to notice.
const chaseRange = 1500.0

// NPC is a computer-controlled pilot.
type NPC struct {
	Ref      input.Ref
	Behavior AIBehavior
	Class    ShipClass
	Attr     Attributes
	Ship     Ship

	// HomeX and HomeY anchor the patrol and circle patterns.
	HomeX, HomeY float64

	PatternTime float64
}

// Update steers n for one step. px, py is the player's position when ok.
func (n *NPC) Update(w *space.World, px, py float64, ok bool, dt float64) {
	b, exists := w.Body(n.Ref)
	if !exists {
		return
	}
	n.PatternTime += dt

	tx, ty := n.target(b, px, py, ok)
	c := Controls{}
	dx, dy := tx-b.X, ty-b.Y
	if dist := math.Hypot(dx, dy); dist > 1.0 {
		c.Turn = steer(b.Rotation, math.Atan2(dy, dx))
		// Only thrust once roughly facing the target
		if math.Abs(angleTo(b.Rotation, math.Atan2(dy, dx))) < math.Pi/4 {
			c.Throttle = min(1, dist/300)
		}
	}
	n.Ship.Controls = c
	n.Ship.Fly(&b, n.Attr, dt)
	w.SetBody(n.Ref, b)
}

func (n *NPC) target(b space.Body, px, py float64, ok bool) (float64, float64) {
	switch n.Behavior {
	case AIBehaviorChase:
		if ok && math.Hypot(px-b.X, py-b.Y) < chaseRange {
			return px, py
		}
		fallthrough
	case AIBehaviorPatrol:
		// Sweep between two points either side of home
		return n.HomeX + math.Sin(n.PatternTime*0.2)*800, n.HomeY
	case AIBehaviorCircle:
		angle := n.PatternTime * 0.3
		return n.HomeX + math.Cos(angle)*400, n.HomeY + math.Sin(angle)*400
	}
	return b.X, b.Y
}

// steer converts a heading error to a turn input in [-1, 1] with a small
// dead zone to prevent jittering.
func steer(rotation, targetAngle float64) float64 {
	const deadZone = 0.05
	diff := angleTo(rotation, targetAngle)
	if math.Abs(diff) <= deadZone {
		return 0
	}
	return clamp(diff/(math.Pi/4), -1, 1)
}

// angleTo returns the signed angle from a to b in [-π, π].
func angleTo(a, b float64) float64 {
	return normalizeAngle(b - a)
}
