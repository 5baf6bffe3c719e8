package game

import (
	"math"

	"skyhaul/space"
)

// Flight model constants.
const (
	// friction is the velocity kept per 1/60 s with no thrust applied
	friction = 0.995

	// turnFriction is the angular velocity kept per 1/60 s without turn input
	turnFriction = 0.9

	// brakeFactor is the velocity kept per second while braking
	brakeFactor = 0.15

	afterburnThrust = 1.8
	afterburnSpeed  = 1.5
)

// Controls are the pilot inputs the flight model reads each step.
type Controls struct {
	// Throttle is the forward thrust in [0,1]
	Throttle float64

	Afterburn bool

	// Turn is the turn input in [-1,1]; positive turns clockwise
	Turn float64

	// Reverse thrusts backwards on ships that can, and turns the ship to
	// face against its motion on the rest
	Reverse bool

	Brake bool
}

// Ship is the flight state a body carries beyond its position.
type Ship struct {
	AngularVelocity float64
	Controls        Controls
}

// Fly advances b by dt seconds under the ship's controls and attributes.
func (s *Ship) Fly(b *space.Body, a Attributes, dt float64) {
	c := s.Controls
	turn := c.Turn
	if c.Reverse && !a.ReverseThrust && turn == 0 {
		if v := math.Hypot(b.VX, b.VY); v > 1 {
			turn = steer(b.Rotation, math.Atan2(-b.VY, -b.VX))
		}
	}

	// Handle rotation (angular velocity)
	if math.Abs(turn) > 0.01 {
		s.AngularVelocity += turn * a.TurnAccel * dt
		s.AngularVelocity = clamp(s.AngularVelocity, -a.Turn, a.Turn)
	} else {
		s.AngularVelocity *= math.Pow(turnFriction, dt*60)
	}
	b.Rotation = normalizeAngle(b.Rotation + s.AngularVelocity*dt)

	speed := a.Speed
	thrust := c.Throttle * a.Thrust
	if c.Afterburn {
		thrust = a.Thrust * afterburnThrust
		speed *= afterburnSpeed
	}
	if c.Reverse && a.ReverseThrust {
		thrust = -a.Thrust * 0.6
	}

	switch {
	case c.Brake:
		k := math.Pow(brakeFactor, dt)
		b.VX *= k
		b.VY *= k
	case math.Abs(thrust) > 0.01:
		// Rotation 0 points right (east), matching the rendering convention
		b.VX += math.Cos(b.Rotation) * thrust * dt
		b.VY += math.Sin(b.Rotation) * thrust * dt
	}

	k := math.Pow(friction, dt*60)
	b.VX *= k
	b.VY *= k

	if v := math.Hypot(b.VX, b.VY); v > speed && v > 0 {
		scale := speed / v
		b.VX *= scale
		b.VY *= scale
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
