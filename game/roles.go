package game

import "math/rand/v2"

// Role defines what an NPC pilot is doing in the system.
type Role int

const (
	RoleTrader Role = iota // Flies between planets, can be boarded
	RolePirate             // Chases the player
	RolePatrol             // Circles its post
)

// RoleConfig holds configuration for each role
type RoleConfig struct {
	Role      Role
	Name      string
	Class     string
	Behavior  AIBehavior
	Hostile   bool
	Boardable bool
}

var roles = map[Role]RoleConfig{
	RoleTrader: {
		Role:      RoleTrader,
		Name:      "Trader",
		Class:     "Shuttle",
		Behavior:  AIBehaviorPatrol,
		Boardable: true,
	},
	RolePirate: {
		Role:     RolePirate,
		Name:     "Pirate",
		Class:    "Corvette",
		Behavior: AIBehaviorChase,
		Hostile:  true,
	},
	RolePatrol: {
		Role:     RolePatrol,
		Name:     "Patrol",
		Class:    "Courier",
		Behavior: AIBehaviorCircle,
	},
}

// GetRoleConfig returns configuration for a role
func GetRoleConfig(r Role) RoleConfig {
	if c, ok := roles[r]; ok {
		return c
	}
	return roles[RoleTrader]
}

// RandomRole returns a random role (weighted towards traders)
func RandomRole(rng *rand.Rand) Role {
	// 60% traders, 25% patrols, 15% pirates
	switch f := rng.Float64(); {
	case f < 0.6:
		return RoleTrader
	case f < 0.85:
		return RolePatrol
	default:
		return RolePirate
	}
}
