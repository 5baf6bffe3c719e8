package shipstats

import (
	"errors"
	"fmt"
)

// Kind is the numeric kind of a stat.
type Kind int

const (
	// Relative stats are multipliers centred on 1.
	Relative Kind = iota
	// Absolute stats are flat amounts in the stat's own unit.
	Absolute
	// Integer stats are whole-number amounts.
	Integer
	// Boolean stats are flags; once set they stay set.
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	}
	return "unknown"
}

// Type identifies one stat.
type Type int

const (
	TypeNil Type = iota

	TypeSpeedMod
	TypeTurnMod
	TypeThrustMod
	TypeCargoMod
	TypeArmourMod
	TypeArmourRegenMod
	TypeShieldMod
	TypeShieldRegenMod
	TypeEnergyMod
	TypeEnergyRegenMod
	TypeCPUMod

	TypeJumpDelay
	TypeLandDelay
	TypeCargoInertia

	TypeEWHide
	TypeEWDetect
	TypeEWJumpDetect

	TypeLaunchRate
	TypeLaunchRange
	TypeLaunchDamage
	TypeAmmoCapacity
	TypeLaunchLockon
	TypeLaunchReload

	TypeFbayDamage
	TypeFbayHealth
	TypeFbayMovement
	TypeFbayCapacity
	TypeFbayRate
	TypeFbayReload

	TypeFwdHeat
	TypeFwdDamage
	TypeFwdFirerate
	TypeFwdEnergy
	TypeFwdDamAsDis

	TypeTurHeat
	TypeTurDamage
	TypeTurTracking
	TypeTurFirerate
	TypeTurEnergy
	TypeTurDamAsDis

	TypeNebuAbsorbShield
	TypeNebuAbsorbArmour

	TypeHeatDissipation
	TypeStressDissipation
	TypeCrewMod
	TypeMassMod
	TypeEngineLimitRel
	TypeLootMod
	TypeTimeMod
	TypeTimeSpeedup

	TypeEnergyFlat
	TypeEnergyRegenFlat
	TypeShieldFlat
	TypeShieldRegenFlat
	TypeArmourFlat
	TypeArmourRegenFlat
	TypeCPUMax
	TypeEngineLimit

	TypeHiddenJumpDetect

	TypeInstantJump
	TypeReverseThrust
	TypeAsteroidScan

	NumTypes
)

type typeInfo struct {
	name    string
	display string
	kind    Kind

	float   func(*Stats) *float64
	integer func(*Stats) *int
	flag    func(*Stats) *bool
}

func rel(name, display string, f func(*Stats) *float64) typeInfo {
	return typeInfo{name: name, display: display, kind: Relative, float: f}
}

func abs(name, display string, f func(*Stats) *float64) typeInfo {
	return typeInfo{name: name, display: display, kind: Absolute, float: f}
}

func integer(name, display string, f func(*Stats) *int) typeInfo {
	return typeInfo{name: name, display: display, kind: Integer, integer: f}
}

func flag(name, display string, f func(*Stats) *bool) typeInfo {
	return typeInfo{name: name, display: display, kind: Boolean, flag: f}
}

var typeTable = [NumTypes]typeInfo{
	TypeSpeedMod:       rel("speed_mod", "Speed", func(s *Stats) *float64 { return &s.SpeedMod }),
	TypeTurnMod:        rel("turn_mod", "Turn", func(s *Stats) *float64 { return &s.TurnMod }),
	TypeThrustMod:      rel("thrust_mod", "Thrust", func(s *Stats) *float64 { return &s.ThrustMod }),
	TypeCargoMod:       rel("cargo_mod", "Cargo Space", func(s *Stats) *float64 { return &s.CargoMod }),
	TypeArmourMod:      rel("armour_mod", "Armour Strength", func(s *Stats) *float64 { return &s.ArmourMod }),
	TypeArmourRegenMod: rel("armour_regen_mod", "Armour Regeneration", func(s *Stats) *float64 { return &s.ArmourRegenMod }),
	TypeShieldMod:      rel("shield_mod", "Shield Strength", func(s *Stats) *float64 { return &s.ShieldMod }),
	TypeShieldRegenMod: rel("shield_regen_mod", "Shield Regeneration", func(s *Stats) *float64 { return &s.ShieldRegenMod }),
	TypeEnergyMod:      rel("energy_mod", "Energy Capacity", func(s *Stats) *float64 { return &s.EnergyMod }),
	TypeEnergyRegenMod: rel("energy_regen_mod", "Energy Regeneration", func(s *Stats) *float64 { return &s.EnergyRegenMod }),
	TypeCPUMod:         rel("cpu_mod", "CPU Capacity", func(s *Stats) *float64 { return &s.CPUMod }),

	TypeJumpDelay:    rel("jump_delay", "Jump Time", func(s *Stats) *float64 { return &s.JumpDelay }),
	TypeLandDelay:    rel("land_delay", "Landing Time", func(s *Stats) *float64 { return &s.LandDelay }),
	TypeCargoInertia: rel("cargo_inertia", "Cargo Inertia", func(s *Stats) *float64 { return &s.CargoInertia }),

	TypeEWHide:       rel("ew_hide", "Detection", func(s *Stats) *float64 { return &s.EWHide }),
	TypeEWDetect:     rel("ew_detect", "Detection Range", func(s *Stats) *float64 { return &s.EWDetect }),
	TypeEWJumpDetect: rel("ew_jump_detect", "Jump Detection Range", func(s *Stats) *float64 { return &s.EWJumpDetect }),

	TypeLaunchRate:   rel("launch_rate", "Fire Rate (Launcher)", func(s *Stats) *float64 { return &s.LaunchRate }),
	TypeLaunchRange:  rel("launch_range", "Launch Range", func(s *Stats) *float64 { return &s.LaunchRange }),
	TypeLaunchDamage: rel("launch_damage", "Damage (Launcher)", func(s *Stats) *float64 { return &s.LaunchDamage }),
	TypeAmmoCapacity: rel("ammo_capacity", "Ammo Capacity", func(s *Stats) *float64 { return &s.AmmoCapacity }),
	TypeLaunchLockon: rel("launch_lockon", "Launch Lock-on", func(s *Stats) *float64 { return &s.LaunchLockon }),
	TypeLaunchReload: rel("launch_reload", "Ammo Reload Rate", func(s *Stats) *float64 { return &s.LaunchReload }),

	TypeFbayDamage:   rel("fbay_damage", "Fighter Damage", func(s *Stats) *float64 { return &s.FbayDamage }),
	TypeFbayHealth:   rel("fbay_health", "Fighter Health", func(s *Stats) *float64 { return &s.FbayHealth }),
	TypeFbayMovement: rel("fbay_movement", "Fighter Movement", func(s *Stats) *float64 { return &s.FbayMovement }),
	TypeFbayCapacity: rel("fbay_capacity", "Fighter Bay Capacity", func(s *Stats) *float64 { return &s.FbayCapacity }),
	TypeFbayRate:     rel("fbay_rate", "Fighter Bay Launch Rate", func(s *Stats) *float64 { return &s.FbayRate }),
	TypeFbayReload:   rel("fbay_reload", "Fighter Reload Rate", func(s *Stats) *float64 { return &s.FbayReload }),

	TypeFwdHeat:     rel("fwd_heat", "Heat (Cannon)", func(s *Stats) *float64 { return &s.FwdHeat }),
	TypeFwdDamage:   rel("fwd_damage", "Damage (Cannon)", func(s *Stats) *float64 { return &s.FwdDamage }),
	TypeFwdFirerate: rel("fwd_firerate", "Fire Rate (Cannon)", func(s *Stats) *float64 { return &s.FwdFirerate }),
	TypeFwdEnergy:   rel("fwd_energy", "Energy Usage (Cannon)", func(s *Stats) *float64 { return &s.FwdEnergy }),
	TypeFwdDamAsDis: rel("fwd_dam_as_dis", "Damage as Disable (Cannon)", func(s *Stats) *float64 { return &s.FwdDamAsDis }),

	TypeTurHeat:     rel("tur_heat", "Heat (Turret)", func(s *Stats) *float64 { return &s.TurHeat }),
	TypeTurDamage:   rel("tur_damage", "Damage (Turret)", func(s *Stats) *float64 { return &s.TurDamage }),
	TypeTurTracking: rel("tur_tracking", "Tracking (Turret)", func(s *Stats) *float64 { return &s.TurTracking }),
	TypeTurFirerate: rel("tur_firerate", "Fire Rate (Turret)", func(s *Stats) *float64 { return &s.TurFirerate }),
	TypeTurEnergy:   rel("tur_energy", "Energy Usage (Turret)", func(s *Stats) *float64 { return &s.TurEnergy }),
	TypeTurDamAsDis: rel("tur_dam_as_dis", "Damage as Disable (Turret)", func(s *Stats) *float64 { return &s.TurDamAsDis }),

	TypeNebuAbsorbShield: rel("nebu_absorb_shield", "Nebula Resistance (Shield)", func(s *Stats) *float64 { return &s.NebuAbsorbShield }),
	TypeNebuAbsorbArmour: rel("nebu_absorb_armour", "Nebula Resistance (Armour)", func(s *Stats) *float64 { return &s.NebuAbsorbArmour }),

	TypeHeatDissipation:   rel("heat_dissipation", "Heat Dissipation", func(s *Stats) *float64 { return &s.HeatDissipation }),
	TypeStressDissipation: rel("stress_dissipation", "Stress Dissipation", func(s *Stats) *float64 { return &s.StressDissipation }),
	TypeCrewMod:           rel("crew_mod", "Crew", func(s *Stats) *float64 { return &s.CrewMod }),
	TypeMassMod:           rel("mass_mod", "Ship Mass", func(s *Stats) *float64 { return &s.MassMod }),
	TypeEngineLimitRel:    rel("engine_limit_rel", "Engine Mass Limit", func(s *Stats) *float64 { return &s.EngineLimitRel }),
	TypeLootMod:           rel("loot_mod", "Boarding Bonus", func(s *Stats) *float64 { return &s.LootMod }),
	TypeTimeMod:           rel("time_mod", "Time Dilation", func(s *Stats) *float64 { return &s.TimeMod }),
	TypeTimeSpeedup:       rel("time_speedup", "Time Speed-up", func(s *Stats) *float64 { return &s.TimeSpeedup }),

	TypeEnergyFlat:      abs("energy", "Energy", func(s *Stats) *float64 { return &s.EnergyFlat }),
	TypeEnergyRegenFlat: abs("energy_regen", "Energy Regeneration", func(s *Stats) *float64 { return &s.EnergyRegenFlat }),
	TypeShieldFlat:      abs("shield", "Shield", func(s *Stats) *float64 { return &s.ShieldFlat }),
	TypeShieldRegenFlat: abs("shield_regen", "Shield Regeneration", func(s *Stats) *float64 { return &s.ShieldRegenFlat }),
	TypeArmourFlat:      abs("armour", "Armour", func(s *Stats) *float64 { return &s.ArmourFlat }),
	TypeArmourRegenFlat: abs("armour_regen", "Armour Regeneration", func(s *Stats) *float64 { return &s.ArmourRegenFlat }),
	TypeCPUMax:          abs("cpu_max", "CPU Capacity", func(s *Stats) *float64 { return &s.CPUMax }),
	TypeEngineLimit:     abs("engine_limit", "Engine Mass Limit", func(s *Stats) *float64 { return &s.EngineLimit }),

	TypeHiddenJumpDetect: integer("hidden_jump_detect", "Hidden Jump Detection", func(s *Stats) *int { return &s.HiddenJumpDetect }),

	TypeInstantJump:   flag("instant_jump", "Instant Jump", func(s *Stats) *bool { return &s.InstantJump }),
	TypeReverseThrust: flag("reverse_thrust", "Reverse Thrusters", func(s *Stats) *bool { return &s.ReverseThrust }),
	TypeAsteroidScan:  flag("asteroid_scan", "Asteroid Scanner", func(s *Stats) *bool { return &s.AsteroidScan }),
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, NumTypes)
	for t := TypeNil + 1; t < NumTypes; t++ {
		m[typeTable[t].name] = t
	}
	return m
}()

// Valid reports whether t names a stat.
func (t Type) Valid() bool { return t > TypeNil && t < NumTypes }

func (t Type) String() string {
	if !t.Valid() {
		return "nil"
	}
	return typeTable[t].name
}

// Kind returns the numeric kind of t.
func (t Type) Kind() Kind {
	if !t.Valid() {
		return Relative
	}
	return typeTable[t].kind
}

// Display is the human name used in descriptions.
func (t Type) Display() string {
	if !t.Valid() {
		return ""
	}
	return typeTable[t].display
}

// NameFromType returns the persisted name of t, or "" for an invalid type.
func NameFromType(t Type) string {
	if !t.Valid() {
		return ""
	}
	return typeTable[t].name
}

// TypeFromName returns the type persisted as name, or TypeNil.
func TypeFromName(name string) Type {
	if t, ok := typesByName[name]; ok {
		return t
	}
	return TypeNil
}

// Field addresses one stat inside a Stats value.
type Field struct {
	t Type
}

// FieldFromType returns the field holding t.
func FieldFromType(t Type) (Field, bool) {
	if !t.Valid() {
		return Field{}, false
	}
	return Field{t: t}, true
}

// Type is the stat stored in the field.
func (f Field) Type() Type { return f.t }

// Value reads the field as a number. Booleans read as 0 or 1.
func (f Field) Value(s *Stats) float64 {
	info := &typeTable[f.t]
	switch info.kind {
	case Integer:
		return float64(*info.integer(s))
	case Boolean:
		if *info.flag(s) {
			return 1
		}
		return 0
	}
	return *info.float(s)
}

// Store writes v into the field. Integers round to the nearest whole number
// and booleans are set for any non-zero value.
func (f Field) Store(s *Stats, v float64) {
	info := &typeTable[f.t]
	switch info.kind {
	case Integer:
		*info.integer(s) = roundInt(v)
	case Boolean:
		*info.flag(s) = nonZero(v)
	default:
		*info.float(s) = v
	}
}

var errCheck = errors.New("stat table inconsistent")

// Check verifies that every type has a unique name that maps back to it and
// an accessor matching its kind.
func Check() error {
	for t := TypeNil + 1; t < NumTypes; t++ {
		info := typeTable[t]
		if info.name == "" {
			return fmt.Errorf("%w: type %d has no name", errCheck, t)
		}
		if got := TypeFromName(info.name); got != t {
			return fmt.Errorf("%w: %q resolves to %d, want %d", errCheck, info.name, got, t)
		}
		var ok bool
		switch info.kind {
		case Relative, Absolute:
			ok = info.float != nil
		case Integer:
			ok = info.integer != nil
		case Boolean:
			ok = info.flag != nil
		}
		if !ok {
			return fmt.Errorf("%w: %q has no %s field", errCheck, info.name, info.kind)
		}
	}
	if len(typesByName) != int(NumTypes)-1 {
		return fmt.Errorf("%w: %d names for %d types", errCheck, len(typesByName), NumTypes-1)
	}
	return nil
}
