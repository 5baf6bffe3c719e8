// Package shipstats models ship stat modifiers: typed lists loaded with
// equipment and the per-ship aggregate they fold into.
package shipstats

import (
	"log/slog"
	"math"
)

// Stats is the aggregate of every stat a ship carries.
//
// Relative fields are multipliers with 1 as identity: 0.7 lowers the base
// value by 30% and 1.2 raises it by 20%. Absolute and integer fields are
// amounts with 0 as identity. Boolean fields report whether the property is
// present.
type Stats struct {
	SpeedMod       float64
	TurnMod        float64
	ThrustMod      float64
	CargoMod       float64
	ArmourMod      float64
	ArmourRegenMod float64
	ShieldMod      float64
	ShieldRegenMod float64
	EnergyMod      float64
	EnergyRegenMod float64
	CPUMod         float64

	JumpDelay    float64
	LandDelay    float64
	CargoInertia float64

	EWHide       float64
	EWDetect     float64
	EWJumpDetect float64

	LaunchRate   float64
	LaunchRange  float64
	LaunchDamage float64
	AmmoCapacity float64
	LaunchLockon float64
	LaunchReload float64

	FbayDamage   float64
	FbayHealth   float64
	FbayMovement float64
	FbayCapacity float64
	FbayRate     float64
	FbayReload   float64

	FwdHeat     float64
	FwdDamage   float64
	FwdFirerate float64
	FwdEnergy   float64
	FwdDamAsDis float64

	TurHeat     float64
	TurDamage   float64
	TurTracking float64
	TurFirerate float64
	TurEnergy   float64
	TurDamAsDis float64

	NebuAbsorbShield float64
	NebuAbsorbArmour float64

	HeatDissipation   float64
	StressDissipation float64
	CrewMod           float64
	MassMod           float64
	EngineLimitRel    float64
	LootMod           float64
	TimeMod           float64
	TimeSpeedup       float64

	EnergyFlat      float64
	EnergyRegenFlat float64
	ShieldFlat      float64
	ShieldRegenFlat float64
	ArmourFlat      float64
	ArmourRegenFlat float64
	CPUMax          float64
	EngineLimit     float64

	HiddenJumpDetect int

	InstantJump   bool
	ReverseThrust bool
	AsteroidScan  bool
}

// New returns an aggregate with every field at its identity.
func New() Stats {
	var s Stats
	s.Init()
	return s
}

// Init resets every field to its identity.
func (s *Stats) Init() {
	*s = Stats{}
	for t := TypeNil + 1; t < NumTypes; t++ {
		if info := &typeTable[t]; info.kind == Relative {
			*info.float(s) = 1
		}
	}
}

// ModSingle applies one entry scaled by amount. Relative entries compound:
// two +10% entries give 1.21, not 1.20.
func (s *Stats) ModSingle(e Entry, amount float64) {
	if !e.Type.Valid() {
		return
	}
	info := &typeTable[e.Type]
	switch info.kind {
	case Relative:
		*info.float(s) *= 1 + e.Value*amount
	case Absolute:
		*info.float(s) += e.Value * amount
	case Integer:
		*info.integer(s) += roundInt(e.Value * amount)
	case Boolean:
		p := info.flag(s)
		*p = *p || nonZero(e.Value)
	}
}

// ModFromList applies every entry of l in order.
func (s *Stats) ModFromList(l List, amount float64) {
	for _, e := range l {
		s.ModSingle(e, amount)
	}
}

// Merge folds another finished aggregate into s.
func (s *Stats) Merge(src *Stats) {
	for t := TypeNil + 1; t < NumTypes; t++ {
		info := &typeTable[t]
		switch info.kind {
		case Relative:
			*info.float(s) *= *info.float(src)
		case Absolute:
			*info.float(s) += *info.float(src)
		case Integer:
			*info.integer(s) += *info.integer(src)
		case Boolean:
			p := info.flag(s)
			*p = *p || *info.flag(src)
		}
	}
}

// Set writes the stat called name. Relative values are given in percent, so
// 10 means +10%. With overwrite the field takes the value outright; without
// it the value is composed with the current one by the rule of its kind.
// Unknown names are logged to the default logger and returned as
// *UnknownStatError.
func (s *Stats) Set(name string, value float64, overwrite bool) error {
	t := TypeFromName(name)
	if !t.Valid() {
		return unknownStat(name)
	}
	info := &typeTable[t]
	switch info.kind {
	case Relative:
		v := 1 + value/100
		if overwrite {
			*info.float(s) = v
		} else {
			*info.float(s) *= v
		}
	case Absolute:
		if overwrite {
			*info.float(s) = value
		} else {
			*info.float(s) += value
		}
	case Integer:
		if overwrite {
			*info.integer(s) = roundInt(value)
		} else {
			*info.integer(s) += roundInt(value)
		}
	case Boolean:
		p := info.flag(s)
		if overwrite {
			*p = nonZero(value)
		} else {
			*p = *p || nonZero(value)
		}
	}
	return nil
}

// Get reads the stat called name in the units Set takes.
func (s *Stats) Get(name string) (float64, error) {
	t := TypeFromName(name)
	if !t.Valid() {
		return 0, unknownStat(name)
	}
	f, _ := FieldFromType(t)
	v := f.Value(s)
	if t.Kind() == Relative {
		return (v - 1) * 100, nil
	}
	return v, nil
}

// IsIdentity reports whether the stat t of s is at its default.
func (s *Stats) IsIdentity(t Type) bool {
	f, ok := FieldFromType(t)
	if !ok {
		return true
	}
	v := f.Value(s)
	if t.Kind() == Relative {
		return math.Abs(v-1) < epsilon
	}
	return math.Abs(v) < epsilon
}

func unknownStat(name string) error {
	slog.Warn("unknown ship stat", "stat", name)
	return &UnknownStatError{Name: name}
}

const epsilon = 1e-5

func nonZero(v float64) bool { return math.Abs(v) > epsilon }

func roundInt(v float64) int { return int(math.Round(v)) }
