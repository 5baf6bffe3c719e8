package game

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"skyhaul/shipstats"
)

// Outfit is a piece of equipment carrying stat modifiers.
type Outfit struct {
	Name        string
	Description string
	// CPU is the processing power the outfit uses.
	CPU   float64
	Stats shipstats.List
}

// ErrCPU is returned when an outfit does not fit the remaining CPU.
var ErrCPU = errors.New("not enough CPU")

// LoadOutfits reads an outfit catalogue:
//
//	<outfits>
//	  <outfit name="Engine Reroute" cpu="4">
//	    <description>...</description>
//	    <stats><speed_mod>10</speed_mod></stats>
//	  </outfit>
//	</outfits>
//
// Any malformed outfit fails the whole catalogue.
func LoadOutfits(r io.Reader) (map[string]Outfit, error) {
	dec := xml.NewDecoder(r)
	out := make(map[string]Outfit)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading outfits: %w", err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "outfit" {
			continue
		}
		o, err := decodeOutfit(dec, el)
		if err != nil {
			return nil, err
		}
		if _, dup := out[o.Name]; dup {
			return nil, fmt.Errorf("outfit %q defined twice", o.Name)
		}
		out[o.Name] = o
	}
}

// LoadOutfitsFile is LoadOutfits on the file at path.
func LoadOutfitsFile(path string) (map[string]Outfit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	outfits, err := LoadOutfits(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return outfits, nil
}

func decodeOutfit(dec *xml.Decoder, start xml.StartElement) (Outfit, error) {
	var o Outfit
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "name":
			o.Name = a.Value
		case "cpu":
			v, err := strconv.ParseFloat(a.Value, 64)
			if err != nil {
				return Outfit{}, fmt.Errorf("outfit %q cpu: %w", o.Name, err)
			}
			o.CPU = v
		}
	}
	if o.Name == "" {
		return Outfit{}, errors.New("outfit without a name")
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return Outfit{}, fmt.Errorf("outfit %q: %w", o.Name, err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "stats":
				l, err := shipstats.DecodeList(dec, el)
				if err != nil {
					return Outfit{}, fmt.Errorf("outfit %q: %w", o.Name, err)
				}
				o.Stats = append(o.Stats, l...)
			case "description":
				var s string
				if err := dec.DecodeElement(&s, &el); err != nil {
					return Outfit{}, fmt.Errorf("outfit %q: %w", o.Name, err)
				}
				o.Description = strings.TrimSpace(s)
			default:
				if err := dec.Skip(); err != nil {
					return Outfit{}, fmt.Errorf("outfit %q: %w", o.Name, err)
				}
			}
		case xml.EndElement:
			return o, nil
		}
	}
}

// Loadout is a hull with its equipment.
type Loadout struct {
	Class   ShipClass
	Outfits []Outfit
}

// NewLoadout returns an empty loadout of class.
func NewLoadout(class ShipClass) *Loadout {
	return &Loadout{Class: class}
}

// Stats folds every outfit's modifiers into a fresh aggregate.
func (l *Loadout) Stats() shipstats.Stats {
	s := shipstats.New()
	for _, o := range l.Outfits {
		s.ModFromList(o.Stats, 1)
	}
	return s
}

// CPUUsed returns the CPU drawn by every outfit.
func (l *Loadout) CPUUsed() float64 {
	var n float64
	for _, o := range l.Outfits {
		n += o.CPU
	}
	return n
}

// Add equips o if the CPU left after o still covers every outfit.
func (l *Loadout) Add(o Outfit) error {
	next := &Loadout{Class: l.Class, Outfits: append(l.Outfits[:len(l.Outfits):len(l.Outfits)], o)}
	if next.CPUUsed() > next.Attributes().CPU {
		return fmt.Errorf("equipping %s: %w", o.Name, ErrCPU)
	}
	l.Outfits = next.Outfits
	return nil
}

// Remove unequips the first outfit called name.
func (l *Loadout) Remove(name string) bool {
	for i, o := range l.Outfits {
		if o.Name == name {
			l.Outfits = append(l.Outfits[:i], l.Outfits[i+1:]...)
			return true
		}
	}
	return false
}

// Base delays in seconds before stats apply.
const (
	baseJumpDelay = 5.0
	baseLandDelay = 2.0
)

// Attributes are the effective ship values the flight model reads.
type Attributes struct {
	Speed     float64
	Thrust    float64
	Turn      float64
	TurnAccel float64

	Armour      float64
	ArmourRegen float64
	Shield      float64
	ShieldRegen float64
	Energy      float64
	EnergyRegen float64

	CPU   float64
	Cargo float64

	JumpDelay float64
	LandDelay float64
	// TimeSpeedup scales the passage of time while flying.
	TimeSpeedup float64

	Detect        float64
	InstantJump   bool
	ReverseThrust bool
}

// Attributes multiplies the class values by the aggregate and adds the
// flat stats.
func (l *Loadout) Attributes() Attributes {
	s := l.Stats()
	c := l.Class
	a := Attributes{
		Speed:     c.Speed * s.SpeedMod,
		Thrust:    c.Thrust * s.ThrustMod,
		Turn:      c.Turn * s.TurnMod,
		TurnAccel: c.TurnAccel * s.TurnMod,

		Armour:      (c.Armour + s.ArmourFlat) * s.ArmourMod,
		ArmourRegen: s.ArmourRegenFlat * s.ArmourRegenMod,
		Shield:      (c.Shield + s.ShieldFlat) * s.ShieldMod,
		ShieldRegen: (c.ShieldRegen + s.ShieldRegenFlat) * s.ShieldRegenMod,
		Energy:      (c.Energy + s.EnergyFlat) * s.EnergyMod,
		EnergyRegen: (c.EnergyRegen + s.EnergyRegenFlat) * s.EnergyRegenMod,

		CPU:   c.CPU*s.CPUMod + s.CPUMax,
		Cargo: c.Cargo * s.CargoMod,

		JumpDelay:   baseJumpDelay * s.JumpDelay,
		LandDelay:   baseLandDelay * s.LandDelay,
		TimeSpeedup: s.TimeSpeedup,

		Detect:        s.EWDetect,
		InstantJump:   s.InstantJump,
		ReverseThrust: s.ReverseThrust,
	}
	if a.InstantJump {
		a.JumpDelay = 0
	}
	return a
}
