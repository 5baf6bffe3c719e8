package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// ShipClass holds the base attributes of a hull before outfits apply.
type ShipClass struct {
	Name string

	// Speed is the top speed in units per second.
	Speed float64
	// Thrust is the forward acceleration in units per second².
	Thrust float64
	// Turn is the top turn rate in radians per second.
	Turn float64
	// TurnAccel is how fast the turn rate builds up.
	TurnAccel float64

	Armour float64
	Shield float64
	Energy float64
	// Regen values are per second.
	ShieldRegen float64
	EnergyRegen float64

	CPU    float64
	Cargo  float64
	Radius float64
	Color  color.RGBA
}

var shipClasses = []ShipClass{
	{
		Name:        "Shuttle",
		Speed:       180,
		Thrust:      220,
		Turn:        2.6,
		TurnAccel:   10,
		Armour:      40,
		Shield:      30,
		Energy:      200,
		ShieldRegen: 2,
		EnergyRegen: 8,
		CPU:         8,
		Cargo:       20,
		Radius:      12,
		Color:       colornames.Lightsteelblue,
	},
	{
		Name:        "Courier",
		Speed:       260,
		Thrust:      300,
		Turn:        3.2,
		TurnAccel:   12,
		Armour:      60,
		Shield:      80,
		Energy:      400,
		ShieldRegen: 4,
		EnergyRegen: 12,
		CPU:         14,
		Cargo:       40,
		Radius:      15,
		Color:       colornames.Limegreen,
	},
	{
		Name:        "Corvette",
		Speed:       220,
		Thrust:      240,
		Turn:        2.2,
		TurnAccel:   8,
		Armour:      180,
		Shield:      150,
		Energy:      600,
		ShieldRegen: 6,
		EnergyRegen: 15,
		CPU:         30,
		Cargo:       15,
		Radius:      22,
		Color:       colornames.Orangered,
	},
}

// ShipClassByName returns the class called name.
func ShipClassByName(name string) (ShipClass, bool) {
	for _, c := range shipClasses {
		if c.Name == name {
			return c, true
		}
	}
	return ShipClass{}, false
}

// ShipClasses returns every known class.
func ShipClasses() []ShipClass {
	return append([]ShipClass(nil), shipClasses...)
}
