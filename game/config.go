package game

import "skyhaul/space"

// Config holds the game setup that is not player-tunable.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// Grid sizes the spatial partition of the system
	Grid space.Config

	// Class is the player's starting ship class
	Class string

	// Outfits are the names of the outfits the player starts with
	Outfits []string

	// ScreenshotDir is where screenshots are written
	ScreenshotDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   1024,
		ScreenHeight:  768,
		Grid:          space.DefaultConfig(),
		Class:         "Courier",
		Outfits:       []string{"Engine Reroute", "Shield Capacitor"},
		ScreenshotDir: "screenshots",
	}
}
