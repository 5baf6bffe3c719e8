package input

import "time"

// Settings are the player-tunable input timings.
type Settings struct {
	// RepeatDelay is how long a key is held before it starts repeating. Zero
	// disables repeating.
	RepeatDelay time.Duration
	// RepeatFreq is the interval between repeats.
	RepeatFreq time.Duration
	// AfterburnSens is the double-tap window on accelerate. Zero disables
	// the afterburner shortcut.
	AfterburnSens time.Duration
	// DoubleClick is the mouse double-click window. Zero or less makes
	// every click a double-click.
	DoubleClick time.Duration
}

// DefaultSettings returns the stock timings.
func DefaultSettings() Settings {
	return Settings{
		RepeatDelay:   300 * time.Millisecond,
		RepeatFreq:    30 * time.Millisecond,
		AfterburnSens: 250 * time.Millisecond,
		DoubleClick:   500 * time.Millisecond,
	}
}

// MouseHideDelay is how long the cursor stays visible after the last mouse
// event.
const MouseHideDelay = 3 * time.Second
