package input

import "time"

// DoubleClick remembers the last clicked entity by handle.
type DoubleClick struct {
	// Threshold is the double-click window. Zero or less means every click
	// counts as a double-click.
	Threshold time.Duration

	last  Ref
	at    time.Time
	valid bool
}

// IsDouble reports whether clicking ref at now completes a double-click.
// exists may be nil; when given, a remembered entity that no longer exists
// never matches.
func (d *DoubleClick) IsDouble(ref Ref, now time.Time, exists func(Ref) bool) bool {
	if d.Threshold <= 0 {
		return true
	}
	if !d.valid || d.last != ref {
		return false
	}
	if exists != nil && !exists(ref) {
		d.valid = false
		return false
	}
	return now.Sub(d.at) <= d.Threshold
}

// Clicked records ref as the last clicked entity.
func (d *DoubleClick) Clicked(ref Ref, now time.Time) {
	if d.Threshold <= 0 {
		return
	}
	d.last = ref
	d.at = now
	d.valid = true
}

// Forget drops ref if it is the remembered entity.
func (d *DoubleClick) Forget(ref Ref) {
	if d.valid && d.last == ref {
		d.valid = false
	}
}
