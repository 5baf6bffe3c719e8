package input

import "math"

// Filter turns raw keyboard and joystick events into signals by scanning the
// registry. Every matching binding fires.
type Filter struct {
	reg *Registry
	// last axis value per axis, for releasing across a zero crossing
	axes map[Key]int
}

// NewFilter returns a filter reading reg.
func NewFilter(reg *Registry) *Filter {
	return &Filter{reg: reg, axes: make(map[Key]int)}
}

// AppendSignals appends the signals produced by ev to dst and returns the
// extended slice. Mouse events produce nothing.
func (f *Filter) AppendSignals(dst []Signal, ev RawEvent) []Signal {
	switch ev.Type {
	case EventKeyDown, EventKeyUp:
		if ev.Repeat {
			return dst
		}
		return f.keyboard(dst, ev.Key, TranslateMod(ev.Mod), ev.Type == EventKeyDown)
	case EventJoyAxis:
		return f.axis(dst, ev.Key, ev.Value)
	case EventJoyButtonDown, EventJoyButtonUp:
		return f.button(dst, ev.Key, ev.Type == EventJoyButtonDown)
	case EventJoyHat:
		return f.hat(dst, ev.Key, ev.Value)
	}
	return dst
}

func (f *Filter) keyboard(dst []Signal, key Key, mod Mod, press bool) []Signal {
	for i := range f.reg.binds {
		b := &f.reg.binds[i]
		if press && b.Disabled {
			continue
		}
		if b.Kind != KindKeyboard || b.Key != key {
			continue
		}
		if b.Mod == mod || b.Mod == ModAny || !press {
			dst = append(dst, Signal{Action: Action(i), Press: press, Abs: -1})
		}
	}
	return dst
}

func (f *Filter) axis(dst []Signal, axis Key, value int) []Signal {
	last := f.axes[axis]
	f.axes[axis] = value
	abs := math.Abs(float64(value)) / AxisMax

	for i := range f.reg.binds {
		b := &f.reg.binds[i]
		if b.Key != axis {
			continue
		}
		switch b.Kind {
		case KindJoyAxisPos:
			switch {
			case value > 0:
				if !b.Disabled {
					dst = append(dst, Signal{Action: Action(i), Press: true, Abs: abs})
				}
			case value == 0 || last > 0:
				dst = append(dst, Signal{Action: Action(i), Press: false, Abs: 0})
			}
		case KindJoyAxisNeg:
			switch {
			case value < 0:
				if !b.Disabled {
					dst = append(dst, Signal{Action: Action(i), Press: true, Abs: abs})
				}
			case value == 0 || last < 0:
				dst = append(dst, Signal{Action: Action(i), Press: false, Abs: 0})
			}
		}
	}
	return dst
}

func (f *Filter) button(dst []Signal, button Key, press bool) []Signal {
	for i := range f.reg.binds {
		b := &f.reg.binds[i]
		if press && b.Disabled {
			continue
		}
		if b.Kind == KindJoyButton && b.Key == button {
			dst = append(dst, Signal{Action: Action(i), Press: press, Abs: -1})
		}
	}
	return dst
}

func (f *Filter) hat(dst []Signal, hat Key, value int) []Signal {
	for i := range f.reg.binds {
		b := &f.reg.binds[i]
		if b.Key != hat {
			continue
		}
		var bit int
		switch b.Kind {
		case KindJoyHatUp:
			bit = HatUp
		case KindJoyHatDown:
			bit = HatDown
		case KindJoyHatLeft:
			bit = HatLeft
		case KindJoyHatRight:
			bit = HatRight
		default:
			continue
		}
		press := value&bit != 0
		if press && b.Disabled {
			continue
		}
		dst = append(dst, Signal{Action: Action(i), Press: press, Abs: -1})
	}
	return dst
}
