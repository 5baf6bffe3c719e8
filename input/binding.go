package input

import (
	"fmt"
	"strings"
)

// Key is a platform key, button, hat or axis number. Its meaning depends on
// the Kind it is bound with.
type Key int

// KeyUnknown is returned when a lookup misses.
const KeyUnknown Key = -1

// Kind is the input source family of a binding.
type Kind int

const (
	KindUnbound Kind = iota
	KindKeyboard
	KindJoyButton
	KindJoyHatUp
	KindJoyHatDown
	KindJoyHatLeft
	KindJoyHatRight
	KindJoyAxisPos
	KindJoyAxisNeg
)

var kindNames = [...]string{
	KindUnbound:     "null",
	KindKeyboard:    "keyboard",
	KindJoyButton:   "jbutton",
	KindJoyHatUp:    "jhat_up",
	KindJoyHatDown:  "jhat_down",
	KindJoyHatLeft:  "jhat_left",
	KindJoyHatRight: "jhat_right",
	KindJoyAxisPos:  "jaxispos",
	KindJoyAxisNeg:  "jaxisneg",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return KindUnbound, fmt.Errorf("unknown binding type %q", s)
}

// Mod is the canonical modifier mask stored in bindings.
type Mod uint8

const (
	ModNone  Mod = 0
	ModCtrl  Mod = 1 << 0
	ModShift Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModMeta  Mod = 1 << 3
	// ModAny matches every modifier state. TranslateMod never produces it.
	ModAny Mod = 0xFF
)

func (m Mod) String() string {
	switch m {
	case ModNone:
		return "None"
	case ModCtrl:
		return "Ctrl"
	case ModShift:
		return "Shift"
	case ModAlt:
		return "Alt"
	case ModMeta:
		return "Meta"
	case ModAny:
		return "Any"
	}
	var parts []string
	for _, p := range []struct {
		bit  Mod
		name string
	}{{ModCtrl, "Ctrl"}, {ModShift, "Shift"}, {ModAlt, "Alt"}, {ModMeta, "Meta"}} {
		if m&p.bit != 0 {
			parts = append(parts, p.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "+")
}

// ParseMod accepts the names produced by Mod.String, joined with '+'.
func ParseMod(s string) (Mod, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none":
		return ModNone, nil
	case "any":
		return ModAny, nil
	}
	var m Mod
	for _, part := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "ctrl":
			m |= ModCtrl
		case "shift":
			m |= ModShift
		case "alt":
			m |= ModAlt
		case "meta":
			m |= ModMeta
		default:
			return ModNone, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return m, nil
}

// RawMod is the modifier state as reported by the platform, with separate
// left and right bits.
type RawMod uint16

const (
	RawShiftLeft RawMod = 1 << iota
	RawShiftRight
	RawCtrlLeft
	RawCtrlRight
	RawAltLeft
	RawAltRight
	RawMetaLeft
	RawMetaRight
)

// TranslateMod collapses left/right platform modifiers into a Mod.
func TranslateMod(raw RawMod) Mod {
	var m Mod
	if raw&(RawShiftLeft|RawShiftRight) != 0 {
		m |= ModShift
	}
	if raw&(RawCtrlLeft|RawCtrlRight) != 0 {
		m |= ModCtrl
	}
	if raw&(RawAltLeft|RawAltRight) != 0 {
		m |= ModAlt
	}
	if raw&(RawMetaLeft|RawMetaRight) != 0 {
		m |= ModMeta
	}
	return m
}

// KeyNamer converts between keyboard key names and platform keys.
type KeyNamer interface {
	KeyCode(name string) (Key, bool)
	KeyName(k Key) string
}

// Binding is the current input source of one action.
type Binding struct {
	Kind     Kind
	Key      Key
	Mod      Mod
	Disabled bool
}

// Unbound reports whether the binding has no source.
func (b Binding) Unbound() bool {
	return b.Kind == KindUnbound
}
