package input

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnknownAction is returned for action names outside the action table.
var ErrUnknownAction = errors.New("unknown action")

// Registry holds one binding per action. The table has a fixed size and is
// only ever mutated in place.
type Registry struct {
	binds [NumActions]Binding
	log   *slog.Logger
}

// NewRegistry returns a registry with every action unbound and enabled.
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	r := &Registry{log: log.With("component", "keybinds")}
	r.Reset()
	return r
}

// Reset unbinds every action.
func (r *Registry) Reset() {
	for i := range r.binds {
		r.binds[i] = Binding{Kind: KindUnbound, Key: KeyUnknown, Mod: ModNone}
	}
}

func (r *Registry) lookup(name string) (Action, error) {
	a, ok := ActionFromName(name)
	if !ok {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// Set rebinds the named action, overwriting any previous binding. The enabled
// flag is left as it was.
func (r *Registry) Set(name string, kind Kind, key Key, mod Mod) error {
	a, err := r.lookup(name)
	if err != nil {
		r.log.Warn("unable to set keybinding, that command doesn't exist", "action", name)
		return err
	}
	r.SetAction(a, kind, key, mod)
	return nil
}

// SetAction is Set for a known action.
func (r *Registry) SetAction(a Action, kind Kind, key Key, mod Mod) {
	if !a.Valid() {
		return
	}
	b := &r.binds[a]
	b.Kind = kind
	b.Key = key
	b.Mod = mod
}

// Get returns the binding of the named action. On a miss it returns
// KeyUnknown and ErrUnknownAction.
func (r *Registry) Get(name string) (Key, Kind, Mod, error) {
	a, err := r.lookup(name)
	if err != nil {
		r.log.Warn("unable to get keybinding, that command doesn't exist", "action", name)
		return KeyUnknown, KindUnbound, ModNone, err
	}
	b := r.binds[a]
	return b.Key, b.Kind, b.Mod, nil
}

// Binding returns the binding of a.
func (r *Registry) Binding(a Action) Binding {
	if !a.Valid() {
		return Binding{Key: KeyUnknown}
	}
	return r.binds[a]
}

// FindConflict returns the first action already bound to the given source.
// Keyboard bindings only conflict when the masks are equal or either one is
// ModAny; other kinds ignore modifiers.
func (r *Registry) FindConflict(kind Kind, key Key, mod Mod) (string, bool) {
	if kind == KindUnbound {
		return "", false
	}
	for i := range r.binds {
		b := &r.binds[i]
		if b.Kind != kind || b.Key != key {
			continue
		}
		if kind == KindKeyboard && b.Mod != ModAny && mod != ModAny && b.Mod != mod {
			continue
		}
		return Action(i).String(), true
	}
	return "", false
}

// EnableAll enables every binding.
func (r *Registry) EnableAll() {
	for i := range r.binds {
		r.binds[i].Disabled = false
	}
}

// DisableAll disables every binding. Releases still go through.
func (r *Registry) DisableAll() {
	for i := range r.binds {
		r.binds[i].Disabled = true
	}
}

// SetEnabled toggles a single binding.
func (r *Registry) SetEnabled(name string, enabled bool) error {
	a, err := r.lookup(name)
	if err != nil {
		r.log.Warn("unable to toggle keybinding, that command doesn't exist", "action", name)
		return err
	}
	r.binds[a].Disabled = !enabled
	return nil
}

// Description returns the player-facing description of the named action, or
// "" and a warning if the name is unknown.
func (r *Registry) Description(name string) string {
	a, err := r.lookup(name)
	if err != nil {
		r.log.Warn("unable to get keybinding description, that command doesn't exist", "action", name)
		return ""
	}
	return a.Description()
}

// DisplayName returns the player-facing title of the named action.
func (r *Registry) DisplayName(name string) string {
	a, err := r.lookup(name)
	if err != nil {
		r.log.Warn("unable to get keybinding name, that command doesn't exist", "action", name)
		return ""
	}
	return a.DisplayName()
}

// Display renders the current binding of name for menus, e.g. "Ctrl + T" or
// "joy hat 0 up".
func (r *Registry) Display(name string, namer KeyNamer) string {
	key, kind, mod, err := r.Get(name)
	if err != nil {
		return ""
	}
	switch kind {
	case KindKeyboard:
		keyName := fmt.Sprintf("key %d", key)
		if namer != nil {
			keyName = namer.KeyName(key)
		}
		if mod != ModNone && mod != ModAny {
			return mod.String() + " + " + keyName
		}
		return keyName
	case KindJoyButton:
		return fmt.Sprintf("joy button %d", key)
	case KindJoyHatUp:
		return fmt.Sprintf("joy hat %d up", key)
	case KindJoyHatDown:
		return fmt.Sprintf("joy hat %d down", key)
	case KindJoyHatLeft:
		return fmt.Sprintf("joy hat %d left", key)
	case KindJoyHatRight:
		return fmt.Sprintf("joy hat %d right", key)
	case KindJoyAxisPos:
		return fmt.Sprintf("joy axis %d+", key)
	case KindJoyAxisNeg:
		return fmt.Sprintf("joy axis %d-", key)
	default:
		return "Not bound"
	}
}
