package input

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for keybind files that are neither YAML nor
// TOML.
var ErrUnknownFormat = errors.New("unknown keybind file format")

// KeybindFile is the on-disk keybind document.
type KeybindFile struct {
	Bindings []KeybindEntry `yaml:"bindings" toml:"bindings"`
}

// KeybindEntry is one persisted binding. Key is a key name for keyboard
// bindings and a number for joystick bindings.
type KeybindEntry struct {
	Action string `yaml:"action" toml:"action"`
	Type   string `yaml:"type" toml:"type"`
	Key    string `yaml:"key,omitempty" toml:"key,omitempty"`
	Mod    string `yaml:"mod,omitempty" toml:"mod,omitempty"`
}

// BindingSpec is a fully resolved binding ready to install.
type BindingSpec struct {
	Action Action
	Kind   Kind
	Key    Key
	Mod    Mod
}

// ApplyBindings installs specs into reg and returns how many were applied.
func ApplyBindings(reg *Registry, specs []BindingSpec) int {
	n := 0
	for _, s := range specs {
		if !s.Action.Valid() {
			continue
		}
		reg.SetAction(s.Action, s.Kind, s.Key, s.Mod)
		n++
	}
	return n
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return ""
}

// ReadKeybinds reads and resolves a keybind file. Entries naming an unknown
// action, type or key are logged and skipped.
func ReadKeybinds(path string, namer KeyNamer, log *slog.Logger) ([]BindingSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	specs, err := ParseKeybinds(data, formatOf(path), namer, log)
	if err != nil {
		return nil, fmt.Errorf("loading keybinds %s: %w", path, err)
	}
	return specs, nil
}

// ParseKeybinds decodes a "yaml" or "toml" keybind document.
func ParseKeybinds(data []byte, format string, namer KeyNamer, log *slog.Logger) ([]BindingSpec, error) {
	if log == nil {
		log = slog.Default()
	}
	var file KeybindFile
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case "toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownFormat
	}

	specs := make([]BindingSpec, 0, len(file.Bindings))
	for _, e := range file.Bindings {
		spec, err := resolveEntry(e, namer)
		if err != nil {
			log.Warn("skipping keybind", "action", e.Action, "error", err)
			continue
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func resolveEntry(e KeybindEntry, namer KeyNamer) (BindingSpec, error) {
	a, ok := ActionFromName(e.Action)
	if !ok {
		return BindingSpec{}, fmt.Errorf("%w: %q", ErrUnknownAction, e.Action)
	}
	kind, err := ParseKind(e.Type)
	if err != nil {
		return BindingSpec{}, err
	}
	mod, err := ParseMod(e.Mod)
	if err != nil {
		return BindingSpec{}, err
	}

	spec := BindingSpec{Action: a, Kind: kind, Key: KeyUnknown, Mod: mod}
	switch kind {
	case KindUnbound:
	case KindKeyboard:
		if namer == nil {
			return BindingSpec{}, errors.New("no key namer for keyboard binding")
		}
		key, ok := namer.KeyCode(e.Key)
		if !ok {
			return BindingSpec{}, fmt.Errorf("keyname %q doesn't match any key", e.Key)
		}
		spec.Key = key
	default:
		n, err := strconv.Atoi(e.Key)
		if err != nil || n < 0 {
			return BindingSpec{}, fmt.Errorf("invalid joystick index %q", e.Key)
		}
		spec.Key = Key(n)
	}
	return spec, nil
}

// LoadKeybinds reads path and installs its bindings over the current ones.
func LoadKeybinds(path string, reg *Registry, namer KeyNamer) error {
	specs, err := ReadKeybinds(path, namer, reg.log)
	if err != nil {
		return err
	}
	n := ApplyBindings(reg, specs)
	reg.log.Info("keybinds loaded", "path", path, "bindings", n)
	return nil
}

// Export renders every binding of reg as persisted entries. Without a namer
// keyboard keys are written as "key N", which a later load reports as an
// unknown key name.
func (r *Registry) Export(namer KeyNamer) KeybindFile {
	var file KeybindFile
	for i := range r.binds {
		b := r.binds[i]
		e := KeybindEntry{Action: Action(i).String(), Type: b.Kind.String()}
		switch b.Kind {
		case KindUnbound:
		case KindKeyboard:
			e.Key = fmt.Sprintf("key %d", b.Key)
			if namer != nil {
				e.Key = namer.KeyName(b.Key)
			}
			e.Mod = b.Mod.String()
		default:
			e.Key = strconv.Itoa(int(b.Key))
			if b.Mod != ModNone {
				e.Mod = b.Mod.String()
			}
		}
		file.Bindings = append(file.Bindings, e)
	}
	return file
}

// SaveKeybinds writes every binding of reg to path in the format implied by
// its extension.
func SaveKeybinds(path string, reg *Registry, namer KeyNamer) error {
	file := reg.Export(namer)
	var (
		data []byte
		err  error
	)
	switch formatOf(path) {
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(file); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case "toml":
		data, err = toml.Marshal(file)
	default:
		return fmt.Errorf("saving keybinds %s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("saving keybinds %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}
