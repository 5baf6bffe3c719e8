package input

import (
	"errors"
	"testing"
)

func TestActionNamesRoundTrip(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Actions() {
		name := a.String()
		if seen[name] {
			t.Errorf("duplicate action name %q", name)
		}
		seen[name] = true

		got, ok := ActionFromName(name)
		if !ok || got != a {
			t.Errorf("ActionFromName(%q) = %v, %v; want %v", name, got, ok, a)
		}
		if a.DisplayName() == "" || a.Description() == "" {
			t.Errorf("action %q has no display texts", name)
		}
	}
	if _, ok := ActionFromName("fire_all"); ok {
		t.Error("ActionFromName(fire_all) should miss")
	}
}

func TestWeaponSetSlots(t *testing.T) {
	tests := []struct {
		action Action
		slot   int
		ok     bool
	}{
		{ActionWeaponSet1, 0, true},
		{ActionWeaponSet5, 4, true},
		{ActionWeaponSet9, 8, true},
		{ActionWeaponSet0, 9, true},
		{ActionSecondary, 0, false},
		{ActionEscortTargetNext, 0, false},
	}
	for _, tt := range tests {
		slot, ok := tt.action.WeaponSet()
		if slot != tt.slot || ok != tt.ok {
			t.Errorf("%v.WeaponSet() = %d, %v; want %d, %v", tt.action, slot, ok, tt.slot, tt.ok)
		}
	}
}

func TestRegistrySetGetRoundTrip(t *testing.T) {
	kinds := []Kind{KindKeyboard, KindJoyButton, KindJoyHatUp, KindJoyHatDown, KindJoyHatLeft, KindJoyHatRight, KindJoyAxisPos, KindJoyAxisNeg, KindUnbound}
	mods := []Mod{ModNone, ModCtrl, ModShift | ModAlt, ModMeta, ModAny}

	r := NewRegistry(quietLog())
	for i, a := range Actions() {
		kind := kinds[i%len(kinds)]
		key := Key(i * 3)
		mod := mods[i%len(mods)]

		if err := r.Set(a.String(), kind, key, mod); err != nil {
			t.Fatalf("Set(%q) error = %v", a, err)
		}
		gotKey, gotKind, gotMod, err := r.Get(a.String())
		if err != nil {
			t.Fatalf("Get(%q) error = %v", a, err)
		}
		if gotKey != key || gotKind != kind || gotMod != mod {
			t.Errorf("Get(%q) = (%v, %v, %v), want (%v, %v, %v)", a, gotKey, gotKind, gotMod, key, kind, mod)
		}
	}
}

func TestRegistryUnknownName(t *testing.T) {
	r := NewRegistry(quietLog())
	r.SetAction(ActionAccel, KindKeyboard, 7, ModAny)
	before := r.binds

	if err := r.Set("warp_drive", KindKeyboard, 1, ModNone); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Set() error = %v, want ErrUnknownAction", err)
	}
	if err := r.SetEnabled("warp_drive", false); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("SetEnabled() error = %v, want ErrUnknownAction", err)
	}
	key, kind, _, err := r.Get("warp_drive")
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Get() error = %v, want ErrUnknownAction", err)
	}
	if key != KeyUnknown || kind != KindUnbound {
		t.Errorf("Get() = (%v, %v), want (KeyUnknown, Unbound)", key, kind)
	}
	if r.Description("warp_drive") != "" || r.DisplayName("warp_drive") != "" {
		t.Error("texts for unknown action should be empty")
	}
	if r.binds != before {
		t.Error("registry changed after operations on an unknown name")
	}
}

func TestFindConflict(t *testing.T) {
	r := NewRegistry(quietLog())
	r.SetAction(ActionTargetNext, KindKeyboard, 10, ModNone)
	r.SetAction(ActionPrimary, KindKeyboard, 20, ModAny)
	r.SetAction(ActionSecondary, KindJoyButton, 3, ModNone)
	r.SetAction(ActionAccel, KindJoyAxisPos, 1, ModNone)

	tests := []struct {
		name  string
		kind  Kind
		key   Key
		mod   Mod
		want  string
		found bool
	}{
		{"same key and mask", KindKeyboard, 10, ModNone, "target_next", true},
		{"same key other mask", KindKeyboard, 10, ModCtrl, "", false},
		{"query with any", KindKeyboard, 10, ModAny, "target_next", true},
		{"binding with any", KindKeyboard, 20, ModShift, "primary", true},
		{"button ignores mod", KindJoyButton, 3, ModCtrl, "secondary", true},
		{"axis ignores mod", KindJoyAxisPos, 1, ModAlt, "accel", true},
		{"other axis half", KindJoyAxisNeg, 1, ModNone, "", false},
		{"free key", KindKeyboard, 99, ModNone, "", false},
		{"unbound never conflicts", KindUnbound, KeyUnknown, ModNone, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := r.FindConflict(tt.kind, tt.key, tt.mod)
			if got != tt.want || found != tt.found {
				t.Errorf("FindConflict() = %q, %v; want %q, %v", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestTranslateMod(t *testing.T) {
	tests := []struct {
		raw  RawMod
		want Mod
	}{
		{0, ModNone},
		{RawShiftLeft, ModShift},
		{RawShiftRight, ModShift},
		{RawShiftLeft | RawShiftRight, ModShift},
		{RawCtrlRight, ModCtrl},
		{RawAltLeft | RawMetaRight, ModAlt | ModMeta},
		{RawCtrlLeft | RawShiftRight | RawAltRight | RawMetaLeft, ModCtrl | ModShift | ModAlt | ModMeta},
	}
	for _, tt := range tests {
		if got := TranslateMod(tt.raw); got != tt.want {
			t.Errorf("TranslateMod(%b) = %v, want %v", tt.raw, got, tt.want)
		}
		if TranslateMod(tt.raw) == ModAny {
			t.Errorf("TranslateMod(%b) produced ModAny", tt.raw)
		}
	}
}

func TestModParseString(t *testing.T) {
	for _, m := range []Mod{ModNone, ModCtrl, ModShift, ModAlt, ModMeta, ModAny, ModCtrl | ModShift} {
		got, err := ParseMod(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMod(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseMod("hyper"); err == nil {
		t.Error("ParseMod(hyper) should fail")
	}
}

func TestEnableDisable(t *testing.T) {
	r := NewRegistry(quietLog())
	r.DisableAll()
	for _, a := range Actions() {
		if !r.Binding(a).Disabled {
			t.Fatalf("%v still enabled after DisableAll", a)
		}
	}
	if err := r.SetEnabled("accel", true); err != nil {
		t.Fatal(err)
	}
	if r.Binding(ActionAccel).Disabled {
		t.Error("accel should be enabled")
	}
	r.EnableAll()
	if r.Binding(ActionPause).Disabled {
		t.Error("pause should be enabled after EnableAll")
	}
}

func TestDisplay(t *testing.T) {
	namer := newNamer()
	r := NewRegistry(quietLog())
	r.SetAction(ActionTargetNext, KindKeyboard, namer.key("T"), ModCtrl)
	r.SetAction(ActionPrimary, KindKeyboard, namer.key("Space"), ModAny)
	r.SetAction(ActionSecondary, KindJoyButton, 3, ModNone)
	r.SetAction(ActionLeft, KindJoyHatLeft, 0, ModNone)
	r.SetAction(ActionAccel, KindJoyAxisPos, 1, ModNone)
	r.SetAction(ActionReverse, KindJoyAxisNeg, 1, ModNone)

	tests := []struct {
		action string
		want   string
	}{
		{"target_next", "Ctrl + T"},
		{"primary", "Space"},
		{"secondary", "joy button 3"},
		{"left", "joy hat 0 left"},
		{"accel", "joy axis 1+"},
		{"reverse", "joy axis 1-"},
		{"hail", "Not bound"},
	}
	for _, tt := range tests {
		if got := r.Display(tt.action, namer); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestApplyLayout(t *testing.T) {
	namer := newNamer()
	r := NewRegistry(quietLog())
	r.SetAction(ActionEscortTargetNext, KindJoyButton, 4, ModNone)

	if err := r.ApplyLayout(LayoutWASD, namer); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		action string
		key    string
		mod    Mod
	}{
		{"accel", "W", ModAny},
		{"left", "A", ModAny},
		{"face", "Q", ModNone},
		{"target_clear", "C", ModAny},
		{"weapset0", "Digit0", ModAny},
		{"switchtab0", "Digit0", ModAlt},
	}
	for _, tt := range tests {
		key, kind, mod, err := r.Get(tt.action)
		if err != nil {
			t.Fatal(err)
		}
		if kind != KindKeyboard || key != namer.key(tt.key) || mod != tt.mod {
			t.Errorf("%s = (%v, %v, %v), want keyboard %s %v", tt.action, kind, namer.KeyName(key), mod, tt.key, tt.mod)
		}
	}
	if b := r.Binding(ActionEscortTargetNext); !b.Unbound() {
		t.Errorf("escort_target_next = %+v, want unbound after layout reset", b)
	}

	if err := r.ApplyLayout(LayoutArrows, namer); err != nil {
		t.Fatal(err)
	}
	if key, _, _, _ := r.Get("accel"); key != namer.key("ArrowUp") {
		t.Errorf("arrows accel = %s, want ArrowUp", namer.KeyName(key))
	}
	if err := r.ApplyLayout("dvorak", namer); err == nil {
		t.Error("ApplyLayout(dvorak) should fail")
	}
}
