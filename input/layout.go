package input

import "fmt"

// Names of the built-in keyboard layouts.
const (
	LayoutArrows = "arrows"
	LayoutWASD   = "wasd"
)

type preset struct {
	action Action
	key    string // "" leaves the action unbound
	mod    Mod
}

// common entries shared by both layouts; the layout-specific movement and
// targeting entries come first.
var commonPreset = []preset{
	{ActionPrimary, "Space", ModAny},
	{ActionBoard, "B", ModNone},
	{ActionSecondary, "ShiftLeft", ModAny},
	{ActionWeaponSet1, "Digit1", ModAny},
	{ActionWeaponSet2, "Digit2", ModAny},
	{ActionWeaponSet3, "Digit3", ModAny},
	{ActionWeaponSet4, "Digit4", ModAny},
	{ActionWeaponSet5, "Digit5", ModAny},
	{ActionWeaponSet6, "Digit6", ModAny},
	{ActionWeaponSet7, "Digit7", ModAny},
	{ActionWeaponSet8, "Digit8", ModAny},
	{ActionWeaponSet9, "Digit9", ModAny},
	{ActionWeaponSet0, "Digit0", ModAny},
	{ActionEscortTargetNext, "", ModNone},
	{ActionEscortTargetPrev, "", ModNone},
	{ActionEscortAttack, "End", ModAny},
	{ActionEscortHold, "Insert", ModAny},
	{ActionEscortReturn, "Delete", ModAny},
	{ActionEscortClear, "Home", ModAny},
	{ActionAutonav, "J", ModCtrl},
	{ActionTargetPlanet, "P", ModNone},
	{ActionLand, "L", ModNone},
	{ActionTargetHyperspace, "H", ModNone},
	{ActionStarmap, "M", ModNone},
	{ActionJump, "J", ModNone},
	{ActionOverlay, "Tab", ModAny},
	{ActionMouseFly, "X", ModCtrl},
	{ActionAutobrake, "S", ModCtrl},
	{ActionLogUp, "PageUp", ModAny},
	{ActionLogDown, "PageDown", ModAny},
	{ActionHail, "Y", ModNone},
	{ActionAutohail, "Y", ModCtrl},
	{ActionRadarZoomIn, "NumpadAdd", ModAny},
	{ActionRadarZoomOut, "NumpadSubtract", ModAny},
	{ActionScreenshot, "NumpadMultiply", ModAny},
	{ActionToggleFullscreen, "F11", ModAny},
	{ActionPause, "Pause", ModAny},
	{ActionSpeed, "Backquote", ModAny},
	{ActionMenu, "Escape", ModAny},
	{ActionInfo, "I", ModNone},
	{ActionConsole, "F2", ModAny},
	{ActionSwitchTab1, "Digit1", ModAlt},
	{ActionSwitchTab2, "Digit2", ModAlt},
	{ActionSwitchTab3, "Digit3", ModAlt},
	{ActionSwitchTab4, "Digit4", ModAlt},
	{ActionSwitchTab5, "Digit5", ModAlt},
	{ActionSwitchTab6, "Digit6", ModAlt},
	{ActionSwitchTab7, "Digit7", ModAlt},
	{ActionSwitchTab8, "Digit8", ModAlt},
	{ActionSwitchTab9, "Digit9", ModAlt},
	{ActionSwitchTab0, "Digit0", ModAlt},
}

var layouts = map[string][]preset{
	LayoutArrows: {
		{ActionAccel, "ArrowUp", ModAny},
		{ActionLeft, "ArrowLeft", ModAny},
		{ActionRight, "ArrowRight", ModAny},
		{ActionReverse, "ArrowDown", ModAny},
		{ActionTargetNext, "T", ModNone},
		{ActionTargetPrev, "T", ModCtrl},
		{ActionTargetNearest, "N", ModNone},
		{ActionTargetNextHostile, "R", ModCtrl},
		{ActionTargetPrevHostile, "", ModNone},
		{ActionTargetHostile, "R", ModNone},
		{ActionTargetClear, "Backspace", ModAny},
		{ActionFace, "A", ModAny},
	},
	LayoutWASD: {
		{ActionAccel, "W", ModAny},
		{ActionLeft, "A", ModAny},
		{ActionRight, "D", ModAny},
		{ActionReverse, "S", ModAny},
		{ActionTargetNext, "E", ModCtrl},
		{ActionTargetPrev, "Q", ModCtrl},
		{ActionTargetNearest, "T", ModAny},
		{ActionTargetNextHostile, "", ModNone},
		{ActionTargetPrevHostile, "", ModNone},
		{ActionTargetHostile, "R", ModAny},
		{ActionTargetClear, "C", ModAny},
		{ActionFace, "Q", ModNone},
	},
}

// ApplyLayout unbinds everything and installs the named keyboard layout.
// Keys the namer cannot resolve are left unbound with a warning.
func (r *Registry) ApplyLayout(layout string, namer KeyNamer) error {
	entries, ok := layouts[layout]
	if !ok {
		return fmt.Errorf("unknown keyboard layout %q", layout)
	}
	r.Reset()
	for _, list := range [][]preset{entries, commonPreset} {
		for _, p := range list {
			if p.key == "" {
				continue
			}
			key, ok := namer.KeyCode(p.key)
			if !ok {
				r.log.Warn("keyname doesn't match any key", "key", p.key, "action", p.action)
				continue
			}
			r.SetAction(p.action, KindKeyboard, key, p.mod)
		}
	}
	return nil
}
