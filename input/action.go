package input

// Action identifies a bindable game command.
type Action int

// ActionNone is returned by lookups that fail.
const ActionNone Action = -1

// Movement, targeting, combat, escorts, navigation, communication and
// miscellaneous actions, in the order they are listed to the player.
const (
	ActionAccel Action = iota
	ActionLeft
	ActionRight
	ActionReverse

	ActionTargetNext
	ActionTargetPrev
	ActionTargetNearest
	ActionTargetNextHostile
	ActionTargetPrevHostile
	ActionTargetHostile
	ActionTargetClear

	ActionPrimary
	ActionFace
	ActionBoard

	ActionSecondary
	ActionWeaponSet1
	ActionWeaponSet2
	ActionWeaponSet3
	ActionWeaponSet4
	ActionWeaponSet5
	ActionWeaponSet6
	ActionWeaponSet7
	ActionWeaponSet8
	ActionWeaponSet9
	ActionWeaponSet0

	ActionEscortTargetNext
	ActionEscortTargetPrev
	ActionEscortAttack
	ActionEscortHold
	ActionEscortReturn
	ActionEscortClear

	ActionAutonav
	ActionTargetPlanet
	ActionLand
	ActionTargetHyperspace
	ActionStarmap
	ActionJump
	ActionOverlay
	ActionMouseFly
	ActionAutobrake

	ActionLogUp
	ActionLogDown
	ActionHail
	ActionAutohail

	ActionRadarZoomIn
	ActionRadarZoomOut
	ActionScreenshot
	ActionToggleFullscreen
	ActionPause
	ActionSpeed
	ActionMenu
	ActionInfo
	ActionConsole
	ActionSwitchTab1
	ActionSwitchTab2
	ActionSwitchTab3
	ActionSwitchTab4
	ActionSwitchTab5
	ActionSwitchTab6
	ActionSwitchTab7
	ActionSwitchTab8
	ActionSwitchTab9
	ActionSwitchTab0

	// NumActions is the size of the action table.
	NumActions
)

// actionInfo holds the stable name and the player-facing texts of an action.
type actionInfo struct {
	name        string
	display     string
	description string
}

var actionTable = [NumActions]actionInfo{
	ActionAccel:   {"accel", "Accelerate", "Makes your ship accelerate forward."},
	ActionLeft:    {"left", "Turn Left", "Makes your ship turn left."},
	ActionRight:   {"right", "Turn Right", "Makes your ship turn right."},
	ActionReverse: {"reverse", "Reverse", "Makes your ship face the direction you're moving from. Useful for braking."},

	ActionTargetNext:        {"target_next", "Target Next", "Cycles through ship targets."},
	ActionTargetPrev:        {"target_prev", "Target Previous", "Cycles backwards through ship targets."},
	ActionTargetNearest:     {"target_nearest", "Target Nearest", "Targets the nearest non-disabled ship."},
	ActionTargetNextHostile: {"target_next_hostile", "Target Next Hostile", "Cycles through hostile ship targets."},
	ActionTargetPrevHostile: {"target_prev_hostile", "Target Previous Hostile", "Cycles backwards through hostile ship targets."},
	ActionTargetHostile:     {"target_hostile", "Target Nearest Hostile", "Targets the nearest hostile ship."},
	ActionTargetClear:       {"target_clear", "Clear Target", "Clears the currently-targeted ship, planet or jump point."},

	ActionPrimary: {"primary", "Fire Primary Weapon", "Fires primary weapons."},
	ActionFace:    {"face", "Face Target", "Faces the targeted ship if one is targeted, otherwise faces targeted planet or jump point."},
	ActionBoard:   {"board", "Board Target", "Attempts to board the targeted ship."},

	ActionSecondary:  {"secondary", "Fire Secondary Weapon", "Fires secondary weapons."},
	ActionWeaponSet1: {"weapset1", "Weapon Set 1", "Activates weapon set 1."},
	ActionWeaponSet2: {"weapset2", "Weapon Set 2", "Activates weapon set 2."},
	ActionWeaponSet3: {"weapset3", "Weapon Set 3", "Activates weapon set 3."},
	ActionWeaponSet4: {"weapset4", "Weapon Set 4", "Activates weapon set 4."},
	ActionWeaponSet5: {"weapset5", "Weapon Set 5", "Activates weapon set 5."},
	ActionWeaponSet6: {"weapset6", "Weapon Set 6", "Activates weapon set 6."},
	ActionWeaponSet7: {"weapset7", "Weapon Set 7", "Activates weapon set 7."},
	ActionWeaponSet8: {"weapset8", "Weapon Set 8", "Activates weapon set 8."},
	ActionWeaponSet9: {"weapset9", "Weapon Set 9", "Activates weapon set 9."},
	ActionWeaponSet0: {"weapset0", "Weapon Set 0", "Activates weapon set 0."},

	ActionEscortTargetNext: {"escort_target_next", "Target Next Escort", "Cycles through your escorts."},
	ActionEscortTargetPrev: {"escort_target_prev", "Target Previous Escort", "Cycles backwards through your escorts."},
	ActionEscortAttack:     {"escort_attack", "Escort Attack Command", "Orders escorts to attack your target."},
	ActionEscortHold:       {"escort_hold", "Escort Hold Command", "Orders escorts to hold their positions."},
	ActionEscortReturn:     {"escort_return", "Escort Return Command", "Orders escorts to return to your ship hangars."},
	ActionEscortClear:      {"escort_clear", "Escort Clear Commands", "Clears your escorts of commands."},

	ActionAutonav:          {"autonav", "Autonavigation On", "Initializes the autonavigation system."},
	ActionTargetPlanet:     {"target_planet", "Target Planet", "Cycles through planet targets."},
	ActionLand:             {"land", "Land", "Attempts to land on the targeted planet or targets the nearest landable planet. Requests permission if necessary."},
	ActionTargetHyperspace: {"target_hyperspace", "Target Jumpgate", "Cycles through jump points."},
	ActionStarmap:          {"starmap", "Star Map", "Opens the star map."},
	ActionJump:             {"jump", "Initiate Jump", "Attempts to jump via a jump point."},
	ActionOverlay:          {"overlay", "Overlay Map", "Opens the in-system overlay map."},
	ActionMouseFly:         {"mousefly", "Mouse Flight", "Toggles mouse flying."},
	ActionAutobrake:        {"autobrake", "Autobrake", "Begins automatic braking or active cooldown, if stopped."},

	ActionLogUp:    {"log_up", "Log Scroll Up", "Scrolls the log upwards."},
	ActionLogDown:  {"log_down", "Log Scroll Down", "Scrolls the log downwards."},
	ActionHail:     {"hail", "Hail Target", "Attempts to initialize communication with the targeted ship."},
	ActionAutohail: {"autohail", "Autohail", "Automatically initialize communication with a ship that is hailing you."},

	ActionRadarZoomIn:      {"radar_zoom_in", "Radar Zoom In", "Zooms in on the radar."},
	ActionRadarZoomOut:     {"radar_zoom_out", "Radar Zoom Out", "Zooms out on the radar."},
	ActionScreenshot:       {"screenshot", "Screenshot", "Takes a screenshot."},
	ActionToggleFullscreen: {"toggle_fullscreen", "Toggle Fullscreen", "Toggles between windowed and fullscreen mode."},
	ActionPause:            {"pause", "Pause", "Pauses the game."},
	ActionSpeed:            {"speed", "Toggle Speed", "Toggles speed modifier."},
	ActionMenu:             {"menu", "Small Menu", "Opens the small in-game menu."},
	ActionInfo:             {"info", "Information Menu", "Opens the information menu."},
	ActionConsole:          {"console", "Lua Console", "Opens the Lua console."},
	ActionSwitchTab1:       {"switchtab1", "Switch Tab 1", "Switches to tab 1."},
	ActionSwitchTab2:       {"switchtab2", "Switch Tab 2", "Switches to tab 2."},
	ActionSwitchTab3:       {"switchtab3", "Switch Tab 3", "Switches to tab 3."},
	ActionSwitchTab4:       {"switchtab4", "Switch Tab 4", "Switches to tab 4."},
	ActionSwitchTab5:       {"switchtab5", "Switch Tab 5", "Switches to tab 5."},
	ActionSwitchTab6:       {"switchtab6", "Switch Tab 6", "Switches to tab 6."},
	ActionSwitchTab7:       {"switchtab7", "Switch Tab 7", "Switches to tab 7."},
	ActionSwitchTab8:       {"switchtab8", "Switch Tab 8", "Switches to tab 8."},
	ActionSwitchTab9:       {"switchtab9", "Switch Tab 9", "Switches to tab 9."},
	ActionSwitchTab0:       {"switchtab0", "Switch Tab 0", "Switches to tab 0."},
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, NumActions)
	for i := range actionTable {
		m[actionTable[i].name] = Action(i)
	}
	return m
}()

// ActionFromName returns the action with the given stable name.
func ActionFromName(name string) (Action, bool) {
	a, ok := actionsByName[name]
	if !ok {
		return ActionNone, false
	}
	return a, true
}

// Valid reports whether a is inside the action table.
func (a Action) Valid() bool {
	return a >= 0 && a < NumActions
}

// String returns the stable name used in keybind files and hooks.
func (a Action) String() string {
	if !a.Valid() {
		return "none"
	}
	return actionTable[a].name
}

// DisplayName returns the player-facing title.
func (a Action) DisplayName() string {
	if !a.Valid() {
		return ""
	}
	return actionTable[a].display
}

// Description returns the player-facing explanation.
func (a Action) Description() string {
	if !a.Valid() {
		return ""
	}
	return actionTable[a].description
}

// WeaponSet returns the weapon set slot (0-9) an action activates. weapset1
// maps to slot 0 and weapset0 to slot 9.
func (a Action) WeaponSet() (int, bool) {
	if a < ActionWeaponSet1 || a > ActionWeaponSet0 {
		return 0, false
	}
	return int(a - ActionWeaponSet1), true
}

// Actions returns every action in table order.
func Actions() []Action {
	out := make([]Action, NumActions)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}
