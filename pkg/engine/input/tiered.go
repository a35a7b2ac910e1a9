package input

import (
	"sort"
	"sync"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Camera feed
	ActionCameraNext
	ActionCameraPrev
	ActionMapView

	// Control panel
	ActionLure
	ActionShock
	ActionReboot
	ActionBlockFront
	ActionBlockLeft
	ActionBlockRight
	ActionReleaseDoor

	// Meta / UI
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionConfirm
	ActionBack
	ActionQuit
	ActionDump    // Write a state dump (F9)
	ActionZoomIn  // Zoom in (increase font/tile size)
	ActionZoomOut // Zoom out (decrease font/tile size)
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "f", "arrow_up", "gamepad_a").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// Debouncer drops repeats of the same code arriving within Window of each
// other. Terminals deliver key-repeat as a stream of identical bytes, which
// would otherwise slam the door several times per press.
type Debouncer struct {
	Window time.Duration

	last map[string]time.Time
}

// NewDebouncer returns a debouncer with the given repeat window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{Window: window, last: make(map[string]time.Time)}
}

// Accept reports whether raw should be passed on, and if so returns it.
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	key := raw.Code
	if prev, ok := d.last[key]; ok && raw.Timestamp.Sub(prev) < d.Window {
		d.last[key] = raw.Timestamp
		return DebouncedInput{}, false
	}
	d.last[key] = raw.Timestamp
	return NewDebouncedInput(raw), true
}

var (
	bindingsMu sync.RWMutex

	// bindings maps raw codes to actions (3rd-layer bindings).
	// Multiple codes may point to the same Action.
	bindings = map[string]Action{
		// Camera cycling (arrows, Vim)
		"arrow_right": ActionCameraNext,
		"l":           ActionCameraNext,
		"tab":         ActionCameraNext,
		"arrow_left":  ActionCameraPrev,
		"h":           ActionCameraPrev,
		"m":           ActionMapView,

		// Control panel
		"f":      ActionLure,
		"x":      ActionShock,
		"r":      ActionReboot,
		"w":      ActionBlockFront,
		"a":      ActionBlockLeft,
		"d":      ActionBlockRight,
		"s":      ActionReleaseDoor,
		"space":  ActionReleaseDoor,
		"p":      ActionPause,
		"escape": ActionBack,

		// Menus
		"arrow_up":   ActionMenuUp,
		"k":          ActionMenuUp,
		"arrow_down": ActionMenuDown,
		"j":          ActionMenuDown,
		"enter":      ActionConfirm,

		"q":      ActionQuit,
		"ctrl_c": ActionQuit,
		"f9":     ActionDump,

		// Controller/gamepad specific bindings
		"gamepad_dpad_up":    ActionMenuUp,
		"gamepad_dpad_down":  ActionMenuDown,
		"gamepad_dpad_left":  ActionCameraPrev,
		"gamepad_dpad_right": ActionCameraNext,
		"gamepad_a":          ActionConfirm,
		"gamepad_b":          ActionBack,
		"gamepad_x":          ActionLure,
		"gamepad_y":          ActionShock,
		"gamepad_start":      ActionPause,

		// Zoom (fixed bindings, not rebindable)
		"=":               ActionZoomIn,
		"+":               ActionZoomIn,
		"numpad_add":      ActionZoomIn,
		"-":               ActionZoomOut,
		"numpad_subtract": ActionZoomOut,
	}
)

// reserved codes can never be rebound away from their action.
var reserved = map[string]bool{
	"arrow_up": true, "arrow_down": true, "arrow_left": true, "arrow_right": true,
	"enter": true, "escape": true, "gamepad_a": true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	bindingsMu.RLock()
	defer bindingsMu.RUnlock()
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionCameraNext:
		return "Next Camera"
	case ActionCameraPrev:
		return "Previous Camera"
	case ActionMapView:
		return "Facility Map"
	case ActionLure:
		return "Place Lure"
	case ActionShock:
		return "Shock"
	case ActionReboot:
		return "Reboot Camera"
	case ActionBlockFront:
		return "Block Front Door"
	case ActionBlockLeft:
		return "Block Left Door"
	case ActionBlockRight:
		return "Block Right Door"
	case ActionReleaseDoor:
		return "Release Door"
	case ActionPause:
		return "Pause"
	case ActionMenuUp:
		return "Menu Up"
	case ActionMenuDown:
		return "Menu Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionDump:
		return "State Dump"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	bindingsMu.RLock()
	defer bindingsMu.RUnlock()
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Reserved codes are neither removed nor reassigned.
func SetSingleBinding(action Action, code string) {
	bindingsMu.Lock()
	defer bindingsMu.Unlock()
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
