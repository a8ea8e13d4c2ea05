package input

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high-level intent on the board.
type Action int

const (
	ActionNone Action = iota

	ActionPlay   // Drop the checker (if needed) and start walking
	ActionStop   // Stop walking, keep the checker where it is
	ActionReset  // Rebuild the board at the pending size
	ActionGrow   // Increase the pending board size
	ActionShrink // Decrease the pending board size
	ActionDump   // Write the board to a text file for debugging
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "p", "arrow_up", "button_play").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
// Codes are case-insensitive.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"p":           ActionPlay,
	"play":        ActionPlay,
	"space":       ActionPlay,
	"button_play": ActionPlay,

	"s":           ActionStop,
	"stop":        ActionStop,
	"button_stop": ActionStop,

	"r":            ActionReset,
	"reset":        ActionReset,
	"button_reset": ActionReset,

	"+":           ActionGrow,
	"=":           ActionGrow,
	"arrow_up":    ActionGrow,
	"numpad_add":  ActionGrow,
	"button_grow": ActionGrow,

	"-":               ActionShrink,
	"arrow_down":      ActionShrink,
	"numpad_subtract": ActionShrink,
	"button_shrink":   ActionShrink,

	"d":    ActionDump,
	"dump": ActionDump,
	"f9":   ActionDump,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// reserved codes can never be rebound
var reserved = map[string]bool{
	"button_play":   true,
	"button_stop":   true,
	"button_reset":  true,
	"button_grow":   true,
	"button_shrink": true,
	"ctrl_c":        true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionPlay:
		return "Play"
	case ActionStop:
		return "Stop"
	case ActionReset:
		return "Reset"
	case ActionGrow:
		return "Grow"
	case ActionShrink:
		return "Shrink"
	case ActionDump:
		return "Dump"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// ParseAction returns the action with the given name (case-insensitive)
func ParseAction(name string) (Action, error) {
	for _, a := range []Action{ActionPlay, ActionStop, ActionReset, ActionGrow, ActionShrink, ActionDump, ActionQuit} {
		if strings.EqualFold(ActionName(a), name) {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't jump around
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// AddBinding maps an extra code to action. Reserved codes are left alone.
func AddBinding(action Action, code string) error {
	code = strings.ToLower(code)
	if code == "" {
		return fmt.Errorf("empty key code for %v", ActionName(action))
	}
	if reserved[code] {
		return fmt.Errorf("key code %q is reserved", code)
	}
	bindings[code] = action
	return nil
}

// KeyHelp returns the first keyboard code bound to action, for help text
func KeyHelp(action Action) string {
	for _, code := range GetBindingsByAction()[action] {
		if !reserved[code] && len(code) == 1 {
			return code
		}
	}
	return ""
}
