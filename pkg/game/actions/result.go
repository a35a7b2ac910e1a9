// Package actions validates and applies the player's control-panel actions.
// A rejected action is reported as a Result and leaves the state untouched.
package actions

import "github.com/leonelquinteros/gotext"

// Reason explains a rejected action.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotPlaying
	ReasonCooldown
	ReasonNoPower
	ReasonUnknownRoom
	ReasonControlRoom
	ReasonCameraOffline
	ReasonNotContainment
	ReasonInvalidDirection
	ReasonDoorAlreadyBlocked
	ReasonDoorNotBlocked
	ReasonCameraNotOffline
	ReasonCameraRebooting
	ReasonNightLocked
	ReasonInvalidPhase
	ReasonUnknownCommand
)

var reasonNames = map[Reason]string{
	ReasonNone:               "none",
	ReasonNotPlaying:         "not_playing",
	ReasonCooldown:           "cooldown",
	ReasonNoPower:            "no_power",
	ReasonUnknownRoom:        "unknown_room",
	ReasonControlRoom:        "control_room",
	ReasonCameraOffline:      "camera_offline",
	ReasonNotContainment:     "not_containment",
	ReasonInvalidDirection:   "invalid_direction",
	ReasonDoorAlreadyBlocked: "door_already_blocked",
	ReasonDoorNotBlocked:     "door_not_blocked",
	ReasonCameraNotOffline:   "camera_not_offline",
	ReasonCameraRebooting:    "camera_rebooting",
	ReasonNightLocked:        "night_locked",
	ReasonInvalidPhase:       "invalid_phase",
	ReasonUnknownCommand:     "unknown_command",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

// Message is the translated player-facing explanation.
func (r Reason) Message() string {
	switch r {
	case ReasonNotPlaying:
		return gotext.Get("REASON_NOT_PLAYING")
	case ReasonCooldown:
		return gotext.Get("REASON_COOLDOWN")
	case ReasonNoPower:
		return gotext.Get("REASON_NO_POWER")
	case ReasonUnknownRoom:
		return gotext.Get("REASON_UNKNOWN_ROOM")
	case ReasonControlRoom:
		return gotext.Get("REASON_CONTROL_ROOM")
	case ReasonCameraOffline:
		return gotext.Get("REASON_CAMERA_OFFLINE")
	case ReasonNotContainment:
		return gotext.Get("REASON_NOT_CONTAINMENT")
	case ReasonInvalidDirection:
		return gotext.Get("REASON_INVALID_DIRECTION")
	case ReasonDoorAlreadyBlocked:
		return gotext.Get("REASON_DOOR_ALREADY_BLOCKED")
	case ReasonDoorNotBlocked:
		return gotext.Get("REASON_DOOR_NOT_BLOCKED")
	case ReasonCameraNotOffline:
		return gotext.Get("REASON_CAMERA_NOT_OFFLINE")
	case ReasonCameraRebooting:
		return gotext.Get("REASON_CAMERA_REBOOTING")
	case ReasonNightLocked:
		return gotext.Get("REASON_NIGHT_LOCKED")
	case ReasonInvalidPhase:
		return gotext.Get("REASON_INVALID_PHASE")
	case ReasonUnknownCommand:
		return gotext.Get("REASON_UNKNOWN_COMMAND")
	}
	return ""
}

// Result is the outcome of an action.
type Result struct {
	OK     bool
	Reason Reason
}

// OK is the accepted result.
func OK() Result {
	return Result{OK: true}
}

// Reject returns a refused result.
func Reject(r Reason) Result {
	return Result{Reason: r}
}
