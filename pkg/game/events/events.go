// Package events defines the outbound notifications a night produces and the
// fire-and-forget bus that fans them out to presentation collaborators.
package events

import (
	"time"

	"containmentbreach/pkg/engine/facility"
)

// Type names an event.
type Type string

const (
	BreachWarning   Type = "breach_warning"
	BreachDeflected Type = "breach_deflected"
	Breach          Type = "breach"
	CameraJam       Type = "camera_jam"
	CameraOnline    Type = "camera_online"
	LurePlaced      Type = "lure_placed"
	LureExpired     Type = "lure_expired"
	ShockApplied    Type = "shock_applied"
	DoorSlam        Type = "door_slam"
	DoorReleased    Type = "door_released"
	PingSweep       Type = "ping_sweep"
	PowerDrain      Type = "power_drain"
	PowerOut        Type = "power_out"
	SubjectMoved    Type = "subject_moved"
	Teleport        Type = "teleport"
	NightStarted    Type = "night_started"
	Victory         Type = "victory"
	GameOver        Type = "game_over"
)

// Event is one notification. Fields that do not apply to a type are zero.
type Event struct {
	Type       Type               `json:"type"`
	At         time.Time          `json:"at"` // Simulated time
	Night      int                `json:"night,omitempty"`
	Generation uint64             `json:"generation,omitempty"`
	SubjectID  string             `json:"subjectId,omitempty"`
	RoomID     string             `json:"roomId,omitempty"`
	FromRoomID string             `json:"fromRoomId,omitempty"`
	Direction  facility.Direction `json:"direction,omitempty"`
	Amount     float64            `json:"amount,omitempty"`
}

// Sink receives events.
type Sink interface {
	Emit(Event)
}

// Recorder is a Sink that keeps everything it is given.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Emit(ev Event) {
	r.Events = append(r.Events, ev)
}

// Types returns the recorded event types in order.
func (r *Recorder) Types() []Type {
	out := make([]Type, 0, len(r.Events))
	for _, ev := range r.Events {
		out = append(out, ev.Type)
	}
	return out
}

// Has reports whether an event of type t was recorded.
func (r *Recorder) Has(t Type) bool {
	for _, ev := range r.Events {
		if ev.Type == t {
			return true
		}
	}
	return false
}

// Reset drops everything recorded.
func (r *Recorder) Reset() {
	r.Events = nil
}

// Discard is a Sink that drops everything.
type Discard struct{}

func (Discard) Emit(Event) {}
