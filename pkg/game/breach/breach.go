// Package breach is the NONE -> WARNING -> {DEFLECTED | BREACHED} machine for a
// subject standing at a control-room door.
package breach

import (
	"time"

	"containmentbreach/pkg/engine/facility"
)

// Outcome is the result of resolving a warning.
type Outcome int

const (
	None      Outcome = iota // No warning is live
	Pending                  // Warning live, deadline not reached
	Deflected                // Door matched before the deadline
	Breached                 // Deadline passed with the door open
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Deflected:
		return "deflected"
	case Breached:
		return "breached"
	default:
		return "none"
	}
}

// Warning is the live breach warning. The zero value is NONE.
type Warning struct {
	Active    bool
	Direction facility.Direction
	SubjectID string
	RoomID    string
	Deadline  time.Time
}

// Raise starts a warning. It does nothing and returns false if one is already
// live, since the control room can only face one breach at a time.
func (w *Warning) Raise(dir facility.Direction, subjectID, roomID string, now time.Time, window time.Duration) bool {
	if w.Active {
		return false
	}
	*w = Warning{
		Active:    true,
		Direction: dir,
		SubjectID: subjectID,
		RoomID:    roomID,
		Deadline:  now.Add(window),
	}
	return true
}

// Resolve checks the warning against the door. A matching door wins even at
// the exact deadline. Deflected and Breached both clear the warning.
func (w *Warning) Resolve(now time.Time, doorBlocked facility.Direction) Outcome {
	if !w.Active {
		return None
	}
	if doorBlocked != facility.None && doorBlocked == w.Direction {
		w.Clear()
		return Deflected
	}
	if !now.Before(w.Deadline) {
		w.Clear()
		return Breached
	}
	return Pending
}

// Remaining is the countdown to the deadline, never negative.
func (w Warning) Remaining(now time.Time) time.Duration {
	if !w.Active {
		return 0
	}
	if d := w.Deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Clear drops the warning.
func (w *Warning) Clear() {
	*w = Warning{}
}
