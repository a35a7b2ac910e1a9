package breach

import (
	"testing"
	"time"

	"containmentbreach/pkg/engine/facility"
)

var t0 = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func raised(t *testing.T) *Warning {
	t.Helper()
	var w Warning
	if !w.Raise(facility.Front, "Z-01", "front-hall", t0, 3*time.Second) {
		t.Fatal("Raise() = false on an idle warning")
	}
	return &w
}

func TestResolve_PendingUntilDeadline(t *testing.T) {
	w := raised(t)
	if got := w.Resolve(t0.Add(2999*time.Millisecond), facility.None); got != Pending {
		t.Errorf("Resolve(2.999s, open) = %v, want pending", got)
	}
	if got := w.Resolve(t0.Add(3*time.Second), facility.None); got != Breached {
		t.Errorf("Resolve(3s, open) = %v, want breached", got)
	}
	if w.Active {
		t.Error("warning still active after breach")
	}
}

func TestResolve_DoorAtDeadlineFavoursPlayer(t *testing.T) {
	w := raised(t)
	if got := w.Resolve(t0.Add(3*time.Second), facility.Front); got != Deflected {
		t.Errorf("Resolve(deadline, front) = %v, want deflected", got)
	}
}

func TestResolve_WrongDoorDoesNotDeflect(t *testing.T) {
	w := raised(t)
	if got := w.Resolve(t0.Add(time.Second), facility.Left); got != Pending {
		t.Errorf("Resolve(1s, left) = %v, want pending", got)
	}
	if got := w.Resolve(t0.Add(3*time.Second), facility.Left); got != Breached {
		t.Errorf("Resolve(3s, left) = %v, want breached", got)
	}
}

func TestRaise_OnlyOneLiveWarning(t *testing.T) {
	w := raised(t)
	if w.Raise(facility.Left, "Z-07", "left-hall", t0, 3*time.Second) {
		t.Error("second Raise() = true, want false")
	}
	if w.SubjectID != "Z-01" {
		t.Errorf("SubjectID = %q, want Z-01", w.SubjectID)
	}
}

func TestRemaining(t *testing.T) {
	w := raised(t)
	if got := w.Remaining(t0.Add(time.Second)); got != 2*time.Second {
		t.Errorf("Remaining(1s) = %v, want 2s", got)
	}
	if got := w.Remaining(t0.Add(time.Minute)); got != 0 {
		t.Errorf("Remaining(60s) = %v, want 0", got)
	}
	var idle Warning
	if got := idle.Resolve(t0, facility.Front); got != None {
		t.Errorf("idle Resolve() = %v, want none", got)
	}
}
