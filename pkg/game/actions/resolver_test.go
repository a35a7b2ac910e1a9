package actions

import (
	"testing"
	"time"

	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/game/config"
	"containmentbreach/pkg/game/entities"
	"containmentbreach/pkg/game/events"
	"containmentbreach/pkg/game/setup"
	"containmentbreach/pkg/game/state"
	"containmentbreach/pkg/game/subjects"
)

var t0 = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func newResolver() *Resolver {
	return NewResolver(setup.Facility(), subjects.DefaultRoster, config.DefaultTuning()).
		WithIDs(func() string { return "lure-1" })
}

func playing() *state.GameState {
	tu := config.DefaultTuning()
	var rooms []string
	for _, r := range setup.Facility().Rooms() {
		if !r.IsControlRoom {
			rooms = append(rooms, r.ID)
		}
	}
	return &state.GameState{
		Phase:          state.PhasePlaying,
		CurrentNight:   1,
		Power:          100,
		NightStartedAt: t0,
		Cameras:        entities.NewCameraBank(rooms, tu.CameraRebootTime, tu.CameraAutoRepairTime),
	}
}

func TestPlaceLure(t *testing.T) {
	r := newResolver()
	gs := playing()
	var rec events.Recorder

	if res := r.PlaceLure(gs, "bridge", t0, &rec); !res.OK {
		t.Fatalf("PlaceLure(bridge) rejected: %v", res.Reason)
	}
	if gs.Power != 97 {
		t.Errorf("Power = %v, want 97", gs.Power)
	}
	if !gs.Lures.ActiveIn("bridge", t0.Add(14*time.Second)) {
		t.Error("lure gone before 15s")
	}
	if gs.Lures.ActiveIn("bridge", t0.Add(15*time.Second)) {
		t.Error("lure still active at 15s")
	}
	if !rec.Has(events.LurePlaced) {
		t.Errorf("events = %v, want lure_placed", rec.Types())
	}

	if res := r.PlaceLure(gs, "left-hall", t0.Add(7*time.Second), &rec); res.Reason != ReasonCooldown {
		t.Errorf("PlaceLure during cooldown = %v, want cooldown", res.Reason)
	}
	if res := r.PlaceLure(gs, "left-hall", t0.Add(8*time.Second), &rec); !res.OK {
		t.Errorf("PlaceLure after cooldown rejected: %v", res.Reason)
	}
}

func TestPlaceLure_Rejections(t *testing.T) {
	r := newResolver()

	cases := []struct {
		name string
		room string
		prep func(*state.GameState)
		want Reason
	}{
		{"control", "control", nil, ReasonControlRoom},
		{"unknown", "attic", nil, ReasonUnknownRoom},
		{"paused", "bridge", func(gs *state.GameState) { gs.Phase = state.PhasePaused }, ReasonNotPlaying},
		{"low power", "bridge", func(gs *state.GameState) { gs.Power = 2.9 }, ReasonNoPower},
		{"camera down", "bridge", func(gs *state.GameState) { gs.Cameras.Jam("bridge", t0) }, ReasonCameraOffline},
	}
	for _, tc := range cases {
		gs := playing()
		if tc.prep != nil {
			tc.prep(gs)
		}
		before := gs.Power
		res := r.PlaceLure(gs, tc.room, t0, events.Discard{})
		if res.OK || res.Reason != tc.want {
			t.Errorf("%s: PlaceLure = %+v, want reason %v", tc.name, res, tc.want)
		}
		if gs.Power != before || gs.Lures.Len() != 0 {
			t.Errorf("%s: rejected lure changed state", tc.name)
		}
	}
}

func TestActivateShock_StunsOnlyThatRoom(t *testing.T) {
	r := newResolver()
	gs := playing()
	gs.Subjects = []state.SubjectState{
		{SubjectID: "Z-01", CurrentRoom: "contain-1", IsActive: true, TargetRoom: "hall-top-left"},
		{SubjectID: "Z-02", CurrentRoom: "contain-2", IsActive: true},
	}
	var rec events.Recorder

	if res := r.ActivateShock(gs, "contain-1", t0, &rec); !res.OK {
		t.Fatalf("ActivateShock rejected: %v", res.Reason)
	}
	z1 := gs.Subject("Z-01")
	if want := t0.Add(8 * time.Second); !z1.StunUntil.Equal(want) {
		t.Errorf("Z-01 StunUntil = +%v, want +8s", z1.StunUntil.Sub(t0))
	}
	if z1.TargetRoom != "" {
		t.Errorf("Z-01 kept target %q", z1.TargetRoom)
	}
	if gs.Subject("Z-02").IsStunned(t0) {
		t.Error("Z-02 in another room was stunned")
	}
	if gs.Power != 95 {
		t.Errorf("Power = %v, want 95", gs.Power)
	}
	if rec.Events[0].Amount != 1 {
		t.Errorf("shock_applied amount = %v, want 1", rec.Events[0].Amount)
	}

	if res := r.ActivateShock(gs, "contain-2", t0.Add(11*time.Second), &rec); res.Reason != ReasonCooldown {
		t.Errorf("ActivateShock during cooldown = %v, want cooldown", res.Reason)
	}
}

func TestActivateShock_OnlyContainment(t *testing.T) {
	r := newResolver()
	gs := playing()
	if res := r.ActivateShock(gs, "bridge", t0, events.Discard{}); res.Reason != ReasonNotContainment {
		t.Errorf("ActivateShock(bridge) = %v, want not_containment", res.Reason)
	}
	if res := r.ActivateShock(gs, "foxy-room", t0, events.Discard{}); !res.OK {
		t.Errorf("ActivateShock(foxy-room) rejected: %v", res.Reason)
	}
}

func TestNothingWorksAtZeroPower(t *testing.T) {
	r := newResolver()
	gs := playing()
	gs.Power = 0
	gs.PowerOut = true

	if res := r.PlaceLure(gs, "bridge", t0, events.Discard{}); res.Reason != ReasonNoPower {
		t.Errorf("PlaceLure = %v, want no_power", res.Reason)
	}
	if res := r.ActivateShock(gs, "contain-1", t0, events.Discard{}); res.Reason != ReasonNoPower {
		t.Errorf("ActivateShock = %v, want no_power", res.Reason)
	}
	if res := r.BlockDoor(gs, facility.Front, t0, events.Discard{}); res.Reason != ReasonNoPower {
		t.Errorf("BlockDoor = %v, want no_power", res.Reason)
	}
	if r.CanUseDoors(gs, t0) {
		t.Error("CanUseDoors = true at zero power")
	}
}

func TestDoor(t *testing.T) {
	r := newResolver()
	gs := playing()
	var rec events.Recorder

	if res := r.BlockDoor(gs, facility.None, t0, &rec); res.Reason != ReasonInvalidDirection {
		t.Errorf("BlockDoor(none) = %v, want invalid_direction", res.Reason)
	}
	if res := r.BlockDoor(gs, facility.Left, t0, &rec); !res.OK {
		t.Fatalf("BlockDoor(left) rejected: %v", res.Reason)
	}
	if res := r.BlockDoor(gs, facility.Right, t0, &rec); res.Reason != ReasonDoorAlreadyBlocked {
		t.Errorf("second BlockDoor = %v, want door_already_blocked", res.Reason)
	}
	if !r.CanUseDoors(gs, t0.Add(time.Second)) {
		t.Error("CanUseDoors = false while a door can be released")
	}

	if res := r.ReleaseDoor(gs, t0.Add(time.Second), &rec); !res.OK {
		t.Fatalf("ReleaseDoor rejected: %v", res.Reason)
	}
	if res := r.ReleaseDoor(gs, t0.Add(time.Second), &rec); res.Reason != ReasonDoorNotBlocked {
		t.Errorf("second ReleaseDoor = %v, want door_not_blocked", res.Reason)
	}
	if res := r.BlockDoor(gs, facility.Right, t0.Add(4*time.Second), &rec); res.Reason != ReasonCooldown {
		t.Errorf("BlockDoor during cooldown = %v, want cooldown", res.Reason)
	}
	if r.CanUseDoors(gs, t0.Add(4*time.Second)) {
		t.Error("CanUseDoors = true during cooldown with the door open")
	}
	if res := r.BlockDoor(gs, facility.Right, t0.Add(5*time.Second), &rec); !res.OK {
		t.Errorf("BlockDoor after cooldown rejected: %v", res.Reason)
	}

	want := []events.Type{events.DoorSlam, events.DoorReleased, events.DoorSlam}
	got := rec.Types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("events[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRebootRestoresLure(t *testing.T) {
	r := newResolver()
	gs := playing()
	gs.Cameras.Jam("bridge", t0)

	if r.CanUseLure(gs, "bridge", t0) {
		t.Fatal("CanUseLure on a jammed camera = true")
	}
	if res := r.RebootCamera(gs, "bridge", t0); !res.OK {
		t.Fatalf("RebootCamera rejected: %v", res.Reason)
	}
	if res := r.RebootCamera(gs, "bridge", t0.Add(time.Second)); res.Reason != ReasonCameraRebooting {
		t.Errorf("second RebootCamera = %v, want camera_rebooting", res.Reason)
	}

	gs.Cameras.Advance(t0.Add(1500 * time.Millisecond))
	if c, _ := gs.Cameras.Get("bridge"); c.RebootProgress != 50 {
		t.Errorf("RebootProgress at 1.5s = %v, want 50", c.RebootProgress)
	}
	gs.Cameras.Advance(t0.Add(3 * time.Second))
	if !r.CanUseLure(gs, "bridge", t0.Add(3*time.Second)) {
		t.Error("CanUseLure after reboot = false")
	}
	if res := r.RebootCamera(gs, "bridge", t0.Add(3*time.Second)); res.Reason != ReasonCameraNotOffline {
		t.Errorf("RebootCamera on online camera = %v, want camera_not_offline", res.Reason)
	}
}

func TestSelectCamera(t *testing.T) {
	r := newResolver()
	gs := playing()
	if res := r.SelectCamera(gs, "bridge"); !res.OK || gs.SelectedCamera != "bridge" {
		t.Errorf("SelectCamera(bridge) = %+v, selected %q", res, gs.SelectedCamera)
	}
	if res := r.SelectCamera(gs, "control"); res.Reason != ReasonUnknownRoom {
		t.Errorf("SelectCamera(control) = %v, want unknown_room", res.Reason)
	}
	if res := r.SelectCamera(gs, ""); !res.OK || gs.SelectedCamera != "" {
		t.Errorf("SelectCamera(\"\") = %+v, selected %q", res, gs.SelectedCamera)
	}
}

func TestReasonString(t *testing.T) {
	if got := ReasonNoPower.String(); got != "no_power" {
		t.Errorf("ReasonNoPower.String() = %q", got)
	}
	if got := Reason(999).String(); got != "unknown" {
		t.Errorf("Reason(999).String() = %q", got)
	}
}
