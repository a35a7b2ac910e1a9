package ai

import (
	"testing"
	"time"

	"containmentbreach/pkg/engine/sim"
	"containmentbreach/pkg/game/config"
	"containmentbreach/pkg/game/entities"
	"containmentbreach/pkg/game/events"
	"containmentbreach/pkg/game/nights"
	"containmentbreach/pkg/game/setup"
	"containmentbreach/pkg/game/state"
	"containmentbreach/pkg/game/subjects"
)

var t0 = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

const tick = 250 * time.Millisecond

type fixture struct {
	engine *Engine
	gs     *state.GameState
	rec    *events.Recorder
	now    time.Time
}

// newFixture places each subject id in the paired room at t0 on night 1.
func newFixture(t *testing.T, rng sim.Rand, placements ...string) *fixture {
	t.Helper()
	if len(placements)%2 != 0 {
		t.Fatal("placements must be id/room pairs")
	}
	g := setup.Facility()
	tu := config.DefaultTuning()

	var rooms []string
	for _, r := range g.Rooms() {
		if !r.IsControlRoom {
			rooms = append(rooms, r.ID)
		}
	}
	gs := &state.GameState{
		Phase:          state.PhasePlaying,
		CurrentNight:   1,
		Power:          100,
		NightStartedAt: t0,
		Cameras:        entities.NewCameraBank(rooms, tu.CameraRebootTime, tu.CameraAutoRepairTime),
	}
	for i := 0; i < len(placements); i += 2 {
		gs.Subjects = append(gs.Subjects, state.SubjectState{
			SubjectID:    placements[i],
			CurrentRoom:  placements[i+1],
			SpawnRoom:    placements[i+1],
			IsActive:     true,
			LastMoveTime: t0,
		})
	}
	return &fixture{
		engine: New(g, subjects.DefaultRoster, tu, rng),
		gs:     gs,
		rec:    &events.Recorder{},
		now:    t0,
	}
}

// run ticks until d of simulated time has passed.
func (f *fixture) run(d time.Duration) {
	end := f.now.Add(d)
	for f.now.Before(end) {
		f.now = f.now.Add(tick)
		f.engine.Tick(f.gs, f.now, tick, f.rec)
	}
}

func (f *fixture) room(id string) string {
	return f.gs.Subject(id).CurrentRoom
}

func (f *fixture) count(tp events.Type) int {
	n := 0
	for _, ev := range f.rec.Events {
		if ev.Type == tp {
			n++
		}
	}
	return n
}

func TestTick_Z01WalksShortestPathOneRoomPerMinute(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-01", "contain-1")

	route := []string{"hall-top-left", "hall-top-center", "hall-vertical", "hall-mid", "front-hall"}
	for i, want := range route {
		f.run(time.Minute - tick)
		prev := "contain-1"
		if i > 0 {
			prev = route[i-1]
		}
		if got := f.room("Z-01"); got != prev {
			t.Fatalf("at %v Z-01 in %s, want %s", f.now.Sub(t0), got, prev)
		}
		f.run(tick)
		if got := f.room("Z-01"); got != want {
			t.Fatalf("at %v Z-01 in %s, want %s", f.now.Sub(t0), got, want)
		}
	}

	if !f.gs.Breach.Active || f.gs.Breach.SubjectID != "Z-01" {
		t.Fatalf("breach warning not raised on entering front-hall: %+v", f.gs.Breach)
	}
	if want := t0.Add(5*time.Minute + 3*time.Second); !f.gs.Breach.Deadline.Equal(want) {
		t.Errorf("breach deadline = %v, want %v", f.gs.Breach.Deadline.Sub(t0), want.Sub(t0))
	}

	// Held at the door while the warning is live.
	f.run(10 * time.Second)
	if got := f.room("Z-01"); got != "front-hall" {
		t.Errorf("Z-01 left the door room for %s", got)
	}
	if n := f.count(events.BreachWarning); n != 1 {
		t.Errorf("breach_warning events = %d, want 1", n)
	}
}

func TestTick_CameraJamFiresOnce(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-02", "hall-top-center")

	f.run(3 * time.Minute)

	if n := f.count(events.CameraJam); n != 1 {
		t.Fatalf("camera_jam events = %d, want 1", n)
	}
	if !f.gs.Subject("Z-02").UsedAbility {
		t.Error("UsedAbility = false after jam")
	}
	offline := 0
	for _, c := range f.gs.Cameras.All() {
		if !c.IsOnline {
			offline++
		}
	}
	if offline != 1 {
		t.Errorf("%d cameras offline, want 1", offline)
	}
}

func TestTick_PowerDrainFiresOnce(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-03", "hall-top-center")

	f.run(3 * time.Minute)

	if n := f.count(events.PowerDrain); n != 1 {
		t.Fatalf("power_drain events = %d, want 1", n)
	}
	if f.gs.Power != 90 {
		t.Errorf("Power = %v, want 90", f.gs.Power)
	}
}

func TestTick_AdjacentLureDivertsOnLowRoll(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.5), "Z-01", "hall-mid")
	f.gs.Lures.Place(entities.Lure{ID: "l1", RoomID: "bridge", ExpiresAt: t0.Add(15 * time.Second)})

	f.run(tick)
	if got := f.gs.Subject("Z-01").TargetRoom; got != "bridge" {
		t.Errorf("TargetRoom with roll 0.5 < 0.8 = %q, want bridge", got)
	}
}

func TestTick_AdjacentLureIgnoredOnHighRoll(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.9), "Z-01", "hall-mid")
	f.gs.Lures.Place(entities.Lure{ID: "l1", RoomID: "bridge", ExpiresAt: t0.Add(15 * time.Second)})

	f.run(tick)
	if got := f.gs.Subject("Z-01").TargetRoom; got != "front-hall" {
		t.Errorf("TargetRoom with roll 0.9 >= 0.8 = %q, want front-hall", got)
	}
}

func TestTick_SameSeedSameDecision(t *testing.T) {
	var got []string
	for i := 0; i < 2; i++ {
		f := newFixture(t, sim.NewRand(1234), "Z-01", "hall-mid")
		f.gs.Lures.Place(entities.Lure{ID: "l1", RoomID: "bridge", ExpiresAt: t0.Add(15 * time.Second)})
		f.run(tick)
		got = append(got, f.gs.Subject("Z-01").TargetRoom)
	}
	if got[0] != got[1] {
		t.Errorf("seeded runs diverged: %v", got)
	}
}

func TestTick_IgnoresLures(t *testing.T) {
	// foxy-room's neighbour bridge holds a lure; a zero roll would divert anyone susceptible.
	f := newFixture(t, sim.NewSequence(0), "Z-07", "foxy-room")
	f.gs.Lures.Place(entities.Lure{ID: "l1", RoomID: "bridge", ExpiresAt: t0.Add(time.Minute)})

	f.run(tick)
	if got := f.gs.Subject("Z-07").TargetRoom; got != "left-hall" {
		t.Errorf("Z-07 TargetRoom = %q, want left-hall", got)
	}
}

func TestTick_FoxyChargesOutOfSpawn(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-07", "foxy-room")
	def, _ := subjects.ByID("Z-07")
	charged := f.engine.HopTime(def, 1, nights.Normal) / 2

	f.run(charged - tick)
	if got := f.room("Z-07"); got != "foxy-room" {
		t.Fatalf("at %v Z-07 in %s, want foxy-room", f.now.Sub(t0), got)
	}
	f.run(tick)
	if got := f.room("Z-07"); got != "left-hall" {
		t.Fatalf("at %v Z-07 in %s, want left-hall", f.now.Sub(t0), got)
	}

	// A repel drops the charge; it picks up again on the next departure.
	f.engine.Repel(f.gs, "Z-07", f.now)
	s := f.gs.Subject("Z-07")
	if s.Charging {
		t.Fatal("Charging survived the repel")
	}
	f.run(10*time.Second + charged - tick)
	if got := f.room("Z-07"); got != "foxy-room" {
		t.Fatalf("at %v Z-07 in %s, want foxy-room", f.now.Sub(t0), got)
	}
	f.run(tick)
	if got := f.room("Z-07"); got != "left-hall" {
		t.Fatalf("at %v Z-07 in %s, want left-hall", f.now.Sub(t0), got)
	}
}

func TestTick_LureInCurrentRoomHoldsSubject(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-01", "hall-mid")
	f.gs.Lures.Place(entities.Lure{ID: "l1", RoomID: "hall-mid", ExpiresAt: t0.Add(2 * time.Minute)})

	f.run(90 * time.Second)
	if got := f.room("Z-01"); got != "hall-mid" {
		t.Errorf("lured subject moved to %s", got)
	}
}

func TestTick_ExpiredLuresArePurged(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99))
	f.gs.Lures.Place(entities.Lure{ID: "l1", RoomID: "bridge", ExpiresAt: t0.Add(tick)})

	f.run(tick)
	if f.gs.Lures.Len() != 0 {
		t.Errorf("Lures.Len() = %d, want 0", f.gs.Lures.Len())
	}
	if f.count(events.LureExpired) != 1 {
		t.Errorf("events = %v, want one lure_expired", f.rec.Types())
	}
}

func TestTick_TeleportJumpsOnFirstMove(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-06", "contain-1")

	hop := f.engine.HopTime(subjects.DefaultRoster[5], 1, f.gs.Difficulty)
	f.run(hop)
	if got := f.room("Z-06"); got != "hall-vertical" {
		t.Fatalf("after first move Z-06 in %s, want hall-vertical", got)
	}
	if f.count(events.Teleport) != 1 {
		t.Errorf("teleport events = %d, want 1", f.count(events.Teleport))
	}

	f.run(hop)
	if got := f.room("Z-06"); got != "hall-mid" {
		t.Errorf("after second move Z-06 in %s, want hall-mid", got)
	}
	if f.count(events.Teleport) != 1 {
		t.Errorf("teleport events after second move = %d, want 1", f.count(events.Teleport))
	}
}

func TestTick_TeleportNeverEntersControl(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-06", "hall-mid")

	f.run(2 * time.Minute)
	if got := f.room("Z-06"); got != "front-hall" {
		t.Errorf("Z-06 in %s, want front-hall", got)
	}
}

func TestTick_PackFollowsLeader(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-01", "contain-1", "Z-05", "contain-6")
	// Keep the follower's own timer far away so only the leader can move it.
	f.gs.Subject("Z-05").LastMoveTime = t0.Add(time.Hour)

	f.run(time.Minute)
	if got := f.room("Z-01"); got != "hall-top-left" {
		t.Fatalf("leader in %s, want hall-top-left", got)
	}
	if got := f.room("Z-05"); got != "hall-lower" {
		t.Errorf("follower in %s, want hall-lower", got)
	}
}

func TestTick_StunnedSubjectStays(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-01", "contain-1")
	def, _ := subjects.ByID("Z-01")
	Stun(f.gs.Subject("Z-01"), def, t0)

	f.run(time.Minute)
	if got := f.room("Z-01"); got != "contain-1" {
		t.Errorf("stunned subject moved to %s", got)
	}
}

func TestTick_InvalidRoomDeactivates(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-01", "nowhere")
	f.run(tick)
	if f.gs.Subject("Z-01").IsActive {
		t.Error("subject in unknown room still active")
	}
}

func TestRepel(t *testing.T) {
	f := newFixture(t, sim.NewSequence(0.99), "Z-01", "contain-1")
	s := f.gs.Subject("Z-01")
	s.CurrentRoom = "front-hall"
	s.Charging = true

	f.engine.Repel(f.gs, "Z-01", t0)

	if s.CurrentRoom != "contain-1" {
		t.Errorf("CurrentRoom = %s, want contain-1", s.CurrentRoom)
	}
	if want := t0.Add(8 * time.Second); !s.StunUntil.Equal(want) {
		t.Errorf("StunUntil = %v, want +8s", s.StunUntil.Sub(t0))
	}
	if s.Charging || s.TargetRoom != "" {
		t.Errorf("repelled subject kept plans: %+v", *s)
	}
}

func TestVisible(t *testing.T) {
	flicker, _ := subjects.ByID("Z-04")
	walker, _ := subjects.ByID("Z-01")
	if Visible(flicker, 1) {
		t.Error("Visible(Z-04, odd sweep) = true, want false")
	}
	if !Visible(flicker, 2) {
		t.Error("Visible(Z-04, even sweep) = false, want true")
	}
	if !Visible(walker, 1) {
		t.Error("Visible(Z-01, odd sweep) = false, want true")
	}
}
