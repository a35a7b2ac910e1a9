package gameplay

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"containmentbreach/pkg/engine/sim"
	"containmentbreach/pkg/game/breach"
	"containmentbreach/pkg/game/entities"
	"containmentbreach/pkg/game/events"
	"containmentbreach/pkg/game/lore"
	"containmentbreach/pkg/game/nights"
	"containmentbreach/pkg/game/progress"
	"containmentbreach/pkg/game/setup"
	"containmentbreach/pkg/game/state"
)

const (
	taskTick  = "tick"
	taskSweep = "sweep"

	saveTimeout = 5 * time.Second
)

// startNight resets the state for night n and schedules its tasks.
func (s *Session) startNight(n int) {
	s.endNight()
	s.gen++
	s.buf.gen = s.gen
	now := s.clock.Now()
	tu := s.opts.Tuning

	var rooms []string
	for _, r := range s.opts.Graph.Rooms() {
		if !r.IsControlRoom {
			rooms = append(rooms, r.ID)
		}
	}

	gs := state.New(s.gs.UnlockedNights, s.gs.UnlockedLore)
	gs.Phase = state.PhasePlaying
	gs.CurrentNight = n
	gs.Difficulty = s.gs.Difficulty
	gs.Power = tu.StartPower
	gs.NightStartedAt = now
	gs.LastPingSweep = now
	gs.Cameras = entities.NewCameraBank(rooms, tu.CameraRebootTime, tu.CameraAutoRepairTime)

	for i, def := range s.opts.Roster.ForNight(n) {
		spawn := def.SpawnRoom
		if spawn == "" {
			spawn = setup.SpawnRooms[i%len(setup.SpawnRooms)]
		}
		gs.Subjects = append(gs.Subjects, state.SubjectState{
			SubjectID:    def.ID,
			CurrentRoom:  spawn,
			SpawnRoom:    spawn,
			IsActive:     true,
			LastMoveTime: now,
		})
	}
	s.gs = gs

	gen := s.gen
	s.sched.Every(taskTick, tu.TickInterval, s.task(gen, s.tick))
	s.sched.Every(taskSweep, tu.PingSweepInterval, s.task(gen, s.sweep))

	s.buf.Emit(events.Event{Type: events.NightStarted, At: now, Night: n})
	s.gs.AddMessage(nights.Briefing(n))
	s.log.WithFields(logrus.Fields{
		"night":      n,
		"subjects":   len(gs.Subjects),
		"difficulty": gs.Difficulty.String(),
		"generation": gen,
	}).Info("night started")
}

// endNight cancels the running night's tasks. Callbacks already in flight
// see a stale generation and do nothing.
func (s *Session) endNight() {
	s.sched.Reset()
	if s.sched.Paused() {
		s.sched.Resume()
	}
	s.gen++
	s.buf.gen = s.gen
}

// task wraps a per-night step so it runs under the lock and only for the
// generation it was scheduled in.
func (s *Session) task(gen uint64, step func(now time.Time, dt time.Duration)) sim.TaskFunc {
	return func(now time.Time, dt time.Duration) {
		s.mu.Lock()
		if gen != s.gen || s.gs.Phase != state.PhasePlaying {
			s.mu.Unlock()
			return
		}
		step(now, dt)
		out := s.flush()
		s.mu.Unlock()
		s.publish(out)
	}
}

// tick is one simulation step: camera ramps, door hold limit, AI (which purges
// lures first), breach resolution, then clock and power.
func (s *Session) tick(now time.Time, dt time.Duration) {
	gs := &s.gs
	for _, room := range gs.Cameras.Advance(now) {
		s.buf.Emit(events.Event{Type: events.CameraOnline, At: now, Night: gs.CurrentNight, RoomID: room})
	}

	if gs.Door.Overheld(now, s.opts.Tuning.DoorBlockDuration) {
		dir := gs.Door.Blocked
		gs.Door.Release()
		s.buf.Emit(events.Event{Type: events.DoorReleased, At: now, Night: gs.CurrentNight, Direction: dir})
	}

	s.ai.Tick(gs, now, dt, &s.buf)

	if s.resolveBreach(now) {
		return
	}

	s.economy.Step(gs, now, dt, &s.buf)
	if s.economy.NightOver(gs) {
		s.win(now)
	}
}

func (s *Session) sweep(now time.Time, _ time.Duration) {
	gs := &s.gs
	gs.SweepCount++
	gs.LastPingSweep = now
	s.economy.Sweep(gs, now, &s.buf)
	s.buf.Emit(events.Event{Type: events.PingSweep, At: now, Night: gs.CurrentNight, Amount: float64(gs.SweepCount)})
}

// resolveBreach settles a live warning against the door. It reports whether
// the night ended.
func (s *Session) resolveBreach(now time.Time) bool {
	gs := &s.gs
	w := gs.Breach
	switch gs.Breach.Resolve(now, gs.Door.Blocked) {
	case breach.Deflected:
		s.ai.Repel(gs, w.SubjectID, now)
		s.buf.Emit(events.Event{
			Type: events.BreachDeflected, At: now, Night: gs.CurrentNight,
			SubjectID: w.SubjectID, RoomID: w.RoomID, Direction: w.Direction,
		})
		s.log.WithFields(logrus.Fields{"subject": w.SubjectID, "direction": w.Direction.String()}).Info("breach deflected")
	case breach.Breached:
		s.buf.Emit(events.Event{
			Type: events.Breach, At: now, Night: gs.CurrentNight,
			SubjectID: w.SubjectID, RoomID: w.RoomID, Direction: w.Direction,
		})
		s.lose(now, w.SubjectID)
		return true
	}
	return false
}

func (s *Session) lose(now time.Time, killedBy string) {
	night := s.gs.CurrentNight
	s.gs.Phase = state.PhaseGameOver
	s.gs.KilledBy = killedBy
	s.gs.Breach.Clear()
	s.buf.Emit(events.Event{Type: events.GameOver, At: now, Night: night, SubjectID: killedBy})
	s.endNight()
	s.log.WithFields(logrus.Fields{"night": night, "killed_by": killedBy}).Info("night lost")
}

// win ends the night, unlocks what surviving it earns and saves progress.
func (s *Session) win(now time.Time) {
	night := s.gs.CurrentNight
	s.gs.Phase = state.PhaseVictory
	s.gs.Breach.Clear()

	p := progress.Progress{UnlockedNights: s.gs.UnlockedNights, UnlockedLore: s.gs.UnlockedLore}.
		Unlock(nights.Next(night), lore.UnlockedBy(night)...)
	s.gs.UnlockedNights = p.UnlockedNights
	s.gs.UnlockedLore = p.UnlockedLore

	s.buf.Emit(events.Event{Type: events.Victory, At: now, Night: night})
	s.endNight()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.opts.Store.Save(ctx, p); err != nil {
		s.log.WithError(err).Error("save progress")
	}
	s.log.WithFields(logrus.Fields{"night": night, "unlocked_nights": p.UnlockedNights}).Info("night survived")
}
