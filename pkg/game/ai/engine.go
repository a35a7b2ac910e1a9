// Package ai moves subjects through the facility once per tick: lure
// diversion, behaviour-driven hops, abilities, and raising breach warnings at
// the control-room doors.
package ai

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/engine/logger"
	"containmentbreach/pkg/engine/sim"
	"containmentbreach/pkg/game/config"
	"containmentbreach/pkg/game/events"
	"containmentbreach/pkg/game/nights"
	"containmentbreach/pkg/game/power"
	"containmentbreach/pkg/game/state"
	"containmentbreach/pkg/game/subjects"
)

// Engine is the subject AI. It holds no per-night state of its own; all of it
// lives in the GameState passed to Tick.
type Engine struct {
	graph  *facility.Graph
	roster subjects.Roster
	tuning config.Tuning
	rng    sim.Rand
	log    *logrus.Entry
}

// New returns an engine over graph and roster drawing randomness from rng.
func New(graph *facility.Graph, roster subjects.Roster, tuning config.Tuning, rng sim.Rand) *Engine {
	return &Engine{
		graph:  graph,
		roster: roster,
		tuning: tuning,
		rng:    rng,
		log:    logger.WithComponent("ai"),
	}
}

// HopTime is the base time def needs per room on the given night.
func (e *Engine) HopTime(def subjects.Definition, night int, d nights.Difficulty) time.Duration {
	speed := def.Speed * nights.For(night).SpeedMultiplier * d.SpeedMultiplier()
	if speed <= 0 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(float64(e.tuning.BaseHopTime) / speed)
}

// Tick runs one AI step at now; dt is the tick length.
func (e *Engine) Tick(gs *state.GameState, now time.Time, dt time.Duration, sink events.Sink) {
	for _, l := range gs.Lures.Purge(now) {
		sink.Emit(events.Event{Type: events.LureExpired, At: now, Night: gs.CurrentNight, RoomID: l.RoomID})
	}

	moved := make(map[string]bool, len(gs.Subjects))
	for i := range gs.Subjects {
		if e.step(gs, &gs.Subjects[i], now, dt, sink) {
			moved[gs.Subjects[i].SubjectID] = true
		}
	}

	// Pack followers move in the same tick as their leader, wherever the
	// leader sits in roster order.
	for i := range gs.Subjects {
		s := &gs.Subjects[i]
		def, ok := e.roster.ByID(s.SubjectID)
		if !ok || def.Ability != subjects.PackMovement || moved[s.SubjectID] || !e.canAct(s, now) {
			continue
		}
		leader := packLeader(gs, s.SubjectID)
		if leader == "" || !moved[leader] {
			continue
		}
		target := s.TargetRoom
		if target == "" {
			target = e.chooseMove(gs, s, def, now).Target
		}
		if target == "" {
			continue
		}
		e.move(gs, s, def, target, now, sink)
		moved[s.SubjectID] = true
	}
}

// packLeader is the first other active subject in roster order.
func packLeader(gs *state.GameState, followerID string) string {
	for _, s := range gs.Subjects {
		if s.IsActive && s.SubjectID != followerID {
			return s.SubjectID
		}
	}
	return ""
}

func (e *Engine) canAct(s *state.SubjectState, now time.Time) bool {
	if !s.IsActive || s.IsStunned(now) {
		return false
	}
	if _, ok := e.graph.RoomByID(s.CurrentRoom); !ok {
		return false
	}
	return !e.graph.IsControlRoom(s.CurrentRoom) && !e.graph.OpensOntoControl(s.CurrentRoom)
}

// step advances one subject and reports whether it changed rooms.
func (e *Engine) step(gs *state.GameState, s *state.SubjectState, now time.Time, dt time.Duration, sink events.Sink) bool {
	if !s.IsActive || s.IsStunned(now) {
		return false
	}
	def, ok := e.roster.ByID(s.SubjectID)
	if !ok {
		e.deactivate(s, "unknown subject")
		return false
	}
	if _, ok := e.graph.RoomByID(s.CurrentRoom); !ok || e.graph.IsControlRoom(s.CurrentRoom) {
		e.deactivate(s, "subject in invalid room")
		return false
	}

	// At a door: hold and keep the warning raised until the breach resolves.
	if e.graph.OpensOntoControl(s.CurrentRoom) {
		e.raiseWarning(gs, s, now, sink)
		return false
	}

	if s.TargetRoom == "" {
		if def.Lurable() && gs.Lures.ActiveIn(s.CurrentRoom, now) {
			s.LastMoveTime = s.LastMoveTime.Add(dt)
			return false
		}
		// Foxy charges from the moment it sets off, spawn hop included.
		if def.Behavior == subjects.Foxy {
			s.Charging = true
		}
		mv := e.chooseMove(gs, s, def, now)
		if mv.Target == "" {
			e.deactivate(s, "no path to control")
			return false
		}
		s.TargetRoom = mv.Target
		s.HopDuration = scale(e.HopTime(def, gs.CurrentNight, gs.Difficulty), mv.HopScale)
	}

	if subjects.BehaviorFor(def.Behavior).Stall(e.rng) {
		s.LastMoveTime = s.LastMoveTime.Add(dt)
		return false
	}
	if now.Sub(s.LastMoveTime) < s.HopDuration {
		return false
	}
	e.move(gs, s, def, s.TargetRoom, now, sink)
	return true
}

// chooseMove checks adjacent lures before handing over to the behaviour.
func (e *Engine) chooseMove(gs *state.GameState, s *state.SubjectState, def subjects.Definition, now time.Time) subjects.Move {
	if def.Lurable() {
		for _, r := range e.graph.ConnectedRooms(s.CurrentRoom) {
			if r.IsControlRoom || !gs.Lures.ActiveIn(r.ID, now) {
				continue
			}
			if e.rng.Float64() < def.LureSensitivity {
				return subjects.Move{Target: r.ID, HopScale: 1}
			}
		}
	}
	return subjects.BehaviorFor(def.Behavior).NextMove(subjects.MoveContext{
		Graph:    e.graph,
		Current:  s.CurrentRoom,
		Rand:     e.rng,
		Charging: s.Charging,
	})
}

func (e *Engine) move(gs *state.GameState, s *state.SubjectState, def subjects.Definition, to string, now time.Time, sink events.Sink) {
	from := s.CurrentRoom
	dest := to

	if def.Ability == subjects.Teleport && !s.UsedAbility {
		s.UsedAbility = true
		path := e.graph.PathToControl(to)
		// path ends at control; the furthest allowed landing is the room before it.
		hops := min(2, len(path)-2)
		if hops > 0 {
			dest = path[hops]
			sink.Emit(events.Event{Type: events.Teleport, At: now, Night: gs.CurrentNight, SubjectID: s.SubjectID, RoomID: dest, FromRoomID: to})
		}
	}

	s.CurrentRoom = dest
	s.TargetRoom = ""
	s.HopDuration = 0
	s.LastMoveTime = now
	sink.Emit(events.Event{Type: events.SubjectMoved, At: now, Night: gs.CurrentNight, SubjectID: s.SubjectID, RoomID: dest, FromRoomID: from})
	e.log.WithFields(logrus.Fields{"subject": s.SubjectID, "from": from, "to": dest}).Debug("subject moved")

	e.fireProximityAbility(gs, s, def, now, sink)

	if e.graph.OpensOntoControl(dest) {
		e.raiseWarning(gs, s, now, sink)
	}
}

// fireProximityAbility triggers camera_jam and power_drain once, the first
// time the subject stands within range of control.
func (e *Engine) fireProximityAbility(gs *state.GameState, s *state.SubjectState, def subjects.Definition, now time.Time, sink events.Sink) {
	if s.UsedAbility {
		return
	}
	if d := e.graph.Distance(s.CurrentRoom); d < 0 || d > e.tuning.AbilityRange {
		return
	}

	switch def.Ability {
	case subjects.CameraJam:
		online := gs.Cameras.Online()
		if len(online) == 0 {
			return
		}
		room := online[e.rng.Intn(len(online))]
		if gs.Cameras.Jam(room, now) {
			s.UsedAbility = true
			sink.Emit(events.Event{Type: events.CameraJam, At: now, Night: gs.CurrentNight, SubjectID: s.SubjectID, RoomID: room})
		}
	case subjects.PowerDrain:
		s.UsedAbility = true
		before := gs.Power
		power.New(e.tuning, gs.Difficulty).Drain(gs, e.tuning.AbilityDrain, now, sink)
		sink.Emit(events.Event{Type: events.PowerDrain, At: now, Night: gs.CurrentNight, SubjectID: s.SubjectID, Amount: before - gs.Power})
	}
}

func (e *Engine) raiseWarning(gs *state.GameState, s *state.SubjectState, now time.Time, sink events.Sink) {
	dir := e.graph.ApproachDirection(s.CurrentRoom)
	if !gs.Breach.Raise(dir, s.SubjectID, s.CurrentRoom, now, e.tuning.BreachWarningTime) {
		return
	}
	sink.Emit(events.Event{Type: events.BreachWarning, At: now, Night: gs.CurrentNight, SubjectID: s.SubjectID, RoomID: s.CurrentRoom, Direction: dir})
	e.log.WithFields(logrus.Fields{"subject": s.SubjectID, "room": s.CurrentRoom, "direction": dir.String()}).Info("breach warning")
}

func (e *Engine) deactivate(s *state.SubjectState, reason string) {
	s.IsActive = false
	s.TargetRoom = ""
	e.log.WithFields(logrus.Fields{"subject": s.SubjectID, "room": s.CurrentRoom}).Error("invariant violation: " + reason)
}

// Repel sends a subject back to its spawn room and stuns it. Used when a
// breach is deflected.
func (e *Engine) Repel(gs *state.GameState, subjectID string, now time.Time) {
	s := gs.Subject(subjectID)
	if s == nil {
		return
	}
	def, _ := e.roster.ByID(subjectID)
	s.CurrentRoom = s.SpawnRoom
	Stun(s, def, now)
}

// Stun freezes s for its shock resistance and drops its plans. The hop timer
// restarts when the stun wears off.
func Stun(s *state.SubjectState, def subjects.Definition, now time.Time) {
	s.StunUntil = now.Add(time.Duration(def.ShockResistance * float64(time.Second)))
	s.LastMoveTime = s.StunUntil
	s.TargetRoom = ""
	s.HopDuration = 0
	s.Charging = false
}

// Visible reports whether a subject shows up on cameras during the given
// sweep. Invisible subjects only show on even sweeps.
func Visible(def subjects.Definition, sweepCount int) bool {
	return def.Ability != subjects.Invisible || sweepCount%2 == 0
}

func scale(d time.Duration, f float64) time.Duration {
	if f <= 0 || d == time.Duration(math.MaxInt64) {
		return d
	}
	return time.Duration(float64(d) * f)
}
