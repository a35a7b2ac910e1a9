package actions

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/engine/logger"
	"containmentbreach/pkg/game/ai"
	"containmentbreach/pkg/game/config"
	"containmentbreach/pkg/game/entities"
	"containmentbreach/pkg/game/events"
	"containmentbreach/pkg/game/power"
	"containmentbreach/pkg/game/state"
	"containmentbreach/pkg/game/subjects"
)

// Resolver applies player actions to a GameState.
type Resolver struct {
	graph  *facility.Graph
	roster subjects.Roster
	tuning config.Tuning
	newID  func() string
	log    *logrus.Entry
}

// NewResolver returns a resolver. Lure ids are random UUIDs.
func NewResolver(graph *facility.Graph, roster subjects.Roster, tuning config.Tuning) *Resolver {
	return &Resolver{
		graph:  graph,
		roster: roster,
		tuning: tuning,
		newID:  uuid.NewString,
		log:    logger.WithComponent("actions"),
	}
}

// WithIDs replaces the lure id generator.
func (r *Resolver) WithIDs(fn func() string) *Resolver {
	r.newID = fn
	return r
}

func (r *Resolver) economy(gs *state.GameState) power.Economy {
	return power.New(r.tuning, gs.Difficulty)
}

func (r *Resolver) reject(action string, reason Reason) Result {
	r.log.WithFields(logrus.Fields{"action": action, "reason": reason.String()}).Debug("action rejected")
	return Reject(reason)
}

func (r *Resolver) lureReason(gs *state.GameState, roomID string, now time.Time) Reason {
	switch {
	case gs.Phase != state.PhasePlaying:
		return ReasonNotPlaying
	case !r.known(roomID):
		return ReasonUnknownRoom
	case r.graph.IsControlRoom(roomID):
		return ReasonControlRoom
	case gs.PowerOut || gs.Power < r.tuning.LureCost:
		return ReasonNoPower
	case now.Before(gs.LureCooldown):
		return ReasonCooldown
	case !gs.Cameras.IsOnline(roomID):
		return ReasonCameraOffline
	}
	return ReasonNone
}

func (r *Resolver) shockReason(gs *state.GameState, roomID string, now time.Time) Reason {
	switch {
	case gs.Phase != state.PhasePlaying:
		return ReasonNotPlaying
	case !r.known(roomID):
		return ReasonUnknownRoom
	case !r.graph.IsContainmentRoom(roomID):
		return ReasonNotContainment
	case gs.PowerOut || gs.Power < r.tuning.ShockCost:
		return ReasonNoPower
	case now.Before(gs.ShockCooldown):
		return ReasonCooldown
	case !gs.Cameras.IsOnline(roomID):
		return ReasonCameraOffline
	}
	return ReasonNone
}

func (r *Resolver) known(roomID string) bool {
	_, ok := r.graph.RoomByID(roomID)
	return ok
}

// CanUseLure reports whether a lure could be placed in roomID right now.
func (r *Resolver) CanUseLure(gs *state.GameState, roomID string, now time.Time) bool {
	return r.lureReason(gs, roomID, now) == ReasonNone
}

// CanUseShock reports whether roomID could be shocked right now.
func (r *Resolver) CanUseShock(gs *state.GameState, roomID string, now time.Time) bool {
	return r.shockReason(gs, roomID, now) == ReasonNone
}

// CanUseDoors reports whether the door controls respond: either a block is
// available or the current one can be released.
func (r *Resolver) CanUseDoors(gs *state.GameState, now time.Time) bool {
	if gs.Phase != state.PhasePlaying || gs.PowerOut || gs.Power <= 0 {
		return false
	}
	return gs.Door.IsBlocked() || gs.Door.Ready(now)
}

// PlaceLure drops a lure in roomID.
func (r *Resolver) PlaceLure(gs *state.GameState, roomID string, now time.Time, sink events.Sink) Result {
	if reason := r.lureReason(gs, roomID, now); reason != ReasonNone {
		return r.reject("lure", reason)
	}
	l := entities.Lure{ID: r.newID(), RoomID: roomID, ExpiresAt: now.Add(r.tuning.LureDuration)}
	gs.Lures.Place(l)
	gs.LureCooldown = now.Add(r.tuning.LureCooldown)
	sink.Emit(events.Event{Type: events.LurePlaced, At: now, Night: gs.CurrentNight, RoomID: roomID, Amount: r.tuning.LureCost})
	r.economy(gs).Drain(gs, r.tuning.LureCost, now, sink)
	return OK()
}

// ActivateShock stuns every active subject in roomID.
func (r *Resolver) ActivateShock(gs *state.GameState, roomID string, now time.Time, sink events.Sink) Result {
	if reason := r.shockReason(gs, roomID, now); reason != ReasonNone {
		return r.reject("shock", reason)
	}
	stunned := 0
	for i := range gs.Subjects {
		s := &gs.Subjects[i]
		if !s.IsActive || s.CurrentRoom != roomID {
			continue
		}
		def, _ := r.roster.ByID(s.SubjectID)
		ai.Stun(s, def, now)
		stunned++
	}
	gs.ShockCooldown = now.Add(r.tuning.ShockCooldown)
	sink.Emit(events.Event{Type: events.ShockApplied, At: now, Night: gs.CurrentNight, RoomID: roomID, Amount: float64(stunned)})
	r.economy(gs).Drain(gs, r.tuning.ShockCost, now, sink)
	return OK()
}

// BlockDoor shuts the door on one side. Only one side may be shut at a time.
func (r *Resolver) BlockDoor(gs *state.GameState, dir facility.Direction, now time.Time, sink events.Sink) Result {
	switch {
	case gs.Phase != state.PhasePlaying:
		return r.reject("block_door", ReasonNotPlaying)
	case !dir.IsValid():
		return r.reject("block_door", ReasonInvalidDirection)
	case gs.PowerOut || gs.Power <= 0:
		return r.reject("block_door", ReasonNoPower)
	case gs.Door.IsBlocked():
		return r.reject("block_door", ReasonDoorAlreadyBlocked)
	case !gs.Door.Ready(now):
		return r.reject("block_door", ReasonCooldown)
	}
	gs.Door.Block(dir, now, r.tuning.DoorBlockCooldown)
	sink.Emit(events.Event{Type: events.DoorSlam, At: now, Night: gs.CurrentNight, Direction: dir})
	return OK()
}

// ReleaseDoor opens the door.
func (r *Resolver) ReleaseDoor(gs *state.GameState, now time.Time, sink events.Sink) Result {
	if gs.Phase != state.PhasePlaying {
		return r.reject("release_door", ReasonNotPlaying)
	}
	dir := gs.Door.Blocked
	if !gs.Door.Release() {
		return r.reject("release_door", ReasonDoorNotBlocked)
	}
	sink.Emit(events.Event{Type: events.DoorReleased, At: now, Night: gs.CurrentNight, Direction: dir})
	return OK()
}

// RebootCamera starts a manual reboot of an offline camera.
func (r *Resolver) RebootCamera(gs *state.GameState, roomID string, now time.Time) Result {
	cam, ok := gs.Cameras.Get(roomID)
	switch {
	case gs.Phase != state.PhasePlaying:
		return r.reject("reboot", ReasonNotPlaying)
	case !ok:
		return r.reject("reboot", ReasonUnknownRoom)
	case gs.PowerOut || gs.Cameras.Dead():
		return r.reject("reboot", ReasonNoPower)
	case cam.IsOnline:
		return r.reject("reboot", ReasonCameraNotOffline)
	case cam.IsRebooting:
		return r.reject("reboot", ReasonCameraRebooting)
	}
	if err := gs.Cameras.StartReboot(roomID, now); err != nil {
		r.log.WithError(err).Warn("reboot refused after validation")
		return Reject(ReasonCameraRebooting)
	}
	return OK()
}

// SelectCamera picks the camera shown in the feed; "" clears the selection.
func (r *Resolver) SelectCamera(gs *state.GameState, roomID string) Result {
	if !gs.Phase.InNight() {
		return r.reject("select_camera", ReasonNotPlaying)
	}
	if roomID != "" && !gs.Cameras.Has(roomID) {
		return r.reject("select_camera", ReasonUnknownRoom)
	}
	gs.SelectedCamera = roomID
	return OK()
}
