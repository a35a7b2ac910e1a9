package gameplay

import (
	"fmt"
	"time"

	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/game/actions"
	"containmentbreach/pkg/game/nights"
	"containmentbreach/pkg/game/power"
	"containmentbreach/pkg/game/state"
)

// Command is one player or front-end request handled by Session.Apply.
type Command interface {
	fmt.Stringer
	apply(s *Session, now time.Time) actions.Result
}

// StartNight begins night N from any screen outside a running night.
type StartNight struct{ Night int }

// PlaceLure drops a lure in Room.
type PlaceLure struct{ Room string }

// ActivateShock shocks the containment room Room.
type ActivateShock struct{ Room string }

// BlockDoor shuts the door on one side.
type BlockDoor struct{ Direction facility.Direction }

// ReleaseDoor opens the door.
type ReleaseDoor struct{}

// RebootCamera starts a manual reboot of Room's camera.
type RebootCamera struct{ Room string }

// SelectCamera changes the feed; an empty Room returns to the map.
type SelectCamera struct{ Room string }

// EndGame ends the running night outright.
type EndGame struct {
	Victory  bool
	KilledBy string
}

// ReturnToMenu abandons whatever is on screen and goes to the main menu.
type ReturnToMenu struct{}

// OpenLore shows the document archive.
type OpenLore struct{}

// Pause freezes the night.
type Pause struct{}

// SetDifficulty changes the difficulty used by the next night.
type SetDifficulty struct{ Difficulty nights.Difficulty }

// Resume unfreezes the night.
type Resume struct{}

func (c StartNight) String() string    { return fmt.Sprintf("start_night(%d)", c.Night) }
func (c PlaceLure) String() string     { return fmt.Sprintf("place_lure(%s)", c.Room) }
func (c ActivateShock) String() string { return fmt.Sprintf("activate_shock(%s)", c.Room) }
func (c BlockDoor) String() string     { return fmt.Sprintf("block_door(%s)", c.Direction) }
func (ReleaseDoor) String() string     { return "release_door" }
func (c RebootCamera) String() string  { return fmt.Sprintf("reboot_camera(%s)", c.Room) }
func (c SelectCamera) String() string  { return fmt.Sprintf("select_camera(%s)", c.Room) }
func (c EndGame) String() string       { return fmt.Sprintf("end_game(%t,%s)", c.Victory, c.KilledBy) }
func (ReturnToMenu) String() string    { return "return_to_menu" }
func (OpenLore) String() string        { return "open_lore" }
func (Pause) String() string           { return "pause" }
func (Resume) String() string          { return "resume" }
func (c SetDifficulty) String() string { return fmt.Sprintf("set_difficulty(%s)", c.Difficulty) }

func (c StartNight) apply(s *Session, now time.Time) actions.Result {
	if s.gs.Phase.InNight() {
		return actions.Reject(actions.ReasonInvalidPhase)
	}
	if !nights.Valid(c.Night) || !s.gs.IsNightUnlocked(c.Night) {
		return actions.Reject(actions.ReasonNightLocked)
	}
	s.startNight(c.Night)
	return actions.OK()
}

func (c PlaceLure) apply(s *Session, now time.Time) actions.Result {
	return s.actions.PlaceLure(&s.gs, c.Room, now, &s.buf)
}

func (c ActivateShock) apply(s *Session, now time.Time) actions.Result {
	return s.actions.ActivateShock(&s.gs, c.Room, now, &s.buf)
}

func (c BlockDoor) apply(s *Session, now time.Time) actions.Result {
	res := s.actions.BlockDoor(&s.gs, c.Direction, now, &s.buf)
	if res.OK {
		// A slam that matches a live warning deflects it at once.
		s.resolveBreach(now)
	}
	return res
}

func (ReleaseDoor) apply(s *Session, now time.Time) actions.Result {
	return s.actions.ReleaseDoor(&s.gs, now, &s.buf)
}

func (c RebootCamera) apply(s *Session, now time.Time) actions.Result {
	return s.actions.RebootCamera(&s.gs, c.Room, now)
}

func (c SelectCamera) apply(s *Session, now time.Time) actions.Result {
	return s.actions.SelectCamera(&s.gs, c.Room)
}

func (c EndGame) apply(s *Session, now time.Time) actions.Result {
	if !s.gs.Phase.InNight() {
		return actions.Reject(actions.ReasonInvalidPhase)
	}
	if s.sched.Paused() {
		s.sched.Resume()
	}
	if c.Victory {
		s.win(now)
	} else {
		s.lose(now, c.KilledBy)
	}
	return actions.OK()
}

func (ReturnToMenu) apply(s *Session, now time.Time) actions.Result {
	s.endNight()
	s.gs.Phase = state.PhaseMenu
	s.gs.ClearMessages()
	return actions.OK()
}

func (OpenLore) apply(s *Session, now time.Time) actions.Result {
	if s.gs.Phase.InNight() {
		return actions.Reject(actions.ReasonInvalidPhase)
	}
	s.gs.Phase = state.PhaseLore
	return actions.OK()
}

func (Pause) apply(s *Session, now time.Time) actions.Result {
	if s.gs.Phase != state.PhasePlaying {
		return actions.Reject(actions.ReasonInvalidPhase)
	}
	s.sched.Pause()
	s.gs.Phase = state.PhasePaused
	return actions.OK()
}

func (Resume) apply(s *Session, now time.Time) actions.Result {
	if s.gs.Phase != state.PhasePaused {
		return actions.Reject(actions.ReasonInvalidPhase)
	}
	s.gs.Phase = state.PhasePlaying
	s.sched.Resume()
	return actions.OK()
}

func (c SetDifficulty) apply(s *Session, now time.Time) actions.Result {
	if s.gs.Phase.InNight() {
		return actions.Reject(actions.ReasonInvalidPhase)
	}
	s.gs.Difficulty = c.Difficulty
	s.economy = power.New(s.opts.Tuning, c.Difficulty)
	return actions.OK()
}
