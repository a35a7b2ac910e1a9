// Package state holds the game state aggregate for one session. Only the
// session mutates it; everything else reads deep-copied snapshots.
package state

import (
	"slices"
	"time"

	"containmentbreach/pkg/game/breach"
	"containmentbreach/pkg/game/entities"
	"containmentbreach/pkg/game/nights"
)

// Phase is the top-level screen/flow state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseVictory
	PhaseLore
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseVictory:
		return "victory"
	case PhaseLore:
		return "lore"
	default:
		return "menu"
	}
}

// InNight reports whether a night is underway, running or paused.
func (p Phase) InNight() bool {
	return p == PhasePlaying || p == PhasePaused
}

// SubjectState is the dynamic state of one subject during a night.
type SubjectState struct {
	SubjectID    string
	CurrentRoom  string
	TargetRoom   string // Empty when no hop is planned
	StunUntil    time.Time
	IsActive     bool
	LastMoveTime time.Time
	HopDuration  time.Duration // Time the planned hop takes
	UsedAbility  bool
	SpawnRoom    string // Where a repel sends it back to
	Charging     bool
}

// IsStunned reports whether the subject is frozen at now.
func (s SubjectState) IsStunned(now time.Time) bool {
	return now.Before(s.StunUntil)
}

// GameState is everything that changes during play.
type GameState struct {
	Phase        Phase
	CurrentNight int
	Difficulty   nights.Difficulty

	Clock float64 // 0..ClockMax across the night
	Power float64 // 0..100

	Subjects []SubjectState // Roster order
	Cameras  entities.CameraBank
	Door     entities.Door
	Lures    entities.LureSet

	LureCooldown  time.Time
	ShockCooldown time.Time

	LastPingSweep time.Time
	SweepCount    int

	Breach          breach.Warning
	BreachRemaining time.Duration // Filled in on snapshots

	UnlockedNights []int
	UnlockedLore   []string

	MemeticIntensity float64
	SelectedCamera   string
	KilledBy         string
	NightStartedAt   time.Time
	PowerOut         bool

	Messages []string
}

// New returns the menu state with the given unlocks.
func New(unlockedNights []int, unlockedLore []string) GameState {
	return GameState{
		Phase:          PhaseMenu,
		UnlockedNights: slices.Clone(unlockedNights),
		UnlockedLore:   slices.Clone(unlockedLore),
	}
}

// Subject returns a pointer to the named subject's state.
func (g *GameState) Subject(id string) *SubjectState {
	for i := range g.Subjects {
		if g.Subjects[i].SubjectID == id {
			return &g.Subjects[i]
		}
	}
	return nil
}

// SubjectsIn returns the ids of the active subjects in roomID.
func (g *GameState) SubjectsIn(roomID string) []string {
	var out []string
	for _, s := range g.Subjects {
		if s.IsActive && s.CurrentRoom == roomID {
			out = append(out, s.SubjectID)
		}
	}
	return out
}

// IsNightUnlocked reports whether night n can be started.
func (g *GameState) IsNightUnlocked(n int) bool {
	return slices.Contains(g.UnlockedNights, n)
}

// AddMessage appends to the on-screen message log.
func (g *GameState) AddMessage(msg string) {
	const maxMessages = 6
	g.Messages = append(g.Messages, msg)

	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears the message log.
func (g *GameState) ClearMessages() {
	g.Messages = nil
}

// Clone returns a deep copy.
func (g *GameState) Clone() GameState {
	c := *g
	c.Subjects = slices.Clone(g.Subjects)
	c.Cameras = g.Cameras.Clone()
	c.Lures = g.Lures.Clone()
	c.UnlockedNights = slices.Clone(g.UnlockedNights)
	c.UnlockedLore = slices.Clone(g.UnlockedLore)
	c.Messages = slices.Clone(g.Messages)
	return c
}
