// Package subjects defines the subject archetypes, their roster and the
// movement behaviour each archetype follows.
package subjects

import (
	"strings"
)

// BehaviorKind tags a subject archetype's movement style.
type BehaviorKind string

const (
	Aggressive BehaviorKind = "aggressive"
	Sneaky     BehaviorKind = "sneaky"
	Erratic    BehaviorKind = "erratic"
	Methodical BehaviorKind = "methodical"
	Foxy       BehaviorKind = "foxy"
)

// Ability is an optional special trait.
type Ability string

const (
	NoAbility    Ability = ""
	CameraJam    Ability = "camera_jam"
	PackMovement Ability = "pack_movement"
	Teleport     Ability = "teleport"
	Invisible    Ability = "invisible"
	PowerDrain   Ability = "power_drain"
	IgnoresLures Ability = "ignores_lures"
)

// IsOneShot reports whether the ability fires at most once per night.
func (a Ability) IsOneShot() bool {
	switch a {
	case CameraJam, PowerDrain, Teleport:
		return true
	}
	return false
}

// Definition is the static description of a subject archetype.
type Definition struct {
	ID              string
	Name            string
	Behavior        BehaviorKind
	Speed           float64 // Rooms per minute
	LureSensitivity float64 // 0 is immune
	ShockResistance float64 // Seconds stunned after a shock or repel
	Ability         Ability
	Description     string
	DeathHint       string
	ActiveOnNight   int
	SpawnRoom       string // Empty assigns a spawn room at night start
}

// Lurable reports whether lures can steer this subject at all.
func (d Definition) Lurable() bool {
	return d.LureSensitivity > 0 && d.Ability != IgnoresLures
}

// Label is "ID Name" for log lines and game-over screens.
func (d Definition) Label() string {
	return strings.TrimSpace(d.ID + " " + d.Name)
}
