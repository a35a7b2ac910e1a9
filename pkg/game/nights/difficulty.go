package nights

import (
	"fmt"
	"strings"
)

// Difficulty scales power drains and subject pace.
type Difficulty int

const (
	Normal Difficulty = iota
	Hard
	Nightmare
)

func (d Difficulty) String() string {
	switch d {
	case Hard:
		return "hard"
	case Nightmare:
		return "nightmare"
	default:
		return "normal"
	}
}

// ParseDifficulty accepts normal, hard or nightmare, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	case "nightmare":
		return Nightmare, nil
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}

// DrainMultiplier scales passive, sweep and door drains.
func (d Difficulty) DrainMultiplier() float64 {
	switch d {
	case Hard:
		return 1.2
	case Nightmare:
		return 1.4
	default:
		return 1.0
	}
}

// SpeedMultiplier scales subject speed on top of the night's own pacing.
func (d Difficulty) SpeedMultiplier() float64 {
	switch d {
	case Hard:
		return 1.15
	case Nightmare:
		return 1.3
	default:
		return 1.0
	}
}
