package subjects

import (
	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/engine/sim"
)

const (
	aggressiveHopScale = 0.75
	foxyChargeHopScale = 0.5
	sneakyStallChance  = 0.2
	erraticWanderOdds  = 0.3
)

// MoveContext is what a behaviour sees when choosing the next hop.
type MoveContext struct {
	Graph    *facility.Graph
	Current  string
	Rand     sim.Rand
	Charging bool // Foxy rush latch
}

// Move is a behaviour's decision: where to go next and how the base hop time
// is scaled for that hop. An empty Target means stay put.
type Move struct {
	Target   string
	HopScale float64
}

// Behavior chooses moves for one archetype.
type Behavior interface {
	Kind() BehaviorKind
	// NextMove picks the next room when the subject has no target.
	NextMove(ctx MoveContext) Move
	// Stall reports whether the subject holds still this tick.
	Stall(r sim.Rand) bool
}

// BehaviorFor returns the behaviour implementation for kind. Unknown kinds
// walk like methodical subjects.
func BehaviorFor(kind BehaviorKind) Behavior {
	switch kind {
	case Aggressive:
		return aggressive{}
	case Sneaky:
		return sneaky{}
	case Erratic:
		return erratic{}
	case Foxy:
		return foxy{}
	default:
		return methodical{}
	}
}

func shortest(ctx MoveContext, scale float64) Move {
	return Move{Target: ctx.Graph.NextHop(ctx.Current), HopScale: scale}
}

type methodical struct{}

func (methodical) Kind() BehaviorKind            { return Methodical }
func (methodical) NextMove(ctx MoveContext) Move { return shortest(ctx, 1) }
func (methodical) Stall(sim.Rand) bool           { return false }

type aggressive struct{}

func (aggressive) Kind() BehaviorKind            { return Aggressive }
func (aggressive) NextMove(ctx MoveContext) Move { return shortest(ctx, aggressiveHopScale) }
func (aggressive) Stall(sim.Rand) bool           { return false }

type sneaky struct{}

func (sneaky) Kind() BehaviorKind            { return Sneaky }
func (sneaky) NextMove(ctx MoveContext) Move { return shortest(ctx, 1) }

// Stall is the stealth pause.
func (sneaky) Stall(r sim.Rand) bool {
	return r.Float64() < sneakyStallChance
}

type erratic struct{}

func (erratic) Kind() BehaviorKind  { return Erratic }
func (erratic) Stall(sim.Rand) bool { return false }

func (erratic) NextMove(ctx MoveContext) Move {
	if ctx.Rand.Float64() >= erraticWanderOdds {
		return shortest(ctx, 1)
	}
	var candidates []string
	for _, r := range ctx.Graph.ConnectedRooms(ctx.Current) {
		if !r.IsControlRoom {
			candidates = append(candidates, r.ID)
		}
	}
	if len(candidates) == 0 {
		return shortest(ctx, 1)
	}
	return Move{Target: candidates[ctx.Rand.Intn(len(candidates))], HopScale: 1}
}

type foxy struct{}

func (foxy) Kind() BehaviorKind  { return Foxy }
func (foxy) Stall(sim.Rand) bool { return false }

func (foxy) NextMove(ctx MoveContext) Move {
	if ctx.Charging {
		return shortest(ctx, foxyChargeHopScale)
	}
	return shortest(ctx, 1)
}
