// Package power runs the night clock and the power budget: passive, sweep and
// door drains, lump costs, and what happens when the grid hits zero.
package power

import (
	"time"

	"containmentbreach/pkg/game/config"
	"containmentbreach/pkg/game/events"
	"containmentbreach/pkg/game/nights"
	"containmentbreach/pkg/game/state"
)

// Economy applies the drains for one difficulty.
type Economy struct {
	Tuning     config.Tuning
	Difficulty nights.Difficulty
}

// New returns an Economy.
func New(t config.Tuning, d nights.Difficulty) Economy {
	return Economy{Tuning: t, Difficulty: d}
}

// Drain removes amount from the budget, clamping at zero. The drain that
// empties the budget cuts the facility: the door opens, every camera dies and
// lures fall silent. It reports whether this call caused the outage.
func (e Economy) Drain(gs *state.GameState, amount float64, now time.Time, sink events.Sink) bool {
	if amount <= 0 || gs.PowerOut {
		return false
	}
	gs.Power -= amount
	if gs.Power > 0 {
		return false
	}
	gs.Power = 0
	gs.PowerOut = true

	if gs.Door.Release() {
		sink.Emit(events.Event{Type: events.DoorReleased, At: now, Night: gs.CurrentNight})
	}
	gs.Cameras.Shutdown()
	gs.Lures.Clear()
	sink.Emit(events.Event{Type: events.PowerOut, At: now, Night: gs.CurrentNight})
	return true
}

// Step applies dt of passive drain, plus door drain while the door is held,
// then moves the clock to now.
func (e Economy) Step(gs *state.GameState, now time.Time, dt time.Duration, sink events.Sink) {
	secs := dt.Seconds()
	mult := e.Difficulty.DrainMultiplier()
	drain := e.Tuning.PassiveDrain * secs * mult
	if gs.Door.IsBlocked() {
		drain += e.Tuning.DoorDrain * secs * mult
	}
	e.Drain(gs, drain, now, sink)

	gs.Clock = e.ClockAt(now.Sub(gs.NightStartedAt))
	gs.MemeticIntensity = MemeticIntensity(gs.Clock/e.Tuning.ClockMax, gs.Breach.Active, gs.Power)
}

// Sweep charges one camera ping sweep.
func (e Economy) Sweep(gs *state.GameState, now time.Time, sink events.Sink) {
	e.Drain(gs, e.Tuning.CameraDrain*e.Difficulty.DrainMultiplier(), now, sink)
}

// ClockAt maps time into the night onto 0..ClockMax.
func (e Economy) ClockAt(elapsed time.Duration) float64 {
	if elapsed <= 0 || e.Tuning.NightDuration <= 0 {
		return 0
	}
	c := float64(elapsed) / float64(e.Tuning.NightDuration) * e.Tuning.ClockMax
	if c > e.Tuning.ClockMax {
		return e.Tuning.ClockMax
	}
	return c
}

// NightOver reports whether the clock has run out with no breach pending.
func (e Economy) NightOver(gs *state.GameState) bool {
	return gs.Clock >= e.Tuning.ClockMax && !gs.Breach.Active
}

// MemeticIntensity is a 0..1 presentation hint for screen distortion. It rises
// through the night, spikes during a breach warning and when power runs low.
func MemeticIntensity(progress float64, breachActive bool, power float64) float64 {
	v := 0.6 * progress
	if breachActive {
		v += 0.3
	}
	if power < 20 {
		v += 0.1
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// HourLabel turns the clock into the 12 AM .. 6 AM shift hour.
func HourLabel(clock float64) int {
	h := int(clock / 60)
	if h == 0 {
		return 12
	}
	return h
}
