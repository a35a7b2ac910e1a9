// Package entities contains the player-facing facility devices: the control
// room door, the camera bank and lures.
package entities

import (
	"time"

	"containmentbreach/pkg/engine/facility"
)

// Door is the control room's single blast door. At most one direction is
// blocked at a time.
type Door struct {
	Blocked   facility.Direction // None when open
	BlockedAt time.Time
	Cooldown  time.Time // Blocking is allowed again once now >= Cooldown
}

// IsBlocked reports whether any direction is shut.
func (d Door) IsBlocked() bool {
	return d.Blocked != facility.None
}

// Ready reports whether the block cooldown has passed.
func (d Door) Ready(now time.Time) bool {
	return !now.Before(d.Cooldown)
}

// Block shuts dir and starts the cooldown.
func (d *Door) Block(dir facility.Direction, now time.Time, cooldown time.Duration) {
	d.Blocked = dir
	d.BlockedAt = now
	d.Cooldown = now.Add(cooldown)
}

// Release opens the door. It reports whether anything was blocked.
func (d *Door) Release() bool {
	was := d.IsBlocked()
	d.Blocked = facility.None
	d.BlockedAt = time.Time{}
	return was
}

// HeldFor returns how long the current block has lasted.
func (d Door) HeldFor(now time.Time) time.Duration {
	if !d.IsBlocked() {
		return 0
	}
	return now.Sub(d.BlockedAt)
}

// Overheld reports whether the block has reached the hold limit.
func (d Door) Overheld(now time.Time, limit time.Duration) bool {
	return d.IsBlocked() && d.HeldFor(now) >= limit
}
