package entities

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownCamera     = errors.New("no camera in room")
	ErrCameraNotOffline  = errors.New("camera is online")
	ErrCameraRebooting   = errors.New("camera is already rebooting")
	ErrCameraBankNoPower = errors.New("camera bank has no power")
)

// Camera is one room's camera. At most one ramp (manual reboot or auto-repair)
// runs at a time.
type Camera struct {
	RoomID             string
	IsOnline           bool
	IsRebooting        bool
	RebootProgress     float64 // 0..100
	AutoRepairProgress float64 // 0..100

	repairing     bool
	rebootStarted time.Time
	repairStarted time.Time
}

// IsRepairing reports whether the auto-repair ramp is running.
func (c Camera) IsRepairing() bool {
	return c.repairing
}

// CameraBank is the set of cameras, one per room, in room order.
type CameraBank struct {
	cams       []Camera
	index      map[string]int
	rebootTime time.Duration
	repairTime time.Duration
	dead       bool
}

// NewCameraBank builds an all-online bank covering roomIDs.
func NewCameraBank(roomIDs []string, rebootTime, repairTime time.Duration) CameraBank {
	b := CameraBank{
		cams:       make([]Camera, 0, len(roomIDs)),
		index:      make(map[string]int, len(roomIDs)),
		rebootTime: rebootTime,
		repairTime: repairTime,
	}
	for _, id := range roomIDs {
		if _, dup := b.index[id]; dup {
			continue
		}
		b.index[id] = len(b.cams)
		b.cams = append(b.cams, Camera{RoomID: id, IsOnline: true})
	}
	return b
}

// Get returns the camera in roomID.
func (b *CameraBank) Get(roomID string) (Camera, bool) {
	i, ok := b.index[roomID]
	if !ok {
		return Camera{}, false
	}
	return b.cams[i], true
}

// Has reports whether roomID has a camera.
func (b *CameraBank) Has(roomID string) bool {
	_, ok := b.index[roomID]
	return ok
}

// IsOnline reports whether roomID has a working camera.
func (b *CameraBank) IsOnline(roomID string) bool {
	c, ok := b.Get(roomID)
	return ok && c.IsOnline
}

// Jam knocks an online camera offline and starts auto-repair. It reports
// whether the camera went down.
func (b *CameraBank) Jam(roomID string, now time.Time) bool {
	i, ok := b.index[roomID]
	if !ok || b.dead || !b.cams[i].IsOnline {
		return false
	}
	c := &b.cams[i]
	c.IsOnline = false
	c.IsRebooting = false
	c.RebootProgress = 0
	c.repairing = true
	c.repairStarted = now
	c.AutoRepairProgress = 0
	return true
}

// StartReboot begins a manual reboot of an offline camera, cancelling any
// auto-repair in progress.
func (b *CameraBank) StartReboot(roomID string, now time.Time) error {
	i, ok := b.index[roomID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCamera, roomID)
	}
	if b.dead {
		return ErrCameraBankNoPower
	}
	c := &b.cams[i]
	if c.IsOnline {
		return fmt.Errorf("%w: %s", ErrCameraNotOffline, roomID)
	}
	if c.IsRebooting {
		return fmt.Errorf("%w: %s", ErrCameraRebooting, roomID)
	}
	c.IsRebooting = true
	c.rebootStarted = now
	c.RebootProgress = 0
	c.repairing = false
	c.AutoRepairProgress = 0
	return nil
}

// Advance moves every ramp to now and returns the rooms whose cameras came
// back online.
func (b *CameraBank) Advance(now time.Time) []string {
	if b.dead {
		return nil
	}
	var restored []string
	for i := range b.cams {
		c := &b.cams[i]
		switch {
		case c.IsRebooting:
			c.RebootProgress = progress(now.Sub(c.rebootStarted), b.rebootTime)
			if c.RebootProgress >= 100 {
				c.IsOnline = true
				c.IsRebooting = false
				c.RebootProgress = 0
				restored = append(restored, c.RoomID)
			}
		case c.repairing:
			c.AutoRepairProgress = progress(now.Sub(c.repairStarted), b.repairTime)
			if c.AutoRepairProgress >= 100 {
				c.IsOnline = true
				c.repairing = false
				c.AutoRepairProgress = 0
				restored = append(restored, c.RoomID)
			}
		}
	}
	return restored
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 100
	}
	p := float64(elapsed) / float64(total) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Online returns the rooms with working cameras, in room order.
func (b *CameraBank) Online() []string {
	var out []string
	for _, c := range b.cams {
		if c.IsOnline {
			out = append(out, c.RoomID)
		}
	}
	return out
}

// All returns a copy of every camera.
func (b *CameraBank) All() []Camera {
	return append([]Camera(nil), b.cams...)
}

// Shutdown takes every camera down for good: no ramps run and nothing can be
// rebooted afterwards. Used when power runs out.
func (b *CameraBank) Shutdown() {
	b.dead = true
	for i := range b.cams {
		b.cams[i] = Camera{RoomID: b.cams[i].RoomID}
	}
}

// Dead reports whether the bank has been shut down.
func (b *CameraBank) Dead() bool {
	return b.dead
}

// Clone returns an independent copy.
func (b *CameraBank) Clone() CameraBank {
	c := *b
	c.cams = b.All()
	c.index = make(map[string]int, len(b.index))
	for k, v := range b.index {
		c.index[k] = v
	}
	return c
}
