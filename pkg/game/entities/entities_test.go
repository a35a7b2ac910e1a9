package entities

import (
	"errors"
	"testing"
	"time"

	"containmentbreach/pkg/engine/facility"
)

var t0 = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func newBank() CameraBank {
	return NewCameraBank([]string{"contain-2", "bridge"}, 3*time.Second, 20*time.Second)
}

func TestCameraBank_ManualReboot(t *testing.T) {
	b := newBank()
	if !b.Jam("contain-2", t0) {
		t.Fatal("Jam(contain-2) = false, want true")
	}
	if b.IsOnline("contain-2") {
		t.Fatal("camera online right after jam")
	}
	if err := b.StartReboot("contain-2", t0.Add(time.Second)); err != nil {
		t.Fatalf("StartReboot() error = %v", err)
	}
	c, _ := b.Get("contain-2")
	if c.IsRepairing() || c.AutoRepairProgress != 0 {
		t.Errorf("auto-repair still running after manual reboot: %+v", c)
	}

	b.Advance(t0.Add(2500 * time.Millisecond))
	c, _ = b.Get("contain-2")
	if c.IsOnline || c.RebootProgress != 50 {
		t.Errorf("after 1.5s of 3s reboot: online=%v progress=%v, want false 50", c.IsOnline, c.RebootProgress)
	}

	restored := b.Advance(t0.Add(4 * time.Second))
	if len(restored) != 1 || restored[0] != "contain-2" {
		t.Errorf("Advance() restored %v, want [contain-2]", restored)
	}
	if !b.IsOnline("contain-2") {
		t.Error("camera offline after reboot completed")
	}
}

func TestCameraBank_AutoRepair(t *testing.T) {
	b := newBank()
	b.Jam("bridge", t0)

	b.Advance(t0.Add(10 * time.Second))
	c, _ := b.Get("bridge")
	if c.AutoRepairProgress != 50 {
		t.Errorf("AutoRepairProgress after 10s = %v, want 50", c.AutoRepairProgress)
	}
	b.Advance(t0.Add(20 * time.Second))
	if !b.IsOnline("bridge") {
		t.Error("camera offline after 20s auto-repair")
	}
}

func TestCameraBank_RebootErrors(t *testing.T) {
	b := newBank()
	if err := b.StartReboot("bridge", t0); !errors.Is(err, ErrCameraNotOffline) {
		t.Errorf("StartReboot(online) error = %v, want ErrCameraNotOffline", err)
	}
	if err := b.StartReboot("control", t0); !errors.Is(err, ErrUnknownCamera) {
		t.Errorf("StartReboot(control) error = %v, want ErrUnknownCamera", err)
	}
	b.Jam("bridge", t0)
	if err := b.StartReboot("bridge", t0); err != nil {
		t.Fatalf("StartReboot() error = %v", err)
	}
	if err := b.StartReboot("bridge", t0); !errors.Is(err, ErrCameraRebooting) {
		t.Errorf("StartReboot(rebooting) error = %v, want ErrCameraRebooting", err)
	}
}

func TestCameraBank_Shutdown(t *testing.T) {
	b := newBank()
	b.Jam("bridge", t0)
	b.Shutdown()
	if len(b.Online()) != 0 {
		t.Errorf("Online() after Shutdown = %v, want none", b.Online())
	}
	if restored := b.Advance(t0.Add(time.Minute)); len(restored) != 0 {
		t.Errorf("Advance() after Shutdown restored %v", restored)
	}
	if err := b.StartReboot("bridge", t0); !errors.Is(err, ErrCameraBankNoPower) {
		t.Errorf("StartReboot() after Shutdown error = %v, want ErrCameraBankNoPower", err)
	}
}

func TestCameraBank_CloneIsIndependent(t *testing.T) {
	b := newBank()
	c := b.Clone()
	b.Jam("bridge", t0)
	if !c.IsOnline("bridge") {
		t.Error("jam leaked into clone")
	}
}

func TestLureSet(t *testing.T) {
	var s LureSet
	s.Place(Lure{ID: "a", RoomID: "bridge", ExpiresAt: t0.Add(15 * time.Second)})
	s.Place(Lure{ID: "b", RoomID: "hall-mid", ExpiresAt: t0.Add(5 * time.Second)})

	if !s.ActiveIn("bridge", t0.Add(14*time.Second)) {
		t.Error("ActiveIn(bridge, 14s) = false, want true")
	}
	if s.ActiveIn("hall-mid", t0.Add(5*time.Second)) {
		t.Error("ActiveIn(hall-mid, 5s) = true, want false (expired at deadline)")
	}

	expired := s.Purge(t0.Add(5 * time.Second))
	if len(expired) != 1 || expired[0].ID != "b" {
		t.Errorf("Purge() = %v, want [b]", expired)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestDoor(t *testing.T) {
	var d Door
	if d.IsBlocked() || !d.Ready(t0) {
		t.Fatal("zero door should be open and ready")
	}
	d.Block(facility.Left, t0, 5*time.Second)
	if d.Ready(t0.Add(4 * time.Second)) {
		t.Error("Ready(4s) = true, want false")
	}
	if !d.Ready(t0.Add(5 * time.Second)) {
		t.Error("Ready(5s) = false, want true")
	}
	if d.Overheld(t0.Add(1999*time.Millisecond), 2*time.Second) {
		t.Error("Overheld(1.999s) = true, want false")
	}
	if !d.Overheld(t0.Add(2*time.Second), 2*time.Second) {
		t.Error("Overheld(2s) = false, want true")
	}
	if !d.Release() || d.IsBlocked() {
		t.Error("Release() did not open the door")
	}
	if d.Release() {
		t.Error("Release() on open door = true, want false")
	}
}
