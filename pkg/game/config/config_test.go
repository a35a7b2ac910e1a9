package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval = %v, want 250ms", cfg.TickInterval)
	}
	if cfg.SweepInterval != 3500*time.Millisecond {
		t.Errorf("SweepInterval = %v, want 3.5s", cfg.SweepInterval)
	}
	if cfg.Difficulty != "normal" || cfg.Renderer != "ebiten" {
		t.Errorf("Difficulty, Renderer = %q, %q; want normal, ebiten", cfg.Difficulty, cfg.Renderer)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CB_TICK_INTERVAL", "500ms")
	t.Setenv("CB_SEED", "7")
	t.Setenv("CB_RENDERER", "tui")
	t.Setenv("CB_SAVE_PATH", "/tmp/progress.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TickInterval != 500*time.Millisecond || cfg.Seed != 7 || cfg.Renderer != "tui" {
		t.Errorf("cfg = %+v, want tick 500ms, seed 7, renderer tui", cfg)
	}
	if got := cfg.Tuning().TickInterval; got != 500*time.Millisecond {
		t.Errorf("Tuning().TickInterval = %v, want 500ms", got)
	}
}

func TestLoad_RejectsTickOutOfRange(t *testing.T) {
	t.Setenv("CB_TICK_INTERVAL", "100ms")
	if _, err := Load(); err == nil {
		t.Error("Load() with 100ms tick: want error")
	}
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Setenv("CB_SWEEP_INTERVAL", "soon")
	if _, err := Load(); err == nil {
		t.Error("Load() with unparsable duration: want error")
	}
}

func TestDefaultTuning(t *testing.T) {
	tu := DefaultTuning()
	if tu.NightDuration != 7*time.Minute {
		t.Errorf("NightDuration = %v, want 7m", tu.NightDuration)
	}
	if tu.ClockMax != 360 {
		t.Errorf("ClockMax = %v, want 360", tu.ClockMax)
	}
	if tu.BreachWarningTime != 3*time.Second {
		t.Errorf("BreachWarningTime = %v, want 3s", tu.BreachWarningTime)
	}
}
