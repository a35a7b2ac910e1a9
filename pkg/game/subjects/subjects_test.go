package subjects

import (
	"testing"

	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/engine/sim"
)

// line is spawn - a - b - fin - ctrl, with a spur a - side.
func line(t *testing.T) *facility.Graph {
	t.Helper()
	g, err := facility.NewGraph([]facility.Room{
		{ID: "spawn", Connections: []string{"a"}, IsContainmentRoom: true},
		{ID: "a", Connections: []string{"spawn", "b", "side"}},
		{ID: "side", Connections: []string{"a"}},
		{ID: "b", Connections: []string{"a", "fin"}},
		{ID: "fin", Connections: []string{"b", "ctrl"}, IsFinalRoom: true, ApproachDirection: facility.Front},
		{ID: "ctrl", Connections: []string{"fin"}, IsControlRoom: true},
	})
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestBehaviors_HopScale(t *testing.T) {
	g := line(t)
	cases := []struct {
		kind     BehaviorKind
		charging bool
		want     float64
	}{
		{Methodical, false, 1},
		{Aggressive, false, 0.75},
		{Sneaky, false, 1},
		{Foxy, false, 1},
		{Foxy, true, 0.5},
	}
	for _, c := range cases {
		m := BehaviorFor(c.kind).NextMove(MoveContext{Graph: g, Current: "a", Rand: sim.NewSequence(0.99), Charging: c.charging})
		if m.Target != "b" {
			t.Errorf("%s NextMove(a).Target = %q, want b", c.kind, m.Target)
		}
		if m.HopScale != c.want {
			t.Errorf("%s (charging=%v) HopScale = %v, want %v", c.kind, c.charging, m.HopScale, c.want)
		}
	}
}

func TestErratic_WandersOnLowRoll(t *testing.T) {
	g := line(t)
	// 0.1 < 0.3 wanders; 0.9 picks the last of [spawn b side].
	m := BehaviorFor(Erratic).NextMove(MoveContext{Graph: g, Current: "a", Rand: sim.NewSequence(0.1, 0.9)})
	if m.Target != "side" {
		t.Errorf("erratic wander target = %q, want side", m.Target)
	}
}

func TestErratic_NeverWandersIntoControl(t *testing.T) {
	g := line(t)
	for _, roll := range []float64{0, 0.5, 0.99} {
		m := BehaviorFor(Erratic).NextMove(MoveContext{Graph: g, Current: "fin", Rand: sim.NewSequence(0.1, roll)})
		if m.Target == "ctrl" {
			t.Errorf("erratic wander from fin with roll %v chose control", roll)
		}
	}
}

func TestSneaky_Stall(t *testing.T) {
	b := BehaviorFor(Sneaky)
	if !b.Stall(sim.NewSequence(0.19)) {
		t.Error("Stall(0.19) = false, want true")
	}
	if b.Stall(sim.NewSequence(0.2)) {
		t.Error("Stall(0.2) = true, want false")
	}
	if BehaviorFor(Methodical).Stall(sim.NewSequence(0)) {
		t.Error("methodical Stall = true, want false")
	}
}

func TestRoster_ForNight(t *testing.T) {
	got := DefaultRoster.ForNight(1)
	if len(got) != 1 || got[0].ID != "Z-01" {
		t.Errorf("ForNight(1) = %v, want [Z-01]", got.IDs())
	}
	if n := len(DefaultRoster.ForNight(5)); n != len(DefaultRoster) {
		t.Errorf("len(ForNight(5)) = %d, want %d", n, len(DefaultRoster))
	}
}

func TestRoster_Integrity(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range DefaultRoster {
		if seen[d.ID] {
			t.Errorf("duplicate subject %s", d.ID)
		}
		seen[d.ID] = true
		if d.Speed <= 0 {
			t.Errorf("%s speed = %v, want > 0", d.ID, d.Speed)
		}
		if d.LureSensitivity < 0 || d.LureSensitivity > 1 {
			t.Errorf("%s lure sensitivity = %v, want [0,1]", d.ID, d.LureSensitivity)
		}
	}
	foxy, ok := ByID("Z-07")
	if !ok || foxy.Lurable() {
		t.Errorf("Z-07 Lurable() = true, want false")
	}
}
