package nights

import "testing"

func TestNext(t *testing.T) {
	cases := map[int]int{0: 0, 1: 2, 4: 5, 5: 0, 9: 0}
	for in, want := range cases {
		if got := Next(in); got != want {
			t.Errorf("Next(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestFor_Pacing(t *testing.T) {
	if m := For(1).SpeedMultiplier; m != 1 {
		t.Errorf("For(1).SpeedMultiplier = %v, want 1", m)
	}
	for n := 2; n <= Total; n++ {
		if For(n).SpeedMultiplier <= For(n-1).SpeedMultiplier {
			t.Errorf("night %d is not faster than night %d", n, n-1)
		}
	}
	if m := For(42).SpeedMultiplier; m != 1 {
		t.Errorf("For(42).SpeedMultiplier = %v, want 1", m)
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{"": Normal, "normal": Normal, "HARD": Hard, " nightmare ": Nightmare}
	for in, want := range cases {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Errorf("ParseDifficulty(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("ParseDifficulty(impossible): want error")
	}
}

func TestDrainMultiplier(t *testing.T) {
	want := map[Difficulty]float64{Normal: 1, Hard: 1.2, Nightmare: 1.4}
	for d, m := range want {
		if got := d.DrainMultiplier(); got != m {
			t.Errorf("%v.DrainMultiplier() = %v, want %v", d, got, m)
		}
	}
}
