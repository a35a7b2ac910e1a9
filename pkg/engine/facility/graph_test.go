package facility

import (
	"errors"
	"testing"
)

// diamond builds a small facility:
//
//	a - b - fin - ctrl
//	 \- c -/
//
// a reaches fin through b or c in the same number of hops; b is listed first.
func diamond(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph([]Room{
		{ID: "a", X: 0, Connections: []string{"b", "c"}, IsContainmentRoom: true},
		{ID: "b", X: 1, Connections: []string{"a", "fin"}},
		{ID: "c", X: 1, Connections: []string{"a", "fin"}},
		{ID: "fin", X: 2, Connections: []string{"b", "c", "ctrl"}, IsFinalRoom: true, ApproachDirection: Front},
		{ID: "ctrl", X: 2, Connections: []string{"fin"}, IsControlRoom: true},
	})
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestPathToControl_FirstDiscoveredShortestPathWins(t *testing.T) {
	g := diamond(t)
	got := g.PathToControl("a")
	want := []string{"a", "b", "fin", "ctrl"}
	if len(got) != len(want) {
		t.Fatalf("PathToControl(a) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PathToControl(a) = %v, want %v", got, want)
		}
	}
}

func TestPathToControl_FromControl(t *testing.T) {
	g := diamond(t)
	got := g.PathToControl("ctrl")
	if len(got) != 1 || got[0] != "ctrl" {
		t.Errorf("PathToControl(ctrl) = %v, want [ctrl]", got)
	}
	if hop := g.NextHop("ctrl"); hop != "" {
		t.Errorf("NextHop(ctrl) = %q, want empty", hop)
	}
}

func TestPathToControl_UnknownRoom(t *testing.T) {
	g := diamond(t)
	if got := g.PathToControl("nowhere"); got != nil {
		t.Errorf("PathToControl(nowhere) = %v, want nil", got)
	}
	if d := g.Distance("nowhere"); d != -1 {
		t.Errorf("Distance(nowhere) = %d, want -1", d)
	}
	if got := g.ConnectedRooms("nowhere"); len(got) != 0 {
		t.Errorf("ConnectedRooms(nowhere) = %v, want empty", got)
	}
}

func TestDistance(t *testing.T) {
	g := diamond(t)
	if d := g.Distance("a"); d != 3 {
		t.Errorf("Distance(a) = %d, want 3", d)
	}
}

func TestApproachDirection_ExplicitAndFallback(t *testing.T) {
	g := diamond(t)
	if d := g.ApproachDirection("fin"); d != Front {
		t.Errorf("ApproachDirection(fin) = %v, want front", d)
	}
	if d := g.ApproachDirection("a"); d != Left {
		t.Errorf("ApproachDirection(a) = %v, want left (x < control x)", d)
	}
	if d := g.ApproachDirection("nowhere"); d != Front {
		t.Errorf("ApproachDirection(nowhere) = %v, want front", d)
	}
}

func TestIsContainmentRoom(t *testing.T) {
	g := diamond(t)
	if !g.IsContainmentRoom("a") {
		t.Error("IsContainmentRoom(a) = false, want true")
	}
	if g.IsContainmentRoom("b") {
		t.Error("IsContainmentRoom(b) = true, want false")
	}
}

func TestNewGraph_RejectsDisconnected(t *testing.T) {
	_, err := NewGraph([]Room{
		{ID: "ctrl", Connections: nil, IsControlRoom: true},
		{ID: "island", Connections: nil},
	})
	if !errors.Is(err, ErrDisconnected) {
		t.Errorf("NewGraph(disconnected) error = %v, want ErrDisconnected", err)
	}
}

func TestNewGraph_RejectsAsymmetric(t *testing.T) {
	_, err := NewGraph([]Room{
		{ID: "ctrl", Connections: []string{"a"}, IsControlRoom: true},
		{ID: "a", Connections: nil},
	})
	if !errors.Is(err, ErrAsymmetric) {
		t.Errorf("NewGraph(asymmetric) error = %v, want ErrAsymmetric", err)
	}
}

func TestNewGraph_RequiresSingleControlRoom(t *testing.T) {
	if _, err := NewGraph([]Room{{ID: "a"}}); !errors.Is(err, ErrNoControlRoom) {
		t.Errorf("NewGraph(no control) error = %v, want ErrNoControlRoom", err)
	}
	_, err := NewGraph([]Room{
		{ID: "c1", Connections: []string{"c2"}, IsControlRoom: true},
		{ID: "c2", Connections: []string{"c1"}, IsControlRoom: true},
	})
	if !errors.Is(err, ErrMultipleControlRoom) {
		t.Errorf("NewGraph(two controls) error = %v, want ErrMultipleControlRoom", err)
	}
}

func TestNewGraph_FinalRoomNeedsDirection(t *testing.T) {
	_, err := NewGraph([]Room{
		{ID: "ctrl", Connections: []string{"fin"}, IsControlRoom: true},
		{ID: "fin", Connections: []string{"ctrl"}, IsFinalRoom: true},
	})
	if !errors.Is(err, ErrFinalRoomDirection) {
		t.Errorf("NewGraph(final without direction) error = %v, want ErrFinalRoomDirection", err)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range AllDirections() {
		if got := ParseDirection(d.String()); got != d {
			t.Errorf("ParseDirection(%q) = %v, want %v", d.String(), got, d)
		}
	}
	if got := ParseDirection("up"); got != None {
		t.Errorf("ParseDirection(up) = %v, want none", got)
	}
}
