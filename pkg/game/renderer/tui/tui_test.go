package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"

	"containmentbreach/pkg/engine/input"
	"containmentbreach/pkg/engine/sim"
	"containmentbreach/pkg/game/gameplay"
	"containmentbreach/pkg/game/renderer"
	"containmentbreach/pkg/game/state"
)

func newRenderer(t *testing.T) (*TUIRenderer, *renderer.Driver, *strings.Builder) {
	t.Helper()
	color.Enable = false
	t.Cleanup(func() { color.Enable = true })

	s, err := gameplay.NewSession(context.Background(), gameplay.Options{Rand: sim.NewSequence(0.99)})
	if err != nil {
		t.Fatalf("NewSession() err = %v", err)
	}
	var out strings.Builder
	r := &TUIRenderer{out: &out}
	if err := r.Init(); err != nil {
		t.Fatalf("Init() err = %v", err)
	}
	return r, renderer.NewDriver(s, t.TempDir()), &out
}

func TestRenderFrameMap(t *testing.T) {
	r, d, _ := newRenderer(t)
	d.Session.Apply(gameplay.StartNight{Night: 1})

	out := r.RenderFrame(d.Frame())
	lines := strings.Split(out, "\n")

	// Status, banner, blank, then the map; control sits at row 4 col 4.
	controlRow := []rune(lines[3+4])
	if got := string(controlRow[4*tileWidth+1]); got != renderer.IconControl {
		t.Errorf("control glyph = %q, want %q", got, renderer.IconControl)
	}
	if !strings.Contains(out, "FEED_MAP_TITLE") {
		t.Error("map view panel missing")
	}
}

func TestRenderFrameFeed(t *testing.T) {
	r, d, _ := newRenderer(t)
	d.Session.Apply(gameplay.StartNight{Night: 1})
	d.Session.Apply(gameplay.SelectCamera{Room: "contain-1"})

	out := r.RenderFrame(d.Frame())
	if !strings.Contains(out, "FEED_ONLINE") {
		t.Error("online feed status missing")
	}
	if !strings.Contains(out, "f KEY_LURE") || !strings.Contains(out, "x KEY_SHOCK") {
		t.Error("tool keys missing from the feed panel")
	}
}

func TestRenderMenu(t *testing.T) {
	r, d, _ := newRenderer(t)
	v, ok := d.MenuView()
	if !ok {
		t.Fatal("MenuView() hidden on the main menu")
	}
	out := r.RenderMenu(v)
	if !strings.Contains(out, "> MENU_NIGHTS") {
		t.Errorf("selected item not marked:\n%s", out)
	}
}

func TestLoopQuitsFromMenu(t *testing.T) {
	r, d, out := newRenderer(t)
	keys := make(chan input.RawInput, 1)
	keys <- input.RawInput{Device: input.DeviceTerminal, Code: "q"}

	if err := r.loop(context.Background(), d, keys); err != nil {
		t.Fatalf("loop() err = %v", err)
	}
	if !strings.HasSuffix(out.String(), clearScreen) {
		t.Error("screen not cleared on quit")
	}
}

func TestLoopStartsNight(t *testing.T) {
	r, d, _ := newRenderer(t)
	keys := make(chan input.RawInput, 2)
	keys <- input.RawInput{Code: "enter"}
	keys <- input.RawInput{Code: "enter", Timestamp: time.Time{}.Add(debounceWindow * 2)}
	close(keys)

	if err := r.loop(context.Background(), d, keys); err != nil {
		t.Fatalf("loop() err = %v", err)
	}
	if got := d.Session.Snapshot().Phase; got != state.PhasePlaying {
		t.Errorf("phase = %s, want playing", got)
	}
}

func TestWrap(t *testing.T) {
	got := wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Errorf("wrap() = %q", got)
	}
}
