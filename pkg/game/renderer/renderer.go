// Package renderer holds what both front-ends share: the frame model built
// from a session snapshot, the text markup and the intent driver.
package renderer

import (
	"fmt"
	"regexp"
	"time"

	"github.com/leonelquinteros/gotext"

	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/game/gameplay"
	"containmentbreach/pkg/game/power"
	"containmentbreach/pkg/game/state"
)

// Icon constants for the facility map
const (
	IconControl     = "◉"
	IconRoom        = "○"
	IconContainment = "□"
	IconFinal       = "◇"
	IconOffline     = "╳"
	IconSubject     = "●"
	IconSelected    = "▣"
)

// RoomTile is one room as drawn on the facility map.
type RoomTile struct {
	ID          string
	Name        string
	X, Y        int
	Control     bool
	Final       bool
	Containment bool
	HasCamera   bool
	Online      bool
	Selected    bool
	Lure        bool
	Pings       []string
}

// Icon picks the map glyph for the tile.
func (t RoomTile) Icon() string {
	switch {
	case t.Control:
		return IconControl
	case t.Selected:
		return IconSelected
	case t.HasCamera && !t.Online:
		return IconOffline
	case len(t.Pings) > 0:
		return IconSubject
	case t.Final:
		return IconFinal
	case t.Containment:
		return IconContainment
	default:
		return IconRoom
	}
}

// Style picks the colour for the tile's glyph.
func (t RoomTile) Style() TextStyle {
	switch {
	case t.Control:
		return StyleAction
	case t.HasCamera && !t.Online:
		return StyleDenied
	case len(t.Pings) > 0:
		return StyleSubject
	case t.Selected:
		return StyleTitle
	case t.Lure:
		return StyleWarning
	case t.Final:
		return StyleRoom
	default:
		return StyleSubtle
	}
}

// Feed is the selected camera.
type Feed struct {
	RoomID    string
	RoomName  string
	Online    bool
	Rebooting bool
	Progress  float64 // Reboot or auto-repair progress, 0..100
	Pings     []string
	CanLure   bool
	CanShock  bool
}

// BreachLine is the live breach warning, if any.
type BreachLine struct {
	Direction facility.Direction
	SubjectID string
	Remaining time.Duration
}

// Frame is everything a front-end draws for one frame.
type Frame struct {
	Phase      state.Phase
	Night      int
	Hour       int
	Difficulty string
	Power      float64
	PowerOut   bool
	Intensity  float64

	Door          facility.Direction
	DoorCooldown  time.Duration
	LureCooldown  time.Duration
	ShockCooldown time.Duration
	CanUseDoors   bool

	Breach *BreachLine
	Feed   *Feed // Nil on the map view
	Rooms  []RoomTile
	Width  int // Map extent in tiles
	Height int

	Messages []string
	Hints    []string
}

// BuildFrame snapshots s into a Frame.
func BuildFrame(s *gameplay.Session) Frame {
	gs := s.Snapshot()
	now := s.Now()
	g := s.Graph()

	f := Frame{
		Phase:         gs.Phase,
		Night:         gs.CurrentNight,
		Hour:          power.HourLabel(gs.Clock),
		Difficulty:    gs.Difficulty.String(),
		Power:         gs.Power,
		PowerOut:      gs.PowerOut,
		Intensity:     gs.MemeticIntensity,
		Door:          gs.Door.Blocked,
		DoorCooldown:  remaining(gs.Door.Cooldown, now),
		LureCooldown:  remaining(gs.LureCooldown, now),
		ShockCooldown: remaining(gs.ShockCooldown, now),
		Messages:      gs.Messages,
	}
	if !gs.Phase.InNight() {
		return f
	}
	f.CanUseDoors = s.CanUseDoors()
	f.Hints = gameplay.ControlHints(s)

	if gs.Breach.Active {
		f.Breach = &BreachLine{
			Direction: gs.Breach.Direction,
			SubjectID: gs.Breach.SubjectID,
			Remaining: gs.BreachRemaining,
		}
	}

	for _, r := range g.Rooms() {
		cam, hasCam := gs.Cameras.Get(r.ID)
		tile := RoomTile{
			ID:          r.ID,
			Name:        r.Name,
			X:           r.X,
			Y:           r.Y,
			Control:     r.IsControlRoom,
			Final:       r.IsFinalRoom,
			Containment: r.IsContainmentRoom,
			HasCamera:   hasCam,
			Online:      hasCam && cam.IsOnline,
			Selected:    r.ID == gs.SelectedCamera,
			Lure:        gs.Lures.ActiveIn(r.ID, now),
			Pings:       s.Pings(r.ID),
		}
		f.Rooms = append(f.Rooms, tile)
		f.Width = max(f.Width, r.X+1)
		f.Height = max(f.Height, r.Y+1)

		if tile.Selected {
			feed := &Feed{
				RoomID:    r.ID,
				RoomName:  r.Name,
				Online:    tile.Online,
				Rebooting: cam.IsRebooting,
				Pings:     tile.Pings,
				CanLure:   s.CanUseLure(r.ID),
				CanShock:  s.CanUseShock(r.ID),
			}
			if cam.IsRebooting {
				feed.Progress = cam.RebootProgress
			} else if !cam.IsOnline {
				feed.Progress = cam.AutoRepairProgress
			}
			f.Feed = feed
		}
	}
	return f
}

// StatusLine is the one-line HUD summary.
func (f Frame) StatusLine() string {
	return fmt.Sprintf(gotext.Get("HUD_STATUS"), f.Night, f.Hour, f.Power, f.Difficulty)
}

// DoorLine describes the door state.
func (f Frame) DoorLine() string {
	if f.Door.IsValid() {
		return fmt.Sprintf(gotext.Get("HUD_DOOR_BLOCKED"), f.Door.String())
	}
	if f.DoorCooldown > 0 {
		return fmt.Sprintf(gotext.Get("HUD_DOOR_COOLDOWN"), f.DoorCooldown.Seconds())
	}
	return gotext.Get("HUD_DOOR_READY")
}

// BreachText is the countdown banner, empty when no warning is live.
func (f Frame) BreachText() string {
	if f.Breach == nil {
		return ""
	}
	return fmt.Sprintf(gotext.Get("HUD_BREACH"), f.Breach.Direction.String(), f.Breach.Remaining.Seconds())
}

// Cooldowns lists the tool cooldowns still running.
func (f Frame) Cooldowns() []string {
	var out []string
	if f.LureCooldown > 0 {
		out = append(out, fmt.Sprintf(gotext.Get("HUD_LURE_COOLDOWN"), f.LureCooldown.Seconds()))
	}
	if f.ShockCooldown > 0 {
		out = append(out, fmt.Sprintf(gotext.Get("HUD_SHOCK_COOLDOWN"), f.ShockCooldown.Seconds()))
	}
	return out
}

// Grid lays the tiles out by map position. Empty slots are nil.
func (f Frame) Grid() [][]*RoomTile {
	grid := make([][]*RoomTile, f.Height)
	for y := range grid {
		grid[y] = make([]*RoomTile, f.Width)
	}
	for i := range f.Rooms {
		t := &f.Rooms[i]
		grid[t.Y][t.X] = t
	}
	return grid
}

func remaining(until, now time.Time) time.Duration {
	if d := until.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Segment is a run of text in one style.
type Segment struct {
	Text  string
	Style TextStyle
}

var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// dynamicGet is used for runtime translation key lookups from markup.
var dynamicGet = gotext.Get

// ParseMarkup splits msg on FUNCTION{content} markup into styled segments.
// GT{KEY} is translated.
func ParseMarkup(msg string) []Segment {
	var segments []Segment
	last := 0
	for _, m := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if m[0] > last {
			segments = append(segments, Segment{Text: msg[last:m[0]], Style: StyleNormal})
		}
		function := msg[m[2]:m[3]]
		content := msg[m[4]:m[5]]

		style := StyleNormal
		switch function {
		case "ROOM":
			style = StyleRoom
		case "ACTION":
			style = StyleAction
		case "DENIED":
			style = StyleDenied
		case "WARN":
			style = StyleWarning
		case "SUBTLE":
			style = StyleSubtle
		case "ONLINE":
			style = StyleOnline
		case "SUBJECT":
			style = StyleSubject
		case "TITLE":
			style = StyleTitle
		case "GT":
			content = dynamicGet(content)
		}
		segments = append(segments, Segment{Text: content, Style: style})
		last = m[1]
	}
	if last < len(msg) {
		segments = append(segments, Segment{Text: msg[last:], Style: StyleNormal})
	}
	return segments
}

// PlainText strips markup.
func PlainText(msg string) string {
	var out string
	for _, s := range ParseMarkup(msg) {
		out += s.Text
	}
	return out
}
