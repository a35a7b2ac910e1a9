// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/game/gameplay"
	"containmentbreach/pkg/game/state"
)

const mapDumpFilename = "facility.txt"

// roomSymbol returns the single-character symbol for a room with no occupants.
func roomSymbol(r *facility.Room) rune {
	switch {
	case r == nil:
		return ' '
	case r.IsControlRoom:
		return 'C'
	case r.IsFinalRoom:
		return 'F'
	case r.IsContainmentRoom:
		return 'X'
	default:
		return '.'
	}
}

// writeMapGrid writes the facility layout. occupants maps room ids to the
// character drawn in place of the room symbol.
func writeMapGrid(w io.Writer, g *facility.Graph, occupants map[string]rune) {
	cols, rows := 0, 0
	byPos := make(map[[2]int]*facility.Room)
	for _, r := range g.Rooms() {
		byPos[[2]int{r.X, r.Y}] = r
		cols = max(cols, r.X+1)
		rows = max(rows, r.Y+1)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r := byPos[[2]int{x, y}]
			if r != nil {
				if c, ok := occupants[r.ID]; ok {
					fmt.Fprintf(w, "%c", c)
					continue
				}
			}
			fmt.Fprintf(w, "%c", roomSymbol(r))
		}
		fmt.Fprintln(w)
	}
}

// WriteDump writes a full debug dump of s: metadata, legend, the map as the
// player sees it, the true map, and per-entity state.
func WriteDump(w io.Writer, s *gameplay.Session) {
	gs := s.Snapshot()
	g := s.Graph()
	now := s.Now()

	fmt.Fprintln(w, "=== FACILITY DUMP (layout, subjects, systems) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", s.ID())
	fmt.Fprintf(w, "phase: %s\n", gs.Phase)
	fmt.Fprintf(w, "night: %d\n", gs.CurrentNight)
	fmt.Fprintf(w, "difficulty: %s\n", gs.Difficulty)
	fmt.Fprintf(w, "sim_time: %s\n", now.Format("15:04:05.000"))
	fmt.Fprintf(w, "clock: %.1f\n", gs.Clock)
	fmt.Fprintf(w, "power: %.2f\n", gs.Power)
	fmt.Fprintf(w, "power_out: %v\n", gs.PowerOut)
	fmt.Fprintf(w, "sweep_count: %d\n", gs.SweepCount)
	fmt.Fprintf(w, "memetic_intensity: %.2f\n", gs.MemeticIntensity)
	fmt.Fprintf(w, "selected_camera: %q\n", gs.SelectedCamera)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (room symbols) ---")
	fmt.Fprintln(w, "C = control  F = final room  X = containment  . = corridor  1-9 = subject (roster order)")
	fmt.Fprintln(w, "")

	visible := make(map[string]rune)
	truth := make(map[string]rune)
	for i, sub := range gs.Subjects {
		if !sub.IsActive {
			continue
		}
		mark := rune('1' + i%9)
		truth[sub.CurrentRoom] = mark
	}
	for _, r := range g.Rooms() {
		pings := s.Pings(r.ID)
		if len(pings) > 0 {
			visible[r.ID] = subjectMark(gs, pings[0])
		}
	}

	fmt.Fprintln(w, "--- Map (camera pings only) ---")
	writeMapGrid(w, g, visible)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Map (true positions) ---")
	writeMapGrid(w, g, truth)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Subjects:")
	for _, sub := range gs.Subjects {
		fmt.Fprintf(w, "  id: %s room: %q target: %q active: %v stunned: %v used_ability: %v charging: %v spawn: %q\n",
			sub.SubjectID, sub.CurrentRoom, sub.TargetRoom, sub.IsActive, sub.IsStunned(now), sub.UsedAbility, sub.Charging, sub.SpawnRoom)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Cameras:")
	for _, c := range gs.Cameras.All() {
		fmt.Fprintf(w, "  room: %q online: %v rebooting: %v reboot: %.0f repair: %.0f\n",
			c.RoomID, c.IsOnline, c.IsRebooting, c.RebootProgress, c.AutoRepairProgress)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Door:")
	fmt.Fprintf(w, "  blocked: %s held_for: %v ready: %v\n", gs.Door.Blocked, gs.Door.HeldFor(now), gs.Door.Ready(now))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Lures:")
	for _, l := range gs.Lures.All() {
		fmt.Fprintf(w, "  id: %s room: %q expires_in: %v\n", l.ID, l.RoomID, l.ExpiresAt.Sub(now))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Breach:")
	fmt.Fprintf(w, "  active: %v direction: %s subject: %q room: %q remaining: %v\n",
		gs.Breach.Active, gs.Breach.Direction, gs.Breach.SubjectID, gs.Breach.RoomID, gs.BreachRemaining)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Journal:")
	for _, e := range s.Journal() {
		fmt.Fprintf(w, "  at: %v command: %s\n", e.At, e.Command)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Messages:")
	for _, m := range gs.Messages {
		fmt.Fprintf(w, "  %s\n", strings.TrimSpace(m))
	}
}

func subjectMark(gs state.GameState, id string) rune {
	for i, sub := range gs.Subjects {
		if sub.SubjectID == id {
			return rune('1' + i%9)
		}
	}
	return '?'
}

// DumpToFile writes the dump to facility.txt in dir and returns the absolute
// path.
func DumpToFile(dir string, s *gameplay.Session) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create dump: %w", err)
	}
	defer f.Close()

	WriteDump(f, s)
	return absPath, nil
}
