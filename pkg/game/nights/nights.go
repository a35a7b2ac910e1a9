// Package nights defines the fixed run of nights, how each one scales subject
// speed, and the difficulty setting. The player discovers the end by surviving
// the final night.
package nights

import (
	"github.com/leonelquinteros/gotext"
)

// Total is the number of nights in a run.
const Total = 5

// IsFinal reports whether night n is the last one.
func IsFinal(n int) bool {
	return n >= Total
}

// Next returns the night after n, or 0 if n is the last.
func Next(n int) int {
	if n <= 0 || n >= Total {
		return 0
	}
	return n + 1
}

// Valid reports whether n is a playable night.
func Valid(n int) bool {
	return n >= 1 && n <= Total
}

// Descriptor describes one night.
type Descriptor struct {
	Night           int
	SpeedMultiplier float64 // Applied to every subject's rooms-per-minute
	BriefingKey     string  // gotext key of the shift briefing line
}

// Graph is the linear run of nights, index 0 is night 1.
var Graph []Descriptor

func init() {
	Graph = make([]Descriptor, Total)
	for i := 0; i < Total; i++ {
		Graph[i] = Descriptor{
			Night:           i + 1,
			SpeedMultiplier: 1 + 0.1*float64(i),
			BriefingKey:     briefingKey(i + 1),
		}
	}
}

// For returns the descriptor of night n. Out-of-range nights get night 1's
// pacing.
func For(n int) Descriptor {
	if !Valid(n) {
		return Descriptor{Night: n, SpeedMultiplier: 1, BriefingKey: briefingKey(1)}
	}
	return Graph[n-1]
}

func briefingKey(n int) string {
	switch {
	case n <= 1:
		return "NIGHT_BRIEFING_FIRST"
	case n <= 3:
		return "NIGHT_BRIEFING_MID"
	case n < Total:
		return "NIGHT_BRIEFING_LATE"
	default:
		return "NIGHT_BRIEFING_FINAL"
	}
}

// Briefing returns the translated shift briefing for night n. Keys are passed
// as constants so the catalogue extractor sees them.
func Briefing(n int) string {
	switch briefingKey(n) {
	case "NIGHT_BRIEFING_MID":
		return gotext.Get("NIGHT_BRIEFING_MID")
	case "NIGHT_BRIEFING_LATE":
		return gotext.Get("NIGHT_BRIEFING_LATE")
	case "NIGHT_BRIEFING_FINAL":
		return gotext.Get("NIGHT_BRIEFING_FINAL")
	default:
		return gotext.Get("NIGHT_BRIEFING_FIRST")
	}
}
