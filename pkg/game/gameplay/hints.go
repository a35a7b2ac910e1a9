package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"containmentbreach/pkg/engine/facility"
	"containmentbreach/pkg/game/state"
)

const lowPowerHint = 20

// ControlHints returns short tips for the control panel based on what is
// happening right now, most urgent first.
func ControlHints(s *Session) []string {
	snap := s.Snapshot()
	if snap.Phase != state.PhasePlaying {
		return nil
	}

	var out []string
	if snap.Breach.Active {
		switch snap.Breach.Direction {
		case facility.Left:
			out = append(out, gotext.Get("HINT_BLOCK_LEFT"))
		case facility.Right:
			out = append(out, gotext.Get("HINT_BLOCK_RIGHT"))
		default:
			out = append(out, gotext.Get("HINT_BLOCK_FRONT"))
		}
	}
	if snap.PowerOut {
		return append(out, gotext.Get("HINT_POWER_OUT"))
	}
	if snap.SelectedCamera == "" {
		out = append(out, gotext.Get("HINT_SELECT_CAMERA"))
	} else if !snap.Cameras.IsOnline(snap.SelectedCamera) {
		out = append(out, gotext.Get("HINT_REBOOT"))
	}
	if snap.Power < lowPowerHint {
		out = append(out, gotext.Get("HINT_LOW_POWER"))
	}
	return out
}
