package gameplay

import (
	"slices"

	"containmentbreach/pkg/engine/facility"
	engineinput "containmentbreach/pkg/engine/input"
	"containmentbreach/pkg/game/actions"
	"containmentbreach/pkg/game/state"
)

// ProcessIntent turns a control-panel intent into a command against the
// selected camera. Rejections are echoed into the message log. Menu and
// front-end intents (quit, zoom, dumps) are not handled here.
func ProcessIntent(s *Session, intent engineinput.Intent) actions.Result {
	snap := s.Snapshot()
	if !snap.Phase.InNight() {
		return actions.Reject(actions.ReasonNotPlaying)
	}

	var cmd Command
	switch intent.Action {
	case engineinput.ActionPause, engineinput.ActionBack:
		if snap.Phase == state.PhasePaused {
			cmd = Resume{}
		} else if intent.Action == engineinput.ActionPause {
			cmd = Pause{}
		}
	case engineinput.ActionCameraNext:
		cmd = SelectCamera{Room: cycleCamera(s.Graph(), snap.SelectedCamera, 1)}
	case engineinput.ActionCameraPrev:
		cmd = SelectCamera{Room: cycleCamera(s.Graph(), snap.SelectedCamera, -1)}
	case engineinput.ActionMapView:
		cmd = SelectCamera{}
	case engineinput.ActionLure:
		cmd = PlaceLure{Room: snap.SelectedCamera}
	case engineinput.ActionShock:
		cmd = ActivateShock{Room: snap.SelectedCamera}
	case engineinput.ActionReboot:
		cmd = RebootCamera{Room: snap.SelectedCamera}
	case engineinput.ActionBlockFront:
		cmd = BlockDoor{Direction: facility.Front}
	case engineinput.ActionBlockLeft:
		cmd = BlockDoor{Direction: facility.Left}
	case engineinput.ActionBlockRight:
		cmd = BlockDoor{Direction: facility.Right}
	case engineinput.ActionReleaseDoor:
		cmd = ReleaseDoor{}
	}
	if cmd == nil {
		return actions.Reject(actions.ReasonUnknownCommand)
	}

	res := s.Apply(cmd)
	if !res.OK {
		s.Notify(res.Reason.Message())
	}
	return res
}

// cycleCamera steps through the camera rooms in layout order. From the map
// view (no selection) it starts at the first or last camera.
func cycleCamera(g *facility.Graph, current string, step int) string {
	var rooms []string
	for _, r := range g.Rooms() {
		if !r.IsControlRoom {
			rooms = append(rooms, r.ID)
		}
	}
	if len(rooms) == 0 {
		return ""
	}
	i := slices.Index(rooms, current)
	if i < 0 {
		if step < 0 {
			return rooms[len(rooms)-1]
		}
		return rooms[0]
	}
	return rooms[((i+step)%len(rooms)+len(rooms))%len(rooms)]
}
