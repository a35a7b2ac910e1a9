package events

import (
	"fmt"
	"math"

	"github.com/leonelquinteros/gotext"
)

// Describe renders ev as a line for the on-screen message log. Events the
// player should not be told about directly return "".
func Describe(ev Event) string {
	switch ev.Type {
	case BreachWarning:
		return fmt.Sprintf(gotext.Get("EVENT_BREACH_WARNING"), ev.Direction.String())
	case BreachDeflected:
		return fmt.Sprintf(gotext.Get("EVENT_BREACH_DEFLECTED"), ev.SubjectID)
	case Breach:
		return fmt.Sprintf(gotext.Get("EVENT_BREACH"), ev.SubjectID)
	case CameraJam:
		return fmt.Sprintf(gotext.Get("EVENT_CAMERA_JAM"), ev.RoomID)
	case CameraOnline:
		return fmt.Sprintf(gotext.Get("EVENT_CAMERA_ONLINE"), ev.RoomID)
	case LurePlaced:
		return fmt.Sprintf(gotext.Get("EVENT_LURE_PLACED"), ev.RoomID)
	case ShockApplied:
		return fmt.Sprintf(gotext.Get("EVENT_SHOCK_APPLIED"), ev.RoomID, int(ev.Amount))
	case DoorSlam:
		return fmt.Sprintf(gotext.Get("EVENT_DOOR_SLAM"), ev.Direction.String())
	case DoorReleased:
		return gotext.Get("EVENT_DOOR_RELEASED")
	case PowerDrain:
		return fmt.Sprintf(gotext.Get("EVENT_POWER_DRAIN"), int(math.Round(ev.Amount)))
	case PowerOut:
		return gotext.Get("EVENT_POWER_OUT")
	case NightStarted:
		return fmt.Sprintf(gotext.Get("EVENT_NIGHT_STARTED"), ev.Night)
	case Victory:
		return fmt.Sprintf(gotext.Get("EVENT_VICTORY"), ev.Night)
	case GameOver:
		return gotext.Get("EVENT_GAME_OVER")
	}
	return ""
}
