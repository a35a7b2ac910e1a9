package menu

import (
	"fmt"
	"strings"

	engineinput "containmentbreach/pkg/engine/input"
)

// BindingMenuItem shows the keys bound to one action.
type BindingMenuItem struct {
	Action engineinput.Action
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// IsSelectable returns whether this binding can be selected.
func (b *BindingMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	return ""
}

// controlActions are the actions listed on the controls screen, in order.
var controlActions = []engineinput.Action{
	engineinput.ActionCameraNext,
	engineinput.ActionCameraPrev,
	engineinput.ActionMapView,
	engineinput.ActionLure,
	engineinput.ActionShock,
	engineinput.ActionReboot,
	engineinput.ActionBlockFront,
	engineinput.ActionBlockLeft,
	engineinput.ActionBlockRight,
	engineinput.ActionReleaseDoor,
	engineinput.ActionPause,
	engineinput.ActionDump,
	engineinput.ActionZoomIn,
	engineinput.ActionZoomOut,
	engineinput.ActionQuit,
}

// BindingItems lists the current key bindings.
func BindingItems() []MenuItem {
	items := make([]MenuItem, 0, len(controlActions))
	for _, act := range controlActions {
		items = append(items, &BindingMenuItem{Action: act})
	}
	return items
}
