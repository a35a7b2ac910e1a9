package menu

import "github.com/leonelquinteros/gotext"

// GameplayMenuAction represents the action type for pause menu items.
type GameplayMenuAction int

const (
	GameplayMenuActionResume GameplayMenuAction = iota
	GameplayMenuActionControls
	GameplayMenuActionQuitToTitle
)

// GameplayMenuItem represents a menu item in the pause menu.
type GameplayMenuItem struct {
	Label  string
	Action GameplayMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *GameplayMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *GameplayMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *GameplayMenuItem) GetHelpText() string {
	switch m.Action {
	case GameplayMenuActionResume:
		return gotext.Get("HELP_RESUME")
	case GameplayMenuActionControls:
		return gotext.Get("HELP_CONTROLS")
	case GameplayMenuActionQuitToTitle:
		return gotext.Get("HELP_ABANDON")
	default:
		return ""
	}
}

// PauseItems returns the pause menu.
func PauseItems() []MenuItem {
	return []MenuItem{
		&GameplayMenuItem{Label: gotext.Get("MENU_RESUME"), Action: GameplayMenuActionResume},
		&GameplayMenuItem{Label: gotext.Get("MENU_CONTROLS"), Action: GameplayMenuActionControls},
		&GameplayMenuItem{Label: gotext.Get("MENU_ABANDON"), Action: GameplayMenuActionQuitToTitle},
	}
}
