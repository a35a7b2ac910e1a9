package menu

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"containmentbreach/pkg/game/nights"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionNights MainMenuAction = iota
	MainMenuActionDifficulty
	MainMenuActionLore
	MainMenuActionControls
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label  string
	Action MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionNights:
		return gotext.Get("HELP_NIGHTS")
	case MainMenuActionDifficulty:
		return gotext.Get("HELP_DIFFICULTY")
	case MainMenuActionLore:
		return gotext.Get("HELP_LORE")
	case MainMenuActionControls:
		return gotext.Get("HELP_CONTROLS")
	case MainMenuActionQuit:
		return gotext.Get("HELP_QUIT")
	default:
		return ""
	}
}

// MainItems returns the main menu for the given difficulty setting.
func MainItems(d nights.Difficulty) []MenuItem {
	return []MenuItem{
		&MainMenuItem{Label: gotext.Get("MENU_NIGHTS"), Action: MainMenuActionNights},
		&MainMenuItem{Label: fmt.Sprintf(gotext.Get("MENU_DIFFICULTY"), d.String()), Action: MainMenuActionDifficulty},
		&MainMenuItem{Label: gotext.Get("MENU_LORE"), Action: MainMenuActionLore},
		&MainMenuItem{Label: gotext.Get("MENU_CONTROLS"), Action: MainMenuActionControls},
		&MainMenuItem{Label: gotext.Get("MENU_QUIT"), Action: MainMenuActionQuit},
	}
}

// NextDifficulty cycles normal, hard, nightmare.
func NextDifficulty(d nights.Difficulty) nights.Difficulty {
	if d >= nights.Nightmare {
		return nights.Normal
	}
	return d + 1
}

// NightItem is one entry on the night select screen.
type NightItem struct {
	Night    int
	Unlocked bool
}

func (n *NightItem) GetLabel() string {
	if !n.Unlocked {
		return fmt.Sprintf(gotext.Get("MENU_NIGHT_LOCKED"), n.Night)
	}
	return fmt.Sprintf(gotext.Get("MENU_NIGHT"), n.Night)
}

func (n *NightItem) IsSelectable() bool {
	return n.Unlocked
}

func (n *NightItem) GetHelpText() string {
	if !n.Unlocked {
		return ""
	}
	return nights.Briefing(n.Night)
}

// NightItems lists every night, locked ones greyed out.
func NightItems(unlocked func(int) bool) []MenuItem {
	items := make([]MenuItem, 0, nights.Total)
	for n := 1; n <= nights.Total; n++ {
		items = append(items, &NightItem{Night: n, Unlocked: unlocked(n)})
	}
	return items
}
