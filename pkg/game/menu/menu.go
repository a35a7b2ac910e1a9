// Package menu provides the non-blocking menu model shared by both
// front-ends: the main menu, night select, lore archive, controls and the
// pause menu.
package menu

import (
	engineinput "containmentbreach/pkg/engine/input"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// Menu is a list of items with a cursor. It never blocks; front-ends feed it
// one action per key press and redraw from its fields.
type Menu struct {
	Title    string
	HelpText string

	items    []MenuItem
	selected int
}

// New returns a menu with the cursor on the first selectable item.
func New(title string, items []MenuItem) *Menu {
	m := &Menu{Title: title}
	m.SetItems(items)
	return m
}

// SetItems replaces the items, keeping the cursor where it is if that item
// is still selectable.
func (m *Menu) SetItems(items []MenuItem) {
	m.items = items
	if m.selected < len(items) && items[m.selected].IsSelectable() {
		return
	}
	m.selected = 0
	for i, item := range items {
		if item.IsSelectable() {
			m.selected = i
			break
		}
	}
}

// Items returns the current items.
func (m *Menu) Items() []MenuItem {
	return m.items
}

// SelectedIndex returns the cursor position.
func (m *Menu) SelectedIndex() int {
	return m.selected
}

// Selected returns the item under the cursor, or nil for an empty menu.
func (m *Menu) Selected() MenuItem {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return m.items[m.selected]
}

// Move steps the cursor to the previous (step < 0) or next selectable item,
// wrapping around at either end.
func (m *Menu) Move(step int) {
	n := len(m.items)
	if n == 0 || step == 0 {
		return
	}
	dir := 1
	if step < 0 {
		dir = -1
	}
	for i := 1; i < n; i++ {
		idx := ((m.selected+dir*i)%n + n) % n
		if m.items[idx].IsSelectable() {
			m.selected = idx
			m.HelpText = "" // Clear help text when navigating
			return
		}
	}
}

// Outcome is what a key press did to the menu.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMoved
	OutcomeActivated
	OutcomeBack
)

// Handle applies a navigation action.
func (m *Menu) Handle(action engineinput.Action) Outcome {
	switch action {
	case engineinput.ActionMenuUp, engineinput.ActionCameraPrev:
		m.Move(-1)
		return OutcomeMoved
	case engineinput.ActionMenuDown, engineinput.ActionCameraNext:
		m.Move(1)
		return OutcomeMoved
	case engineinput.ActionConfirm:
		if item := m.Selected(); item != nil && item.IsSelectable() {
			return OutcomeActivated
		}
	case engineinput.ActionBack:
		return OutcomeBack
	}
	return OutcomeNone
}
