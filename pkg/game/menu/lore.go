package menu

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"containmentbreach/pkg/game/lore"
)

// LoreItem is one document in the archive list.
type LoreItem struct {
	Doc lore.Document
}

func (l *LoreItem) GetLabel() string {
	return l.Doc.Heading()
}

func (l *LoreItem) IsSelectable() bool {
	return true
}

func (l *LoreItem) GetHelpText() string {
	return fmt.Sprintf(gotext.Get("HELP_LORE_NIGHT"), l.Doc.UnlockedAfterNight)
}

// emptyItem is a placeholder line that cannot be selected.
type emptyItem struct {
	label string
}

func (e *emptyItem) GetLabel() string    { return e.label }
func (e *emptyItem) IsSelectable() bool  { return false }
func (e *emptyItem) GetHelpText() string { return "" }

// LoreItems lists the unlocked documents in archive order.
func LoreItems(unlocked []string) []MenuItem {
	docs := lore.Visible(unlocked)
	if len(docs) == 0 {
		return []MenuItem{&emptyItem{label: gotext.Get("MENU_LORE_EMPTY")}}
	}
	items := make([]MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, &LoreItem{Doc: d})
	}
	return items
}
