// Package lore holds the facility documents the player unlocks by surviving
// nights.
package lore

import (
	"fmt"
	"slices"
)

// Category groups documents in the archive.
type Category string

const (
	Incident      Category = "incident"
	Dossier       Category = "dossier"
	Protocol      Category = "protocol"
	Communication Category = "communication"
)

// Document is one archive entry.
type Document struct {
	ID                 string
	Title              string
	Category           Category
	Content            string
	UnlockedAfterNight int
}

// Archive is every document in display order.
var Archive = []Document{
	{
		ID:                 "protocol-door",
		Title:              "Blast Door Operating Procedure",
		Category:           Protocol,
		UnlockedAfterNight: 1,
		Content: "The control room door seals one approach at a time. Hydraulic pressure " +
			"cannot hold a seal for more than two seconds; the door releases on its own. " +
			"Do not slam it early. Listen for the corridor alarm, then seal the side it names.",
	},
	{
		ID:                 "dossier-z01",
		Title:              "Subject Z-01",
		Category:           Dossier,
		UnlockedAfterNight: 1,
		Content: "Walks the shortest route to the nearest occupied room, one room a minute, " +
			"without deviation. Responds well to lures. Recovery after a shock: eight seconds.",
	},
	{
		ID:                 "incident-static",
		Title:              "Incident Report 4471: Camera Loss",
		Category:           Incident,
		UnlockedAfterNight: 2,
		Content: "Three cameras in the east wing went dark at 02:14. Maintenance found no fault. " +
			"The feeds recovered on their own twenty seconds later. Z-02 was logged near the " +
			"east corridor at the same time.",
	},
	{
		ID:                 "dossier-z07",
		Title:              "Subject Z-07",
		Category:           Dossier,
		UnlockedAfterNight: 2,
		Content: "Kept in the isolation cell beside the left corridor. Once it starts moving it " +
			"does not stop. Lures have no effect. Watch the isolation cell camera.",
	},
	{
		ID:                 "comm-night-shift",
		Title:              "Memo: Night Shift Power Budget",
		Category:           Communication,
		UnlockedAfterNight: 3,
		Content: "Generator output has been cut again. Every ping sweep, lure and shock comes out " +
			"of the same reserve. When it runs out the cameras and the door go with it.",
	},
	{
		ID:                 "dossier-z04",
		Title:              "Subject Z-04",
		Category:           Dossier,
		UnlockedAfterNight: 3,
		Content: "Shows on the ping sweep only every other pass. If a room looks empty, check it " +
			"again after the next sweep.",
	},
	{
		ID:                 "incident-choir",
		Title:              "Incident Report 5102: Group Movement",
		Category:           Incident,
		UnlockedAfterNight: 4,
		Content: "Z-05 was observed moving in step with another subject on the opposite side of " +
			"the facility. Recommend treating any movement as two.",
	},
	{
		ID:                 "protocol-final",
		Title:              "Containment Breach Protocol",
		Category:           Protocol,
		UnlockedAfterNight: 5,
		Content: "If every subject is active at once, the operator's only task is to reach 6 AM. " +
			"Relief arrives at shift change. It always has.",
	},
}

// ByID looks up a document.
func ByID(id string) (Document, bool) {
	for _, d := range Archive {
		if d.ID == id {
			return d, true
		}
	}
	return Document{}, false
}

// UnlockedBy returns the ids of the documents unlocked by surviving night n.
func UnlockedBy(night int) []string {
	var out []string
	for _, d := range Archive {
		if d.UnlockedAfterNight == night {
			out = append(out, d.ID)
		}
	}
	return out
}

// Visible returns the documents among unlocked, in archive order. Unknown ids
// are skipped.
func Visible(unlocked []string) []Document {
	var out []Document
	for _, d := range Archive {
		if slices.Contains(unlocked, d.ID) {
			out = append(out, d)
		}
	}
	return out
}

// Heading is the one-line archive label for d.
func (d Document) Heading() string {
	return fmt.Sprintf("[%s] %s", d.Category, d.Title)
}
