package subjects

import "sort"

// Roster is an ordered set of subject definitions. Order is significant: it is
// the per-tick processing order and decides pack leaders.
type Roster []Definition

// DefaultRoster is the stock set of subjects.
var DefaultRoster = Roster{
	{
		ID:              "Z-01",
		Name:            "The Walker",
		Behavior:        Methodical,
		Speed:           1,
		LureSensitivity: 0.8,
		ShockResistance: 8,
		Description:     "Slow and patient. Always takes the shortest corridor to the control room.",
		DeathHint:       "It never hurries. Watch the front corridor and hold the door when it arrives.",
		ActiveOnNight:   1,
		SpawnRoom:       "contain-1",
	},
	{
		ID:              "Z-02",
		Name:            "The Static",
		Behavior:        Aggressive,
		Speed:           1.5,
		LureSensitivity: 0.5,
		ShockResistance: 5,
		Ability:         CameraJam,
		Description:     "Moves fast and knocks a camera offline when it gets close.",
		DeathHint:       "When a feed dies, reboot it before you need it.",
		ActiveOnNight:   2,
	},
	{
		ID:              "Z-03",
		Name:            "The Leech",
		Behavior:        Sneaky,
		Speed:           1.2,
		LureSensitivity: 0.7,
		ShockResistance: 6,
		Ability:         PowerDrain,
		Description:     "Lingers out of sight and feeds on the facility grid as it nears you.",
		DeathHint:       "A sudden power drop means it is three rooms away or closer.",
		ActiveOnNight:   3,
	},
	{
		ID:              "Z-04",
		Name:            "The Flicker",
		Behavior:        Sneaky,
		Speed:           1,
		LureSensitivity: 0.6,
		ShockResistance: 7,
		Ability:         Invisible,
		Description:     "Only shows up on every other camera sweep.",
		DeathHint:       "Check each room across two sweeps before you trust it is empty.",
		ActiveOnNight:   3,
	},
	{
		ID:              "Z-05",
		Name:            "The Choir",
		Behavior:        Erratic,
		Speed:           1.3,
		LureSensitivity: 0.9,
		ShockResistance: 4,
		Ability:         PackMovement,
		Description:     "Wanders without pattern, but moves whenever another subject does.",
		DeathHint:       "When anything moves, it moves too.",
		ActiveOnNight:   4,
	},
	{
		ID:              "Z-06",
		Name:            "The Skip",
		Behavior:        Methodical,
		Speed:           0.8,
		LureSensitivity: 0.4,
		ShockResistance: 9,
		Ability:         Teleport,
		Description:     "Its first step covers three rooms.",
		DeathHint:       "Do not wait for its second move to react.",
		ActiveOnNight:   5,
	},
	{
		ID:              "Z-07",
		Name:            "The Runner",
		Behavior:        Foxy,
		Speed:           2,
		LureSensitivity: 0,
		ShockResistance: 10,
		Ability:         IgnoresLures,
		Description:     "Bursts out of the isolation cell and sprints for the left corridor.",
		DeathHint:       "Lures mean nothing to it. Keep the isolation cell on camera.",
		ActiveOnNight:   2,
		SpawnRoom:       "foxy-room",
	},
}

// ByID returns the definition with the given id.
func (r Roster) ByID(id string) (Definition, bool) {
	for _, d := range r {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// ForNight returns the subjects active on night n, in roster order.
func (r Roster) ForNight(n int) Roster {
	var out Roster
	for _, d := range r {
		if d.ActiveOnNight <= n {
			out = append(out, d)
		}
	}
	return out
}

// IDs returns every subject id, sorted.
func (r Roster) IDs() []string {
	ids := make([]string, 0, len(r))
	for _, d := range r {
		ids = append(ids, d.ID)
	}
	sort.Strings(ids)
	return ids
}

// ByID looks a subject up in the default roster.
func ByID(id string) (Definition, bool) {
	return DefaultRoster.ByID(id)
}
