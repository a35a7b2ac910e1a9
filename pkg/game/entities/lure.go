package entities

import "time"

// Lure is an audio lure placed in a room.
type Lure struct {
	ID        string
	RoomID    string
	ExpiresAt time.Time
}

// Active reports whether the lure is still playing at now.
func (l Lure) Active(now time.Time) bool {
	return now.Before(l.ExpiresAt)
}

// LureSet holds the placed lures in placement order.
type LureSet struct {
	lures []Lure
}

// Place adds a lure.
func (s *LureSet) Place(l Lure) {
	s.lures = append(s.lures, l)
}

// Purge drops expired lures and returns them.
func (s *LureSet) Purge(now time.Time) []Lure {
	var expired []Lure
	kept := s.lures[:0]
	for _, l := range s.lures {
		if l.Active(now) {
			kept = append(kept, l)
		} else {
			expired = append(expired, l)
		}
	}
	s.lures = kept
	return expired
}

// ActiveIn reports whether roomID holds an unexpired lure.
func (s *LureSet) ActiveIn(roomID string, now time.Time) bool {
	for _, l := range s.lures {
		if l.RoomID == roomID && l.Active(now) {
			return true
		}
	}
	return false
}

// All returns a copy of the placed lures.
func (s *LureSet) All() []Lure {
	return append([]Lure(nil), s.lures...)
}

func (s *LureSet) Len() int {
	return len(s.lures)
}

// Clear removes every lure.
func (s *LureSet) Clear() {
	s.lures = nil
}

// Clone returns an independent copy.
func (s *LureSet) Clone() LureSet {
	return LureSet{lures: s.All()}
}
