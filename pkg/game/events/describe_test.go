package events

import (
	"testing"

	"github.com/leonelquinteros/gotext"

	"containmentbreach/pkg/engine/facility"
)

func TestDescribe(t *testing.T) {
	gotext.Configure("../../../locales", "en_GB", "default")

	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Type: NightStarted, Night: 3}, "Night 3 begins. Midnight."},
		{Event{Type: BreachWarning, Direction: facility.Left}, "DENIED{Movement at the left door!}"},
		{Event{Type: LurePlaced, RoomID: "bridge"}, "Lure playing in ROOM{bridge}."},
		{Event{Type: ShockApplied, RoomID: "contain-1", Amount: 2}, "Shocked ROOM{contain-1}: 2 subject(s) pushed back."},
		{Event{Type: PowerDrain, Amount: 4.6}, "WARN{Power surge: 5% lost.}"},
		{Event{Type: DoorReleased}, "Door released."},
	}
	for _, tt := range tests {
		if got := Describe(tt.ev); got != tt.want {
			t.Errorf("Describe(%s) = %q, want %q", tt.ev.Type, got, tt.want)
		}
	}
}
