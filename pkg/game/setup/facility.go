// Package setup holds the built-in facility and prepares the per-night state
// (spawn placement, camera bank) from it.
package setup

import (
	"fmt"

	"containmentbreach/pkg/engine/facility"
)

const (
	ControlRoomID = "control"
	FoxySpawnRoom = "foxy-room"
)

// SpawnRooms are the containment cells subjects start from, in assignment order.
var SpawnRooms = []string{"contain-1", "contain-2", "contain-3", "contain-5", "contain-6"}

// ContainmentRooms are the rooms shock can be fired into.
var ContainmentRooms = append(append([]string(nil), SpawnRooms...), FoxySpawnRoom)

// Rooms returns a fresh copy of the facility's room list.
func Rooms() []facility.Room {
	return []facility.Room{
		{ID: "contain-1", Name: "Containment N", X: 2, Y: 0, Connections: []string{"hall-top-left"}, IsContainmentRoom: true},
		{ID: "hall-top-left", Name: "Hall T-1", X: 3, Y: 0, Connections: []string{"contain-1", "hall-top-center"}},
		{ID: "hall-top-center", Name: "Hall T-2", X: 4, Y: 0, Connections: []string{"hall-top-left", "hall-top-right", "hall-vertical"}},
		{ID: "hall-top-right", Name: "Hall T-3", X: 5, Y: 0, Connections: []string{"hall-top-center", "hall-right-upper"}},
		{ID: "hall-vertical", Name: "Hall V-1", X: 4, Y: 1, Connections: []string{"hall-top-center", "hall-mid"}},
		{ID: "contain-2", Name: "Containment W", X: 0, Y: 2, Connections: []string{"bridge-left"}, IsContainmentRoom: true},
		{ID: "bridge-left", Name: "Bridge W", X: 1, Y: 2, Connections: []string{"contain-2", "bridge"}},
		{ID: "bridge", Name: "Bridge", X: 2, Y: 2, Connections: []string{"bridge-left", "hall-mid", "foxy-room"}},
		{ID: "hall-mid", Name: "Hall Central", X: 4, Y: 2, Connections: []string{"hall-vertical", "bridge", "front-hall", "hall-right"}},
		{ID: "hall-right", Name: "Hall E-1", X: 5, Y: 2, Connections: []string{"hall-mid", "hall-right-upper", "contain-5"}},
		{ID: "hall-right-upper", Name: "Hall E-2", X: 6, Y: 1, Connections: []string{"hall-top-right", "hall-right", "contain-5"}},
		{ID: "contain-5", Name: "Containment E", X: 7, Y: 2, Connections: []string{"hall-right", "hall-right-upper", "hall-lower-right"}, IsContainmentRoom: true},
		{ID: "front-hall", Name: "Front Corridor", X: 4, Y: 3, Connections: []string{"hall-mid", "control"}, IsFinalRoom: true, ApproachDirection: facility.Front},
		{ID: "foxy-room", Name: "Isolation Cell", X: 2, Y: 3, Connections: []string{"bridge", "left-hall"}, IsContainmentRoom: true},
		{ID: "left-hall", Name: "Left Corridor", X: 3, Y: 4, Connections: []string{"foxy-room", "control"}, IsFinalRoom: true, ApproachDirection: facility.Left},
		{ID: "control", Name: "Control Room", X: 4, Y: 4, Connections: []string{"front-hall", "left-hall", "right-hall", "hall-lower"}, IsControlRoom: true},
		{ID: "right-hall", Name: "Right Corridor", X: 5, Y: 4, Connections: []string{"control", "contain-3"}, IsFinalRoom: true, ApproachDirection: facility.Right},
		{ID: "contain-3", Name: "Containment SE", X: 6, Y: 4, Connections: []string{"right-hall", "hall-lower-right"}, IsContainmentRoom: true},
		{ID: "hall-lower-right", Name: "Hall S-E", X: 6, Y: 5, Connections: []string{"contain-3", "contain-5"}},
		{ID: "hall-lower", Name: "Lower Hall", X: 4, Y: 5, Connections: []string{"control", "contain-6"}},
		{ID: "contain-6", Name: "Containment S", X: 4, Y: 6, Connections: []string{"hall-lower"}, IsContainmentRoom: true},
	}
}

// Facility builds the built-in facility graph. The layout is fixed, so an
// invalid graph is a programming error and panics.
func Facility() *facility.Graph {
	g, err := facility.NewGraph(Rooms())
	if err != nil {
		panic(fmt.Sprintf("built-in facility is invalid: %v", err))
	}
	return g
}
