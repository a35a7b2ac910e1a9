// Package facility models the static room graph subjects move through:
// rooms, their adjacency, and the approach/containment metadata attached to them.
// Everything here is read-only once a Graph is built.
package facility

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var (
	ErrNoControlRoom       = errors.New("facility has no control room")
	ErrMultipleControlRoom = errors.New("facility has more than one control room")
	ErrDuplicateRoom       = errors.New("duplicate room id")
	ErrUnknownConnection   = errors.New("connection to unknown room")
	ErrAsymmetric          = errors.New("connection is not symmetric")
	ErrDisconnected        = errors.New("room cannot reach the control room")
	ErrFinalRoomDirection  = errors.New("final room has no approach direction")
	ErrFinalRoomPlacement  = errors.New("final room is not adjacent to the control room")
)

// Room is a single node of the facility.
type Room struct {
	ID                string
	Name              string
	X, Y              int // Map position, layout only
	Connections       []string
	IsControlRoom     bool
	IsFinalRoom       bool // Adjacent to control; entry triggers a breach warning
	IsContainmentRoom bool // Shock is available here
	ApproachDirection Direction
}

// Graph is an immutable, validated facility.
type Graph struct {
	rooms       []*Room
	byID        map[string]*Room
	control     *Room
	containment mapset.Set[string]
}

// NewGraph indexes and validates the given rooms. Room order is kept, and the
// order of each room's Connections decides BFS tie-breaks.
func NewGraph(rooms []Room) (*Graph, error) {
	g := &Graph{
		rooms:       make([]*Room, 0, len(rooms)),
		byID:        make(map[string]*Room, len(rooms)),
		containment: mapset.New[string](),
	}

	for i := range rooms {
		r := rooms[i]
		r.Connections = append([]string(nil), rooms[i].Connections...)
		if _, dup := g.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoom, r.ID)
		}
		g.rooms = append(g.rooms, &r)
		g.byID[r.ID] = &r
		if r.IsContainmentRoom {
			g.containment.Put(r.ID)
		}
		if r.IsControlRoom {
			if g.control != nil {
				return nil, fmt.Errorf("%w: %s and %s", ErrMultipleControlRoom, g.control.ID, r.ID)
			}
			g.control = &r
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the graph invariants: a single control room, symmetric
// connections to known rooms, final rooms next to control with a direction,
// and a route to control from every room.
func (g *Graph) Validate() error {
	if g.control == nil {
		return ErrNoControlRoom
	}

	for _, r := range g.rooms {
		for _, id := range r.Connections {
			other, ok := g.byID[id]
			if !ok {
				return fmt.Errorf("%w: %s -> %s", ErrUnknownConnection, r.ID, id)
			}
			if !contains(other.Connections, r.ID) {
				return fmt.Errorf("%w: %s -> %s", ErrAsymmetric, r.ID, id)
			}
		}
		if r.IsFinalRoom {
			if !r.ApproachDirection.IsValid() {
				return fmt.Errorf("%w: %s", ErrFinalRoomDirection, r.ID)
			}
			if !contains(r.Connections, g.control.ID) {
				return fmt.Errorf("%w: %s", ErrFinalRoomPlacement, r.ID)
			}
		}
	}

	// Everything must be reachable from control; with symmetric edges this is
	// the same as every room reaching control.
	reached := g.reachableFrom(g.control.ID)
	for _, r := range g.rooms {
		if !reached.Has(r.ID) {
			return fmt.Errorf("%w: %s", ErrDisconnected, r.ID)
		}
	}
	return nil
}

func (g *Graph) reachableFrom(start string) mapset.Set[string] {
	visited := mapset.New[string]()
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current) {
			continue
		}
		visited.Put(current)
		if r, ok := g.byID[current]; ok {
			for _, n := range r.Connections {
				if !visited.Has(n) {
					queue = append(queue, n)
				}
			}
		}
	}
	return visited
}

// Rooms returns every room in definition order.
func (g *Graph) Rooms() []*Room {
	out := make([]*Room, len(g.rooms))
	copy(out, g.rooms)
	return out
}

// ControlRoom returns the player's room.
func (g *Graph) ControlRoom() *Room {
	return g.control
}

// FinalRooms returns the rooms that open directly onto a control-room door.
func (g *Graph) FinalRooms() []*Room {
	var out []*Room
	for _, r := range g.rooms {
		if r.IsFinalRoom {
			out = append(out, r)
		}
	}
	return out
}

// RoomByID looks up a room.
func (g *Graph) RoomByID(id string) (*Room, bool) {
	r, ok := g.byID[id]
	return r, ok
}

// ConnectedRooms returns the neighbours of id in connection order. Unknown ids
// have no neighbours.
func (g *Graph) ConnectedRooms(id string) []*Room {
	r, ok := g.byID[id]
	if !ok {
		return nil
	}
	out := make([]*Room, 0, len(r.Connections))
	for _, cid := range r.Connections {
		if c, ok := g.byID[cid]; ok {
			out = append(out, c)
		}
	}
	return out
}

// IsAdjacent reports whether b is directly connected to a.
func (g *Graph) IsAdjacent(a, b string) bool {
	r, ok := g.byID[a]
	if !ok {
		return false
	}
	return contains(r.Connections, b)
}

type pathNode struct {
	roomID string
	path   []string
}

// PathToControl returns the shortest hop sequence from fromID to the control
// room, both ends included. Among equally short paths the first one discovered
// in connection order wins. Unknown or unreachable rooms yield nil.
func (g *Graph) PathToControl(fromID string) []string {
	if _, ok := g.byID[fromID]; !ok || g.control == nil {
		return nil
	}

	visited := mapset.New[string]()
	queue := []pathNode{{roomID: fromID, path: []string{fromID}}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.roomID == g.control.ID {
			return current.path
		}
		if visited.Has(current.roomID) {
			continue
		}
		visited.Put(current.roomID)

		room, ok := g.byID[current.roomID]
		if !ok {
			continue
		}
		for _, next := range room.Connections {
			if visited.Has(next) {
				continue
			}
			path := make([]string, len(current.path), len(current.path)+1)
			copy(path, current.path)
			queue = append(queue, pathNode{roomID: next, path: append(path, next)})
		}
	}

	return nil
}

// NextHop returns the room after fromID on its shortest path to control, or ""
// when fromID is control, unknown, or cut off.
func (g *Graph) NextHop(fromID string) string {
	path := g.PathToControl(fromID)
	if len(path) < 2 {
		return ""
	}
	return path[1]
}

// Distance returns the hop count from fromID to control, or -1 if there is no route.
func (g *Graph) Distance(fromID string) int {
	path := g.PathToControl(fromID)
	if path == nil {
		return -1
	}
	return len(path) - 1
}

// ApproachDirection returns the room's explicit approach direction, falling
// back to its x position relative to the control room.
func (g *Graph) ApproachDirection(roomID string) Direction {
	room, ok := g.byID[roomID]
	if ok && room.ApproachDirection.IsValid() {
		return room.ApproachDirection
	}
	if ok && g.control != nil {
		if room.X < g.control.X {
			return Left
		}
		if room.X > g.control.X {
			return Right
		}
	}
	return Front
}

// IsContainmentRoom reports whether shock is permitted in roomID.
func (g *Graph) IsContainmentRoom(roomID string) bool {
	return g.containment.Has(roomID)
}

// IsFinalRoom reports whether roomID opens directly onto a control-room door.
func (g *Graph) IsFinalRoom(roomID string) bool {
	r, ok := g.byID[roomID]
	return ok && r.IsFinalRoom
}

// OpensOntoControl reports whether the next hop from roomID can be the control
// room. That covers every final room and any plain room wired straight to control.
func (g *Graph) OpensOntoControl(roomID string) bool {
	if g.control == nil || roomID == g.control.ID {
		return false
	}
	return g.IsFinalRoom(roomID) || g.IsAdjacent(roomID, g.control.ID)
}

// IsControlRoom reports whether roomID is the control room.
func (g *Graph) IsControlRoom(roomID string) bool {
	return g.control != nil && g.control.ID == roomID
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
