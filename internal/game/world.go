package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSuchRoom is returned when a room label is not in the world.
	ErrNoSuchRoom = errors.New("no room with that label")

	// ErrNoSuchItem is returned when an item label is not in the world.
	ErrNoSuchItem = errors.New("no item with that label")

	// ErrNotHidden is returned when revealing an item that is already in play.
	ErrNotHidden = errors.New("item is not hidden")

	// ErrDuplicateLabel is returned when adding a room or item whose label is
	// already taken.
	ErrDuplicateLabel = errors.New("label already in use")
)

// World is the registry of every room and item in the game, along with the
// player and the limbo that hidden items wait in until they are revealed.
//
// Items stay in the registry for the life of the World even once consumed, so
// that they can be looked up by label and restored from a snapshot.
type World struct {
	// Start is the label of the room the player begins in.
	Start string

	rooms     map[string]*Room
	roomOrder []string
	items     map[string]Object
	itemOrder []string
	limbo     container
	player    *Player
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		rooms: map[string]*Room{},
		items: map[string]Object{},
	}
}

// AddRoom registers a room.
func (w *World) AddRoom(room *Room) error {
	if _, ok := w.rooms[room.Label()]; ok {
		return fmt.Errorf("room %q: %w", room.Label(), ErrDuplicateLabel)
	}
	w.rooms[room.Label()] = room
	w.roomOrder = append(w.roomOrder, room.Label())
	return nil
}

// AddItem registers an item. It does not place it anywhere.
func (w *World) AddItem(o Object) error {
	if _, ok := w.items[o.Label()]; ok {
		return fmt.Errorf("item %q: %w", o.Label(), ErrDuplicateLabel)
	}
	w.items[o.Label()] = o
	w.itemOrder = append(w.itemOrder, o.Label())
	return nil
}

// Room returns the room with the given label, or nil if there is none. Case
// is ignored.
func (w *World) Room(label string) *Room {
	return w.rooms[strings.ToUpper(label)]
}

// Item returns the item with the given label, or nil if there is none. Case
// is ignored.
func (w *World) Item(label string) Object {
	return w.items[strings.ToUpper(label)]
}

// Rooms returns every room in the order they were added.
func (w *World) Rooms() []*Room {
	rooms := make([]*Room, len(w.roomOrder))
	for i, l := range w.roomOrder {
		rooms[i] = w.rooms[l]
	}
	return rooms
}

// Items returns every registered item in the order they were added.
func (w *World) Items() []Object {
	items := make([]Object, len(w.itemOrder))
	for i, l := range w.itemOrder {
		items[i] = w.items[l]
	}
	return items
}

// Player returns the player. It is nil until a player is placed with
// PlacePlayer.
func (w *World) Player() *Player {
	return w.player
}

// PlacePlayer creates the player in the start room.
func (w *World) PlacePlayer() error {
	start := w.Room(w.Start)
	if start == nil {
		return fmt.Errorf("start %q: %w", w.Start, ErrNoSuchRoom)
	}
	w.player = NewPlayer(start)
	return nil
}

// Hide puts an item into limbo, out of play.
func (w *World) Hide(o Object) {
	w.limbo.AddItem(o)
}

// Hidden returns whether the item with the given label is in limbo.
func (w *World) Hidden(label string) bool {
	o := w.Item(label)
	return o != nil && w.limbo.HasItem(o)
}

// Reveal moves a hidden item out of limbo and into a room.
func (w *World) Reveal(label string, into *Room) (Object, error) {
	o := w.Item(label)
	if o == nil {
		return nil, fmt.Errorf("%q: %w", label, ErrNoSuchItem)
	}
	if into == nil {
		return nil, fmt.Errorf("reveal %q: %w", label, ErrNoSuchRoom)
	}
	if !w.limbo.RemoveItem(o) {
		return nil, fmt.Errorf("%q: %w", label, ErrNotHidden)
	}
	into.AddItem(o)
	return o, nil
}
