package game

// File room.go includes symbols for holding data on the rooms and exits between
// them.

import (
	"fmt"
	"strings"
)

// Exit is a way out of a room.
type Exit struct {
	Direction Direction
	Dest      *Room
}

func (ex Exit) String() string {
	dest := "<nil>"
	if ex.Dest != nil {
		dest = ex.Dest.Label()
	}
	return fmt.Sprintf("Exit(%s -> %s)", ex.Direction, dest)
}

// Room is a location in the game. It holds objects and has exits leading to
// other rooms.
type Room struct {
	container

	label       string
	name        string
	description string
	sound       string
	exits       []Exit
	beenHere    bool
}

// NewRoom creates an empty Room with no exits.
func NewRoom(label, name, description string) *Room {
	return &Room{
		label:       strings.ToUpper(label),
		name:        name,
		description: description,
	}
}

// Label is how the room is referred to by the world file and by actions. It is
// unique among all rooms.
func (room *Room) Label() string {
	return room.label
}

// Name is the short name shown as the room's heading.
func (room *Room) Name() string {
	return room.name
}

// Description is the long text shown on a first visit or in verbose mode.
func (room *Room) Description() string {
	return room.description
}

// Sound is the ambient sound file for the room, or the empty string for none.
func (room *Room) Sound() string {
	return room.sound
}

// SetSound replaces the room's ambient sound.
func (room *Room) SetSound(file string) {
	room.sound = file
}

// BeenHere returns whether the player has seen the room's description.
func (room *Room) BeenHere() bool {
	return room.beenHere
}

// SetBeenHere sets whether the player has seen the room's description.
// Clearing it makes the next display of the room show the description again.
func (room *Room) SetBeenHere(been bool) {
	room.beenHere = been
}

// Exits returns the room's exits in the order they were added.
func (room *Room) Exits() []Exit {
	exits := make([]Exit, len(room.exits))
	copy(exits, room.exits)
	return exits
}

// Exit returns the room that the exit in the given direction leads to.
func (room *Room) Exit(dir Direction) (*Room, bool) {
	for _, ex := range room.exits {
		if ex.Direction == dir && ex.Dest != nil {
			return ex.Dest, true
		}
	}
	return nil, false
}

// AddExit adds an exit, replacing any existing exit in the same direction.
func (room *Room) AddExit(ex Exit) {
	for i := range room.exits {
		if room.exits[i].Direction == ex.Direction {
			room.exits[i] = ex
			return
		}
	}
	room.exits = append(room.exits, ex)
}

// AddExitByDirection points the exit in dir at dest. A nil dest removes the
// exit in that direction.
func (room *Room) AddExitByDirection(dir Direction, dest *Room) {
	if dest == nil {
		room.RemoveExit(dir)
		return
	}
	room.AddExit(Exit{Direction: dir, Dest: dest})
}

// RemoveExit removes the exit in the given direction if there is one.
func (room *Room) RemoveExit(dir Direction) {
	for i := range room.exits {
		if room.exits[i].Direction == dir {
			room.exits = append(room.exits[:i], room.exits[i+1:]...)
			return
		}
	}
}

// VisibleItems returns the items in the room that are not invisible.
func (room *Room) VisibleItems() []Object {
	var visible []Object
	for _, o := range room.objects {
		if !o.Invisible() {
			visible = append(visible, o)
		}
	}
	return visible
}

func (room *Room) String() string {
	var exits []string
	for _, ex := range room.exits {
		exits = append(exits, ex.String())
	}
	exitsStr := strings.Join(exits, ", ")

	return fmt.Sprintf("Room<%s %q EXITS: %s>", room.label, room.name, exitsStr)
}
