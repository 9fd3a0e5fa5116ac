package game

// Player is the actor the commands are carried out by. It has a location and
// holds objects.
type Player struct {
	container

	location *Room
}

// NewPlayer creates a Player standing in the given room with nothing held.
func NewPlayer(start *Room) *Player {
	return &Player{location: start}
}

// Location returns the room the player is in.
func (p *Player) Location() *Room {
	return p.location
}

// SetLocation moves the player to a room.
func (p *Player) SetLocation(room *Room) {
	p.location = room
}
