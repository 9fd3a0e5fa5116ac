package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDirection is returned when text does not name a direction.
var ErrUnknownDirection = errors.New("not a direction")

// Direction is one of the six ways an exit can lead.
type Direction int

const (
	DirNone Direction = iota
	North
	South
	East
	West
	Up
	Down
)

// Directions returns every direction in display order.
func Directions() []Direction {
	return []Direction{North, South, East, West, Up, Down}
}

// String gives the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	case DirNone:
		return "none"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Short gives the single upper-case letter for the direction.
func (d Direction) Short() string {
	if d < North || d > Down {
		return ""
	}
	return strings.ToUpper(d.String()[:1])
}

// ParseDirection reads a direction from its full name or its single letter.
// Case is ignored.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions() {
		if s == d.String() || s == strings.ToLower(d.Short()) {
			return d, nil
		}
	}
	return DirNone, fmt.Errorf("%q: %w", s, ErrUnknownDirection)
}
