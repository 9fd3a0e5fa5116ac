package game

// File action.go holds the data-driven action definitions attached to
// ActionItems.

import (
	"strings"
)

// RoomScope is where an action may be used. The zero value, like a scope with
// Any set, allows every room.
type RoomScope struct {
	Any   bool
	Rooms []string
}

// AnyRoom returns a RoomScope that allows every room.
func AnyRoom() RoomScope {
	return RoomScope{Any: true}
}

// InRooms returns a RoomScope that allows only the rooms with the given labels.
func InRooms(labels ...string) RoomScope {
	rs := RoomScope{Rooms: make([]string, len(labels))}
	for i := range labels {
		rs.Rooms[i] = strings.ToUpper(labels[i])
	}
	return rs
}

// Allows returns whether an action with this scope may be used in the room with
// the given label.
func (rs RoomScope) Allows(roomLabel string) bool {
	if rs.Any || len(rs.Rooms) == 0 {
		return true
	}
	for _, r := range rs.Rooms {
		if strings.EqualFold(r, roomLabel) {
			return true
		}
	}
	return false
}

// ExitSpec is an exit to create when an action fires. An empty Dest removes
// the exit in that direction instead.
type ExitSpec struct {
	Direction Direction
	Dest      string
}

// SoundSpec sets the ambient sound of a room when an action fires.
type SoundSpec struct {
	Room string
	File string
}

// ActionDef is one way an ActionItem reacts to a verb.
type ActionDef struct {
	// Verbs are the lower-case verbs that trigger the action.
	Verbs []string

	// UseInRoom limits the rooms the action can be used in.
	UseInRoom RoomScope

	// RequiresItem, if set, is text that must appear in the name of something
	// the player is carrying. RequiresItemMessage is shown when it does not.
	RequiresItem        string
	RequiresItemMessage string

	// OnceOnly actions fire their effects only the first time. After that,
	// AlreadyPerformedMessage is shown.
	OnceOnly                bool
	AlreadyPerformedMessage string

	// Message is shown when the action fires.
	Message string

	// NewDescription and NewName replace the object's description and name.
	// Empty values put back the ones the object was created with.
	NewDescription string
	NewName        string

	// ConsumeItem removes the object from play.
	ConsumeItem bool

	// RevealsItem is the label of a hidden item to bring into play, in the room
	// RevealsItemLocation or the current room if that is empty.
	RevealsItem         string
	RevealsItemLocation string

	AddExit  *ExitSpec
	AddSound []SoundSpec

	// LeadsTo is the label of a room to move the player to.
	LeadsTo string
}

// ParseVerbs splits a comma-separated verb list such as "push, press" into its
// lower-case verbs. Blank entries are dropped.
func ParseVerbs(s string) []string {
	var verbs []string
	for _, v := range strings.Split(s, ",") {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			verbs = append(verbs, v)
		}
	}
	return verbs
}

// HasVerb returns whether verb triggers the action. Case is ignored.
func (ad ActionDef) HasVerb(verb string) bool {
	verb = strings.TrimSpace(verb)
	for _, v := range ad.Verbs {
		if strings.EqualFold(v, verb) {
			return true
		}
	}
	return false
}
