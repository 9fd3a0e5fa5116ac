package game

// File snapshot.go holds the binary encoding of the world's mutable state. A
// snapshot taken right after loading is what RESTART goes back to.

import (
	"fmt"

	"github.com/dekarrin/rezi"
)

// Snapshot returns the encoded mutable state of the world.
func (w *World) Snapshot() ([]byte, error) {
	return w.MarshalBinary()
}

// Restore puts the world back into the state encoded in a snapshot previously
// returned by Snapshot on the same World. Nothing is changed if the snapshot
// cannot be decoded or refers to labels the world does not have.
func (w *World) Restore(snap []byte) error {
	return w.UnmarshalBinary(snap)
}

type labelList []string

func labelsOf(objs []Object) labelList {
	labels := make(labelList, len(objs))
	for i := range objs {
		labels[i] = objs[i].Label()
	}
	return labels
}

func (ll labelList) MarshalBinary() ([]byte, error) {
	data := rezi.EncInt(len(ll))
	for _, l := range ll {
		data = append(data, rezi.EncString(l)...)
	}
	return data, nil
}

func (ll *labelList) UnmarshalBinary(data []byte) error {
	count, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	data = data[n:]

	labels := make(labelList, count)
	for i := 0; i < count; i++ {
		labels[i], n, err = rezi.DecString(data)
		if err != nil {
			return fmt.Errorf("label[%d]: %w", i, err)
		}
		data = data[n:]
	}

	*ll = labels
	return nil
}

type exitState struct {
	dir  Direction
	dest string
}

type roomState struct {
	label    string
	sound    string
	beenHere bool
	exits    []exitState
	items    labelList
}

func (rs roomState) MarshalBinary() ([]byte, error) {
	var data []byte
	data = append(data, rezi.EncString(rs.label)...)
	data = append(data, rezi.EncString(rs.sound)...)
	data = append(data, rezi.EncBool(rs.beenHere)...)
	data = append(data, rezi.EncInt(len(rs.exits))...)
	for _, ex := range rs.exits {
		data = append(data, rezi.EncInt(int(ex.dir))...)
		data = append(data, rezi.EncString(ex.dest)...)
	}
	data = append(data, rezi.EncBinary(rs.items)...)
	return data, nil
}

func (rs *roomState) UnmarshalBinary(data []byte) error {
	var n int
	var err error

	rs.label, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("label: %w", err)
	}
	data = data[n:]

	rs.sound, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("sound: %w", err)
	}
	data = data[n:]

	rs.beenHere, n, err = rezi.DecBool(data)
	if err != nil {
		return fmt.Errorf("been here: %w", err)
	}
	data = data[n:]

	exitCount, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("exit count: %w", err)
	}
	data = data[n:]

	rs.exits = make([]exitState, exitCount)
	for i := 0; i < exitCount; i++ {
		dir, n, err := rezi.DecInt(data)
		if err != nil {
			return fmt.Errorf("exits[%d]: direction: %w", i, err)
		}
		data = data[n:]

		dest, n, err := rezi.DecString(data)
		if err != nil {
			return fmt.Errorf("exits[%d]: dest: %w", i, err)
		}
		data = data[n:]

		rs.exits[i] = exitState{dir: Direction(dir), dest: dest}
	}

	if _, err := rezi.DecBinary(data, &rs.items); err != nil {
		return fmt.Errorf("items: %w", err)
	}

	return nil
}

type itemState struct {
	label     string
	name      string
	desc      string
	performed labelList
}

func (is itemState) MarshalBinary() ([]byte, error) {
	var data []byte
	data = append(data, rezi.EncString(is.label)...)
	data = append(data, rezi.EncString(is.name)...)
	data = append(data, rezi.EncString(is.desc)...)
	data = append(data, rezi.EncBinary(is.performed)...)
	return data, nil
}

func (is *itemState) UnmarshalBinary(data []byte) error {
	var n int
	var err error

	is.label, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("label: %w", err)
	}
	data = data[n:]

	is.name, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("name: %w", err)
	}
	data = data[n:]

	is.desc, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("description: %w", err)
	}
	data = data[n:]

	if _, err := rezi.DecBinary(data, &is.performed); err != nil {
		return fmt.Errorf("performed: %w", err)
	}

	return nil
}

// MarshalBinary encodes where the player is, what everything holds, each
// room's sound, exits, and been-here flag, and each item's current name,
// description, and performed-set. Definitions that never change at runtime,
// such as action lists, are not included.
func (w *World) MarshalBinary() ([]byte, error) {
	if w.player == nil || w.player.Location() == nil {
		return nil, fmt.Errorf("world has no placed player")
	}

	var data []byte
	data = append(data, rezi.EncString(w.player.Location().Label())...)
	data = append(data, rezi.EncBinary(labelsOf(w.player.Items()))...)
	data = append(data, rezi.EncBinary(labelsOf(w.limbo.Items()))...)

	rooms := w.Rooms()
	data = append(data, rezi.EncInt(len(rooms))...)
	for _, r := range rooms {
		rs := roomState{
			label:    r.Label(),
			sound:    r.Sound(),
			beenHere: r.BeenHere(),
			items:    labelsOf(r.Items()),
		}
		for _, ex := range r.Exits() {
			if ex.Dest == nil {
				continue
			}
			rs.exits = append(rs.exits, exitState{dir: ex.Direction, dest: ex.Dest.Label()})
		}
		data = append(data, rezi.EncBinary(rs)...)
	}

	items := w.Items()
	data = append(data, rezi.EncInt(len(items))...)
	for _, it := range items {
		is := itemState{
			label: it.Label(),
			name:  it.Name(),
			desc:  it.Description(),
		}
		if ai, ok := it.(*ActionItem); ok {
			is.performed = ai.PerformedVerbs()
		}
		data = append(data, rezi.EncBinary(is)...)
	}

	return data, nil
}

// UnmarshalBinary applies encoded state produced by MarshalBinary onto the
// world's existing rooms and items.
func (w *World) UnmarshalBinary(data []byte) error {
	playerLoc, n, err := rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("player location: %w", err)
	}
	data = data[n:]

	var held, hidden labelList
	n, err = rezi.DecBinary(data, &held)
	if err != nil {
		return fmt.Errorf("player items: %w", err)
	}
	data = data[n:]
	n, err = rezi.DecBinary(data, &hidden)
	if err != nil {
		return fmt.Errorf("hidden items: %w", err)
	}
	data = data[n:]

	roomCount, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("room count: %w", err)
	}
	data = data[n:]
	rooms := make([]roomState, roomCount)
	for i := range rooms {
		n, err = rezi.DecBinary(data, &rooms[i])
		if err != nil {
			return fmt.Errorf("rooms[%d]: %w", i, err)
		}
		data = data[n:]
	}

	itemCount, n, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("item count: %w", err)
	}
	data = data[n:]
	items := make([]itemState, itemCount)
	for i := range items {
		n, err = rezi.DecBinary(data, &items[i])
		if err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
		data = data[n:]
	}

	// check every reference before touching anything
	if w.Room(playerLoc) == nil {
		return fmt.Errorf("player location %q: %w", playerLoc, ErrNoSuchRoom)
	}
	if err := w.checkItemLabels(held); err != nil {
		return fmt.Errorf("player items: %w", err)
	}
	if err := w.checkItemLabels(hidden); err != nil {
		return fmt.Errorf("hidden items: %w", err)
	}
	for _, rs := range rooms {
		if w.Room(rs.label) == nil {
			return fmt.Errorf("room %q: %w", rs.label, ErrNoSuchRoom)
		}
		for _, ex := range rs.exits {
			if w.Room(ex.dest) == nil {
				return fmt.Errorf("room %q: exit %s: %q: %w", rs.label, ex.dir, ex.dest, ErrNoSuchRoom)
			}
		}
		if err := w.checkItemLabels(rs.items); err != nil {
			return fmt.Errorf("room %q: %w", rs.label, err)
		}
	}
	if err := w.checkItemLabels(itemLabelsOf(items)); err != nil {
		return err
	}

	if w.player == nil {
		w.player = NewPlayer(nil)
	}
	w.player.SetLocation(w.Room(playerLoc))
	w.player.clear()
	for _, l := range held {
		w.player.AddItem(w.Item(l))
	}
	w.limbo.clear()
	for _, l := range hidden {
		w.limbo.AddItem(w.Item(l))
	}

	for _, rs := range rooms {
		r := w.Room(rs.label)
		r.SetSound(rs.sound)
		r.SetBeenHere(rs.beenHere)
		r.exits = nil
		for _, ex := range rs.exits {
			r.AddExit(Exit{Direction: ex.dir, Dest: w.Room(ex.dest)})
		}
		r.clear()
		for _, l := range rs.items {
			r.AddItem(w.Item(l))
		}
	}

	for _, is := range items {
		it := w.Item(is.label)
		it.SetName(is.name)
		it.SetDescription(is.desc)
		if ai, ok := it.(*ActionItem); ok {
			ai.resetPerformed(is.performed)
		}
	}

	return nil
}

func (w *World) checkItemLabels(labels []string) error {
	for _, l := range labels {
		if w.Item(l) == nil {
			return fmt.Errorf("%q: %w", l, ErrNoSuchItem)
		}
	}
	return nil
}

func itemLabelsOf(items []itemState) []string {
	labels := make([]string, len(items))
	for i := range items {
		labels[i] = items[i].label
	}
	return labels
}
