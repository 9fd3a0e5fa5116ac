package worldfile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dekarrin/ghostq/internal/game"
	"github.com/dekarrin/ghostq/internal/gqerrors"
)

// this is put in a char class so order matters
const labelChars = `]A-Z0-9_!?#%^&*().,<>/+=[|{}:;-`

var (
	labelRegexp             = regexp.MustCompile(fmt.Sprintf(`^[%s]+$`, labelChars))
	identifierBadCharRegexp = regexp.MustCompile(fmt.Sprintf(`[^%s]`, labelChars))
)

type stringSet map[string]bool

type worldSymbols struct {
	roomLabels stringSet
	itemLabels stringSet
}

// invalid creates an error wrapping gqerrors.ErrWorld.
func invalid(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", gqerrors.ErrWorld, fmt.Sprintf(format, a...))
}

func parseWorldData(gqw topLevelWorldData) (*game.World, error) {
	// gather every label first so that references can be checked as they are
	// reached
	symbols, err := scanSymbols(gqw)
	if err != nil {
		return nil, err
	}

	w := game.NewWorld()

	if !symbols.roomLabels[strings.ToUpper(gqw.World.Start)] {
		return nil, fmt.Errorf("world: start: %w", invalid("no room with label %q exists", gqw.World.Start))
	}
	w.Start = strings.ToUpper(gqw.World.Start)

	for _, r := range gqw.Rooms {
		if err := validateRoomDef(r, symbols); err != nil {
			return nil, fmt.Errorf("rooms[%q]: %w", r.Label, err)
		}

		room := game.NewRoom(r.Label, r.Name, r.Description)
		room.SetSound(r.Sound)
		if err := w.AddRoom(room); err != nil {
			return nil, fmt.Errorf("rooms[%q]: %w", r.Label, err)
		}
	}

	// exits can only be linked once every room exists
	for _, r := range gqw.Rooms {
		room := w.Room(r.Label)
		for _, ex := range r.Exits {
			dir, _ := game.ParseDirection(ex.Direction)
			room.AddExitByDirection(dir, w.Room(ex.Dest))
		}
	}

	if err := w.PlacePlayer(); err != nil {
		return nil, fmt.Errorf("world: start: %w", err)
	}

	for _, it := range gqw.Items {
		if err := validateItemDef(it, symbols); err != nil {
			return nil, fmt.Errorf("items[%q]: %w", it.Label, err)
		}

		obj, err := it.toGameObject()
		if err != nil {
			return nil, fmt.Errorf("items[%q]: %w", it.Label, err)
		}
		if err := w.AddItem(obj); err != nil {
			return nil, fmt.Errorf("items[%q]: %w", it.Label, err)
		}

		switch start := strings.ToUpper(it.Start); start {
		case StartPlayer:
			w.Player().AddItem(obj)
		case StartHidden:
			w.Hide(obj)
		default:
			w.Room(start).AddItem(obj)
		}
	}

	return w, nil
}

// scanSymbols collects every room and item label, checking that each is well
// formed and not already used. The returned labels are upper case.
func scanSymbols(top topLevelWorldData) (worldSymbols, error) {
	syms := worldSymbols{
		roomLabels: make(stringSet),
		itemLabels: make(stringSet),
	}

	for _, r := range top.Rooms {
		upper := strings.ToUpper(r.Label)
		if err := checkLabel(upper, syms.roomLabels, "a room"); err != nil {
			return syms, fmt.Errorf("room %q: %w", r.Label, err)
		}
		syms.roomLabels[upper] = true
	}

	for _, it := range top.Items {
		upper := strings.ToUpper(it.Label)
		if err := checkLabel(upper, syms.itemLabels, "an item"); err != nil {
			return syms, fmt.Errorf("item %q: %w", it.Label, err)
		}
		syms.itemLabels[upper] = true
	}

	return syms, nil
}

func validateRoomDef(r room, syms worldSymbols) error {
	if r.Name == "" {
		return invalid("must have non-blank 'name' field")
	}

	seen := map[game.Direction]bool{}
	for idx, ex := range r.Exits {
		dir, err := validateExitDef(ex, syms, false)
		if err != nil {
			return fmt.Errorf("exits[%d]: %w", idx, err)
		}
		if seen[dir] {
			return fmt.Errorf("exits[%d]: %w", idx, invalid("more than one exit leads %s", dir))
		}
		seen[dir] = true
	}

	return nil
}

// validateExitDef checks an exit. If allowNoDest is set, a blank dest is
// accepted; that is how an action removes an exit.
func validateExitDef(ex exit, syms worldSymbols, allowNoDest bool) (game.Direction, error) {
	dir, err := game.ParseDirection(ex.Direction)
	if err != nil {
		return dir, fmt.Errorf("direction: %w", invalid("%v", err))
	}

	if ex.Dest == "" {
		if allowNoDest {
			return dir, nil
		}
		return dir, invalid("must have non-blank 'dest' field")
	}
	if !syms.roomLabels[strings.ToUpper(ex.Dest)] {
		return dir, fmt.Errorf("dest: %w", invalid("no room with label %q exists", ex.Dest))
	}

	return dir, nil
}

func validateItemDef(it item, syms worldSymbols) error {
	if it.Name == "" {
		return invalid("must have non-blank 'name' field")
	}

	switch start := strings.ToUpper(it.Start); {
	case start == "":
		return invalid("must have non-blank 'start' field; use %q to start hidden", StartHidden)
	case start == StartPlayer || start == StartHidden:
	case !syms.roomLabels[start]:
		return fmt.Errorf("start: %w", invalid("no room with label %q exists", it.Start))
	}

	for idx, act := range it.Actions {
		if err := validateActionDef(act, syms); err != nil {
			return fmt.Errorf("action[%d]: %w", idx, err)
		}
	}

	return nil
}

func validateActionDef(act itemAction, syms worldSymbols) error {
	if len(game.ParseVerbs(act.Verb)) < 1 {
		return invalid("must have at least one verb in 'verb' field")
	}

	scope, err := parseRoomScope(act.UseInRoom)
	if err != nil {
		return fmt.Errorf("use_in_room: %w", err)
	}
	for _, r := range scope.Rooms {
		if !syms.roomLabels[r] {
			return fmt.Errorf("use_in_room: %w", invalid("no room with label %q exists", r))
		}
	}

	if act.RevealsItem != "" && !syms.itemLabels[strings.ToUpper(act.RevealsItem)] {
		return fmt.Errorf("reveals_item: %w", invalid("no item with label %q exists", act.RevealsItem))
	}
	if act.RevealsItemLocation != "" {
		if act.RevealsItem == "" {
			return fmt.Errorf("reveals_item_location: %w", invalid("set without 'reveals_item'"))
		}
		if !syms.roomLabels[strings.ToUpper(act.RevealsItemLocation)] {
			return fmt.Errorf("reveals_item_location: %w", invalid("no room with label %q exists", act.RevealsItemLocation))
		}
	}
	if act.LeadsTo != "" && !syms.roomLabels[strings.ToUpper(act.LeadsTo)] {
		return fmt.Errorf("leads_to: %w", invalid("no room with label %q exists", act.LeadsTo))
	}
	if act.AddExit != nil {
		if _, err := validateExitDef(*act.AddExit, syms, true); err != nil {
			return fmt.Errorf("add_exit: %w", err)
		}
	}
	for idx, snd := range act.AddSound {
		if !syms.roomLabels[strings.ToUpper(snd.Room)] {
			return fmt.Errorf("add_sound[%d]: room: %w", idx, invalid("no room with label %q exists", snd.Room))
		}
	}

	return nil
}

// parseRoomScope reads a use_in_room value, which may be missing, "*", a room
// label, or an array of room labels.
func parseRoomScope(v interface{}) (game.RoomScope, error) {
	switch val := v.(type) {
	case nil:
		return game.AnyRoom(), nil
	case string:
		if val == "" || val == "*" {
			return game.AnyRoom(), nil
		}
		return game.InRooms(val), nil
	case []interface{}:
		labels := make([]string, len(val))
		for i := range val {
			s, ok := val[i].(string)
			if !ok {
				return game.RoomScope{}, invalid("[%d]: must be a string, not %T", i, val[i])
			}
			if s == "*" {
				return game.AnyRoom(), nil
			}
			labels[i] = s
		}
		return game.InRooms(labels...), nil
	default:
		return game.RoomScope{}, invalid("must be a string or an array of strings, not %T", v)
	}
}

func (it item) toGameObject() (game.Object, error) {
	def := game.ItemDef{
		Label:       it.Label,
		Keyword:     it.Keyword,
		Name:        it.Name,
		Description: it.Description,
		Getable:     it.Getable,
		Invisible:   it.Invisible,
	}

	if len(it.Actions) < 1 {
		return game.NewItem(def), nil
	}

	actions := make([]game.ActionDef, len(it.Actions))
	for i, act := range it.Actions {
		converted, err := act.toGameActionDef()
		if err != nil {
			return nil, fmt.Errorf("action[%d]: %w", i, err)
		}
		actions[i] = converted
	}
	return game.NewActionItem(def, actions), nil
}

func (act itemAction) toGameActionDef() (game.ActionDef, error) {
	scope, err := parseRoomScope(act.UseInRoom)
	if err != nil {
		return game.ActionDef{}, fmt.Errorf("use_in_room: %w", err)
	}

	def := game.ActionDef{
		Verbs:                   game.ParseVerbs(act.Verb),
		UseInRoom:               scope,
		RequiresItem:            act.RequiresItem,
		RequiresItemMessage:     act.RequiresItemMessage,
		OnceOnly:                act.OnceOnly,
		AlreadyPerformedMessage: act.AlreadyPerformedMessage,
		Message:                 act.Message,
		NewDescription:          act.NewDescription,
		NewName:                 act.NewName,
		ConsumeItem:             act.ConsumeItem,
		RevealsItem:             strings.ToUpper(act.RevealsItem),
		RevealsItemLocation:     strings.ToUpper(act.RevealsItemLocation),
		LeadsTo:                 strings.ToUpper(act.LeadsTo),
	}

	if act.AddExit != nil {
		dir, err := game.ParseDirection(act.AddExit.Direction)
		if err != nil {
			return game.ActionDef{}, fmt.Errorf("add_exit: %w", err)
		}
		def.AddExit = &game.ExitSpec{Direction: dir, Dest: strings.ToUpper(act.AddExit.Dest)}
	}
	for _, snd := range act.AddSound {
		def.AddSound = append(def.AddSound, game.SoundSpec{Room: strings.ToUpper(snd.Room), File: snd.File})
	}

	return def, nil
}

func checkLabel(label string, conflictSet stringSet, labeled string) error {
	if label == "" {
		return invalid("must have non-blank 'label' field")
	}

	if _, ok := conflictSet[label]; ok {
		return invalid("label %q has already been used for %s", label, labeled)
	}

	if !labelRegexp.MatchString(label) {
		badChar := identifierBadCharRegexp.FindString(label)
		return invalid("%q has the %q character in it which is not allowed for labels", label, badChar)
	}

	return nil
}
