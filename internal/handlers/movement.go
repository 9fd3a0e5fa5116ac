package handlers

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ghostq/internal/command"
	"github.com/dekarrin/ghostq/internal/game"
	"go.uber.org/zap"
)

// DirectionShortcuts maps verbs that are really movement to the direction they
// mean. A command consisting of only one of these is treated as GO in that
// direction.
var DirectionShortcuts = map[string]string{
	"N":     "NORTH",
	"S":     "SOUTH",
	"E":     "EAST",
	"W":     "WEST",
	"U":     "UP",
	"D":     "DOWN",
	"NORTH": "NORTH",
	"SOUTH": "SOUTH",
	"EAST":  "EAST",
	"WEST":  "WEST",
	"UP":    "UP",
	"DOWN":  "DOWN",
}

// ExpandShortcut rewrites a lone direction shortcut such as "N" into GO
// NORTH. Anything else, including a shortcut followed by a noun, is returned
// as-is.
func ExpandShortcut(verb string, pc command.ParsedCommand) (string, string, command.ParsedCommand) {
	if pc.HasNoun() {
		return verb, pc.Noun, pc
	}

	dir, ok := DirectionShortcuts[strings.ToUpper(verb)]
	if !ok {
		return verb, pc.Noun, pc
	}

	pc.Noun = dir
	pc.FullNoun = dir
	pc.Variations = []string{dir}
	return "GO", dir, pc
}

// Movement handles GO, and GOTO and PATH when debugging is on.
type Movement struct {
	ctx *Context
}

// NewMovement creates a Movement handler.
func NewMovement(ctx *Context) *Movement {
	return &Movement{ctx: ctx}
}

func (h *Movement) CanHandle(verb, noun string, pc command.ParsedCommand) bool {
	switch verb {
	case "GO":
		return true
	case "GOTO", "PATH":
		return h.ctx.Settings.Debug
	default:
		return false
	}
}

func (h *Movement) Handle(verb, noun string, pc command.ParsedCommand) Result {
	switch verb {
	case "GOTO":
		return h.teleport(pc.FullNoun)
	case "PATH":
		return h.path(pc.FullNoun)
	}

	if noun == "" {
		h.ctx.Say("Go where?")
		return Result{Success: true}
	}

	here := h.ctx.Here()
	dir, err := game.ParseDirection(noun)
	if err != nil {
		h.ctx.Say("You can't go that way.")
		return Result{Success: true}
	}

	dest, ok := here.Exit(dir)
	if !ok {
		h.ctx.Say("You can't go that way.")
		return Result{Success: true}
	}

	h.ctx.World.Player().SetLocation(dest)
	h.ctx.Log.Debug("player moved", zap.String("from", here.Label()), zap.Stringer("direction", dir), zap.String("to", dest.Label()))
	return Result{Success: true, Moved: true}
}

func (h *Movement) teleport(label string) Result {
	if label == "" {
		h.ctx.Say("[DEBUG: Usage: GOTO <room label>]")
		return Result{Success: true}
	}

	dest := h.ctx.World.Room(strings.ReplaceAll(label, " ", "_"))
	if dest == nil {
		h.ctx.Say(fmt.Sprintf("[DEBUG: Room %s does not exist]", strings.ToUpper(label)))
		return Result{Success: true}
	}

	h.ctx.World.Player().SetLocation(dest)
	h.ctx.Say(fmt.Sprintf("[DEBUG: Teleported to %s]", dest.Label()))
	return Result{Success: true, Moved: true}
}

func (h *Movement) path(label string) Result {
	if label == "" {
		h.ctx.Say("[DEBUG: Usage: PATH <room label>]")
		return Result{Success: true}
	}

	label = strings.ToUpper(strings.ReplaceAll(label, " ", "_"))
	if h.ctx.World.Room(label) == nil {
		h.ctx.Say(fmt.Sprintf("[DEBUG: Room %s does not exist]", label))
		return Result{Success: true}
	}

	route := h.ctx.World.ShortestPath(h.ctx.Here().Label(), label)
	h.ctx.Say(fmt.Sprintf("[DEBUG: Path: %s]", game.PathString(route)))
	return Result{Success: true}
}
