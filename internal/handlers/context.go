// Package handlers turns a parsed command into changes to the world. A Router
// holds an ordered list of Handlers and gives each command to the first one
// that claims it. Handlers share a Context that gives them the world, the
// matcher, the action engine, and somewhere to write narrative text.
package handlers

import (
	"errors"
	"strings"

	"github.com/dekarrin/ghostq/internal/action"
	"github.com/dekarrin/ghostq/internal/game"
	"github.com/dekarrin/ghostq/internal/gqerrors"
	"github.com/dekarrin/ghostq/internal/match"
	"github.com/dekarrin/ghostq/internal/sound"
	"github.com/dekarrin/ghostq/internal/util"
	"go.uber.org/zap"
)

const (
	msgNotHere  = "I don't see that around here."
	msgRevealed = "You notice something you hadn't seen before..."
)

// Settings are the player-adjustable switches.
type Settings struct {
	// Verbose makes the room description print on every visit instead of only
	// the first.
	Verbose bool

	// Sound turns background sound on.
	Sound bool

	// Debug enables debug-only commands such as GOTO.
	Debug bool
}

// Context is everything a Handler needs to do its job. Output written with Say
// accumulates until Flush is called.
type Context struct {
	World    *game.World
	Matcher  *match.Matcher
	Actions  *action.Engine
	Sound    sound.Player
	Log      *zap.Logger
	Settings *Settings

	out strings.Builder
}

// NewContext creates a Context. A nil matcher, engine, sound player, logger,
// or settings is replaced with a default one.
func NewContext(world *game.World, m *match.Matcher, eng *action.Engine, sp sound.Player, log *zap.Logger, settings *Settings) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = match.New(match.DefaultOptions(), log)
	}
	if eng == nil {
		eng = action.New(log)
	}
	if sp == nil {
		sp = sound.NewLogPlayer(log)
	}
	if settings == nil {
		settings = &Settings{}
	}

	return &Context{
		World:    world,
		Matcher:  m,
		Actions:  eng,
		Sound:    sp,
		Log:      log,
		Settings: settings,
	}
}

// Say writes one line of narrative output.
func (ctx *Context) Say(line string) {
	ctx.out.WriteString(line)
	ctx.out.WriteRune('\n')
}

// Flush returns everything said since the last call to Flush.
func (ctx *Context) Flush() string {
	s := ctx.out.String()
	ctx.out.Reset()
	return s
}

// Here returns the room the player is in.
func (ctx *Context) Here() *game.Room {
	return ctx.World.Player().Location()
}

// Reachable returns every object the player could refer to: what they are
// holding followed by what is in the room.
func (ctx *Context) Reachable() []game.Object {
	held := ctx.World.Player().Items()
	return append(held, ctx.Here().Items()...)
}

// Resolve picks the single object among candidates that phrase refers to. If
// there is no such object, the returned error wraps gqerrors.ErrNotFound and
// has notFound as its game message. If several objects fit equally well, the
// error wraps gqerrors.ErrAmbiguous and its game message asks the player to be
// more specific.
func (ctx *Context) Resolve(phrase string, candidates []game.Object, notFound string) (game.Object, error) {
	d := match.Resolve(ctx.Matcher, phrase, candidates)
	if d.NeedsDisambiguation {
		return nil, gqerrors.WrapInterpreter(gqerrors.ErrAmbiguous, d.Message, "")
	}
	if !d.Found {
		return nil, gqerrors.WrapInterpreter(gqerrors.ErrNotFound, notFound, "")
	}
	return d.Selected, nil
}

// TryAction runs the action engine on obj for verb in the current room. If obj
// reacts to verb, the outcome is applied and ok is true. Otherwise nothing
// happens and ok is false.
func (ctx *Context) TryAction(obj game.Object, verb string) (res Result, ok bool) {
	act, isActionable := game.AsActionable(obj)
	if !isActionable {
		return Result{}, false
	}

	room := ctx.Here()
	out := ctx.Actions.Execute(act, verb, room.Label(), ctx.World.Player().Items())
	if out == nil {
		return Result{}, false
	}

	moved := ctx.ApplyOutcome(obj, out, room)
	return Result{Success: out.Success(), Moved: moved}, true
}

// ApplyOutcome shows the outcome's message and, if it carries effects, makes
// them happen. room is where the action took place. It returns whether the
// player was moved.
func (ctx *Context) ApplyOutcome(obj game.Object, out *action.Outcome, room *game.Room) bool {
	if out.Message != "" {
		ctx.Say(out.Message)
	}
	if !out.Applies() {
		return false
	}

	player := ctx.World.Player()

	obj.SetDescription(out.NewDescription)
	obj.SetName(out.NewName)

	if out.ConsumeItem {
		player.RemoveItem(obj)
		room.RemoveItem(obj)
		ctx.Log.Debug("item consumed", zap.String("item", obj.Label()))
	}

	if out.RevealsItem != "" {
		ctx.reveal(out.RevealsItem, out.RevealsItemLocation, room)
	}

	if out.AddExit != nil {
		ctx.addExit(room, *out.AddExit)
	}

	for _, snd := range out.AddSound {
		ctx.addSound(snd)
	}

	if out.NewLocation != "" {
		dest := ctx.World.Room(out.NewLocation)
		if dest == nil {
			ctx.Log.Warn("action leads to unknown room", zap.String("item", obj.Label()), zap.String("room", out.NewLocation))
			return false
		}
		player.SetLocation(dest)
		ctx.Log.Debug("player relocated by action", zap.String("item", obj.Label()), zap.String("room", dest.Label()))
		return true
	}

	return false
}

func (ctx *Context) reveal(itemLabel, roomLabel string, actionRoom *game.Room) {
	into := actionRoom
	if roomLabel != "" {
		into = ctx.World.Room(roomLabel)
	}

	if _, err := ctx.World.Reveal(itemLabel, into); err != nil {
		if errors.Is(err, game.ErrNotHidden) {
			ctx.Log.Debug("item already revealed", zap.String("item", itemLabel))
		} else {
			ctx.Log.Warn("could not reveal item", zap.String("item", itemLabel), zap.Error(err))
		}
		return
	}

	ctx.Log.Debug("item revealed", zap.String("item", itemLabel), zap.String("room", into.Label()))
	if into == ctx.Here() {
		ctx.Say("")
		ctx.Say(msgRevealed)
	}
}

func (ctx *Context) addExit(room *game.Room, spec game.ExitSpec) {
	if spec.Dest == "" {
		room.RemoveExit(spec.Direction)
		ctx.Log.Debug("exit removed", zap.String("room", room.Label()), zap.Stringer("direction", spec.Direction))
		return
	}

	dest := ctx.World.Room(spec.Dest)
	if dest == nil {
		ctx.Log.Warn("exit leads to unknown room", zap.String("room", room.Label()), zap.String("dest", spec.Dest))
		return
	}
	room.AddExitByDirection(spec.Direction, dest)
	ctx.Log.Debug("exit added", zap.String("room", room.Label()), zap.Stringer("direction", spec.Direction), zap.String("dest", dest.Label()))
}

func (ctx *Context) addSound(spec game.SoundSpec) {
	room := ctx.World.Room(spec.Room)
	if room == nil {
		ctx.Log.Warn("sound for unknown room", zap.String("room", spec.Room))
		return
	}
	room.SetSound(spec.File)
	ctx.Log.Debug("room sound changed", zap.String("room", room.Label()), zap.String("file", spec.File))

	if room == ctx.Here() && ctx.Settings.Sound {
		ctx.Sound.Loop(spec.File)
	}
}

// ShowLocation describes the room the player is in. The room's description is
// only included on the first visit unless verbose mode is on.
func (ctx *Context) ShowLocation() {
	room := ctx.Here()

	ctx.Say("LOCATION: " + room.Name())
	if (!room.BeenHere() || ctx.Settings.Verbose) && room.Description() != "" {
		ctx.Say(room.Description())
	}
	room.SetBeenHere(true)

	exits := room.Exits()
	if len(exits) > 0 {
		dirs := make([]string, len(exits))
		for i := range exits {
			dirs[i] = exits[i].Direction.String()
		}
		ctx.Say("Obvious exits lead " + util.MakeSimpleList(dirs) + ".")
	} else {
		ctx.Say("There are no obvious exits.")
	}

	visible := room.VisibleItems()
	if len(visible) > 0 {
		ctx.Say("You see " + util.MakeTextList(names(visible), false) + ".")
	} else {
		ctx.Say("You see nothing of interest.")
	}

	if ctx.Settings.Sound {
		ctx.Sound.Loop(room.Sound())
	}
}

// names returns the display names of objs.
func names(objs []game.Object) []string {
	ns := make([]string, len(objs))
	for i := range objs {
		ns[i] = objs[i].Name()
	}
	return ns
}

// theName gives "the" followed by the object's name with its own article
// removed.
func theName(obj game.Object) string {
	return "the " + util.StripArticle(obj.Name())
}
