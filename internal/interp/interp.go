// Package interp runs whole command cycles: it parses a line of input, routes
// it to the handlers, and returns the narrative text that results.
package interp

import (
	"fmt"

	"github.com/dekarrin/ghostq/internal/action"
	"github.com/dekarrin/ghostq/internal/command"
	"github.com/dekarrin/ghostq/internal/game"
	"github.com/dekarrin/ghostq/internal/handlers"
	"github.com/dekarrin/ghostq/internal/match"
	"github.com/dekarrin/ghostq/internal/sound"
	"go.uber.org/zap"
)

const msgUnknownCommand = "I have no idea what you are trying to do."

// Options configures an Interpreter. The zero value is usable.
type Options struct {
	Matcher  match.Options
	Settings handlers.Settings
	Messages handlers.Messages

	// Title, Version, VersionFallback, and Width are passed on to the VERSION
	// and HELP commands.
	Title           string
	Version         string
	VersionFallback string
	Width           int

	// Sound plays room sounds. If nil, sounds are only logged.
	Sound sound.Player

	Log *zap.Logger
}

// Interpreter owns a World and applies player commands to it one at a time.
// It is not safe for concurrent use.
type Interpreter struct {
	world   *game.World
	initial []byte
	ctx     *handlers.Context
	control *handlers.GameControl
	router  *handlers.Router
	msgs    handlers.Messages
	log     *zap.Logger
	running bool
}

// New creates an Interpreter for world. The state of world at the time New is
// called is what RESTART goes back to. If the player has not been placed yet,
// they are put in the start room.
func New(world *game.World, opts Options) (*Interpreter, error) {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	opts.Messages = withDefaults(opts.Messages)

	if world.Player() == nil {
		if err := world.PlacePlayer(); err != nil {
			return nil, fmt.Errorf("place player: %w", err)
		}
	}

	initial, err := world.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("snapshot initial world: %w", err)
	}

	settings := opts.Settings
	m := match.New(opts.Matcher, opts.Log.Named("match"))
	eng := action.New(opts.Log.Named("action"))
	ctx := handlers.NewContext(world, m, eng, opts.Sound, opts.Log.Named("handlers"), &settings)

	in := &Interpreter{
		world:   world,
		initial: initial,
		ctx:     ctx,
		msgs:    opts.Messages,
		log:     opts.Log,
		running: true,
	}

	in.control = handlers.NewGameControl(ctx, opts.Messages, in.quit, in.restart)
	in.router = handlers.NewRouter(opts.Log.Named("router"), handlers.Chain(ctx, in.control, handlers.SystemOptions{
		Width:           opts.Width,
		Title:           opts.Title,
		Version:         opts.Version,
		VersionFallback: opts.VersionFallback,
	})...)

	return in, nil
}

func withDefaults(msgs handlers.Messages) handlers.Messages {
	def := handlers.DefaultMessages()
	if msgs.Welcome == "" {
		msgs.Welcome = def.Welcome
	}
	if msgs.Quit == "" {
		msgs.Quit = def.Quit
	}
	if msgs.Restart == "" {
		msgs.Restart = def.Restart
	}
	if msgs.Continue == "" {
		msgs.Continue = def.Continue
	}
	return msgs
}

// Start returns the welcome message followed by a description of the starting
// room.
func (in *Interpreter) Start() string {
	in.ctx.Say(in.msgs.Welcome)
	in.ctx.Say("")
	in.ctx.ShowLocation()
	return in.ctx.Flush()
}

// Running returns whether the player is still playing. Once they confirm that
// they want to quit, it returns false and Process does nothing.
func (in *Interpreter) Running() bool {
	return in.running
}

// World returns the world being played.
func (in *Interpreter) World() *game.World {
	return in.world
}

// Settings returns the player's settings.
func (in *Interpreter) Settings() *handlers.Settings {
	return in.ctx.Settings
}

// Process runs one full command cycle for line and returns the text it
// produced.
func (in *Interpreter) Process(line string) string {
	if !in.running {
		return ""
	}

	pc := command.Parse(line)
	if pc.Empty() {
		in.ctx.Say(msgUnknownCommand)
		return in.ctx.Flush()
	}

	verb := command.ExpandAlias(pc.Verb)
	verb, noun, pc := handlers.ExpandShortcut(verb, pc)

	in.log.Debug("processing command", zap.String("verb", verb), zap.String("noun", pc.FullNoun))

	res := in.router.Route(verb, noun, pc)
	if !res.Success {
		in.ctx.Say(msgUnknownCommand)
	}
	if res.Moved && in.running {
		in.ctx.ShowLocation()
	}

	return in.ctx.Flush()
}

func (in *Interpreter) quit() {
	in.running = false
	in.ctx.Sound.Stop()
	in.log.Info("player quit")
}

func (in *Interpreter) restart() error {
	if err := in.world.Restore(in.initial); err != nil {
		return fmt.Errorf("restore initial world: %w", err)
	}
	in.log.Info("world restarted")
	return nil
}
