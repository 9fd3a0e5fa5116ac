package handlers

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ghostq/internal/command"
	"github.com/dekarrin/rosed"
)

var commandHelp = [][2]string{
	{"GO", "Move in a direction, as in \"GO NORTH\". N, S, E, W, U, and D work on their own."},
	{"LOOK/EXAMINE", "Look around the room, or at something in particular."},
	{"SEARCH", "Search something for anything hidden."},
	{"GET/TAKE", "Pick up an item, or everything with \"GET ALL\"."},
	{"DROP", "Put down an item, or everything with \"DROP ALL\"."},
	{"INVENTORY", "Show what you're carrying."},
	{"VERBOSE", "Turn full room descriptions on every visit ON or OFF."},
	{"SOUND", "Turn background sound ON or OFF."},
	{"VERSION", "Show version information."},
	{"HELP", "Show this help."},
	{"RESTART", "Start the adventure over."},
	{"QUIT", "Exit the game."},
}

// SystemOptions configures a System handler.
type SystemOptions struct {
	// Width is the column width that HELP output is laid out for.
	Width int

	// Title is the name of the game, shown by VERSION.
	Title string

	// Version is the version shown by VERSION. If empty, VersionFallback is
	// used instead.
	Version         string
	VersionFallback string
}

// System handles HELP, VERSION, VERBOSE, and SOUND.
type System struct {
	ctx  *Context
	opts SystemOptions
}

// NewSystem creates a System handler.
func NewSystem(ctx *Context, opts SystemOptions) *System {
	if opts.Width < 1 {
		opts.Width = 80
	}
	if opts.Title == "" {
		opts.Title = "ghostq"
	}
	return &System{ctx: ctx, opts: opts}
}

func (h *System) CanHandle(verb, noun string, pc command.ParsedCommand) bool {
	switch verb {
	case "HELP", "VERSION", "VERBOSE", "SOUND":
		return true
	default:
		return false
	}
}

func (h *System) Handle(verb, noun string, pc command.ParsedCommand) Result {
	switch verb {
	case "HELP":
		h.help()
	case "VERSION":
		h.version()
	case "VERBOSE":
		return h.verbose(noun)
	case "SOUND":
		h.sound(noun)
	}
	return Result{Success: true}
}

func (h *System) help() {
	output := rosed.Edit("").
		WithOptions(rosed.Options{
			ParagraphSeparator:       "\n",
			NoTrailingLineSeparators: true,
		}).
		Insert(rosed.End, "Here are the commands you can use:\n").
		InsertDefinitionsTable(rosed.End, commandHelp, h.opts.Width).
		String()

	h.ctx.Say(output)
}

func (h *System) version() {
	if h.opts.Version == "" {
		h.ctx.Say(fmt.Sprintf("%s (version %s)", h.opts.Title, h.opts.VersionFallback))
		return
	}
	h.ctx.Say(h.opts.Title + " v" + strings.TrimPrefix(h.opts.Version, "v"))
}

func (h *System) verbose(noun string) Result {
	on := !h.ctx.Settings.Verbose
	switch strings.ToUpper(noun) {
	case "":
	case "ON":
		on = true
	case "OFF":
		on = false
	default:
		h.ctx.Say("Use VERBOSE ON or VERBOSE OFF.")
		return Result{Success: true}
	}

	h.ctx.Settings.Verbose = on
	if !on {
		h.ctx.Say("Verbose mode OFF. Room descriptions shown only on first visit.")
		return Result{Success: true}
	}

	h.ctx.Say("Verbose mode ON. Room descriptions will always be shown.")
	return Result{Success: true, Moved: true}
}

func (h *System) sound(noun string) {
	on := !h.ctx.Settings.Sound
	switch strings.ToUpper(noun) {
	case "":
	case "ON":
		on = true
	case "OFF":
		on = false
	default:
		h.ctx.Say("Use SOUND ON or SOUND OFF.")
		return
	}

	h.ctx.Settings.Sound = on
	if on {
		h.ctx.Sound.Loop(h.ctx.Here().Sound())
		h.ctx.Say("Sound ON.")
	} else {
		h.ctx.Sound.Stop()
		h.ctx.Say("Sound OFF.")
	}
}
