package handlers

import (
	"fmt"

	"github.com/dekarrin/ghostq/internal/command"
	"go.uber.org/zap"
)

// ControlState is where the game stands on quitting or restarting.
type ControlState int

const (
	// Normal means no confirmation is pending.
	Normal ControlState = iota

	// AwaitingQuit means the player asked to quit and must confirm.
	AwaitingQuit

	// AwaitingRestart means the player asked to restart and must confirm.
	AwaitingRestart
)

func (cs ControlState) String() string {
	switch cs {
	case Normal:
		return "normal"
	case AwaitingQuit:
		return "awaiting quit"
	case AwaitingRestart:
		return "awaiting restart"
	default:
		return fmt.Sprintf("ControlState(%d)", int(cs))
	}
}

// Messages are the configurable texts shown around starting, quitting, and
// restarting.
type Messages struct {
	Welcome  string
	Quit     string
	Restart  string
	Continue string
}

// DefaultMessages returns the built-in Messages.
func DefaultMessages() Messages {
	return Messages{
		Welcome:  "Welcome to the haunted adventure! Type HELP for a list of commands.",
		Quit:     "Thanks for playing! Goodbye.",
		Restart:  "Restarting the haunted adventure...",
		Continue: "Good! Continue your haunted adventure...",
	}
}

// GameControl handles QUIT and RESTART and the YES or NO that confirms them.
// While a confirmation is pending it claims every command.
type GameControl struct {
	ctx       *Context
	msgs      Messages
	state     ControlState
	onQuit    func()
	onRestart func() error
}

// NewGameControl creates a GameControl handler. onQuit is called when the
// player confirms quitting and onRestart when they confirm restarting. Either
// may be nil.
func NewGameControl(ctx *Context, msgs Messages, onQuit func(), onRestart func() error) *GameControl {
	return &GameControl{
		ctx:       ctx,
		msgs:      msgs,
		onQuit:    onQuit,
		onRestart: onRestart,
	}
}

// State returns the current confirmation state.
func (h *GameControl) State() ControlState {
	return h.state
}

func (h *GameControl) CanHandle(verb, noun string, pc command.ParsedCommand) bool {
	if h.state != Normal {
		return true
	}
	switch verb {
	case "QUIT", "RESTART", "YES", "NO":
		return true
	default:
		return false
	}
}

func (h *GameControl) Handle(verb, noun string, pc command.ParsedCommand) Result {
	prev := h.state
	var res Result

	switch h.state {
	case AwaitingQuit:
		res = h.handleAwaitingQuit(verb)
	case AwaitingRestart:
		res = h.handleAwaitingRestart(verb)
	default:
		res = h.handleNormal(verb)
	}

	if prev != h.state {
		h.ctx.Log.Debug("game control state changed", zap.Stringer("from", prev), zap.Stringer("to", h.state))
	}
	return res
}

func (h *GameControl) handleNormal(verb string) Result {
	switch verb {
	case "QUIT":
		h.ctx.Say("Are you sure you want to quit? (YES/NO)")
		h.state = AwaitingQuit
	case "RESTART":
		h.ctx.Say("Are you sure you want to restart? (YES/NO)")
		h.state = AwaitingRestart
	case "YES":
		h.ctx.Say("Yes what? I don't understand.")
	case "NO":
		h.ctx.Say("No what? I don't understand.")
	default:
		return Result{}
	}
	return Result{Success: true}
}

func (h *GameControl) handleAwaitingQuit(verb string) Result {
	switch verb {
	case "YES":
		h.state = Normal
		h.ctx.Say(h.msgs.Quit)
		if h.onQuit != nil {
			h.onQuit()
		}
	case "NO":
		h.state = Normal
		h.ctx.Say(h.msgs.Continue)
	case "RESTART":
		return h.restart()
	default:
		h.ctx.Say("Please type YES to quit, NO to continue, or RESTART to start over.")
	}
	return Result{Success: true}
}

func (h *GameControl) handleAwaitingRestart(verb string) Result {
	switch verb {
	case "YES":
		return h.restart()
	case "NO":
		h.state = Normal
		h.ctx.Say("Continuing your current adventure...")
	default:
		h.ctx.Say("Please type YES to restart or NO to continue.")
	}
	return Result{Success: true}
}

func (h *GameControl) restart() Result {
	h.state = Normal
	h.ctx.Say(h.msgs.Restart)
	if h.onRestart == nil {
		return Result{Success: true, Moved: true}
	}

	if err := h.onRestart(); err != nil {
		h.ctx.Log.Error("restart failed", zap.Error(err))
		h.ctx.Say("Something went wrong and the adventure could not be restarted.")
		return Result{Success: true}
	}
	return Result{Success: true, Moved: true}
}
