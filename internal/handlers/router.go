package handlers

import (
	"fmt"

	"github.com/dekarrin/ghostq/internal/command"
	"go.uber.org/zap"
)

// Result is what a Handler reports after handling a command.
type Result struct {
	// Success is false when the handler declined the command after all. The
	// caller then shows its own fallback message.
	Success bool

	// Moved is true when the room should be displayed again, usually because
	// the player is somewhere new.
	Moved bool
}

// Handler is one kind of command behavior.
//
// verb is upper case with aliases expanded. noun is the last word of the noun
// phrase, or "" if there is none. pc is the full parsed command.
type Handler interface {
	// CanHandle returns whether the Handler wants the command. It must not
	// change anything.
	CanHandle(verb, noun string, pc command.ParsedCommand) bool

	// Handle carries out the command.
	Handle(verb, noun string, pc command.ParsedCommand) Result
}

// Router gives each command to the first of its handlers that claims it. The
// list is fixed when the Router is created.
type Router struct {
	handlers []Handler
	log      *zap.Logger
}

// NewRouter creates a Router that consults handlers in the order given.
func NewRouter(log *zap.Logger, handlers ...Handler) *Router {
	if log == nil {
		log = zap.NewNop()
	}

	hs := make([]Handler, len(handlers))
	copy(hs, handlers)

	return &Router{handlers: hs, log: log}
}

// Claimant returns the handler that would be given the command, or nil if no
// handler claims it.
func (r *Router) Claimant(verb, noun string, pc command.ParsedCommand) Handler {
	for _, h := range r.handlers {
		if h.CanHandle(verb, noun, pc) {
			return h
		}
	}
	return nil
}

// Route dispatches the command to the first handler that claims it. Only that
// handler is ever run; if it reports failure, or nothing claims the command,
// the returned Result has Success set to false and the caller decides what to
// say.
func (r *Router) Route(verb, noun string, pc command.ParsedCommand) Result {
	h := r.Claimant(verb, noun, pc)
	if h == nil {
		r.log.Debug("no handler claimed command", zap.String("verb", verb), zap.String("noun", pc.FullNoun))
		return Result{}
	}

	r.log.Debug("handler claimed command", zap.String("handler", fmt.Sprintf("%T", h)), zap.String("verb", verb), zap.String("noun", pc.FullNoun))
	res := h.Handle(verb, noun, pc)
	if !res.Success {
		r.log.Debug("handler declined command", zap.String("handler", fmt.Sprintf("%T", h)), zap.String("verb", verb))
	}
	return res
}

// Chain returns the standard handlers in the order they must be consulted.
// Game control comes first so a pending confirmation sees every command, then
// system commands, then object actions so that objects can override the
// generic verbs that follow them.
func Chain(ctx *Context, control *GameControl, sysOpts SystemOptions) []Handler {
	return []Handler{
		control,
		NewSystem(ctx, sysOpts),
		NewObjectAction(ctx),
		NewMovement(ctx),
		NewInventory(ctx),
		NewTransfer(ctx),
		NewExamine(ctx),
		NewSearch(ctx),
	}
}
