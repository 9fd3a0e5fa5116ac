package handlers

import (
	"github.com/dekarrin/ghostq/internal/command"
	"github.com/dekarrin/ghostq/internal/gqerrors"
)

// Examine handles LOOK and EXAMINE. With no noun it redisplays the room.
type Examine struct {
	ctx *Context
}

// NewExamine creates an Examine handler.
func NewExamine(ctx *Context) *Examine {
	return &Examine{ctx: ctx}
}

func (h *Examine) CanHandle(verb, noun string, pc command.ParsedCommand) bool {
	return verb == "LOOK" || verb == "EXAMINE"
}

func (h *Examine) Handle(verb, noun string, pc command.ParsedCommand) Result {
	if !pc.HasNoun() {
		h.ctx.Here().SetBeenHere(false)
		return Result{Success: true, Moved: true}
	}

	obj, err := h.ctx.Resolve(pc.FullNoun, h.ctx.Reachable(), msgNotHere)
	if err != nil {
		h.ctx.Say(gqerrors.GameMessage(err))
		return Result{Success: true}
	}

	if res, ok := h.ctx.TryAction(obj, verb); ok {
		return res
	}

	if obj.Description() == "" {
		h.ctx.Say("You see nothing special.")
	} else {
		h.ctx.Say(obj.Description())
	}
	return Result{Success: true}
}
