package handlers

import (
	"github.com/dekarrin/ghostq/internal/command"
	"github.com/dekarrin/ghostq/internal/gqerrors"
	"github.com/dekarrin/ghostq/internal/util"
)

// Search handles SEARCH. It needs a specific target; objects with a search
// action say what was found, and anything else turns up nothing.
type Search struct {
	ctx *Context
}

// NewSearch creates a Search handler.
func NewSearch(ctx *Context) *Search {
	return &Search{ctx: ctx}
}

func (h *Search) CanHandle(verb, noun string, pc command.ParsedCommand) bool {
	return verb == "SEARCH"
}

func (h *Search) Handle(verb, noun string, pc command.ParsedCommand) Result {
	target := pc.FullNoun
	if target == "" {
		h.ctx.Say("You need to search something specific.")
		return Result{Success: true}
	}
	if isAllPhrase(target) {
		h.ctx.Say("You need to search something specific, not everything at once.")
		return Result{Success: true}
	}

	obj, err := h.ctx.Resolve(target, h.ctx.Reachable(), "I don't see that around here to search.")
	if err != nil {
		h.ctx.Say(gqerrors.GameMessage(err))
		return Result{Success: true}
	}

	if res, ok := h.ctx.TryAction(obj, verb); ok {
		return res
	}

	h.ctx.Say("You search the " + util.StripArticle(obj.Name()) + " but find nothing special.")
	return Result{Success: true}
}
