package handlers

import (
	"strings"

	"github.com/dekarrin/ghostq/internal/command"
	"github.com/dekarrin/ghostq/internal/game"
	"github.com/dekarrin/ghostq/internal/match"
)

// ObjectAction lets objects take over any verb they have an action for, such
// as CLIMB TREE or GO BOAT. It claims a command when the noun phrase picks out
// exactly one reachable object with an action for the verb that may be used in
// the current room. When the phrase is too vague to pick one and one of the
// closest matches could act on the verb, it claims the command to ask the
// player to be more specific.
//
// ALL and EVERYTHING are never claimed; those belong to the built-in handlers.
type ObjectAction struct {
	ctx *Context
}

// NewObjectAction creates an ObjectAction handler.
func NewObjectAction(ctx *Context) *ObjectAction {
	return &ObjectAction{ctx: ctx}
}

// claim is what ObjectAction would do with a command: act on obj, or say
// prompt because the noun was ambiguous.
type claim struct {
	obj    game.Object
	prompt string
}

func (h *ObjectAction) target(verb string, pc command.ParsedCommand) (claim, bool) {
	if !pc.HasNoun() || isAllPhrase(pc.FullNoun) {
		return claim{}, false
	}

	d := match.Resolve(h.ctx.Matcher, pc.FullNoun, h.ctx.Reachable())
	if d.NeedsDisambiguation {
		for _, c := range d.Candidates {
			if h.canAct(c.Object, verb) {
				return claim{prompt: d.Message}, true
			}
		}
		return claim{}, false
	}
	if !d.Found || !h.canAct(d.Selected, verb) {
		return claim{}, false
	}
	return claim{obj: d.Selected}, true
}

func (h *ObjectAction) canAct(obj game.Object, verb string) bool {
	act, ok := game.AsActionable(obj)
	if !ok {
		return false
	}
	return h.ctx.Actions.CanPerform(act, verb, h.ctx.Here().Label()) != nil
}

func (h *ObjectAction) CanHandle(verb, noun string, pc command.ParsedCommand) bool {
	_, ok := h.target(verb, pc)
	return ok
}

func (h *ObjectAction) Handle(verb, noun string, pc command.ParsedCommand) Result {
	c, ok := h.target(verb, pc)
	if !ok {
		return Result{}
	}
	if c.obj == nil {
		h.ctx.Say(c.prompt)
		return Result{Success: true}
	}

	res, ok := h.ctx.TryAction(c.obj, verb)
	if !ok {
		return Result{}
	}
	return res
}

// isAllPhrase reports whether phrase means every object at once.
func isAllPhrase(phrase string) bool {
	return strings.EqualFold(phrase, "all") || strings.EqualFold(phrase, "everything")
}
