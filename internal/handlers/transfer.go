package handlers

import (
	"github.com/dekarrin/ghostq/internal/command"
	"github.com/dekarrin/ghostq/internal/game"
	"github.com/dekarrin/ghostq/internal/gqerrors"
	"github.com/dekarrin/ghostq/internal/util"
	"go.uber.org/zap"
)

// Transfer handles GET, TAKE, and DROP, for a single object or for ALL.
type Transfer struct {
	ctx *Context
}

// NewTransfer creates a Transfer handler.
func NewTransfer(ctx *Context) *Transfer {
	return &Transfer{ctx: ctx}
}

func (h *Transfer) CanHandle(verb, noun string, pc command.ParsedCommand) bool {
	return verb == "GET" || verb == "TAKE" || verb == "DROP"
}

func (h *Transfer) Handle(verb, noun string, pc command.ParsedCommand) Result {
	all := isAllPhrase(pc.FullNoun)

	switch {
	case verb == "DROP" && all:
		h.dropAll()
	case verb == "DROP":
		h.drop(pc.FullNoun)
	case all:
		h.getAll()
	default:
		h.get(pc.FullNoun)
	}

	return Result{Success: true}
}

// move takes obj out of from and puts it in to. It is never in both at once.
func move(obj game.Object, from, to interface {
	RemoveItem(game.Object) bool
	AddItem(game.Object)
}) bool {
	if !from.RemoveItem(obj) {
		return false
	}
	to.AddItem(obj)
	return true
}

func (h *Transfer) getAll() {
	player := h.ctx.World.Player()
	room := h.ctx.Here()

	var taken, refused []string
	for _, obj := range room.Items() {
		if !obj.Getable() {
			if !obj.Invisible() {
				refused = append(refused, theName(obj))
			}
			continue
		}
		if move(obj, room, player) {
			taken = append(taken, theName(obj))
			h.ctx.Log.Debug("item taken", zap.String("item", obj.Label()), zap.String("room", room.Label()))
		}
	}

	if len(taken) < 1 && len(refused) < 1 {
		h.ctx.Say(msgNotHere)
		return
	}
	if len(taken) > 0 {
		h.ctx.Say("You take " + util.MakeTextList(taken, false) + ".")
	}
	if len(refused) > 0 {
		h.ctx.Say("You can't take " + util.MakeTextList(refused, false) + ".")
	}
}

func (h *Transfer) get(phrase string) {
	room := h.ctx.Here()
	if phrase == "" {
		h.ctx.Say(msgNotHere)
		return
	}

	obj, err := h.ctx.Resolve(phrase, room.Items(), msgNotHere)
	if err != nil {
		h.ctx.Say(gqerrors.GameMessage(err))
		return
	}

	if !obj.Getable() {
		h.ctx.Say("You can't take " + theName(obj) + ".")
		return
	}

	move(obj, room, h.ctx.World.Player())
	h.ctx.Log.Debug("item taken", zap.String("item", obj.Label()), zap.String("room", room.Label()))
	h.ctx.Say("You take " + theName(obj) + ".")
}

func (h *Transfer) dropAll() {
	player := h.ctx.World.Player()
	room := h.ctx.Here()

	var dropped []string
	for _, obj := range player.Items() {
		if move(obj, player, room) {
			dropped = append(dropped, theName(obj))
			h.ctx.Log.Debug("item dropped", zap.String("item", obj.Label()), zap.String("room", room.Label()))
		}
	}

	if len(dropped) < 1 {
		h.ctx.Say("You're not carrying that.")
		return
	}
	h.ctx.Say("You drop " + util.MakeTextList(dropped, false) + ".")
}

func (h *Transfer) drop(phrase string) {
	player := h.ctx.World.Player()
	if phrase == "" {
		h.ctx.Say("You're not carrying that.")
		return
	}

	obj, err := h.ctx.Resolve(phrase, player.Items(), "You're not carrying that.")
	if err != nil {
		h.ctx.Say(gqerrors.GameMessage(err))
		return
	}

	room := h.ctx.Here()
	move(obj, player, room)
	h.ctx.Log.Debug("item dropped", zap.String("item", obj.Label()), zap.String("room", room.Label()))
	h.ctx.Say("You drop " + theName(obj) + ".")
}
