package handlers

import (
	"github.com/dekarrin/ghostq/internal/command"
	"github.com/dekarrin/ghostq/internal/util"
)

// Inventory handles INVENTORY.
type Inventory struct {
	ctx *Context
}

// NewInventory creates an Inventory handler.
func NewInventory(ctx *Context) *Inventory {
	return &Inventory{ctx: ctx}
}

func (h *Inventory) CanHandle(verb, noun string, pc command.ParsedCommand) bool {
	return verb == "INVENTORY"
}

func (h *Inventory) Handle(verb, noun string, pc command.ParsedCommand) Result {
	held := h.ctx.World.Player().Items()
	if len(held) < 1 {
		h.ctx.Say("You are carrying nothing.")
	} else {
		h.ctx.Say("You are carrying " + util.MakeTextList(names(held), false) + ".")
	}
	return Result{Success: true}
}
