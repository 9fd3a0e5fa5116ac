// Package action decides what happens when a verb is used on an object that
// carries action definitions. It picks the definition that applies, enforces
// its once-only and required-item gates, and returns an Outcome describing the
// effects. It never changes the world itself beyond recording that a once-only
// action has fired; applying the Outcome is up to the caller.
package action

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ghostq/internal/game"
	"go.uber.org/zap"
)

const (
	// DefaultAlreadyPerformedMessage is shown for a repeated once-only action
	// that has no message of its own.
	DefaultAlreadyPerformedMessage = "You have already done that."

	// DefaultRequiresItemFormat is used to build the message for a missing
	// required item when the action has no message of its own.
	DefaultRequiresItemFormat = "You need a %s to do that."
)

// Status is how an action attempt turned out.
type Status int

const (
	// Performed means the action fired and its effects should be applied.
	Performed Status = iota

	// AlreadyPerformed means a once-only action was tried again. Only the
	// message should be shown.
	AlreadyPerformed

	// MissingRequirement means the player lacks the required item. Only the
	// message should be shown.
	MissingRequirement
)

func (s Status) String() string {
	switch s {
	case Performed:
		return "performed"
	case AlreadyPerformed:
		return "already performed"
	case MissingRequirement:
		return "missing requirement"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of executing an action. All effect fields are empty
// unless Status is Performed.
type Outcome struct {
	Status  Status
	Message string

	// NewLocation is the label of the room to move the player to.
	NewLocation string

	ConsumeItem bool
	AddExit     *game.ExitSpec
	AddSound    []game.SoundSpec

	// NewDescription and NewName are what the object's description and name
	// should be set to. When the definition leaves them empty they hold the
	// object's original values.
	NewDescription string
	NewName        string

	RevealsItem         string
	RevealsItemLocation string
}

// Success is always true for an Outcome that exists: every status is a
// handled command from the player's point of view.
func (o Outcome) Success() bool {
	return true
}

// Applies returns whether the outcome's effects should be applied to the
// world.
func (o Outcome) Applies() bool {
	return o.Status == Performed
}

// Engine evaluates action definitions. It keeps no state of its own; the
// performed-set lives on each object.
type Engine struct {
	log *zap.Logger
}

// New creates an Engine. If log is nil, nothing is logged.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

// CanPerform returns the first action definition on obj that is triggered by
// verb and may be used in the room with the given label, or nil if there is
// none.
func (eng *Engine) CanPerform(obj game.Actionable, verb, roomLabel string) *game.ActionDef {
	if obj == nil {
		return nil
	}

	defs := obj.Actions()
	for i := range defs {
		if defs[i].HasVerb(verb) && defs[i].UseInRoom.Allows(roomLabel) {
			return &defs[i]
		}
	}
	return nil
}

// Execute runs the action on obj for verb in the given room. possessions is
// what the player is carrying, used to check a required item. It returns nil
// if obj does not react to verb in that room, in which case the caller should
// do whatever it normally does for the verb.
func (eng *Engine) Execute(obj game.Actionable, verb, roomLabel string, possessions []game.Object) *Outcome {
	def := eng.CanPerform(obj, verb, roomLabel)
	if def == nil {
		eng.log.Debug("no action applies", zap.String("object", labelOf(obj)), zap.String("verb", verb), zap.String("room", roomLabel))
		return nil
	}

	if def.OnceOnly && obj.Performed(verb) {
		msg := def.AlreadyPerformedMessage
		if msg == "" {
			msg = DefaultAlreadyPerformedMessage
		}
		eng.log.Debug("once-only action already performed", zap.String("object", obj.Label()), zap.String("verb", verb))
		return &Outcome{Status: AlreadyPerformed, Message: msg}
	}

	if def.RequiresItem != "" && !carrying(possessions, def.RequiresItem) {
		msg := def.RequiresItemMessage
		if msg == "" {
			msg = fmt.Sprintf(DefaultRequiresItemFormat, def.RequiresItem)
		}
		eng.log.Debug("action requirement not met", zap.String("object", obj.Label()), zap.String("verb", verb), zap.String("requires", def.RequiresItem))
		return &Outcome{Status: MissingRequirement, Message: msg}
	}

	if def.OnceOnly {
		obj.MarkPerformed(verb)
		eng.log.Debug("once-only action marked performed", zap.String("object", obj.Label()), zap.String("verb", verb))
	}

	out := &Outcome{
		Status:              Performed,
		Message:             def.Message,
		NewLocation:         def.LeadsTo,
		ConsumeItem:         def.ConsumeItem,
		AddExit:             def.AddExit,
		AddSound:            def.AddSound,
		NewDescription:      def.NewDescription,
		NewName:             def.NewName,
		RevealsItem:         def.RevealsItem,
		RevealsItemLocation: def.RevealsItemLocation,
	}
	if out.NewDescription == "" {
		out.NewDescription = obj.OriginalDescription()
	}
	if out.NewName == "" {
		out.NewName = obj.OriginalName()
	}

	eng.log.Debug("action performed", zap.String("object", obj.Label()), zap.String("verb", verb), zap.String("room", roomLabel))

	return out
}

// carrying returns whether any of possessions has a name containing the
// required text, ignoring case.
func carrying(possessions []game.Object, required string) bool {
	required = strings.ToLower(strings.TrimSpace(required))
	for _, o := range possessions {
		if strings.Contains(strings.ToLower(o.Name()), required) {
			return true
		}
	}
	return false
}

func labelOf(obj game.Actionable) string {
	if obj == nil {
		return ""
	}
	return obj.Label()
}
