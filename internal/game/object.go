// Package game holds the world model the interpreter operates on: objects,
// rooms, the player, and the registry that ties them together.
package game

// File object.go holds symbols for the things in the world that the player can
// refer to by name.

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/ghostq/internal/util"
	"github.com/google/uuid"
)

// Object is anything in the world that can be held or sit in a room. It can
// always be looked at; whether it can be picked up is up to Getable.
type Object interface {
	// ID is the identity of this particular instance. It is unique even among
	// objects that share a name.
	ID() uuid.UUID

	// Label is the upper-case name the world file uses to refer to the object.
	Label() string

	// Keyword is an extra word or words the player may use for the object.
	Keyword() string

	// Name is the display name, usually with a leading article, such as "a
	// rusty brass key".
	Name() string
	SetName(name string)

	// Description is what is shown when the object is examined.
	Description() string
	SetDescription(desc string)

	// OriginalName and OriginalDescription are the values the object was
	// created with, before any action renamed or redescribed it.
	OriginalName() string
	OriginalDescription() string

	// Getable is whether the player can pick the object up.
	Getable() bool

	// Invisible objects can be referred to but are left out of room listings.
	Invisible() bool
}

// Actionable is an Object that reacts to verbs through a list of action
// definitions. Only Actionables are given to the action engine.
type Actionable interface {
	Object

	// Actions returns the object's action definitions in declaration order.
	Actions() []ActionDef

	// HasAction returns whether any action definition lists the verb,
	// regardless of which rooms it may be used in.
	HasAction(verb string) bool

	// Performed returns whether the once-only action for verb has already
	// fired on this object.
	Performed(verb string) bool

	// MarkPerformed records that the once-only action for verb has fired.
	MarkPerformed(verb string)
}

// AsActionable returns o as an Actionable if it is one.
func AsActionable(o Object) (Actionable, bool) {
	if o == nil {
		return nil, false
	}
	a, ok := o.(Actionable)
	return a, ok
}

// ItemDef is the set of values needed to create an Item.
type ItemDef struct {
	Label       string
	Keyword     string
	Name        string
	Description string
	Getable     bool
	Invisible   bool
}

// Item is a plain Object with no action behavior.
type Item struct {
	id        uuid.UUID
	label     string
	keyword   string
	name      string
	desc      string
	origName  string
	origDesc  string
	getable   bool
	invisible bool
}

// NewItem creates a new Item with a fresh identity.
func NewItem(def ItemDef) *Item {
	return &Item{
		id:        uuid.New(),
		label:     strings.ToUpper(def.Label),
		keyword:   def.Keyword,
		name:      def.Name,
		desc:      def.Description,
		origName:  def.Name,
		origDesc:  def.Description,
		getable:   def.Getable,
		invisible: def.Invisible,
	}
}

func (it *Item) ID() uuid.UUID { return it.id }
func (it *Item) Label() string { return it.label }
func (it *Item) Keyword() string { return it.keyword }
func (it *Item) Name() string { return it.name }
func (it *Item) SetName(name string) { it.name = name }
func (it *Item) Description() string { return it.desc }
func (it *Item) SetDescription(desc string) { it.desc = desc }
func (it *Item) OriginalName() string { return it.origName }
func (it *Item) OriginalDescription() string { return it.origDesc }
func (it *Item) Getable() bool { return it.getable }
func (it *Item) Invisible() bool { return it.invisible }

func (it *Item) String() string {
	return fmt.Sprintf("Item<%s %q>", it.label, it.name)
}

// PerformedKey identifies a once-only action that has fired: the verb it was
// fired with and the object it was fired on.
type PerformedKey struct {
	Verb   string
	Object uuid.UUID
}

// ActionItem is an Object that carries action definitions.
type ActionItem struct {
	*Item

	actions   []ActionDef
	performed util.KeySet[PerformedKey]
}

// NewActionItem creates an ActionItem with a fresh identity and the given
// action definitions.
func NewActionItem(def ItemDef, actions []ActionDef) *ActionItem {
	ai := &ActionItem{
		Item:      NewItem(def),
		actions:   make([]ActionDef, len(actions)),
		performed: util.NewKeySet[PerformedKey](),
	}
	copy(ai.actions, actions)
	return ai
}

func (ai *ActionItem) Actions() []ActionDef {
	return ai.actions
}

func (ai *ActionItem) HasAction(verb string) bool {
	for i := range ai.actions {
		if ai.actions[i].HasVerb(verb) {
			return true
		}
	}
	return false
}

func (ai *ActionItem) key(verb string) PerformedKey {
	return PerformedKey{Verb: strings.ToLower(strings.TrimSpace(verb)), Object: ai.ID()}
}

func (ai *ActionItem) Performed(verb string) bool {
	return ai.performed.Has(ai.key(verb))
}

func (ai *ActionItem) MarkPerformed(verb string) {
	ai.performed.Add(ai.key(verb))
}

// PerformedVerbs returns the verbs whose once-only action has fired, sorted.
func (ai *ActionItem) PerformedVerbs() []string {
	var verbs []string
	for _, k := range ai.performed.Elements() {
		verbs = append(verbs, k.Verb)
	}
	sort.Strings(verbs)
	return verbs
}

// resetPerformed replaces the performed-set. It is only used when restoring
// the world to a snapshot, which starts the object's history over.
func (ai *ActionItem) resetPerformed(verbs []string) {
	ai.performed = util.NewKeySet[PerformedKey]()
	for _, v := range verbs {
		ai.MarkPerformed(v)
	}
}

func (ai *ActionItem) String() string {
	return fmt.Sprintf("ActionItem<%s %q, %d actions>", ai.label, ai.name, len(ai.actions))
}
