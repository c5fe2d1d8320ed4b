// Package combat defines what actors can do on their turn: the action
// capability, its targeting rules, and the side effects actions resolve into.
package combat

import (
	"github.com/samdwyer/skirmish/internal/actor"
	"github.com/samdwyer/skirmish/internal/grid"
)

// State is the read-only view of an encounter that actions validate and
// cost themselves against.
type State interface {
	// Actor returns the actor with the given id. Unknown ids panic.
	Actor(id int) *actor.State
	// HasActor reports whether id is on the roster.
	HasActor(id int) bool
	// CanMoveTo reports whether the actor's footprint fits at dest.
	CanMoveTo(actorID int, dest grid.Coordinate) bool
}

// Targeting is the structural shape an invocation must have.
type Targeting int

const (
	// TargetNone takes no targets, locations or overrides.
	TargetNone Targeting = iota
	// TargetPoint takes exactly one location and no target actors.
	TargetPoint
	// TargetActor takes exactly one target actor and no locations.
	TargetActor
	// TargetCustom is checked by the action's own ShapeValidator.
	TargetCustom
)

// String returns the targeting name.
func (t Targeting) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetPoint:
		return "point"
	case TargetActor:
		return "actor"
	case TargetCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Override is a named tweak to how an action resolves.
type Override string

// Invocation is a request for one actor to perform one action. It is
// validated again when it is executed.
type Invocation struct {
	Action    Action
	Caster    int
	Targets   []int
	Locations []grid.Coordinate
	Overrides []Override
}
