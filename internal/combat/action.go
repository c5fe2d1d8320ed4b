package combat

import (
	"errors"
	"fmt"

	"github.com/samdwyer/skirmish/internal/actor"
)

var (
	// ErrTargetShape means the invocation's targets do not fit the action.
	ErrTargetShape = errors.New("wrong targets for action")
	// ErrInsufficientResources means the caster cannot pay the cost.
	ErrInsufficientResources = errors.New("insufficient resources")
	// ErrIllegalTarget means the action's own checks rejected the targets.
	ErrIllegalTarget = errors.New("illegal target")
)

// Action is something an actor can do.
type Action interface {
	// Name is the canonical command word.
	Name() string
	// Aliases are accepted short forms of Name.
	Aliases() []string
	// Targeting is the shape of targets the action takes.
	Targeting() Targeting
	// Cost returns the single resource the action spends, if any.
	Cost(s State, inv Invocation) (actor.Resource, bool)
	// SideEffects generates the effects of a validated invocation. Effects
	// are pushed onto the resolution stack one at a time, so they are
	// applied last-generated first.
	SideEffects(s State, inv Invocation) []Step
}

// InputValidator is implemented by actions with semantic checks beyond
// target shape, such as reachability.
type InputValidator interface {
	ValidInput(s State, inv Invocation) bool
}

// ShapeValidator must be implemented by actions using TargetCustom.
type ShapeValidator interface {
	ValidShape(inv Invocation) bool
}

// Matches reports whether word is the action's name or one of its aliases.
func Matches(a Action, word string) bool {
	if a.Name() == word {
		return true
	}
	for _, alias := range a.Aliases() {
		if alias == word {
			return true
		}
	}
	return false
}

// Validate checks shape, affordability and the action's own rules, in
// that order.
func Validate(s State, inv Invocation) error {
	a := inv.Action
	if a == nil {
		return fmt.Errorf("%w: no action", ErrTargetShape)
	}

	if !validShape(inv) {
		return fmt.Errorf("%w: %s takes %s targeting", ErrTargetShape, a.Name(), a.Targeting())
	}

	if cost, ok := a.Cost(s, inv); ok {
		if !s.Actor(inv.Caster).CanConsume(cost) {
			return fmt.Errorf("%w: %s needs %s", ErrInsufficientResources, a.Name(), cost)
		}
	}

	if v, ok := a.(InputValidator); ok && !v.ValidInput(s, inv) {
		return fmt.Errorf("%w for %s", ErrIllegalTarget, a.Name())
	}

	return nil
}

// Execute validates the invocation again and returns its side effects
// followed by the consumption of its cost. Executing an invocation that is
// no longer legal panics.
func Execute(s State, inv Invocation) []Step {
	if err := Validate(s, inv); err != nil {
		panic(fmt.Sprintf("combat: executing illegal invocation: %v", err))
	}

	steps := inv.Action.SideEffects(s, inv)
	if cost, ok := inv.Action.Cost(s, inv); ok {
		steps = append(steps, Step{Effect: ConsumeResource{ActorID: inv.Caster, Resource: cost}})
	}
	return steps
}

func validShape(inv Invocation) bool {
	switch t := inv.Action.Targeting(); t {
	case TargetNone:
		return len(inv.Targets) == 0 && len(inv.Locations) == 0 && len(inv.Overrides) == 0
	case TargetPoint:
		return len(inv.Targets) == 0 && len(inv.Locations) == 1
	case TargetActor:
		return len(inv.Targets) == 1 && len(inv.Locations) == 0
	case TargetCustom:
		v, ok := inv.Action.(ShapeValidator)
		if !ok {
			panic(fmt.Sprintf("combat: action %q uses custom targeting without a shape validator", inv.Action.Name()))
		}
		return v.ValidShape(inv)
	default:
		panic(fmt.Sprintf("combat: action %q has unknown targeting %d", inv.Action.Name(), t))
	}
}
