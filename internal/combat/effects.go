package combat

import (
	"fmt"

	"github.com/samdwyer/skirmish/internal/actor"
	"github.com/samdwyer/skirmish/internal/dice"
	"github.com/samdwyer/skirmish/internal/grid"
)

// Effect is a single state change produced by resolving an action. The
// set of effects is closed; the encounter applies each kind directly.
type Effect interface {
	fmt.Stringer
	isEffect()
}

// Step is one generated effect. Requires holds indices of other steps in
// the same generated sequence that must succeed before this one applies.
type Step struct {
	Effect   Effect
	Requires []int
}

// ConsumeResource spends a resource from an actor's ledger.
type ConsumeResource struct {
	ActorID  int
	Resource actor.Resource
}

// GiveResource restores a resource to an actor's ledger.
type GiveResource struct {
	ActorID  int
	Resource actor.Resource
}

// MoveActor relocates an actor and its footprint.
type MoveActor struct {
	ActorID int
	Target  grid.Coordinate
}

// SkipTurn ends the current turn and readies the next actor.
type SkipTurn struct{}

// Check rolls dice against a threshold. Its success is what dependent
// steps test.
type Check struct {
	ActorID   int
	Label     string
	Roll      dice.Expr
	Threshold int
}

// Damage lowers an actor's hit points by a roll.
type Damage struct {
	ActorID int
	Roll    dice.Expr
}

func (ConsumeResource) isEffect() {}
func (GiveResource) isEffect()    {}
func (MoveActor) isEffect()       {}
func (SkipTurn) isEffect()        {}
func (Check) isEffect()           {}
func (Damage) isEffect()          {}

func (e ConsumeResource) String() string {
	return fmt.Sprintf("consume %s from actor %d", e.Resource, e.ActorID)
}

func (e GiveResource) String() string {
	return fmt.Sprintf("give %s to actor %d", e.Resource, e.ActorID)
}

func (e MoveActor) String() string {
	return fmt.Sprintf("move actor %d to %s", e.ActorID, e.Target)
}

func (SkipTurn) String() string {
	return "skip turn"
}

func (e Check) String() string {
	return fmt.Sprintf("%s check for actor %d: %s vs %d", e.Label, e.ActorID, e.Roll, e.Threshold)
}

func (e Damage) String() string {
	return fmt.Sprintf("deal %s damage to actor %d", e.Roll, e.ActorID)
}
