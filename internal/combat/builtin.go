package combat

import (
	"github.com/samdwyer/skirmish/internal/actor"
	"github.com/samdwyer/skirmish/internal/dice"
	"github.com/samdwyer/skirmish/internal/grid"
)

// Built-in actions available to every creature.
var (
	Move Action = moveAction{}
	Skip Action = skipAction{}
	Dash Action = dashAction{}
	Slam Action = slamAction{}
)

type moveAction struct{}

func (moveAction) Name() string         { return "move" }
func (moveAction) Aliases() []string    { return []string{"mv"} }
func (moveAction) Targeting() Targeting { return TargetPoint }

func (moveAction) Cost(s State, inv Invocation) (actor.Resource, bool) {
	caster := s.Actor(inv.Caster)
	return actor.Movement(grid.TileCenterDistance(caster.Position, inv.Locations[0])), true
}

func (moveAction) ValidInput(s State, inv Invocation) bool {
	return s.CanMoveTo(inv.Caster, inv.Locations[0])
}

func (moveAction) SideEffects(_ State, inv Invocation) []Step {
	return []Step{{Effect: MoveActor{ActorID: inv.Caster, Target: inv.Locations[0]}}}
}

type skipAction struct{}

func (skipAction) Name() string         { return "skip" }
func (skipAction) Aliases() []string    { return []string{"s"} }
func (skipAction) Targeting() Targeting { return TargetNone }

func (skipAction) Cost(State, Invocation) (actor.Resource, bool) {
	return actor.Resource{}, false
}

func (skipAction) SideEffects(State, Invocation) []Step {
	return []Step{{Effect: SkipTurn{}}}
}

type dashAction struct{}

func (dashAction) Name() string         { return "dash" }
func (dashAction) Aliases() []string    { return []string{"dsh"} }
func (dashAction) Targeting() Targeting { return TargetNone }

func (dashAction) Cost(State, Invocation) (actor.Resource, bool) {
	return actor.Action, true
}

func (dashAction) SideEffects(s State, inv Invocation) []Step {
	speed := s.Actor(inv.Caster).Speed()
	return []Step{{Effect: GiveResource{ActorID: inv.Caster, Resource: actor.Movement(speed)}}}
}

// Melee reach in feet.
const slamReach = 5.0

// slamProficiency is the proficiency bonus added to slam attack rolls.
const slamProficiency = 2

type slamAction struct{}

func (slamAction) Name() string         { return "slam" }
func (slamAction) Aliases() []string    { return []string{"slm"} }
func (slamAction) Targeting() Targeting { return TargetActor }

func (slamAction) Cost(State, Invocation) (actor.Resource, bool) {
	return actor.Action, true
}

func (slamAction) ValidInput(s State, inv Invocation) bool {
	targetID := inv.Targets[0]
	if targetID == inv.Caster || !s.HasActor(targetID) {
		return false
	}
	caster, target := s.Actor(inv.Caster), s.Actor(targetID)
	gap := grid.Gap(caster.Position, caster.Tiles(), target.Position, target.Tiles())
	return float64(gap+1)*grid.CellSize <= slamReach
}

// SideEffects returns the damage before the attack roll it depends on, so
// that the roll resolves first.
func (slamAction) SideEffects(s State, inv Invocation) []Step {
	caster, target := s.Actor(inv.Caster), s.Actor(inv.Targets[0])
	str := caster.Modifier(actor.Strength)

	return []Step{
		{Effect: Damage{ActorID: target.ID, Roll: dice.D(1, 6).Plus(str)}, Requires: []int{1}},
		{Effect: Check{
			ActorID:   caster.ID,
			Label:     "slam attack",
			Roll:      dice.D(1, 20).Plus(str + slamProficiency),
			Threshold: target.ArmorClass(),
		}},
	}
}
