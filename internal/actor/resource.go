// Package actor provides encounter participants and their resource economy.
package actor

import "fmt"

// Kind identifies a resource pool.
type Kind int

const (
	KindMovement Kind = iota
	KindAction
	KindBonusAction
	KindReaction
	KindLegendaryAction
	KindSpellSlot
)

// String returns the resource kind name.
func (k Kind) String() string {
	switch k {
	case KindMovement:
		return "movement"
	case KindAction:
		return "action"
	case KindBonusAction:
		return "bonus_action"
	case KindReaction:
		return "reaction"
	case KindLegendaryAction:
		return "legendary_action"
	case KindSpellSlot:
		return "spell_slot"
	default:
		return "unknown"
	}
}

// Resource is an amount of one resource kind. Distance is only meaningful
// for movement and Level only for spell slots.
type Resource struct {
	Kind     Kind
	Distance float64
	Level    int
}

// Discrete resources, one slot each.
var (
	Action          = Resource{Kind: KindAction}
	BonusAction     = Resource{Kind: KindBonusAction}
	Reaction        = Resource{Kind: KindReaction}
	LegendaryAction = Resource{Kind: KindLegendaryAction}
)

// Movement returns a movement resource of the given distance.
func Movement(distance float64) Resource {
	return Resource{Kind: KindMovement, Distance: distance}
}

// SpellSlot returns one spell slot of the given level.
func SpellSlot(level int) Resource {
	return Resource{Kind: KindSpellSlot, Level: level}
}

// String returns a human-readable description.
func (r Resource) String() string {
	switch r.Kind {
	case KindMovement:
		return fmt.Sprintf("%.1fft of movement", r.Distance)
	case KindSpellSlot:
		return fmt.Sprintf("level %d spell slot", r.Level)
	default:
		return r.Kind.String()
	}
}
