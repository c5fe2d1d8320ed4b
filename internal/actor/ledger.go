package actor

import "fmt"

// Per-round slot maxima in the base ruleset.
const (
	ActionsPerRound      = 1
	BonusActionsPerRound = 1
	ReactionsPerRound    = 1
)

// Ledger tracks what an actor may still spend.
type Ledger struct {
	Movement         float64
	Actions          int
	BonusActions     int
	Reactions        int
	LegendaryActions int
	SpellSlots       SpellSlots
}

// CanConsume reports whether r can be paid from the ledger.
func (l *Ledger) CanConsume(r Resource) bool {
	switch r.Kind {
	case KindMovement:
		return r.Distance <= l.Movement
	case KindAction:
		return l.Actions >= 1
	case KindBonusAction:
		return l.BonusActions >= 1
	case KindReaction:
		return l.Reactions >= 1
	case KindLegendaryAction:
		return l.LegendaryActions >= 1
	case KindSpellSlot:
		return l.SpellSlots.Slots(r.Level).Current >= 1
	default:
		return false
	}
}

// Consume pays r. Callers must check CanConsume first; paying an
// unaffordable resource panics.
func (l *Ledger) Consume(r Resource) {
	if !l.CanConsume(r) {
		panic(fmt.Sprintf("illegal resource consumption: %s", r))
	}
	switch r.Kind {
	case KindMovement:
		l.Movement -= r.Distance
	case KindAction:
		l.Actions--
	case KindBonusAction:
		l.BonusActions--
	case KindReaction:
		l.Reactions--
	case KindLegendaryAction:
		l.LegendaryActions--
	case KindSpellSlot:
		l.SpellSlots.Consume(r.Level)
	}
}

// Give restores r. Spell slots never exceed their maximum.
func (l *Ledger) Give(r Resource) {
	switch r.Kind {
	case KindMovement:
		l.Movement += r.Distance
	case KindAction:
		l.Actions++
	case KindBonusAction:
		l.BonusActions++
	case KindReaction:
		l.Reactions++
	case KindLegendaryAction:
		l.LegendaryActions++
	case KindSpellSlot:
		l.SpellSlots.Restore(r.Level, 1)
	}
}

// ResetForNewRound restores movement to speed and refills the per-round
// slots. Legendary actions are left alone.
func (l *Ledger) ResetForNewRound(speed float64) {
	l.Movement = speed
	l.Actions = ActionsPerRound
	l.BonusActions = BonusActionsPerRound
	l.Reactions = ReactionsPerRound
}
