package actor

import "testing"

func TestLedgerCanConsume(t *testing.T) {
	l := Ledger{Movement: 10, Actions: 1}
	l.SpellSlots.IncreaseMax(2, 1)

	tests := []struct {
		r        Resource
		expected bool
	}{
		{Movement(10), true},
		{Movement(10.5), false},
		{Action, true},
		{BonusAction, false},
		{Reaction, false},
		{LegendaryAction, false},
		{SpellSlot(2), true},
		{SpellSlot(1), false},
		{SpellSlot(3), false},
	}

	for _, tt := range tests {
		if got := l.CanConsume(tt.r); got != tt.expected {
			t.Errorf("CanConsume(%s) = %v, want %v", tt.r, got, tt.expected)
		}
	}
}

func TestLedgerConsumeNeverNegative(t *testing.T) {
	resources := []Resource{Movement(7.5), Action, BonusAction, Reaction, LegendaryAction, SpellSlot(1)}

	l := Ledger{Movement: 20, Actions: 1, BonusActions: 1, Reactions: 1, LegendaryActions: 2}
	l.SpellSlots.IncreaseMax(1, 2)

	for round := 0; round < 4; round++ {
		for _, r := range resources {
			if l.CanConsume(r) {
				l.Consume(r)
			}
		}
	}

	if l.Movement < 0 || l.Actions < 0 || l.BonusActions < 0 || l.Reactions < 0 || l.LegendaryActions < 0 {
		t.Errorf("ledger went negative: %+v", l)
	}
	if got := l.SpellSlots.Slots(1).Current; got != 0 {
		t.Errorf("spell slots remaining = %d, want 0", got)
	}
	if l.Movement != 20-7.5*2 {
		t.Errorf("Movement = %v, want %v", l.Movement, 20-7.5*2)
	}
}

func TestLedgerConsumePanicsWhenInsufficient(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Consume() without a slot should panic")
		}
	}()
	l := Ledger{}
	l.Consume(Action)
}

func TestLedgerGive(t *testing.T) {
	l := Ledger{}
	l.SpellSlots.IncreaseMax(1, 2)
	l.Consume(SpellSlot(1))

	l.Give(SpellSlot(1))
	l.Give(SpellSlot(1))
	if got := l.SpellSlots.Slots(1); got.Current != 2 || got.Max != 2 {
		t.Errorf("Slots(1) = %+v, want clamped at 2/2", got)
	}

	l.Give(Movement(20))
	l.Give(Action)
	l.Give(Action)
	if l.Movement != 20 || l.Actions != 2 {
		t.Errorf("Give() ledger = %+v", l)
	}
}

func TestLedgerResetLeavesLegendaryActions(t *testing.T) {
	l := Ledger{LegendaryActions: 3}
	l.ResetForNewRound(30)
	if l.LegendaryActions != 3 {
		t.Errorf("LegendaryActions = %d, want 3", l.LegendaryActions)
	}
	if l.Movement != 30 {
		t.Errorf("Movement = %v, want 30", l.Movement)
	}
}

func TestSpellSlotsPact(t *testing.T) {
	var s SpellSlots

	if s.ConsumePact() {
		t.Error("ConsumePact() on empty pool should fail")
	}

	s.IncreasePactMax()
	s.IncreasePactMax()
	s.UpgradePact(3)

	if s.PactLevel() != 3 {
		t.Errorf("PactLevel() = %d, want 3", s.PactLevel())
	}
	if !s.ConsumePact() || !s.ConsumePact() || s.ConsumePact() {
		t.Error("expected exactly two pact slots")
	}
	s.RestorePact()
	if got := s.Pact(); got.Current != 2 || got.Max != 2 {
		t.Errorf("Pact() = %+v, want 2/2", got)
	}
}

func TestSpellSlotsRestoreAll(t *testing.T) {
	var s SpellSlots
	s.IncreaseMax(3, 2)
	s.IncreaseMax(0, 5) // ignored

	if got := s.Slots(1); got.Max != 0 {
		t.Errorf("Slots(1) = %+v, want empty padding level", got)
	}
	s.Consume(3)
	s.Consume(3)
	s.RestoreAll()
	if got := s.Slots(3).Current; got != 2 {
		t.Errorf("Slots(3).Current = %d, want 2", got)
	}
}

func TestResourceString(t *testing.T) {
	tests := []struct {
		r        Resource
		expected string
	}{
		{Movement(12.5), "12.5ft of movement"},
		{SpellSlot(2), "level 2 spell slot"},
		{Action, "action"},
		{BonusAction, "bonus_action"},
		{Resource{Kind: Kind(42)}, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.r.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}
