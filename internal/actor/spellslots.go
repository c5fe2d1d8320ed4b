package actor

// SlotInfo is the maximum and remaining count of one slot pool.
type SlotInfo struct {
	Max     int
	Current int
}

// SpellSlots holds leveled spell slots plus a separate pact pool whose
// slots are all cast at PactLevel.
type SpellSlots struct {
	byLevel   []SlotInfo
	pact      SlotInfo
	pactLevel int
}

// Slots returns the pool for a spell level; unknown levels are empty.
func (s *SpellSlots) Slots(level int) SlotInfo {
	if level < 1 || level > len(s.byLevel) {
		return SlotInfo{}
	}
	return s.byLevel[level-1]
}

// Consume spends one slot of the given level, reporting success.
func (s *SpellSlots) Consume(level int) bool {
	if level < 1 || level > len(s.byLevel) || s.byLevel[level-1].Current == 0 {
		return false
	}
	s.byLevel[level-1].Current--
	return true
}

// Restore gives back qty slots of a level, clamped at the maximum.
func (s *SpellSlots) Restore(level, qty int) {
	if level < 1 || level > len(s.byLevel) || qty <= 0 {
		return
	}
	info := &s.byLevel[level-1]
	info.Current = min(info.Current+qty, info.Max)
}

// RestoreAll refills every leveled pool.
func (s *SpellSlots) RestoreAll() {
	for i := range s.byLevel {
		s.byLevel[i].Current = s.byLevel[i].Max
	}
}

// IncreaseMax grows the pool of a level by qty, filling the new slots.
func (s *SpellSlots) IncreaseMax(level, qty int) {
	if level < 1 {
		return
	}
	for len(s.byLevel) < level {
		s.byLevel = append(s.byLevel, SlotInfo{})
	}
	s.byLevel[level-1].Max += qty
	s.byLevel[level-1].Current += qty
}

// Pact returns the pact slot pool.
func (s *SpellSlots) Pact() SlotInfo {
	return s.pact
}

// PactLevel returns the level pact slots are cast at.
func (s *SpellSlots) PactLevel() int {
	return s.pactLevel
}

// UpgradePact raises the pact slot level.
func (s *SpellSlots) UpgradePact(levels int) {
	s.pactLevel += levels
}

// ConsumePact spends one pact slot, reporting success.
func (s *SpellSlots) ConsumePact() bool {
	if s.pact.Current == 0 {
		return false
	}
	s.pact.Current--
	return true
}

// RestorePact refills the pact pool.
func (s *SpellSlots) RestorePact() {
	s.pact.Current = s.pact.Max
}

// IncreasePactMax adds one pact slot.
func (s *SpellSlots) IncreasePactMax() {
	s.pact.Max++
	s.pact.Current++
}
