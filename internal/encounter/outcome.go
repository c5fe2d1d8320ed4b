package encounter

// outcomes hands out ids to the entries of one batch and remembers which
// of them succeeded. It is cleared every time the stack drains.
type outcomes struct {
	next    int
	results map[int]bool
}

func newOutcomes() *outcomes {
	return &outcomes{results: make(map[int]bool)}
}

// Next returns a fresh id for this batch.
func (o *outcomes) Next() int {
	id := o.next
	o.next++
	return id
}

// Record stores whether the entry with id succeeded.
func (o *outcomes) Record(id int, success bool) {
	o.results[id] = success
}

// Succeeded reports whether every id in ids was recorded as successful.
// Ids with no recorded outcome count as failed.
func (o *outcomes) Succeeded(ids []int) bool {
	for _, id := range ids {
		if !o.results[id] {
			return false
		}
	}
	return true
}

// Reset forgets every outcome and restarts id numbering.
func (o *outcomes) Reset() {
	o.next = 0
	clear(o.results)
}
