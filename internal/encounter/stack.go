package encounter

import (
	"fmt"

	"github.com/samdwyer/skirmish/internal/combat"
)

// EntryKind tags what a stack entry holds.
type EntryKind int

const (
	// EntryAction is an invocation waiting to be executed.
	EntryAction EntryKind = iota
	// EntryEffect is a side effect waiting to be applied.
	EntryEffect
	// EntryPrompt marks that the engine is waiting for a command.
	EntryPrompt
)

// String returns the kind name.
func (k EntryKind) String() string {
	switch k {
	case EntryAction:
		return "action"
	case EntryEffect:
		return "effect"
	case EntryPrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// Entry is one element of the resolution stack or staging queue.
type Entry struct {
	Kind EntryKind
	// ID is unique within the current batch.
	ID int
	// Requires lists ids that must have succeeded for an effect to apply.
	Requires   []int
	Invocation combat.Invocation
	Effect     combat.Effect
	Prompt     *Prompt
}

// String describes the entry for logs.
func (e Entry) String() string {
	switch e.Kind {
	case EntryAction:
		return fmt.Sprintf("#%d %s by actor %d", e.ID, e.Invocation.Action.Name(), e.Invocation.Caster)
	case EntryEffect:
		return fmt.Sprintf("#%d %s", e.ID, e.Effect)
	case EntryPrompt:
		return fmt.Sprintf("#%d prompt for actor %d", e.ID, e.Prompt.ActorID)
	default:
		return fmt.Sprintf("#%d ?", e.ID)
	}
}

// Trigger says at which point of resolution a hook sees an entry.
type Trigger int

const (
	// TriggerEnqueue fires when an effect generated by an action is pushed.
	TriggerEnqueue Trigger = iota
	// TriggerExecute fires when an entry is popped for resolution.
	TriggerExecute
)

// Hooks are extension points called during resolution. Nil hooks are
// skipped.
type Hooks struct {
	OnTrigger func(entry Entry, trigger Trigger)
}
