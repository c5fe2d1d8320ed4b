package encounter

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/skirmish/internal/combat"
	"github.com/samdwyer/skirmish/internal/telemetry"
)

// Process resolves the stack until it is waiting on a command. Staged
// actions are moved onto the stack first, earliest staged deepest. When
// the stack runs dry the outcome ledger is cleared and a prompt for the
// current initiative holder is pushed.
func (e *Encounter) Process(ctx context.Context) {
	if !e.initialized {
		e.logger.Panic("processing an uninitialized encounter")
	}
	if _, waiting := e.Prompt(); waiting {
		return
	}

	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.process")
	defer span.End()

	for _, entry := range e.queue {
		entry.ID = e.outcomes.Next()
		e.push(entry)
	}
	e.queue = e.queue[:0]

	resolved := 0
	for len(e.stack) > 0 {
		if e.top().Kind == EntryPrompt {
			break
		}
		entry := e.pop()
		e.trigger(entry, TriggerExecute)
		e.logger.Debug("resolving entry", zap.Stringer("entry", entry))

		switch entry.Kind {
		case EntryAction:
			e.execute(entry.Invocation)
		case EntryEffect:
			e.resolveEffect(entry)
		}
		resolved++
	}

	if len(e.stack) == 0 {
		e.outcomes.Reset()
		e.pushPrompt()
	}

	p, _ := e.Prompt()
	span.SetAttributes(
		attribute.String("encounter.id", e.id.String()),
		attribute.Int("encounter.entries_resolved", resolved),
		attribute.Int("encounter.prompt_actor", p.ActorID),
	)
}

// Prompt returns the prompt on top of the stack, if the engine is waiting
// for a command.
func (e *Encounter) Prompt() (*Prompt, bool) {
	if len(e.stack) == 0 || e.top().Kind != EntryPrompt {
		return nil, false
	}
	return e.top().Prompt, true
}

// Submit answers the waiting prompt with inv. The invocation is checked
// again when it resolves; submitting one that is illegal by then panics.
// Submitting while no prompt is waiting panics.
func (e *Encounter) Submit(inv combat.Invocation) {
	if _, waiting := e.Prompt(); !waiting {
		e.logger.Panic("submit without a pending prompt")
	}
	e.pop()
	e.push(Entry{Kind: EntryAction, ID: e.outcomes.Next(), Invocation: inv})
}

// Stage queues inv to be moved onto the stack on the next Process.
func (e *Encounter) Stage(inv combat.Invocation) {
	e.queue = append(e.queue, Entry{Kind: EntryAction, Invocation: inv})
}

func (e *Encounter) top() Entry {
	return e.stack[len(e.stack)-1]
}

func (e *Encounter) push(entry Entry) {
	e.stack = append(e.stack, entry)
}

func (e *Encounter) pop() Entry {
	entry := e.top()
	e.stack = e.stack[:len(e.stack)-1]
	return entry
}

func (e *Encounter) trigger(entry Entry, t Trigger) {
	if e.hooks.OnTrigger != nil {
		e.hooks.OnTrigger(entry, t)
	}
}

func (e *Encounter) pushPrompt() {
	id, ok := e.tracker.Current()
	if !ok {
		e.logger.Panic("no actor holds initiative")
	}
	actions, err := e.registry.GetMultiple(e.Actor(id).Actions)
	if err != nil {
		e.logger.Panic("actor has unregistered actions", zap.Int("actor.id", id), zap.Error(err))
	}
	e.push(Entry{
		Kind:   EntryPrompt,
		ID:     e.outcomes.Next(),
		Prompt: &Prompt{ActorID: id, Actions: actions},
	})
}

// execute expands an action into its effects and pushes them one at a
// time, so the last generated effect is applied first.
func (e *Encounter) execute(inv combat.Invocation) {
	steps := e.expand(inv)

	ids := make([]int, len(steps))
	for i := range steps {
		ids[i] = e.outcomes.Next()
	}
	for i, step := range steps {
		var requires []int
		for _, idx := range step.Requires {
			requires = append(requires, ids[idx])
		}
		entry := Entry{Kind: EntryEffect, ID: ids[i], Requires: requires, Effect: step.Effect}
		e.trigger(entry, TriggerEnqueue)
		e.push(entry)
	}
}

// expand runs combat.Execute, logging the invocation before re-panicking
// if it was illegal.
func (e *Encounter) expand(inv combat.Invocation) []combat.Step {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("executing illegal invocation",
				zap.String("action", inv.Action.Name()),
				zap.Int("actor.id", inv.Caster),
				zap.Any("cause", r))
			panic(r)
		}
	}()
	return combat.Execute(e, inv)
}

func (e *Encounter) resolveEffect(entry Entry) {
	if !e.outcomes.Succeeded(entry.Requires) {
		e.logger.Debug("effect skipped", zap.Stringer("entry", entry))
		e.outcomes.Record(entry.ID, false)
		return
	}
	e.outcomes.Record(entry.ID, e.apply(entry.Effect))
}

// apply mutates the encounter and reports whether the effect succeeded.
func (e *Encounter) apply(effect combat.Effect) bool {
	switch eff := effect.(type) {
	case combat.ConsumeResource:
		e.Actor(eff.ActorID).Consume(eff.Resource)
		return true

	case combat.GiveResource:
		a := e.Actor(eff.ActorID)
		a.Give(eff.Resource)
		e.addMessage("%s gains %s", a.Name, eff.Resource)
		return true

	case combat.MoveActor:
		a := e.Actor(eff.ActorID)
		e.vacate(a)
		from := a.Position
		a.Position = eff.Target
		e.occupy(a)
		e.addMessage("%s moves from %s to %s", a.Name, from, eff.Target)
		return true

	case combat.SkipTurn:
		e.tracker.Advance()
		id, _ := e.tracker.Current()
		a := e.Actor(id)
		a.ResetForNewRound()
		e.addMessage("%s's turn", a.Name)
		return true

	case combat.Check:
		a := e.Actor(eff.ActorID)
		res := eff.Roll.Roll(e.rng)
		success := res.Total >= eff.Threshold
		outcome := "fails"
		if success {
			outcome = "succeeds"
		}
		e.addMessage("%s %s: %d vs %d, %s", a.Name, eff.Label, res.Total, eff.Threshold, outcome)
		return success

	case combat.Damage:
		a := e.Actor(eff.ActorID)
		amount := max(eff.Roll.Roll(e.rng).Total, 0)
		dealt := -a.AdjustHitPoints(-amount)
		e.addMessage("%s takes %d damage (%d/%d hp)", a.Name, dealt, a.HitPoints, a.MaxHitPoints())
		return true

	default:
		e.logger.Panic("unknown effect", zap.Stringer("effect", effect))
		return false
	}
}
