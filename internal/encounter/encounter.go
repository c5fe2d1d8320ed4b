// Package encounter runs one combat on a fixed arena: it owns the actors,
// the occupancy map, the initiative rotation and the resolution stack that
// turns submitted actions into applied effects.
package encounter

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/skirmish/internal/actor"
	"github.com/samdwyer/skirmish/internal/combat"
	"github.com/samdwyer/skirmish/internal/grid"
	"github.com/samdwyer/skirmish/internal/initiative"
	"github.com/samdwyer/skirmish/internal/telemetry"
	"github.com/samdwyer/skirmish/internal/world"
)

var (
	// ErrNoLegalPosition means no cell can hold the requested footprint.
	ErrNoLegalPosition = errors.New("no legal position")
	// ErrUnknownTemplateAction means a template names an action the
	// registry does not have.
	ErrUnknownTemplateAction = errors.New("template uses unknown action")
)

// noActor marks an empty cell in the occupancy map.
const noActor = -1

// Encounter is a single combat session. It is not safe for concurrent use.
type Encounter struct {
	id       uuid.UUID
	arena    *world.Arena
	rng      *rand.Rand
	logger   *zap.Logger
	registry *combat.Registry
	hooks    Hooks

	occupancy []int
	roster    []*actor.State
	instances map[string]int

	tracker     *initiative.Tracker
	initialized bool

	stack    []Entry
	queue    []Entry
	outcomes *outcomes

	messages []string
}

// Option configures an Encounter.
type Option func(*Encounter)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Encounter) { e.logger = logger }
}

// WithRegistry sets the registry actor action names resolve against.
func WithRegistry(r *combat.Registry) Option {
	return func(e *Encounter) { e.registry = r }
}

// WithHooks installs resolution hooks.
func WithHooks(h Hooks) Option {
	return func(e *Encounter) { e.hooks = h }
}

// New creates an empty, uninitialized encounter on arena. All randomness
// is drawn from rng.
func New(arena *world.Arena, rng *rand.Rand, opts ...Option) *Encounter {
	e := &Encounter{
		id:        uuid.New(),
		arena:     arena,
		rng:       rng,
		logger:    zap.NewNop(),
		registry:  combat.DefaultRegistry(),
		occupancy: make([]int, arena.Width*arena.Height),
		instances: make(map[string]int),
		tracker:   initiative.NewTracker(),
		outcomes:  newOutcomes(),
	}
	for i := range e.occupancy {
		e.occupancy[i] = noActor
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(zap.String("encounter.id", e.id.String()))
	return e
}

// ID returns the encounter's unique id.
func (e *Encounter) ID() uuid.UUID { return e.id }

// Arena returns the terrain.
func (e *Encounter) Arena() *world.Arena { return e.arena }

// Registry returns the action registry.
func (e *Encounter) Registry() *combat.Registry { return e.registry }

// Messages returns the human-readable log, oldest first.
func (e *Encounter) Messages() []string { return e.messages }

// Initialized reports whether Initialize has been called.
func (e *Encounter) Initialized() bool { return e.initialized }

// Initiative returns the turn rotation in order.
func (e *Encounter) Initiative() []initiative.Entry { return e.tracker.Entries() }

// CurrentActor returns the actor whose turn it is.
func (e *Encounter) CurrentActor() (int, bool) { return e.tracker.Current() }

// Actors returns the roster, indexed by actor id.
func (e *Encounter) Actors() []*actor.State { return e.roster }

// HasActor reports whether id is on the roster.
func (e *Encounter) HasActor(id int) bool {
	return id >= 0 && id < len(e.roster)
}

// Actor returns the actor with the given id. Unknown ids are a programming
// error and panic.
func (e *Encounter) Actor(id int) *actor.State {
	if !e.HasActor(id) {
		e.logger.Panic("unknown actor id", zap.Int("actor.id", id))
	}
	return e.roster[id]
}

// ActorAt returns the id of the actor covering c.
func (e *Encounter) ActorAt(c grid.Coordinate) (int, bool) {
	if !e.arena.InBounds(c) {
		return 0, false
	}
	id := e.occupancy[e.arena.Index(c)]
	return id, id != noActor
}

// CanMoveTo reports whether the actor's footprint fits at dest: every cell
// in bounds, floor, and either free or already the actor's own.
func (e *Encounter) CanMoveTo(actorID int, dest grid.Coordinate) bool {
	a := e.Actor(actorID)
	for _, c := range a.FootprintAt(dest) {
		if !e.arena.InBounds(c) || e.arena.At(c) != world.CellFloor {
			return false
		}
		if occ := e.occupancy[e.arena.Index(c)]; occ != noActor && occ != actorID {
			return false
		}
	}
	return true
}

// spawnable reports whether a new actor could cover c.
func (e *Encounter) spawnable(c grid.Coordinate) bool {
	return e.arena.InBounds(c) &&
		e.arena.At(c) == world.CellFloor &&
		e.occupancy[e.arena.Index(c)] == noActor
}

func (e *Encounter) fits(anchor grid.Coordinate, side int) bool {
	for _, c := range grid.Footprint(anchor, side) {
		if !e.spawnable(c) {
			return false
		}
	}
	return true
}

// RandomSpawn returns a random anchor where a creature of the given size
// fits on free floor.
func (e *Encounter) RandomSpawn(size grid.Size) (grid.Coordinate, error) {
	coords := make([]grid.Coordinate, 0, e.arena.Width*e.arena.Height)
	for x := 0; x < e.arena.Width; x++ {
		for y := 0; y < e.arena.Height; y++ {
			coords = append(coords, grid.Pt(x, y))
		}
	}
	e.rng.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})

	side := size.Tiles()
	for _, c := range coords {
		if e.fits(c, side) {
			return c, nil
		}
	}
	return grid.Coordinate{}, fmt.Errorf("%w for %s creature", ErrNoLegalPosition, size)
}

// Instantiate creates an actor from tmpl at pos on team and returns its id.
// Hit points are rolled here. An actor added after Initialize rolls
// initiative and joins the rotation immediately.
func (e *Encounter) Instantiate(tmpl actor.Template, pos grid.Coordinate, team int) (int, error) {
	if _, err := e.registry.GetMultiple(tmpl.Actions); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrUnknownTemplateAction, tmpl.ID, err)
	}
	if !e.fits(pos, tmpl.Size.Tiles()) {
		return 0, fmt.Errorf("%w: %s at %s", ErrNoLegalPosition, tmpl.ID, pos)
	}

	id := len(e.roster)
	e.instances[tmpl.ID]++
	a := actor.New(id, tmpl, pos, team, e.instances[tmpl.ID], e.rng)
	e.roster = append(e.roster, a)
	e.occupy(a)

	if e.initialized {
		e.tracker.Add(id, a.RollInitiative(e.rng))
	}

	e.logger.Debug("actor instantiated",
		zap.Int("actor.id", id),
		zap.String("actor.name", a.Name),
		zap.Int("actor.team", team),
		zap.Stringer("actor.position", pos),
		zap.Int("actor.hp", a.HitPoints),
	)
	return id, nil
}

// Initialize rolls initiative for every actor and starts the rotation. It
// may be called once.
func (e *Encounter) Initialize(ctx context.Context) {
	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.initialize")
	defer span.End()

	if e.initialized {
		e.logger.Panic("encounter initialized twice")
	}

	entries := make([]initiative.Entry, 0, len(e.roster))
	for _, a := range e.roster {
		entries = append(entries, initiative.Entry{ActorID: a.ID, Score: a.RollInitiative(e.rng)})
	}
	e.tracker.Initialize(entries)
	e.initialized = true

	span.SetAttributes(
		attribute.String("encounter.id", e.id.String()),
		attribute.Int("encounter.actor_count", len(e.roster)),
	)
	e.logger.Info("encounter initialized", zap.Int("actors", len(e.roster)))
}

// occupy marks the actor's footprint at its current position.
func (e *Encounter) occupy(a *actor.State) {
	for _, c := range a.Footprint() {
		e.occupancy[e.arena.Index(c)] = a.ID
	}
}

// vacate clears the actor's footprint at its current position.
func (e *Encounter) vacate(a *actor.State) {
	for _, c := range a.Footprint() {
		if idx := e.arena.Index(c); e.occupancy[idx] == a.ID {
			e.occupancy[idx] = noActor
		}
	}
}

func (e *Encounter) addMessage(format string, args ...any) {
	e.messages = append(e.messages, fmt.Sprintf(format, args...))
}
