package actor

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/skirmish/internal/dice"
	"github.com/samdwyer/skirmish/internal/grid"
)

// Template is the static description actors are instantiated from.
type Template struct {
	ID        string
	Name      string
	AC        int
	HitPoints dice.Expr
	Speed     float64
	Size      grid.Size
	Abilities AbilityScores
	CR        float64
	Actions   []string // Names in the action registry

	Glyph rune
	Color string // Hex, e.g. "#6B8E23"

	SpellSlots map[int]int // Spell level to slot count
	Pact       PactSlots
}

// PactSlots describes a pact slot pool: Slots slots all cast at Level.
type PactSlots struct {
	Level int `yaml:"level"`
	Slots int `yaml:"slots"`
}

// State is one actor taking part in an encounter.
type State struct {
	ID       int
	Name     string
	Template string
	Team     int
	Glyph    rune
	Color    string
	Position grid.Coordinate

	BaseAC        int
	BaseHitPoints int
	HitPoints     int
	BaseSpeed     float64
	Size          grid.Size
	Abilities     AbilityScores
	CR            float64

	Initiative    int
	HasInitiative bool

	Ledger  Ledger
	Actions []string
}

// New instantiates an actor from a template, rolling its hit points with
// rng. The actor starts with a full round of resources and every spell
// slot the template grants.
func New(id int, tmpl Template, pos grid.Coordinate, team int, instance int, rng *rand.Rand) *State {
	hp := tmpl.HitPoints.Roll(rng).Total
	if hp < 1 {
		hp = 1
	}

	a := &State{
		ID:            id,
		Name:          fmt.Sprintf("%s %d", tmpl.Name, instance),
		Template:      tmpl.ID,
		Team:          team,
		Glyph:         tmpl.Glyph,
		Color:         tmpl.Color,
		Position:      pos,
		BaseAC:        tmpl.AC,
		BaseHitPoints: hp,
		HitPoints:     hp,
		BaseSpeed:     tmpl.Speed,
		Size:          tmpl.Size,
		Abilities:     tmpl.Abilities,
		CR:            tmpl.CR,
		Actions:       append([]string(nil), tmpl.Actions...),
	}
	for level, qty := range tmpl.SpellSlots {
		a.Ledger.SpellSlots.IncreaseMax(level, qty)
	}
	if tmpl.Pact.Slots > 0 {
		a.Ledger.SpellSlots.UpgradePact(tmpl.Pact.Level)
		for range tmpl.Pact.Slots {
			a.Ledger.SpellSlots.IncreasePactMax()
		}
	}
	a.ResetForNewRound()
	return a
}

// ArmorClass returns the current armor class.
func (a *State) ArmorClass() int { return a.BaseAC }

// MaxHitPoints returns the rolled hit point maximum.
func (a *State) MaxHitPoints() int { return a.BaseHitPoints }

// Speed returns the current speed in feet.
func (a *State) Speed() float64 { return a.BaseSpeed }

// Tiles returns the side length of the actor's footprint.
func (a *State) Tiles() int { return a.Size.Tiles() }

// FootprintAt returns the cells the actor would cover anchored at pos.
func (a *State) FootprintAt(pos grid.Coordinate) []grid.Coordinate {
	return grid.Footprint(pos, a.Tiles())
}

// Footprint returns the cells the actor currently covers.
func (a *State) Footprint() []grid.Coordinate {
	return a.FootprintAt(a.Position)
}

// Covers reports whether c is inside the actor's footprint.
func (a *State) Covers(c grid.Coordinate) bool {
	side := a.Tiles()
	return c.X >= a.Position.X && c.X < a.Position.X+side &&
		c.Y >= a.Position.Y && c.Y < a.Position.Y+side
}

// Modifier returns the modifier of one ability score.
func (a *State) Modifier(ab Ability) int {
	return Modifier(a.Abilities.Score(ab))
}

// InitiativeModifier returns the bonus added to initiative rolls.
func (a *State) InitiativeModifier() int {
	return a.Modifier(Dexterity)
}

// RollInitiative rolls 1d6 plus the initiative modifier and stores it.
func (a *State) RollInitiative(rng *rand.Rand) int {
	a.Initiative = dice.D(1, 6).Plus(a.InitiativeModifier()).Roll(rng).Total
	a.HasInitiative = true
	return a.Initiative
}

// CanConsume reports whether the actor can pay r.
func (a *State) CanConsume(r Resource) bool { return a.Ledger.CanConsume(r) }

// Consume pays r, panicking if it cannot be paid.
func (a *State) Consume(r Resource) { a.Ledger.Consume(r) }

// Give restores r.
func (a *State) Give(r Resource) { a.Ledger.Give(r) }

// ResetForNewRound refills movement and per-round slots.
func (a *State) ResetForNewRound() {
	a.Ledger.ResetForNewRound(a.Speed())
}

// AdjustHitPoints changes current hit points by delta, clamped to
// [0, MaxHitPoints], and returns the change actually applied.
func (a *State) AdjustHitPoints(delta int) int {
	next := min(max(a.HitPoints+delta, 0), a.MaxHitPoints())
	applied := next - a.HitPoints
	a.HitPoints = next
	return applied
}
