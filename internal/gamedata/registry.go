package gamedata

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/skirmish/internal/actor"
)

// MaxSpellLevel is the highest spell level a catalog may grant slots for.
const MaxSpellLevel = 9

// CreatureRegistry holds loaded creature definitions and provides spawning utilities.
type CreatureRegistry struct {
	creatures   []CreatureDef
	totalWeight int
}

// NewCreatureRegistry creates a registry from loaded creature definitions.
func NewCreatureRegistry(creatures []CreatureDef) *CreatureRegistry {
	totalWeight := 0
	for _, c := range creatures {
		totalWeight += c.SpawnWeight
	}
	return &CreatureRegistry{
		creatures:   creatures,
		totalWeight: totalWeight,
	}
}

// LoadCreatureRegistry loads and creates a registry from the embedded creatures.yaml.
func LoadCreatureRegistry() (*CreatureRegistry, error) {
	creatures, err := LoadCreatures()
	if err != nil {
		return nil, err
	}
	return newCheckedRegistry(creatures, "creatures.yaml")
}

// LoadCreatureRegistryFile loads a registry from a creature file on disk.
func LoadCreatureRegistryFile(path string) (*CreatureRegistry, error) {
	creatures, err := LoadCreaturesFile(path)
	if err != nil {
		return nil, err
	}
	return newCheckedRegistry(creatures, path)
}

func newCheckedRegistry(creatures []CreatureDef, source string) (*CreatureRegistry, error) {
	if len(creatures) == 0 {
		return nil, fmt.Errorf("no creatures loaded from %s", source)
	}
	for _, c := range creatures {
		// Zero-CR creatures never fill a budget.
		if c.CR <= 0 {
			return nil, fmt.Errorf("creature %q in %s has non-positive CR", c.ID, source)
		}
		for level, qty := range c.SpellSlots {
			if level < 1 || level > MaxSpellLevel || qty < 0 {
				return nil, fmt.Errorf("creature %q in %s has invalid spell slots %d: %d", c.ID, source, level, qty)
			}
		}
		if c.Pact.Slots < 0 || (c.Pact.Slots > 0 && (c.Pact.Level < 1 || c.Pact.Level > MaxSpellLevel)) {
			return nil, fmt.Errorf("creature %q in %s has invalid pact slots", c.ID, source)
		}
	}
	return NewCreatureRegistry(creatures), nil
}

// SpawnRandom selects a random creature definition using weighted probability.
// Creatures with higher spawn_weight are more likely to be selected.
func (r *CreatureRegistry) SpawnRandom(rng *rand.Rand) *CreatureDef {
	if r.totalWeight <= 0 || len(r.creatures) == 0 {
		return nil
	}

	// Pick a random value in the total weight range
	roll := rng.Intn(r.totalWeight)

	// Find which creature this roll corresponds to
	cumulative := 0
	for i := range r.creatures {
		cumulative += r.creatures[i].SpawnWeight
		if roll < cumulative {
			return &r.creatures[i]
		}
	}

	return &r.creatures[0]
}

// Pick returns the template of a weighted random creature, so the registry
// can serve as an encounter's population pool.
func (r *CreatureRegistry) Pick(rng *rand.Rand) (actor.Template, bool) {
	def := r.SpawnRandom(rng)
	if def == nil {
		return actor.Template{}, false
	}
	return def.Template(), true
}

// Count returns the number of creature types in the registry.
func (r *CreatureRegistry) Count() int {
	return len(r.creatures)
}
