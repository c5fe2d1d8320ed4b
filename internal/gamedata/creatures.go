package gamedata

import (
	"unicode/utf8"

	"github.com/samdwyer/skirmish/internal/actor"
	"github.com/samdwyer/skirmish/internal/dice"
	"github.com/samdwyer/skirmish/internal/grid"
)

// CreatureDef defines a creature type loaded from YAML.
type CreatureDef struct {
	ID          string              `yaml:"id"`           // Unique identifier (e.g., "zombie")
	Name        string              `yaml:"name"`         // Display name (e.g., "Zombie")
	Glyph       string              `yaml:"glyph"`        // Single character for rendering (e.g., "z")
	Color       string              `yaml:"color"`        // Hex color code (e.g., "#6B8E23")
	AC          int                 `yaml:"ac"`           // Armor class
	HitPoints   dice.Expr           `yaml:"hit_points"`   // Hit point dice (e.g., "2d8+6")
	Speed       float64             `yaml:"speed"`        // Walking speed in feet
	Size        grid.Size           `yaml:"size"`         // Size class name (e.g., "medium")
	Abilities   actor.AbilityScores `yaml:"abilities"`    // The six ability scores
	CR          float64             `yaml:"cr"`           // Challenge rating
	SpawnWeight int                 `yaml:"spawn_weight"` // Relative spawn frequency (higher = more common)
	Actions     []string            `yaml:"actions"`      // Action names from the combat registry
	SpellSlots  map[int]int         `yaml:"spell_slots"`  // Spell level to slot count
	Pact        actor.PactSlots     `yaml:"pact"`         // Pact slot pool, if any
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *CreatureDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// Template converts the definition into the template actors are
// instantiated from.
func (c *CreatureDef) Template() actor.Template {
	return actor.Template{
		ID:         c.ID,
		Name:       c.Name,
		AC:         c.AC,
		HitPoints:  c.HitPoints,
		Speed:      c.Speed,
		Size:       c.Size,
		Abilities:  c.Abilities,
		CR:         c.CR,
		Actions:    append([]string(nil), c.Actions...),
		Glyph:      c.GlyphRune(),
		Color:      c.Color,
		SpellSlots: c.SpellSlots,
		Pact:       c.Pact,
	}
}

// CreaturesFile represents the structure of creatures.yaml.
type CreaturesFile struct {
	Creatures []CreatureDef `yaml:"creatures"`
}

// LoadCreatures loads creature definitions from the embedded creatures.yaml file.
func LoadCreatures() ([]CreatureDef, error) {
	file, err := Load[CreaturesFile]("creatures.yaml")
	if err != nil {
		return nil, err
	}
	return file.Creatures, nil
}

// LoadCreaturesFile loads creature definitions from a YAML file on disk.
func LoadCreaturesFile(path string) ([]CreatureDef, error) {
	file, err := LoadFile[CreaturesFile](path)
	if err != nil {
		return nil, err
	}
	return file.Creatures, nil
}
