package actor

// Ability names one of the six ability scores.
type Ability int

const (
	Strength Ability = iota
	Dexterity
	Constitution
	Intelligence
	Wisdom
	Charisma
)

// String returns the ability's short name.
func (a Ability) String() string {
	switch a {
	case Strength:
		return "STR"
	case Dexterity:
		return "DEX"
	case Constitution:
		return "CON"
	case Intelligence:
		return "INT"
	case Wisdom:
		return "WIS"
	case Charisma:
		return "CHA"
	default:
		return "???"
	}
}

// AbilityScores holds the six ability scores.
type AbilityScores struct {
	Strength     int `yaml:"str"`
	Dexterity    int `yaml:"dex"`
	Constitution int `yaml:"con"`
	Intelligence int `yaml:"int"`
	Wisdom       int `yaml:"wis"`
	Charisma     int `yaml:"cha"`
}

// Score returns the value of one ability.
func (s AbilityScores) Score(a Ability) int {
	switch a {
	case Strength:
		return s.Strength
	case Dexterity:
		return s.Dexterity
	case Constitution:
		return s.Constitution
	case Intelligence:
		return s.Intelligence
	case Wisdom:
		return s.Wisdom
	case Charisma:
		return s.Charisma
	default:
		return 10
	}
}

// Modifier returns floor((score-10)/2).
func Modifier(score int) int {
	m := score - 10
	if m < 0 {
		return (m - 1) / 2
	}
	return m / 2
}
