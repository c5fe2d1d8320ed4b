package encounter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samdwyer/skirmish/internal/combat"
	"github.com/samdwyer/skirmish/internal/grid"
)

var (
	// ErrEmptyCommand means the command had no words.
	ErrEmptyCommand = errors.New("empty command")
	// ErrUnknownAction means the first word names none of the prompt's actions.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidArguments means the parsed invocation failed validation.
	ErrInvalidArguments = errors.New("invalid arguments")
)

var (
	absolutePattern = regexp.MustCompile(`^(\d+),(\d+)$`)
	relativePattern = regexp.MustCompile(`^(r|l)(\d+),?(u|d)(\d+)$`)
	targetPattern   = regexp.MustCompile(`^@(\d+)$`)
)

// Prompt is the engine waiting for one actor's command.
type Prompt struct {
	ActorID int
	Actions []combat.Action
}

// Parse turns a command such as "mv 5,3", "mv r3u2" or "slm @4" into a
// validated invocation for the prompted actor. The first word must be an
// action name or alias. Later words are absolute coordinates, coordinates
// relative to the actor, or @id actor targets; anything else is ignored.
func (p *Prompt) Parse(text string, s combat.State) (combat.Invocation, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return combat.Invocation{}, ErrEmptyCommand
	}

	var action combat.Action
	for _, a := range p.Actions {
		if combat.Matches(a, words[0]) {
			action = a
			break
		}
	}
	if action == nil {
		return combat.Invocation{}, fmt.Errorf("%w: %q", ErrUnknownAction, words[0])
	}

	inv := combat.Invocation{Action: action, Caster: p.ActorID}
	origin := s.Actor(p.ActorID).Position
	for _, word := range words[1:] {
		if c, ok := parseAbsolute(word); ok {
			inv.Locations = append(inv.Locations, c)
		} else if c, ok := parseRelative(word); ok {
			inv.Locations = append(inv.Locations, origin.Add(c))
		} else if id, ok := parseTarget(word); ok {
			inv.Targets = append(inv.Targets, id)
		}
	}

	if err := combat.Validate(s, inv); err != nil {
		return combat.Invocation{}, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	return inv, nil
}

// ActionNames lists the canonical names of the prompt's actions.
func (p *Prompt) ActionNames() []string {
	names := make([]string, len(p.Actions))
	for i, a := range p.Actions {
		names[i] = a.Name()
	}
	return names
}

func parseAbsolute(word string) (grid.Coordinate, bool) {
	m := absolutePattern.FindStringSubmatch(word)
	if m == nil {
		return grid.Coordinate{}, false
	}
	x, errX := strconv.Atoi(m[1])
	y, errY := strconv.Atoi(m[2])
	if errX != nil || errY != nil {
		return grid.Coordinate{}, false
	}
	return grid.Pt(x, y), true
}

func parseRelative(word string) (grid.Coordinate, bool) {
	m := relativePattern.FindStringSubmatch(word)
	if m == nil {
		return grid.Coordinate{}, false
	}
	dx, errX := strconv.Atoi(m[2])
	dy, errY := strconv.Atoi(m[4])
	if errX != nil || errY != nil {
		return grid.Coordinate{}, false
	}
	if m[1] == "l" {
		dx = -dx
	}
	if m[3] == "d" {
		dy = -dy
	}
	return grid.Pt(dx, dy), true
}

func parseTarget(word string) (int, bool) {
	m := targetPattern.FindStringSubmatch(word)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}
