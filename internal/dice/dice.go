// Package dice parses and rolls tabletop dice expressions such as "2d8+6".
package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidExpression is returned for malformed dice expressions.
var ErrInvalidExpression = errors.New("invalid dice expression")

// MaxCount bounds the number of dice in one expression.
const MaxCount = 100

var exprRegex = regexp.MustCompile(`(?i)^(\d*)d(\d+)([+-]\d+)?$`)

// Expr is a parsed NdS+M expression. A zero Count means a flat value.
type Expr struct {
	Count    int
	Sides    int
	Modifier int
	raw      string
}

// Result is the outcome of rolling an Expr.
type Result struct {
	Total    int
	Rolls    []int
	Modifier int
}

// D returns the expression for n dice with the given number of sides.
func D(n, sides int) Expr {
	return Expr{Count: n, Sides: sides, raw: fmt.Sprintf("%dd%d", n, sides)}
}

// Parse reads "NdS", "NdS+M", "dS" or a plain integer.
func Parse(s string) (Expr, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if raw == "" {
		return Expr{}, fmt.Errorf("%w: empty", ErrInvalidExpression)
	}

	if flat, err := strconv.Atoi(raw); err == nil {
		return Expr{Modifier: flat, raw: raw}, nil
	}

	m := exprRegex.FindStringSubmatch(raw)
	if m == nil {
		return Expr{}, fmt.Errorf("%w: %q", ErrInvalidExpression, s)
	}

	count := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Expr{}, fmt.Errorf("%w: %q: %w", ErrInvalidExpression, s, err)
		}
		count = n
	}
	if count > MaxCount {
		return Expr{}, fmt.Errorf("%w: %q rolls more than %d dice", ErrInvalidExpression, s, MaxCount)
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return Expr{}, fmt.Errorf("%w: %q: %w", ErrInvalidExpression, s, err)
	}
	if sides <= 0 {
		return Expr{}, fmt.Errorf("%w: %q has no sides", ErrInvalidExpression, s)
	}
	mod := 0
	if m[3] != "" {
		if mod, err = strconv.Atoi(m[3]); err != nil {
			return Expr{}, fmt.Errorf("%w: %q: %w", ErrInvalidExpression, s, err)
		}
	}

	return Expr{Count: count, Sides: sides, Modifier: mod, raw: raw}, nil
}

// MustParse is like Parse but panics on error. Use it for literals.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// Plus returns a copy of e with extra added to its modifier.
func (e Expr) Plus(extra int) Expr {
	e.Modifier += extra
	e.raw = ""
	return e
}

// Roll evaluates the expression using rng.
func (e Expr) Roll(rng *rand.Rand) Result {
	res := Result{Modifier: e.Modifier, Total: e.Modifier}
	for i := 0; i < e.Count; i++ {
		v := rng.Intn(e.Sides) + 1
		res.Rolls = append(res.Rolls, v)
		res.Total += v
	}
	return res
}

// String returns the expression in NdS+M form.
func (e Expr) String() string {
	if e.raw != "" {
		return e.raw
	}
	if e.Count == 0 {
		return strconv.Itoa(e.Modifier)
	}
	if e.Modifier == 0 {
		return fmt.Sprintf("%dd%d", e.Count, e.Sides)
	}
	return fmt.Sprintf("%dd%d%+d", e.Count, e.Sides, e.Modifier)
}

// UnmarshalText lets expressions be written as strings in data files.
func (e *Expr) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
