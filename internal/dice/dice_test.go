package dice

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Expr
	}{
		{"2d8+6", Expr{Count: 2, Sides: 8, Modifier: 6}},
		{"1d6", Expr{Count: 1, Sides: 6}},
		{"d20", Expr{Count: 1, Sides: 20}},
		{"3D4-1", Expr{Count: 3, Sides: 4, Modifier: -1}},
		{"7", Expr{Modifier: 7}},
		{"100d4", Expr{Count: 100, Sides: 4}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want.Count, got.Count, tt.input)
		assert.Equal(t, tt.want.Sides, got.Sides, tt.input)
		assert.Equal(t, tt.want.Modifier, got.Modifier, tt.input)
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"", "d0", "2x6", "1d6+", "abc",
		"99999999999999999999d6",
		"1d99999999999999999999",
		"1d6+99999999999999999999",
		"99999999999999999999",
		"101d6",
	}
	for _, input := range inputs {
		_, err := Parse(input)
		assert.True(t, errors.Is(err, ErrInvalidExpression), "Parse(%q) = %v", input, err)
	}
}

func TestRollBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := MustParse("2d8+6")

	for i := 0; i < 200; i++ {
		res := e.Roll(rng)
		require.Len(t, res.Rolls, 2)
		assert.GreaterOrEqual(t, res.Total, 8)
		assert.LessOrEqual(t, res.Total, 22)
		assert.Equal(t, res.Rolls[0]+res.Rolls[1]+6, res.Total)
	}
}

func TestRollReproducible(t *testing.T) {
	e := D(4, 6)
	rng1 := rand.New(rand.NewSource(99))
	rng2 := rand.New(rand.NewSource(99))

	for i := 0; i < 10; i++ {
		assert.Equal(t, e.Roll(rng1), e.Roll(rng2))
	}
}

func TestPlusAndString(t *testing.T) {
	assert.Equal(t, "2d8+6", MustParse("2d8+6").String())
	assert.Equal(t, "1d20+3", D(1, 20).Plus(3).String())
	assert.Equal(t, "1d6-1", D(1, 6).Plus(-1).String())
	assert.Equal(t, "5", MustParse("5").String())
}
