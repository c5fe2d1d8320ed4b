package ui

import (
	"context"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/actor"
	"github.com/samdwyer/skirmish/internal/dice"
	"github.com/samdwyer/skirmish/internal/encounter"
	"github.com/samdwyer/skirmish/internal/grid"
	"github.com/samdwyer/skirmish/internal/world"
)

func newSimScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap() error: %v", err)
	}
	t.Cleanup(screen.Close)
	return screen, sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		id   int
		want rune
	}{
		{0, 'a'},
		{25, 'z'},
		{26, 'A'},
		{61, '9'},
		{62, 'a'},
	}

	for _, tt := range tests {
		if got := Glyph(tt.id); got != tt.want {
			t.Errorf("Glyph(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestRenderDrawsArenaActorsAndInput(t *testing.T) {
	screen, sim := newSimScreen(t)

	arena := world.NewFilledArena(10, 5, world.CellFloor)
	arena.Set(grid.Pt(9, 4), world.CellWall)
	enc := encounter.New(arena, rand.New(rand.NewSource(1)))
	tmpl := actor.Template{
		ID:        "zombie",
		Name:      "Zombie",
		AC:        8,
		HitPoints: dice.MustParse("2d8+6"),
		Speed:     20,
		Size:      grid.SizeTiny,
		CR:        0.25,
		Actions:   []string{"move", "skip"},
		Glyph:     'z',
		Color:     "#6B8E23",
	}
	if _, err := enc.Instantiate(tmpl, grid.Pt(2, 1), 0); err != nil {
		t.Fatalf("Instantiate() error: %v", err)
	}
	enc.Initialize(context.Background())
	enc.Process(context.Background())

	NewRenderer(screen).Render(enc, "mv 3,1", "unknown action")

	if got := runeAt(sim, 2, 1); got != 'a' {
		t.Errorf("actor cell = %q, want 'a'", got)
	}
	if got := runeAt(sim, 0, 0); got != world.CellFloor.Rune() {
		t.Errorf("floor cell = %q, want %q", got, world.CellFloor.Rune())
	}
	if got := runeAt(sim, 9, 4); got != world.CellWall.Rune() {
		t.Errorf("wall cell = %q, want %q", got, world.CellWall.Rune())
	}

	_, height := screen.Size()
	if got := runeAt(sim, 0, height-1); got != '>' {
		t.Errorf("input line starts with %q, want '>'", got)
	}
	if got := runeAt(sim, 2, height-1); got != 'm' {
		t.Errorf("input text starts with %q, want 'm'", got)
	}
	if got := runeAt(sim, 0, height-2); got != 'u' {
		t.Errorf("status line starts with %q, want 'u'", got)
	}
	if got := runeAt(sim, 12, 0); got != 'T' {
		t.Errorf("sidebar header starts with %q, want 'T'", got)
	}

	// Turn order row: marker, id glyph, creature glyph, name.
	if got := runeAt(sim, 14, 1); got != 'a' {
		t.Errorf("turn order id glyph = %q, want 'a'", got)
	}
	r, _, style, _ := sim.GetContent(15, 1)
	if r != 'z' {
		t.Errorf("turn order creature glyph = %q, want 'z'", r)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.NewRGBColor(0x6B, 0x8E, 0x23) {
		t.Errorf("creature glyph color = %v, want #6B8E23", fg)
	}
	if got := runeAt(sim, 17, 1); got != 'Z' {
		t.Errorf("turn order name starts with %q, want 'Z'", got)
	}
}
