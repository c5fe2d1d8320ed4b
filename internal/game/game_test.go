package game

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/samdwyer/skirmish/internal/encounter"
)

func testConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"tiny arena", func(c *Config) { c.Width = 2 }, false},
		{"no teams", func(c *Config) { c.Teams = 0 }, false},
		{"zero CR", func(c *Config) { c.CRTarget = 0 }, false},
		{"negative depth", func(c *Config) { c.BranchDepth = -1 }, false},
		{"zero depth", func(c *Config) { c.BranchDepth = 0 }, true},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(&cfg)
		err := cfg.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: Validate() = %v, want nil", tt.name, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Validate() = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
}

func TestResolveSeed(t *testing.T) {
	if got := testConfig(42).ResolveSeed(); got != 42 {
		t.Errorf("ResolveSeed() = %d, want 42", got)
	}
	if got := testConfig(0).ResolveSeed(); got == 0 {
		t.Error("ResolveSeed() with seed 0 should pick a clock seed")
	}
}

func TestSetupReproducibility(t *testing.T) {
	ctx := context.Background()
	enc1, err := Setup(ctx, testConfig(12345), zap.NewNop())
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	enc2, err := Setup(ctx, testConfig(12345), zap.NewNop())
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}

	a1, a2 := enc1.Arena(), enc2.Arena()
	for i := range a1.Cells {
		if a1.Cells[i] != a2.Cells[i] {
			t.Fatalf("arena cell %d differs: %v != %v", i, a1.Cells[i], a2.Cells[i])
		}
	}

	actors1, actors2 := enc1.Actors(), enc2.Actors()
	if len(actors1) != len(actors2) {
		t.Fatalf("actor count differs: %d != %d", len(actors1), len(actors2))
	}
	for i := range actors1 {
		if actors1[i].Name != actors2[i].Name ||
			actors1[i].Position != actors2[i].Position ||
			actors1[i].HitPoints != actors2[i].HitPoints ||
			actors1[i].Initiative != actors2[i].Initiative {
			t.Errorf("actor %d differs: %+v != %+v", i, actors1[i], actors2[i])
		}
	}
}

func TestSetupFillsTeams(t *testing.T) {
	enc, err := Setup(context.Background(), testConfig(7), zap.NewNop())
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}

	cr := map[int]float64{}
	for _, a := range enc.Actors() {
		cr[a.Team] += a.CR
	}
	for team := 0; team < 2; team++ {
		if cr[team] < 1 {
			t.Errorf("team %d CR = %v, want at least 1", team, cr[team])
		}
	}
	if len(enc.Initiative()) != len(enc.Actors()) {
		t.Errorf("Initiative() has %d entries, want %d", len(enc.Initiative()), len(enc.Actors()))
	}
}

func TestSetupErrors(t *testing.T) {
	cfg := testConfig(1)
	cfg.Teams = 0
	if _, err := Setup(context.Background(), cfg, zap.NewNop()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Setup() with no teams = %v, want ErrInvalidConfig", err)
	}

	cfg = testConfig(1)
	cfg.CreaturesFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := Setup(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Error("Setup() with a missing creatures file should fail")
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	enc, err := Setup(context.Background(), testConfig(99), zap.NewNop())
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	return newGame(testConfig(99), enc, zap.NewNop())
}

func TestCommandFlow(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t)

	g.tick(ctx)
	if g.State() != StatePrompting {
		t.Fatalf("State() = %v, want prompting", g.State())
	}
	p, _ := g.Encounter().Prompt()
	first := p.ActorID

	if err := g.Command(ctx, "fly 1,1"); !errors.Is(err, encounter.ErrUnknownAction) {
		t.Errorf("Command(fly) = %v, want ErrUnknownAction", err)
	}
	if g.Status() == "" {
		t.Error("rejected command should set the status line")
	}
	if g.State() != StatePrompting {
		t.Errorf("State() after rejection = %v, want prompting", g.State())
	}

	if err := g.Command(ctx, "  dash  "); err != nil {
		t.Fatalf("Command(dash) error: %v", err)
	}
	if g.Status() != "" {
		t.Errorf("Status() after accepted command = %q, want empty", g.Status())
	}
	if g.State() != StateResolving {
		t.Errorf("State() after accepted command = %v, want resolving", g.State())
	}

	g.tick(ctx)
	a := g.Encounter().Actor(first)
	if a.Ledger.Movement != 2*a.Speed() {
		t.Errorf("movement after dash = %v, want %v", a.Ledger.Movement, 2*a.Speed())
	}

	if err := g.Command(ctx, "skip"); err != nil {
		t.Fatalf("Command(skip) error: %v", err)
	}
	g.tick(ctx)
	p, _ = g.Encounter().Prompt()
	if p.ActorID == first {
		t.Error("skip should pass the turn to the next actor")
	}
}

func TestCommandWithoutPrompt(t *testing.T) {
	g := newTestGame(t)

	if err := g.Command(context.Background(), "skip"); !errors.Is(err, ErrNotPrompting) {
		t.Errorf("Command() before tick = %v, want ErrNotPrompting", err)
	}
}

func TestQuitCommand(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t)
	g.tick(ctx)

	if err := g.Command(ctx, "quit"); err != nil {
		t.Fatalf("Command(quit) error: %v", err)
	}
	if g.State() != StateQuit {
		t.Errorf("State() = %v, want quit", g.State())
	}

	g.tick(ctx)
	if g.State() != StateQuit {
		t.Error("tick should not leave the quit state")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateResolving, "resolving"},
		{StatePrompting, "prompting"},
		{StateQuit, "quit"},
		{State(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
