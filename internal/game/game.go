package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/skirmish/internal/encounter"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/telemetry"
	"github.com/samdwyer/skirmish/internal/ui"
	"github.com/samdwyer/skirmish/internal/world"
)

// quitCommand ends the game from the command line.
const quitCommand = "quit"

// ErrNotPrompting means a command arrived while the encounter was not
// waiting for one.
var ErrNotPrompting = errors.New("encounter is not waiting for a command")

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	enc      *encounter.Encounter
	logger   *zap.Logger

	input  []rune
	status string
	state  State
}

// Setup generates the arena, populates the teams and rolls initiative.
func Setup(ctx context.Context, cfg Config, logger *zap.Logger) (*encounter.Encounter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.setup")
	defer span.End()

	creatures, err := loadCreatures(cfg)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	logger.Debug("creature catalog loaded", zap.Int("creature_types", creatures.Count()))

	seed := cfg.ResolveSeed()
	rng := rand.New(rand.NewSource(seed))

	arena := world.NewArena(cfg.Width, cfg.Height, rng)
	arena.BranchDepth = cfg.BranchDepth
	arena.Generate(ctx)

	enc := encounter.New(arena, rng, encounter.WithLogger(logger))
	params := encounter.PopulateParams{CRTarget: cfg.CRTarget, Teams: cfg.Teams}
	if err := enc.Populate(ctx, params, creatures); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("populate encounter: %w", err)
	}
	enc.Initialize(ctx)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.String("encounter.id", enc.ID().String()),
		attribute.Int("encounter.actor_count", len(enc.Actors())),
		attribute.Int("game.creature_types", creatures.Count()),
	)
	logger.Info("encounter ready",
		zap.Int64("seed", seed),
		zap.String("encounter.id", enc.ID().String()),
		zap.Int("actors", len(enc.Actors())),
		zap.Int("rooms", len(arena.Rooms)),
	)
	return enc, nil
}

func loadCreatures(cfg Config) (*gamedata.CreatureRegistry, error) {
	if cfg.CreaturesFile != "" {
		return gamedata.LoadCreatureRegistryFile(cfg.CreaturesFile)
	}
	return gamedata.LoadCreatureRegistry()
}

// New creates a new game instance on a fresh terminal screen.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Game, error) {
	enc, err := Setup(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := newGame(cfg, enc, logger)
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	return g, nil
}

func newGame(cfg Config, enc *encounter.Encounter, logger *zap.Logger) *Game {
	return &Game{
		cfg:    cfg,
		enc:    enc,
		logger: logger,
		state:  StateResolving,
	}
}

// Encounter returns the running encounter.
func (g *Game) Encounter() *encounter.Encounter { return g.enc }

// State returns what the loop is doing.
func (g *Game) State() State { return g.state }

// Status returns the last rejection message, if any.
func (g *Game) Status() string { return g.status }

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	for g.state != StateQuit {
		g.tick(ctx)
		g.renderer.Render(g.enc, string(g.input), g.status)
		g.handleInput(ctx)
	}
	return nil
}

// tick lets the encounter resolve until it needs a command.
func (g *Game) tick(ctx context.Context) {
	if g.state == StateQuit {
		return
	}
	g.enc.Process(ctx)
	if _, ok := g.enc.Prompt(); ok {
		g.state = StatePrompting
	} else {
		g.state = StateResolving
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent edits the command line and submits it on Enter.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.state = StateQuit

	case tcell.KeyEnter:
		text := string(g.input)
		g.input = g.input[:0]
		_ = g.Command(ctx, text)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}

	case tcell.KeyRune:
		g.input = append(g.input, ev.Rune())
	}
}

// Command parses text against the pending prompt and submits it. Rejected
// commands leave the prompt in place and set the status line.
func (g *Game) Command(ctx context.Context, text string) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.command")
	defer span.End()

	text = strings.TrimSpace(text)
	span.SetAttributes(attribute.String("game.command", text))

	if text == quitCommand {
		g.state = StateQuit
		return nil
	}

	p, ok := g.enc.Prompt()
	if !ok {
		return g.reject(span, text, ErrNotPrompting)
	}

	inv, err := p.Parse(text, g.enc)
	if err != nil {
		return g.reject(span, text, err)
	}

	g.enc.Submit(inv)
	g.status = ""
	g.state = StateResolving
	span.SetAttributes(
		attribute.Bool("game.command_accepted", true),
		attribute.Int("game.actor_id", inv.Caster),
		attribute.String("game.action", inv.Action.Name()),
	)
	g.logger.Debug("command accepted", zap.String("command", text), zap.Int("actor.id", inv.Caster))
	return nil
}

func (g *Game) reject(span trace.Span, text string, err error) error {
	g.status = err.Error()
	span.SetAttributes(
		attribute.Bool("game.command_accepted", false),
		attribute.String("game.command_error", err.Error()),
	)
	g.logger.Info("command rejected", zap.String("command", text), zap.Error(err))
	return err
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
