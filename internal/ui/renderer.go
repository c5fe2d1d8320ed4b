package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/skirmish/internal/actor"
	"github.com/samdwyer/skirmish/internal/encounter"
	"github.com/samdwyer/skirmish/internal/gamedata"
	"github.com/samdwyer/skirmish/internal/grid"
	"github.com/samdwyer/skirmish/internal/world"
)

const glyphs = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Glyph returns the map character for an actor id.
func Glyph(actorID int) rune {
	return rune(glyphs[actorID%len(glyphs)])
}

// creatureGlyph returns the catalog glyph of the actor's creature type.
func creatureGlyph(a *actor.State) rune {
	if a.Glyph == 0 {
		return '?'
	}
	return a.Glyph
}

// Renderer handles drawing the encounter to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the arena, the turn order, the prompted actor's actions, the
// message log and the command line.
func (r *Renderer) Render(enc *encounter.Encounter, input, status string) {
	r.screen.Clear()

	arena := enc.Arena()
	current, _ := enc.CurrentActor()

	for y := 0; y < arena.Height; y++ {
		for x := 0; x < arena.Width; x++ {
			c := grid.Pt(x, y)
			if id, ok := enc.ActorAt(c); ok {
				a := enc.Actor(id)
				style := tcell.StyleDefault.
					Foreground(tcell.ColorWhite).
					Background(gamedata.TeamColor(a.Team)).
					Bold(id == current)
				r.screen.SetContent(x, y, Glyph(id), style)
				continue
			}
			cell := arena.At(c)
			r.screen.SetContent(x, y, cell.Rune(), r.getCellStyle(cell))
		}
	}

	r.renderSidebar(enc, arena.Width+2)
	r.renderLog(enc, arena.Height+1)

	_, height := r.screen.Size()
	if status != "" {
		r.RenderMessage(status, height-2, tcell.ColorRed)
	}
	r.RenderMessage("> "+input, height-1, tcell.ColorWhite)

	r.screen.Show()
}

func (r *Renderer) renderSidebar(enc *encounter.Encounter, x int) {
	header := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	y := 0
	r.screen.DrawText(x, y, "Turn order", header)
	y++

	current, _ := enc.CurrentActor()
	for _, entry := range enc.Initiative() {
		a := enc.Actor(entry.ActorID)
		marker := "  "
		if entry.ActorID == current {
			marker = "> "
		}
		col := r.screen.DrawText(x, y, marker, plain)
		r.screen.SetContent(col, y, Glyph(a.ID), tcell.StyleDefault.
			Foreground(tcell.ColorWhite).
			Background(gamedata.TeamColor(a.Team)))
		r.screen.SetContent(col+1, y, creatureGlyph(a), tcell.StyleDefault.
			Foreground(gamedata.ColorOr(a.Color, tcell.ColorWhite)))
		r.screen.DrawText(col+3, y, fmt.Sprintf("%-12s @%-2d %2d/%-2d hp  init %d",
			a.Name, a.ID, a.HitPoints, a.MaxHitPoints(), entry.Score), plain)
		y++
	}

	p, ok := enc.Prompt()
	if !ok {
		return
	}
	a := enc.Actor(p.ActorID)

	y++
	r.screen.DrawText(x, y, "Actions: "+a.Name, header)
	y++
	for _, action := range p.Actions {
		name := action.Name()
		if aliases := action.Aliases(); len(aliases) > 0 {
			name += " (" + strings.Join(aliases, ", ") + ")"
		}
		r.screen.DrawText(x, y, "  "+name, plain)
		y++
	}

	y++
	ledger := a.Ledger
	r.screen.DrawText(x, y, fmt.Sprintf("move %.1fft  action %d  bonus %d  reaction %d",
		ledger.Movement, ledger.Actions, ledger.BonusActions, ledger.Reactions), plain)
	y++
	r.screen.DrawText(x, y, fmt.Sprintf("at %s", a.Position), plain)
}

func (r *Renderer) renderLog(enc *encounter.Encounter, top int) {
	_, height := r.screen.Size()
	rows := height - top - 2
	if rows <= 0 {
		return
	}

	messages := enc.Messages()
	if len(messages) > rows {
		messages = messages[len(messages)-rows:]
	}
	for i, msg := range messages {
		r.RenderMessage(msg, top+i, tcell.ColorGray)
	}
}

// getCellStyle returns the appropriate style for a cell type.
func (r *Renderer) getCellStyle(cell world.Cell) tcell.Style {
	switch cell {
	case world.CellWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.CellFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a line of text at row y.
func (r *Renderer) RenderMessage(msg string, y int, color tcell.Color) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(color))
}
