// Package world provides the arena terrain and its generator.
package world

// Cell is one terrain cell of the arena.
type Cell uint8

const (
	// CellEmpty is outside the arena and cannot be entered.
	CellEmpty Cell = iota
	// CellFloor is passable ground.
	CellFloor
	// CellWall is an impassable wall.
	CellWall
)

// IsPassable returns true if the cell can be walked on.
func (c Cell) IsPassable() bool {
	return c == CellFloor
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	switch c {
	case CellFloor:
		return '░'
	case CellWall:
		return '█'
	default:
		return ' '
	}
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellFloor:
		return "floor"
	case CellWall:
		return "wall"
	default:
		return "unknown"
	}
}
