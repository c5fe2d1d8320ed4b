package world

import "github.com/samdwyer/skirmish/internal/grid"

// Room represents a rectangular room in the arena.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// Center returns the center cell of the room.
func (r Room) Center() grid.Coordinate {
	return grid.Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// Contains returns true if the given cell is inside the room.
func (r Room) Contains(c grid.Coordinate) bool {
	return c.X >= r.X && c.X < r.X+r.Width && c.Y >= r.Y && c.Y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
