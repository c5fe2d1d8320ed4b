// Package grid provides integer coordinates and creature footprints on the arena.
package grid

import (
	"fmt"
	"math"
)

// CellSize is the distance covered by one cell, in feet.
const CellSize = 2.5

// Coordinate is an (x, y) pair. It is used both as an absolute arena
// address and as a relative offset; only offsets may be negative.
type Coordinate struct {
	X, Y int
}

// Pt is shorthand for Coordinate{X: x, Y: y}.
func Pt(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns c translated by o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the offset from o to c.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// IsAbsolute reports whether c can be used as an arena address.
func (c Coordinate) IsAbsolute() bool {
	return c.X >= 0 && c.Y >= 0
}

// String returns the "X,Y" form accepted by the command parser.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// TileCenterDistance returns the Euclidean distance between the centres of
// two cells, scaled by CellSize.
func TileCenterDistance(from, to Coordinate) float64 {
	d := to.Sub(from)
	return math.Hypot(float64(d.X), float64(d.Y)) * CellSize
}

// Footprint returns every cell covered by a square block of the given side
// length anchored at its top-left cell.
func Footprint(anchor Coordinate, side int) []Coordinate {
	cells := make([]Coordinate, 0, side*side)
	for dy := 0; dy < side; dy++ {
		for dx := 0; dx < side; dx++ {
			cells = append(cells, Coordinate{X: anchor.X + dx, Y: anchor.Y + dy})
		}
	}
	return cells
}

// Gap returns the number of cells separating two square footprints along
// the axis where they are furthest apart; touching or overlapping squares
// have a gap of 0.
func Gap(a Coordinate, aSide int, b Coordinate, bSide int) int {
	gapX := max(0, b.X-(a.X+aSide), a.X-(b.X+bSide))
	gapY := max(0, b.Y-(a.Y+aSide), a.Y-(b.Y+bSide))
	return max(gapX, gapY)
}
