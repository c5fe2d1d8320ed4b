package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/skirmish/internal/grid"
	"github.com/samdwyer/skirmish/internal/telemetry"
)

const (
	// Default arena dimensions
	DefaultWidth       = 64
	DefaultHeight      = 32
	DefaultBranchDepth = 8

	// BSP parameters
	minRoomSize = 8  // Minimum room dimension (fits a few medium creatures)
	maxRoomSize = 15 // Maximum room dimension
	minLeafSize = 10 // Minimum BSP leaf size before stopping split
)

// Arena is the fixed terrain grid of an encounter, stored row-major.
type Arena struct {
	Width  int
	Height int
	Cells  []Cell
	Rooms  []Room

	// BranchDepth caps how many times the BSP generator splits.
	BranchDepth int

	rng *rand.Rand
}

// NewArena creates an arena of empty cells. The generator draws from rng.
func NewArena(width, height int, rng *rand.Rand) *Arena {
	return &Arena{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
		Rooms:  make([]Room, 0),

		BranchDepth: DefaultBranchDepth,
		rng:         rng,
	}
}

// NewFilledArena creates an arena where every cell is the given cell type.
func NewFilledArena(width, height int, cell Cell) *Arena {
	a := NewArena(width, height, nil)
	for i := range a.Cells {
		a.Cells[i] = cell
	}
	return a
}

// Index returns the row-major index of an in-bounds cell.
func (a *Arena) Index(c grid.Coordinate) int {
	return c.X + c.Y*a.Width
}

// InBounds reports whether c is an absolute address inside the arena.
func (a *Arena) InBounds(c grid.Coordinate) bool {
	return c.X >= 0 && c.X < a.Width && c.Y >= 0 && c.Y < a.Height
}

// At returns the cell at c, or CellEmpty when c is out of bounds.
func (a *Arena) At(c grid.Coordinate) Cell {
	if !a.InBounds(c) {
		return CellEmpty
	}
	return a.Cells[a.Index(c)]
}

// Set replaces the cell at c. Out-of-bounds writes are ignored.
func (a *Arena) Set(c grid.Coordinate, cell Cell) {
	if a.InBounds(c) {
		a.Cells[a.Index(c)] = cell
	}
}

// IsPassable returns true if the given position can be walked on.
func (a *Arena) IsPassable(c grid.Coordinate) bool {
	return a.At(c).IsPassable()
}

// Generate lays out rooms with a BSP split, joins them with corridors and
// walls off every empty cell that touches floor.
func (a *Arena) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "arena.generate")
	defer span.End()

	startTime := time.Now()

	// Start BSP with the entire arena as root
	root := &bspNode{
		x:      1,
		y:      1,
		width:  a.Width - 2,
		height: a.Height - 2,
	}

	a.splitNode(root, 0)
	a.createRooms(root)
	a.connectRooms(root)
	a.raiseWalls()

	span.SetAttributes(
		attribute.Int("arena.width", a.Width),
		attribute.Int("arena.height", a.Height),
		attribute.Int("arena.room_count", len(a.Rooms)),
		attribute.Int("arena.branch_depth", a.BranchDepth),
		attribute.Int64("arena.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (a *Arena) splitNode(node *bspNode, depth int) {
	if depth >= a.BranchDepth {
		return
	}
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return
	}

	extent := node.width
	if splitHorizontally {
		extent = node.height
	}
	lo, hi := minLeafSize, extent-minLeafSize
	if hi <= lo {
		return
	}
	splitPos := lo + a.rng.Intn(hi-lo+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	a.splitNode(node.left, depth+1)
	a.splitNode(node.right, depth+1)
}

// createRooms creates rooms in leaf nodes of the BSP tree.
func (a *Arena) createRooms(node *bspNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		a.createRooms(node.left)
		a.createRooms(node.right)
		return
	}

	if node.width < minRoomSize+2 || node.height < minRoomSize+2 {
		return
	}

	roomWidth := minRoomSize + a.rng.Intn(min(maxRoomSize-minRoomSize+1, node.width-minRoomSize+1))
	roomHeight := minRoomSize + a.rng.Intn(min(maxRoomSize-minRoomSize+1, node.height-minRoomSize+1))
	roomWidth = min(roomWidth, node.width-2)
	roomHeight = min(roomHeight, node.height-2)

	room := Room{
		X:      node.x + 1 + a.rng.Intn(node.width-roomWidth-1),
		Y:      node.y + 1 + a.rng.Intn(node.height-roomHeight-1),
		Width:  roomWidth,
		Height: roomHeight,
	}
	node.room = &room
	a.Rooms = append(a.Rooms, room)
	a.carveRoom(room)
}

// carveRoom sets all cells within the room to floor.
func (a *Arena) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			a.carve(x, y)
		}
	}
}

// carve turns an interior cell into floor, leaving the outer ring untouched.
func (a *Arena) carve(x, y int) {
	if x > 0 && x < a.Width-1 && y > 0 && y < a.Height-1 {
		a.Cells[x+y*a.Width] = CellFloor
	}
}

// connectRooms connects sibling subtrees with corridors.
func (a *Arena) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	a.connectRooms(node.left)
	a.connectRooms(node.right)

	leftRoom := a.getRoom(node.left)
	rightRoom := a.getRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		a.carveCorridor(*leftRoom, *rightRoom)
	}
}

// getRoom returns a room from a subtree (any room will do).
func (a *Arena) getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := a.getRoom(node.left); room != nil {
		return room
	}
	return a.getRoom(node.right)
}

// carveCorridor creates a two-cell wide corridor between two rooms so that
// medium creatures can pass.
func (a *Arena) carveCorridor(room1, room2 Room) {
	c1, c2 := room1.Center(), room2.Center()

	if a.rng.Intn(2) == 0 {
		a.carveHorizontalTunnel(c1.X, c2.X, c1.Y)
		a.carveVerticalTunnel(c1.Y, c2.Y, c2.X)
	} else {
		a.carveVerticalTunnel(c1.Y, c2.Y, c1.X)
		a.carveHorizontalTunnel(c1.X, c2.X, c2.Y)
	}
}

func (a *Arena) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2+1; x++ {
		a.carve(x, y)
		a.carve(x, y+1)
	}
}

func (a *Arena) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2+1; y++ {
		a.carve(x, y)
		a.carve(x+1, y)
	}
}

// raiseWalls turns every empty cell adjacent (including diagonally) to a
// floor cell into a wall.
func (a *Arena) raiseWalls() {
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Cells[x+y*a.Width] != CellEmpty {
				continue
			}
			if a.touchesFloor(x, y) {
				a.Cells[x+y*a.Width] = CellWall
			}
		}
	}
}

func (a *Arena) touchesFloor(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if a.At(grid.Pt(x+dx, y+dy)) == CellFloor {
				return true
			}
		}
	}
	return false
}
