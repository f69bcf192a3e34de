// Package maze models the static maze layout plus its mutable per-cell
// contents. The layout topology is immutable across a level; only pellet,
// power pellet and fruit cells mutate to empty as they are consumed. A fresh
// grid is created at the start of every level.
package maze

// Cell is the content code of a single maze cell.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Pellet
	PowerPellet
	Door
	FruitSpot
)

// Grid is the maze: a fixed-size rectangular field of cell codes backed by
// a flat row-major buffer.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New builds a fresh grid from the classic layout with all collectibles
// in place.
func New() *Grid {
	g := &Grid{
		width:  len([]rune(classicLayout[0])),
		height: len(classicLayout),
	}
	g.cells = make([]Cell, g.width*g.height)
	for y, row := range classicLayout {
		for x, ch := range row {
			g.cells[y*g.width+x] = cellForRune(ch)
		}
	}
	return g
}

func cellForRune(ch rune) Cell {
	switch ch {
	case '#':
		return Wall
	case '.':
		return Pellet
	case 'o':
		return PowerPellet
	case '-':
		return Door
	case '%':
		return FruitSpot
	default:
		return Empty
	}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// CellAt returns the content of the cell at (x, y).
// Out-of-bounds coordinates read as Wall.
func (g *Grid) CellAt(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// IsWall reports whether the cell at (x, y) blocks movement.
// Out-of-bounds counts as wall.
func (g *Grid) IsWall(x, y int) bool {
	return g.CellAt(x, y) == Wall
}

// Consume sets the cell at (x, y) to Empty and returns what was there.
// Walls and out-of-bounds cells are left untouched.
func (g *Grid) Consume(x, y int) Cell {
	prev := g.CellAt(x, y)
	if prev == Wall {
		return prev
	}
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y*g.width+x] = Empty
	}
	return prev
}

// RemainingCollectibles counts the pellet and power pellet cells still on
// the grid. Reaching zero triggers level completion.
func (g *Grid) RemainingCollectibles() int {
	n := 0
	for _, c := range g.cells {
		if c == Pellet || c == PowerPellet {
			n++
		}
	}
	return n
}
