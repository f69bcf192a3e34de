package actor

// Field is the part of the maze an actor needs for movement decisions.
type Field interface {
	// IsWall reports whether the cell at (x, y) blocks movement.
	// Out-of-bounds coordinates count as wall.
	IsWall(x, y int) bool
}

// Mover carries the shared movement state of any entity: a continuous
// position in grid units, a direction, a per-level speed, and the fractional
// accumulator that converts sub-cell speeds into discrete grid steps.
type Mover struct {
	X, Y  float64 // position in grid units
	Dir   Direction
	Speed float64 // cells per tick

	acc float64
}

// Steps adds the current speed to the accumulator and returns the number of
// whole grid steps now due. Over n ticks at constant speed s this yields
// exactly floor(n*s) steps, however s is fragmented across ticks.
func (m *Mover) Steps() int {
	m.acc += m.Speed
	n := int(m.acc)
	m.acc -= float64(n)
	return n
}

// Cell returns the grid cell the mover currently occupies, truncating toward
// the lower cell index. This is the coordinate used for all wall tests and
// cell consumption.
func (m *Mover) Cell() (x, y int) {
	return int(m.X), int(m.Y)
}

// Advance moves one cell in the current direction if the destination is not
// a wall. A blocked step leaves the position unchanged; that accumulator
// unit is still consumed.
func (m *Mover) Advance(f Field) bool {
	dx, dy := m.Dir.Delta()
	nx, ny := int(m.X)+dx, int(m.Y)+dy
	if f.IsWall(nx, ny) {
		return false
	}
	m.X += float64(dx)
	m.Y += float64(dy)
	return true
}

// ResetAt places the mover at the given cell with no direction and an empty
// accumulator.
func (m *Mover) ResetAt(x, y int) {
	m.X = float64(x)
	m.Y = float64(y)
	m.Dir = DirNone
	m.acc = 0
}
