package actor

// Player is the player-controlled entity. Direction changes are queued: the
// requested direction takes effect at the first grid step where the turn is
// not blocked by a wall.
type Player struct {
	Mover
	NextDir Direction
}

// NewPlayer returns a player at the given spawn cell.
func NewPlayer(spawnX, spawnY int) *Player {
	p := &Player{}
	p.ResetAt(spawnX, spawnY)
	return p
}

// Queue records the requested direction for the next grid step.
func (p *Player) Queue(d Direction) {
	if d != DirNone {
		p.NextDir = d
	}
}

// Update runs the movement controller for one tick: each due grid step first
// tries to switch to the queued direction, then advances if the resulting
// direction is open. Returns the number of cells actually traversed.
func (p *Player) Update(f Field) int {
	moved := 0
	for range p.Steps() {
		if p.NextDir != DirNone {
			dx, dy := p.NextDir.Delta()
			if !f.IsWall(int(p.X)+dx, int(p.Y)+dy) {
				p.Dir = p.NextDir
			}
		}
		if p.Advance(f) {
			moved++
		}
	}
	return moved
}

// Reset places the player back at spawn facing nowhere, clearing the queued
// direction and accumulator.
func (p *Player) Reset(spawnX, spawnY int) {
	p.ResetAt(spawnX, spawnY)
	p.NextDir = DirNone
}
