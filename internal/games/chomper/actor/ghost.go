package actor

import (
	"math"
	"math/rand"
)

// Personality selects a ghost's targeting strategy while in pursuit mode.
type Personality int

const (
	Chaser   Personality = iota // heads straight for the player's cell
	Ambusher                    // targets 4 cells ahead of the player
	Fickle                      // reflects a pivot ahead of the player through the chaser
	Pokey                       // chases when far, retreats to its corner when close
)

// String returns the personality's roll-call name.
func (p Personality) String() string {
	switch p {
	case Chaser:
		return "chaser"
	case Ambusher:
		return "ambusher"
	case Fickle:
		return "fickle"
	default:
		return "pokey"
	}
}

// Mode is a ghost's behavioral mode. Modes are checked in strict priority
// order: eaten beats frightened beats pursuit.
type Mode int

const (
	Pursuit Mode = iota
	Frightened
	Eaten
)

const (
	// eatenSpeed is the fixed return-to-base speed, independent of level.
	eatenSpeed = 0.5

	// ambushLead is how many cells ahead of the player the ambusher aims.
	ambushLead = 4

	// ficklePivotLead is how many cells ahead of the player the fickle
	// ghost's reflection pivot sits.
	ficklePivotLead = 2

	// pokeyRange is the Euclidean distance inside which the pokey
	// personality gives up the chase and heads for its corner.
	pokeyRange = 8.0
)

// Targets carries the per-tick targeting inputs shared by all ghosts.
type Targets struct {
	PlayerX, PlayerY float64
	PlayerDir        Direction
	ChaserX, ChaserY float64 // current cell of the chaser ghost, for Fickle
	HomeX, HomeY     int     // ghost house cell eaten ghosts return to
	CornerX, CornerY int     // pokey's scatter corner
}

// Ghost is one of the four adversaries. The personality tag is fixed for the
// ghost's lifetime; position, direction and mode reset between lives and
// levels.
type Ghost struct {
	Mover
	Personality Personality
	Mode        Mode

	spawnX, spawnY int
}

// NewGhost returns a ghost of the given personality at its spawn cell.
func NewGhost(p Personality, spawnX, spawnY int) *Ghost {
	g := &Ghost{Personality: p, spawnX: spawnX, spawnY: spawnY}
	g.Reset()
	return g
}

// Reset returns the ghost to its spawn cell in pursuit mode, facing up.
func (g *Ghost) Reset() {
	g.ResetAt(g.spawnX, g.spawnY)
	g.Dir = DirUp
	g.Mode = Pursuit
}

// Frighten switches the ghost into frightened mode unless it is already
// returning to base.
func (g *Ghost) Frighten() {
	if g.Mode != Eaten {
		g.Mode = Frightened
	}
}

// CalmDown ends frightened mode; eaten ghosts keep heading home.
func (g *Ghost) CalmDown() {
	if g.Mode == Frightened {
		g.Mode = Pursuit
	}
}

// Devour marks a frightened ghost as eaten; it turns into a pair of eyes
// racing back to the ghost house.
func (g *Ghost) Devour() {
	g.Mode = Eaten
}

// Update runs one tick of ghost movement: mode-dependent speed feeds the
// accumulator, and each due grid step picks a direction per the current mode
// before advancing.
func (g *Ghost) Update(f Field, t Targets, ghostSpeed float64, rng *rand.Rand) {
	switch g.Mode {
	case Eaten:
		g.Speed = eatenSpeed
	case Frightened:
		g.Speed = ghostSpeed * 0.5
	default:
		g.Speed = ghostSpeed
	}

	for range g.Steps() {
		switch g.Mode {
		case Eaten:
			if math.Abs(g.X-float64(t.HomeX)) < 1 && math.Abs(g.Y-float64(t.HomeY)) < 1 {
				g.Mode = Pursuit
				g.Speed = ghostSpeed
				continue
			}
			g.Dir = g.homeward(f, t)
		case Frightened:
			g.Dir = g.frightenedDir(f, rng)
		default:
			g.Dir = g.pursuitDir(f, t)
		}
		g.Advance(f)
	}
}

// homeward picks the open direction that minimizes Manhattan distance to the
// ghost house. Reversing is allowed; eyes take the shortest way back.
func (g *Ghost) homeward(f Field, t Targets) Direction {
	best := DirNone
	bestDist := math.MaxInt
	for _, d := range dirOrder {
		dx, dy := d.Delta()
		nx, ny := int(g.X)+dx, int(g.Y)+dy
		if f.IsWall(nx, ny) {
			continue
		}
		dist := abs(nx-t.HomeX) + abs(ny-t.HomeY)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// frightenedDir picks a random open direction, never reversing. If every
// non-reverse direction is blocked the ghost keeps its heading and stalls.
func (g *Ghost) frightenedDir(f Field, rng *rand.Rand) Direction {
	candidates := make([]Direction, 0, 4)
	opposite := g.Dir.Opposite()
	for _, d := range dirOrder {
		if d != opposite {
			candidates = append(candidates, d)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, d := range candidates {
		dx, dy := d.Delta()
		if !f.IsWall(int(g.X)+dx, int(g.Y)+dy) {
			return d
		}
	}
	return g.Dir
}

// pursuitDir picks the open, non-reverse direction whose destination cell
// minimizes squared Euclidean distance to the personality's target point.
// Reversal is allowed only at a dead end. Ties go to the first candidate in
// the fixed up, down, left, right order.
func (g *Ghost) pursuitDir(f Field, t Targets) Direction {
	valid := make([]Direction, 0, 4)
	opposite := g.Dir.Opposite()
	for _, d := range dirOrder {
		if d == opposite {
			continue
		}
		dx, dy := d.Delta()
		if !f.IsWall(int(g.X)+dx, int(g.Y)+dy) {
			valid = append(valid, d)
		}
	}
	if len(valid) == 0 {
		return opposite
	}

	tx, ty := g.target(t)

	best := valid[0]
	bestDist := math.MaxFloat64
	for _, d := range valid {
		dx, dy := d.Delta()
		nx, ny := g.X+float64(dx), g.Y+float64(dy)
		dist := (nx-tx)*(nx-tx) + (ny-ty)*(ny-ty)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// target computes the personality-specific target point for this tick.
func (g *Ghost) target(t Targets) (tx, ty float64) {
	switch g.Personality {
	case Chaser:
		return t.PlayerX, t.PlayerY
	case Ambusher:
		dx, dy := t.PlayerDir.Delta()
		return t.PlayerX + float64(dx*ambushLead), t.PlayerY + float64(dy*ambushLead)
	case Fickle:
		dx, dy := t.PlayerDir.Delta()
		pivotX := t.PlayerX + float64(dx*ficklePivotLead)
		pivotY := t.PlayerY + float64(dy*ficklePivotLead)
		return pivotX + (pivotX - t.ChaserX), pivotY + (pivotY - t.ChaserY)
	default: // Pokey
		dist := math.Hypot(g.X-t.PlayerX, g.Y-t.PlayerY)
		if dist > pokeyRange {
			return t.PlayerX, t.PlayerY
		}
		return float64(t.CornerX), float64(t.CornerY)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
