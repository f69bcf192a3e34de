package chomper

import "github.com/vovakirdan/tui-chomper/internal/games/chomper/actor"

// GhostSnapshot captures one ghost's observable state.
type GhostSnapshot struct {
	X, Y        float64
	Dir         actor.Direction
	Mode        actor.Mode
	Personality actor.Personality
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Phase       string
	PhaseTicks  int
	Level       int
	Score       int
	HighScore   int
	Lives       int
	DotsEaten   int
	Remaining   int // collectibles left on the board
	PowerTicks  int
	Chain       int
	FruitActive bool
	FruitTicks  int
	PlayerX     float64
	PlayerY     float64
	PlayerDir   actor.Direction
	Ghosts      [4]GhostSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		Phase:       g.phase.String(),
		PhaseTicks:  g.phaseTicks,
		Level:       g.levelNum,
		Score:       g.score,
		HighScore:   g.highScore,
		Lives:       g.lives,
		DotsEaten:   g.dotsEaten,
		Remaining:   g.grid.RemainingCollectibles(),
		PowerTicks:  g.powerTicks,
		Chain:       g.chain,
		FruitActive: g.fruitActive,
		FruitTicks:  g.fruitTicks,
		PlayerX:     g.player.X,
		PlayerY:     g.player.Y,
		PlayerDir:   g.player.Dir,
	}
	for i, gh := range g.ghosts {
		s.Ghosts[i] = GhostSnapshot{
			X:           gh.X,
			Y:           gh.Y,
			Dir:         gh.Dir,
			Mode:        gh.Mode,
			Personality: gh.Personality,
		}
	}
	return s
}
