// Package chomper implements the maze-chase arcade game: eat every pellet,
// dodge four ghosts, survive 256 levels.
package chomper

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-chomper/internal/config"
	"github.com/vovakirdan/tui-chomper/internal/core"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper/actor"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper/level"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper/maze"
	"github.com/vovakirdan/tui-chomper/internal/registry"
)

// Phase is the current stage of the game progression machine.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseGhostRoll
	PhaseReady
	PhasePlaying
	PhaseDying
	PhaseLevelComplete
	PhaseGameOver
	PhaseKillScreen
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseGhostRoll:
		return "ghost_roll"
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	case PhaseKillScreen:
		return "kill_screen"
	default:
		return "unknown"
	}
}

// Phase durations in ticks (60 ticks per second). The ghost roll has no
// duration: it waits for the advance key.
const (
	introTicks         = 200
	readyTicks         = 120
	dyingTicks         = 120
	levelCompleteTicks = 180
	gameOverTicks      = 300
)

// Scoring parameters.
const (
	pelletPoints   = 10
	powerPoints    = 50
	baseChain      = 200
	extraLifeEvery = 10000
)

// Fruit activation thresholds (dots eaten in the current level) and how long
// an activated fruit stays up.
const (
	fruitThresholdA = 70
	fruitThresholdB = 170
	fruitTicksLimit = 600
)

// collisionRadius is the per-axis distance under which a ghost and the
// player occupy the same spot.
const collisionRadius = 0.5

// Game implements the chomper game.
type Game struct {
	rng *rand.Rand

	grid   *maze.Grid
	player *actor.Player
	ghosts [4]*actor.Ghost

	phase      Phase
	phaseTicks int
	tick       uint64

	score     int
	highScore int
	lives     int
	levelNum  int
	dotsEaten int

	powerTicks  int
	chain       int
	fruitActive bool
	fruitTicks  int

	chompAlt bool
	paused   bool

	startLevel int
	startLives int

	// Screen dimensions
	screenW int
	screenH int

	events []core.Event
}

// Package-level variables for config/difficulty (set by the CLI before the
// platform calls Reset).
var (
	configPath       string
	difficultyPreset string
	startLevelFlag   int
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel overrides the starting level from config and preset.
// Values outside 1..MaxLevel are ignored.
func SetStartLevel(lvl int) {
	startLevelFlag = lvl
}

// New creates a new chomper game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chomper", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chomper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chomper"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadChomper(configPath)
	if err != nil {
		gameCfg = config.DefaultChomperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyChomperPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	}
	if startLevelFlag >= 1 && startLevelFlag <= level.MaxLevel {
		gameCfg.Gameplay.StartLevel = startLevelFlag
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.startLevel = gameCfg.Gameplay.StartLevel
	g.startLives = gameCfg.Gameplay.Lives
	g.highScore = 0
	g.paused = false

	g.player = actor.NewPlayer(maze.PlayerSpawnX, maze.PlayerSpawnY)
	personalities := [4]actor.Personality{actor.Chaser, actor.Ambusher, actor.Fickle, actor.Pokey}
	for i, p := range personalities {
		g.ghosts[i] = actor.NewGhost(p, maze.GhostSpawns[i][0], maze.GhostSpawns[i][1])
	}

	g.resetSession()
}

// SetHighScore seeds the best score shown on the HUD, typically from the
// persistent score store.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// resetSession starts a fresh credit: score, lives and level back to their
// starting values, fresh maze, intro rolling. The high score survives.
func (g *Game) resetSession() {
	g.score = 0
	g.lives = g.startLives
	g.levelNum = g.startLevel
	g.startRound()
	g.enterPhase(PhaseIntro)
}

// startRound rebuilds the maze and per-level counters for the current level.
func (g *Game) startRound() {
	g.grid = maze.New()
	g.dotsEaten = 0
	g.powerTicks = 0
	g.chain = baseChain
	g.fruitActive = false
	g.fruitTicks = 0
	g.resetPositions()
}

// resetPositions returns the player and all ghosts to their spawn cells.
func (g *Game) resetPositions() {
	g.player.Reset(maze.PlayerSpawnX, maze.PlayerSpawnY)
	for _, gh := range g.ghosts {
		gh.Reset()
	}
	g.chompAlt = false
}

func (g *Game) enterPhase(p Phase) {
	g.phase = p
	g.phaseTicks = 0
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// enterReady stages the board for play: positions reset, ready banner up.
func (g *Game) enterReady() {
	g.resetPositions()
	g.enterPhase(PhaseReady)
	g.emit(core.EventReadyCue)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	// Handle restart
	if input.Has(core.ActionRestart) && (g.phase == PhaseGameOver || g.phase == PhaseKillScreen) {
		g.resetSession()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle (gameplay only)
	if input.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseIntro:
		g.stepIntro()
	case PhaseGhostRoll:
		g.stepGhostRoll(input)
	case PhaseReady:
		g.stepReady()
	case PhasePlaying:
		g.stepPlaying(input)
	case PhaseDying:
		g.stepDying()
	case PhaseLevelComplete:
		g.stepLevelComplete()
	case PhaseGameOver:
		g.stepGameOver()
	case PhaseKillScreen:
		g.stepKillScreen()
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) stepIntro() {
	g.phaseTicks++
	switch g.phaseTicks {
	case 30, 60, 90:
		g.emit(core.EventIntroBeep)
	}
	if g.phaseTicks >= introTicks {
		g.enterPhase(PhaseGhostRoll)
	}
}

func (g *Game) stepGhostRoll(input core.InputFrame) {
	g.phaseTicks++
	switch g.phaseTicks {
	case 30:
		g.emit(core.EventGhostRollBeep1)
	case 90:
		g.emit(core.EventGhostRollBeep2)
	case 150:
		g.emit(core.EventGhostRollBeep3)
	case 210:
		g.emit(core.EventGhostRollBeep4)
	}
	if input.Has(core.ActionAdvance) {
		g.enterReady()
	}
}

func (g *Game) stepReady() {
	g.phaseTicks++
	if g.phaseTicks >= readyTicks {
		if g.levelNum >= level.MaxLevel {
			// The counter has rolled over; the board is unplayable.
			g.enterPhase(PhaseKillScreen)
			g.emit(core.EventGlitch)
			return
		}
		g.enterPhase(PhasePlaying)
		g.emit(core.EventSiren)
	}
}

func (g *Game) stepPlaying(input core.InputFrame) {
	scoreBefore := g.score
	lc := level.ForLevel(g.levelNum)

	// Movement
	switch {
	case input.Has(core.ActionUp):
		g.player.Queue(actor.DirUp)
	case input.Has(core.ActionDown):
		g.player.Queue(actor.DirDown)
	case input.Has(core.ActionLeft):
		g.player.Queue(actor.DirLeft)
	case input.Has(core.ActionRight):
		g.player.Queue(actor.DirRight)
	}
	g.player.Speed = lc.PlayerSpeed
	g.player.Update(g.grid)

	cx, cy := g.ghosts[0].Cell()
	targets := actor.Targets{
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		PlayerDir: g.player.Dir,
		ChaserX:   float64(cx),
		ChaserY:   float64(cy),
		HomeX:     maze.GhostHomeX,
		HomeY:     maze.GhostHomeY,
		CornerX:   maze.ScatterCornerX,
		CornerY:   maze.ScatterCornerY,
	}
	for _, gh := range g.ghosts {
		gh.Update(g.grid, targets, lc.GhostSpeed, g.rng)
	}

	// Timers
	if g.powerTicks > 0 {
		g.powerTicks--
		if g.powerTicks == 0 {
			for _, gh := range g.ghosts {
				gh.CalmDown()
			}
		}
	}
	if g.fruitActive {
		g.fruitTicks--
		if g.fruitTicks <= 0 {
			g.fruitActive = false
		}
	}

	// Consumption at the player's cell
	px, py := g.player.Cell()
	switch g.grid.CellAt(px, py) {
	case maze.Pellet:
		g.grid.Consume(px, py)
		g.score += pelletPoints
		g.dotsEaten++
		if g.chompAlt {
			g.emit(core.EventChompB)
		} else {
			g.emit(core.EventChompA)
		}
		g.chompAlt = !g.chompAlt
		if g.dotsEaten == fruitThresholdA || g.dotsEaten == fruitThresholdB {
			g.fruitActive = true
			g.fruitTicks = fruitTicksLimit
		}
	case maze.PowerPellet:
		g.grid.Consume(px, py)
		g.score += powerPoints
		g.chain = baseChain
		g.emit(core.EventPowerActivated)
		if lc.FrightenedTicks > 0 {
			g.powerTicks = lc.FrightenedTicks
			for _, gh := range g.ghosts {
				gh.Frighten()
			}
		}
	case maze.FruitSpot:
		if g.fruitActive {
			g.grid.Consume(px, py)
			g.score += lc.Fruit.Points
			g.fruitActive = false
			g.emit(core.EventFruitAwarded)
		}
	}

	// Ghost contact
	died := false
	for _, gh := range g.ghosts {
		if math.Abs(gh.X-g.player.X) >= collisionRadius || math.Abs(gh.Y-g.player.Y) >= collisionRadius {
			continue
		}
		switch gh.Mode {
		case actor.Frightened:
			g.score += g.chain
			g.chain *= 2
			gh.Devour()
			g.emit(core.EventGhostEaten)
		case actor.Pursuit:
			died = true
		}
	}

	// Phase transitions: clearing the board outranks dying on the same tick.
	switch {
	case g.grid.RemainingCollectibles() == 0:
		g.enterPhase(PhaseLevelComplete)
		g.emit(core.EventLevelComplete)
	case died:
		g.enterPhase(PhaseDying)
		g.emit(core.EventPlayerDeath)
	}

	if g.score > g.highScore {
		g.highScore = g.score
	}
	if g.score/extraLifeEvery > scoreBefore/extraLifeEvery {
		g.lives++
		g.emit(core.EventExtraLife)
	}
}

func (g *Game) stepDying() {
	g.phaseTicks++
	if g.phaseTicks >= dyingTicks {
		g.lives--
		if g.lives <= 0 {
			g.enterPhase(PhaseGameOver)
			return
		}
		g.enterReady()
	}
}

func (g *Game) stepLevelComplete() {
	g.phaseTicks++
	if g.phaseTicks >= levelCompleteTicks {
		g.levelNum++
		if g.levelNum > level.MaxLevel {
			g.levelNum = 1
		}
		g.startRound()
		g.enterPhase(PhaseReady)
		g.emit(core.EventReadyCue)
	}
}

func (g *Game) stepGameOver() {
	g.phaseTicks++
	if g.phaseTicks >= gameOverTicks {
		g.resetSession()
	}
}

func (g *Game) stepKillScreen() {
	g.phaseTicks++
	// The corrupted half of the board sputters at random.
	if g.rng.Float64() > 0.95 {
		g.emit(core.EventGlitch)
	}
}

// Level returns the level currently in play, for score persistence.
func (g *Game) Level() int {
	return g.levelNum
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}
