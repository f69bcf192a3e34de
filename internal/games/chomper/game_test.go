package chomper

import (
	"testing"

	"github.com/vovakirdan/tui-chomper/internal/core"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper/actor"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper/level"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper/maze"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  32,
		TickRate: 60,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(seed))
	return g
}

// enterPlaying drops the game straight into the playing phase with actors at
// their spawn cells, bypassing the attract sequence.
func enterPlaying(g *Game) {
	g.resetPositions()
	g.enterPhase(PhasePlaying)
}

// parkGhosts moves all ghosts well away from the given cell so contact
// checks stay quiet.
func parkGhosts(g *Game) {
	for i, gh := range g.ghosts {
		gh.X = float64(maze.GhostSpawns[i][0])
		gh.Y = float64(maze.GhostSpawns[i][1])
	}
}

func hasEvent(res core.StepResult, want core.Event) bool {
	for _, e := range res.Events {
		if e == want {
			return true
		}
	}
	return false
}

func countEvent(res core.StepResult, want core.Event) int {
	n := 0
	for _, e := range res.Events {
		if e == want {
			n++
		}
	}
	return n
}

func TestAttractSequence(t *testing.T) {
	g := newTestGame(t, 1)
	if g.phase != PhaseIntro {
		t.Fatalf("expected intro phase after reset, got %v", g.phase)
	}

	empty := core.NewInputFrame()
	introBeeps := 0
	for i := 0; i < 200; i++ {
		res := g.Step(empty)
		introBeeps += countEvent(res, core.EventIntroBeep)
	}
	if g.phase != PhaseGhostRoll {
		t.Fatalf("expected ghost roll after intro, got %v", g.phase)
	}
	if introBeeps != 3 {
		t.Errorf("expected 3 intro beeps, got %d", introBeeps)
	}

	// The roll call waits for the advance key indefinitely.
	rollBeeps := 0
	for i := 0; i < 300; i++ {
		res := g.Step(empty)
		for _, e := range []core.Event{
			core.EventGhostRollBeep1, core.EventGhostRollBeep2,
			core.EventGhostRollBeep3, core.EventGhostRollBeep4,
		} {
			rollBeeps += countEvent(res, e)
		}
	}
	if g.phase != PhaseGhostRoll {
		t.Fatalf("ghost roll should wait for advance, got %v", g.phase)
	}
	if rollBeeps != 4 {
		t.Errorf("expected 4 roll-call beeps, got %d", rollBeeps)
	}

	adv := core.NewInputFrame()
	adv.Set(core.ActionAdvance)
	res := g.Step(adv)
	if g.phase != PhaseReady {
		t.Fatalf("expected ready after advance, got %v", g.phase)
	}
	if !hasEvent(res, core.EventReadyCue) {
		t.Error("expected ready cue event on entering ready")
	}

	var last core.StepResult
	for i := 0; i < 120; i++ {
		last = g.Step(empty)
	}
	if g.phase != PhasePlaying {
		t.Fatalf("expected playing after ready countdown, got %v", g.phase)
	}
	if !hasEvent(last, core.EventSiren) {
		t.Error("expected siren event on entering playing")
	}
}

func TestPelletScoringAndChompAlternation(t *testing.T) {
	g := newTestGame(t, 1)
	enterPlaying(g)
	parkGhosts(g)

	g.player.Reset(1, 1) // pellet cell
	res := g.Step(core.NewInputFrame())
	if g.score != pelletPoints {
		t.Fatalf("expected score %d after one pellet, got %d", pelletPoints, g.score)
	}
	if g.dotsEaten != 1 {
		t.Fatalf("expected 1 dot eaten, got %d", g.dotsEaten)
	}
	if !hasEvent(res, core.EventChompA) {
		t.Error("first pellet should emit the A chomp")
	}
	if g.grid.CellAt(1, 1) != maze.Empty {
		t.Error("pellet cell should be empty after consumption")
	}

	g.player.Reset(2, 1) // next pellet over
	res = g.Step(core.NewInputFrame())
	if !hasEvent(res, core.EventChompB) {
		t.Error("second pellet should emit the B chomp")
	}
}

func TestPowerPelletAndGhostChain(t *testing.T) {
	g := newTestGame(t, 1)
	enterPlaying(g)
	parkGhosts(g)

	g.player.Reset(1, 2) // power pellet cell
	res := g.Step(core.NewInputFrame())
	if g.score != powerPoints {
		t.Fatalf("expected score %d after power pellet, got %d", powerPoints, g.score)
	}
	if !hasEvent(res, core.EventPowerActivated) {
		t.Error("expected power activation event")
	}
	if g.powerTicks != level.ForLevel(1).FrightenedTicks {
		t.Fatalf("expected power window %d, got %d", level.ForLevel(1).FrightenedTicks, g.powerTicks)
	}
	for i, gh := range g.ghosts {
		if gh.Mode != actor.Frightened {
			t.Errorf("ghost %d should be frightened", i)
		}
	}

	// Stack all four ghosts on the player and collect the chain:
	// 200 + 400 + 800 + 1600.
	g.powerTicks = 1000
	base := g.score
	for _, gh := range g.ghosts {
		gh.X, gh.Y = g.player.X, g.player.Y
	}
	res = g.Step(core.NewInputFrame())
	if got := g.score - base; got != 200+400+800+1600 {
		t.Fatalf("expected chain total 3000, got %d", got)
	}
	if n := countEvent(res, core.EventGhostEaten); n != 4 {
		t.Errorf("expected 4 ghost-eaten events, got %d", n)
	}
	for i, gh := range g.ghosts {
		if gh.Mode != actor.Eaten {
			t.Errorf("ghost %d should be eaten", i)
		}
	}

	// A fresh power pellet resets the chain multiplier.
	for i, gh := range g.ghosts {
		gh.X = float64(maze.GhostSpawns[i][0])
		gh.Y = float64(maze.GhostSpawns[i][1])
		gh.Mode = actor.Pursuit
	}
	g.player.Reset(26, 2) // the opposite power pellet
	g.Step(core.NewInputFrame())
	if g.chain != baseChain {
		t.Errorf("expected chain reset to %d, got %d", baseChain, g.chain)
	}
}

func TestPowerWindowExpiry(t *testing.T) {
	g := newTestGame(t, 1)
	enterPlaying(g)
	parkGhosts(g)
	g.player.Reset(maze.PlayerSpawnX, maze.PlayerSpawnY)

	for _, gh := range g.ghosts {
		gh.Frighten()
	}
	g.powerTicks = 1
	g.Step(core.NewInputFrame())
	if g.powerTicks != 0 {
		t.Fatalf("power window should have closed, got %d", g.powerTicks)
	}
	for i, gh := range g.ghosts {
		if gh.Mode != actor.Pursuit {
			t.Errorf("ghost %d should be back in pursuit", i)
		}
	}
}

func TestFruitLifecycle(t *testing.T) {
	g := newTestGame(t, 1)
	enterPlaying(g)
	parkGhosts(g)

	// The 70th dot activates the fruit.
	g.dotsEaten = 69
	g.player.Reset(1, 1)
	g.Step(core.NewInputFrame())
	if !g.fruitActive {
		t.Fatal("fruit should activate on the 70th dot")
	}
	if g.fruitTicks != fruitTicksLimit {
		t.Fatalf("expected fruit window %d, got %d", fruitTicksLimit, g.fruitTicks)
	}

	// Standing on the fruit spot collects the level fruit.
	g.player.Reset(13, 15)
	base := g.score
	res := g.Step(core.NewInputFrame())
	if got := g.score - base; got != level.FruitForLevel(1).Points {
		t.Fatalf("expected fruit reward %d, got %d", level.FruitForLevel(1).Points, got)
	}
	if g.fruitActive {
		t.Error("fruit should deactivate once collected")
	}
	if !hasEvent(res, core.EventFruitAwarded) {
		t.Error("expected fruit award event")
	}

	// The 170th dot re-arms it, and an uncollected fruit times out.
	g.dotsEaten = 169
	g.player.Reset(2, 1)
	g.Step(core.NewInputFrame())
	if !g.fruitActive {
		t.Fatal("fruit should activate on the 170th dot")
	}
	g.player.Reset(maze.PlayerSpawnX, maze.PlayerSpawnY)
	g.fruitTicks = 1
	g.Step(core.NewInputFrame())
	if g.fruitActive {
		t.Error("fruit should expire when its timer runs out")
	}
}

func TestFruitSpotInertWithoutActivation(t *testing.T) {
	g := newTestGame(t, 1)
	enterPlaying(g)
	parkGhosts(g)

	g.player.Reset(13, 15)
	g.Step(core.NewInputFrame())
	if g.score != 0 {
		t.Errorf("inactive fruit spot should award nothing, got %d", g.score)
	}
	if g.grid.CellAt(13, 15) != maze.FruitSpot {
		t.Error("inactive fruit spot should stay on the board")
	}
}

func TestExtraLifeOnScoreBucket(t *testing.T) {
	g := newTestGame(t, 1)
	enterPlaying(g)
	parkGhosts(g)

	g.score = 9990
	g.player.Reset(1, 1)
	res := g.Step(core.NewInputFrame())
	if g.score != 10000 {
		t.Fatalf("expected score 10000, got %d", g.score)
	}
	if g.lives != 4 {
		t.Fatalf("expected extra life at 10000, got %d lives", g.lives)
	}
	if !hasEvent(res, core.EventExtraLife) {
		t.Error("expected extra-life event")
	}

	// Scores inside a bucket never re-trigger the award.
	g.player.Reset(2, 1)
	g.Step(core.NewInputFrame())
	if g.lives != 4 {
		t.Errorf("no extra life expected at 10010, got %d lives", g.lives)
	}
}

func TestDeathAndGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	enterPlaying(g)
	parkGhosts(g)

	g.ghosts[0].X = g.player.X
	g.ghosts[0].Y = g.player.Y
	res := g.Step(core.NewInputFrame())
	if g.phase != PhaseDying {
		t.Fatalf("expected dying phase on ghost contact, got %v", g.phase)
	}
	if !hasEvent(res, core.EventPlayerDeath) {
		t.Error("expected death event")
	}

	empty := core.NewInputFrame()
	for i := 0; i < dyingTicks; i++ {
		g.Step(empty)
	}
	if g.lives != 2 {
		t.Fatalf("expected 2 lives after first death, got %d", g.lives)
	}
	if g.phase != PhaseReady {
		t.Fatalf("expected ready after death with lives left, got %v", g.phase)
	}

	// Last life: dying leads to game over, and game over loops back to the
	// attract screen with a fresh session.
	g.lives = 1
	g.enterPhase(PhaseDying)
	for i := 0; i < dyingTicks; i++ {
		g.Step(empty)
	}
	if g.phase != PhaseGameOver {
		t.Fatalf("expected game over on last life, got %v", g.phase)
	}
	if !g.State().GameOver {
		t.Error("state should report game over")
	}

	g.score = 4321
	for i := 0; i < gameOverTicks; i++ {
		g.Step(empty)
	}
	if g.phase != PhaseIntro {
		t.Fatalf("expected intro after game over timeout, got %v", g.phase)
	}
	if g.score != 0 || g.lives != 3 {
		t.Errorf("expected fresh session, got score %d lives %d", g.score, g.lives)
	}
}

func TestLevelCompleteOnLastPellet(t *testing.T) {
	g := newTestGame(t, 1)
	enterPlaying(g)
	parkGhosts(g)

	// Clear the board except one pellet, then eat it.
	for y := 0; y < maze.Height; y++ {
		for x := 0; x < maze.Width; x++ {
			if x == 1 && y == 1 {
				continue
			}
			switch g.grid.CellAt(x, y) {
			case maze.Pellet, maze.PowerPellet:
				g.grid.Consume(x, y)
			}
		}
	}
	g.player.Reset(1, 1)
	res := g.Step(core.NewInputFrame())
	if g.phase != PhaseLevelComplete {
		t.Fatalf("expected level complete on last pellet, got %v", g.phase)
	}
	if !hasEvent(res, core.EventLevelComplete) {
		t.Error("expected level-complete event")
	}

	empty := core.NewInputFrame()
	for i := 0; i < levelCompleteTicks; i++ {
		g.Step(empty)
	}
	if g.phase != PhaseReady {
		t.Fatalf("expected ready for the next level, got %v", g.phase)
	}
	if g.levelNum != 2 {
		t.Fatalf("expected level 2, got %d", g.levelNum)
	}
	if g.dotsEaten != 0 {
		t.Errorf("dots eaten should reset per level, got %d", g.dotsEaten)
	}
	if g.grid.RemainingCollectibles() != 216 {
		t.Errorf("expected a fully restocked board, got %d", g.grid.RemainingCollectibles())
	}
}

func TestLevelWrapAtMaximum(t *testing.T) {
	g := newTestGame(t, 1)
	g.levelNum = level.MaxLevel
	g.enterPhase(PhaseLevelComplete)

	empty := core.NewInputFrame()
	for i := 0; i < levelCompleteTicks; i++ {
		g.Step(empty)
	}
	if g.levelNum != 1 {
		t.Fatalf("expected wrap back to level 1, got %d", g.levelNum)
	}
	if g.phase != PhaseReady {
		t.Fatalf("expected ready after the wrap, got %v", g.phase)
	}
	if g.dotsEaten != 0 {
		t.Errorf("dots eaten should reset on wrap, got %d", g.dotsEaten)
	}
	if g.grid.RemainingCollectibles() != 216 {
		t.Errorf("expected a fully restocked board, got %d", g.grid.RemainingCollectibles())
	}
}

func TestLevelCompleteOutranksDeath(t *testing.T) {
	g := newTestGame(t, 1)
	enterPlaying(g)
	parkGhosts(g)

	for y := 0; y < maze.Height; y++ {
		for x := 0; x < maze.Width; x++ {
			if x == 1 && y == 1 {
				continue
			}
			switch g.grid.CellAt(x, y) {
			case maze.Pellet, maze.PowerPellet:
				g.grid.Consume(x, y)
			}
		}
	}
	g.player.Reset(1, 1)
	g.ghosts[0].X = g.player.X
	g.ghosts[0].Y = g.player.Y

	res := g.Step(core.NewInputFrame())
	if g.phase != PhaseLevelComplete {
		t.Fatalf("clearing the board should outrank dying, got %v", g.phase)
	}
	if hasEvent(res, core.EventPlayerDeath) {
		t.Error("no death event expected when the board clears on the same tick")
	}
}

func TestKillScreenIsTerminal(t *testing.T) {
	g := newTestGame(t, 1)
	g.levelNum = level.MaxLevel
	g.enterReady()

	empty := core.NewInputFrame()
	for i := 0; i < readyTicks; i++ {
		g.Step(empty)
	}
	if g.phase != PhaseKillScreen {
		t.Fatalf("expected kill screen at level %d, got %v", level.MaxLevel, g.phase)
	}

	// No simulation runs on the kill screen: positions and the board freeze.
	before := g.Snapshot()
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 120; i++ {
		g.Step(right)
	}
	after := g.Snapshot()
	if after.Phase != "kill_screen" {
		t.Fatalf("kill screen should be terminal, got %s", after.Phase)
	}
	if before.PlayerX != after.PlayerX || before.PlayerY != after.PlayerY {
		t.Error("player should not move on the kill screen")
	}
	if before.Remaining != after.Remaining {
		t.Error("the board should not change on the kill screen")
	}

	// Restart is the only way out.
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.phase != PhaseIntro {
		t.Fatalf("expected restart to leave the kill screen, got %v", g.phase)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 1)
	enterPlaying(g)
	parkGhosts(g)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	before := g.Snapshot()
	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 30; i++ {
		g.Step(right)
	}
	after := g.Snapshot()
	if before.PlayerX != after.PlayerX || before.Score != after.Score {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected pause to toggle off")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and the same input script must stay in
	// lockstep through the attract sequence and deep into gameplay.
	script := func(g *Game) Snapshot {
		input := core.NewInputFrame()
		for i := 0; i < 900; i++ {
			input.Clear()
			switch {
			case i == 210:
				input.Set(core.ActionAdvance)
			case i > 340 && i < 400:
				input.Set(core.ActionLeft)
			case i >= 400 && i < 500:
				input.Set(core.ActionUp)
			case i >= 500 && i < 600:
				input.Set(core.ActionRight)
			case i >= 600:
				input.Set(core.ActionDown)
			}
			g.Step(input)
		}
		return g.Snapshot()
	}

	g1 := newTestGame(t, 987654)
	g2 := newTestGame(t, 987654)
	s1 := script(g1)
	s2 := script(g2)
	if s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 32)

	// Every phase must render without panicking.
	phases := []Phase{
		PhaseIntro, PhaseGhostRoll, PhaseReady, PhasePlaying,
		PhaseDying, PhaseLevelComplete, PhaseGameOver, PhaseKillScreen,
	}
	for _, p := range phases {
		g.enterPhase(p)
		g.phaseTicks = 250
		g.Render(screen)
	}

	g.enterPhase(PhasePlaying)
	g.Render(screen)
	if got := screen.Row(0); len(got) == 0 || got[1:6] != "SCORE" {
		t.Errorf("expected HUD score line, got %q", got)
	}

	// A cramped window gets the resize hint instead of a crash.
	small := core.NewScreen(20, 10)
	g.Render(small)
}
