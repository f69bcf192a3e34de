package chomper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-chomper/internal/core"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper/actor"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper/level"
	"github.com/vovakirdan/tui-chomper/internal/games/chomper/maze"
)

const hudRows = 2

// glitchRunes is the character soup the corrupted board half is built from.
var glitchRunes = []rune(`#%&@$?!=+*/\<>[]{}0123456789ABCDEF`)

var glitchColors = []core.Color{
	core.ColorBrightRed, core.ColorBrightGreen, core.ColorBrightYellow,
	core.ColorBrightBlue, core.ColorBrightMagenta, core.ColorBrightCyan,
	core.ColorBrightWhite,
}

// ghostColor maps each personality to its body color.
func ghostColor(p actor.Personality) core.Color {
	switch p {
	case actor.Chaser:
		return core.ColorBrightRed
	case actor.Ambusher:
		return core.ColorPink
	case actor.Fickle:
		return core.ColorBrightCyan
	case actor.Pokey:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// ghostRollNames are the roll-call entries shown before the first round.
var ghostRollNames = [4]struct {
	Name     string
	Nickname string
}{
	{"SHADOW", "CHASER"},
	{"SPEEDY", "AMBUSHER"},
	{"BASHFUL", "FICKLE"},
	{"POKEY", "SLOWPOKE"},
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < maze.Width || dst.Height() < maze.Height+hudRows+1 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	switch g.phase {
	case PhaseIntro:
		g.renderIntro(dst)
		return
	case PhaseGhostRoll:
		g.renderGhostRoll(dst)
		return
	}

	g.renderHUD(dst)

	offX := (dst.Width() - maze.Width) / 2
	offY := hudRows

	if g.phase == PhaseKillScreen {
		g.renderKillScreen(dst, offX, offY)
		return
	}

	g.renderMaze(dst, offX, offY)
	g.renderGhosts(dst, offX, offY)
	g.renderPlayer(dst, offX, offY)
	g.renderLives(dst, offX, offY)

	switch g.phase {
	case PhaseReady:
		dst.DrawTextCenteredColor(offY+14, "READY!", core.ColorBrightYellow)
	case PhaseGameOver:
		dst.DrawTextCenteredColor(offY+14, "GAME  OVER", core.ColorBrightRed)
	}
	if g.paused {
		dst.DrawTextCenteredColor(offY+14, "PAUSED", core.ColorBrightWhite)
	}
}

// renderHUD draws the score line and its separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" SCORE %06d   HIGH %06d   LEVEL %d", g.score, g.highScore, g.levelNum)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws the static board: walls, pellets, door and active fruit.
func (g *Game) renderMaze(dst *core.Screen, offX, offY int) {
	wallColor := core.ColorBlue
	if g.phase == PhaseLevelComplete && (g.phaseTicks/15)%2 == 1 {
		wallColor = core.ColorBrightWhite
	}

	lc := level.ForLevel(g.levelNum)
	blink := (g.tick/10)%2 == 0

	for y := 0; y < maze.Height; y++ {
		for x := 0; x < maze.Width; x++ {
			sx, sy := offX+x, offY+y
			switch g.grid.CellAt(x, y) {
			case maze.Wall:
				dst.SetColor(sx, sy, '█', wallColor)
			case maze.Pellet:
				dst.SetColor(sx, sy, '·', core.ColorWhite)
			case maze.PowerPellet:
				if blink {
					dst.SetColor(sx, sy, 'o', core.ColorBrightWhite)
				}
			case maze.Door:
				dst.SetColor(sx, sy, '─', core.ColorPink)
			case maze.FruitSpot:
				if g.fruitActive {
					dst.SetColor(sx, sy, lc.Fruit.Glyph, core.ColorBrightRed)
				}
			}
		}
	}
}

// renderPlayer draws the chomper, blinking through the death throes.
func (g *Game) renderPlayer(dst *core.Screen, offX, offY int) {
	if g.phase == PhaseDying && (g.phaseTicks/10)%2 == 1 {
		return
	}
	px, py := g.player.Cell()
	dst.SetColor(offX+px, offY+py, 'C', core.ColorBrightYellow)
}

// renderGhosts draws the four adversaries. Frightened ghosts turn blue and
// flash white when the power window is about to close; eaten ghosts are a
// pair of eyes heading home.
func (g *Game) renderGhosts(dst *core.Screen, offX, offY int) {
	if g.phase == PhaseDying || g.phase == PhaseLevelComplete || g.phase == PhaseGameOver {
		return
	}
	for _, gh := range g.ghosts {
		gx, gy := gh.Cell()
		sx, sy := offX+gx, offY+gy
		switch gh.Mode {
		case actor.Eaten:
			dst.SetColor(sx, sy, '"', core.ColorWhite)
		case actor.Frightened:
			c := core.ColorBrightBlue
			if g.powerTicks < 120 && (g.tick/10)%2 == 0 {
				c = core.ColorBrightWhite
			}
			dst.SetColor(sx, sy, 'M', c)
		default:
			dst.SetColor(sx, sy, 'M', ghostColor(gh.Personality))
		}
	}
}

// renderLives draws the spare-life row under the maze plus the level fruit.
func (g *Game) renderLives(dst *core.Screen, offX, offY int) {
	y := offY + maze.Height
	dst.DrawText(offX, y, "LIVES ")
	for i := 0; i < g.lives-1 && i < 8; i++ {
		dst.SetColor(offX+6+i*2, y, 'C', core.ColorBrightYellow)
	}
	fruit := level.FruitForLevel(g.levelNum)
	dst.SetColor(offX+maze.Width-1, y, fruit.Glyph, core.ColorBrightRed)
}

// renderIntro draws the attract screen, revealing lines on the beep ticks.
func (g *Game) renderIntro(dst *core.Screen) {
	mid := dst.Height() / 2
	if g.phaseTicks >= 30 {
		dst.DrawTextCenteredColor(mid-4, "C H O M P E R", core.ColorBrightYellow)
	}
	if g.phaseTicks >= 60 {
		dst.DrawTextCentered(mid-2, "256 LEVELS OF ARCADE ACTION")
	}
	if g.phaseTicks >= 90 {
		dst.DrawTextCentered(mid, "EAT THE DOTS - DODGE THE GHOSTS")
	}
	if (g.tick/20)%2 == 0 {
		dst.DrawTextCenteredColor(mid+4, "PLEASE WAIT", core.ColorGray)
	}
}

// renderGhostRoll draws the character roll call, one entry per beep.
func (g *Game) renderGhostRoll(dst *core.Screen) {
	top := dst.Height()/2 - 6
	dst.DrawTextCenteredColor(top, "CHARACTER / NICKNAME", core.ColorBrightWhite)

	reveal := [4]int{30, 90, 150, 210}
	for i, entry := range ghostRollNames {
		if g.phaseTicks < reveal[i] {
			break
		}
		line := fmt.Sprintf("M  %-8s  %q", entry.Name, entry.Nickname)
		y := top + 2 + i*2
		x := (dst.Width() - len(line)) / 2
		dst.DrawText(x, y, line)
		dst.SetColor(x, y, 'M', ghostColor(actor.Personality(i)))
	}

	if (g.tick/20)%2 == 0 {
		dst.DrawTextCenteredColor(top+11, "PRESS SPACE TO START", core.ColorBrightYellow)
	}
}

// renderKillScreen draws the split board: the left half renders normally,
// the right half is deterministic per-frame garbage.
func (g *Game) renderKillScreen(dst *core.Screen, offX, offY int) {
	g.renderMaze(dst, offX, offY)
	g.renderLives(dst, offX, offY)

	// Reseed per frame group so the garbage shimmers without touching the
	// simulation RNG.
	noise := rand.New(rand.NewSource(int64(g.tick / 6)))
	for y := 0; y < maze.Height; y++ {
		for x := maze.Width / 2; x < maze.Width; x++ {
			r := glitchRunes[noise.Intn(len(glitchRunes))]
			c := glitchColors[noise.Intn(len(glitchColors))]
			dst.SetColor(offX+x, offY+y, r, c)
		}
	}

	px, py := g.player.Cell()
	dst.SetColor(offX+px, offY+py, 'C', core.ColorBrightYellow)
}
