// Package level maps a level number to its difficulty parameters. The mapping
// is a pure lookup: nothing here is cached or mutated, the game recomputes the
// configuration from the level number at the top of every tick.
package level

// MaxLevel is the terminal level. Entering it triggers the kill screen and
// advancing past it wraps back to level 1.
const MaxLevel = 256

// difficultyCap is the level whose parameters all later levels reuse.
const difficultyCap = 21

// Fruit is the bonus item configuration for a level.
type Fruit struct {
	Points int
	Glyph  rune
	Name   string
}

// Config holds the per-level simulation parameters.
type Config struct {
	PlayerSpeed     float64 // cells per tick
	GhostSpeed      float64 // cells per tick, pursuit mode
	FrightenedTicks int     // duration of frightened mode
	Fruit           Fruit
}

// speeds holds {player speed, ghost speed, frightened ticks} for levels 1..21.
// Speeds are non-decreasing and the frightened window shrinks to zero at the cap.
var speeds = [difficultyCap]struct {
	player     float64
	ghost      float64
	frightened int
}{
	{0.15, 0.12, 360},
	{0.16, 0.13, 300},
	{0.16, 0.14, 240},
	{0.17, 0.15, 180},
	{0.17, 0.16, 150},
	{0.18, 0.17, 120},
	{0.18, 0.18, 120},
	{0.19, 0.19, 90},
	{0.19, 0.20, 60},
	{0.20, 0.21, 60},
	{0.20, 0.22, 50},
	{0.21, 0.23, 40},
	{0.21, 0.24, 40},
	{0.22, 0.25, 30},
	{0.22, 0.26, 30},
	{0.23, 0.27, 20},
	{0.23, 0.28, 20},
	{0.24, 0.29, 10},
	{0.24, 0.30, 10},
	{0.25, 0.31, 5},
	{0.25, 0.32, 0},
}

// fruits is the bonus table. Entry i serves level i+1; levels past the table
// reuse the last entry.
var fruits = []Fruit{
	{100, '%', "Cherry"},
	{300, '*', "Strawberry"},
	{500, 'o', "Orange"},
	{500, 'o', "Orange"},
	{700, '@', "Apple"},
	{700, '@', "Apple"},
	{1000, '0', "Melon"},
	{1000, '0', "Melon"},
	{2000, '^', "Galaxian"},
	{2000, '^', "Galaxian"},
	{3000, '&', "Bell"},
	{3000, '&', "Bell"},
	{5000, '~', "Key"},
}

// killScreen is the degenerate configuration for the terminal level: the
// player is near-stationary, ghosts crawl, and the fruit is worth nothing.
var killScreen = Config{
	PlayerSpeed:     0.05,
	GhostSpeed:      0.3,
	FrightenedTicks: 10,
	Fruit:           Fruit{0, 'X', "KILL SCREEN"},
}

// ForLevel returns the configuration for the given level number.
// Levels above the difficulty cap reuse the cap's parameters; out-of-range
// level numbers clamp rather than fail.
func ForLevel(n int) Config {
	if n == MaxLevel {
		return killScreen
	}
	if n < 1 {
		n = 1
	}
	capped := n
	if capped > difficultyCap {
		capped = difficultyCap
	}
	s := speeds[capped-1]

	cfg := Config{
		PlayerSpeed:     s.player,
		GhostSpeed:      s.ghost,
		FrightenedTicks: s.frightened,
	}
	if n <= len(fruits) {
		cfg.Fruit = fruits[n-1]
	} else {
		cfg.Fruit = fruits[len(fruits)-1]
	}
	return cfg
}

// FruitForLevel returns just the fruit entry for the given level, used by the
// HUD fruit strip.
func FruitForLevel(n int) Fruit {
	return ForLevel(n).Fruit
}
