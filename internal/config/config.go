// Package config provides YAML-based game configuration loading and
// difficulty presets for the chomper arcade.
package config

// ChomperConfig contains all configuration for the chomper game.
type ChomperConfig struct {
	Gameplay ChomperGameplay `yaml:"gameplay"`
	Audio    ChomperAudio    `yaml:"audio"`
}

// ChomperGameplay defines session parameters.
type ChomperGameplay struct {
	Lives      int `yaml:"lives"`
	StartLevel int `yaml:"start_level"`
}

// ChomperAudio defines the synthesized sound output.
type ChomperAudio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Normalize clamps config values into playable ranges.
func (c *ChomperConfig) Normalize() {
	if c.Gameplay.Lives < 1 {
		c.Gameplay.Lives = 3
	}
	if c.Gameplay.StartLevel < 1 {
		c.Gameplay.StartLevel = 1
	}
	if c.Gameplay.StartLevel > 256 {
		c.Gameplay.StartLevel = 256
	}
	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyChomperPreset modifies the config based on a difficulty preset.
// Presets shift the starting point on the speed table rather than
// scaling speeds directly.
func ApplyChomperPreset(cfg *ChomperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.StartLevel = 1
	case DifficultyHard:
		cfg.Gameplay.Lives = 1
		cfg.Gameplay.StartLevel = 5
	}
}
