package config

import (
	_ "embed"
)

//go:embed defaults/chomper.yaml
var defaultChomperYAML []byte

// DefaultChomperConfig returns the default chomper configuration.
func DefaultChomperConfig() ChomperConfig {
	return ChomperConfig{
		Gameplay: ChomperGameplay{
			Lives:      3,
			StartLevel: 1,
		},
		Audio: ChomperAudio{
			Enabled: true,
			Volume:  0.7,
		},
	}
}

// DefaultYAML returns the embedded default config file verbatim, for the
// CLI's config scaffolding.
func DefaultYAML() []byte {
	return defaultChomperYAML
}
