package config

import (
	_ "embed"
)

//go:embed defaults/conduit.yaml
var defaultConduitYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Theme:      "unicode",
			Scramble:   true,
			CursorWrap: false,
			TickRate:   30,
		},
		Levels: LevelsConfig{
			Dir: "",
		},
		Storage: StorageConfig{
			Path: "~/.conduit/progress.db",
		},
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    23234,
			KeyPath: ".ssh/conduit_ed25519",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, used to
// seed a user config.
func DefaultYAML() []byte {
	return defaultConduitYAML
}
