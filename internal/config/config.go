// Package config provides YAML-based configuration loading for the conduit
// platform.
package config

// Config contains all configuration for the conduit platform.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig defines gameplay parameters.
type GameConfig struct {
	// Theme selects tile glyphs: "unicode" or "ascii".
	Theme string `yaml:"theme"`
	// Scramble shuffles tile rotations when a level loads.
	Scramble bool `yaml:"scramble"`
	// CursorWrap moves the cursor to the opposite edge instead of
	// stopping at the boundary.
	CursorWrap bool `yaml:"cursor_wrap"`
	// TickRate is the simulation rate in ticks per second.
	TickRate int `yaml:"tick_rate"`
}

// LevelsConfig defines where user levels are loaded from.
type LevelsConfig struct {
	// Dir is scanned recursively for level files in addition to the
	// built-in set. Empty means built-ins only.
	Dir string `yaml:"dir"`
}

// StorageConfig defines progress persistence.
type StorageConfig struct {
	// Path to the SQLite database. A leading ~ expands to the home
	// directory.
	Path string `yaml:"path"`
}

// ServerConfig defines the SSH serving endpoint.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	KeyPath string `yaml:"key_path"`
}
