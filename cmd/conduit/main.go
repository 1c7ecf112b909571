// conduit is a terminal puzzle about rotating pipe tiles until every
// connection is closed.
//
// Usage:
//
//	conduit play [level]     - Play, optionally starting at a level
//	conduit list             - List available levels
//	conduit edit [file]      - Open the level editor
//	conduit progress         - Show solve progress
//	conduit serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Load a specific config file
//	--fps <rate>    - Set tick rate (default from config)
//	--seed <value>  - Set RNG seed for reproducible scrambles
//	--db <path>     - Set database path (default: ~/.conduit/progress.db)
//	--levels <dir>  - Extra directory of level files
//	--theme <name>  - Tile glyphs: unicode or ascii
//	--no-scramble   - Load levels in their shipped arrangement
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/okurenko/conduit/internal/config"
	// Importing game registers the play and editor modes.
	"github.com/okurenko/conduit/internal/game"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLevelsDir  string
	flagTheme      string
	flagNoScramble bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "conduit",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "conduit",
	Short: "Conduit - rotate pipes until everything connects",
	Long: `Conduit is a terminal puzzle. Each level is a grid of pipe tiles;
rotate them until no connection dangles and everything joins up.

Available commands:
  play      - Play, with an interactive level picker
  list      - Show all available levels
  edit      - Create or modify levels
  progress  - View solve history and best moves
  serve     - Start SSH server for remote play

Examples:
  conduit play
  conduit play 03-ring
  conduit edit mylevel.txt
  conduit serve --ssh :2222
  conduit progress`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Extra directory of level files")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Tile glyphs: unicode or ascii")
	rootCmd.PersistentFlags().BoolVar(&flagNoScramble, "no-scramble", false, "Load levels in their shipped arrangement")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagFPS > 0 {
		cfg.Game.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flagTheme != "" {
		cfg.Game.Theme = flagTheme
	}
	if flagNoScramble {
		cfg.Game.Scramble = false
	}

	return cfg, nil
}

// applyGameSettings pushes config values into the play mode.
func applyGameSettings(cfg config.Config) error {
	theme, ok := game.ParseTheme(cfg.Game.Theme)
	if !ok {
		return fmt.Errorf("unknown theme %q (want unicode or ascii)", cfg.Game.Theme)
	}
	game.SetTheme(theme)
	game.SetScramble(cfg.Game.Scramble)
	game.SetCursorWrap(cfg.Game.CursorWrap)
	game.SetLevelsDir(cfg.Levels.Dir)
	return nil
}
