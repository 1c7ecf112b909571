package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okurenko/conduit/internal/core"
	"github.com/okurenko/conduit/internal/levels"
	"github.com/okurenko/conduit/internal/platform/tui"
	"github.com/okurenko/conduit/internal/registry"
	"github.com/okurenko/conduit/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the puzzle",
	Long: `Start playing. With no argument an interactive level picker opens;
with a level ID play starts there directly.

Controls:
  Arrows/WASD  - Move cursor
  Space        - Rotate tile
  U            - Rotate tile back
  R            - Restart level
  [ / ]        - Previous / next level
  Enter        - Next level (when solved)
  Q/Ctrl+C     - Quit

Examples:
  conduit play
  conduit play 03-ring
  conduit play 03-ring --theme ascii
  conduit play --no-scramble`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	if err := applyGameSettings(cfg); err != nil {
		logger.Fatal("bad settings", "error", err)
	}

	// Get terminal size early for the level picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open progress storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open progress database", "error", err)
		// Continue without storage - play still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		loader := levels.NewLoader(cfg.Levels.Dir)
		if _, loadErr := loader.LoadByID(levelID); loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
			fmt.Fprintln(os.Stderr, "Run 'conduit list' to see available levels.")
			os.Exit(1)
		}
	} else {
		// Level picker loop: Tab inside the picker flips to the progress view
		for {
			id, wantProgress, menuErr := tui.RunLevelMenu(store, cfg.Levels.Dir, width, height)
			if menuErr != nil {
				logger.Fatal("could not run level picker", "error", menuErr)
			}
			if wantProgress {
				goBack, progErr := tui.RunProgress(store, width, height)
				if progErr != nil {
					logger.Fatal("could not run progress view", "error", progErr)
				}
				if goBack {
					continue
				}
				return
			}
			levelID = id
			break
		}
		if levelID == "" {
			return
		}
	}

	mode, err := registry.Create("play")
	if err != nil {
		logger.Fatal("could not create play mode", "error", err)
	}

	runCfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   cfg.Game.TickRate,
		Seed:       flagSeed,
		LevelsDir:  cfg.Levels.Dir,
		StartLevel: levelID,
	}

	if runErr := tui.Run(mode, store, runCfg); runErr != nil {
		logger.Fatal("could not run", "error", runErr)
	}
}
