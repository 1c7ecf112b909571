package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okurenko/conduit/internal/core"
	"github.com/okurenko/conduit/internal/game"
	"github.com/okurenko/conduit/internal/levels"
	"github.com/okurenko/conduit/internal/platform/tui"
	"github.com/okurenko/conduit/internal/registry"
)

var (
	flagEditWidth  int
	flagEditHeight int
)

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Create or modify a level",
	Long: `Open the level editor. With a file argument the level is loaded from
it and saved back on exit; without one the result is printed to stdout
in the text format.

Tiles are placed by typing their text-format character:
  ^ > v <   end pieces
  / -       straights
  1 7 9 3   elbows
  8 6 2 4   tees
  5         cross
  .         erase

Examples:
  conduit edit
  conduit edit mylevel.txt
  conduit edit --width 6 --height 4`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().IntVar(&flagEditWidth, "width", 4, "Grid width for a new level")
	editCmd.Flags().IntVar(&flagEditHeight, "height", 4, "Grid height for a new level")
}

func runEdit(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	if err := applyGameSettings(cfg); err != nil {
		logger.Fatal("bad settings", "error", err)
	}

	outPath := ""
	game.SetEditorSource(nil)
	game.SetEditorSize(flagEditWidth, flagEditHeight)

	if len(args) == 1 {
		outPath = args[0]
		if _, statErr := os.Stat(outPath); statErr == nil {
			loader := levels.NewLoader(cfg.Levels.Dir)
			lvl, loadErr := loader.LoadFile(outPath)
			if loadErr != nil {
				logger.Fatal("could not load level", "path", outPath, "error", loadErr)
			}
			game.SetEditorSource(&lvl)
		}
	}

	mode, err := registry.Create("editor")
	if err != nil {
		logger.Fatal("could not create editor", "error", err)
	}
	editor, ok := mode.(*game.Editor)
	if !ok {
		logger.Fatal("editor mode has unexpected type")
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Game.TickRate,
		Seed:     flagSeed,
	}

	if runErr := tui.Run(editor, nil, runCfg); runErr != nil {
		logger.Fatal("could not run editor", "error", runErr)
	}

	out, err := editor.World()
	if err != nil {
		logger.Fatal("could not encode level", "error", err)
	}

	if outPath == "" {
		fmt.Print(out)
		return
	}

	if writeErr := os.WriteFile(outPath, []byte(out), 0o644); writeErr != nil {
		logger.Fatal("could not save level", "path", outPath, "error", writeErr)
	}
	fmt.Printf("Saved %s\n", outPath)
}
