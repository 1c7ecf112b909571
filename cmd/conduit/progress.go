package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okurenko/conduit/internal/platform/tui"
	"github.com/okurenko/conduit/internal/storage"
)

var flagProgressTUI bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show solve progress",
	Long: `Display solve counts and best move counts per level.

Examples:
  conduit progress
  conduit progress --tui`,
	Run: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagProgressTUI, "tui", false, "Browse solve history interactively")
}

func runProgress(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("could not open progress database", "error", err)
	}
	defer store.Close()

	if flagProgressTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, runErr := tui.RunProgress(store, width, height); runErr != nil {
			logger.Fatal("could not run progress view", "error", runErr)
		}
		return
	}

	progress, err := store.AllProgress()
	if err != nil {
		logger.Fatal("could not read progress", "error", err)
	}

	if len(progress) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Run 'conduit play' to solve your first level!")
		return
	}

	maxIDLen := 5 // "Level" header
	for _, p := range progress {
		if len(p.LevelID) > maxIDLen {
			maxIDLen = len(p.LevelID)
		}
	}

	fmt.Println("Progress:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "Level", "Solves", "Best", "Last Solved")
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "-----", "------", "----", "-----------")

	for _, p := range progress {
		lastStr := p.LastSolved.Format("2006-01-02 15:04")
		fmt.Printf("  %-*s  %-7d  %-6d  %s\n", maxIDLen, p.LevelID, p.Solves, p.BestMoves, lastStr)
	}
}
