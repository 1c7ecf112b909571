package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okurenko/conduit/internal/levels"
	"github.com/okurenko/conduit/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows every level: the built-in set plus any files found in the
configured levels directory. Solved levels are marked with their best
move count.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	loader := levels.NewLoader(cfg.Levels.Dir)
	all, err := loader.LoadAll()
	if err != nil {
		logger.Fatal("could not load levels", "error", err)
	}

	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	// Best-effort progress markers
	store, storeErr := storage.Open(cfg.Storage.Path)
	if storeErr == nil {
		defer store.Close()
	}

	maxIDLen := 2 // "ID" header
	for _, lvl := range all {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-24s  %-14s  %s\n", maxIDLen, "ID", "Name", "Size", "Best")
	fmt.Printf("  %-*s  %-24s  %-14s  %s\n", maxIDLen, "--", "----", "----", "----")

	for _, lvl := range all {
		size := fmt.Sprintf("%dx%d %s", lvl.Width, lvl.Height, lvl.Topology)
		best := "-"
		if storeErr == nil {
			if moves, ok, bErr := store.BestMoves(lvl.ID); bErr == nil && ok {
				best = fmt.Sprintf("%d moves", moves)
			}
		}
		fmt.Printf("  %-*s  %-24s  %-14s  %s\n", maxIDLen, lvl.ID, lvl.Name, size, best)
	}

	fmt.Println()
	fmt.Println("Run 'conduit play <id>' to play a level.")
}
