package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows every difficulty preset with its best score.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	var stats map[string]*storage.BoardStats
	if store != nil {
		stats, _ = store.AllStats()
		store.Close()
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %s\n", "Name", "Best", "Description")
	fmt.Printf("  %-8s  %-5s  %s\n", "----", "----", "-----------")

	for _, p := range config.Presets() {
		best := 0
		if s, ok := stats[tui.BoardID(string(p))]; ok {
			best = s.HighScore
		}
		fmt.Printf("  %-8s  %-5d  %s\n", p, best, p.Description())
	}

	fmt.Println()
	fmt.Println("Run 'snake play --difficulty <name>' to play.")
}
