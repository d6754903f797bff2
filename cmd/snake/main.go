// snake is classic Snake for the terminal, played locally or over SSH.
//
// Usage:
//
//	snake play               - Play one game
//	snake menu               - Pick a difficulty interactively
//	snake serve              - Start SSH server for remote play
//	snake scores [preset]    - Show high scores for a preset
//	snake presets            - List difficulty presets
//	snake config             - Print the effective config as YAML
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Load game settings from a YAML file
//	--difficulty <name>   - Preset: classic, easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the food, grow,
and avoid the walls and your own tail. The game speeds up as you score.

Available commands:
  play     - Play one game directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  presets  - List difficulty presets
  config   - Print the effective config

Examples:
  snake play
  snake play --difficulty hard
  snake menu
  snake serve --ssh :2222
  snake scores classic`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: classic, easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}
