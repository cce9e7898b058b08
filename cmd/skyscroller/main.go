// skyscroller is a terminal side-scroller: climb and dive past obstacles
// while the game speeds up around you.
//
// Usage:
//
//	skyscroller              - Play (same as 'skyscroller play')
//	skyscroller play         - Play the game
//	skyscroller scores       - Show the best attempts
//	skyscroller list         - List registered games
//	skyscroller config       - Print the default configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible obstacles
//	--data <dir>         - Data directory (default: ~/.skyscroller)
//	--db <path>          - Attempt history database (default: <data>/scores.db)
//	--highscore <path>   - Best score file (default: <data>/score/highscore.txt)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-scroller/internal/highscore"
)

var (
	// Global flags
	flagSeed      int64
	flagDataDir   string
	flagDBPath    string
	flagHighScore string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyscroller",
	Short: "Sky Scroller - dodge obstacles in your terminal",
	Long: `Sky Scroller is a side-scrolling obstacle avoidance game.
Hold up to climb, hold down to dive, and let go to drift. The longer you
survive, the faster and denser the sky gets.

Available commands:
  play     - Play the game (default)
  scores   - View the best and most recent attempts
  list     - Show registered games
  config   - Print the default configuration

Examples:
  skyscroller
  skyscroller play --difficulty hard
  skyscroller scores --browse`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "~/.skyscroller", "Data directory for scores, logs and screenshots")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to attempt history database (default <data>/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to best score file (default <data>/score/highscore.txt)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// dataDir returns the data directory with ~ expanded.
func dataDir() string {
	dir := flagDataDir
	if dir != "" && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return dir
}

func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return filepath.Join(dataDir(), "scores.db")
}

func highScorePath() string {
	if flagHighScore != "" {
		return flagHighScore
	}
	return filepath.Join(dataDir(), highscore.DefaultPath)
}
