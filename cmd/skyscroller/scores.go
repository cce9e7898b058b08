package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-scroller/internal/games/scroller"
	"github.com/vovakirdan/sky-scroller/internal/highscore"
	"github.com/vovakirdan/sky-scroller/internal/platform/tui"
	"github.com/vovakirdan/sky-scroller/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best attempts",
	Long: `Display the best recorded attempts and the saved high score.

Examples:
  skyscroller scores
  skyscroller scores --limit 20
  skyscroller scores --browse
  skyscroller scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse attempts in an interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of attempts to print")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the attempt history (the saved high score is kept)")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(dbPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearAttempts(scroller.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Attempt history cleared.")
		return
	}

	if flagBrowse && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, scroller.GameID, "Sky Scroller", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	attempts, err := store.TopAttempts(scroller.GameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving attempts: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Attempts - Sky Scroller")
	fmt.Println()

	if len(attempts) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'skyscroller play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Frames", "Date")
		fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "----", "-----", "-----", "------", "----")
		for i, a := range attempts {
			fmt.Printf("  %-4d  %-10d  %-5d  %-8d  %s\n",
				i+1, a.Score, a.Level, a.Frames, a.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	// The saved best can predate the history database
	fmt.Println()
	best := highscore.NewTracker(highscore.NewFileBackend(highScorePath()), nil)
	fmt.Printf("High score:           %d\n", int(best.Best()))
	if recorded, err := store.HighScore(scroller.GameID); err == nil {
		fmt.Printf("Best in history:      %d\n", recorded)
	}
}
