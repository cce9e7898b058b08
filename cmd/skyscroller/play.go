package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-scroller/internal/config"
	"github.com/vovakirdan/sky-scroller/internal/core"
	"github.com/vovakirdan/sky-scroller/internal/games/scroller"
	"github.com/vovakirdan/sky-scroller/internal/highscore"
	"github.com/vovakirdan/sky-scroller/internal/platform/tui"
	"github.com/vovakirdan/sky-scroller/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Sky Scroller",
	Long: `Start a game of Sky Scroller.

Controls:
  Up/W/K       - Climb (hold)
  Down/S/J     - Dive (hold)
  P/Esc        - Pause
  Enter/Space  - Resume / try again after game over
  R            - Try again after game over
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Sparser obstacles that tighten more slowly
  normal - The configured values
  hard   - Denser obstacles, shorter hover before forced descent
  fixed  - No progression, stays at the initial difficulty

Examples:
  skyscroller play
  skyscroller play --difficulty easy
  skyscroller play --seed 42
  skyscroller play --config ./my-sky.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Log level changes and attempt details")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs the game. Cleanup is deferred here so it still happens when
// the caller exits with an error.
func play() error {
	// Load config up front so a bad file is reported before the alt screen
	if _, err := config.LoadScroller(flagConfig); err != nil {
		return err
	}
	if err := scroller.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	scroller.SetConfigPath(flagConfig)

	logger, closeLog := openLogger(filepath.Join(dataDir(), "skyscroller.log"))
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	best := highscore.NewTracker(highscore.NewFileBackend(highScorePath()), logger)

	store, err := storage.Open(dbPath())
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	game := scroller.NewWithOptions(scroller.Options{
		Best:   best,
		Logger: logger,
	})

	logger.Info("starting", "seed", flagSeed, "difficulty", flagDifficulty, "best", int(best.Best()))

	err = tui.Run(game, core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}, tui.Options{
		Store:          store,
		Logger:         logger,
		ScreenshotsDir: filepath.Join(dataDir(), "screenshots"),
	})
	if err != nil {
		logger.Error("game loop failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogger writes logs to a file, since the terminal is taken by the
// game. If the file can't be opened, logs are dropped.
func openLogger(path string) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyscroller",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}
