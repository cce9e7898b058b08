package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-scroller/internal/core"
	"github.com/vovakirdan/sky-scroller/internal/registry"
	"github.com/vovakirdan/sky-scroller/internal/storage"
)

// attemptReporter is implemented by games that count frames per attempt.
type attemptReporter interface {
	Frames() int
}

// Options configures the game host.
type Options struct {
	Store          *storage.Store // Attempt history; nil disables it
	Logger         *log.Logger
	RepeatDelay    time.Duration // First-press hold; zero uses DefaultRepeatDelay
	HoldWindow     time.Duration // Auto-repeat hold; zero uses DefaultHoldWindow
	ScreenshotsDir string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	input     *HeldInput
	help      help.Model
	gameState core.GameState
	tickRate  int
	shotsDir  string
	quitting  bool
	saved     bool // Whether the current game over has been recorded
}

// helpHeight is the number of rows reserved for the key help footer.
const helpHeight = 1

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpHeight)),
		store:    opts.Store,
		logger:   logger,
		config:   cfg,
		keys:     NewKeyMapper(),
		input:    NewHeldInput(opts.RepeatDelay, opts.HoldWindow),
		help:     help.New(),
		tickRate: DefaultTickRate,
		shotsDir: opts.ScreenshotsDir,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver limitation)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action, time.Now())
	return m, nil
}

// handleResize processes window resize events. The game draws in world
// coordinates scaled to the screen, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the simulation once and schedules the next tick at the
// rate the game asked for.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Frame(now))
	m.gameState = result.State
	if result.TickRate > 0 {
		m.tickRate = result.TickRate
	}

	if m.gameState.GameOver && !m.saved {
		m.recordAttempt()
		m.saved = true
	} else if !m.gameState.GameOver {
		m.saved = false
	}

	return m, tickCmd(m.tickRate)
}

// recordAttempt stores the finished attempt in the history database.
// Failures are logged; play continues regardless.
func (m *Model) recordAttempt() {
	if m.store == nil {
		return
	}
	a := storage.Attempt{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	}
	if r, ok := m.game.(attemptReporter); ok {
		a.Frames = r.Frames()
	}
	if _, err := m.store.SaveAttempt(a); err != nil {
		m.logger.Error("could not record attempt", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.shotsDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotsDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshots directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotsDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
