// Package scroller implements Sky Scroller, a side-scrolling obstacle
// avoidance game. The player climbs and dives to dodge obstacles while
// the frame rate, obstacle speed and obstacle density ramp up over time.
package scroller

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-scroller/internal/config"
	"github.com/vovakirdan/sky-scroller/internal/core"
	"github.com/vovakirdan/sky-scroller/internal/highscore"
	"github.com/vovakirdan/sky-scroller/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "skyscroller"

// Phase is the controller's top-level state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseDying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An unknown value is
// rejected and leaves the current preset in place.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// Options wires the controller's collaborators. Zero values get defaults:
// the config is loaded on Reset, the best score is kept in memory and
// logs are discarded.
type Options struct {
	Config  *config.ScrollerConfig
	Best    *highscore.Tracker
	Logger  *log.Logger
	Sprites *SpriteSet
}

// Game is the per-frame loop controller.
type Game struct {
	opts    Options
	cfg     config.ScrollerConfig
	runtime core.RuntimeConfig

	player      *Player
	field       *ObstacleField
	progression *Progression
	death       *DeathAnimation
	best        *highscore.Tracker
	sprites     *SpriteSet
	logger      *log.Logger
	rng         *rand.Rand // Restart heights and per-attempt obstacle seeds

	phase        Phase
	neutralCount float64
	sprite       Orientation
	frames       int // Frames played in the current attempt
	attempt      int
	newBest      bool
	saveErr      error
	collision    Collision
}

// New creates a new Sky Scroller instance with default collaborators.
func New() *Game {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a game with injected collaborators.
func NewWithOptions(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	best := opts.Best
	if best == nil {
		best = highscore.NewTracker(&highscore.MemoryBackend{}, logger)
	}
	return &Game{opts: opts, best: best, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Scroller"
}

// Reset loads the configuration and starts the first attempt with the
// player resting on the bottom barrier.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.sprites = g.opts.Sprites
	if g.sprites == nil {
		g.sprites = NewSpriteSet(g.cfg.Obstacles.Variants)
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.player = NewPlayer(g.cfg, g.cfg.Player.X, g.cfg.YBottomBarrier())
	g.field = NewObstacleField(g.cfg, runtime.Seed)
	g.progression = NewProgression(g.cfg)
	g.attempt = 0
	g.startAttempt()
}

func (g *Game) loadConfig() config.ScrollerConfig {
	if g.opts.Config != nil {
		return *g.opts.Config
	}
	cfg, err := config.LoadScroller(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
	}
	if difficultyPreset != "" {
		config.ApplyScrollerPreset(&cfg, difficultyPreset)
	}
	return cfg
}

func (g *Game) startAttempt() {
	g.attempt++
	g.phase = PhasePlaying
	g.neutralCount = 0
	g.sprite = OrientationNeutral
	g.frames = 0
	g.newBest = false
	g.saveErr = nil
	g.death = nil
	g.collision = Collision{}
	g.logger.Debug("attempt started", "attempt", g.attempt, "y", g.player.Y)
}

// prepareNewGame soft-resets every per-attempt value for a retry.
func (g *Game) prepareNewGame() {
	g.player.PrepareNewGame(g.restartY())
	g.field.Reset(g.rng.Int63())
	g.startAttempt()
}

// restartY places retries in the middle half of the viewport when random
// restarts are on, otherwise on the bottom barrier.
func (g *Game) restartY() int {
	bottom := g.cfg.YBottomBarrier()
	if !g.cfg.Player.RandomRestart {
		return bottom
	}
	h := g.cfg.Viewport.Height
	y := h/4 + g.rng.Intn(max(1, h/2))
	return core.Clamp(y, 0, bottom)
}

// Step advances the game by one frame. The returned TickRate is the frame
// rate the host should pace the next frame at.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.player == nil {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhasePlaying:
		g.stepPlaying(in)
	case PhasePaused:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionPause) {
			g.phase = PhasePlaying
		}
	case PhaseDying:
		g.death.Step(g.player)
		g.sprite = g.death.Sprite()
		if g.death.Done() {
			g.phase = PhaseGameOver
		}
	case PhaseGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.prepareNewGame()
		}
	}

	return core.StepResult{State: g.State(), TickRate: g.TickRate()}
}

// stepPlaying runs one frame in a fixed order: score, input dispatch,
// progression, obstacle movement, collision.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.phase = PhasePaused
		return
	}

	p := g.player
	p.Score.IncreaseScore(p.Difficulty.Clock.PerFrame())

	res := Dispatch(p, Intent{
		Up:   in.Has(core.ActionUp),
		Down: in.Has(core.ActionDown),
	}, FrameContext{
		FpsOverMin:   p.Difficulty.FpsOverMin(),
		NeutralCount: g.neutralCount,
		HoverLimit:   g.cfg.Player.HoverLimit,
	})
	g.neutralCount = res.NeutralCount
	g.sprite = res.Sprite

	ev := g.progression.Tick(p, g.field)
	if ev.LevelUp {
		g.logger.Debug("level up",
			"level", p.Score.Level,
			"fps", p.Difficulty.Clock.Current(),
			"obstacle_speed", p.Difficulty.ObstacleSpeed)
	}

	g.field.Advance(p.Difficulty.ObstacleSpeed, p.Score.Level)
	g.frames++

	if c, hit := FindCollision(p, g.field.Obstacles()); hit {
		g.endAttempt(c)
	}
}

// endAttempt commits the score and starts the death animation.
func (g *Game) endAttempt(c Collision) {
	g.collision = c
	g.phase = PhaseDying
	g.death = NewDeathAnimation(g.cfg.Death)
	g.sprite = g.death.Sprite()

	score := g.player.Score.Score
	g.newBest, g.saveErr = g.best.Commit(score)
	g.logger.Info("attempt over",
		"attempt", g.attempt,
		"score", int(score),
		"level", g.player.Score.Level,
		"frames", g.frames)
}

// TickRate returns the current target frame rate.
func (g *Game) TickRate() int {
	if g.player == nil {
		return 0
	}
	return g.player.Difficulty.Clock.Current()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.player == nil {
		return core.GameState{HighScore: int(g.best.Best())}
	}
	return core.GameState{
		Score:     int(g.player.Score.Score),
		Level:     g.player.Score.Level,
		HighScore: int(g.best.Best()),
		GameOver:  g.phase == PhaseGameOver,
		Dying:     g.phase == PhaseDying,
		Paused:    g.phase == PhasePaused,
	}
}

// Phase returns the controller phase.
func (g *Game) Phase() Phase { return g.phase }

// Player returns the player of the current attempt.
func (g *Game) Player() *Player { return g.player }

// Field returns the live obstacles.
func (g *Game) Field() *ObstacleField { return g.field }

// Frames returns how many frames the current attempt has been played.
func (g *Game) Frames() int { return g.frames }

// Attempt returns the 1-based number of the current attempt.
func (g *Game) Attempt() int { return g.attempt }

// NewBest reports whether the last finished attempt set a new best score.
func (g *Game) NewBest() bool { return g.newBest }

// SaveError returns the error from persisting the last best score, if any.
func (g *Game) SaveError() error { return g.saveErr }

// LastCollision returns the hit that ended the last attempt.
func (g *Game) LastCollision() Collision { return g.collision }

// Config returns the configuration in use.
func (g *Game) Config() config.ScrollerConfig { return g.cfg }

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
