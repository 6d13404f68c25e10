// Package matchthree adapts the match-three board to the arcade platform:
// it places the board on the terminal screen, feeds mouse and keyboard
// input to it as gestures and renders its pieces.
package matchthree

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matchthree/internal/board"
	"github.com/vovakirdan/matchthree/internal/config"
	"github.com/vovakirdan/matchthree/internal/core"
	"github.com/vovakirdan/matchthree/internal/registry"
)

// hudHeight is the number of rows above the board.
const hudHeight = 2

// Game is a match-three board sized and configured by a preset.
type Game struct {
	preset config.Preset
	cfg    config.MatchThreeConfig
	board  *board.Board
	rng    *rand.Rand
	tick   uint64
	dt     float64

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	boardErr error

	// Keyboard cursor
	cursor board.Cell
	picked bool
}

// Package-level variables for config
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to every new board.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a game for the given preset.
func New(preset config.Preset) *Game {
	return &Game{preset: preset}
}

func init() {
	registry.Register("matchthree", func() registry.Game {
		return New(config.PresetClassic)
	})
	registry.Register("matchthree_mini", func() registry.Game {
		return New(config.PresetMini)
	})
	registry.Register("matchthree_wide", func() registry.Game {
		return New(config.PresetWide)
	})
}

// IDForPreset returns the registry id of the game playing a preset.
func IDForPreset(p config.Preset) string {
	if p == config.PresetClassic {
		return "matchthree"
	}
	return "matchthree_" + string(p)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDForPreset(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.preset {
	case config.PresetMini:
		return "Match Three (Mini)"
	case config.PresetWide:
		return "Match Three (Wide)"
	default:
		return "Match Three"
	}
}

// Reset loads the configuration and builds a fresh board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadMatchThree(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultMatchThreeConfig()
	}
	config.ApplyPreset(&cfg, g.preset)
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid config, using defaults", "error", err)
		cfg = config.DefaultMatchThreeConfig()
		config.ApplyPreset(&cfg, g.preset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.dt = runtime.TickSeconds()
	g.tick = 0
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.paused = false
	g.picked = false
	g.cursor = board.C(0, 0)

	g.checkScreenSize()
	g.newBoard()
}

// Config returns the configuration the current board was built from.
func (g *Game) Config() config.MatchThreeConfig {
	return g.cfg
}

// Board returns the running board. It is nil while the screen is too small.
func (g *Game) Board() *board.Board {
	return g.board
}

// newBoard builds a board centered below the HUD.
func (g *Game) newBoard() {
	g.board = nil
	g.boardErr = nil
	if g.tooSmall {
		return
	}

	geom := g.cfg.BoardGeometry()
	geom = geom.At(core.Pt((g.screenW-geom.Size.X)/2, hudHeight))

	b, err := board.New(board.Options{
		Params:   g.cfg.Params(),
		Geometry: geom,
		Rand:     rand.New(rand.NewSource(g.rng.Int63())),
		Logger:   logger,
	})
	if err != nil {
		// Validate above makes this unreachable for loaded configs.
		logger.Error("cannot build board", "error", err)
		g.boardErr = err
		return
	}
	g.board = b
	logger.Info("new board", "preset", g.preset, "size", g.cfg.Board.Size, "variants", g.cfg.Board.Variants)
}

// checkScreenSize checks if the screen is large enough for board and HUD.
func (g *Game) checkScreenSize() {
	size := g.cfg.BoardGeometry().Size
	g.tooSmall = g.screenW < size.X || g.screenH < size.Y+hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.board == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.paused = false
		g.picked = false
		g.newBoard()
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handlePointer(in.Pointer)
	g.handleKeys(in)
	g.board.Update(g.dt)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Settled: g.board != nil && g.board.Accepting(),
		Paused:  g.paused || g.tooSmall,
	}
}
