// Package sim drives a board headlessly with random gestures. It is used by
// the simulate command to check that boards always come back to rest.
package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matchthree/internal/board"
	"github.com/vovakirdan/matchthree/internal/config"
	"github.com/vovakirdan/matchthree/internal/core"
)

// ErrNotSettled is returned when the board is still resolving after the last tick.
var ErrNotSettled = errors.New("sim: board did not settle")

// Options configures a simulation run.
type Options struct {
	Config   config.MatchThreeConfig
	Seed     int64
	Ticks    int     // Ticks to run before draining
	TickRate int     // Ticks per simulated second
	Gesture  float64 // Chance per idle tick to attempt a swap
	Logger   *log.Logger
}

// Result summarizes a finished run.
type Result struct {
	Ticks    int      // Ticks simulated, draining included
	Attempts int      // Gestures tried
	Stats    board.Stats
	Rows     []string // Final grid, see board.Board.Rows
	Settled  bool
}

// minDrain is the least number of ticks a board gets to settle after input stops.
const minDrain = 6000

// directions lists the four swap directions.
var directions = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Run plays opts.Ticks ticks of random gestures, then keeps updating without
// input until the board settles or the drain budget is spent.
func Run(opts Options) (Result, error) {
	if err := opts.Config.Validate(); err != nil {
		return Result{}, fmt.Errorf("sim: %w", err)
	}
	if opts.Ticks < 0 {
		return Result{}, fmt.Errorf("sim: negative tick count %d", opts.Ticks)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := core.RuntimeConfig{TickRate: opts.TickRate}
	dt := rt.TickSeconds()

	rng := rand.New(rand.NewSource(opts.Seed))
	b, err := board.New(board.Options{
		Params:   opts.Config.Params(),
		Geometry: opts.Config.BoardGeometry(),
		Rand:     rand.New(rand.NewSource(rng.Int63())),
		Logger:   logger,
	})
	if err != nil {
		return Result{}, fmt.Errorf("sim: %w", err)
	}

	var res Result
	geom := b.Geometry()
	n := b.Size()
	for ; res.Ticks < opts.Ticks; res.Ticks++ {
		if b.Accepting() && rng.Float64() < opts.Gesture {
			from := board.C(rng.Intn(n), rng.Intn(n))
			d := directions[rng.Intn(len(directions))]
			to := from.Add(d[0], d[1])

			res.Attempts++
			b.OnTouch(geom.CellCenter(from))
			// Off-grid neighbors still produce a drag; the board ignores it.
			b.OnDrag(geom.CellCenter(to))
			logger.Debug("gesture", "tick", res.Ticks, "from", from, "to", to)
		}
		b.Update(dt)
	}

	for limit := res.Ticks + max(opts.Ticks, minDrain); !b.Accepting() && res.Ticks < limit; res.Ticks++ {
		b.Update(dt)
	}

	res.Stats = b.Stats()
	res.Rows = b.Rows()
	res.Settled = b.Accepting()
	logger.Info("simulation finished",
		"ticks", res.Ticks,
		"attempts", res.Attempts,
		"swaps", res.Stats.Swaps,
		"matches", res.Stats.Matches,
		"cleared", res.Stats.Cleared,
	)
	if !res.Settled {
		return res, fmt.Errorf("%w after %d ticks (phase %s)", ErrNotSettled, res.Ticks, b.Phase())
	}
	return res, nil
}
