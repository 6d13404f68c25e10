package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matchthree/internal/sim"
)

var (
	flagTicks       int
	flagGesture     float64
	flagSimPreset   string
	flagQuietResult bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a board headlessly with random swaps",
	Long: `Builds a board from the configuration and feeds it random drag
gestures for the given number of ticks, then lets it settle. Prints the
counters and the final grid, one letter per piece kind.

Exits with an error when the board does not come back to rest.

Examples:
  matchthree simulate
  matchthree simulate --preset wide --ticks 20000 --seed 7
  matchthree simulate --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 6000, "Ticks of random input")
	simulateCmd.Flags().Float64Var(&flagGesture, "gesture-rate", 0.1, "Chance per idle tick to try a swap")
	simulateCmd.Flags().StringVar(&flagSimPreset, "preset", "", "Apply a preset: classic, mini, wide")
	simulateCmd.Flags().BoolVar(&flagQuietResult, "quiet", false, "Do not print the final grid")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(flagSimPreset)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, err := sim.Run(sim.Options{
		Config:   cfg,
		Seed:     seed,
		Ticks:    flagTicks,
		TickRate: flagFPS,
		Gesture:  flagGesture,
		Logger:   logger,
	})
	if res.Rows == nil {
		return err
	}

	fmt.Printf("seed      %d\n", seed)
	fmt.Printf("ticks     %d\n", res.Ticks)
	fmt.Printf("gestures  %d\n", res.Attempts)
	fmt.Printf("swaps     %d\n", res.Stats.Swaps)
	fmt.Printf("matches   %d\n", res.Stats.Matches)
	fmt.Printf("cleared   %d\n", res.Stats.Cleared)
	fmt.Printf("spawned   %d\n", res.Stats.Spawned)
	fmt.Printf("settled   %v\n", res.Settled)
	if !flagQuietResult {
		fmt.Println()
		for _, row := range res.Rows {
			fmt.Println("  " + row)
		}
	}
	return err
}
