package sim

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/matchthree/internal/config"
)

func testOptions(preset config.Preset, seed int64) Options {
	cfg := config.DefaultMatchThreeConfig()
	config.ApplyPreset(&cfg, preset)
	return Options{
		Config:   cfg,
		Seed:     seed,
		Ticks:    3000,
		TickRate: 60,
		Gesture:  0.2,
	}
}

func TestRunSettles(t *testing.T) {
	for _, preset := range config.Presets() {
		for seed := int64(1); seed <= 3; seed++ {
			res, err := Run(testOptions(preset, seed))
			if err != nil {
				t.Fatalf("%s seed %d: %v", preset, seed, err)
			}
			if !res.Settled {
				t.Errorf("%s seed %d: not settled", preset, seed)
			}
			if res.Attempts == 0 || res.Stats.Swaps == 0 {
				t.Errorf("%s seed %d: no gestures landed (%d attempts, %+v)", preset, seed, res.Attempts, res.Stats)
			}
			for y, row := range res.Rows {
				if strings.Contains(row, ".") {
					t.Errorf("%s seed %d: row %d has holes: %q", preset, seed, y, row)
				}
			}
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, errA := Run(testOptions(config.PresetMini, 99))
	b, errB := Run(testOptions(config.PresetMini, 99))
	if errA != nil || errB != nil {
		t.Fatalf("errors: %v, %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave different results:\n%+v\n%+v", a, b)
	}
}

func TestRunWithoutGestures(t *testing.T) {
	opts := testOptions(config.PresetClassic, 5)
	opts.Gesture = 0
	opts.Ticks = 0

	res, err := Run(opts)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Attempts != 0 || res.Stats.Swaps != 0 {
		t.Errorf("no gestures expected, got %d attempts and %d swaps", res.Attempts, res.Stats.Swaps)
	}
	if res.Stats.Cleared < 3*res.Stats.Matches {
		t.Errorf("cleared %d pieces in %d matches", res.Stats.Cleared, res.Stats.Matches)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	opts := testOptions(config.PresetClassic, 1)
	opts.Config.Board.Size = 2
	if _, err := Run(opts); err == nil {
		t.Error("invalid config should fail")
	}

	opts = testOptions(config.PresetClassic, 1)
	opts.Ticks = -1
	if _, err := Run(opts); err == nil {
		t.Error("negative ticks should fail")
	}
}
