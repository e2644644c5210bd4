package tuner

import (
	"errors"

	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/config"
	"github.com/icemelon9/tensortune/pkg/utils"
)

// RandomTuner samples the space uniformly without replacement.
type RandomTuner struct {
	sp      *space.Space
	rng     *utils.RandSource
	visited map[string]bool
}

// NewRandomTuner creates a random tuner with the given sampling seed.
func NewRandomTuner(sp *space.Space, seed int64) *RandomTuner {
	return &RandomTuner{
		sp:      sp,
		rng:     utils.NewRandSource(seed),
		visited: make(map[string]bool),
	}
}

func (t *RandomTuner) Name() string { return config.TunerRandom }

func (t *RandomTuner) Next(n int) ([]space.Configuration, error) {
	cfgs, err := t.sp.Sample(t.rng, n, t.visited)
	if errors.Is(err, space.ErrEmptySpace) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// Mark proposals immediately so a batch is never re-proposed
	// before its results come back.
	for _, cfg := range cfgs {
		t.visited[cfg.Key()] = true
	}
	return cfgs, nil
}

func (t *RandomTuner) Update(trials []record.Trial) {
	for _, trial := range trials {
		t.visited[trial.Key()] = true
	}
}
