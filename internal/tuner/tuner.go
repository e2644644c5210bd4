// Package tuner proposes configurations to measure. Each tuner walks
// the declared search space with a different strategy and learns from
// measured trials fed back through Update.
package tuner

import (
	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/config"
)

// Tuner proposes configurations and consumes measured results.
type Tuner interface {
	// Next proposes up to n unvisited configurations. A short or empty
	// batch means the space is exhausted; the driver stops then.
	Next(n int) ([]space.Configuration, error)

	// Update feeds measured trials back into the tuner's state.
	Update(trials []record.Trial)

	// Name returns the tuner's registered name.
	Name() string
}

// New creates a tuner by its registered name.
func New(name string, sp *space.Space, seed int64) (Tuner, error) {
	switch name {
	case config.TunerRandom:
		return NewRandomTuner(sp, seed), nil
	case config.TunerGrid:
		return NewGridTuner(sp), nil
	case config.TunerGenetic:
		return NewGeneticTuner(sp, seed), nil
	case config.TunerCostModel:
		return NewCostModelTuner(sp, seed), nil
	default:
		return nil, &UnknownTunerError{Name: name}
	}
}

// UnknownTunerError indicates an unregistered tuner name.
type UnknownTunerError struct {
	Name string
}

func (e *UnknownTunerError) Error() string {
	return "unknown tuner: " + e.Name
}
