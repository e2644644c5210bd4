package tuner

import (
	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/config"
)

// GridTuner enumerates the space exhaustively in index order, skipping
// configurations already measured so a resumed run continues where the
// log left off.
type GridTuner struct {
	sp      *space.Space
	cursor  int
	visited map[string]bool
}

// NewGridTuner creates a grid tuner starting at index zero.
func NewGridTuner(sp *space.Space) *GridTuner {
	return &GridTuner{
		sp:      sp,
		visited: make(map[string]bool),
	}
}

func (t *GridTuner) Name() string { return config.TunerGrid }

func (t *GridTuner) Next(n int) ([]space.Configuration, error) {
	out := make([]space.Configuration, 0, n)
	for len(out) < n && t.cursor < t.sp.Size() {
		cfg, err := t.sp.At(t.cursor)
		if err != nil {
			return nil, err
		}
		t.cursor++
		if t.visited[cfg.Key()] {
			continue
		}
		t.visited[cfg.Key()] = true
		out = append(out, cfg)
	}
	return out, nil
}

func (t *GridTuner) Update(trials []record.Trial) {
	for _, trial := range trials {
		t.visited[trial.Key()] = true
	}
}
