package tuner

import (
	"errors"
	"math"
	"sort"

	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/config"
	"github.com/icemelon9/tensortune/pkg/utils"
)

// genome is one individual: per-knob domain positions plus its
// measured cost once known.
type genome struct {
	genes []int
	cost  float64
}

// GeneticTuner evolves a population of schedules: tournament parent
// selection, single-point-per-knob crossover, and point mutation.
// Until the first population is measured, it proposes random points.
type GeneticTuner struct {
	sp  *space.Space
	rng *utils.RandSource

	// PopSize is the number of scored individuals kept per generation.
	// Culling keeps the fittest, so the head of the population acts as
	// the elite set.
	PopSize int
	// MutationProb is the per-gene mutation probability.
	MutationProb float64

	knobs   []space.Knob
	scored  []genome
	pending map[string]genome
	visited map[string]bool
}

// NewGeneticTuner creates a genetic tuner with the default population.
func NewGeneticTuner(sp *space.Space, seed int64) *GeneticTuner {
	return &GeneticTuner{
		sp:           sp,
		rng:          utils.NewRandSource(seed),
		PopSize:      16,
		MutationProb: 0.1,
		knobs:        sp.Knobs(),
		pending:      make(map[string]genome),
		visited:      make(map[string]bool),
	}
}

func (t *GeneticTuner) Name() string { return config.TunerGenetic }

func (t *GeneticTuner) Next(n int) ([]space.Configuration, error) {
	out := make([]space.Configuration, 0, n)

	// Bound the search for fresh points: constrained spaces and long
	// runs can leave very little unvisited.
	budget := 64 * n
	for len(out) < n && budget > 0 {
		budget--

		var g genome
		if len(t.scored) < t.PopSize {
			g = t.randomGenome()
		} else {
			g = t.breed()
		}

		cfg, err := t.sp.FromIndices(g.genes)
		if errors.Is(err, space.ErrEmptySpace) {
			continue // constraint filtered this point out
		}
		if err != nil {
			return nil, err
		}
		if t.visited[cfg.Key()] {
			continue
		}

		t.visited[cfg.Key()] = true
		t.pending[cfg.Key()] = g
		out = append(out, cfg)
	}

	return out, nil
}

func (t *GeneticTuner) Update(trials []record.Trial) {
	for _, trial := range trials {
		key := trial.Key()
		g, ok := t.pending[key]
		if !ok {
			continue
		}
		delete(t.pending, key)

		if trial.OK() {
			g.cost = trial.CostMs
		} else {
			g.cost = math.Inf(1)
		}
		t.scored = append(t.scored, g)
	}

	// Cull to the fittest once a full generation has been measured.
	if len(t.scored) > t.PopSize {
		sort.SliceStable(t.scored, func(i, j int) bool {
			return t.scored[i].cost < t.scored[j].cost
		})
		t.scored = t.scored[:t.PopSize]
	}
}

func (t *GeneticTuner) randomGenome() genome {
	genes := make([]int, len(t.knobs))
	for i, k := range t.knobs {
		genes[i] = t.rng.Intn(len(k.Values))
	}
	return genome{genes: genes}
}

// breed produces a child from two tournament-selected parents.
func (t *GeneticTuner) breed() genome {
	p1 := t.tournament()
	p2 := t.tournament()

	genes := make([]int, len(t.knobs))
	for i := range genes {
		if t.rng.BernoulliBool(0.5) {
			genes[i] = p1.genes[i]
		} else {
			genes[i] = p2.genes[i]
		}
		if t.rng.BernoulliBool(t.MutationProb) {
			genes[i] = t.rng.Intn(len(t.knobs[i].Values))
		}
	}
	return genome{genes: genes}
}

// tournament picks the fitter of two random scored individuals.
func (t *GeneticTuner) tournament() genome {
	a := t.scored[t.rng.Intn(len(t.scored))]
	b := t.scored[t.rng.Intn(len(t.scored))]
	if a.cost <= b.cost {
		return a
	}
	return b
}
