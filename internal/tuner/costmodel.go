package tuner

import (
	"errors"
	"fmt"
	"sort"

	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/config"
	"github.com/icemelon9/tensortune/pkg/utils"
)

// CostModelTuner ranks candidates with a learned surrogate instead of
// measuring blindly: it keeps a running mean cost per knob value,
// predicts a candidate's cost as the mean of its per-value components,
// and proposes the most promising points from a random candidate pool.
// An epsilon fraction of proposals stays random to keep exploring.
type CostModelTuner struct {
	sp  *space.Space
	rng *utils.RandSource

	// PoolSize is how many random candidates are ranked per proposal round.
	PoolSize int
	// Epsilon is the fraction of proposals drawn at random.
	Epsilon float64

	stats   map[string]*valueStat
	total   valueStat
	visited map[string]bool
}

type valueStat struct {
	sum   float64
	count int
}

func (s *valueStat) add(cost float64) {
	s.sum += cost
	s.count++
}

func (s *valueStat) mean() (float64, bool) {
	if s.count == 0 {
		return 0, false
	}
	return s.sum / float64(s.count), true
}

// NewCostModelTuner creates a cost-model tuner with default pool size.
func NewCostModelTuner(sp *space.Space, seed int64) *CostModelTuner {
	return &CostModelTuner{
		sp:       sp,
		rng:      utils.NewRandSource(seed),
		PoolSize: 64,
		Epsilon:  0.1,
		stats:    make(map[string]*valueStat),
		visited:  make(map[string]bool),
	}
}

func (t *CostModelTuner) Name() string { return config.TunerCostModel }

func (t *CostModelTuner) Next(n int) ([]space.Configuration, error) {
	pool, err := t.sp.Sample(t.rng, utils.Max(t.PoolSize, n), t.visited)
	if errors.Is(err, space.ErrEmptySpace) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// Nothing learned yet: plain random proposals.
	if t.total.count == 0 {
		if len(pool) > n {
			pool = pool[:n]
		}
		t.mark(pool)
		return pool, nil
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return t.predict(pool[i]) < t.predict(pool[j])
	})

	out := make([]space.Configuration, 0, n)
	for _, cfg := range pool {
		if len(out) >= n {
			break
		}
		// Epsilon-greedy: occasionally take a random candidate from the
		// unranked tail instead of the next best prediction.
		if t.rng.BernoulliBool(t.Epsilon) && len(pool) > n {
			cfg = pool[n+t.rng.Intn(len(pool)-n)]
		}
		if t.visited[cfg.Key()] {
			continue
		}
		t.visited[cfg.Key()] = true
		out = append(out, cfg)
	}
	return out, nil
}

func (t *CostModelTuner) Update(trials []record.Trial) {
	for _, trial := range trials {
		t.visited[trial.Key()] = true
		if !trial.OK() {
			continue
		}
		t.total.add(trial.CostMs)
		for name, value := range trial.Config {
			key := statKey(name, value)
			s, ok := t.stats[key]
			if !ok {
				s = &valueStat{}
				t.stats[key] = s
			}
			s.add(trial.CostMs)
		}
	}
}

// predict estimates a configuration's cost from per-value means.
// Values never seen fall back to the global mean.
func (t *CostModelTuner) predict(cfg space.Configuration) float64 {
	global, _ := t.total.mean()

	sum := 0.0
	n := 0
	for name, value := range cfg.Values() {
		if s, ok := t.stats[statKey(name, value)]; ok {
			if m, known := s.mean(); known {
				sum += m
				n++
				continue
			}
		}
		sum += global
		n++
	}
	if n == 0 {
		return global
	}
	return sum / float64(n)
}

func (t *CostModelTuner) mark(cfgs []space.Configuration) {
	for _, cfg := range cfgs {
		t.visited[cfg.Key()] = true
	}
}

func statKey(name string, value int) string {
	return fmt.Sprintf("%s=%d", name, value)
}
