package model

import (
	"fmt"

	"github.com/icemelon9/tensortune/internal/kernel"
	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/logger"
	"github.com/icemelon9/tensortune/pkg/utils"
)

type shapeKey struct {
	m, k, n int
}

// Schedules resolves a gemm shape to the configuration its dense layers
// should run with. Tuned configurations come from a tuning log; any
// shape the tuned schedule cannot divide falls back to a per-shape
// default. Resolution is cached, so lookups after the first are a map
// hit.
type Schedules struct {
	tuned    space.Configuration
	hasTuned bool

	resolved map[shapeKey]space.Configuration
}

// DefaultSchedules returns a registry with no tuned entries; every
// shape resolves to its default schedule.
func DefaultSchedules() *Schedules {
	return &Schedules{resolved: make(map[shapeKey]space.Configuration)}
}

// LoadTuned reads a tuning log and adopts its best configuration for
// every shape it validates on. An unreadable log or one with no
// successful trial is an error; deployment should not silently run
// untuned.
func LoadTuned(logPath string) (*Schedules, error) {
	best, err := record.BestFromLog(logPath)
	if err != nil {
		return nil, fmt.Errorf("model: load tuned schedules: %w", err)
	}
	s := DefaultSchedules()
	s.tuned = best.Configuration()
	s.hasTuned = true
	logger.Info("loaded tuned schedule",
		"log", logPath,
		"config", s.tuned.Key(),
		"cost_ms", best.CostMs)
	return s, nil
}

// For returns the configuration to use for an (m x k) by (k x n) gemm.
func (s *Schedules) For(m, k, n int) space.Configuration {
	key := shapeKey{m: m, k: k, n: n}
	if cfg, ok := s.resolved[key]; ok {
		return cfg
	}

	cfg := defaultSchedule(m, k, n)
	if s.hasTuned && kernel.ValidSchedule(s.tuned, m, k, n) {
		cfg = s.tuned
	}
	s.resolved[key] = cfg
	return cfg
}

// Tuned reports whether any tuned configuration was loaded, and which.
func (s *Schedules) Tuned() (space.Configuration, bool) {
	return s.tuned, s.hasTuned
}

// defaultSchedule picks conservative tile factors that always divide
// the shape: the largest divisor of each extent up to a small cap.
func defaultSchedule(m, k, n int) space.Configuration {
	return space.NewConfiguration(map[string]int{
		"tile_m":   largestFactorUpTo(m, 8),
		"tile_n":   largestFactorUpTo(n, 32),
		"tile_k":   largestFactorUpTo(k, 16),
		"unroll":   1,
		"pack_b":   0,
		"parallel": 0,
		"fuse":     1,
	})
}

func largestFactorUpTo(n, limit int) int {
	best := 1
	for _, f := range utils.Factors(n) {
		if f <= limit && f > best {
			best = f
		}
	}
	return best
}
