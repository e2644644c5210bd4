package driver

import (
	"fmt"
	"math"

	"github.com/icemelon9/tensortune/internal/record"
)

// ConvergenceStrategy defines how to detect that tuning has stopped paying off
type ConvergenceStrategy interface {
	// CheckConvergence inspects the trial history and reports whether tuning
	// has converged, with a human-readable reason
	CheckConvergence(trials []record.Trial) (bool, string)
	// Name returns the name of the convergence strategy
	Name() string
}

// ConvergenceConfig holds configuration for convergence detection
type ConvergenceConfig struct {
	// NoImprovementTrials is the number of measured trials without a new best
	// cost before stopping
	NoImprovementTrials int
	// CostTolerance is the absolute tolerance (in ms) for costs to be
	// considered equal
	CostTolerance float64
	// MinTrials is the minimum number of trials before convergence can be
	// detected
	MinTrials int
	// PlateauTrials is the number of trailing trials with similar costs
	// (plateau) before stopping
	PlateauTrials int
}

// DefaultConvergenceConfig returns a default convergence configuration
func DefaultConvergenceConfig() *ConvergenceConfig {
	return &ConvergenceConfig{
		NoImprovementTrials: 64,
		CostTolerance:       0.001,
		MinTrials:           8,
		PlateauTrials:       16,
	}
}

// NoImprovementStrategy detects convergence when no trial has beaten the best
// cost for a while
type NoImprovementStrategy struct {
	config *ConvergenceConfig
}

// NewNoImprovementStrategy creates a new no-improvement convergence strategy
func NewNoImprovementStrategy(config *ConvergenceConfig) *NoImprovementStrategy {
	if config == nil {
		config = DefaultConvergenceConfig()
	}
	return &NoImprovementStrategy{config: config}
}

func (s *NoImprovementStrategy) Name() string {
	return "no_improvement"
}

func (s *NoImprovementStrategy) CheckConvergence(trials []record.Trial) (converged bool, reason string) {
	if len(trials) < s.config.MinTrials {
		return false, ""
	}

	bestCost := math.MaxFloat64
	bestIndex := -1
	for i, tr := range trials {
		if tr.OK() && tr.CostMs < bestCost {
			bestCost = tr.CostMs
			bestIndex = i
		}
	}
	if bestIndex < 0 {
		return false, ""
	}

	trialsSinceBest := len(trials) - 1 - bestIndex
	if trialsSinceBest >= s.config.NoImprovementTrials {
		return true, fmt.Sprintf("no improvement for %d trials (best at trial %d)", trialsSinceBest, bestIndex)
	}

	return false, ""
}

// PlateauStrategy detects convergence when recent costs are all within
// tolerance of each other
type PlateauStrategy struct {
	config *ConvergenceConfig
}

// NewPlateauStrategy creates a new plateau convergence strategy
func NewPlateauStrategy(config *ConvergenceConfig) *PlateauStrategy {
	if config == nil {
		config = DefaultConvergenceConfig()
	}
	return &PlateauStrategy{config: config}
}

func (s *PlateauStrategy) Name() string {
	return "plateau"
}

func (s *PlateauStrategy) CheckConvergence(trials []record.Trial) (converged bool, reason string) {
	if len(trials) < s.config.MinTrials || len(trials) < s.config.PlateauTrials {
		return false, ""
	}

	recent := trials[len(trials)-s.config.PlateauTrials:]
	minCost := math.MaxFloat64
	maxCost := -math.MaxFloat64
	measured := 0
	for _, tr := range recent {
		if !tr.OK() {
			continue
		}
		measured++
		if tr.CostMs < minCost {
			minCost = tr.CostMs
		}
		if tr.CostMs > maxCost {
			maxCost = tr.CostMs
		}
	}
	if measured < 2 {
		return false, ""
	}

	costRange := maxCost - minCost
	if costRange <= s.config.CostTolerance {
		return true, fmt.Sprintf("cost plateaued over %d trials (range: %.6f ms)", s.config.PlateauTrials, costRange)
	}

	return false, ""
}

// CombinedStrategy converges as soon as any member strategy converges
type CombinedStrategy struct {
	strategies []ConvergenceStrategy
}

// NewCombinedStrategy creates a combined strategy from the default members
func NewCombinedStrategy(config *ConvergenceConfig) *CombinedStrategy {
	if config == nil {
		config = DefaultConvergenceConfig()
	}
	return &CombinedStrategy{
		strategies: []ConvergenceStrategy{
			NewNoImprovementStrategy(config),
			NewPlateauStrategy(config),
		},
	}
}

func (s *CombinedStrategy) Name() string {
	return "combined"
}

func (s *CombinedStrategy) CheckConvergence(trials []record.Trial) (converged bool, reason string) {
	for _, strategy := range s.strategies {
		converged, reason := strategy.CheckConvergence(trials)
		if converged {
			return true, fmt.Sprintf("%s: %s", strategy.Name(), reason)
		}
	}
	return false, ""
}

// AddStrategy adds a custom strategy to the combined strategy
func (s *CombinedStrategy) AddStrategy(strategy ConvergenceStrategy) {
	s.strategies = append(s.strategies, strategy)
}
