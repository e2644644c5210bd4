// Package driver runs the tuning loop for one task: it asks the tuner
// for configuration batches, measures them, records every trial to the
// log and history, feeds results back into the tuner, and stops on
// budget, convergence, or cancellation.
package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/icemelon9/tensortune/internal/kernel"
	"github.com/icemelon9/tensortune/internal/measure"
	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/internal/tuner"
	"github.com/icemelon9/tensortune/pkg/config"
	"github.com/icemelon9/tensortune/pkg/logger"
)

// Progress reports the loop's state after each measured batch.
type Progress struct {
	TrialsDone   int
	TrialsFailed int
	BestCostMs   float64
	BestConfig   map[string]int
}

// ProgressFunc receives progress updates; it is called between batches
// on the driver's goroutine.
type ProgressFunc func(Progress)

// Result contains the outcome of one tuning run.
type Result struct {
	BestConfig        space.Configuration
	BestCostMs        float64
	TotalTrials       int
	FailedTrials      int
	Converged         bool
	ConvergenceReason string
	Duration          time.Duration
}

// Driver orchestrates one tuning task.
type Driver struct {
	task        *config.Task
	kernel      kernel.Kernel
	tuner       tuner.Tuner
	measurer    *measure.Measurer
	history     *record.History
	log         *record.Writer
	convergence ConvergenceStrategy
	progress    ProgressFunc
	batchSize   int
	maxTrials   int
}

// Option customizes a driver.
type Option func(*Driver)

// WithProgress installs a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(d *Driver) { d.progress = fn }
}

// WithConvergence overrides the convergence strategy.
func WithConvergence(s ConvergenceStrategy) Option {
	return func(d *Driver) { d.convergence = s }
}

// New assembles a driver for the task. The log writer may be nil, in
// which case trials are kept in memory only.
func New(task *config.Task, log *record.Writer, opts ...Option) (*Driver, error) {
	if task == nil {
		return nil, fmt.Errorf("driver: task is required")
	}

	k, err := kernel.New(task, task.Tuning.Seed)
	if err != nil {
		return nil, err
	}
	sp, err := k.Space()
	if err != nil {
		return nil, fmt.Errorf("driver: declare space for %s: %w", task.Name, err)
	}
	tn, err := tuner.New(task.Tuning.Tuner, sp, task.Tuning.Seed)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		task:      task,
		kernel:    k,
		tuner:     tn,
		measurer:  measure.New(k, measure.OptionsFromTask(task)),
		history:   record.NewHistory(),
		log:       log,
		batchSize: task.Tuning.BatchSize,
		maxTrials: task.Tuning.Trials,
	}
	if task.Tuning.EarlyStop > 0 {
		d.convergence = NewNoImprovementStrategy(&ConvergenceConfig{
			NoImprovementTrials: task.Tuning.EarlyStop,
			CostTolerance:       0.001,
			MinTrials:           task.Tuning.EarlyStop,
			PlateauTrials:       task.Tuning.EarlyStop,
		})
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Warmup resumes tuner state from previously logged trials so a run can
// continue an earlier session's log without repeating configurations.
func (d *Driver) Warmup(trials []record.Trial) {
	for _, tr := range trials {
		d.history.Append(tr)
	}
	d.tuner.Update(trials)
}

// Run executes the tuning loop until the trial budget is exhausted, the
// space runs out, convergence is detected, or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	log := logger.With("task", d.task.Name, "tuner", d.tuner.Name())
	log.Info("tuning started",
		"kernel", d.kernel.Name(),
		"trials", d.maxTrials,
		"batch_size", d.batchSize)

	result := &Result{}
	failed := 0
	for _, tr := range d.history.Snapshot() {
		if !tr.OK() {
			failed++
		}
	}
	for d.history.Len() < d.maxTrials {
		if err := ctx.Err(); err != nil {
			result.Converged = false
			result.ConvergenceReason = "cancelled"
			break
		}

		n := d.batchSize
		if remaining := d.maxTrials - d.history.Len(); remaining < n {
			n = remaining
		}
		cfgs, err := d.tuner.Next(n)
		if err != nil {
			return nil, fmt.Errorf("driver: propose batch: %w", err)
		}
		if len(cfgs) == 0 {
			result.Converged = true
			result.ConvergenceReason = "search space exhausted"
			break
		}

		results := d.measurer.Measure(ctx, cfgs)
		trials := make([]record.Trial, len(results))
		for i, r := range results {
			trials[i] = record.NewTrial(r.Config, r.CostMs, r.Err)
			if !trials[i].OK() {
				failed++
			}
			d.history.Append(trials[i])
			if d.log != nil {
				if err := d.log.Append(trials[i]); err != nil {
					return nil, fmt.Errorf("driver: append trial: %w", err)
				}
			}
		}
		d.tuner.Update(trials)

		if best, err := d.history.Best(); err == nil {
			log.Debug("batch measured",
				"trials_done", d.history.Len(),
				"best_cost_ms", best.CostMs)
			if d.progress != nil {
				d.progress(Progress{
					TrialsDone:   d.history.Len(),
					TrialsFailed: failed,
					BestCostMs:   best.CostMs,
					BestConfig:   best.Config,
				})
			}
		}

		if d.convergence != nil {
			if converged, reason := d.convergence.CheckConvergence(d.history.Snapshot()); converged {
				result.Converged = true
				result.ConvergenceReason = reason
				break
			}
		}
	}
	if result.ConvergenceReason == "" && d.history.Len() >= d.maxTrials {
		result.ConvergenceReason = "trial budget exhausted"
	}

	result.TotalTrials = d.history.Len()
	result.FailedTrials = failed
	result.Duration = time.Since(start)

	best, err := d.history.Best()
	if err != nil {
		log.Warn("tuning finished without a valid trial", "trials", result.TotalTrials)
		return result, err
	}
	result.BestConfig = best.Configuration()
	result.BestCostMs = best.CostMs

	log.Info("tuning finished",
		"trials", result.TotalTrials,
		"failed", result.FailedTrials,
		"best_cost_ms", result.BestCostMs,
		"converged", result.Converged,
		"reason", result.ConvergenceReason,
		"duration", result.Duration)
	return result, nil
}

// History exposes the trials measured so far.
func (d *Driver) History() *record.History {
	return d.history
}

// Kernel exposes the kernel under tuning.
func (d *Driver) Kernel() kernel.Kernel {
	return d.kernel
}
