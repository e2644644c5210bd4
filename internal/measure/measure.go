// Package measure turns configurations into trial results: it builds an
// executable artifact for each configuration, times repeated runs, and
// optionally validates the output against the kernel's reference
// implementation.
package measure

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/icemelon9/tensortune/internal/kernel"
	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/config"
)

// Options controls how a single trial is measured.
type Options struct {
	Warmup       int
	Repeats      int
	MinMeasure   time.Duration
	Timeout      time.Duration
	Validate     bool
	ToleranceAbs float64
	Parallel     int
}

// OptionsFromTask maps a task's measure and tuning settings onto Options.
func OptionsFromTask(t *config.Task) Options {
	return Options{
		Warmup:       t.Measure.Warmup,
		Repeats:      t.Measure.Repeats,
		MinMeasure:   time.Duration(t.Measure.MinMeasureMs * float64(time.Millisecond)),
		Timeout:      time.Duration(t.Measure.TimeoutMs) * time.Millisecond,
		Validate:     t.Measure.Validate,
		ToleranceAbs: t.Measure.ToleranceAbs,
		Parallel:     t.Tuning.Parallel,
	}
}

// Result is the outcome of measuring one configuration.
type Result struct {
	Config space.Configuration
	CostMs float64
	Err    error
}

// Measurer measures configurations of one kernel.
type Measurer struct {
	kernel kernel.Kernel
	opts   Options

	refOnce sync.Once
	ref     []float32
}

// New creates a measurer for the given kernel.
func New(k kernel.Kernel, opts Options) *Measurer {
	if opts.Warmup < 0 {
		opts.Warmup = 0
	}
	if opts.Repeats <= 0 {
		opts.Repeats = 1
	}
	if opts.Parallel <= 0 {
		opts.Parallel = 1
	}
	return &Measurer{kernel: k, opts: opts}
}

// reference computes the kernel's expected output once.
func (m *Measurer) reference() []float32 {
	m.refOnce.Do(func() {
		m.ref = m.kernel.Reference()
	})
	return m.ref
}

// MeasureOne builds and times a single configuration. Build failures,
// validation failures and timeouts are reported in Result.Err; the
// caller records them as failed trials and moves on.
func (m *Measurer) MeasureOne(ctx context.Context, cfg space.Configuration) Result {
	res := Result{Config: cfg}

	if m.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.opts.Timeout)
		defer cancel()
	}

	art, err := m.kernel.Build(cfg)
	if err != nil {
		res.Err = fmt.Errorf("build: %w", err)
		return res
	}

	// Warmup runs are untimed. The artifact itself is opaque, so
	// cancellation is only observed between runs.
	for i := 0; i < m.opts.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			res.Err = fmt.Errorf("measure: %w", err)
			return res
		}
		art.Run()
	}

	var total time.Duration
	runs := 0
	for runs < m.opts.Repeats || (m.opts.MinMeasure > 0 && total < m.opts.MinMeasure) {
		if err := ctx.Err(); err != nil {
			res.Err = fmt.Errorf("measure: %w", err)
			return res
		}
		start := time.Now()
		art.Run()
		total += time.Since(start)
		runs++
	}
	res.CostMs = float64(total) / float64(runs) / float64(time.Millisecond)

	if m.opts.Validate {
		diff := kernel.MaxAbsDiff(art.Output, m.reference())
		if diff > m.opts.ToleranceAbs {
			res.Err = fmt.Errorf("validate: max abs diff %g exceeds tolerance %g", diff, m.opts.ToleranceAbs)
			return res
		}
	}

	return res
}

// Measure measures a batch of configurations, up to opts.Parallel at a
// time. Results are returned in input order regardless of completion
// order, so trial logs stay deterministic.
func (m *Measurer) Measure(ctx context.Context, cfgs []space.Configuration) []Result {
	results := make([]Result, len(cfgs))

	if m.opts.Parallel == 1 {
		for i, cfg := range cfgs {
			results[i] = m.MeasureOne(ctx, cfg)
		}
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Parallel)
	for i, cfg := range cfgs {
		g.Go(func() error {
			results[i] = m.MeasureOne(gctx, cfg)
			return nil
		})
	}
	// Workers never return errors; they record them per result.
	_ = g.Wait()
	return results
}
