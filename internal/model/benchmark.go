package model

import (
	"context"
	"fmt"
	"time"

	"github.com/icemelon9/tensortune/pkg/logger"
	"github.com/icemelon9/tensortune/pkg/utils"
)

// BenchmarkOptions controls a decode-latency benchmark.
type BenchmarkOptions struct {
	Warmup int // untimed decode steps before measuring (default 4)
	Steps  int // timed decode steps (default 64)
}

func (o *BenchmarkOptions) applyDefaults() {
	if o.Warmup <= 0 {
		o.Warmup = 4
	}
	if o.Steps <= 0 {
		o.Steps = 64
	}
}

// BenchmarkResult summarizes per-step decode latency.
type BenchmarkResult struct {
	Steps        int     `json:"steps"`
	TotalMs      float64 `json:"total_ms"`
	MeanMs       float64 `json:"mean_ms"`
	P50Ms        float64 `json:"p50_ms"`
	P95Ms        float64 `json:"p95_ms"`
	TokensPerSec float64 `json:"tokens_per_sec"`
}

// Benchmark greedily decodes through the block, feeding each step's
// output back as the next input, and reports per-step latency over the
// timed portion. The block's cache is reset first; warmup plus timed
// steps must fit in it. Cancelling ctx aborts between steps.
func (b *Block) Benchmark(ctx context.Context, opts BenchmarkOptions) (*BenchmarkResult, error) {
	opts.applyDefaults()
	if opts.Warmup+opts.Steps > b.cfg.MaxSeq {
		return nil, fmt.Errorf("model: %d warmup + %d steps exceeds cache capacity %d",
			opts.Warmup, opts.Steps, b.cfg.MaxSeq)
	}

	b.Reset()
	r := utils.NewRandSource(b.cfg.Seed + 2)
	x := randomToken(b.cfg.EmbedDim, r)

	for i := 0; i < opts.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := b.Step(x)
		if err != nil {
			return nil, fmt.Errorf("model: warmup step %d: %w", i, err)
		}
		copy(x, out)
	}

	latencies := make([]float64, 0, opts.Steps)
	for i := 0; i < opts.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		out, err := b.Step(x)
		elapsed := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("model: decode step %d: %w", i, err)
		}
		latencies = append(latencies, float64(elapsed.Nanoseconds())/1e6)
		copy(x, out)
	}

	res := &BenchmarkResult{
		Steps:  opts.Steps,
		MeanMs: utils.Mean(latencies),
		P50Ms:  utils.P50(latencies),
		P95Ms:  utils.P95(latencies),
	}
	for _, l := range latencies {
		res.TotalMs += l
	}
	if res.TotalMs > 0 {
		res.TokensPerSec = float64(opts.Steps) / (res.TotalMs / 1000)
	}

	logger.Info("decode benchmark complete",
		"steps", res.Steps,
		"mean_ms", res.MeanMs,
		"p95_ms", res.P95Ms,
		"tokens_per_sec", res.TokensPerSec)
	return res, nil
}
