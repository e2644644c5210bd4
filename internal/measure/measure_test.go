package measure

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/icemelon9/tensortune/internal/kernel"
	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/config"
)

// stubKernel lets tests control artifact behavior directly.
type stubKernel struct {
	buildErr error
	runDelay time.Duration
	output   []float32
	refOut   []float32
}

func (s *stubKernel) Name() string { return "stub" }

func (s *stubKernel) Space() (*space.Space, error) {
	return space.Define([]space.Knob{space.Flag("x")}, nil)
}

func (s *stubKernel) DefaultConfig() space.Configuration {
	return space.NewConfiguration(map[string]int{"x": 0})
}

func (s *stubKernel) Build(cfg space.Configuration) (*kernel.Artifact, error) {
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	return &kernel.Artifact{
		Run: func() {
			if s.runDelay > 0 {
				time.Sleep(s.runDelay)
			}
		},
		Output: s.output,
	}, nil
}

func (s *stubKernel) Reference() []float32 { return s.refOut }

func newMatMulKernel(t *testing.T) kernel.Kernel {
	t.Helper()
	task := &config.Task{
		Kernel: config.KernelMatMul,
		Shape:  config.Shape{M: 16, K: 16, N: 16},
		Tuning: config.Tuning{Tuner: config.TunerRandom, Trials: 1},
	}
	task.ApplyDefaults()
	k, err := kernel.New(task, 1)
	if err != nil {
		t.Fatalf("kernel.New failed: %v", err)
	}
	return k
}

func TestMeasureOne(t *testing.T) {
	k := newMatMulKernel(t)
	m := New(k, Options{Warmup: 1, Repeats: 2, Validate: true, ToleranceAbs: 1e-4})

	res := m.MeasureOne(context.Background(), k.DefaultConfig())
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.CostMs < 0 {
		t.Errorf("cost = %f, want >= 0", res.CostMs)
	}
	if res.Config.Key() != k.DefaultConfig().Key() {
		t.Errorf("result config = %s", res.Config.Key())
	}
}

func TestMeasureOneBuildError(t *testing.T) {
	k := newMatMulKernel(t)
	m := New(k, Options{Repeats: 1})

	bad := space.NewConfiguration(map[string]int{"tile_m": 3, "tile_n": 4, "tile_k": 4, "unroll": 1})
	res := m.MeasureOne(context.Background(), bad)
	if res.Err == nil {
		t.Fatal("expected build error")
	}
	if !strings.Contains(res.Err.Error(), "build") {
		t.Errorf("error not tagged as build failure: %v", res.Err)
	}
}

func TestMeasureOneValidationFailure(t *testing.T) {
	stub := &stubKernel{
		output: []float32{1, 2, 3},
		refOut: []float32{1, 2, 4},
	}
	m := New(stub, Options{Repeats: 1, Validate: true, ToleranceAbs: 1e-6})

	res := m.MeasureOne(context.Background(), stub.DefaultConfig())
	if res.Err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(res.Err.Error(), "validate") {
		t.Errorf("error not tagged as validation failure: %v", res.Err)
	}
}

func TestMeasureOneTimeout(t *testing.T) {
	stub := &stubKernel{runDelay: 20 * time.Millisecond}
	m := New(stub, Options{Warmup: 0, Repeats: 100, Timeout: 10 * time.Millisecond})

	res := m.MeasureOne(context.Background(), stub.DefaultConfig())
	if res.Err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestMeasureOneCancelled(t *testing.T) {
	stub := &stubKernel{}
	m := New(stub, Options{Repeats: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := m.MeasureOne(ctx, stub.DefaultConfig())
	if res.Err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestMeasureBatchPreservesOrder(t *testing.T) {
	k := newMatMulKernel(t)
	m := New(k, Options{Repeats: 1, Parallel: 4})

	sp, err := k.Space()
	if err != nil {
		t.Fatalf("Space failed: %v", err)
	}

	var batch []space.Configuration
	for i := 0; i < 8; i++ {
		cfg, err := sp.At(i)
		if err != nil {
			t.Fatalf("At failed: %v", err)
		}
		batch = append(batch, cfg)
	}

	results := m.Measure(context.Background(), batch)
	if len(results) != len(batch) {
		t.Fatalf("got %d results for %d configs", len(results), len(batch))
	}
	for i, res := range results {
		if res.Config.Key() != batch[i].Key() {
			t.Errorf("result %d out of order: %s != %s", i, res.Config.Key(), batch[i].Key())
		}
		if res.Err != nil {
			t.Errorf("config %s failed: %v", res.Config.Key(), res.Err)
		}
	}
}

func TestMeasureBatchMixedOutcomes(t *testing.T) {
	k := newMatMulKernel(t)
	m := New(k, Options{Repeats: 1, Parallel: 2})

	good := k.DefaultConfig()
	bad := space.NewConfiguration(map[string]int{"tile_m": 7, "tile_n": 4, "tile_k": 4, "unroll": 1})

	results := m.Measure(context.Background(), []space.Configuration{good, bad, good})
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("valid configs failed: %v, %v", results[0].Err, results[2].Err)
	}
	if results[1].Err == nil {
		t.Error("invalid config did not fail")
	}
}

func TestOptionsFromTask(t *testing.T) {
	task := &config.Task{
		Kernel:  config.KernelMatMul,
		Shape:   config.Shape{M: 4, K: 4, N: 4},
		Tuning:  config.Tuning{Tuner: config.TunerRandom, Trials: 1, Parallel: 3},
		Measure: config.MeasureSpec{Warmup: 2, Repeats: 5, TimeoutMs: 500, Validate: true, ToleranceAbs: 1e-3},
	}
	opts := OptionsFromTask(task)
	if opts.Warmup != 2 || opts.Repeats != 5 || opts.Parallel != 3 {
		t.Errorf("unexpected options: %+v", opts)
	}
	if opts.Timeout != 500*time.Millisecond {
		t.Errorf("timeout = %v", opts.Timeout)
	}
	if !opts.Validate || opts.ToleranceAbs != 1e-3 {
		t.Errorf("validation options lost: %+v", opts)
	}
}
