package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/icemelon9/tensortune/internal/record"
	"github.com/icemelon9/tensortune/pkg/config"
)

func testTask(t *testing.T, tunerName string, trials int) *config.Task {
	t.Helper()
	task := &config.Task{
		Name:   "matmul-test",
		Kernel: config.KernelMatMul,
		Shape:  config.Shape{M: 8, K: 8, N: 8},
		Tuning: config.Tuning{
			Tuner:     tunerName,
			Trials:    trials,
			BatchSize: 4,
			Seed:      1,
		},
		Measure: config.MeasureSpec{
			Repeats:      1,
			TimeoutMs:    5000,
			Validate:     true,
			ToleranceAbs: 1e-4,
		},
	}
	task.ApplyDefaults()
	return task
}

func TestDriverRunGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.jsonl")
	w, err := record.NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	defer w.Close()

	var updates []Progress
	d, err := New(testTask(t, config.TunerGrid, 12), w, WithProgress(func(p Progress) {
		updates = append(updates, p)
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.TotalTrials != 12 {
		t.Errorf("TotalTrials = %d, want 12", res.TotalTrials)
	}
	if res.FailedTrials != 0 {
		t.Errorf("FailedTrials = %d, want 0", res.FailedTrials)
	}
	if res.BestCostMs <= 0 {
		t.Errorf("BestCostMs = %f, want > 0", res.BestCostMs)
	}
	if res.BestConfig.Len() == 0 {
		t.Error("BestConfig is empty")
	}
	if res.ConvergenceReason != "trial budget exhausted" {
		t.Errorf("ConvergenceReason = %q", res.ConvergenceReason)
	}
	if len(updates) != 3 {
		t.Errorf("got %d progress updates, want 3", len(updates))
	}

	logged, err := record.ReadLog(path)
	if err != nil {
		t.Fatalf("ReadLog failed: %v", err)
	}
	if len(logged) != 12 {
		t.Errorf("log has %d trials, want 12", len(logged))
	}
	best, err := record.Best(logged)
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if best.CostMs != res.BestCostMs {
		t.Errorf("log best %f != result best %f", best.CostMs, res.BestCostMs)
	}
}

func TestDriverExhaustsSmallSpace(t *testing.T) {
	// 8x8x8 has a finite space; a budget above its size must stop with
	// an exhaustion reason instead of spinning.
	d, err := New(testTask(t, config.TunerGrid, 10000), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	res, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Converged || res.ConvergenceReason != "search space exhausted" {
		t.Errorf("Converged=%v reason=%q", res.Converged, res.ConvergenceReason)
	}
	if res.TotalTrials >= 10000 {
		t.Errorf("TotalTrials = %d, expected space size", res.TotalTrials)
	}
}

func TestDriverCancelled(t *testing.T) {
	d, err := New(testTask(t, config.TunerRandom, 1000), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, runErr := d.Run(ctx)
	if res == nil {
		t.Fatal("cancelled run returned nil result")
	}
	if res.Converged {
		t.Error("cancelled run reported as converged")
	}
	if res.ConvergenceReason != "cancelled" {
		t.Errorf("ConvergenceReason = %q, want cancelled", res.ConvergenceReason)
	}
	if res.TotalTrials != 0 {
		t.Errorf("TotalTrials = %d, want 0", res.TotalTrials)
	}
	if runErr == nil {
		t.Error("expected no-valid-trial error from an empty run")
	}
}

func TestDriverEarlyStop(t *testing.T) {
	task := testTask(t, config.TunerGrid, 1000)
	task.Tuning.EarlyStop = 8

	d, err := New(task, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	res, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.TotalTrials >= 1000 {
		t.Errorf("early stop never fired, ran %d trials", res.TotalTrials)
	}
	if !res.Converged {
		t.Errorf("early-stopped run not marked converged (reason %q)", res.ConvergenceReason)
	}
}

func TestDriverWarmupSkipsLoggedConfigs(t *testing.T) {
	for _, tunerName := range []string{
		config.TunerRandom, config.TunerGrid, config.TunerCostModel,
	} {
		t.Run(tunerName, func(t *testing.T) {
			d1, err := New(testTask(t, tunerName, 6), nil)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if _, err := d1.Run(context.Background()); err != nil {
				t.Fatalf("first run failed: %v", err)
			}
			prior := d1.History().Snapshot()

			d2, err := New(testTask(t, tunerName, 6), nil)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			d2.Warmup(prior)
			if _, err := d2.Run(context.Background()); err != nil {
				t.Fatalf("resumed run failed: %v", err)
			}

			seen := make(map[string]int)
			for _, tr := range prior {
				seen[tr.Key()]++
			}
			for _, tr := range d2.History().Snapshot()[len(prior):] {
				if seen[tr.Key()] > 0 {
					t.Errorf("resumed run repeated config %s", tr.Key())
				}
			}
		})
	}
}

func TestNoImprovementStrategy(t *testing.T) {
	cfg := &ConvergenceConfig{NoImprovementTrials: 3, MinTrials: 2}
	s := NewNoImprovementStrategy(cfg)

	trials := []record.Trial{
		{Config: map[string]int{"a": 1}, CostMs: 10},
		{Config: map[string]int{"a": 2}, CostMs: 5},
	}
	if converged, _ := s.CheckConvergence(trials); converged {
		t.Error("converged with best at the tail")
	}

	for i := 0; i < 3; i++ {
		trials = append(trials, record.Trial{Config: map[string]int{"a": 3 + i}, CostMs: 7})
	}
	converged, reason := s.CheckConvergence(trials)
	if !converged {
		t.Error("did not converge after 3 trials without improvement")
	}
	if reason == "" {
		t.Error("empty convergence reason")
	}
}

func TestPlateauStrategy(t *testing.T) {
	cfg := &ConvergenceConfig{PlateauTrials: 4, CostTolerance: 0.1, MinTrials: 2}
	s := NewPlateauStrategy(cfg)

	var trials []record.Trial
	for i := 0; i < 4; i++ {
		trials = append(trials, record.Trial{Config: map[string]int{"a": i}, CostMs: 5 + float64(i)})
	}
	if converged, _ := s.CheckConvergence(trials); converged {
		t.Error("converged on a descending slope")
	}

	var flat []record.Trial
	for i := 0; i < 4; i++ {
		flat = append(flat, record.Trial{Config: map[string]int{"a": i}, CostMs: 5.0})
	}
	if converged, _ := s.CheckConvergence(flat); !converged {
		t.Error("did not converge on a flat tail")
	}
}
