package config

import (
	"strings"
	"testing"
)

const validTaskYAML = `
name: matmul-256
kernel: matmul
shape:
  m: 256
  k: 256
  n: 256
tuning:
  tuner: random
  trials: 32
  seed: 42
measure:
  warmup: 1
  repeats: 3
  validate: true
log:
  path: matmul-256.jsonl
`

func TestParseTaskYAML(t *testing.T) {
	task, err := ParseTaskYAMLString(validTaskYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.Kernel != KernelMatMul {
		t.Errorf("kernel = %s, want matmul", task.Kernel)
	}
	if task.Shape.M != 256 || task.Shape.K != 256 || task.Shape.N != 256 {
		t.Errorf("shape = %+v, want 256^3", task.Shape)
	}
	if task.Tuning.Tuner != TunerRandom {
		t.Errorf("tuner = %s, want random", task.Tuning.Tuner)
	}
	if task.Tuning.Trials != 32 {
		t.Errorf("trials = %d, want 32", task.Tuning.Trials)
	}
	if task.Log.Path != "matmul-256.jsonl" {
		t.Errorf("log path = %s", task.Log.Path)
	}
}

func TestParseTaskDefaults(t *testing.T) {
	task, err := ParseTaskYAMLString(`
kernel: matmul
shape: {m: 8, k: 8, n: 8}
tuning: {tuner: grid, trials: 4}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.Tuning.BatchSize != 8 {
		t.Errorf("default batch_size = %d, want 8", task.Tuning.BatchSize)
	}
	if task.Tuning.Parallel != 1 {
		t.Errorf("default parallel = %d, want 1", task.Tuning.Parallel)
	}
	if task.Tuning.FloatWidth != 32 {
		t.Errorf("default float_width = %d, want 32", task.Tuning.FloatWidth)
	}
	if task.Measure.Repeats != 3 {
		t.Errorf("default repeats = %d, want 3", task.Measure.Repeats)
	}
	if task.Measure.TimeoutMs != 10000 {
		t.Errorf("default timeout_ms = %d, want 10000", task.Measure.TimeoutMs)
	}
	if task.Measure.ToleranceAbs != 1e-4 {
		t.Errorf("default tolerance_abs = %g, want 1e-4", task.Measure.ToleranceAbs)
	}
}

func TestParseTaskInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty kernel",
			yaml:    "shape: {m: 8, k: 8, n: 8}\ntuning: {tuner: random, trials: 4}",
			wantErr: "kernel cannot be empty",
		},
		{
			name:    "unknown kernel",
			yaml:    "kernel: conv3d\nshape: {m: 8, k: 8, n: 8}\ntuning: {tuner: random, trials: 4}",
			wantErr: "unknown kernel",
		},
		{
			name:    "non-positive shape",
			yaml:    "kernel: matmul\nshape: {m: 0, k: 8, n: 8}\ntuning: {tuner: random, trials: 4}",
			wantErr: "must be positive",
		},
		{
			name:    "unknown tuner",
			yaml:    "kernel: matmul\nshape: {m: 8, k: 8, n: 8}\ntuning: {tuner: annealing, trials: 4}",
			wantErr: "unknown tuner",
		},
		{
			name:    "zero trials",
			yaml:    "kernel: matmul\nshape: {m: 8, k: 8, n: 8}\ntuning: {tuner: random, trials: 0}",
			wantErr: "trials must be positive",
		},
		{
			name:    "bad float width",
			yaml:    "kernel: matmul\nshape: {m: 8, k: 8, n: 8}\ntuning: {tuner: random, trials: 4, float_width: 64}",
			wantErr: "float_width",
		},
		{
			name:    "conv kernel wider than input",
			yaml:    "kernel: conv1d\nshape: {length: 4, kernel_width: 8}\ntuning: {tuner: random, trials: 4}",
			wantErr: "exceeds length",
		},
		{
			name:    "malformed yaml",
			yaml:    "kernel: [unclosed",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTaskYAMLString(tt.yaml)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestMarshalTaskRoundTrip(t *testing.T) {
	task, err := ParseTaskYAMLString(validTaskYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := MarshalTaskYAML(task)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	reparsed, err := ParseTaskYAML(data)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}

	if reparsed.Kernel != task.Kernel || reparsed.Shape != task.Shape {
		t.Errorf("round trip changed task: %+v vs %+v", reparsed, task)
	}
	if reparsed.Tuning != task.Tuning {
		t.Errorf("round trip changed tuning: %+v vs %+v", reparsed.Tuning, task.Tuning)
	}
}

func TestMarshalTaskNil(t *testing.T) {
	if _, err := MarshalTaskYAML(nil); err == nil {
		t.Error("expected error for nil task")
	}
}
