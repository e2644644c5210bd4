package config

// Task represents a complete tuning task: the kernel to tune, its shape,
// the search settings, and how each trial is measured.
type Task struct {
	Name    string      `yaml:"name,omitempty"`
	Kernel  string      `yaml:"kernel"` // matmul, conv1d, dense_relu
	Shape   Shape       `yaml:"shape"`
	Tuning  Tuning      `yaml:"tuning"`
	Measure MeasureSpec `yaml:"measure,omitempty"`
	Log     LogSpec     `yaml:"log,omitempty"`
}

// Shape holds kernel-specific dimensions. Unused fields stay zero.
type Shape struct {
	M int `yaml:"m,omitempty"` // matmul, dense_relu: output rows
	K int `yaml:"k,omitempty"` // matmul, dense_relu: reduction extent
	N int `yaml:"n,omitempty"` // matmul, dense_relu: output cols

	Length      int `yaml:"length,omitempty"`       // conv1d: input length
	KernelWidth int `yaml:"kernel_width,omitempty"` // conv1d: filter width
	Channels    int `yaml:"channels,omitempty"`     // conv1d: channels
}

// Tuning controls the search over the schedule space.
type Tuning struct {
	Tuner      string `yaml:"tuner"`                 // random, grid, genetic, costmodel
	Trials     int    `yaml:"trials"`                // trial budget
	BatchSize  int    `yaml:"batch_size,omitempty"`  // configs proposed per round (default 8)
	Parallel   int    `yaml:"parallel,omitempty"`    // concurrent measurements (default 1)
	EarlyStop  int    `yaml:"early_stop,omitempty"`  // rounds without improvement before stopping (0 = off)
	Seed       int64  `yaml:"seed,omitempty"`        // sampling seed (0 = time-based)
	FloatWidth int    `yaml:"float_width,omitempty"` // 32 or 16; 16 routes I/O through half precision
}

// MeasureSpec controls how a single trial is timed.
type MeasureSpec struct {
	Warmup       int     `yaml:"warmup,omitempty"`         // untimed runs before measuring (default 1)
	Repeats      int     `yaml:"repeats,omitempty"`        // timed runs averaged per trial (default 3)
	MinMeasureMs float64 `yaml:"min_measure_ms,omitempty"` // keep repeating until this much time measured
	TimeoutMs    int64   `yaml:"timeout_ms,omitempty"`     // per-trial deadline (default 10000)
	Validate     bool    `yaml:"validate,omitempty"`       // compare output against reference implementation
	ToleranceAbs float64 `yaml:"tolerance_abs,omitempty"`  // max abs diff for validation (default 1e-4)
}

// LogSpec names the tuning log file.
type LogSpec struct {
	Path string `yaml:"path,omitempty"`
}

// Kernel names accepted in Task.Kernel.
const (
	KernelMatMul    = "matmul"
	KernelConv1D    = "conv1d"
	KernelDenseReLU = "dense_relu"
)

// Tuner names accepted in Tuning.Tuner.
const (
	TunerRandom    = "random"
	TunerGrid      = "grid"
	TunerGenetic   = "genetic"
	TunerCostModel = "costmodel"
)

// ApplyDefaults fills unset optional fields with their defaults.
func (t *Task) ApplyDefaults() {
	if t.Tuning.BatchSize <= 0 {
		t.Tuning.BatchSize = 8
	}
	if t.Tuning.Parallel <= 0 {
		t.Tuning.Parallel = 1
	}
	if t.Tuning.FloatWidth == 0 {
		t.Tuning.FloatWidth = 32
	}
	if t.Measure.Warmup <= 0 {
		t.Measure.Warmup = 1
	}
	if t.Measure.Repeats <= 0 {
		t.Measure.Repeats = 3
	}
	if t.Measure.TimeoutMs <= 0 {
		t.Measure.TimeoutMs = 10000
	}
	if t.Measure.ToleranceAbs <= 0 {
		t.Measure.ToleranceAbs = 1e-4
	}
}
