package config

import (
	"fmt"
	"os"
)

// LoadTask loads and parses a task file
func LoadTask(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file %s: %w", path, err)
	}
	task, err := ParseTaskYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse task file %s: %w", path, err)
	}
	return task, nil
}

// validateTask performs validation on the task configuration
func validateTask(t *Task) error {
	switch t.Kernel {
	case KernelMatMul, KernelDenseReLU:
		if t.Shape.M <= 0 || t.Shape.K <= 0 || t.Shape.N <= 0 {
			return fmt.Errorf("kernel %s: m, k and n must be positive, got %d/%d/%d",
				t.Kernel, t.Shape.M, t.Shape.K, t.Shape.N)
		}
	case KernelConv1D:
		if t.Shape.Length <= 0 {
			return fmt.Errorf("kernel conv1d: length must be positive, got %d", t.Shape.Length)
		}
		if t.Shape.KernelWidth <= 0 {
			return fmt.Errorf("kernel conv1d: kernel_width must be positive, got %d", t.Shape.KernelWidth)
		}
		if t.Shape.KernelWidth > t.Shape.Length {
			return fmt.Errorf("kernel conv1d: kernel_width %d exceeds length %d", t.Shape.KernelWidth, t.Shape.Length)
		}
		if t.Shape.Channels < 0 {
			return fmt.Errorf("kernel conv1d: channels cannot be negative, got %d", t.Shape.Channels)
		}
	case "":
		return fmt.Errorf("kernel cannot be empty")
	default:
		return fmt.Errorf("unknown kernel: %s (must be %s, %s, or %s)",
			t.Kernel, KernelMatMul, KernelConv1D, KernelDenseReLU)
	}

	validTuners := map[string]bool{
		TunerRandom:    true,
		TunerGrid:      true,
		TunerGenetic:   true,
		TunerCostModel: true,
	}
	if !validTuners[t.Tuning.Tuner] {
		return fmt.Errorf("unknown tuner: %s (must be %s, %s, %s, or %s)",
			t.Tuning.Tuner, TunerRandom, TunerGrid, TunerGenetic, TunerCostModel)
	}

	if t.Tuning.Trials <= 0 {
		return fmt.Errorf("tuning trials must be positive, got %d", t.Tuning.Trials)
	}
	if t.Tuning.FloatWidth != 16 && t.Tuning.FloatWidth != 32 {
		return fmt.Errorf("float_width must be 16 or 32, got %d", t.Tuning.FloatWidth)
	}
	if t.Tuning.EarlyStop < 0 {
		return fmt.Errorf("early_stop cannot be negative, got %d", t.Tuning.EarlyStop)
	}

	if t.Measure.MinMeasureMs < 0 {
		return fmt.Errorf("min_measure_ms cannot be negative, got %f", t.Measure.MinMeasureMs)
	}

	return nil
}
