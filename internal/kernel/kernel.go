// Package kernel declares the tunable tensor computations: a reference
// implementation for numeric validation and a scheduled implementation
// whose loop structure is parameterized by a configuration drawn from
// the kernel's declared search space.
package kernel

import (
	"fmt"
	"math"

	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/config"
	"github.com/icemelon9/tensortune/pkg/utils"
)

// Artifact is a compiled, executable form of a kernel under one
// schedule: a closure bound to preallocated input and output buffers.
type Artifact struct {
	// Run executes the kernel once over the bound buffers.
	Run func()
	// Output is the output buffer Run writes into.
	Output []float32
}

// Kernel is a tunable computation for one fixed shape.
type Kernel interface {
	// Name identifies the kernel type.
	Name() string

	// Space declares the schedule search space for the kernel's shape.
	Space() (*space.Space, error)

	// DefaultConfig returns a conservative schedule that always builds.
	DefaultConfig() space.Configuration

	// Build materializes an executable artifact from a configuration.
	// A schedule the shape cannot support is a build error.
	Build(cfg space.Configuration) (*Artifact, error)

	// Reference computes the expected output with the naive implementation.
	Reference() []float32
}

// New constructs the kernel named by the task, with deterministically
// seeded random input data.
func New(task *config.Task, seed int64) (Kernel, error) {
	if task == nil {
		return nil, fmt.Errorf("kernel: task is required")
	}
	r := utils.NewRandSource(seed)
	halve := task.Tuning.FloatWidth == 16

	switch task.Kernel {
	case config.KernelMatMul:
		return newMatMul(task.Shape.M, task.Shape.K, task.Shape.N, halve, r), nil
	case config.KernelDenseReLU:
		return newDenseReLU(task.Shape.M, task.Shape.K, task.Shape.N, halve, r), nil
	case config.KernelConv1D:
		channels := task.Shape.Channels
		if channels <= 0 {
			channels = 1
		}
		return newConv1D(task.Shape.Length, task.Shape.KernelWidth, channels, halve, r), nil
	default:
		return nil, fmt.Errorf("kernel: unknown kernel %q", task.Kernel)
	}
}

// randomBuffer fills a float32 buffer with small random values. Half
// precision inputs are first rounded through float16 so that tuned and
// reference implementations see identical data.
func randomBuffer(n int, halve bool, r *utils.RandSource) []float32 {
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(r.NormFloat64(0, 0.5))
	}
	if halve {
		RoundToHalf(buf)
	}
	return buf
}

// largestFactorUpTo picks the biggest divisor of n no greater than
// limit, so default tile sizes always divide their extents.
func largestFactorUpTo(n, limit int) int {
	best := 1
	for _, f := range utils.Factors(n) {
		if f <= limit && f > best {
			best = f
		}
	}
	return best
}

// MaxAbsDiff returns the largest elementwise absolute difference.
func MaxAbsDiff(a, b []float32) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
