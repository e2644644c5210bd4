package kernel

import "github.com/icemelon9/tensortune/internal/space"

// Gemm multiplies A (m x k) by B (k x n) into out using cfg's schedule.
// Unlike Build, it runs on caller-provided buffers, so a configuration
// tuned once can be applied to live model weights. A schedule the shape
// cannot support is an error.
func Gemm(cfg space.Configuration, a, b, out []float32, m, k, n int) error {
	mm := &matMul{m: m, k: k, n: n}
	sched, err := mm.schedule(cfg)
	if err != nil {
		return err
	}
	gemm(a, b, out, m, k, n, sched)
	return nil
}

// ValidSchedule reports whether cfg's schedule can run a gemm of the
// given shape. A configuration tuned on one shape does not necessarily
// divide another.
func ValidSchedule(cfg space.Configuration, m, k, n int) bool {
	mm := &matMul{m: m, k: k, n: n}
	_, err := mm.schedule(cfg)
	return err == nil
}

// GemmNaive multiplies with the reference triple loop.
func GemmNaive(a, b, out []float32, m, k, n int) {
	gemmNaive(a, b, out, m, k, n)
}

// DenseReLU computes relu(A*B + bias) into out using cfg's schedule,
// honoring the fuse flag the dense kernel tunes.
func DenseReLU(cfg space.Configuration, a, b, bias, out []float32, m, k, n int) error {
	mm := &matMul{m: m, k: k, n: n}
	sched, err := mm.schedule(cfg)
	if err != nil {
		return err
	}
	gemm(a, b, out, m, k, n, sched)
	if cfg.Bool("fuse") {
		biasReLUTiled(out, bias, m, n, sched.tileM)
	} else {
		biasReLU(out, bias, m, n)
	}
	return nil
}

// DenseReLUNaive is the unfused reference dense layer.
func DenseReLUNaive(a, b, bias, out []float32, m, k, n int) {
	gemmNaive(a, b, out, m, k, n)
	biasReLU(out, bias, m, n)
}
