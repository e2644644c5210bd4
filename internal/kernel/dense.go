package kernel

import (
	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/utils"
)

// denseReLU computes relu(A*B + bias), the dense layer the transformer
// block's MLP uses. It shares the matmul schedule knobs and adds a fuse
// flag: apply bias and relu inside the tiled loop's epilogue, or as a
// separate pass over the output.
type denseReLU struct {
	mm   *matMul
	bias []float32
}

func newDenseReLU(m, k, n int, halve bool, r *utils.RandSource) *denseReLU {
	return &denseReLU{
		mm:   newMatMul(m, k, n, halve, r),
		bias: randomBuffer(n, halve, r),
	}
}

func (d *denseReLU) Name() string { return "dense_relu" }

func (d *denseReLU) Space() (*space.Space, error) {
	base, err := d.mm.Space()
	if err != nil {
		return nil, err
	}
	knobs := append(base.Knobs(), space.Flag("fuse"))
	return space.Define(knobs, func(c space.Configuration) bool {
		tm := c.Int("tile_m", 1)
		tn := c.Int("tile_n", 1)
		if tm*tn > maxTileFootprint {
			return false
		}
		return tn%c.Int("unroll", 1) == 0
	})
}

func (d *denseReLU) DefaultConfig() space.Configuration {
	values := d.mm.DefaultConfig().Values()
	values["fuse"] = 1
	return space.NewConfiguration(values)
}

func (d *denseReLU) Build(cfg space.Configuration) (*Artifact, error) {
	sched, err := d.mm.schedule(cfg)
	if err != nil {
		return nil, err
	}
	fuse := cfg.Bool("fuse")

	mm := d.mm
	out := make([]float32, mm.m*mm.n)
	run := func() {
		gemm(mm.a, mm.b, out, mm.m, mm.k, mm.n, sched)
		if fuse {
			// Epilogue per row tile keeps the output hot in cache.
			biasReLUTiled(out, d.bias, mm.m, mm.n, sched.tileM)
		} else {
			biasReLU(out, d.bias, mm.m, mm.n)
		}
	}
	return &Artifact{Run: run, Output: out}, nil
}

func (d *denseReLU) Reference() []float32 {
	mm := d.mm
	out := make([]float32, mm.m*mm.n)
	gemmNaive(mm.a, mm.b, out, mm.m, mm.k, mm.n)
	biasReLU(out, d.bias, mm.m, mm.n)
	return out
}

func biasReLU(c, bias []float32, m, n int) {
	for i := 0; i < m; i++ {
		row := c[i*n : (i+1)*n]
		for j, v := range row {
			v += bias[j]
			if v < 0 {
				v = 0
			}
			row[j] = v
		}
	}
}

func biasReLUTiled(c, bias []float32, m, n, tileM int) {
	for ii := 0; ii < m; ii += tileM {
		iEnd := utils.Min(ii+tileM, m)
		biasReLU(c[ii*n:iEnd*n], bias, iEnd-ii, n)
	}
}
