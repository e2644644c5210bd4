package kernel

import (
	"fmt"
	"sync"

	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/utils"
)

// Schedule footprint cap: a tile_m x tile_n accumulator block plus its
// operand panels should stay small enough to live in L1/L2.
const maxTileFootprint = 4096

// matMul computes C = A * B for A (m x k) and B (k x n).
//
// Schedule knobs:
//   - tile_m, tile_n, tile_k: loop split factors (divisors of the extents)
//   - unroll: inner column loop unroll factor
//   - pack_b: repack B into tile-contiguous panels before computing
//   - parallel: distribute row tiles across goroutines
type matMul struct {
	m, k, n int
	a, b    []float32
}

func newMatMul(m, k, n int, halve bool, r *utils.RandSource) *matMul {
	return &matMul{
		m: m, k: k, n: n,
		a: randomBuffer(m*k, halve, r),
		b: randomBuffer(k*n, halve, r),
	}
}

func (mm *matMul) Name() string { return "matmul" }

func (mm *matMul) Space() (*space.Space, error) {
	knobs := []space.Knob{
		space.Split("tile_m", mm.m),
		space.Split("tile_n", mm.n),
		space.Split("tile_k", mm.k),
		space.Choice("unroll", 1, 2, 4),
		space.Flag("pack_b"),
		space.Flag("parallel"),
	}
	return space.Define(knobs, func(c space.Configuration) bool {
		tm := c.Int("tile_m", 1)
		tn := c.Int("tile_n", 1)
		if tm*tn > maxTileFootprint {
			return false
		}
		// Unrolled column loops need evenly divisible tiles.
		return tn%c.Int("unroll", 1) == 0
	})
}

func (mm *matMul) DefaultConfig() space.Configuration {
	return space.NewConfiguration(map[string]int{
		"tile_m":   largestFactorUpTo(mm.m, 32),
		"tile_n":   largestFactorUpTo(mm.n, 32),
		"tile_k":   largestFactorUpTo(mm.k, 16),
		"unroll":   1,
		"pack_b":   0,
		"parallel": 0,
	})
}

// gemmSchedule holds one validated matmul schedule.
type gemmSchedule struct {
	tileM, tileN, tileK int
	unroll              int
	packB               bool
	parallel            bool
}

func (mm *matMul) schedule(cfg space.Configuration) (gemmSchedule, error) {
	s := gemmSchedule{
		tileM:    cfg.Int("tile_m", 1),
		tileN:    cfg.Int("tile_n", 1),
		tileK:    cfg.Int("tile_k", 1),
		unroll:   cfg.Int("unroll", 1),
		packB:    cfg.Bool("pack_b"),
		parallel: cfg.Bool("parallel"),
	}
	if s.tileM <= 0 || mm.m%s.tileM != 0 {
		return s, fmt.Errorf("kernel: tile_m %d does not divide m %d", s.tileM, mm.m)
	}
	if s.tileN <= 0 || mm.n%s.tileN != 0 {
		return s, fmt.Errorf("kernel: tile_n %d does not divide n %d", s.tileN, mm.n)
	}
	if s.tileK <= 0 || mm.k%s.tileK != 0 {
		return s, fmt.Errorf("kernel: tile_k %d does not divide k %d", s.tileK, mm.k)
	}
	if s.unroll != 1 && s.unroll != 2 && s.unroll != 4 {
		return s, fmt.Errorf("kernel: unsupported unroll factor %d", s.unroll)
	}
	if s.tileN%s.unroll != 0 {
		return s, fmt.Errorf("kernel: unroll %d does not divide tile_n %d", s.unroll, s.tileN)
	}
	return s, nil
}

func (mm *matMul) Build(cfg space.Configuration) (*Artifact, error) {
	sched, err := mm.schedule(cfg)
	if err != nil {
		return nil, err
	}

	// Each artifact owns its output so concurrent measurements of
	// different schedules never share mutable state.
	out := make([]float32, mm.m*mm.n)
	run := func() {
		gemm(mm.a, mm.b, out, mm.m, mm.k, mm.n, sched)
	}
	return &Artifact{Run: run, Output: out}, nil
}

func (mm *matMul) Reference() []float32 {
	out := make([]float32, mm.m*mm.n)
	gemmNaive(mm.a, mm.b, out, mm.m, mm.k, mm.n)
	return out
}

// gemmNaive is the reference triple loop in i-k-j order.
func gemmNaive(a, b, c []float32, m, k, n int) {
	for i := range c {
		c[i] = 0
	}
	for i := 0; i < m; i++ {
		for kk := 0; kk < k; kk++ {
			av := a[i*k+kk]
			row := b[kk*n : (kk+1)*n]
			for j := 0; j < n; j++ {
				c[i*n+j] += av * row[j]
			}
		}
	}
}

// gemm executes one tiled multiplication under the given schedule.
func gemm(a, b, c []float32, m, k, n int, sched gemmSchedule) {
	for i := range c {
		c[i] = 0
	}

	var packed []float32
	if sched.packB {
		packed = packPanels(b, k, n, sched.tileK, sched.tileN)
	}

	rowTiles := m / sched.tileM
	if !sched.parallel || rowTiles == 1 {
		for ti := 0; ti < rowTiles; ti++ {
			gemmRowTile(a, b, packed, c, m, k, n, ti, sched)
		}
		return
	}

	var wg sync.WaitGroup
	for ti := 0; ti < rowTiles; ti++ {
		wg.Add(1)
		go func(ti int) {
			defer wg.Done()
			gemmRowTile(a, b, packed, c, m, k, n, ti, sched)
		}(ti)
	}
	wg.Wait()
}

// gemmRowTile computes the output rows [ti*tileM, (ti+1)*tileM).
// Row tiles never overlap, so parallel workers share no output cells.
func gemmRowTile(a, b, packed, c []float32, m, k, n, ti int, sched gemmSchedule) {
	ii := ti * sched.tileM
	iEnd := ii + sched.tileM
	kTiles := k / sched.tileK

	for jj := 0; jj < n; jj += sched.tileN {
		for kk := 0; kk < k; kk += sched.tileK {
			kEnd := kk + sched.tileK
			for i := ii; i < iEnd; i++ {
				cRow := c[i*n:]
				for kIdx := kk; kIdx < kEnd; kIdx++ {
					av := a[i*k+kIdx]
					if av == 0 {
						continue
					}
					var bRow []float32
					var bOff int
					if packed != nil {
						base := ((jj/sched.tileN)*kTiles + kk/sched.tileK) * sched.tileK * sched.tileN
						bRow = packed[base+(kIdx-kk)*sched.tileN:]
						bOff = -jj
					} else {
						bRow = b[kIdx*n:]
					}
					axpy(cRow, bRow, av, jj, jj+sched.tileN, bOff, sched.unroll)
				}
			}
		}
	}
}

// axpy accumulates av * b[j+off] into c[j] for j in [j0, j1), with the
// requested unroll factor. j1-j0 is always a multiple of the factor.
func axpy(c, b []float32, av float32, j0, j1, off, unroll int) {
	switch unroll {
	case 4:
		for j := j0; j < j1; j += 4 {
			c[j] += av * b[j+off]
			c[j+1] += av * b[j+off+1]
			c[j+2] += av * b[j+off+2]
			c[j+3] += av * b[j+off+3]
		}
	case 2:
		for j := j0; j < j1; j += 2 {
			c[j] += av * b[j+off]
			c[j+1] += av * b[j+off+1]
		}
	default:
		for j := j0; j < j1; j++ {
			c[j] += av * b[j+off]
		}
	}
}

// packPanels copies B into tile-contiguous panels indexed by
// (column tile, k tile), so a tile's worth of B is sequential in memory.
func packPanels(b []float32, k, n, tileK, tileN int) []float32 {
	kTiles := k / tileK
	nTiles := n / tileN
	packed := make([]float32, k*n)
	for tj := 0; tj < nTiles; tj++ {
		for tk := 0; tk < kTiles; tk++ {
			base := (tj*kTiles + tk) * tileK * tileN
			for kr := 0; kr < tileK; kr++ {
				srcRow := (tk*tileK + kr) * n
				copy(packed[base+kr*tileN:base+(kr+1)*tileN], b[srcRow+tj*tileN:srcRow+(tj+1)*tileN])
			}
		}
	}
	return packed
}
