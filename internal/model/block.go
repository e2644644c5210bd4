package model

import (
	"fmt"
	"math"

	"github.com/icemelon9/tensortune/internal/kernel"
	"github.com/icemelon9/tensortune/pkg/utils"
)

// BlockConfig sizes a decoder block.
type BlockConfig struct {
	EmbedDim int   // model width, must be divisible by NumHeads
	NumHeads int   // attention heads
	MLPDim   int   // hidden width of the feed-forward layer
	MaxSeq   int   // KV cache capacity in tokens
	Seed     int64 // weight initialization seed
}

func (c BlockConfig) validate() error {
	if c.EmbedDim <= 0 || c.NumHeads <= 0 || c.MLPDim <= 0 || c.MaxSeq <= 0 {
		return fmt.Errorf("model: all block dimensions must be positive: %+v", c)
	}
	if c.EmbedDim%c.NumHeads != 0 {
		return fmt.Errorf("model: embed dim %d not divisible by %d heads", c.EmbedDim, c.NumHeads)
	}
	return nil
}

// Block is one transformer decoder block with pre-allocated scratch
// space for single-token decoding. The dense layers run through the
// tuned gemm; attention over the cache is a per-head scalar loop since
// the query is a single row. A Block is not safe for concurrent use.
type Block struct {
	cfg   BlockConfig
	sched *Schedules

	// Projection weights, row-major. wq/wk/wv/wo are EmbedDim x
	// EmbedDim; w1 is EmbedDim x MLPDim, w2 is MLPDim x EmbedDim.
	wq, wk, wv, wo []float32
	w1, b1         []float32
	w2, b2         []float32

	cache *KVCache

	// Scratch rows reused across steps.
	q, k, v []float32
	attn    []float32
	proj    []float32
	hidden  []float32
	out     []float32
	scores  []float32
}

// NewBlock builds a block with randomly initialized weights. Two blocks
// built with the same config produce identical weights.
func NewBlock(cfg BlockConfig, sched *Schedules) (*Block, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if sched == nil {
		sched = DefaultSchedules()
	}

	r := utils.NewRandSource(cfg.Seed)
	e, h := cfg.EmbedDim, cfg.MLPDim
	b := &Block{
		cfg:   cfg,
		sched: sched,
		wq:    initWeights(e, e, r),
		wk:    initWeights(e, e, r),
		wv:    initWeights(e, e, r),
		wo:    initWeights(e, e, r),
		w1:    initWeights(e, h, r),
		b1:    make([]float32, h),
		w2:    initWeights(h, e, r),
		b2:    make([]float32, e),
		cache: NewKVCache(cfg.MaxSeq, e),

		q:      make([]float32, e),
		k:      make([]float32, e),
		v:      make([]float32, e),
		attn:   make([]float32, e),
		proj:   make([]float32, e),
		hidden: make([]float32, h),
		out:    make([]float32, e),
		scores: make([]float32, cfg.MaxSeq),
	}
	return b, nil
}

// initWeights draws a rows x cols matrix from N(0, 1/sqrt(rows)), the
// usual fan-in scaling that keeps activations bounded through the stack.
func initWeights(rows, cols int, r *utils.RandSource) []float32 {
	w := make([]float32, rows*cols)
	std := 1.0 / math.Sqrt(float64(rows))
	for i := range w {
		w[i] = float32(r.NormFloat64(0, std))
	}
	return w
}

// Config returns the block's dimensions.
func (b *Block) Config() BlockConfig {
	return b.cfg
}

// SeqLen returns the number of tokens decoded since the last Reset.
func (b *Block) SeqLen() int {
	return b.cache.Len()
}

// Reset rewinds the KV cache for a new sequence.
func (b *Block) Reset() {
	b.cache.Reset()
}

// Step runs one decode step through the tuned kernels: project QKV for
// the new token, extend the cache, attend over it, then apply the
// output projection and the feed-forward layer with residual adds.
// The returned slice aliases internal scratch and is valid until the
// next Step.
func (b *Block) Step(x []float32) ([]float32, error) {
	return b.step(x, true)
}

// StepReference runs the same decode step through the naive kernels.
// It shares the block's cache, so interleave it with Step only on a
// fresh clone.
func (b *Block) StepReference(x []float32) ([]float32, error) {
	return b.step(x, false)
}

func (b *Block) step(x []float32, tuned bool) ([]float32, error) {
	e := b.cfg.EmbedDim
	if len(x) != e {
		return nil, fmt.Errorf("model: input has %d floats, want %d", len(x), e)
	}
	if b.cache.Len() >= b.cfg.MaxSeq {
		return nil, fmt.Errorf("model: sequence exceeds cache capacity %d", b.cfg.MaxSeq)
	}

	if err := b.gemm(x, b.wq, b.q, 1, e, e, tuned); err != nil {
		return nil, err
	}
	if err := b.gemm(x, b.wk, b.k, 1, e, e, tuned); err != nil {
		return nil, err
	}
	if err := b.gemm(x, b.wv, b.v, 1, e, e, tuned); err != nil {
		return nil, err
	}
	if err := b.cache.Append(b.k, b.v); err != nil {
		return nil, err
	}

	b.attend()

	if err := b.gemm(b.attn, b.wo, b.proj, 1, e, e, tuned); err != nil {
		return nil, err
	}
	for i := range b.proj {
		b.proj[i] += x[i]
	}

	if err := b.denseReLU(b.proj, b.w1, b.b1, b.hidden, 1, e, b.cfg.MLPDim, tuned); err != nil {
		return nil, err
	}
	if err := b.gemm(b.hidden, b.w2, b.out, 1, b.cfg.MLPDim, e, tuned); err != nil {
		return nil, err
	}
	for i := range b.out {
		b.out[i] += b.b2[i] + b.proj[i]
	}
	return b.out, nil
}

func (b *Block) gemm(a, w, out []float32, m, k, n int, tuned bool) error {
	if !tuned {
		kernel.GemmNaive(a, w, out, m, k, n)
		return nil
	}
	return kernel.Gemm(b.sched.For(m, k, n), a, w, out, m, k, n)
}

func (b *Block) denseReLU(a, w, bias, out []float32, m, k, n int, tuned bool) error {
	if !tuned {
		kernel.DenseReLUNaive(a, w, bias, out, m, k, n)
		return nil
	}
	return kernel.DenseReLU(b.sched.For(m, k, n), a, w, bias, out, m, k, n)
}

// attend computes scaled dot-product attention for the single query row
// in b.q against the cached keys and values, head by head, writing the
// concatenated result into b.attn.
func (b *Block) attend() {
	e := b.cfg.EmbedDim
	heads := b.cfg.NumHeads
	hd := e / heads
	seq := b.cache.Len()
	keys := b.cache.Keys()
	values := b.cache.Values()
	scale := 1.0 / math.Sqrt(float64(hd))

	for h := 0; h < heads; h++ {
		off := h * hd
		scores := b.scores[:seq]
		for t := 0; t < seq; t++ {
			var dot float64
			row := t*e + off
			for j := 0; j < hd; j++ {
				dot += float64(b.q[off+j]) * float64(keys[row+j])
			}
			scores[t] = float32(dot * scale)
		}
		softmaxInPlace(scores)

		for j := 0; j < hd; j++ {
			var sum float64
			for t := 0; t < seq; t++ {
				sum += float64(scores[t]) * float64(values[t*e+off+j])
			}
			b.attn[off+j] = float32(sum)
		}
	}
}

// softmaxInPlace normalizes scores with the usual max subtraction.
func softmaxInPlace(s []float32) {
	maxv := s[0]
	for _, v := range s[1:] {
		if v > maxv {
			maxv = v
		}
	}
	var sum float64
	for i, v := range s {
		ev := math.Exp(float64(v - maxv))
		s[i] = float32(ev)
		sum += ev
	}
	for i := range s {
		s[i] = float32(float64(s[i]) / sum)
	}
}

// clone shares the block's weights but starts with a fresh cache and
// scratch space.
func (b *Block) clone() *Block {
	nb, _ := NewBlock(b.cfg, b.sched)
	nb.wq, nb.wk, nb.wv, nb.wo = b.wq, b.wk, b.wv, b.wo
	nb.w1, nb.b1 = b.w1, b.b1
	nb.w2, nb.b2 = b.w2, b.b2
	return nb
}

// Validate decodes steps tokens through a tuned clone and a reference
// clone with identical weights and inputs, returning the largest
// absolute output difference observed.
func (b *Block) Validate(steps int) (float64, error) {
	if steps <= 0 || steps > b.cfg.MaxSeq {
		return 0, fmt.Errorf("model: validate steps %d out of range [1, %d]", steps, b.cfg.MaxSeq)
	}
	tuned := b.clone()
	ref := b.clone()

	r := utils.NewRandSource(b.cfg.Seed + 1)
	x := randomToken(b.cfg.EmbedDim, r)
	xRef := make([]float32, b.cfg.EmbedDim)
	copy(xRef, x)

	var worst float64
	for i := 0; i < steps; i++ {
		got, err := tuned.Step(x)
		if err != nil {
			return worst, err
		}
		want, err := ref.StepReference(xRef)
		if err != nil {
			return worst, err
		}
		if d := kernel.MaxAbsDiff(got, want); d > worst {
			worst = d
		}
		// Greedy decode: each clone feeds its own output forward, so a
		// divergence compounds instead of hiding behind shared inputs.
		copy(x, got)
		copy(xRef, want)
	}
	return worst, nil
}

func randomToken(n int, r *utils.RandSource) []float32 {
	x := make([]float32, n)
	for i := range x {
		x[i] = float32(r.NormFloat64(0, 1))
	}
	return x
}
