package kernel

import (
	"fmt"
	"sync"

	"github.com/icemelon9/tensortune/internal/space"
	"github.com/icemelon9/tensortune/pkg/utils"
)

// conv1D computes a valid (no padding) 1D convolution per channel with
// a filter shared across channels.
//
// Schedule knobs:
//   - tile_x: output loop split factor
//   - unroll: output loop unroll factor (remainder handled)
//   - parallel: distribute channels across goroutines
type conv1D struct {
	length   int
	width    int
	channels int
	outLen   int

	in     []float32 // channels x length
	filter []float32 // width
}

func newConv1D(length, width, channels int, halve bool, r *utils.RandSource) *conv1D {
	return &conv1D{
		length:   length,
		width:    width,
		channels: channels,
		outLen:   length - width + 1,
		in:       randomBuffer(channels*length, halve, r),
		filter:   randomBuffer(width, halve, r),
	}
}

func (cv *conv1D) Name() string { return "conv1d" }

func (cv *conv1D) Space() (*space.Space, error) {
	knobs := []space.Knob{
		space.Split("tile_x", cv.outLen),
		space.Choice("unroll", 1, 2, 4),
		space.Flag("parallel"),
	}
	return space.Define(knobs, nil)
}

func (cv *conv1D) DefaultConfig() space.Configuration {
	return space.NewConfiguration(map[string]int{
		"tile_x":   largestFactorUpTo(cv.outLen, 64),
		"unroll":   1,
		"parallel": 0,
	})
}

func (cv *conv1D) Build(cfg space.Configuration) (*Artifact, error) {
	tileX := cfg.Int("tile_x", 1)
	unroll := cfg.Int("unroll", 1)
	parallel := cfg.Bool("parallel")

	if tileX <= 0 || cv.outLen%tileX != 0 {
		return nil, fmt.Errorf("kernel: tile_x %d does not divide output length %d", tileX, cv.outLen)
	}
	if unroll != 1 && unroll != 2 && unroll != 4 {
		return nil, fmt.Errorf("kernel: unsupported unroll factor %d", unroll)
	}

	out := make([]float32, cv.channels*cv.outLen)
	run := func() {
		if !parallel || cv.channels == 1 {
			for ch := 0; ch < cv.channels; ch++ {
				cv.convChannel(out, ch, tileX, unroll)
			}
			return
		}
		var wg sync.WaitGroup
		for ch := 0; ch < cv.channels; ch++ {
			wg.Add(1)
			go func(ch int) {
				defer wg.Done()
				cv.convChannel(out, ch, tileX, unroll)
			}(ch)
		}
		wg.Wait()
	}
	return &Artifact{Run: run, Output: out}, nil
}

func (cv *conv1D) convChannel(dst []float32, ch, tileX, unroll int) {
	in := cv.in[ch*cv.length : (ch+1)*cv.length]
	out := dst[ch*cv.outLen : (ch+1)*cv.outLen]

	for xx := 0; xx < cv.outLen; xx += tileX {
		xEnd := xx + tileX
		// Unrolled main loop, then the remainder.
		x := xx
		for ; x+unroll <= xEnd; x += unroll {
			for u := 0; u < unroll; u++ {
				out[x+u] = dotAt(in, cv.filter, x+u)
			}
		}
		for ; x < xEnd; x++ {
			out[x] = dotAt(in, cv.filter, x)
		}
	}
}

func dotAt(in, filter []float32, x int) float32 {
	var acc float32
	for w, fv := range filter {
		acc += in[x+w] * fv
	}
	return acc
}

func (cv *conv1D) Reference() []float32 {
	out := make([]float32, cv.channels*cv.outLen)
	for ch := 0; ch < cv.channels; ch++ {
		in := cv.in[ch*cv.length : (ch+1)*cv.length]
		for x := 0; x < cv.outLen; x++ {
			out[ch*cv.outLen+x] = dotAt(in, cv.filter, x)
		}
	}
	return out
}
