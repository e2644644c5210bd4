// Package model runs a single transformer decoder block on top of the
// tuned kernels: QKV projection, scaled dot-product attention over a KV
// cache, output projection, and a bias+ReLU MLP. It exists to deploy a
// tuning log against a realistic workload and to benchmark the result.
package model

import "fmt"

// KVCache stores key and value rows for the tokens decoded so far. The
// backing buffers are allocated once for maxLen rows; Append copies new
// rows in place and Reset just rewinds the length.
type KVCache struct {
	keys   []float32
	values []float32

	embedDim int
	maxLen   int
	length   int
}

// NewKVCache allocates a cache for up to maxLen rows of embedDim floats.
func NewKVCache(maxLen, embedDim int) *KVCache {
	return &KVCache{
		keys:     make([]float32, maxLen*embedDim),
		values:   make([]float32, maxLen*embedDim),
		embedDim: embedDim,
		maxLen:   maxLen,
	}
}

// Append copies one or more key/value rows into the cache. Both slices
// must hold the same whole number of embedDim-wide rows.
func (c *KVCache) Append(k, v []float32) error {
	if len(k) != len(v) {
		return fmt.Errorf("model: key/value length mismatch: %d vs %d", len(k), len(v))
	}
	if len(k) == 0 || len(k)%c.embedDim != 0 {
		return fmt.Errorf("model: append of %d floats is not whole rows of %d", len(k), c.embedDim)
	}
	rows := len(k) / c.embedDim
	if c.length+rows > c.maxLen {
		return fmt.Errorf("model: cache overflow: %d + %d rows exceeds %d", c.length, rows, c.maxLen)
	}
	off := c.length * c.embedDim
	copy(c.keys[off:], k)
	copy(c.values[off:], v)
	c.length += rows
	return nil
}

// Len returns the number of cached rows.
func (c *KVCache) Len() int {
	return c.length
}

// Cap returns the maximum number of rows the cache can hold.
func (c *KVCache) Cap() int {
	return c.maxLen
}

// Keys returns a view over the cached key rows. The view is invalidated
// by the next Append.
func (c *KVCache) Keys() []float32 {
	return c.keys[:c.length*c.embedDim]
}

// Values returns a view over the cached value rows.
func (c *KVCache) Values() []float32 {
	return c.values[:c.length*c.embedDim]
}

// Reset rewinds the cache for a new sequence. Old rows are overwritten
// by subsequent appends, so nothing is zeroed.
func (c *KVCache) Reset() {
	c.length = 0
}
