package model

import "testing"

func TestKVCacheAppendAndViews(t *testing.T) {
	c := NewKVCache(4, 2)
	if c.Len() != 0 || c.Cap() != 4 {
		t.Fatalf("fresh cache: len=%d cap=%d", c.Len(), c.Cap())
	}

	if err := c.Append([]float32{1, 2}, []float32{10, 20}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := c.Append([]float32{3, 4, 5, 6}, []float32{30, 40, 50, 60}); err != nil {
		t.Fatalf("multi-row append failed: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("len = %d, want 3", c.Len())
	}

	keys := c.Keys()
	wantKeys := []float32{1, 2, 3, 4, 5, 6}
	for i, v := range wantKeys {
		if keys[i] != v {
			t.Fatalf("keys[%d] = %g, want %g", i, keys[i], v)
		}
	}
	values := c.Values()
	if values[0] != 10 || values[5] != 60 {
		t.Fatalf("unexpected values view: %v", values)
	}
}

func TestKVCacheErrors(t *testing.T) {
	c := NewKVCache(2, 2)
	if err := c.Append([]float32{1, 2}, []float32{1}); err == nil {
		t.Error("expected error for mismatched key/value lengths")
	}
	if err := c.Append([]float32{1, 2, 3}, []float32{1, 2, 3}); err == nil {
		t.Error("expected error for partial row")
	}
	if err := c.Append(nil, nil); err == nil {
		t.Error("expected error for empty append")
	}

	if err := c.Append([]float32{1, 2, 3, 4}, []float32{1, 2, 3, 4}); err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	if err := c.Append([]float32{5, 6}, []float32{5, 6}); err == nil {
		t.Error("expected overflow error on full cache")
	}
}

func TestKVCacheReset(t *testing.T) {
	c := NewKVCache(2, 2)
	if err := c.Append([]float32{1, 2}, []float32{3, 4}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	c.Reset()
	if c.Len() != 0 {
		t.Fatalf("len after reset = %d, want 0", c.Len())
	}
	if err := c.Append([]float32{7, 8}, []float32{9, 10}); err != nil {
		t.Fatalf("append after reset failed: %v", err)
	}
	if got := c.Keys()[0]; got != 7 {
		t.Fatalf("keys[0] after reset = %g, want 7", got)
	}
}
