package space

import (
	"errors"
	"testing"

	"github.com/icemelon9/tensortune/pkg/utils"
)

func TestSplitKnobFactors(t *testing.T) {
	k := Split("tile_y", 12)
	want := []int{1, 2, 3, 4, 6, 12}
	if len(k.Values) != len(want) {
		t.Fatalf("Split(12) domain = %v, want %v", k.Values, want)
	}
	for i := range want {
		if k.Values[i] != want[i] {
			t.Errorf("Split(12) domain = %v, want %v", k.Values, want)
			break
		}
	}
}

func TestDefineErrors(t *testing.T) {
	tests := []struct {
		name  string
		knobs []Knob
	}{
		{"no knobs", nil},
		{"unnamed knob", []Knob{{Values: []int{1}}}},
		{"duplicate names", []Knob{Choice("x", 1), Choice("x", 2)}},
		{"empty domain", []Knob{{Name: "x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Define(tt.knobs, nil); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSpaceSizeAndAt(t *testing.T) {
	s, err := Define([]Knob{
		Choice("a", 1, 2, 3),
		Flag("b"),
	}, nil)
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	if s.Size() != 6 {
		t.Fatalf("Size = %d, want 6", s.Size())
	}

	seen := make(map[string]bool)
	for i := 0; i < s.Size(); i++ {
		cfg, err := s.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if seen[cfg.Key()] {
			t.Errorf("At(%d) repeated configuration %s", i, cfg.Key())
		}
		seen[cfg.Key()] = true
	}

	if _, err := s.At(6); err == nil {
		t.Error("expected out-of-range error")
	}
	if _, err := s.At(-1); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestSpaceConstraint(t *testing.T) {
	// Keep only points where a*b <= 8.
	s, err := Define([]Knob{
		Choice("a", 1, 2, 4, 8),
		Choice("b", 1, 2, 4, 8),
	}, func(c Configuration) bool {
		a, _ := c.Get("a")
		b, _ := c.Get("b")
		return a*b <= 8
	})
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	want := 0
	for _, a := range []int{1, 2, 4, 8} {
		for _, b := range []int{1, 2, 4, 8} {
			if a*b <= 8 {
				want++
			}
		}
	}
	if s.Size() != want {
		t.Fatalf("Size = %d, want %d", s.Size(), want)
	}

	for _, cfg := range s.All() {
		a, _ := cfg.Get("a")
		b, _ := cfg.Get("b")
		if a*b > 8 {
			t.Errorf("constraint violated: %s", cfg.Key())
		}
	}
}

func TestSampleDistinct(t *testing.T) {
	s, err := Define([]Knob{Choice("a", 1, 2, 3, 4, 5)}, nil)
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	r := utils.NewRandSource(1)
	cfgs, err := s.Sample(r, 5, nil)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(cfgs) != 5 {
		t.Fatalf("sampled %d configs, want 5", len(cfgs))
	}
	seen := make(map[string]bool)
	for _, c := range cfgs {
		if seen[c.Key()] {
			t.Errorf("duplicate sample: %s", c.Key())
		}
		seen[c.Key()] = true
	}
}

func TestSampleExhausted(t *testing.T) {
	s, err := Define([]Knob{Flag("x")}, nil)
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	exclude := map[string]bool{"x=0": true, "x=1": true}
	_, err = s.Sample(utils.NewRandSource(1), 1, exclude)
	if !errors.Is(err, ErrEmptySpace) {
		t.Errorf("err = %v, want ErrEmptySpace", err)
	}
}

func TestIndicesRoundTrip(t *testing.T) {
	s, err := Define([]Knob{
		Choice("a", 10, 20),
		Choice("b", 1, 2, 3),
	}, nil)
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	for i := 0; i < s.Size(); i++ {
		idx, err := s.Indices(i)
		if err != nil {
			t.Fatalf("Indices(%d) failed: %v", i, err)
		}
		cfg, err := s.FromIndices(idx)
		if err != nil {
			t.Fatalf("FromIndices(%v) failed: %v", idx, err)
		}
		direct, _ := s.At(i)
		if cfg.Key() != direct.Key() {
			t.Errorf("index %d: %s != %s", i, cfg.Key(), direct.Key())
		}
	}
}

func TestConfigurationImmutable(t *testing.T) {
	src := map[string]int{"a": 1}
	cfg := NewConfiguration(src)

	src["a"] = 99
	if v, _ := cfg.Get("a"); v != 1 {
		t.Errorf("configuration mutated via source map: %d", v)
	}

	out := cfg.Values()
	out["a"] = 42
	if v, _ := cfg.Get("a"); v != 1 {
		t.Errorf("configuration mutated via Values(): %d", v)
	}
}

func TestConfigurationKeyStable(t *testing.T) {
	a := NewConfiguration(map[string]int{"tile_x": 4, "tile_y": 8})
	b := NewConfiguration(map[string]int{"tile_y": 8, "tile_x": 4})
	if a.Key() != b.Key() {
		t.Errorf("keys differ for identical assignments: %s vs %s", a.Key(), b.Key())
	}
	if a.Key() != "tile_x=4,tile_y=8" {
		t.Errorf("unexpected canonical key: %s", a.Key())
	}
}
