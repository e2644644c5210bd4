// Package space declares enumerable schedule search spaces: named knobs
// with integer domains, an optional constraint predicate, and index-based
// access to every valid configuration.
package space

import (
	"errors"
	"fmt"

	"github.com/icemelon9/tensortune/pkg/utils"
)

var (
	// ErrEmptySpace indicates a space with no valid configurations left to sample.
	ErrEmptySpace = errors.New("space: no valid configurations")
)

// Constraint filters configurations out of a space.
type Constraint func(Configuration) bool

// Space is a read-only set of knobs plus an optional constraint.
// Configurations are addressed by a dense index in [0, Size()).
type Space struct {
	knobs      []Knob
	constraint Constraint

	// valid maps dense indices to raw cartesian indices when a
	// constraint is present; nil means every point is valid.
	valid []int
	size  int
}

// Define declares a search space over the given knobs. The knob list and
// domains are copied; the space never changes after Define returns.
func Define(knobs []Knob, constraint Constraint) (*Space, error) {
	if len(knobs) == 0 {
		return nil, fmt.Errorf("space: at least one knob is required")
	}

	seen := make(map[string]bool, len(knobs))
	product := 1
	copied := make([]Knob, len(knobs))
	for i, k := range knobs {
		if k.Name == "" {
			return nil, fmt.Errorf("space: knob %d has no name", i)
		}
		if seen[k.Name] {
			return nil, fmt.Errorf("space: duplicate knob name: %s", k.Name)
		}
		seen[k.Name] = true
		if len(k.Values) == 0 {
			return nil, fmt.Errorf("space: knob %s has an empty domain", k.Name)
		}
		vs := make([]int, len(k.Values))
		copy(vs, k.Values)
		copied[i] = Knob{Name: k.Name, Values: vs}
		product *= len(k.Values)
	}

	s := &Space{
		knobs:      copied,
		constraint: constraint,
		size:       product,
	}

	if constraint != nil {
		s.valid = make([]int, 0, product)
		for raw := 0; raw < product; raw++ {
			if constraint(s.decode(raw)) {
				s.valid = append(s.valid, raw)
			}
		}
		s.size = len(s.valid)
	}

	return s, nil
}

// Knobs returns a copy of the declared knob list.
func (s *Space) Knobs() []Knob {
	out := make([]Knob, len(s.knobs))
	for i, k := range s.knobs {
		vs := make([]int, len(k.Values))
		copy(vs, k.Values)
		out[i] = Knob{Name: k.Name, Values: vs}
	}
	return out
}

// Size returns the number of valid configurations.
func (s *Space) Size() int {
	return s.size
}

// At returns the configuration at the given dense index.
func (s *Space) At(i int) (Configuration, error) {
	if i < 0 || i >= s.size {
		return Configuration{}, fmt.Errorf("space: index %d out of range [0, %d)", i, s.size)
	}
	raw := i
	if s.valid != nil {
		raw = s.valid[i]
	}
	return s.decode(raw), nil
}

// decode converts a raw cartesian index into a configuration using
// mixed-radix positional decoding over the knob domains.
func (s *Space) decode(raw int) Configuration {
	values := make(map[string]int, len(s.knobs))
	for i := len(s.knobs) - 1; i >= 0; i-- {
		k := s.knobs[i]
		values[k.Name] = k.Values[raw%len(k.Values)]
		raw /= len(k.Values)
	}
	return NewConfiguration(values)
}

// Indices decodes a raw cartesian index into per-knob domain positions.
// Tuners that mutate knob positions (rather than values) use this form.
func (s *Space) Indices(i int) ([]int, error) {
	if i < 0 || i >= s.size {
		return nil, fmt.Errorf("space: index %d out of range [0, %d)", i, s.size)
	}
	raw := i
	if s.valid != nil {
		raw = s.valid[i]
	}
	out := make([]int, len(s.knobs))
	for j := len(s.knobs) - 1; j >= 0; j-- {
		n := len(s.knobs[j].Values)
		out[j] = raw % n
		raw /= n
	}
	return out, nil
}

// FromIndices builds a configuration from per-knob domain positions.
// Returns ErrEmptySpace when the point is filtered out by the constraint.
func (s *Space) FromIndices(idx []int) (Configuration, error) {
	if len(idx) != len(s.knobs) {
		return Configuration{}, fmt.Errorf("space: got %d indices for %d knobs", len(idx), len(s.knobs))
	}
	values := make(map[string]int, len(s.knobs))
	for i, k := range s.knobs {
		if idx[i] < 0 || idx[i] >= len(k.Values) {
			return Configuration{}, fmt.Errorf("space: index %d out of range for knob %s", idx[i], k.Name)
		}
		values[k.Name] = k.Values[idx[i]]
	}
	cfg := NewConfiguration(values)
	if s.constraint != nil && !s.constraint(cfg) {
		return Configuration{}, ErrEmptySpace
	}
	return cfg, nil
}

// All returns every valid configuration in index order.
func (s *Space) All() []Configuration {
	out := make([]Configuration, 0, s.size)
	for i := 0; i < s.size; i++ {
		cfg, _ := s.At(i)
		out = append(out, cfg)
	}
	return out
}

// Sample draws up to n distinct configurations uniformly at random,
// skipping any whose key appears in exclude. Returns ErrEmptySpace when
// nothing is left to draw.
func (s *Space) Sample(r *utils.RandSource, n int, exclude map[string]bool) ([]Configuration, error) {
	if s.size == 0 {
		return nil, ErrEmptySpace
	}

	perm := r.Perm(s.size)
	out := make([]Configuration, 0, utils.Min(n, s.size))
	for _, i := range perm {
		if len(out) >= n {
			break
		}
		cfg, err := s.At(i)
		if err != nil {
			return nil, err
		}
		if exclude != nil && exclude[cfg.Key()] {
			continue
		}
		out = append(out, cfg)
	}

	if len(out) == 0 {
		return nil, ErrEmptySpace
	}
	return out, nil
}
