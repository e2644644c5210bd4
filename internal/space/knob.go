package space

import (
	"github.com/icemelon9/tensortune/pkg/utils"
)

// Knob is a named tunable parameter with an enumerable integer domain.
// Boolean knobs use the domain {0, 1}.
type Knob struct {
	Name   string
	Values []int
}

// Split declares a loop-split knob whose candidate values are the
// positive divisors of the loop extent, so every tile evenly divides
// the loop it splits.
func Split(name string, extent int) Knob {
	return Knob{
		Name:   name,
		Values: utils.Factors(extent),
	}
}

// Choice declares a knob over an explicit list of values.
func Choice(name string, values ...int) Knob {
	vs := make([]int, len(values))
	copy(vs, values)
	return Knob{
		Name:   name,
		Values: vs,
	}
}

// Flag declares a boolean knob.
func Flag(name string) Knob {
	return Knob{
		Name:   name,
		Values: []int{0, 1},
	}
}
