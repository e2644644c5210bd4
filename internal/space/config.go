package space

import (
	"fmt"
	"sort"
	"strings"
)

// Configuration is one concrete assignment of values to a declared
// search space. It is immutable once created: samplers hand out fresh
// copies and accessors never expose internal state.
type Configuration struct {
	values map[string]int
	key    string
}

// NewConfiguration builds a configuration from a name to value mapping.
// The input map is copied.
func NewConfiguration(values map[string]int) Configuration {
	vs := make(map[string]int, len(values))
	for k, v := range values {
		vs[k] = v
	}
	return Configuration{
		values: vs,
		key:    canonicalKey(vs),
	}
}

func canonicalKey(values map[string]int) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%d", name, values[name])
	}
	return b.String()
}

// Get returns the value assigned to the named knob.
func (c Configuration) Get(name string) (int, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Int returns the value assigned to the named knob, or def when absent.
func (c Configuration) Int(name string, def int) int {
	if v, ok := c.values[name]; ok {
		return v
	}
	return def
}

// Bool interprets the named knob as a flag.
func (c Configuration) Bool(name string) bool {
	return c.values[name] != 0
}

// Key returns the canonical string form, used as identity in logs and caches.
func (c Configuration) Key() string {
	return c.key
}

// Len returns the number of assigned knobs.
func (c Configuration) Len() int {
	return len(c.values)
}

// Values returns a copy of the underlying assignment.
func (c Configuration) Values() map[string]int {
	out := make(map[string]int, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

func (c Configuration) String() string {
	return c.key
}
