package record

import "sync"

// History is the in-memory view of a tuning run's trials. It mirrors
// the on-disk log: append-only, with snapshot access for selection and
// progress reporting.
type History struct {
	mu     sync.RWMutex
	trials []Trial
	keys   map[string]bool
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		keys: make(map[string]bool),
	}
}

// Append records a trial.
func (h *History) Append(t Trial) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.trials = append(h.trials, t)
	h.keys[t.Key()] = true
}

// Len returns the number of recorded trials.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.trials)
}

// Seen reports whether a configuration key has already been measured.
func (h *History) Seen(key string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.keys[key]
}

// Visited returns a copy of the measured configuration keys, in the
// form space samplers take as an exclusion set.
func (h *History) Visited() map[string]bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[string]bool, len(h.keys))
	for k := range h.keys {
		out[k] = true
	}
	return out
}

// Snapshot returns a copy of the trials in append order.
func (h *History) Snapshot() []Trial {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Trial, len(h.trials))
	copy(out, h.trials)
	return out
}

// Best selects the best trial recorded so far.
func (h *History) Best() (Trial, error) {
	return Best(h.Snapshot())
}
