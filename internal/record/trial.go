// Package record holds the append-only tuning log: one trial per
// measured configuration, a JSONL reader/writer for persistence, and
// best-trial selection over the recorded results.
package record

import (
	"errors"
	"time"

	"github.com/icemelon9/tensortune/internal/space"
)

// ErrNoValidTrial indicates that every recorded trial carries an error.
var ErrNoValidTrial = errors.New("record: no valid trial")

// Trial is one compile-and-measure cycle for a single configuration.
// Trials are write-once: nothing mutates a trial after it is recorded.
type Trial struct {
	Config          map[string]int `json:"config"`
	CostMs          float64        `json:"cost_ms"`
	Error           string         `json:"error,omitempty"`
	TimestampUnixMs int64          `json:"timestamp_unix_ms"`
}

// NewTrial records an outcome for the given configuration. A nil err
// marks the trial as valid.
func NewTrial(cfg space.Configuration, costMs float64, err error) Trial {
	t := Trial{
		Config:          cfg.Values(),
		CostMs:          costMs,
		TimestampUnixMs: time.Now().UTC().UnixMilli(),
	}
	if err != nil {
		t.Error = err.Error()
	}
	return t
}

// OK reports whether the trial completed without error.
func (t Trial) OK() bool {
	return t.Error == ""
}

// Configuration rebuilds the trial's configuration value.
func (t Trial) Configuration() space.Configuration {
	return space.NewConfiguration(t.Config)
}

// Key returns the canonical identity of the trial's configuration.
func (t Trial) Key() string {
	return t.Configuration().Key()
}

// Best returns the trial with the minimal cost among error-free trials.
// Ties break toward the trial recorded first. Returns ErrNoValidTrial
// when the log is empty or every trial errored.
func Best(trials []Trial) (Trial, error) {
	found := false
	var best Trial
	for _, t := range trials {
		if !t.OK() {
			continue
		}
		// Strict comparison keeps the earliest trial on equal cost.
		if !found || t.CostMs < best.CostMs {
			best = t
			found = true
		}
	}
	if !found {
		return Trial{}, ErrNoValidTrial
	}
	return best, nil
}
