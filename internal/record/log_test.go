package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/icemelon9/tensortune/internal/space"
)

func TestLogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.jsonl")

	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	cfgA := space.NewConfiguration(map[string]int{"tile": 4})
	cfgB := space.NewConfiguration(map[string]int{"tile": 8})

	if err := w.Append(NewTrial(cfgA, 10, nil)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := w.Append(NewTrial(cfgB, 5, nil)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	trials, err := ReadLog(path)
	if err != nil {
		t.Fatalf("ReadLog failed: %v", err)
	}
	if len(trials) != 2 {
		t.Fatalf("read %d trials, want 2", len(trials))
	}
	if trials[0].CostMs != 10 || trials[1].CostMs != 5 {
		t.Errorf("append order not preserved: %v", trials)
	}
	if trials[1].Key() != cfgB.Key() {
		t.Errorf("config did not round trip: %s != %s", trials[1].Key(), cfgB.Key())
	}
}

func TestWriterAppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.jsonl")
	cfg := space.NewConfiguration(map[string]int{"tile": 2})

	for i := 0; i < 2; i++ {
		w, err := NewWriter(path)
		if err != nil {
			t.Fatalf("NewWriter failed: %v", err)
		}
		if err := w.Append(NewTrial(cfg, float64(i), nil)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	trials, err := ReadLog(path)
	if err != nil {
		t.Fatalf("ReadLog failed: %v", err)
	}
	if len(trials) != 2 {
		t.Errorf("reopening truncated the log: %d trials", len(trials))
	}
}

func TestReadLogSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.jsonl")
	content := `{"config":{"tile":4},"cost_ms":1,"timestamp_unix_ms":1}

{"config":{"tile":8},"cost_ms":2,"timestamp_unix_ms":2}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	trials, err := ReadLog(path)
	if err != nil {
		t.Fatalf("ReadLog failed: %v", err)
	}
	if len(trials) != 2 {
		t.Errorf("read %d trials, want 2", len(trials))
	}
}

func TestReadLogMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.jsonl")
	if err := os.WriteFile(path, []byte("not json\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	if _, err := ReadLog(path); err == nil {
		t.Error("expected error for malformed record")
	}
}

func TestBestFromLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.jsonl")
	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	w.Append(NewTrial(space.NewConfiguration(map[string]int{"t": 1}), 9, nil))
	w.Append(NewTrial(space.NewConfiguration(map[string]int{"t": 2}), 4, nil))
	w.Close()

	best, err := BestFromLog(path)
	if err != nil {
		t.Fatalf("BestFromLog failed: %v", err)
	}
	if best.CostMs != 4 {
		t.Errorf("best cost = %f, want 4", best.CostMs)
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory()
	cfg := space.NewConfiguration(map[string]int{"t": 1})

	if h.Seen(cfg.Key()) {
		t.Error("empty history claims to have seen config")
	}

	h.Append(NewTrial(cfg, 3, nil))
	h.Append(NewTrial(space.NewConfiguration(map[string]int{"t": 2}), 1, nil))

	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
	if !h.Seen(cfg.Key()) {
		t.Error("history lost a recorded config")
	}

	best, err := h.Best()
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if best.CostMs != 1 {
		t.Errorf("best cost = %f, want 1", best.CostMs)
	}

	visited := h.Visited()
	if len(visited) != 2 {
		t.Errorf("Visited returned %d keys, want 2", len(visited))
	}
	// Mutating the returned set must not affect the history.
	delete(visited, cfg.Key())
	if !h.Seen(cfg.Key()) {
		t.Error("Visited exposed internal state")
	}
}
