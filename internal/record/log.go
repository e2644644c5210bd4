package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Writer appends trials to a JSONL log file, one record per line.
type Writer struct {
	mu sync.Mutex
	f  *os.File
}

// NewWriter opens the log at path for appending, creating it if needed.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("record: open log %s: %w", path, err)
	}
	return &Writer{f: f}, nil
}

// Append writes one trial as a single JSON line.
func (w *Writer) Append(t Trial) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("record: marshal trial: %w", err)
	}
	data = append(data, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.f.Write(data); err != nil {
		return fmt.Errorf("record: append trial: %w", err)
	}
	return nil
}

// Close syncs and closes the log file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.f.Sync(); err != nil {
		w.f.Close()
		return fmt.Errorf("record: sync log: %w", err)
	}
	return w.f.Close()
}

// ReadLog reads every trial from a JSONL log in append order.
// Blank lines are skipped; a malformed record fails the whole read.
func ReadLog(path string) ([]Trial, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("record: open log %s: %w", path, err)
	}
	defer f.Close()

	var trials []Trial
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var t Trial
		if err := json.Unmarshal([]byte(text), &t); err != nil {
			return nil, fmt.Errorf("record: malformed trial at %s:%d: %w", path, line, err)
		}
		trials = append(trials, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("record: read log %s: %w", path, err)
	}
	return trials, nil
}

// BestFromLog reads a log and selects the best trial in one step.
func BestFromLog(path string) (Trial, error) {
	trials, err := ReadLog(path)
	if err != nil {
		return Trial{}, err
	}
	return Best(trials)
}
