package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTask(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "task.yaml")
	if err := os.WriteFile(path, []byte(validTaskYAML), 0o644); err != nil {
		t.Fatalf("write temp task: %v", err)
	}

	task, err := LoadTask(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Name != "matmul-256" {
		t.Errorf("name = %s, want matmul-256", task.Name)
	}
}

func TestLoadTaskMissingFile(t *testing.T) {
	_, err := LoadTask(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadTaskInvalidContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("kernel: matmul\n"), 0o644); err != nil {
		t.Fatalf("write temp task: %v", err)
	}

	if _, err := LoadTask(path); err == nil {
		t.Fatal("expected validation error")
	}
}
