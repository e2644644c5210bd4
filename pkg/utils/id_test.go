package utils

import (
	"strings"
	"testing"
)

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		if id == "" {
			t.Fatal("GenerateID returned empty string")
		}
		if seen[id] {
			t.Fatalf("duplicate ID: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateJobID(t *testing.T) {
	id := GenerateJobID()
	if !strings.HasPrefix(id, "job-") {
		t.Errorf("job ID missing prefix: %s", id)
	}
	other := GenerateJobID()
	if id == other {
		t.Errorf("job IDs collided: %s", id)
	}
}
