package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseTaskYAML parses a Task from YAML bytes and validates it.
// This is used for APIs where the task is provided as payload (not via filesystem).
func ParseTaskYAML(data []byte) (*Task, error) {
	var task Task
	if err := yaml.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("failed to parse task yaml: %w", err)
	}

	task.ApplyDefaults()
	if err := validateTask(&task); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	return &task, nil
}

// ParseTaskYAMLString parses a Task from a YAML string and validates it.
func ParseTaskYAMLString(yamlText string) (*Task, error) {
	return ParseTaskYAML([]byte(yamlText))
}

// MarshalTaskYAML serializes a Task back to YAML.
func MarshalTaskYAML(task *Task) ([]byte, error) {
	if task == nil {
		return nil, fmt.Errorf("task is nil")
	}
	data, err := yaml.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task yaml: %w", err)
	}
	return data, nil
}
