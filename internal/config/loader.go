package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTuning reads a YAML tuning file. Keys missing from the file keep
// their DefaultTuning values.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	tuning, err := ParseTuning(data)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded tuning from %s", path)
	return tuning, nil
}

// ParseTuning decodes YAML over the defaults and validates the result.
func ParseTuning(data []byte) (*Tuning, error) {
	tuning := DefaultTuning()
	if err := yaml.Unmarshal(data, tuning); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return tuning, nil
}
