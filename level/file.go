package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a level from YAML.
func Parse(data []byte) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("level: unmarshal: %w", err)
	}
	return &l, nil
}

// Encode encodes a level as YAML.
func Encode(l *Level) ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("level: marshal: %w", err)
	}
	return data, nil
}

// Load reads and decodes a level file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", path, err)
	}
	return l, nil
}

// Save encodes and writes a level file.
func Save(path string, l *Level) error {
	data, err := Encode(l)
	if err != nil {
		return fmt.Errorf("level: save %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("level: save %s: %w", path, err)
	}
	return nil
}
