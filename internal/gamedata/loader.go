package gamedata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and unmarshals a YAML file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
	}

	return result, nil
}

// LoadFile reads and decodes a YAML file from disk, for catalogs supplied
// at run time.
func LoadFile[T any](path string) (T, error) {
	var result T

	f, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&result); err != nil {
		return result, fmt.Errorf("failed to decode YAML from %s: %w", path, err)
	}

	return result, nil
}
