package config

import (
	"fmt"
	"os"
)

const defaultConfig = `version: 1
target:
  base_url: "http://localhost:8000"
  timeout_seconds: 30

documents:
  - path: documents/story.pdf
    description: "Short fiction sample"

corpus:
  path: ".ragcheck/test-data.json"

judge:
  enabled: false
  model: "gemini-2.0-flash"
  criteria: [relevance, accuracy, completeness, grounding]

run:
  workers: 1
  output_dir: ".ragcheck/results"
`

// Scaffold writes a starter config file at configPath. It refuses to
// overwrite an existing file.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
