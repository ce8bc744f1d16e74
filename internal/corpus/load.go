package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates a corpus file. JSON is assumed for a
// .json extension, YAML otherwise.
func Load(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("read corpus: %w", err)
	}
	corpus, err := parse(data, path)
	if err != nil {
		return Corpus{}, err
	}
	normalized, err := Normalize(corpus)
	if err != nil {
		return Corpus{}, err
	}
	return normalized, nil
}

func parse(data []byte, path string) (Corpus, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func parseJSON(data []byte) (Corpus, error) {
	var corpus Corpus
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&corpus); err != nil {
		return Corpus{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Corpus{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Corpus{}, fmt.Errorf("parse json: %w", err)
	}
	return corpus, nil
}

func parseYAML(data []byte) (Corpus, error) {
	var corpus Corpus
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&corpus); err != nil {
		return Corpus{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Corpus{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Corpus{}, fmt.Errorf("parse yaml: %w", err)
	}
	return corpus, nil
}

// Save writes a corpus as indented JSON.
func Save(corpus Corpus, path string) error {
	data, err := json.MarshalIndent(corpus, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal corpus: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	return nil
}
