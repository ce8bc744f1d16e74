package spec

import "testing"

// TestParseConfigValid verifies valid config parsing succeeds.
func TestParseConfigValid(t *testing.T) {
	data := []byte(`version: 1
target:
  base_url: "http://localhost:8000"
  timeout_seconds: 30
documents:
  - path: documents/story.pdf
    description: "Short fiction sample"
corpus:
  path: ".ragcheck/test-data.json"
judge:
  enabled: true
  model: gemini-2.0-flash
  criteria: [relevance, accuracy]
run:
  workers: 4
  output_dir: ".ragcheck/results"
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Target.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected target base url %q", cfg.Target.BaseURL)
	}
	if len(cfg.Documents) != 1 || cfg.Documents[0].Path != "documents/story.pdf" {
		t.Fatalf("unexpected documents: %+v", cfg.Documents)
	}
	if !cfg.Judge.Enabled || cfg.Run.Workers != 4 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

// TestParseConfigUnknownField verifies unknown fields are rejected.
func TestParseConfigUnknownField(t *testing.T) {
	data := []byte(`version: 1
target:
  base_url: "http://localhost:8000"
unknown: true
`)
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

// TestParseConfigRejectsMultipleDocs verifies multiple YAML docs are rejected.
func TestParseConfigRejectsMultipleDocs(t *testing.T) {
	data := []byte("version: 1\n---\nversion: 1\n")
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for multiple documents")
	}
}
