package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"ragcheck/internal/config"
	"ragcheck/internal/corpus"
)

// runCLI executes a command and captures its output.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// writeProject lays out a project directory with one document and a config
// pointing at the given target URL. It returns the project root and the
// config path.
func writeProject(t *testing.T, baseURL string) (string, string) {
	t.Helper()
	root := t.TempDir()
	docsDir := filepath.Join(root, "documents")
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		t.Fatalf("create documents dir: %v", err)
	}
	story := "Alex walked into the enchanted forest at dawn. " +
		"The old lighthouse keeper gave Alex a brass compass. " +
		"Together they crossed the river and reached the hidden village."
	if err := os.WriteFile(filepath.Join(docsDir, "story.txt"), []byte(story), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	configDir := filepath.Join(root, config.ConfigDirName)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	configPath := filepath.Join(configDir, config.ConfigFileName)
	configYAML := fmt.Sprintf(`version: 1
target:
  base_url: %q
  timeout_seconds: 5

documents:
  - path: documents/story.txt
    description: "Short fiction sample"

judge:
  enabled: false

run:
  workers: 1
`, baseURL)
	if err := os.WriteFile(configPath, []byte(configYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return root, configPath
}

// writeTestCorpus stores a minimal corpus with one factual test.
func writeTestCorpus(t *testing.T, root string) {
	t.Helper()
	yes := true
	c := corpus.Corpus{
		GeneratedAt:      "2026-08-29T10:00:00Z",
		GenerationMethod: "handwritten fixture",
		DocumentTests: map[string]corpus.DocumentTests{
			"story": {
				FactualQuestions: []corpus.Record{{
					ID:               "story_main_topic",
					Question:         "Who walked into the forest?",
					ExpectedKeywords: []string{"alex"},
					MustContainAny:   &yes,
					Category:         "main_topic",
				}},
			},
		},
		QualityBenchmarks: corpus.DefaultBenchmarks(),
		JudgeCriteria:     corpus.DefaultJudgeCriteria(),
	}
	corpusPath := filepath.Join(root, config.DefaultCorpusPath)
	if err := os.MkdirAll(filepath.Dir(corpusPath), 0o755); err != nil {
		t.Fatalf("create corpus dir: %v", err)
	}
	if err := corpus.Save(c, corpusPath); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
}

// startTargetStub serves the question endpoint with a fixed answer.
func startTargetStub(t *testing.T, answer string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/qna/" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"answer": answer})
	}))
	t.Cleanup(server.Close)
	return server
}
