package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"ragcheck/internal/spec"
)

// Validate checks a config for correctness and referenced files.
func Validate(cfg *spec.Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	validateTarget(cfg, collector.add)
	validateDocuments(cfg, baseDir, collector.add)
	validateJudge(cfg, collector.add)
	validateRun(cfg, collector.add)

	return collector.result()
}

func validateTarget(cfg *spec.Config, add issueAdder) {
	parsed, err := url.Parse(cfg.Target.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		add("target.base_url", fmt.Sprintf("invalid URL %q", cfg.Target.BaseURL))
	}
	if cfg.Target.TimeoutSeconds < 0 {
		add("target.timeout_seconds", "must not be negative")
	}
}

func validateDocuments(cfg *spec.Config, baseDir string, add issueAdder) {
	seen := map[string]bool{}
	for i, document := range cfg.Documents {
		field := fmt.Sprintf("documents[%d].path", i)
		path := strings.TrimSpace(document.Path)
		if path == "" {
			add(field, "is required")
			continue
		}
		if seen[path] {
			add(field, fmt.Sprintf("duplicate document path %q", path))
			continue
		}
		seen[path] = true

		resolved := path
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(baseDir, resolved)
		}
		info, err := os.Stat(resolved)
		if os.IsNotExist(err) {
			add(field, fmt.Sprintf("file %q does not exist", path))
			continue
		}
		if err != nil {
			add(field, fmt.Sprintf("stat %q: %v", path, err))
			continue
		}
		if info.IsDir() {
			add(field, fmt.Sprintf("%q is a directory", path))
		}
	}
}

func validateJudge(cfg *spec.Config, add issueAdder) {
	for i, criterion := range cfg.Judge.Criteria {
		if strings.TrimSpace(criterion) == "" {
			add(fmt.Sprintf("judge.criteria[%d]", i), "must not be empty")
		}
	}
}

func validateRun(cfg *spec.Config, add issueAdder) {
	if cfg.Run.Workers < 1 {
		add("run.workers", "must be at least 1")
	}
}
