package config

import (
	"path/filepath"
	"strings"

	"ragcheck/internal/spec"
	"ragcheck/internal/target"
)

// Default settings applied by Normalize.
const (
	defaultTimeoutSeconds = 30
	defaultJudgeModel     = "gemini-2.0-flash"
	defaultDatabaseName   = "db.duckdb"
)

func Normalize(cfg *spec.Config) {
	if strings.TrimSpace(cfg.Target.BaseURL) == "" {
		cfg.Target.BaseURL = target.DefaultBaseURL
	}
	if cfg.Target.TimeoutSeconds == 0 {
		cfg.Target.TimeoutSeconds = defaultTimeoutSeconds
	}
	if strings.TrimSpace(cfg.Corpus.Path) == "" {
		cfg.Corpus.Path = DefaultCorpusPath
	}
	if strings.TrimSpace(cfg.Judge.Model) == "" {
		cfg.Judge.Model = defaultJudgeModel
	}
	if cfg.Run.Workers == 0 {
		cfg.Run.Workers = 1
	}
	if strings.TrimSpace(cfg.Run.OutputDir) == "" {
		cfg.Run.OutputDir = DefaultOutputDir
	}
	if strings.TrimSpace(cfg.Run.Database) == "" {
		cfg.Run.Database = filepath.Join(cfg.Run.OutputDir, defaultDatabaseName)
	}
}
