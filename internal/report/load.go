package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ragcheck/internal/runner"
)

func LoadResults(path string) (runner.Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runner.Results{}, err
	}
	var results runner.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return runner.Results{}, err
	}
	return results, nil
}

// ResolveRun loads a run from the output directory. An empty or "latest" ref
// selects the most recent run; run IDs sort chronologically by construction.
func ResolveRun(outputDir, ref string) (runner.Results, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || ref == "latest" {
		runDir, err := findLatestRunDir(outputDir)
		if err != nil {
			return runner.Results{}, "", err
		}
		results, err := LoadResults(filepath.Join(runDir, "results.json"))
		return results, runDir, err
	}

	runDir := filepath.Join(outputDir, ref)
	info, err := os.Stat(runDir)
	if err != nil || !info.IsDir() {
		return runner.Results{}, "", fmt.Errorf("no run %q under %s", ref, outputDir)
	}
	results, err := LoadResults(filepath.Join(runDir, "results.json"))
	return results, runDir, err
}

// LoadAllRuns loads every stored run, oldest first.
func LoadAllRuns(outputDir string) ([]runner.Results, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("read output dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var runs []runner.Results
	for _, name := range names {
		results, err := LoadResults(filepath.Join(outputDir, name, "results.json"))
		if err != nil {
			continue
		}
		runs = append(runs, results)
	}
	return runs, nil
}

func findLatestRunDir(outputDir string) (string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", fmt.Errorf("read output dir: %w", err)
	}
	latest := ""
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if entry.Name() > latest {
			latest = entry.Name()
		}
	}
	if latest == "" {
		return "", fmt.Errorf("no runs found under %s", outputDir)
	}
	return filepath.Join(outputDir, latest), nil
}
