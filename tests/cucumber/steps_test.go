//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ragcheck/internal/cli"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	projectDir  string
	configPath  string
	previousWD  string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
	initialized bool
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a project with a valid ragcheck configuration$`, state.aProjectWithValidConfig)
	ctx.Step(`^the config is invalid$`, state.theConfigIsInvalid)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the error message points to the invalid field$`, state.theErrorMessagePointsToInvalidField)
}

// reset clears buffers and resets state before each scenario.
func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.initialized = false
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
	}
}

func (s *featureState) aProjectWithValidConfig() error {
	if s.initialized {
		return nil
	}
	dir, err := os.MkdirTemp("", "ragcheck-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	s.configPath = filepath.Join(dir, ".ragcheck", "config.yml")
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "documents"), 0o755); err != nil {
		return fmt.Errorf("create documents dir: %w", err)
	}
	story := "Alex walked into the enchanted forest at dawn and met the lighthouse keeper."
	if err := os.WriteFile(filepath.Join(dir, "documents", "story.txt"), []byte(story), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	if err := s.writeConfig(validConfigYAML()); err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.initialized = true
	return nil
}

func (s *featureState) theConfigIsInvalid() error {
	if err := s.aProjectWithValidConfig(); err != nil {
		return err
	}
	return s.writeConfig(invalidConfigYAML())
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "ragcheck" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected output to contain %q, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theErrorMessagePointsToInvalidField() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "version") {
		return fmt.Errorf("expected error to mention version, got %q", errOutput)
	}
	return nil
}

func (s *featureState) writeConfig(contents string) error {
	if s.configPath == "" {
		return fmt.Errorf("config path is not set")
	}
	if err := os.WriteFile(s.configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func validConfigYAML() string {
	return `version: 1
target:
  base_url: "http://localhost:8000"
  timeout_seconds: 5

documents:
  - path: documents/story.txt
    description: "Short fiction sample"

judge:
  enabled: false

run:
  workers: 1
`
}

func invalidConfigYAML() string {
	return `version: 2
target:
  base_url: "http://localhost:8000"

documents:
  - path: documents/story.txt
`
}
