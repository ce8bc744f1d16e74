package live

import "ragcheck/internal/runner"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventTest delivers a test status update.
	EventTest
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind       EventKind
	RunID      string
	Target     string
	TotalTests int
	Test       runner.TestEvent
}
