package runner

import "time"

// TestEventType identifies a test status update for observers.
type TestEventType string

const (
	// TestQueued marks a test known but not yet started.
	TestQueued TestEventType = "queued"
	// TestAsking marks a question in flight to the target.
	TestAsking TestEventType = "asking"
	// TestJudging marks an external judge call in progress.
	TestJudging TestEventType = "judging"
	// TestPassed marks a test whose validation produced no errors.
	TestPassed TestEventType = "passed"
	// TestFailed marks a test whose validation produced errors.
	TestFailed TestEventType = "failed"
	// TestTransportError marks a failed round trip to the target.
	TestTransportError TestEventType = "transport_error"
)

// TestEvent carries a single status update for a test.
type TestEvent struct {
	DocumentName   string
	TestID         string
	TestIndex      int
	Question       string
	Type           TestEventType
	ResponseTimeMS int64
	Errors         []string
	Warnings       []string
	EmittedAt      time.Time
}

// RunObserver receives run lifecycle events for UI or logging.
type RunObserver interface {
	// OnRunStart signals the start of a run.
	OnRunStart(runID string, target string, totalTests int)
	// OnTestEvent delivers a test status update.
	OnTestEvent(event TestEvent)
	// OnRunEnd signals run completion.
	OnRunEnd(results Results)
}

type noopObserver struct{}

func (noopObserver) OnRunStart(string, string, int) {}
func (noopObserver) OnTestEvent(TestEvent)          {}
func (noopObserver) OnRunEnd(Results)               {}
