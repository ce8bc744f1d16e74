package live

import (
	"time"

	"ragcheck/internal/runner"
)

// TestRow holds UI state for a single test.
type TestRow struct {
	Index          int
	ID             string
	Document       string
	Question       string
	Status         runner.TestEventType
	ResponseTimeMS int64
	Errors         []string
	Warnings       []string
	StartedAt      time.Time
	FinishedAt     time.Time
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Queued          int
	Asking          int
	Judging         int
	Done            int
	Passed          int
	Failed          int
	TransportErrors int
}

// State captures the live UI state for a run.
type State struct {
	RunID      string
	Target     string
	TotalTests int
	StartedAt  time.Time
	LastEvent  string
	Rows       []TestRow
	Counts     StatusCounts
}
