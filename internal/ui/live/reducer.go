package live

import (
	"fmt"

	"ragcheck/internal/runner"
)

// Reduce applies a test event to the UI state.
func Reduce(state State, event runner.TestEvent) State {
	state = ensureRow(state, event)
	state = applyTestEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the target index.
func ensureRow(state State, event runner.TestEvent) State {
	if event.TestIndex < 0 {
		return state
	}
	if event.TestIndex < len(state.Rows) {
		return state
	}
	rows := make([]TestRow, event.TestIndex+1)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = TestRow{Index: i, Status: runner.TestQueued}
	}
	state.Rows = rows
	return state
}

// applyTestEvent updates a row with the given event.
func applyTestEvent(state State, event runner.TestEvent) State {
	if event.TestIndex < 0 || event.TestIndex >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.TestIndex]
	if row.ID == "" {
		row.ID = event.TestID
	}
	if row.Document == "" {
		row.Document = event.DocumentName
	}
	if row.Question == "" {
		row.Question = event.Question
	}
	row.Status = event.Type
	if event.Type == runner.TestAsking && row.StartedAt.IsZero() {
		row.StartedAt = event.EmittedAt
	}
	if isTerminalStatus(event.Type) {
		if !event.EmittedAt.IsZero() {
			row.FinishedAt = event.EmittedAt
		}
		row.ResponseTimeMS = event.ResponseTimeMS
		row.Errors = event.Errors
		row.Warnings = event.Warnings
	}
	state.Rows[event.TestIndex] = row
	return state
}

// isTerminalStatus reports whether a status is final.
func isTerminalStatus(status runner.TestEventType) bool {
	switch status {
	case runner.TestPassed,
		runner.TestFailed,
		runner.TestTransportError:
		return true
	default:
		return false
	}
}

// recount recomputes status counts for the current rows.
func recount(rows []TestRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case runner.TestQueued:
			counts.Queued++
		case runner.TestAsking:
			counts.Asking++
		case runner.TestJudging:
			counts.Judging++
		case runner.TestPassed:
			counts.Done++
			counts.Passed++
		case runner.TestFailed:
			counts.Done++
			counts.Failed++
		case runner.TestTransportError:
			counts.Done++
			counts.TransportErrors++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event runner.TestEvent) string {
	id := event.TestID
	if id == "" {
		id = formatIndex(event.TestIndex)
	}
	switch event.Type {
	case runner.TestPassed:
		if len(event.Warnings) > 0 {
			return fmt.Sprintf("%s passed with %d warning(s)", id, len(event.Warnings))
		}
		return fmt.Sprintf("%s passed", id)
	case runner.TestFailed:
		if len(event.Errors) > 0 {
			return fmt.Sprintf("%s failed: %s", id, event.Errors[0])
		}
		return fmt.Sprintf("%s failed", id)
	case runner.TestTransportError:
		if len(event.Errors) > 0 {
			return fmt.Sprintf("%s transport error: %s", id, event.Errors[0])
		}
		return fmt.Sprintf("%s transport error", id)
	case runner.TestJudging:
		return fmt.Sprintf("%s waiting for judge", id)
	}
	return ""
}
