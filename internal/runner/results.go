package runner

import (
	"time"

	"ragcheck/internal/judge"
	"ragcheck/internal/validator"
)

type Results struct {
	RunID      string            `json:"run_id"`
	Target     string            `json:"target"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Documents  []DocumentResult  `json:"documents"`
	Summary    validator.Summary `json:"summary"`
}

type DocumentResult struct {
	DocumentName string            `json:"document_name"`
	Tests        []TestResult      `json:"tests"`
	Summary      validator.Summary `json:"summary"`
}

type TestResult struct {
	TestID         string            `json:"test_id"`
	Type           string            `json:"type"`
	Question       string            `json:"question"`
	Response       string            `json:"response"`
	StatusCode     int               `json:"status_code"`
	ResponseTimeMS int64             `json:"response_time_ms"`
	TransportError string            `json:"transport_error,omitempty"`
	Validation     validator.Result  `json:"validation"`
	Judge          *judge.Evaluation `json:"judge,omitempty"`
	Detection      *judge.Detection  `json:"detection,omitempty"`
}

// allValidations flattens every per-test validation result for summarizing.
func allValidations(documents []DocumentResult) []validator.Result {
	var results []validator.Result
	for _, document := range documents {
		for _, test := range document.Tests {
			results = append(results, test.Validation)
		}
	}
	return results
}
