// Package validator applies deterministic rules to a generated answer using
// the expectation record persisted for its test id. Every applicable rule
// runs and contributes errors or warnings; validity is decided once at the
// end as the absence of errors.
package validator

import (
	"fmt"

	"ragcheck/internal/corpus"
)

// Result is the verdict for one validation call. Valid is strictly
// len(Errors) == 0; warnings never affect validity.
type Result struct {
	TestID       string         `json:"testId"`
	DocumentName string         `json:"documentName"`
	Category     string         `json:"category"`
	Valid        bool           `json:"valid"`
	Errors       []string       `json:"errors"`
	Warnings     []string       `json:"warnings"`
	Metrics      map[string]any `json:"metrics"`
}

// Validator evaluates responses against a corpus with a fixed benchmark
// profile. Stateless per call; safe for concurrent use across test ids.
type Validator struct {
	corpus     corpus.Corpus
	benchmarks corpus.Benchmarks
}

// New constructs a validator. The benchmark profile is explicit so multiple
// profiles can coexist.
func New(c corpus.Corpus, benchmarks corpus.Benchmarks) *Validator {
	return &Validator{corpus: c, benchmarks: benchmarks}
}

// NoResponseTime marks a validation call without a measured response time.
const NoResponseTime int64 = -1

// Validate evaluates a response against the record for testID in the named
// document. responseTimeMS below zero skips the latency rule. Lookup
// failures return an error-shaped result rather than an error value.
func (v *Validator) Validate(testID, documentName, response string, responseTimeMS int64) Result {
	result := Result{
		TestID:       testID,
		DocumentName: documentName,
		Category:     "unknown",
		Errors:       []string{},
		Warnings:     []string{},
		Metrics:      map[string]any{},
	}

	docTests, ok := v.corpus.DocumentTests[documentName]
	if !ok {
		result.Errors = append(result.Errors, fmt.Sprintf("No test data found for document: %s", documentName))
		return result
	}
	record, found := docTests.FindRecord(testID)
	if !found {
		result.Errors = append(result.Errors, fmt.Sprintf("Test case not found: %s", testID))
		return result
	}
	if record.Category != "" {
		result.Category = record.Category
	}

	// All rules run independently; none short-circuits the others.
	if len(record.ExpectedKeywords) > 0 {
		v.checkKeywords(response, record, &result)
	}
	if len(record.ProhibitedContent) > 0 {
		v.checkProhibitedContent(response, record, &result)
	}
	if len(record.AcceptableResponses) > 0 {
		v.checkAcceptableResponses(response, record, &result)
	}
	if record.ExpectedBehavior != "" {
		v.checkExpectedBehavior(response, record, &result)
	}
	if responseTimeMS >= 0 {
		v.checkResponseTime(responseTimeMS, &result)
	}
	v.checkResponseLength(response, &result)

	result.Valid = len(result.Errors) == 0
	return result
}
