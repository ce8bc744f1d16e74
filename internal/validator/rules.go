package validator

import (
	"fmt"
	"strings"

	"ragcheck/internal/corpus"
)

// rejectionIndicators are the phrases accepted as a refusal for
// should_reject behavior.
var rejectionIndicators = []string{
	"not applicable",
	"cannot answer",
	"not found",
	"not mentioned",
	"don't know",
	"no information",
	"sorry",
}

// checkKeywords records keyword coverage. mustContainAny=true makes zero
// matches an error, mustContainAny=false a warning; nil skips the presence
// rule but coverage metrics are still recorded.
func (v *Validator) checkKeywords(response string, record corpus.Record, result *Result) {
	lower := strings.ToLower(response)
	found := 0
	for _, keyword := range record.ExpectedKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			found++
		}
	}

	result.Metrics["keywordsFound"] = found
	result.Metrics["keywordsExpected"] = len(record.ExpectedKeywords)
	result.Metrics["keywordMatchRate"] = float64(found) / float64(len(record.ExpectedKeywords))

	if found > 0 || record.MustContainAny == nil {
		return
	}
	joined := strings.ToLower(strings.Join(record.ExpectedKeywords, ", "))
	if *record.MustContainAny {
		result.Errors = append(result.Errors,
			fmt.Sprintf("No expected keywords found. Expected any of: %s", joined))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("No expected keywords found. Consider including: %s", joined))
	}
}

// checkProhibitedContent flags any prohibited term present in the response.
// Matched terms are listed in declaration order. This is the only rule whose
// violation is unconditionally fatal.
func (v *Validator) checkProhibitedContent(response string, record corpus.Record, result *Result) {
	lower := strings.ToLower(response)
	matched := []string{}
	for _, term := range record.ProhibitedContent {
		if strings.Contains(lower, strings.ToLower(term)) {
			matched = append(matched, strings.ToLower(term))
		}
	}

	result.Metrics["prohibitedContentFound"] = len(matched)
	if len(matched) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Prohibited content found: %s", strings.Join(matched, ", ")))
	}
}

// checkAcceptableResponses warns when no acceptable pattern matches. These
// are soft quality hints, never errors.
func (v *Validator) checkAcceptableResponses(response string, record corpus.Record, result *Result) {
	lower := strings.ToLower(response)
	for _, pattern := range record.AcceptableResponses {
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return
		}
	}
	result.Warnings = append(result.Warnings,
		fmt.Sprintf("Response doesn't match acceptable patterns: %s", strings.Join(record.AcceptableResponses, ", ")))
}

// checkExpectedBehavior enforces the behavioral expectation. should_error is
// deliberately unenforced at the text level; status-code checks belong to
// the transport caller, so it only notes the deferral.
func (v *Validator) checkExpectedBehavior(response string, record corpus.Record, result *Result) {
	lower := strings.ToLower(response)
	switch record.ExpectedBehavior {
	case corpus.BehaviorShouldReject:
		for _, indicator := range rejectionIndicators {
			if strings.Contains(lower, indicator) {
				return
			}
		}
		result.Errors = append(result.Errors, "Expected rejection response but got substantive answer")
	case corpus.BehaviorShouldError:
		result.Warnings = append(result.Warnings, "should_error behavior should be validated at HTTP status level")
	case corpus.BehaviorGracefulHandling:
		if strings.TrimSpace(response) == "" {
			result.Errors = append(result.Errors, "Empty response for edge case")
		}
	}
}

// checkResponseTime buckets latency against the benchmark profile. Only the
// poor bucket produces a warning; latency alone never fails a test.
func (v *Validator) checkResponseTime(responseTimeMS int64, result *Result) {
	buckets := v.benchmarks.ResponseTimeMS
	result.Metrics["responseTime"] = responseTimeMS

	switch {
	case responseTimeMS <= buckets.Excellent:
		result.Metrics["responseTimeRating"] = "excellent"
	case responseTimeMS <= buckets.Good:
		result.Metrics["responseTimeRating"] = "good"
	case responseTimeMS <= buckets.Acceptable:
		result.Metrics["responseTimeRating"] = "acceptable"
	default:
		result.Metrics["responseTimeRating"] = "poor"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Slow response time: %dms", responseTimeMS))
	}
}

// checkResponseLength always runs: below minimum is an error, above maximum
// a warning, and in-range lengths are tagged optimal or acceptable.
func (v *Validator) checkResponseLength(response string, result *Result) {
	buckets := v.benchmarks.ResponseLength
	length := len(response)
	result.Metrics["responseLength"] = length

	switch {
	case length < buckets.Minimum:
		result.Errors = append(result.Errors, fmt.Sprintf("Response too short: %d characters", length))
	case length > buckets.Maximum:
		result.Warnings = append(result.Warnings, fmt.Sprintf("Response very long: %d characters", length))
	case length >= buckets.OptimalMin && length <= buckets.OptimalMax:
		result.Metrics["lengthRating"] = "optimal"
	default:
		result.Metrics["lengthRating"] = "acceptable"
	}
}
