package corpus

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a corpus file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("corpus validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims record fields and validates a corpus. Record ids must be
// unique within their document.
func Normalize(corpus Corpus) (Corpus, error) {
	collector := &issueCollector{}
	if len(corpus.DocumentTests) == 0 {
		collector.add("document_tests", "must include at least one document")
	}

	for name, docTests := range corpus.DocumentTests {
		prefix := fmt.Sprintf("document_tests[%s]", name)
		seenIDs := map[string]struct{}{}
		normalizeGroup(docTests.FactualQuestions, prefix+".factual_questions", seenIDs, collector)
		normalizeGroup(docTests.HallucinationTests, prefix+".hallucination_tests", seenIDs, collector)
		normalizeGroup(docTests.AnalyticalQuestions, prefix+".analytical_questions", seenIDs, collector)
		normalizeGroup(docTests.EdgeCases, prefix+".edge_cases", seenIDs, collector)
		corpus.DocumentTests[name] = docTests
	}

	if err := collector.result(); err != nil {
		return Corpus{}, err
	}
	return corpus, nil
}

func normalizeGroup(records []Record, prefix string, seenIDs map[string]struct{}, collector *issueCollector) {
	for i := range records {
		recordPrefix := fmt.Sprintf("%s[%d]", prefix, i)
		records[i].ID = strings.TrimSpace(records[i].ID)
		id := records[i].ID
		if id == "" {
			collector.add(recordPrefix+".id", "is required")
		} else if _, exists := seenIDs[id]; exists {
			collector.add(recordPrefix+".id", fmt.Sprintf("duplicate id %q", id))
		} else {
			seenIDs[id] = struct{}{}
		}

		if behavior := records[i].ExpectedBehavior; behavior != "" {
			switch behavior {
			case BehaviorShouldReject, BehaviorShouldError, BehaviorGracefulHandling:
			default:
				collector.add(recordPrefix+".expectedBehavior", fmt.Sprintf("unknown behavior %q", behavior))
			}
		}

		hasExpectations := len(records[i].ExpectedKeywords) > 0 ||
			len(records[i].ProhibitedContent) > 0 ||
			len(records[i].AcceptableResponses) > 0 ||
			records[i].ExpectedBehavior != ""
		if !hasExpectations {
			collector.add(recordPrefix, "must declare at least one expectation")
		}
	}
}
