package validator

import "testing"

// TestSummarizeEmpty verifies the zero-input guard.
func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalTests != 0 {
		t.Fatalf("expected 0 tests, got %d", summary.TotalTests)
	}
	if summary.SuccessRate != 0 {
		t.Fatalf("expected 0 success rate, got %v", summary.SuccessRate)
	}
	if summary.AvgResponseTime != 0 || summary.AvgResponseLength != 0 {
		t.Fatalf("expected zero averages")
	}
}

// TestSummarizeAggregates verifies counts, category grouping, and averages.
func TestSummarizeAggregates(t *testing.T) {
	results := []Result{
		{
			Category: "general_content",
			Valid:    true,
			Warnings: []string{"w1"},
			Metrics:  map[string]any{"responseTime": int64(1000), "responseLength": 100},
		},
		{
			Category: "general_content",
			Valid:    false,
			Errors:   []string{"e1"},
			Metrics:  map[string]any{"responseTime": int64(3000), "responseLength": 200},
		},
		{
			Category: "edge_case",
			Valid:    true,
			Warnings: []string{"w2", "w3"},
			Metrics:  map[string]any{"responseLength": 60},
		},
	}

	summary := Summarize(results)
	if summary.TotalTests != 3 || summary.Passed != 2 || summary.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.Warnings != 3 {
		t.Fatalf("expected 3 warnings, got %d", summary.Warnings)
	}
	if summary.SuccessRate != 2.0/3.0 {
		t.Fatalf("unexpected success rate %v", summary.SuccessRate)
	}

	general := summary.Categories["general_content"]
	if general.Total != 2 || general.Passed != 1 {
		t.Fatalf("unexpected general_content stats: %+v", general)
	}
	edge := summary.Categories["edge_case"]
	if edge.Total != 1 || edge.Passed != 1 {
		t.Fatalf("unexpected edge_case stats: %+v", edge)
	}

	if summary.AvgResponseTime != 2000 {
		t.Fatalf("expected avg time 2000, got %d", summary.AvgResponseTime)
	}
	if summary.AvgResponseLength != 120 {
		t.Fatalf("expected avg length 120, got %d", summary.AvgResponseLength)
	}
}

// TestSummarizeUnknownCategory verifies untagged results land in unknown.
func TestSummarizeUnknownCategory(t *testing.T) {
	summary := Summarize([]Result{{Valid: true}})
	if summary.Categories["unknown"].Total != 1 {
		t.Fatalf("expected unknown category bucket, got %+v", summary.Categories)
	}
}
