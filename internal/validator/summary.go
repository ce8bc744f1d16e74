package validator

import "math"

// Summary aggregates validation results. A pure reduction; safe on empty
// input.
type Summary struct {
	TotalTests        int                      `json:"totalTests"`
	Passed            int                      `json:"passed"`
	Failed            int                      `json:"failed"`
	Warnings          int                      `json:"warnings"`
	Categories        map[string]CategoryStats `json:"categories"`
	AvgResponseTime   int64                    `json:"avgResponseTime"`
	AvgResponseLength int                      `json:"avgResponseLength"`
	SuccessRate       float64                  `json:"successRate"`
}

// CategoryStats counts results per category tag.
type CategoryStats struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
}

// Summarize reduces results into aggregate counts and averages. SuccessRate
// defaults to 0 when there are no results.
func Summarize(results []Result) Summary {
	summary := Summary{
		TotalTests: len(results),
		Categories: map[string]CategoryStats{},
	}

	var timeSum, timeCount int64
	var lengthSum, lengthCount int
	for _, result := range results {
		if result.Valid {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.Warnings += len(result.Warnings)

		category := result.Category
		if category == "" {
			category = "unknown"
		}
		stats := summary.Categories[category]
		stats.Total++
		if result.Valid {
			stats.Passed++
		}
		summary.Categories[category] = stats

		if responseTime, ok := result.Metrics["responseTime"].(int64); ok {
			timeSum += responseTime
			timeCount++
		}
		if length, ok := result.Metrics["responseLength"].(int); ok {
			lengthSum += length
			lengthCount++
		}
	}

	if timeCount > 0 {
		summary.AvgResponseTime = int64(math.Round(float64(timeSum) / float64(timeCount)))
	}
	if lengthCount > 0 {
		summary.AvgResponseLength = int(math.Round(float64(lengthSum) / float64(lengthCount)))
	}
	if summary.TotalTests > 0 {
		summary.SuccessRate = float64(summary.Passed) / float64(summary.TotalTests)
	}
	return summary
}
