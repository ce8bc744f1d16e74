// Package testgen turns a document analysis into expectation records: factual
// keyword questions, hallucination probes, analytical questions, and edge
// cases. Generation is deterministic for identical analysis input.
package testgen

import (
	"fmt"
	"time"

	"ragcheck/internal/analyze"
	"ragcheck/internal/corpus"
	"ragcheck/internal/extractor"
)

// GenerationMethod is recorded in every corpus this package produces.
const GenerationMethod = "text extraction with content analysis"

const contentPreviewChars = 500

// Generate builds the full test suite for one document.
func Generate(docName string, content extractor.Content, analysis analyze.Analysis) corpus.DocumentTests {
	return corpus.DocumentTests{
		Description:         fmt.Sprintf("Test data for %s generated from extracted content", docName),
		DocumentAnalysis:    documentInfo(content, analysis),
		ContentPreview:      preview(content.Markdown),
		FactualQuestions:    factualQuestions(docName, analysis),
		HallucinationTests:  hallucinationTests(docName),
		AnalyticalQuestions: analyticalQuestions(docName, analysis),
		EdgeCases:           edgeCases(docName),
	}
}

// BuildCorpus assembles document suites plus the benchmark and judge
// criteria blocks into a persistable corpus.
func BuildCorpus(documentTests map[string]corpus.DocumentTests, generatedAt time.Time) corpus.Corpus {
	return corpus.Corpus{
		GeneratedAt:       generatedAt.UTC().Format(time.RFC3339),
		GenerationMethod:  GenerationMethod,
		DocumentTests:     documentTests,
		QualityBenchmarks: corpus.DefaultBenchmarks(),
		JudgeCriteria:     corpus.DefaultJudgeCriteria(),
	}
}

func documentInfo(content extractor.Content, analysis analyze.Analysis) *corpus.DocumentInfo {
	return &corpus.DocumentInfo{
		Characters:  analysis.Characters,
		Locations:   analysis.Locations,
		Themes:      analysis.Themes,
		KeyEvents:   analysis.KeyEvents,
		Objects:     analysis.Entities.Objects,
		WordCount:   content.WordCount,
		ExtractedAt: content.ExtractedAt.Format(time.RFC3339),
	}
}

func preview(markdown string) string {
	if len(markdown) <= contentPreviewChars {
		return markdown
	}
	return markdown[:contentPreviewChars] + "..."
}

func boolPtr(value bool) *bool {
	return &value
}
