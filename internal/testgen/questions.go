package testgen

import (
	"fmt"

	"ragcheck/internal/analyze"
	"ragcheck/internal/corpus"
)

// factualQuestions emits the general content question plus one question per
// non-empty analysis field. Absence of data means absence of the question.
func factualQuestions(docName string, analysis analyze.Analysis) []corpus.Record {
	questions := []corpus.Record{
		{
			ID:               fmt.Sprintf("%s_main_topic", docName),
			Question:         "What is this document about?",
			ExpectedKeywords: []string{"story", "document", "content", "about"},
			MustContainAny:   boolPtr(false),
			Category:         "general_content",
			Difficulty:       "easy",
		},
	}

	if len(analysis.Characters) > 0 {
		acceptable := make([]string, 0, len(analysis.Characters))
		for _, character := range analysis.Characters {
			acceptable = append(acceptable, fmt.Sprintf("character named %s", character))
		}
		questions = append(questions, corpus.Record{
			ID:                  fmt.Sprintf("%s_characters", docName),
			Question:            "Who are the main characters mentioned in this story?",
			ExpectedKeywords:    analysis.Characters,
			AcceptableResponses: acceptable,
			MustContainAny:      boolPtr(false),
			Category:            "specific_details",
			Difficulty:          "medium",
		})
	}

	if len(analysis.Locations) > 0 {
		acceptable := make([]string, 0, len(analysis.Locations))
		for _, location := range analysis.Locations {
			acceptable = append(acceptable, fmt.Sprintf("takes place in %s", location))
		}
		questions = append(questions, corpus.Record{
			ID:                  fmt.Sprintf("%s_setting", docName),
			Question:            "What is the setting or location of this story?",
			ExpectedKeywords:    append(append([]string{}, analysis.Locations...), "place", "location", "setting"),
			AcceptableResponses: acceptable,
			MustContainAny:      boolPtr(false),
			Category:            "specific_details",
			Difficulty:          "medium",
		})
	}

	if len(analysis.Themes) > 0 {
		questions = append(questions, corpus.Record{
			ID:               fmt.Sprintf("%s_themes", docName),
			Question:         "What are the main themes of this story?",
			ExpectedKeywords: append(append([]string{}, analysis.Themes...), "theme", "message", "moral"),
			MustContainAny:   boolPtr(false),
			Category:         "analytical",
			Difficulty:       "hard",
		})
	}

	return questions
}

// hallucinationTests emits the four fixed off-topic probes. Each carries a
// hard-coded prohibited-term list and expects a rejection.
func hallucinationTests(docName string) []corpus.Record {
	return []corpus.Record{
		{
			ID:                fmt.Sprintf("%s_politics_hallucination", docName),
			Question:          "What political figures are mentioned in this document?",
			ProhibitedContent: []string{"president", "senator", "politician", "biden", "trump", "congress"},
			ExpectedBehavior:  corpus.BehaviorShouldReject,
			Category:          "hallucination_prevention",
		},
		{
			ID:                fmt.Sprintf("%s_tech_hallucination", docName),
			Question:          "What technology companies are discussed in this story?",
			ProhibitedContent: []string{"apple", "google", "microsoft", "amazon", "facebook", "tech company"},
			ExpectedBehavior:  corpus.BehaviorShouldReject,
			Category:          "hallucination_prevention",
		},
		{
			ID:                fmt.Sprintf("%s_financial_hallucination", docName),
			Question:          "What stock prices or financial data are mentioned?",
			ProhibitedContent: []string{"stock price", "$", "nasdaq", "dow jones", "investment", "financial"},
			ExpectedBehavior:  corpus.BehaviorShouldReject,
			Category:          "hallucination_prevention",
		},
		{
			ID:                fmt.Sprintf("%s_sports_hallucination", docName),
			Question:          "What sports teams or athletes are mentioned?",
			ProhibitedContent: []string{"football", "basketball", "soccer", "nfl", "nba", "sports team"},
			ExpectedBehavior:  corpus.BehaviorShouldReject,
			Category:          "hallucination_prevention",
		},
	}
}

// analyticalQuestions emits the summary question plus an events question
// when the analysis found key events.
func analyticalQuestions(docName string, analysis analyze.Analysis) []corpus.Record {
	questions := []corpus.Record{
		{
			ID:               fmt.Sprintf("%s_summary", docName),
			Question:         "Can you summarize the key points of this document?",
			ExpectedKeywords: []string{"summary", "main", "key", "important", "story"},
			MustContainAny:   boolPtr(false),
			Category:         "analytical",
			Difficulty:       "medium",
		},
	}
	if len(analysis.KeyEvents) > 0 {
		questions = append(questions, corpus.Record{
			ID:               fmt.Sprintf("%s_events", docName),
			Question:         "What are the main events that happen in this story?",
			ExpectedKeywords: []string{"event", "happen", "occur", "story"},
			MustContainAny:   boolPtr(false),
			Category:         "analytical",
			Difficulty:       "medium",
		})
	}
	return questions
}

// edgeCases emits the three fixed edge inputs.
func edgeCases(docName string) []corpus.Record {
	return []corpus.Record{
		{
			ID:                  fmt.Sprintf("%s_empty_question", docName),
			Question:            "",
			ExpectedBehavior:    corpus.BehaviorShouldError,
			ExpectedStatusCodes: []int{400, 422},
			Category:            "edge_case",
		},
		{
			ID:               fmt.Sprintf("%s_single_char", docName),
			Question:         "?",
			ExpectedBehavior: corpus.BehaviorGracefulHandling,
			Category:         "edge_case",
		},
		{
			ID:               fmt.Sprintf("%s_very_long_question", docName),
			Question:         "What is the detailed philosophical analysis of the existential implications of the narrative structure and thematic elements present in this document as they relate to contemporary literary theory and postmodern interpretative frameworks?",
			ExpectedBehavior: corpus.BehaviorGracefulHandling,
			Category:         "edge_case",
		},
	}
}
