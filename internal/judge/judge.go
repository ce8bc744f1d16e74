// Package judge scores answer quality through an external generative model.
// The judge is advisory: every failure path degrades to fixed neutral
// defaults instead of propagating, so judge unavailability never makes the
// harness impossible to run, only less discriminating.
package judge

import (
	"context"
	"encoding/json"
	"strings"
)

// DefaultCriteria are the rubric dimensions requested when none are given.
var DefaultCriteria = []string{"relevance", "accuracy", "completeness", "grounding"}

// CriterionScore is one scored rubric dimension.
type CriterionScore struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// Evaluation is the parsed rubric verdict for one evaluate call.
type Evaluation struct {
	Criteria     map[string]CriterionScore `json:"criteria"`
	OverallScore int                       `json:"overall_score"`
	Summary      string                    `json:"summary"`
}

// Detection is the parsed hallucination-detection verdict.
type Detection struct {
	ContainsHallucination     bool    `json:"contains_hallucination"`
	ContainsProhibitedContent bool    `json:"contains_prohibited_content"`
	Confidence                float64 `json:"confidence"`
	Reasoning                 string  `json:"reasoning"`
}

// Judge evaluates answers via a completion provider.
type Judge struct {
	provider Provider
}

// New constructs a judge over a provider.
func New(provider Provider) *Judge {
	return &Judge{provider: provider}
}

// Evaluate scores an answer on the requested criteria. Transport failure,
// missing JSON, or a malformed reply all return neutral default scores.
func (j *Judge) Evaluate(ctx context.Context, question, answer, documentContext string, criteria []string) Evaluation {
	if len(criteria) == 0 {
		criteria = DefaultCriteria
	}
	if j == nil || j.provider == nil {
		return DefaultScores(criteria)
	}

	prompt := buildEvaluationPrompt(question, answer, documentContext, criteria)
	reply, err := j.provider.Generate(ctx, prompt)
	if err != nil {
		return DefaultScores(criteria)
	}
	evaluation, err := parseEvaluation(reply, criteria)
	if err != nil {
		return DefaultScores(criteria)
	}
	return evaluation
}

// CheckRelevance reports whether the judge scores the answer's relevance at
// 3 or higher.
func (j *Judge) CheckRelevance(ctx context.Context, question, answer string) bool {
	evaluation := j.Evaluate(ctx, question, answer, "", []string{"relevance"})
	return evaluation.Criteria["relevance"].Score >= 3
}

// DetectHallucination asks the judge whether the answer fabricates content
// or mentions prohibited terms. Any failure returns the neutral detection.
func (j *Judge) DetectHallucination(ctx context.Context, answer, documentContext string, prohibitedTerms []string) Detection {
	if j == nil || j.provider == nil {
		return DefaultDetection()
	}

	prompt := buildHallucinationPrompt(answer, documentContext, prohibitedTerms)
	reply, err := j.provider.Generate(ctx, prompt)
	if err != nil {
		return DefaultDetection()
	}

	fragment, err := extractJSONObject(reply)
	if err != nil {
		return DefaultDetection()
	}
	var detection Detection
	if err := json.Unmarshal([]byte(fragment), &detection); err != nil {
		return DefaultDetection()
	}
	return detection
}

// DefaultScores is the neutral fallback: every criterion at 3 with a canned
// reasoning string. Callers detect degraded operation from the summary text.
func DefaultScores(criteria []string) Evaluation {
	scores := make(map[string]CriterionScore, len(criteria))
	for _, criterion := range criteria {
		scores[criterion] = CriterionScore{
			Score:     3,
			Reasoning: "Evaluation failed, default score assigned",
		}
	}
	return Evaluation{
		Criteria:     scores,
		OverallScore: 3,
		Summary:      "LLM judge evaluation failed, default scores assigned",
	}
}

// DefaultDetection is the neutral fallback for hallucination detection.
func DefaultDetection() Detection {
	return Detection{
		ContainsHallucination:     false,
		ContainsProhibitedContent: false,
		Confidence:                0.5,
		Reasoning:                 "Detection failed, cannot determine hallucination status",
	}
}

// extractJSONObject returns the first brace-delimited object in free text:
// from the first '{' through the last '}'.
func extractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", errNoJSONObject
	}
	return text[start : end+1], nil
}

// parseEvaluation extracts the rubric JSON from a free-text reply.
func parseEvaluation(reply string, criteria []string) (Evaluation, error) {
	fragment, err := extractJSONObject(reply)
	if err != nil {
		return Evaluation{}, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(fragment), &fields); err != nil {
		return Evaluation{}, err
	}

	evaluation := Evaluation{Criteria: make(map[string]CriterionScore, len(criteria))}
	if raw, ok := fields["overall_score"]; ok {
		if err := json.Unmarshal(raw, &evaluation.OverallScore); err != nil {
			return Evaluation{}, err
		}
	}
	if raw, ok := fields["summary"]; ok {
		if err := json.Unmarshal(raw, &evaluation.Summary); err != nil {
			return Evaluation{}, err
		}
	}
	for _, criterion := range criteria {
		raw, ok := fields[criterion]
		if !ok {
			continue
		}
		var score CriterionScore
		if err := json.Unmarshal(raw, &score); err != nil {
			return Evaluation{}, err
		}
		evaluation.Criteria[criterion] = score
	}
	return evaluation, nil
}
