package judge

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubProvider struct {
	reply   string
	err     error
	prompts []string
}

func (p *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

// TestEvaluateParsesRubric verifies a well-formed reply is parsed into
// criterion scores.
func TestEvaluateParsesRubric(t *testing.T) {
	provider := &stubProvider{reply: `Here is my assessment:
{
  "relevance": {"score": 5, "reasoning": "directly answers"},
  "accuracy": {"score": 4, "reasoning": "mostly correct"},
  "overall_score": 4,
  "summary": "good answer"
}`}
	evaluation := New(provider).Evaluate(context.Background(), "Q", "A", "ctx", []string{"relevance", "accuracy"})

	if evaluation.OverallScore != 4 {
		t.Fatalf("expected overall 4, got %d", evaluation.OverallScore)
	}
	if evaluation.Criteria["relevance"].Score != 5 {
		t.Fatalf("unexpected relevance: %+v", evaluation.Criteria["relevance"])
	}
	if evaluation.Summary != "good answer" {
		t.Fatalf("unexpected summary %q", evaluation.Summary)
	}
}

// TestEvaluateTransportFailure verifies neutral defaults on provider errors.
func TestEvaluateTransportFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	criteria := []string{"relevance", "accuracy", "completeness", "grounding"}
	evaluation := New(provider).Evaluate(context.Background(), "Q", "A", "", criteria)

	if evaluation.OverallScore != 3 {
		t.Fatalf("expected overall 3, got %d", evaluation.OverallScore)
	}
	for _, criterion := range criteria {
		score, ok := evaluation.Criteria[criterion]
		if !ok || score.Score != 3 {
			t.Fatalf("expected %s at 3, got %+v", criterion, score)
		}
	}
	if !strings.Contains(evaluation.Summary, "failed") {
		t.Fatalf("expected degraded summary, got %q", evaluation.Summary)
	}
}

// TestEvaluateNonJSONReply verifies neutral defaults when no JSON object is
// present in the reply.
func TestEvaluateNonJSONReply(t *testing.T) {
	provider := &stubProvider{reply: "I cannot evaluate this response."}
	evaluation := New(provider).Evaluate(context.Background(), "Q", "A", "", []string{"relevance"})
	if evaluation.Criteria["relevance"].Score != 3 || evaluation.OverallScore != 3 {
		t.Fatalf("expected defaults, got %+v", evaluation)
	}
}

// TestEvaluateMalformedJSON verifies neutral defaults on unparsable JSON.
func TestEvaluateMalformedJSON(t *testing.T) {
	provider := &stubProvider{reply: `{"relevance": {"score": "five"}}`}
	evaluation := New(provider).Evaluate(context.Background(), "Q", "A", "", []string{"relevance"})
	if evaluation.Criteria["relevance"].Score != 3 {
		t.Fatalf("expected defaults, got %+v", evaluation)
	}
}

// TestEvaluateDefaultCriteria verifies the standard four criteria are used
// when none are requested.
func TestEvaluateDefaultCriteria(t *testing.T) {
	provider := &stubProvider{err: errors.New("down")}
	evaluation := New(provider).Evaluate(context.Background(), "Q", "A", "", nil)
	if len(evaluation.Criteria) != 4 {
		t.Fatalf("expected 4 default criteria, got %v", evaluation.Criteria)
	}
}

// TestEvaluatePromptContext verifies the hard-coded tech-specs context block
// is selected by marker matching.
func TestEvaluatePromptContext(t *testing.T) {
	provider := &stubProvider{reply: `{"overall_score": 3, "summary": "ok"}`}
	judge := New(provider)

	judge.Evaluate(context.Background(), "Q", "A", "The Intel Core i7-13700K has 16 cores.", []string{"relevance"})
	if !strings.Contains(provider.prompts[0], "NVIDIA RTX 4090") {
		t.Fatalf("expected tech-specs evaluation notes in prompt")
	}

	judge.Evaluate(context.Background(), "Q", "A", "A story about a kingdom.", []string{"relevance"})
	if strings.Contains(provider.prompts[1], "NVIDIA RTX 4090") {
		t.Fatalf("expected generic evaluation notes for unknown context")
	}
}

// TestCheckRelevance verifies the threshold convenience wrapper.
func TestCheckRelevance(t *testing.T) {
	relevant := New(&stubProvider{reply: `{"relevance": {"score": 4, "reasoning": "r"}, "overall_score": 4, "summary": "s"}`})
	if !relevant.CheckRelevance(context.Background(), "Q", "A") {
		t.Fatalf("expected relevance check to pass")
	}
	irrelevant := New(&stubProvider{reply: `{"relevance": {"score": 1, "reasoning": "r"}, "overall_score": 1, "summary": "s"}`})
	if irrelevant.CheckRelevance(context.Background(), "Q", "A") {
		t.Fatalf("expected relevance check to fail")
	}
}

// TestDetectHallucination verifies detection parsing and its fallback.
func TestDetectHallucination(t *testing.T) {
	provider := &stubProvider{reply: `Analysis follows.
{"contains_hallucination": true, "contains_prohibited_content": false, "confidence": 0.9, "reasoning": "fabricated details"}`}
	detection := New(provider).DetectHallucination(context.Background(), "A", "ctx", []string{"president"})
	if !detection.ContainsHallucination || detection.Confidence != 0.9 {
		t.Fatalf("unexpected detection: %+v", detection)
	}

	failed := New(&stubProvider{err: errors.New("down")}).DetectHallucination(context.Background(), "A", "", nil)
	if failed.ContainsHallucination || failed.ContainsProhibitedContent {
		t.Fatalf("expected neutral detection, got %+v", failed)
	}
	if failed.Confidence != 0.5 || !strings.Contains(failed.Reasoning, "cannot determine") {
		t.Fatalf("unexpected fallback detection: %+v", failed)
	}
}

// TestNilJudge verifies a judge without a provider degrades instead of
// panicking.
func TestNilJudge(t *testing.T) {
	var judge *Judge
	evaluation := judge.Evaluate(context.Background(), "Q", "A", "", []string{"relevance"})
	if evaluation.OverallScore != 3 {
		t.Fatalf("expected defaults from nil judge")
	}
	detection := judge.DetectHallucination(context.Background(), "A", "", nil)
	if detection.Confidence != 0.5 {
		t.Fatalf("expected neutral detection from nil judge")
	}
}
