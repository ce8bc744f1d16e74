package runner

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"reflect"
	"sync"
	"testing"
	"time"

	"ragcheck/internal/corpus"
	"ragcheck/internal/judge"
	"ragcheck/internal/target"
	"ragcheck/internal/validator"
)

func boolPtr(v bool) *bool { return &v }

func fixtureCorpus() corpus.Corpus {
	return corpus.Corpus{
		GeneratedAt:      "2026-08-29T00:00:00Z",
		GenerationMethod: "text extraction with content analysis",
		DocumentTests: map[string]corpus.DocumentTests{
			"story": {
				ContentPreview: "A story about Alex and the Crystal of Light.",
				FactualQuestions: []corpus.Record{{
					ID:               "story_main_topic",
					Question:         "What is the main topic?",
					ExpectedKeywords: []string{"alex"},
					MustContainAny:   boolPtr(true),
					Category:         "factual",
				}},
				HallucinationTests: []corpus.Record{{
					ID:                "story_politics",
					Question:          "What did the president say?",
					ProhibitedContent: []string{"obama"},
					ExpectedBehavior:  corpus.BehaviorShouldReject,
					Category:          "hallucination",
				}},
				EdgeCases: []corpus.Record{{
					ID:                  "story_empty_question",
					Question:            "",
					ExpectedBehavior:    corpus.BehaviorShouldError,
					ExpectedStatusCodes: []int{400, 422},
					Category:            "edge_case",
				}},
			},
		},
	}
}

// stubAsker answers by question text and records call order.
type stubAsker struct {
	mu      sync.Mutex
	answers map[string]target.Answer
	errs    map[string]error
	asked   []string
}

func (a *stubAsker) Ask(_ context.Context, question string) (target.Answer, error) {
	a.mu.Lock()
	a.asked = append(a.asked, question)
	a.mu.Unlock()
	if err, ok := a.errs[question]; ok {
		return target.Answer{}, err
	}
	answer, ok := a.answers[question]
	if !ok {
		return target.Answer{Text: "I don't know.", StatusCode: http.StatusOK, Elapsed: 100 * time.Millisecond}, nil
	}
	return answer, nil
}

type recordingObserver struct {
	mu     sync.Mutex
	runID  string
	total  int
	events []TestEvent
	ended  bool
}

func (o *recordingObserver) OnRunStart(runID, _ string, total int) {
	o.runID = runID
	o.total = total
}

func (o *recordingObserver) OnTestEvent(event TestEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) OnRunEnd(Results) { o.ended = true }

func (o *recordingObserver) eventsOfType(eventType TestEventType) []TestEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var matched []TestEvent
	for _, event := range o.events {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}
	return matched
}

func passingAsker() *stubAsker {
	return &stubAsker{
		answers: map[string]target.Answer{
			"What is the main topic?": {
				Text:       "The story follows Alex on a quest.",
				StatusCode: http.StatusOK,
				Elapsed:    500 * time.Millisecond,
			},
			"What did the president say?": {
				Text:       "Sorry, the document doesn't contain information about that.",
				StatusCode: http.StatusOK,
				Elapsed:    300 * time.Millisecond,
			},
			"": {
				StatusCode: http.StatusUnprocessableEntity,
				Elapsed:    50 * time.Millisecond,
			},
		},
	}
}

func TestRunSequential(t *testing.T) {
	observer := &recordingObserver{}
	asker := passingAsker()
	results, err := Run(context.Background(), fixtureCorpus(), RunParams{
		Target: "http://localhost:8000",
		Deps: RunDependencies{
			Asker:    asker,
			RunID:    func() (string, error) { return "20260829T000000Z-abcdef", nil },
			Observer: observer,
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if results.RunID != "20260829T000000Z-abcdef" {
		t.Fatalf("unexpected run id %q", results.RunID)
	}
	if len(results.Documents) != 1 || results.Documents[0].DocumentName != "story" {
		t.Fatalf("unexpected documents: %+v", results.Documents)
	}
	tests := results.Documents[0].Tests
	if len(tests) != 3 {
		t.Fatalf("expected 3 tests, got %d", len(tests))
	}

	byID := map[string]TestResult{}
	for _, test := range tests {
		byID[test.TestID] = test
	}
	factual := byID["story_main_topic"]
	if !factual.Validation.Valid {
		t.Fatalf("factual test should pass: %+v", factual.Validation)
	}
	if factual.ResponseTimeMS != 500 {
		t.Fatalf("unexpected response time %d", factual.ResponseTimeMS)
	}
	hallucination := byID["story_politics"]
	if !hallucination.Validation.Valid {
		t.Fatalf("hallucination test should pass: %+v", hallucination.Validation)
	}
	edge := byID["story_empty_question"]
	if edge.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected edge status %d", edge.StatusCode)
	}
	if !edge.Validation.Valid {
		t.Fatalf("rejected should_error test should pass on status alone: %+v", edge.Validation)
	}

	if results.Summary.TotalTests != 3 {
		t.Fatalf("unexpected summary: %+v", results.Summary)
	}
	if observer.total != 3 || !observer.ended {
		t.Fatalf("observer not driven: total=%d ended=%v", observer.total, observer.ended)
	}
	if queued := observer.eventsOfType(TestQueued); len(queued) != 3 {
		t.Fatalf("expected 3 queued events, got %d", len(queued))
	}
}

func TestRunUnknownDocument(t *testing.T) {
	_, err := Run(context.Background(), fixtureCorpus(), RunParams{
		Documents: []string{"missing"},
		Deps:      RunDependencies{Asker: passingAsker()},
	})
	if err == nil {
		t.Fatal("expected error for unknown document")
	}
}

func TestRunRequiresAsker(t *testing.T) {
	if _, err := Run(context.Background(), fixtureCorpus(), RunParams{}); err == nil {
		t.Fatal("expected error for missing asker")
	}
}

func TestRunTransportFailure(t *testing.T) {
	asker := passingAsker()
	asker.errs = map[string]error{
		"What is the main topic?": errors.New("connection refused"),
	}
	observer := &recordingObserver{}
	results, err := Run(context.Background(), fixtureCorpus(), RunParams{
		Deps: RunDependencies{Asker: asker, Observer: observer},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var failed TestResult
	for _, test := range results.Documents[0].Tests {
		if test.TestID == "story_main_topic" {
			failed = test
		}
	}
	if failed.TransportError == "" {
		t.Fatal("expected transport error recorded")
	}
	if failed.Response != "No response" {
		t.Fatalf("unexpected response %q", failed.Response)
	}
	if failed.ResponseTimeMS != validator.NoResponseTime {
		t.Fatalf("unexpected response time %d", failed.ResponseTimeMS)
	}
	if failed.Validation.Valid {
		t.Fatal("validation should fail without expected keywords")
	}
	if events := observer.eventsOfType(TestTransportError); len(events) != 1 {
		t.Fatalf("expected 1 transport error event, got %d", len(events))
	}
}

func TestRunStatusCodeEnforcement(t *testing.T) {
	asker := passingAsker()
	asker.answers[""] = target.Answer{
		Text:       "Here is an answer to nothing.",
		StatusCode: http.StatusOK,
		Elapsed:    50 * time.Millisecond,
	}
	results, err := Run(context.Background(), fixtureCorpus(), RunParams{
		Deps: RunDependencies{Asker: asker},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, test := range results.Documents[0].Tests {
		if test.TestID != "story_empty_question" {
			continue
		}
		if test.Validation.Valid {
			t.Fatalf("expected status code failure: %+v", test.Validation)
		}
		want := "Unexpected status code 200, expected one of: 400, 422"
		found := false
		for _, message := range test.Validation.Errors {
			if message == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q in %v", want, test.Validation.Errors)
		}
		return
	}
	t.Fatal("edge case result not found")
}

func TestRunConcurrentMatchesSequential(t *testing.T) {
	sequential, err := Run(context.Background(), fixtureCorpus(), RunParams{
		Deps: RunDependencies{
			Asker: passingAsker(),
			RunID: func() (string, error) { return "fixed", nil },
			Now:   func() time.Time { return time.Unix(0, 0) },
		},
	})
	if err != nil {
		t.Fatalf("sequential Run: %v", err)
	}
	concurrent, err := Run(context.Background(), fixtureCorpus(), RunParams{
		Workers: 4,
		Deps: RunDependencies{
			Asker: passingAsker(),
			RunID: func() (string, error) { return "fixed", nil },
			Now:   func() time.Time { return time.Unix(0, 0) },
		},
	})
	if err != nil {
		t.Fatalf("concurrent Run: %v", err)
	}
	if !reflect.DeepEqual(sequential.Documents, concurrent.Documents) {
		t.Fatalf("concurrent results diverge:\n%+v\n%+v", sequential.Documents, concurrent.Documents)
	}
}

type scriptedJudgeProvider struct{ reply string }

func (p scriptedJudgeProvider) Generate(context.Context, string) (string, error) {
	return p.reply, nil
}

func TestRunWithJudge(t *testing.T) {
	judgeReply := `{"relevance": {"score": 4, "reasoning": "r"}, "overall_score": 4, "summary": "s",
"contains_hallucination": false, "contains_prohibited_content": false, "confidence": 0.8, "reasoning": "clean"}`
	results, err := Run(context.Background(), fixtureCorpus(), RunParams{
		JudgeCriteria: []string{"relevance"},
		Deps: RunDependencies{
			Asker: passingAsker(),
			Judge: judge.New(scriptedJudgeProvider{reply: judgeReply}),
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, test := range results.Documents[0].Tests {
		switch test.TestID {
		case "story_main_topic":
			if test.Judge == nil || test.Judge.OverallScore != 4 {
				t.Fatalf("expected judge evaluation on factual test: %+v", test.Judge)
			}
		case "story_politics":
			if test.Detection == nil || test.Detection.Confidence != 0.8 {
				t.Fatalf("expected detection on hallucination test: %+v", test.Detection)
			}
		case "story_empty_question":
			if test.Judge != nil || test.Detection != nil {
				t.Fatal("edge cases must not be judged")
			}
		}
	}
}

func TestWriteResults(t *testing.T) {
	dir := t.TempDir()
	results := Results{RunID: "20260829T000000Z-abcdef"}
	paths, err := WriteResults(results, dir)
	if err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	data, err := os.ReadFile(paths.ResultsPath())
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	if !bytes.Contains(data, []byte(`"run_id": "20260829T000000Z-abcdef"`)) {
		t.Fatalf("results.json missing run id: %s", data)
	}
}

func TestNewRunIDWithRand(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC)
	id, err := NewRunIDWithRand(now, bytes.NewReader([]byte{0xab, 0xcd, 0xef, 0x01, 0x02, 0x03}))
	if err != nil {
		t.Fatalf("NewRunIDWithRand: %v", err)
	}
	if id != "20260829T123000Z-abcdef010203" {
		t.Fatalf("unexpected run id %q", id)
	}
	if _, err := NewRunIDWithRand(now, nil); err == nil {
		t.Fatal("expected error for nil reader")
	}
	if _, err := NewRunIDWithRand(now, bytes.NewReader(nil)); err == nil {
		t.Fatal("expected error for short reader")
	}
}
