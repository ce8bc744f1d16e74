// Package runner orchestrates validation runs: each expectation record is
// asked against the live target, the answer is validated against the record,
// and optionally scored by the external judge.
package runner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ragcheck/internal/corpus"
	"ragcheck/internal/judge"
	"ragcheck/internal/target"
	"ragcheck/internal/validator"
)

// Asker sends one question to the target application.
type Asker interface {
	Ask(ctx context.Context, question string) (target.Answer, error)
}

type RunDependencies struct {
	Asker    Asker
	Judge    *judge.Judge
	RunID    func() (string, error)
	Now      func() time.Time
	Observer RunObserver
}

type RunParams struct {
	// Target is the base URL recorded in the results, not used for transport.
	Target string
	// Documents selects a subset of the corpus; empty runs every document.
	Documents     []string
	Workers       int
	JudgeCriteria []string
	Deps          RunDependencies
}

func Run(ctx context.Context, c corpus.Corpus, params RunParams) (Results, error) {
	if params.Deps.Asker == nil {
		return Results{}, fmt.Errorf("target client is required")
	}
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return Results{}, err
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	observer := params.Deps.Observer
	if observer == nil {
		observer = noopObserver{}
	}

	documents, err := planDocuments(c, params.Documents)
	if err != nil {
		return Results{}, err
	}

	benchmarks := c.QualityBenchmarks
	if benchmarks == (corpus.Benchmarks{}) {
		benchmarks = corpus.DefaultBenchmarks()
	}

	execution := &runExecution{
		validator: validator.New(c, benchmarks),
		asker:     params.Deps.Asker,
		judge:     params.Deps.Judge,
		criteria:  params.JudgeCriteria,
		observer:  observer,
		now:       now,
	}

	jobs := planJobs(c, documents)
	observer.OnRunStart(runID, params.Target, len(jobs))
	for _, job := range jobs {
		observer.OnTestEvent(TestEvent{
			DocumentName: job.documentName,
			TestID:       job.record.ID,
			TestIndex:    job.globalIndex,
			Question:     job.record.Question,
			Type:         TestQueued,
			EmittedAt:    now(),
		})
	}

	startedAt := now()
	var tests []TestResult
	if params.Workers <= 1 {
		tests = runJobsSequential(ctx, execution, jobs)
	} else {
		tests = runJobsConcurrent(ctx, execution, jobs, params.Workers)
	}
	finishedAt := now()

	documentResults := collectDocuments(documents, jobs, tests)
	results := Results{
		RunID:      runID,
		Target:     params.Target,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Documents:  documentResults,
		Summary:    validator.Summarize(allValidations(documentResults)),
	}
	observer.OnRunEnd(results)
	return results, nil
}

// planDocuments resolves the documents to run, defaulting to every corpus
// document in sorted order.
func planDocuments(c corpus.Corpus, requested []string) ([]string, error) {
	if len(requested) == 0 {
		documents := make([]string, 0, len(c.DocumentTests))
		for name := range c.DocumentTests {
			documents = append(documents, name)
		}
		sort.Strings(documents)
		return documents, nil
	}
	for _, name := range requested {
		if _, ok := c.DocumentTests[name]; !ok {
			return nil, fmt.Errorf("no test data found for document %q", name)
		}
	}
	return requested, nil
}

type testJob struct {
	documentIndex int
	globalIndex   int
	documentName  string
	preview       string
	record        corpus.TypedRecord
}

func planJobs(c corpus.Corpus, documents []string) []testJob {
	var jobs []testJob
	for documentIndex, name := range documents {
		tests := c.DocumentTests[name]
		for _, record := range tests.AllRecords() {
			jobs = append(jobs, testJob{
				documentIndex: documentIndex,
				globalIndex:   len(jobs),
				documentName:  name,
				preview:       tests.ContentPreview,
				record:        record,
			})
		}
	}
	return jobs
}

// collectDocuments regroups flat test results by document and summarizes each
// group.
func collectDocuments(documents []string, jobs []testJob, tests []TestResult) []DocumentResult {
	results := make([]DocumentResult, len(documents))
	for i, name := range documents {
		results[i].DocumentName = name
	}
	for i, job := range jobs {
		results[job.documentIndex].Tests = append(results[job.documentIndex].Tests, tests[i])
	}
	for i := range results {
		validations := make([]validator.Result, 0, len(results[i].Tests))
		for _, test := range results[i].Tests {
			validations = append(validations, test.Validation)
		}
		results[i].Summary = validator.Summarize(validations)
	}
	return results
}

func ensureRunID(generator func() (string, error)) (string, error) {
	if generator != nil {
		return generator()
	}
	return NewRunID()
}
