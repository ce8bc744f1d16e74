package runner

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"ragcheck/internal/corpus"
	"ragcheck/internal/judge"
	"ragcheck/internal/validator"
)

// noResponseText substitutes for an answer when the round trip fails.
const noResponseText = "No response"

// runExecution bundles the collaborators shared by every test job.
type runExecution struct {
	validator *validator.Validator
	asker     Asker
	judge     *judge.Judge
	criteria  []string
	observer  RunObserver
	now       func() time.Time
}

// runJobsSequential executes jobs one at a time in corpus order.
func runJobsSequential(ctx context.Context, execution *runExecution, jobs []testJob) []TestResult {
	results := make([]TestResult, len(jobs))
	for i, job := range jobs {
		results[i] = execution.executeJob(ctx, job)
	}
	return results
}

// runJobsConcurrent executes jobs through a fixed worker pool and preserves
// corpus ordering in the returned slice.
func runJobsConcurrent(ctx context.Context, execution *runExecution, jobs []testJob, workers int) []TestResult {
	if workers > len(jobs) {
		workers = len(jobs)
	}
	results := make([]TestResult, len(jobs))
	jobCh := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobCh {
				results[i] = execution.executeJob(ctx, jobs[i])
			}
		}()
	}
	for i := range jobs {
		jobCh <- i
	}
	close(jobCh)
	wg.Wait()
	return results
}

// executeJob runs one test end-to-end: ask, validate, judge.
func (execution *runExecution) executeJob(ctx context.Context, job testJob) TestResult {
	execution.emit(job, TestAsking, 0, nil, nil)

	result := TestResult{
		TestID:   job.record.ID,
		Type:     job.record.Type,
		Question: job.record.Question,
	}

	answer, err := execution.asker.Ask(ctx, job.record.Question)
	if err != nil {
		result.Response = noResponseText
		result.ResponseTimeMS = validator.NoResponseTime
		result.TransportError = err.Error()
	} else {
		result.Response = answer.Text
		result.StatusCode = answer.StatusCode
		result.ResponseTimeMS = answer.Elapsed.Milliseconds()
	}

	if result.TransportError == "" && job.record.ExpectedBehavior == corpus.BehaviorShouldError && !is2xx(result.StatusCode) {
		// The target rejected the request outright; text rules don't apply.
		result.Validation = statusOnlyResult(job, result.ResponseTimeMS)
		checkStatusCode(job.record.Record, result.StatusCode, &result.Validation)
		result.Validation.Valid = len(result.Validation.Errors) == 0
	} else {
		result.Validation = execution.validator.Validate(job.record.ID, job.documentName, result.Response, result.ResponseTimeMS)
		if result.TransportError == "" {
			checkStatusCode(job.record.Record, result.StatusCode, &result.Validation)
		}
	}

	if execution.judge != nil && result.TransportError == "" {
		execution.judgeJob(ctx, job, &result)
	}

	eventType := TestPassed
	if result.TransportError != "" {
		eventType = TestTransportError
	} else if !result.Validation.Valid {
		eventType = TestFailed
	}
	execution.emit(job, eventType, result.ResponseTimeMS, result.Validation.Errors, result.Validation.Warnings)
	return result
}

// judgeJob attaches the judge verdict appropriate for the record's category.
// Edge cases are not judged.
func (execution *runExecution) judgeJob(ctx context.Context, job testJob, result *TestResult) {
	switch job.record.Type {
	case corpus.TypeFactual, corpus.TypeAnalytical:
		execution.emit(job, TestJudging, result.ResponseTimeMS, nil, nil)
		evaluation := execution.judge.Evaluate(ctx, job.record.Question, result.Response, job.preview, execution.criteria)
		result.Judge = &evaluation
	case corpus.TypeHallucination:
		execution.emit(job, TestJudging, result.ResponseTimeMS, nil, nil)
		detection := execution.judge.DetectHallucination(ctx, result.Response, job.preview, job.record.ProhibitedContent)
		result.Detection = &detection
	}
}

func is2xx(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// statusOnlyResult is the validation shell for a rejected should_error
// round trip.
func statusOnlyResult(job testJob, responseTimeMS int64) validator.Result {
	category := job.record.Category
	if category == "" {
		category = "unknown"
	}
	metrics := map[string]any{"responseLength": 0}
	if responseTimeMS >= 0 {
		metrics["responseTime"] = responseTimeMS
	}
	return validator.Result{
		TestID:       job.record.ID,
		DocumentName: job.documentName,
		Category:     category,
		Valid:        true,
		Errors:       []string{},
		Warnings:     []string{},
		Metrics:      metrics,
	}
}

// checkStatusCode enforces a record's expected HTTP status codes on top of
// the text-level validation.
func checkStatusCode(record corpus.Record, statusCode int, validation *validator.Result) {
	if len(record.ExpectedStatusCodes) == 0 {
		return
	}
	for _, expected := range record.ExpectedStatusCodes {
		if statusCode == expected {
			return
		}
	}
	codes := make([]string, 0, len(record.ExpectedStatusCodes))
	for _, expected := range record.ExpectedStatusCodes {
		codes = append(codes, strconv.Itoa(expected))
	}
	validation.Errors = append(validation.Errors,
		fmt.Sprintf("Unexpected status code %d, expected one of: %s", statusCode, strings.Join(codes, ", ")))
	validation.Valid = false
}

func (execution *runExecution) emit(job testJob, eventType TestEventType, responseTimeMS int64, errors, warnings []string) {
	execution.observer.OnTestEvent(TestEvent{
		DocumentName:   job.documentName,
		TestID:         job.record.ID,
		TestIndex:      job.globalIndex,
		Question:       job.record.Question,
		Type:           eventType,
		ResponseTimeMS: responseTimeMS,
		Errors:         errors,
		Warnings:       warnings,
		EmittedAt:      execution.now(),
	})
}
