package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ragcheck/internal/runner"
)

// IngestRun writes a run and all of its per-test results in one transaction.
func IngestRun(ctx context.Context, db *sql.DB, results runner.Results) error {
	if db == nil {
		return errors.New("store: db is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest: %w", err)
	}
	defer tx.Rollback()

	summary := results.Summary
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, target, started_at, finished_at, total_tests, passed,
		   failed, warnings, success_rate, avg_response_time_ms, avg_response_length)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		results.RunID,
		results.Target,
		results.StartedAt,
		results.FinishedAt,
		summary.TotalTests,
		summary.Passed,
		summary.Failed,
		summary.Warnings,
		summary.SuccessRate,
		summary.AvgResponseTime,
		summary.AvgResponseLength,
	); err != nil {
		return fmt.Errorf("insert run %s: %w", results.RunID, err)
	}

	for _, document := range results.Documents {
		for _, test := range document.Tests {
			if err := insertResult(ctx, tx, results.RunID, document.DocumentName, test); err != nil {
				return err
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest: %w", err)
	}
	return nil
}

func insertResult(ctx context.Context, tx *sql.Tx, runID, documentName string, test runner.TestResult) error {
	errorsJSON, err := marshalField(test.Validation.Errors)
	if err != nil {
		return fmt.Errorf("marshal errors for %s: %w", test.TestID, err)
	}
	warningsJSON, err := marshalField(test.Validation.Warnings)
	if err != nil {
		return fmt.Errorf("marshal warnings for %s: %w", test.TestID, err)
	}
	metricsJSON, err := marshalField(test.Validation.Metrics)
	if err != nil {
		return fmt.Errorf("marshal metrics for %s: %w", test.TestID, err)
	}
	var judgeJSON, detectionJSON any
	if test.Judge != nil {
		encoded, err := marshalField(test.Judge)
		if err != nil {
			return fmt.Errorf("marshal judge verdict for %s: %w", test.TestID, err)
		}
		judgeJSON = encoded
	}
	if test.Detection != nil {
		encoded, err := marshalField(test.Detection)
		if err != nil {
			return fmt.Errorf("marshal detection for %s: %w", test.TestID, err)
		}
		detectionJSON = encoded
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO results (result_id, run_id, document_name, test_id, category, question,
		   response, status_code, response_time_ms, valid, errors, warnings, metrics,
		   judge, detection, transport_error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		runID,
		documentName,
		test.TestID,
		test.Validation.Category,
		test.Question,
		test.Response,
		test.StatusCode,
		test.ResponseTimeMS,
		test.Validation.Valid,
		errorsJSON,
		warningsJSON,
		metricsJSON,
		judgeJSON,
		detectionJSON,
		nullableString(test.TransportError),
	); err != nil {
		return fmt.Errorf("insert result %s: %w", test.TestID, err)
	}
	return nil
}

// RunRow is a stored run summary as returned by ListRuns.
type RunRow struct {
	RunID           string
	Target          string
	StartedAt       time.Time
	FinishedAt      time.Time
	TotalTests      int
	Passed          int
	Failed          int
	SuccessRate     float64
	AvgResponseTime int64
}

// ListRuns returns stored runs, most recent first.
func ListRuns(ctx context.Context, db *sql.DB) ([]RunRow, error) {
	rows, err := db.QueryContext(
		ctx,
		`SELECT run_id, target, started_at, finished_at, total_tests, passed, failed,
		   success_rate, avg_response_time_ms
		 FROM runs ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRow
	for rows.Next() {
		var row RunRow
		if err := rows.Scan(
			&row.RunID,
			&row.Target,
			&row.StartedAt,
			&row.FinishedAt,
			&row.TotalTests,
			&row.Passed,
			&row.Failed,
			&row.SuccessRate,
			&row.AvgResponseTime,
		); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		runs = append(runs, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func marshalField(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
