// Package target is the HTTP client for the document QA application under
// test. It mirrors the application's REST surface: document upload and
// processing, document listing and deletion, the question endpoint, and the
// liveness ping.
package target

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL matches the application's local development address.
const DefaultBaseURL = "http://localhost:8000"

// HTTPDoer abstracts the HTTP client so tests can substitute transports.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one target application instance.
type Client struct {
	BaseURL string
	HTTP    HTTPDoer
}

// NewClient constructs a client. An empty baseURL selects DefaultBaseURL and
// a nil doer selects http.DefaultClient.
func NewClient(baseURL string, doer HTTPDoer) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: doer}
}

// Document is one uploaded document as reported by the application.
type Document struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

// Answer is the outcome of one question round trip. StatusCode and Elapsed
// are populated even when the application rejects the question, so edge-case
// records can assert on status without a Go-level error.
type Answer struct {
	Text       string
	StatusCode int
	Elapsed    time.Duration
}

// Upload posts the file at path as a multipart form and returns the created
// document record.
func (c *Client) Upload(ctx context.Context, path string) (Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return Document{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return Document{}, fmt.Errorf("copy upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Document{}, fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/documents/upload/", &body)
	if err != nil {
		return Document{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var document Document
	if err := c.doJSON(req, &document); err != nil {
		return Document{}, fmt.Errorf("upload document: %w", err)
	}
	return document, nil
}

// Process triggers ingestion of an uploaded document.
func (c *Client) Process(ctx context.Context, documentID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/documents/process/"+documentID, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("process document %s: %w", documentID, err)
	}
	return nil
}

// List returns the documents currently known to the application.
func (c *Client) List(ctx context.Context) ([]Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/documents/", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	var documents []Document
	if err := c.doJSON(req, &documents); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return documents, nil
}

// Delete removes one document.
func (c *Client) Delete(ctx context.Context, documentID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+"/documents/"+documentID, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("delete document %s: %w", documentID, err)
	}
	return nil
}

// ClearAll removes every document from the application.
func (c *Client) ClearAll(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.BaseURL+"/documents/clear_all", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("clear documents: %w", err)
	}
	return nil
}

type askRequest struct {
	// The endpoint names the field "message", not "question".
	Message string `json:"message"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// Ask sends one question and measures the round trip. Non-2xx statuses are
// reported through Answer.StatusCode rather than as errors, so callers can
// validate expected rejections.
func (c *Client) Ask(ctx context.Context, question string) (Answer, error) {
	payload, err := json.Marshal(askRequest{Message: question})
	if err != nil {
		return Answer{}, fmt.Errorf("marshal question: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/qna/", bytes.NewReader(payload))
	if err != nil {
		return Answer{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return Answer{}, fmt.Errorf("ask question: %w", err)
	}
	defer resp.Body.Close()

	answer := Answer{StatusCode: resp.StatusCode, Elapsed: elapsed}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return answer, nil
	}
	var parsed askResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return answer, fmt.Errorf("decode answer: %w", err)
	}
	answer.Text = parsed.Answer
	return answer, nil
}

// Ping reports whether the application answers its liveness endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/ping", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// doJSON executes the request, enforces a 2xx status, and decodes the body
// into out when out is non-nil.
func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
