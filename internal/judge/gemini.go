package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// defaultGeminiBaseURL is the default Gemini API base URL.
const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// defaultGeminiModel is used when no model is configured.
const defaultGeminiModel = "gemini-2.0-flash"

// HTTPDoer abstracts HTTP clients used by providers.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Provider produces free-text completions for a prompt.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiProvider implements Provider for the Gemini generateContent API.
type GeminiProvider struct {
	APIKey  string
	BaseURL string
	Client  HTTPDoer
	Model   string
}

// ProviderFromEnv builds a Gemini provider from GEMINI_API_KEY.
func ProviderFromEnv(model string, client HTTPDoer) (*GeminiProvider, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return NewGeminiProvider(model, apiKey, "", client)
}

// NewGeminiProvider constructs a Gemini provider with explicit settings.
func NewGeminiProvider(model, apiKey, baseURL string, client HTTPDoer) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultGeminiModel
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultGeminiBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &GeminiProvider{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		Model:   model,
	}, nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single-message generation call and returns the reply text.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	requestBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	payload, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", p.BaseURL, p.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini error: %s", strings.TrimSpace(string(body)))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("empty candidates in response")
	}
	var builder strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		builder.WriteString(part.Text)
	}
	return builder.String(), nil
}
