package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fyrsmithlabs/minuted/internal/config"
	"github.com/fyrsmithlabs/minuted/internal/extract"
	"github.com/fyrsmithlabs/minuted/internal/summary"
)

// Local issues schema-constrained generation requests to a locally
// hosted model runtime. When the model's answer cannot be parsed as
// JSON, the backend recovers the fields it can from the pattern
// extractor instead of failing the attempt.
type Local struct {
	baseURL    string
	model      string
	httpClient *http.Client
	fallback   *extract.Extractor
}

// NewLocal creates the local model backend.
func NewLocal(cfg config.LocalProviderConfig, fallback *extract.Extractor) *Local {
	timeout := cfg.Timeout.Duration()
	if timeout <= 0 {
		timeout = config.DefaultLocalTimeout
	}
	return &Local{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		fallback: fallback,
	}
}

// Name implements Provider.
func (l *Local) Name() string { return NameLocal }

// generateRequest is the local runtime's generation request format.
type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Format  map[string]any `json:"format,omitempty"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

// generateResponse is the local runtime's generation response format.
type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Extract implements Provider. Credentials are ignored; the local
// runtime is unauthenticated.
func (l *Local) Extract(ctx context.Context, transcript string, _ Credentials) (summary.Candidate, error) {
	req := generateRequest{
		Model:  l.model,
		Prompt: "Meeting transcript:\n\n" + scrubSecrets(transcript),
		System: analysisPrompt,
		Format: responseSchema,
		Stream: false,
		Options: map[string]any{
			"temperature": 0.3,
		},
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("local model error (%d): %s: %w", resp.StatusCode, strings.TrimSpace(string(body)), ErrUnavailable)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("failed to parse response envelope: %w", err)
	}

	model, ok := parseCandidateJSON(genResp.Response)
	pattern := l.fallback.Candidate(transcript)
	if !ok {
		// Model answer unusable as JSON. Recover with patterns alone.
		return pattern, nil
	}
	return mergeCandidates(model, pattern), nil
}

// Available probes the runtime's model listing endpoint.
func (l *Local) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// parseCandidateJSON parses a model answer into a candidate, tolerating
// markdown code fences and surrounding prose.
func parseCandidateJSON(content string) (summary.Candidate, bool) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var c summary.Candidate
	if err := json.Unmarshal([]byte(content), &c); err == nil {
		return c, true
	}

	// Some models wrap the object in prose. Try the outermost braces.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(content[start:end+1]), &c); err == nil {
			return c, true
		}
	}
	return nil, false
}

// classifyTransportError maps HTTP client failures onto the provider
// error taxonomy.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request deadline exceeded: %w", ErrTimeout)
	}
	var timeoutErr interface{ Timeout() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
		return fmt.Errorf("request timed out: %w", ErrTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("request failed: %v: %w", err, ErrUnavailable)
}

var _ Provider = (*Local)(nil)
