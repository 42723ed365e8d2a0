package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/fyrsmithlabs/minuted/internal/config"
	"github.com/fyrsmithlabs/minuted/internal/summary"
)

// Default configuration values for the remote backends.
const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	defaultAnthropicModel   = "claude-3-5-sonnet-20241022"
	defaultOpenAIBaseURL    = "https://api.openai.com"
	defaultOpenAIModel      = "gpt-4o-mini"
	defaultMaxTokens        = 2048
	defaultMaxRetries       = 3
	defaultBaseBackoff      = 1 * time.Second
)

// Rate limiter defaults: 50 requests per minute for both APIs.
const (
	defaultRateLimit = 50.0 / 60.0
	defaultBurst     = 5
)

// Anthropic sends transcripts to the Anthropic messages API. The API
// key arrives per call and is never stored on the backend.
type Anthropic struct {
	model      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
}

// NewAnthropic creates the Anthropic backend.
func NewAnthropic(cfg config.RemoteProviderConfig) *Anthropic {
	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}
	timeout := cfg.Timeout.Duration()
	if timeout <= 0 {
		timeout = config.DefaultRemoteTimeout
	}
	return &Anthropic{
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
		maxRetries: defaultMaxRetries,
	}
}

// Name implements Provider.
func (a *Anthropic) Name() string { return NameAnthropic }

// anthropicRequest is the request format for the messages API.
type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Messages    []anthropicMessage `json:"messages"`
	System      string             `json:"system,omitempty"`
	Temperature float64            `json:"temperature"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse is the response format for the messages API.
type anthropicResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model      string `json:"model"`
	StopReason string `json:"stop_reason"`
}

type anthropicError struct {
	Type  string `json:"type"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Extract implements Provider.
func (a *Anthropic) Extract(ctx context.Context, transcript string, creds Credentials) (summary.Candidate, error) {
	if !creds.Anthropic.IsSet() {
		return nil, fmt.Errorf("anthropic API key required: %w", ErrUnavailable)
	}
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req := anthropicRequest{
		Model:       a.model,
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.3,
		System:      analysisPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: "Meeting transcript:\n\n" + scrubSecrets(transcript)},
		},
	}

	return withRetries(ctx, a.maxRetries, func() (summary.Candidate, error) {
		return a.doRequest(ctx, req, creds.Anthropic)
	})
}

func (a *Anthropic) doRequest(ctx context.Context, req anthropicRequest, apiKey config.Secret) (summary.Candidate, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-Key", apiKey.Value())
	httpReq.Header.Set("Anthropic-Version", "2023-06-01")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, &retryableError{err: classifyTransportError(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if retryErr := classifyStatus(resp.StatusCode, body); retryErr != nil {
		return nil, retryErr
	}
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicError
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("API error (%d): %s: %w", resp.StatusCode, errResp.Error.Message, ErrUnavailable)
		}
		return nil, fmt.Errorf("API error (%d): %w", resp.StatusCode, ErrUnavailable)
	}

	var msgResp anthropicResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(msgResp.Content) == 0 {
		return nil, fmt.Errorf("empty response from API: %w", summary.ErrSchemaInvalid)
	}

	candidate, ok := parseCandidateJSON(msgResp.Content[0].Text)
	if !ok {
		return nil, fmt.Errorf("model answer is not valid JSON: %w", summary.ErrSchemaInvalid)
	}
	return candidate, nil
}

// OpenAI sends transcripts to the OpenAI chat completions API. The API
// key arrives per call and is never stored on the backend.
type OpenAI struct {
	model      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
}

// NewOpenAI creates the OpenAI backend.
func NewOpenAI(cfg config.RemoteProviderConfig) *OpenAI {
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	timeout := cfg.Timeout.Duration()
	if timeout <= 0 {
		timeout = config.DefaultRemoteTimeout
	}
	return &OpenAI{
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
		maxRetries: defaultMaxRetries,
	}
}

// Name implements Provider.
func (o *OpenAI) Name() string { return NameOpenAI }

// openAIRequest is the request format for the chat completions API.
type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float64         `json:"temperature"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIResponse is the response format for the chat completions API.
type openAIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type openAIError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Extract implements Provider.
func (o *OpenAI) Extract(ctx context.Context, transcript string, creds Credentials) (summary.Candidate, error) {
	if !creds.OpenAI.IsSet() {
		return nil, fmt.Errorf("openai API key required: %w", ErrUnavailable)
	}
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req := openAIRequest{
		Model:       o.model,
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.3,
		Messages: []openAIMessage{
			{Role: "system", Content: analysisPrompt},
			{Role: "user", Content: "Meeting transcript:\n\n" + scrubSecrets(transcript)},
		},
	}

	return withRetries(ctx, o.maxRetries, func() (summary.Candidate, error) {
		return o.doRequest(ctx, req, creds.OpenAI)
	})
}

func (o *OpenAI) doRequest(ctx context.Context, req openAIRequest, apiKey config.Secret) (summary.Candidate, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey.Value())

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, &retryableError{err: classifyTransportError(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if retryErr := classifyStatus(resp.StatusCode, body); retryErr != nil {
		return nil, retryErr
	}
	if resp.StatusCode != http.StatusOK {
		var errResp openAIError
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("API error (%d): %s: %w", resp.StatusCode, errResp.Error.Message, ErrUnavailable)
		}
		return nil, fmt.Errorf("API error (%d): %w", resp.StatusCode, ErrUnavailable)
	}

	var chatResp openAIResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: %w", summary.ErrSchemaInvalid)
	}

	candidate, ok := parseCandidateJSON(chatResp.Choices[0].Message.Content)
	if !ok {
		return nil, fmt.Errorf("model answer is not valid JSON: %w", summary.ErrSchemaInvalid)
	}
	return candidate, nil
}

// classifyStatus returns a retryable error for rate limiting and server
// errors, nil otherwise.
func classifyStatus(status int, body []byte) error {
	if status == http.StatusTooManyRequests {
		return &retryableError{err: fmt.Errorf("rate limited (429)")}
	}
	if status >= 500 {
		return &retryableError{err: fmt.Errorf("server error (%d): %s", status, strings.TrimSpace(string(body)))}
	}
	return nil
}

// withRetries runs the request with bounded exponential backoff on
// retryable failures.
func withRetries(ctx context.Context, maxRetries int, do func() (summary.Candidate, error)) (summary.Candidate, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := defaultBaseBackoff * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		candidate, err := do()
		if err == nil {
			return candidate, nil
		}
		lastErr = err
		if !isRetryableError(err) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// retryableError wraps an error to indicate it can be retried.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// isRetryableError checks if an error should be retried.
func isRetryableError(err error) bool {
	for e := err; e != nil; {
		if _, ok := e.(*retryableError); ok {
			return true
		}
		if unwrapper, ok := e.(interface{ Unwrap() error }); ok {
			e = unwrapper.Unwrap()
		} else {
			break
		}
	}
	return false
}

var (
	_ Provider = (*Anthropic)(nil)
	_ Provider = (*OpenAI)(nil)
)
