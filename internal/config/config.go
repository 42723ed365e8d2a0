package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for minuted.
type Config struct {
	Extraction    ExtractionConfig    `koanf:"extraction"`
	Providers     ProvidersConfig     `koanf:"providers"`
	Jobs          JobsConfig          `koanf:"jobs"`
	Observability ObservabilityConfig `koanf:"observability"`
}

// ExtractionConfig tunes the pattern extraction passes.
type ExtractionConfig struct {
	// TopicCount caps the key topics list in a summary.
	TopicCount int `koanf:"topic_count"`
	// MaxTranscriptBytes rejects oversized transcripts at submission.
	MaxTranscriptBytes int `koanf:"max_transcript_bytes"`
}

// ProvidersConfig configures the extraction provider chain.
type ProvidersConfig struct {
	Local     LocalProviderConfig  `koanf:"local"`
	Anthropic RemoteProviderConfig `koanf:"anthropic"`
	OpenAI    RemoteProviderConfig `koanf:"openai"`
	// MinConfidence is the floor below which a validated summary still
	// triggers fallback to the next provider in the chain.
	MinConfidence float64 `koanf:"min_confidence"`
}

// LocalProviderConfig configures the local model runtime.
type LocalProviderConfig struct {
	BaseURL string   `koanf:"base_url"`
	Model   string   `koanf:"model"`
	Timeout Duration `koanf:"timeout"`
}

// RemoteProviderConfig configures a hosted model API. API keys are not
// part of the file config; they arrive per request.
type RemoteProviderConfig struct {
	BaseURL string   `koanf:"base_url"`
	Model   string   `koanf:"model"`
	Timeout Duration `koanf:"timeout"`
}

// JobsConfig tunes the extraction orchestrator.
type JobsConfig struct {
	// MaxConcurrent caps the number of transcripts processed at once.
	MaxConcurrent int `koanf:"max_concurrent"`
}

// ObservabilityConfig configures logging and OpenTelemetry export.
type ObservabilityConfig struct {
	ServiceName    string `koanf:"service_name"`
	LogLevel       string `koanf:"log_level"`
	LogFormat      string `koanf:"log_format"`
	OTLPEndpoint   string `koanf:"otlp_endpoint"`
	TracesEnabled  bool   `koanf:"traces_enabled"`
	MetricsEnabled bool   `koanf:"metrics_enabled"`
	LogsEnabled    bool   `koanf:"logs_enabled"`
}

// Default values applied by Load when the file and environment leave a
// field unset.
const (
	DefaultTopicCount         = 10
	DefaultMaxTranscriptBytes = 1 << 20
	DefaultMinConfidence      = 0.2
	DefaultLocalBaseURL       = "http://localhost:11434"
	DefaultLocalModel         = "llama3.2"
	DefaultLocalTimeout       = 120 * time.Second
	DefaultRemoteTimeout      = 60 * time.Second
	DefaultMaxConcurrent      = 4
	DefaultServiceName        = "minuted"
)

func applyDefaults(cfg *Config) {
	if cfg.Extraction.TopicCount == 0 {
		cfg.Extraction.TopicCount = DefaultTopicCount
	}
	if cfg.Extraction.MaxTranscriptBytes == 0 {
		cfg.Extraction.MaxTranscriptBytes = DefaultMaxTranscriptBytes
	}

	if cfg.Providers.Local.BaseURL == "" {
		cfg.Providers.Local.BaseURL = DefaultLocalBaseURL
	}
	if cfg.Providers.Local.Model == "" {
		cfg.Providers.Local.Model = DefaultLocalModel
	}
	if cfg.Providers.Local.Timeout == 0 {
		cfg.Providers.Local.Timeout = Duration(DefaultLocalTimeout)
	}
	if cfg.Providers.Anthropic.Timeout == 0 {
		cfg.Providers.Anthropic.Timeout = Duration(DefaultRemoteTimeout)
	}
	if cfg.Providers.OpenAI.Timeout == 0 {
		cfg.Providers.OpenAI.Timeout = Duration(DefaultRemoteTimeout)
	}
	if cfg.Providers.MinConfidence == 0 {
		cfg.Providers.MinConfidence = DefaultMinConfidence
	}

	if cfg.Jobs.MaxConcurrent == 0 {
		cfg.Jobs.MaxConcurrent = DefaultMaxConcurrent
	}

	if cfg.Observability.ServiceName == "" {
		cfg.Observability.ServiceName = DefaultServiceName
	}
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
	if cfg.Observability.LogFormat == "" {
		cfg.Observability.LogFormat = "json"
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Extraction.TopicCount < 1 {
		return fmt.Errorf("extraction.topic_count must be positive, got %d", c.Extraction.TopicCount)
	}
	if c.Extraction.MaxTranscriptBytes < 1 {
		return fmt.Errorf("extraction.max_transcript_bytes must be positive, got %d", c.Extraction.MaxTranscriptBytes)
	}
	if c.Providers.MinConfidence < 0 || c.Providers.MinConfidence > 1 {
		return fmt.Errorf("providers.min_confidence must be in [0, 1], got %g", c.Providers.MinConfidence)
	}
	if c.Jobs.MaxConcurrent < 1 {
		return fmt.Errorf("jobs.max_concurrent must be positive, got %d", c.Jobs.MaxConcurrent)
	}
	switch strings.ToLower(c.Observability.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("observability.log_level must be one of debug, info, warn, error; got %q", c.Observability.LogLevel)
	}
	switch strings.ToLower(c.Observability.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("observability.log_format must be json or console, got %q", c.Observability.LogFormat)
	}
	return nil
}
