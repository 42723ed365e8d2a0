package logging

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/embedded"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/minuted/internal/config"
)

// recordingProvider captures records emitted through the OTEL bridge.
type recordingProvider struct {
	embedded.LoggerProvider

	mu      sync.Mutex
	scopes  []string
	records []log.Record
}

func (p *recordingProvider) Logger(name string, _ ...log.LoggerOption) log.Logger {
	p.mu.Lock()
	p.scopes = append(p.scopes, name)
	p.mu.Unlock()
	return &recordingLogger{provider: p}
}

func (p *recordingProvider) emitted() []log.Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]log.Record(nil), p.records...)
}

type recordingLogger struct {
	embedded.Logger

	provider *recordingProvider
}

func (l *recordingLogger) Emit(_ context.Context, r log.Record) {
	l.provider.mu.Lock()
	l.provider.records = append(l.provider.records, r)
	l.provider.mu.Unlock()
}

func (l *recordingLogger) Enabled(context.Context, log.EnabledParameters) bool {
	return true
}

func newBufferLogger(t *testing.T) (*zap.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	core := zapcore.NewCore(
		NewRedactingEncoder(newEncoder("json")),
		zapcore.AddSync(&buf),
		zapcore.DebugLevel,
	)
	return zap.New(core), &buf
}

func TestNew(t *testing.T) {
	logger, err := New(config.ObservabilityConfig{
		ServiceName: "minuted",
		LogLevel:    "debug",
		LogFormat:   "json",
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewDefaultsToInfo(t *testing.T) {
	logger, err := New(config.ObservabilityConfig{LogFormat: "json"}, nil)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewTeesIntoOTELBridge(t *testing.T) {
	provider := &recordingProvider{}
	logger, err := New(config.ObservabilityConfig{
		ServiceName: "minuted",
		LogLevel:    "info",
		LogFormat:   "json",
	}, provider)
	require.NoError(t, err)

	logger.Info("bridge check", zap.String("provider", "local"))

	assert.Contains(t, provider.scopes, "minuted")
	records := provider.emitted()
	require.Len(t, records, 1)
	assert.Equal(t, "bridge check", records[0].Body().AsString())
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.ObservabilityConfig{LogLevel: "loud"}, nil)
	assert.Error(t, err)
}

func TestRedactingEncoderByKey(t *testing.T) {
	logger, buf := newBufferLogger(t)

	logger.Info("provider call",
		zap.String("api_key", "sk-ant-verysecret"),
		zap.String("Authorization", "Bearer abc123"),
		zap.String("provider", "anthropic"),
	)
	require.NoError(t, Sync(logger))

	out := buf.String()
	assert.NotContains(t, out, "sk-ant-verysecret")
	assert.NotContains(t, out, "abc123")
	assert.Contains(t, out, `"api_key":"[REDACTED]"`)
	assert.Contains(t, out, `"provider":"anthropic"`)
}

func TestSecretField(t *testing.T) {
	logger, buf := newBufferLogger(t)

	key := config.Secret("sk-12345")
	logger.Info("credentials loaded", Secret("anthropic_key", key))

	out := buf.String()
	assert.NotContains(t, out, "sk-12345")
	assert.Contains(t, out, "[REDACTED:8]")
}

func TestRedactedString(t *testing.T) {
	f := RedactedString("transcript", "John: hello")
	assert.Equal(t, "[REDACTED:11]", f.String)
}
