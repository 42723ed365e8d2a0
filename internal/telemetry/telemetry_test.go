package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/minuted/internal/config"
)

func TestNewDisabled(t *testing.T) {
	tel, err := New(context.Background(), config.ObservabilityConfig{
		ServiceName: "minuted",
	})
	require.NoError(t, err)
	assert.False(t, tel.Degraded())

	// No-op providers still hand out usable instruments.
	assert.NotNil(t, tel.Tracer("test"))
	assert.NotNil(t, tel.Meter("test"))
	assert.Nil(t, tel.LoggerProvider())
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestNewWithoutEndpoint(t *testing.T) {
	tel, err := New(context.Background(), config.ObservabilityConfig{
		ServiceName:   "minuted",
		TracesEnabled: true,
		LogsEnabled:   true,
	})
	require.NoError(t, err)
	assert.False(t, tel.Degraded())
	assert.Nil(t, tel.LoggerProvider())
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestNilTelemetry(t *testing.T) {
	var tel *Telemetry
	assert.NotNil(t, tel.Tracer("test"))
	assert.NotNil(t, tel.Meter("test"))
	assert.Nil(t, tel.LoggerProvider())
	assert.False(t, tel.Degraded())
	assert.NoError(t, tel.Shutdown(context.Background()))
}
