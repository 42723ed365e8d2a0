package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTranscriptFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standup.txt")
	require.NoError(t, os.WriteFile(path, []byte("John: hello."), 0o644))

	got, err := readTranscript([]string{path})
	require.NoError(t, err)
	assert.Equal(t, "John: hello.", got)
}

func TestReadTranscriptMissingFile(t *testing.T) {
	_, err := readTranscript([]string{"/does/not/exist.txt"})
	assert.Error(t, err)
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("OPENAI_API_KEY", "")

	creds := credentialsFromEnv()
	assert.True(t, creds.Anthropic.IsSet())
	assert.False(t, creds.OpenAI.IsSet())
	assert.Equal(t, "sk-ant-test", creds.Anthropic.Value())
}
