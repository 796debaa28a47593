package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOrCreate_Defaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")

	c, err := ReadOrCreate(dir)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, "text", c.Format)
	assert.False(t, c.UseLLM)
	assert.Equal(t, "info", c.LogLevel)

	// The default file lands on disk.
	_, err = os.Stat(filepath.Join(dir, configFileName))
	require.NoError(t, err)
}

func TestSaveAndRead(t *testing.T) {
	dir := t.TempDir()

	want := &Config{
		Workers:    8,
		Format:     "ndjson",
		UseLLM:     true,
		GenAIModel: "llama3.2:latest",
		LogLevel:   "debug",
	}
	require.NoError(t, Save(dir, want))

	got, err := ReadOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_Invalid(t *testing.T) {
	assert.Error(t, Save("", &Config{}))
	assert.Error(t, Save(t.TempDir(), nil))
}

func TestReadOrCreate_EmptyDir(t *testing.T) {
	_, err := ReadOrCreate("")
	require.Error(t, err)
}
