package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mchmarny/modelrep/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	app := newApp()
	require.NotNil(t, app)

	assert.Equal(t, "modelrep", app.Name)
	assert.NotEmpty(t, app.Version)

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "score")
	assert.Contains(t, names, "auth")
}

func TestScoreCommandShape(t *testing.T) {
	require.Len(t, scoreCmd.Subcommands, 2)

	gh := scoreCmd.Subcommands[0]
	assert.Equal(t, "github", gh.Name)
	assert.NotNil(t, gh.Action)

	hf := scoreCmd.Subcommands[1]
	assert.Equal(t, "hf", hf.Name)
	assert.NotNil(t, hf.Action)
}

func TestFormatSelection(t *testing.T) {
	t.Cleanup(func() { outputFormat = formatText })
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		flag string
		want string
	}{
		{"json", formatJSON},
		{"yaml", formatYAML},
		{"yml", formatYAML},
		{"ndjson", formatNDJSON},
		{"text", formatText},
		{"bogus", formatText}, // unknown formats keep the default
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			outputFormat = formatText

			// Running with no command still executes Before, which is
			// where format selection happens.
			app := newApp()
			app.Writer = io.Discard
			require.NoError(t, app.Run([]string{"modelrep", "--format", tt.flag}))
			assert.Equal(t, tt.want, outputFormat)
		})
	}
}

func TestConfigFormatApplied(t *testing.T) {
	t.Cleanup(func() { outputFormat = formatText })
	outputFormat = formatText

	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".modelrep")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, config.Save(dir, &config.Config{
		Workers:  2,
		Format:   "yaml",
		LogLevel: "info",
	}))

	// With no --format flag the config file decides.
	app := newApp()
	app.Writer = io.Discard
	require.NoError(t, app.Run([]string{"modelrep"}))
	assert.Equal(t, formatYAML, outputFormat)

	// An explicit flag wins over the config file.
	outputFormat = formatText
	app = newApp()
	app.Writer = io.Discard
	require.NoError(t, app.Run([]string{"modelrep", "--format", "ndjson"}))
	assert.Equal(t, formatNDJSON, outputFormat)
}
