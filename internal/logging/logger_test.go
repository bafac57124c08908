package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesFileAndConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var console bytes.Buffer

	logger, closer, err := New(Config{File: path, Console: &console, NoColor: true})
	require.NoError(t, err)

	child := WithComponent(logger, "download")
	child.Error().Str("url", "https://youtu.be/x").Msg("fetch failed")
	require.NoError(t, closer.Close())

	assert.Contains(t, console.String(), "fetch failed")
	assert.Contains(t, console.String(), "https://youtu.be/x")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "download", entry["component"])
	assert.Equal(t, "fetch failed", entry["message"])
}

func TestNew_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("{\"message\":\"previous run\"}\n"), 0644))

	logger, closer, err := New(Config{File: path, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	logger.Info().Msg("next run")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "previous run")
	assert.Contains(t, lines[1], "next run")
}

func TestNew_Level(t *testing.T) {
	var console bytes.Buffer
	logger, closer, err := New(Config{Level: "warn", Console: &console, NoColor: true})
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "shown")
}

func TestNew_Errors(t *testing.T) {
	_, _, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	_, _, err = New(Config{File: filepath.Join(t.TempDir(), "missing", "dir", "app.log")})
	assert.Error(t, err)
}
