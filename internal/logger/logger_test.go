package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogdash/internal/config"
)

func TestSetupJSONOutput(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	_, err := setup(config.Logger{Level: "info"}, &buf)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("user_id", "abc").Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "abc", entry["user_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestSetupWritesFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	path := filepath.Join(t.TempDir(), "api.log")
	var buf bytes.Buffer
	_, err := setup(config.Logger{Level: "debug", File: path, MaxSizeMB: 1}, &buf)
	require.NoError(t, err)

	log.Warn().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := setup(config.Logger{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
