package logger

import (
	"bytes"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", "json", &buf)
	require.NoError(t, err)

	log.Debug().Str("component", "test").Int("pads", 3).Msg("done")

	var entry map[string]interface{}
	require.NoError(t, gojson.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "test", entry["component"])
	require.Equal(t, float64(3), entry["pads"])
	require.Equal(t, "done", entry["message"])
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", "json", &buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("", "console", &buf)
	require.NoError(t, err)

	log.Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("loud", "json", nil)
	require.Error(t, err)

	_, err = New("info", "xml", nil)
	require.Error(t, err)
}
