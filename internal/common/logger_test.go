package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger_JSON(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelDebug, "json"))

	LogError(errors.New("boom"), "snapshot load failed", Fields{"path": "/tmp/s.yaml"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "snapshot load failed", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "/tmp/s.yaml", entry["path"])
	assert.Equal(t, "ERROR", entry["level"])
}

func TestSetupLogger_LevelFilters(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelWarn, "console"))

	LogDebug("hidden", nil)
	LogInfo("hidden too", Fields{"n": 1})
	assert.Empty(t, buf.String())

	LogWarn("shown", Fields{"site_id": 3})
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "site_id=3")
}

func TestSetupLogger_InvalidFormat(t *testing.T) {
	err := SetupLogger(&bytes.Buffer{}, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
