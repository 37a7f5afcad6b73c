package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", FormatJSON)

	logger.Info().Msg("hidden")
	logger.Warn().Int("pages", 4).Msg("shown")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, "shown", event["message"])
	assert.Equal(t, float64(4), event["pages"])
	assert.Contains(t, event, "time")
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "", FormatConsole)

	logger.Debug().Msg("hidden")
	logger.Info().Str("output", "acm_sign_in.pdf").Msg("sign-in sheet written")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "sign-in sheet written")
	assert.Contains(t, out, "output=acm_sign_in.pdf")
	assert.NotContains(t, out, "\x1b[", "no color codes off a terminal")
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"chatty", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NewLogger(&bytes.Buffer{}, tt.level, FormatJSON).GetLevel(), tt.level)
	}
}
