package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogger_FormatsMessageAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.InfoLevel)

	log.Warn("could not resolve %s", "guides/a.mdx")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "could not resolve guides/a.mdx", entry["message"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.WarnLevel)

	log.Info("hidden")
	log.Debug("hidden")
	require.Zero(t, buf.Len())
}

func TestLogger_WithAddsField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.InfoLevel).With("lang", "zh")

	log.Info("rendered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "zh", entry["lang"])
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := NewNop()
	log.Error("boom %d", 1)
	log.With("k", "v").Info("ok")
}
