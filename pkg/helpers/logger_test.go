package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLineFormatter(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger("test", "development", "line", "info", &out)

	logger.Info("Database connected successfully")
	logger.WithField("user_id", 3).Error("invalid id")
	logger.Debug("hidden at info level")

	require.Equal(t, "[INFO] Database connected successfully\n[ERROR] invalid id\n", out.String())
}

func TestLineFormatKeepsTwoLevels(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger("test", "development", "line", "trace", &out)
	require.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.Trace("trace")
	logger.Debug("debug")
	logger.Warn("cache unavailable")
	logger.Info("connected")
	logger.Error("failed")

	require.Equal(t, "[INFO] cache unavailable\n[INFO] connected\n[ERROR] failed\n", out.String())
}

func TestLogError(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger("test", "production", "", "", &out)

	LogError(logger, "lookup failed", errors.New("boom"), logrus.Fields{"user_id": 1})
	require.Equal(t, "[ERROR] lookup failed\n", out.String())
}

func TestJSONFormat(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger("test", "production", "json", "warn", &out)

	logger.Info("dropped")
	LogError(logger, "lookup failed", errors.New("boom"), nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "lookup failed", entry["msg"])
	require.Equal(t, "boom", entry["error"])
}

func TestJSONFormatHonoursDebug(t *testing.T) {
	logger := NewLogger("test", "production", "json", "debug", &bytes.Buffer{})
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())
}
