package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusJSONFieldsOK(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogrus(LogrusLoggerProperties{
		Level:  logrus.DebugLevel,
		Output: buf,
		Format: "json",
	}).ForClass("logs", "Test")

	logger.Info(context.Background(), "hello", MapFields{"size": 3})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "logs", entry["package"])
	assert.Equal(t, "Test", entry["class"])
	assert.Equal(t, float64(3), entry["size"])
}

func TestLogrusLevelFiltersOK(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogrus(LogrusLoggerProperties{
		Level:  logrus.WarnLevel,
		Output: buf,
	})

	logger.Debug(context.Background(), "hidden", nil)
	logger.Info(context.Background(), "hidden", nil)
	assert.Equal(t, 0, buf.Len())

	logger.Warn(context.Background(), "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("nonsense"))
}
