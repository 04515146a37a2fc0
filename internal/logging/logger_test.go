package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kuy/jsonbox-go/internal/logging"
)

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.New(logging.WithOutput(&buf), logging.WithoutColors())
	assert.False(t, logger.IsDebugEnabled())

	logger.Debug("hidden", nil)
	logger.Info("created record", map[string]interface{}{"id": "11111111111111111111"})
	logger.Warn("slow response", nil)
	logger.Error("request failed", map[string]interface{}{"status": 500})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=info msg=\"created record\" id=11111111111111111111")
	assert.Contains(t, out, "level=warning msg=\"slow response\"")
	assert.Contains(t, out, "level=error msg=\"request failed\" status=500")
}

func TestLogger_Verbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.New(logging.WithOutput(&buf), logging.WithoutColors(), logging.WithVerbose(true))
	assert.True(t, logger.IsDebugEnabled())

	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET"})
	assert.Contains(t, buf.String(), "level=debug msg=\"HTTP Request\" method=GET")
}
