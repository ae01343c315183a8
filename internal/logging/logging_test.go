package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keshon/svcs/internal/logging"
)

func TestSetLevel(t *testing.T) {
	prev := logging.Level()
	t.Cleanup(func() { logging.SetLevel(prev) })

	var buf bytes.Buffer
	log := logging.New(&buf)

	logging.SetLevel(slog.LevelWarn)
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	logging.SetLevel(slog.LevelDebug)
	log.Debug("shown", "id", "abc")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "id=abc")
}
