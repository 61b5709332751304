package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridzone/ratsim/logging"
)

func TestLoggerFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.New(logging.LevelWarn, &buf)
	log.Info("should not appear")
	log.Warn("should appear %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear 1")
}

func TestLoggerWithFieldAnnotates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.New(logging.LevelDebug, &buf)
	log.WithField("zone", 3).Info("hello")

	assert.True(t, strings.Contains(buf.String(), "zone=3"))
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	t.Parallel()

	var n logging.Null
	n.Debug("x")
	n.Info("x")
	n.Warn("x")
	n.Error("x")
	assert.NotNil(t, n.WithField("a", 1))
}
