package logger

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		InfoLogger.SetOutput(os.Stdout)
		WarnLogger.SetOutput(os.Stdout)
		ErrorLogger.SetOutput(os.Stderr)
	})

	t.Run("Printf style", func(t *testing.T) {
		buf.Reset()
		Info("listening on %s", ":8000")
		assert.Contains(t, buf.String(), "INFO: ")
		assert.Contains(t, buf.String(), "listening on :8000")
	})

	t.Run("Key value pairs", func(t *testing.T) {
		buf.Reset()
		Warn("store probe", "collection", "product", "count", 4)
		assert.Contains(t, buf.String(), "WARN: ")
		assert.Contains(t, buf.String(), "store probe collection=product count=4")
	})

	t.Run("Error appends cause", func(t *testing.T) {
		buf.Reset()
		Error("insert failed", errors.New("connection refused"), "collection", "order")
		assert.Contains(t, buf.String(), "ERROR: ")
		assert.Contains(t, buf.String(), "insert failed collection=order: connection refused")
	})

	t.Run("Error without cause", func(t *testing.T) {
		buf.Reset()
		Error("nothing to report", nil)
		assert.Contains(t, buf.String(), "nothing to report\n")
	})
}
