package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func captureOutput(f func()) string {
	oldStdout := os.Stdout

	r, w, _ := os.Pipe()
	os.Stdout = w

	outputChan := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outputChan <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = oldStdout

	return <-outputChan
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	assert.NotNil(t, logger)
	assert.IsType(t, &zerologLogger{}, logger)
}

func TestInfo(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := captureOutput(func() {
		logger := NewLogger()
		logger.Info("info message")
	})

	assert.Contains(t, output, "info message")
	assert.Contains(t, output, `"level":"info"`)
}

func TestError(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := captureOutput(func() {
		logger := NewLogger()
		logger.Error("error message")
	})

	assert.Contains(t, output, "error message")
	assert.Contains(t, output, `"level":"error"`)
}

func TestNewLoggerWithLevel(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	// Debug messages are dropped when the logger level is warn
	output := captureOutput(func() {
		logger := NewLoggerWithLevel("warn")
		logger.Debug("should not appear")
		logger.Warn("should appear")
	})

	assert.NotContains(t, output, "should not appear")
	assert.Contains(t, output, "should appear")

	// Unknown level falls back to info
	output = captureOutput(func() {
		logger := NewLoggerWithLevel("bogus")
		logger.Info("info still works")
	})
	assert.Contains(t, output, "info still works")
}

func TestWithField(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := captureOutput(func() {
		logger := NewLogger()
		logger.WithField("photo_id", "abc123").Info("field message")
	})

	assert.Contains(t, output, `"photo_id":"abc123"`)
	assert.Contains(t, output, "field message")
}

func TestWithFields(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	output := captureOutput(func() {
		logger := NewLogger()
		logger.WithFields(map[string]interface{}{
			"email":  "test@example.com",
			"status": "pending",
		}).Info("fields message")
	})

	assert.Contains(t, output, `"email":"test@example.com"`)
	assert.Contains(t, output, `"status":"pending"`)
}
