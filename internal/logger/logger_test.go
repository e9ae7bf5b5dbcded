package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(false)
	Debug("hidden %s", "message")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("visible %s", "message")
	assert.Contains(t, buf.String(), "[DEBUG] visible message")
}

func TestInfoAndWarn(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(true)
	Info("converted %d pages", 3)
	Warn("cache miss for %s", "serde")

	assert.Contains(t, buf.String(), "[INFO] converted 3 pages")
	assert.Contains(t, buf.String(), "[WARN] cache miss for serde")
}

func TestError_AlwaysPrinted(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(false)
	Error("fetch failed: %s", "timeout")
	assert.Contains(t, buf.String(), "[ERROR] fetch failed: timeout")
}
