package log

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCustomLogger(&buf, LevelWarn)

	logger.Debug("debug %d", 1)
	logger.Info("info %d", 2)
	logger.Warn("warn %d", 3)
	logger.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "error 4")
	assert.Contains(t, out, "[docqa]")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "NONE", LevelNone.String())
	assert.Contains(t, Level(99).String(), "UNKNOWN")
}

func TestPackageLevelLogger(t *testing.T) {
	original := GetDefaultLogger()
	defer SetDefaultLogger(original)

	var buf bytes.Buffer
	SetDefaultLogger(NewCustomLogger(&buf, LevelDebug))

	Info("ingested %d chunks", 7)
	assert.Contains(t, buf.String(), "ingested 7 chunks")
}

func TestGologLogger(t *testing.T) {
	glogger := golog.New()
	logger := NewGologLogger(glogger)

	assert.Equal(t, LevelInfo, logger.GetLevel())

	logger.SetLevel(LevelError)
	assert.Equal(t, LevelError, logger.GetLevel())

	// Below-threshold calls are dropped by the wrapper.
	logger.Info("suppressed")
	logger.Debug("suppressed")
}

func TestNoOpLogger(t *testing.T) {
	var l NoOpLogger
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}
