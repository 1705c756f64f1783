package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "info", opts.Level)
	assert.True(t, opts.Console)
	assert.Empty(t, opts.File)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/ostat-test.log")
	t.Setenv(EnvLogFileMaxMB, "7")

	opts := FromEnv()
	assert.Equal(t, "debug", opts.Level)
	assert.Equal(t, "/tmp/ostat-test.log", opts.File)
	assert.Equal(t, 7, opts.FileMaxSizeMB)
}

func TestFromEnvIgnoresBadSize(t *testing.T) {
	t.Setenv(EnvLogFileMaxMB, "not-a-number")
	opts := FromEnv()
	assert.Equal(t, DefaultOptions().FileMaxSizeMB, opts.FileMaxSizeMB)
}

func TestNewLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.Level = "warn"
	log := New(opts)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNewBadLevelFallsBack(t *testing.T) {
	opts := DefaultOptions()
	opts.Level = "shouty"
	log := New(opts)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
