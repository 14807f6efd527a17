package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	return newLogger(io.Discard, "")
}

func TestRun_Singleton(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"singleton"}, &out, quietLogger())

	assert.Equal(t, 0, code)
	got := out.String()
	assert.Equal(t, 4, strings.Count(got, "Are instances the same? true"))
	assert.NotContains(t, got, "Are instances the same? false")
	assert.Equal(t, 4, strings.Count(got, "concurrent callers: 1\n"))
	for _, name := range []string{"eager", "lazy", "thread-safe", "double-checked"} {
		assert.Contains(t, got, name+" singleton:")
	}
}

func TestRun_Factory(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"factory"}, &out, quietLogger())

	assert.Equal(t, 0, code)
	got := out.String()
	assert.Contains(t, got, "Created User: AliceAdmin\nPermissions: Admin Permissions: Read, Write, Execute, Delete")
	assert.Contains(t, got, "Created User: BobRegular\nPermissions: Regular Permissions: Read, Write")
	assert.Contains(t, got, "Caught expected error: unknown user type: GUEST")
}

func TestRun_DefaultRunsEverything(t *testing.T) {
	var out bytes.Buffer

	code := run(nil, &out, quietLogger())

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "--- Singleton Pattern Demo ---")
	assert.Contains(t, out.String(), "--- Factory Pattern Demo ---")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer

	code := run([]string{"deploy"}, &out, quietLogger())

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "Command 'deploy' not recognized.")
}

func TestNewLogger(t *testing.T) {
	t.Run("default level", func(t *testing.T) {
		assert.Equal(t, logrus.InfoLevel, newLogger(io.Discard, "").GetLevel())
	})

	t.Run("explicit level", func(t *testing.T) {
		assert.Equal(t, logrus.DebugLevel, newLogger(io.Discard, "debug").GetLevel())
	})

	t.Run("invalid level keeps default and warns", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, "loud")

		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
		assert.Contains(t, buf.String(), "ignoring log level")
		assert.Contains(t, buf.String(), logLevelEnv)
	})
}
