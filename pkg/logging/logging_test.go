package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			xdg.Reload()
			t.Cleanup(xdg.Reload)
			original := log.Logger
			t.Cleanup(func() { log.Logger = original })

			var console bytes.Buffer
			SetupLogger(tt.verbosity, &console)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.Equal(t, tt.wantLevel, levelFor(tt.verbosity))

			logPath := filepath.Join(tempDir, "pathglob", "pathglob.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestSetupLoggerWritesToConsole(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	var console bytes.Buffer
	SetupLogger(0, &console)

	log.Info().Msg("hidden at default verbosity")
	log.Warn().Msg("shown at default verbosity")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "WRN shown at default verbosity")
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", dir)
		xdg.Reload()
		t.Cleanup(xdg.Reload)
		assert.Equal(t, filepath.Join(dir, "pathglob", "pathglob.log"), getLogFilePath())
	})

	t.Run("platform default", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		xdg.Reload()
		t.Cleanup(xdg.Reload)
		got := getLogFilePath()
		assert.Equal(t, filepath.Join(xdg.StateHome, "pathglob", "pathglob.log"), got)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("test-component")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"test-component"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestLogCommandAndOperation(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	LogCommand("pathglob", []string{"*.txt", "src"})
	done := LogOperationStart(log.Logger, "resolve")
	done()

	output := buf.String()
	assert.Contains(t, output, "Executing command")
	assert.Contains(t, output, "*.txt")
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, `"duration"`)
}

func TestSetupLogFileFailsOnUnwritableParent(t *testing.T) {
	tempDir := t.TempDir()
	blocker := filepath.Join(tempDir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := setupLogFile(filepath.Join(blocker, "sub", "pathglob.log"))
	assert.Error(t, err)
}
