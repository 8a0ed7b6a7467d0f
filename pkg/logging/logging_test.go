package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
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

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "projbuild", "projbuild.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := getLogFilePath()
	assert.Equal(t, filepath.Join("/custom/state", "projbuild", "projbuild.log"), got)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("structure")
	logger.Info().Msg("parsed")

	assert.Contains(t, buf.String(), `"component":"structure"`)
	assert.Contains(t, buf.String(), "parsed")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "create")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "duration")
}
