//go:build unit || !integration

package logger

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	oldLogger := log.Logger
	oldContextLogger := zerolog.DefaultContextLogger

	t.Cleanup(func() {
		log.Logger = oldLogger
		zerolog.DefaultContextLogger = oldContextLogger
	})

	var logging strings.Builder
	configureLogging(LogModeDefault, func(w *zerolog.ConsoleWriter) {
		w.Out = &logging
		w.NoColor = true
	})

	log.Error().Err(errors.New("testing error logging")).Msg("testing message")

	actual := logging.String()
	t.Log(actual)

	assert.Contains(t, actual, "testing message", "Log statement doesn't contain the log message")
	assert.Contains(t, actual, `error="testing error logging"`, "Log statement doesn't contain the logged error")
	assert.Contains(t, actual, "logger/logger_test.go", "Log statement doesn't contain the short caller path")
}

func TestParseLogMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want LogMode
	}{
		{"", LogModeDefault},
		{"default", LogModeDefault},
		{"JSON", LogModeJSON},
		{" cmd ", LogModeCmd},
	} {
		mode, err := ParseLogMode(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, mode, tc.in)
	}

	_, err := ParseLogMode("station")
	require.Error(t, err)
}

func TestShortCaller(t *testing.T) {
	assert.Equal(t, "chain/client.go:12", shortCaller(0, "/home/dev/taskctl/pkg/chain/client.go", 12))
	assert.Equal(t, "main.go:3", shortCaller(0, "main.go", 3))
}
