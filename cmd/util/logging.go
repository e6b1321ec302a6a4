package util

import (
	"os"
	"strings"

	"github.com/truverse/taskctl/pkg/logger"
)

// LoggingMode is set by the --log-mode flag. LOG_TYPE overrides the default.
var LoggingMode = defaultLoggingMode()

func defaultLoggingMode() logger.LogMode {
	if logtype, set := os.LookupEnv("LOG_TYPE"); set {
		if mode, err := logger.ParseLogMode(strings.ToLower(logtype)); err == nil {
			return mode
		}
	}
	return logger.LogModeDefault
}
