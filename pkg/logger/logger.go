package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	ipfslog2 "github.com/ipfs/go-log/v2"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogMode string

const (
	LogModeDefault LogMode = "default"
	LogModeJSON    LogMode = "json"
	LogModeCmd     LogMode = "cmd"
)

func ParseLogMode(s string) (LogMode, error) {
	mode := LogMode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case LogModeDefault, LogModeJSON, LogModeCmd:
		return mode, nil
	case "":
		return LogModeDefault, nil
	default:
		return LogModeDefault, fmt.Errorf("invalid log mode %q: must be one of default, json, cmd", s)
	}
}

var stderr = struct{ io.Writer }{os.Stderr}

func init() { //nolint:gochecknoinits // init with zerolog is idiomatic
	ConfigureLogging(LogModeDefault)
}

type tTesting interface {
	zerolog.TestingLog
	Cleanup(f func())
}

// ConfigureTestLogging allows logs to be associated with individual tests
func ConfigureTestLogging(t tTesting) {
	oldLogger := log.Logger
	oldContextLogger := zerolog.DefaultContextLogger
	configureLogging(LogModeDefault, zerolog.ConsoleTestWriter(t))
	t.Cleanup(func() {
		log.Logger = oldLogger
		zerolog.DefaultContextLogger = oldContextLogger
		configureIpfsLogging(log.Logger)
	})
}

// ConfigureLogging sets the global zerolog logger for the given mode. The
// level comes from LOG_LEVEL and defaults to info.
func ConfigureLogging(mode LogMode) {
	configureLogging(mode)
}

func configureLogging(mode LogMode, loggingOptions ...func(w *zerolog.ConsoleWriter)) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(levelFromEnv())

	isTerminal := isatty.IsTerminal(os.Stderr.Fd())

	defaultLogging := func(w *zerolog.ConsoleWriter) {
		w.Out = stderr
		w.NoColor = !isTerminal
		w.TimeFormat = "15:04:05.999 |"
		w.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		}
	}

	cmdLogging := func(w *zerolog.ConsoleWriter) {
		w.PartsOrder = []string{zerolog.MessageFieldName}
		w.FieldsExclude = []string{zerolog.CallerFieldName}
	}

	options := []func(w *zerolog.ConsoleWriter){defaultLogging}
	if mode == LogModeCmd {
		options = append(options, cmdLogging)
	}
	options = append(options, loggingOptions...)

	zerolog.CallerMarshalFunc = shortCaller

	var useLogWriter io.Writer = zerolog.NewConsoleWriter(options...)
	if mode == LogModeJSON {
		useLogWriter = stderr
	}

	log.Logger = zerolog.New(useLogWriter).With().Timestamp().Caller().Logger()
	zerolog.DefaultContextLogger = &log.Logger

	configureIpfsLogging(log.Logger)
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "error":
		return zerolog.ErrorLevel
	case "warn":
		return zerolog.WarnLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// shortCaller keeps the last two path elements of the caller's file.
func shortCaller(_ uintptr, file string, line int) string {
	short := file

	separatorCount := 2
	countedSeparators := 0

	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			countedSeparators++
			if countedSeparators >= separatorCount {
				short = file[i+1:]
				break
			}
		}
	}
	return short + ":" + strconv.Itoa(line)
}

type zerologWriteSyncer struct {
	l zerolog.Logger
}

var _ zapcore.WriteSyncer = (*zerologWriteSyncer)(nil)

func (z *zerologWriteSyncer) Write(b []byte) (int, error) {
	z.l.Debug().CallerSkipFrame(5).Msg(strings.TrimSuffix(string(b), "\n")) //nolint:gomnd
	return len(b), nil
}

func (z *zerologWriteSyncer) Sync() error {
	return nil
}

// configureIpfsLogging routes the go-log output of the IPFS client libraries
// into zerolog so there is a single log stream.
func configureIpfsLogging(l zerolog.Logger) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {}
	encCfg.ConsoleSeparator = " "
	encoder := zapcore.NewConsoleEncoder(encCfg)

	core := zapcore.NewCore(encoder, &zerologWriteSyncer{l: l}, zap.NewAtomicLevelAt(zapcore.DebugLevel))

	ipfslog2.SetPrimaryCore(core)
}
