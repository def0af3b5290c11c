package log

import (
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger points both the process-wide slog default and the module's
// LoggerProvider at a JSON handler on stdout with source locations and the
// given minimum level. Commands call it once at startup.
func SetupLogger(loglevel string) {
	level := &slog.LevelVar{}
	level.Set(ToLogLevel(loglevel))
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
	logger := slog.New(handler)
	slog.SetDefault(logger)
	SetLoggerProvider(&slogProvider{level: level, logger: logger})
}

// ToLogLevel converts a level name to a slog.Level. It panics on unknown
// names since a bad level is a programming error, not a runtime condition.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
