package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

// LogLevel is a pflag value for the diagnostic log level.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l *LogLevel) String() string {
	return string(*l)
}

func (l *LogLevel) Set(value string) error {
	switch LogLevel(strings.ToLower(value)) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		*l = LogLevel(strings.ToLower(value))
		return nil
	}
	return fmt.Errorf("invalid log level %q (use debug, info, warn or error)", value)
}

func (l *LogLevel) Type() string {
	return "level"
}

// SlogLevel maps the flag value onto slog's levels. The zero value maps
// to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
