package apio

import (
	"fmt"
	stdio "io"
	"strings"
	"time"
)

// LogLevel is the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects the per-level prefix.
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [WARN] [ERROR] ...
	LogFormatCircles                  // 🔵 🟢 🟡 🔴 🟣
	LogFormatSymbols                  // ◆ ✓ ▲ ✗ ●
	LogFormatPlain                    // no prefix
)

var prefixSets = map[LogFormat]map[LogLevel]string{
	LogFormatTagged: {
		LevelDebug:   "[DEBUG]",
		LevelInfo:    "[INFO]",
		LevelSuccess: "[SUCCESS]",
		LevelWarning: "[WARN]",
		LevelError:   "[ERROR]",
	},
	LogFormatCircles: {
		LevelDebug:   "🟣",
		LevelInfo:    "🔵",
		LevelSuccess: "🟢",
		LevelWarning: "🟡",
		LevelError:   "🔴",
	},
	LogFormatSymbols: {
		LevelDebug:   "●",
		LevelInfo:    "◆",
		LevelSuccess: "✓",
		LevelWarning: "▲",
		LevelError:   "✗",
	},
	LogFormatPlain: {},
}

// Logger writes leveled, optionally colored lines through an IOManager.
type Logger struct {
	io           *IOManager
	format       LogFormat
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
	theme        Theme
}

// NewLogger creates a logger bound to m. Debug messages are dropped until
// WithLevel(LevelDebug) is applied.
func NewLogger(m *IOManager) *Logger {
	return &Logger{
		io:           m,
		format:       LogFormatTagged,
		minLevel:     LevelInfo,
		errorsStderr: true,
		timeFormat:   "15:04:05",
		theme:        DefaultTheme(m),
	}
}

func (l *Logger) WithFormat(format LogFormat) *Logger { l.format = format; return l }

// WithLevel sets the lowest level that is written.
func (l *Logger) WithLevel(level LogLevel) *Logger { l.minLevel = level; return l }

func (l *Logger) WithTimestamp(enabled bool) *Logger { l.withTime = enabled; return l }

func (l *Logger) WithTimeFormat(format string) *Logger { l.timeFormat = format; return l }

// ErrorsToStderr controls whether errors and warnings go to stderr.
func (l *Logger) ErrorsToStderr(enabled bool) *Logger { l.errorsStderr = enabled; return l }

func (l *Logger) WithTheme(theme Theme) *Logger { l.theme = theme; return l }

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level LogLevel) bool { return l != nil && level >= l.minLevel }

// Log writes one line at the given level.
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	fmt.Fprintln(l.writer(level), l.formatMessage(level, fmt.Sprintf(format, args...)))
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	parts := make([]string, 0, 3)
	if p := prefixSets[l.format][level]; p != "" {
		parts = append(parts, p)
	}
	if l.withTime {
		parts = append(parts, "["+time.Now().Format(l.timeFormat)+"]")
	}
	parts = append(parts, msg)
	return l.colorize(level, strings.Join(parts, " "))
}

func (l *Logger) colorize(level LogLevel, text string) string {
	var c ColorSpec
	switch level {
	case LevelDebug:
		c = l.theme.Debug
	case LevelInfo:
		c = l.theme.Info
	case LevelSuccess:
		c = l.theme.Success
	case LevelWarning:
		c = l.theme.Warning
	case LevelError:
		c = l.theme.Error
	default:
		return text
	}
	return NewStyle().Fg(c).Sprint(l.io, text)
}

func (l *Logger) writer(level LogLevel) stdio.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

func (l *Logger) Debug(format string, args ...any)   { l.Log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)    { l.Log(LevelInfo, format, args...) }
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.Log(LevelError, format, args...) }
