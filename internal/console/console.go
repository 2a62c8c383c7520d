// Package console provides the leveled, colorized output used by the
// cliargs command-line tools.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the tag used by FormatTagged.
func (l Level) String() string {
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

// Format selects the line prefix style.
type Format int

const (
	FormatSymbols Format = iota // ● ◆ ✓ ▲ ✗
	FormatTagged                // [INFO] [WARN] ...
	FormatPlain                 // no prefix
)

var symbols = map[Level]string{
	LevelDebug:   "●",
	LevelInfo:    "◆",
	LevelSuccess: "✓",
	LevelWarning: "▲",
	LevelError:   "✗",
}

var palette = map[Level]*color.Color{
	LevelDebug:   color.New(color.FgMagenta),
	LevelInfo:    color.New(color.FgBlue),
	LevelSuccess: color.New(color.FgGreen),
	LevelWarning: color.New(color.FgYellow),
	LevelError:   color.New(color.FgRed, color.Bold),
}

// Logger writes leveled messages. Errors and warnings go to the error
// writer unless ErrorsToStderr(false) is set.
type Logger struct {
	out, err     io.Writer
	format       Format
	minLevel     Level
	colorize     bool
	errorsStderr bool
	withTime     bool
	timeFormat   string
}

// New returns a logger bound to os.Stdout and os.Stderr. Color is enabled
// when stdout is a terminal and NO_COLOR is unset.
func New() *Logger {
	return &Logger{
		out:          os.Stdout,
		err:          os.Stderr,
		format:       FormatSymbols,
		minLevel:     LevelInfo,
		colorize:     IsTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "",
		errorsStderr: true,
		timeFormat:   "15:04:05",
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// WithWriters redirects output; err may be nil to share out.
func (l *Logger) WithWriters(out, err io.Writer) *Logger {
	l.out = out
	l.err = err
	if err == nil {
		l.err = out
	}
	return l
}

// WithFormat sets the prefix style.
func (l *Logger) WithFormat(f Format) *Logger {
	l.format = f
	return l
}

// WithColor forces color on or off.
func (l *Logger) WithColor(enabled bool) *Logger {
	l.colorize = enabled
	return l
}

// WithLevel drops messages below lvl.
func (l *Logger) WithLevel(lvl Level) *Logger {
	l.minLevel = lvl
	return l
}

// WithTimestamp prefixes each line with the wall-clock time.
func (l *Logger) WithTimestamp(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// ErrorsToStderr controls whether warnings and errors use the error writer.
func (l *Logger) ErrorsToStderr(enabled bool) *Logger {
	l.errorsStderr = enabled
	return l
}

// Log writes one formatted line at level.
func (l *Logger) Log(level Level, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	fmt.Fprintln(l.writer(level), l.line(level, fmt.Sprintf(format, args...)))
}

func (l *Logger) line(level Level, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	var b strings.Builder
	switch l.format {
	case FormatSymbols:
		b.WriteString(symbols[level])
		b.WriteByte(' ')
	case FormatTagged:
		b.WriteString("[" + level.String() + "] ")
	case FormatPlain:
	}
	if l.withTime {
		b.WriteString(time.Now().Format(l.timeFormat))
		b.WriteByte(' ')
	}
	b.WriteString(msg)

	if !l.colorize {
		return b.String()
	}
	c := *palette[level]
	c.EnableColor()
	return c.Sprint(b.String())
}

func (l *Logger) writer(level Level) io.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.err
	}
	return l.out
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Success logs at LevelSuccess.
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }

// Warning logs at LevelWarning.
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs at LevelError.
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
