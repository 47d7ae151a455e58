package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Color codes
const (
	reset      = "\033[0m"
	dim        = "\033[2m"
	blue       = "\033[34m"
	cyan       = "\033[36m"
	boldRed    = "\033[1;31m"
	boldGreen  = "\033[1;32m"
	boldYellow = "\033[1;33m"
)

// Emojis for different log types
const (
	infoEmoji    = "ℹ️ "
	successEmoji = "✅ "
	errorEmoji   = "❌ "
	warnEmoji    = "⚠️ "
	stepEmoji    = "👉 "
	debugEmoji   = "🔍 "
)

// Logger writes leveled diagnostics. It never writes to stdout, which is
// reserved for program transcripts.
type Logger struct {
	debug bool
	color bool
	out   io.Writer
}

// New creates a new logger instance writing to stderr
func New(debug bool) *Logger {
	return &Logger{debug: debug, color: os.Getenv("NO_COLOR") == "", out: os.Stderr}
}

// NewWriter creates a logger writing uncolored lines to w
func NewWriter(w io.Writer, debug bool) *Logger {
	return &Logger{debug: debug, out: w}
}

// SetDebug toggles debug output
func (l *Logger) SetDebug(debug bool) {
	l.debug = debug
}

// SetColor toggles ANSI colors
func (l *Logger) SetColor(color bool) {
	l.color = color
}

// formatMessage wraps long lines at 80 columns
func formatMessage(msg string) string {
	width := 80
	lines := strings.Split(msg, "\n")
	var formatted []string

	for _, line := range lines {
		if len(line) <= width {
			formatted = append(formatted, line)
			continue
		}

		words := strings.Fields(line)
		current := ""
		for _, word := range words {
			if len(current)+len(word)+1 > width {
				formatted = append(formatted, current)
				current = word
			} else if current == "" {
				current = word
			} else {
				current += " " + word
			}
		}
		if current != "" {
			formatted = append(formatted, current)
		}
	}

	return strings.Join(formatted, "\n")
}

func (l *Logger) emit(color, emoji, format string, args ...interface{}) {
	msg := formatMessage(fmt.Sprintf(format, args...))
	if !l.color {
		fmt.Fprintf(l.out, "%s%s\n", emoji, msg)
		return
	}
	fmt.Fprintf(l.out, "%s%s%s%s\n", color, emoji, msg, reset)
}

// Info prints an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(blue, infoEmoji, format, args...)
}

// Success prints a success message
func (l *Logger) Success(format string, args ...interface{}) {
	l.emit(boldGreen, successEmoji, format, args...)
}

// Error prints an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(boldRed, errorEmoji, format, args...)
}

// Warning prints a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.emit(boldYellow, warnEmoji, format, args...)
}

// Step prints a step message
func (l *Logger) Step(format string, args ...interface{}) {
	l.emit(cyan, stepEmoji, format, args...)
}

// Debug prints a debug message if debug is enabled
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.debug {
		return
	}
	l.emit(dim, debugEmoji, format, args...)
}

// IsDebug returns whether debug logging is enabled
func (l *Logger) IsDebug() bool {
	return l.debug
}
