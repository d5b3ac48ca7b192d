package fsstructure

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewLogger creates a new logger instance with a specified level and output.
// Output is colored only when w is a terminal.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(w),
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("lib", "fsstructure").
		Logger()
}

// NewTestLogger creates a logger instance for tests with a specified verbosity.
func NewTestLogger(w io.Writer, verbose int) zerolog.Logger {
	var level zerolog.Level
	switch verbose {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}
	return NewLogger(w, level)
}

// LogLevelFromString parses a string to a zerolog.Level.
func LogLevelFromString(levelStr string) (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(levelStr))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
