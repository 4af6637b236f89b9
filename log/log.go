// Package log is a thin zerolog wrapper for operator-facing output.
// Everything goes to stderr through a console writer; a one-shot build
// tool has no use for log files.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = newLogger(os.Stderr)

func newLogger(out io.Writer) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// SetOutput redirects log output, for tests.
func SetOutput(out io.Writer) {
	logger = newLogger(out)
}

func Info(msg string) {
	logger.Info().Msg(msg)
}

func Infof(format string, args ...any) {
	logger.Info().Msg(fmt.Sprintf(format, args...))
}

func Warn(msg string) {
	logger.Warn().Msg(msg)
}

func Warnf(format string, args ...any) {
	logger.Warn().Msg(fmt.Sprintf(format, args...))
}

func Error(msg string) {
	logger.Error().Msg(msg)
}

func Errorf(format string, args ...any) {
	logger.Error().Msg(fmt.Sprintf(format, args...))
}

// Exported reports one successfully written asset file.
func Exported(file string, bytes int) {
	logger.Info().Str("file", file).Int("bytes", bytes).Msg("exported")
}
