package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "15:04:05.000"

// Options control the harness logger.
type Options struct {
	Debug   bool
	NoColor bool
	RunID   string
}

// New returns a zerolog logger that writes human-readable lines to out. Debug level messages,
// which include anything written through Printf, are only shown if opts.Debug is set.
func New(out io.Writer, opts Options) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    opts.NoColor,
		TimeFormat: consoleTimeFormat,
	}
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	ctx := zerolog.New(writer).Level(level).With().Timestamp()
	if opts.RunID != "" {
		ctx = ctx.Str("run_id", opts.RunID)
	}
	return ctx.Logger()
}

// Elapsed is a convenience for logging a duration rounded to milliseconds.
func Elapsed(start time.Time) time.Duration {
	return time.Since(start).Round(time.Millisecond)
}
