package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type LoggerOption func(*loggerOptions)

type loggerOptions struct {
	level   string
	console bool
	out     io.Writer
	extra   []io.Writer
}

func WithLevel(level string) LoggerOption {
	return func(o *loggerOptions) { o.level = level }
}

// WithConsole 使用人類可讀的輸出, CLI 用
func WithConsole() LoggerOption {
	return func(o *loggerOptions) { o.console = true }
}

func WithOutput(w io.Writer) LoggerOption {
	return func(o *loggerOptions) { o.out = w }
}

// WithExtraWriter 額外輸出, 例如 KafkaWriter
func WithExtraWriter(w io.Writer) LoggerOption {
	return func(o *loggerOptions) {
		if w != nil {
			o.extra = append(o.extra, w)
		}
	}
}

func NewLogger(module string, opts ...LoggerOption) zerolog.Logger {
	o := &loggerOptions{level: "info", out: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	level, err := zerolog.ParseLevel(o.level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var primary io.Writer = o.out
	if o.console {
		primary = zerolog.ConsoleWriter{Out: o.out, TimeFormat: time.TimeOnly}
	}

	var w io.Writer = primary
	if len(o.extra) > 0 {
		w = zerolog.MultiLevelWriter(append([]io.Writer{primary}, o.extra...)...)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("module", module).Logger()
}
