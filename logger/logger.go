package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ip812/helloadp/config"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(key string, value any) Logger
}

type zeroLogger struct {
	log zerolog.Logger
}

func New(cfg *config.Config) Logger {
	var out io.Writer = os.Stdout
	if cfg.App.Env == config.Local {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return NewWithWriter(out, level)
}

func NewWithWriter(w io.Writer, level zerolog.Level) Logger {
	return &zeroLogger{
		log: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

func NewNop() Logger {
	return &zeroLogger{log: zerolog.Nop()}
}

func (l *zeroLogger) Debug(msg string, args ...any) {
	l.log.Debug().Msg(format(msg, args))
}

func (l *zeroLogger) Info(msg string, args ...any) {
	l.log.Info().Msg(format(msg, args))
}

func (l *zeroLogger) Warn(msg string, args ...any) {
	l.log.Warn().Msg(format(msg, args))
}

func (l *zeroLogger) Error(msg string, args ...any) {
	l.log.Error().Msg(format(msg, args))
}

func (l *zeroLogger) With(key string, value any) Logger {
	return &zeroLogger{log: l.log.With().Interface(key, value).Logger()}
}

func format(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
