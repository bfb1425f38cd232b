// Package logger builds the zerolog logger used by the setcookie command.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/aatuh/setcookie/internal/config"
)

// TimeFormat is the console timestamp layout.
const TimeFormat = "2006-01-02T15:04:05.000"

// New returns a logger writing to the writers named in cfg: "console"
// writes human-readable lines to console, "file" writes JSON lines to a
// rotated cfg.File. With no known writer the logger is disabled.
func New(cfg config.Log, console io.Writer) zerolog.Logger {
	writers := make([]io.Writer, 0, len(cfg.Writer))
	for _, w := range cfg.Writer {
		switch strings.ToLower(strings.TrimSpace(w)) {
		case "console":
			if console != nil {
				writers = append(writers, zerolog.ConsoleWriter{Out: console, NoColor: true, TimeFormat: TimeFormat})
			}
		case "file":
			if cfg.File != "" {
				writers = append(writers, &lumberjack.Logger{
					Filename:   cfg.File,
					MaxSize:    1,
					MaxAge:     30,
					MaxBackups: 3,
					LocalTime:  true,
					Compress:   false,
				})
			}
		}
	}
	if len(writers) == 0 {
		return zerolog.Nop()
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level)).
		With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
