// Package logx configures the zerolog logger used for warnings and progress.
// Lookup results go to stdout; everything logged here goes to stderr.
package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Debug        bool
	PrettyFormat bool
	Out          io.Writer
}

// Init replaces the global logger and returns it.
func Init(conf Config) zerolog.Logger {
	out := conf.Out
	if out == nil {
		out = os.Stderr
	}

	if conf.PrettyFormat {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	logger := zerolog.New(out).With().Timestamp().Logger()

	if conf.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	log.Logger = logger

	return logger
}
