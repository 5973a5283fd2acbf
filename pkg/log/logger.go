package log

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger = zerolog.Logger

// New returns the process logger. Outside production the output goes through
// the console writer so local runs stay readable.
func New(env string) Logger {
	if env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return log.Level(zerolog.InfoLevel)
}
