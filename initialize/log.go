package initialize

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a console-friendly logger in dev and plain JSON in prod.
func NewLogger(env string) zerolog.Logger {
	if env == "prod" {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	return zerolog.New(cw).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
