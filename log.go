package fintrack

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// SetLogger replaces the package logger. The CLI uses it to install a
// console writer and to raise the level in verbose mode.
func SetLogger(l zerolog.Logger) {
	logger = l
}
