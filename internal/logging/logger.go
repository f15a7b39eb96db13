// Package logging configures the global zerolog logger from CLI flags,
// the way undock's internal/logging does. The core codec packages never
// import this package — they never log (spec §7).
package logging

import (
	"io"
	"os"
	"time"

	"github.com/jontey/uqpack/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure installs the global zerolog logger according to cli.
func Configure(cli config.Cli) {
	var w io.Writer

	_, noColor := os.LookupEnv("NO_COLOR")

	if !cli.LogJSON {
		w = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			NoColor:    noColor || cli.LogNoColor,
			TimeFormat: time.RFC1123,
		}
	} else {
		w = os.Stdout
	}

	ctx := zerolog.New(w).With().Timestamp()
	log.Logger = ctx.Logger()

	level, err := zerolog.ParseLevel(cli.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("unknown log level")
	}
	zerolog.SetGlobalLevel(level)
}
