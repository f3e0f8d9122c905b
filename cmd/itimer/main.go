package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/spikeekips/itimer/timer"
	"github.com/spikeekips/itimer/util/logging"
)

func init() { //nolint:gochecknoinits //.
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign //.
}

func main() {
	var cli struct {
		Run     runCommand     `cmd:"" help:"arm an interval timer and log its expirations"`
		Version versionCommand `cmd:"" help:"print library version"`

		LogLevel  string `name:"log-level" default:"info" enum:"trace,debug,info,warn,error" help:"log level: {${enum}}" group:"logging"`
		LogFormat string `name:"log-format" default:"terminal" enum:"json,terminal" help:"log format: {${enum}}" group:"logging"`
	}

	kctx := kong.Parse(&cli, kong.Name("itimer"))

	level, err := zerolog.ParseLevel(cli.LogLevel)
	kctx.FatalIfErrorf(err)

	logs := logging.Setup(os.Stderr, level, cli.LogFormat, false)

	timer.SetFatalLogging(logs)

	log := logging.NewLogging(func(c zerolog.Context) zerolog.Context {
		return c.Str("module", "main")
	}).SetLogging(logs).Log()

	log.Debug().Str("command", kctx.Command()).Msg("start command")

	err = func() error {
		defer log.Debug().Msg("stopped")

		return kctx.Run(logs)
	}()
	if err != nil {
		log.Error().Err(err).Msg("stopped by error")
	}

	kctx.FatalIfErrorf(err)
}
