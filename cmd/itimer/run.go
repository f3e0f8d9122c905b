package main

import (
	"io/fs"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/spikeekips/itimer/timer"
	"github.com/spikeekips/itimer/util"
	"github.com/spikeekips/itimer/util/logging"
)

type runCommand struct {
	Design    string  `name:"design" type:"existingfile" optional:"" help:"run design YAML; overrides the timer flags"`
	Kind      string  `name:"kind" default:"real" enum:"real,virtual,prof" help:"timer kind: {${enum}}"`
	Interval  string  `name:"interval" default:"1s" help:"nominal repeat interval"`
	Value     string  `name:"value" optional:"" help:"time until the first expiry; defaults to interval"`
	StateFile string  `name:"state-file" optional:"" help:"load and save the nominal timer state"`
	Speed     float64 `name:"speed" default:"1.0" help:"speed factor; >1 compresses time"`
	Expiries  uint    `name:"expiries" default:"5" help:"stop after this many expiries; 0 runs until interrupted"`
}

func (cmd *runCommand) Run(logs *logging.Logging) error {
	d, err := cmd.design()
	if err != nil {
		return err
	}

	log := logging.NewLogging(func(c zerolog.Context) zerolog.Context {
		return c.Str("module", "run")
	}).SetLogging(logs).Log()

	t, err := d.NewTimer()
	if err != nil {
		return err
	}

	defer func() {
		_ = t.Close()
	}()

	_ = t.SetLogging(logs)

	if len(d.StateFile) > 0 {
		switch loaded, err := loadState(t, d.StateFile); {
		case err != nil:
			return err
		case loaded:
			log.Info().Str("state_file", d.StateFile).Msg("timer state loaded")
		}
	}

	expirysig := expirySignal(t.Kind())

	sigch := make(chan os.Signal, 8)
	signal.Notify(sigch, expirysig, unix.SIGINT, unix.SIGTERM)

	defer signal.Stop(sigch)

	if err := t.Start(); err != nil {
		return err
	}

	log.Info().
		Stringer("kind", t.Kind()).
		Stringer("interval", t.Interval()).
		Float64("speed_factor", t.SpeedFactor()).
		Msg("timer armed")

	var fired uint

end:
	for {
		sig := <-sigch

		switch sig {
		case expirysig:
			fired++

			log.Info().Uint("expiries", fired).Msg("timer expired")

			if d.Expiries > 0 && fired >= d.Expiries {
				break end
			}
		default:
			log.Info().Str("signal", sig.String()).Msg("interrupted")

			break end
		}
	}

	if err := t.Stop(); err != nil {
		return err
	}

	if len(d.StateFile) > 0 {
		if err := saveState(t, d.StateFile); err != nil {
			return err
		}

		log.Info().Str("state_file", d.StateFile).Msg("timer state saved")
	}

	return printState(t, fired)
}

func (cmd *runCommand) design() (RunDesign, error) {
	if len(cmd.Design) > 0 {
		b, err := os.ReadFile(cmd.Design)
		if err != nil {
			return RunDesign{}, errors.WithStack(err)
		}

		return RunDesignFromYAML(b)
	}

	d := RunDesign{
		Kind:        cmd.Kind,
		Interval:    cmd.Interval,
		Value:       cmd.Value,
		StateFile:   cmd.StateFile,
		SpeedFactor: cmd.Speed,
		Expiries:    cmd.Expiries,
	}

	if err := d.IsValid(nil); err != nil {
		return RunDesign{}, err
	}

	return d, nil
}

func loadState(t *timer.Timer, f string) (bool, error) {
	r, err := os.Open(f) //nolint:gosec //.

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, errors.WithStack(err)
	}

	defer func() {
		_ = r.Close()
	}()

	if _, err := t.ReadFrom(r); err != nil {
		return false, err
	}

	return true, nil
}

func saveState(t *timer.Timer, f string) error {
	w, err := os.OpenFile(f, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600) //nolint:gosec //.
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		_ = w.Close()
	}()

	if _, err := t.WriteTo(w); err != nil {
		return err
	}

	return nil
}

func printState(t *timer.Timer, fired uint) error {
	value, err := t.Value()
	if err != nil {
		return err
	}

	_, _ = os.Stdout.WriteString(util.MustMarshalJSONIndentString(map[string]interface{}{
		"kind":         t.Kind().String(),
		"interval":     t.Interval(),
		"value":        value,
		"speed_factor": t.SpeedFactor(),
		"expiries":     fired,
	}) + "\n")

	return nil
}

func expirySignal(k timer.Kind) os.Signal {
	switch k {
	case timer.Virtual:
		return unix.SIGVTALRM
	case timer.Prof:
		return unix.SIGPROF
	default:
		return unix.SIGALRM
	}
}
