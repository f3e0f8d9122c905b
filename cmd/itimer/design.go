package main

import (
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/spikeekips/itimer/timer"
)

// RunDesign configures the run command; loaded from a YAML file or assembled
// from flags.
type RunDesign struct {
	Kind        string  `yaml:"kind"`
	Interval    string  `yaml:"interval"`
	Value       string  `yaml:"value,omitempty"`
	StateFile   string  `yaml:"state_file,omitempty"`
	SpeedFactor float64 `yaml:"speed_factor,omitempty"`
	Expiries    uint    `yaml:"expiries,omitempty"`
}

func RunDesignFromYAML(b []byte) (RunDesign, error) {
	var d RunDesign

	if err := yaml.Unmarshal(b, &d); err != nil {
		return d, errors.Wrap(err, "decode run design")
	}

	if err := d.IsValid(nil); err != nil {
		return d, err
	}

	return d, nil
}

func (d RunDesign) IsValid([]byte) error {
	if _, err := timer.ParseKind(d.Kind); err != nil {
		return err
	}

	switch i, err := time.ParseDuration(d.Interval); {
	case err != nil:
		return errors.Wrapf(err, "interval=%q", d.Interval)
	case i <= 0:
		return errors.Errorf("interval must be positive, %q", d.Interval)
	}

	if len(d.Value) > 0 {
		switch v, err := time.ParseDuration(d.Value); {
		case err != nil:
			return errors.Wrapf(err, "value=%q", d.Value)
		case v < 0:
			return errors.Errorf("value must not be negative, %q", d.Value)
		}
	}

	if d.SpeedFactor < 0 {
		return errors.Errorf("speed factor must not be negative, %v", d.SpeedFactor)
	}

	return nil
}

// NewTimer builds a stopped timer from the design; a zero speed factor means
// normal speed.
func (d RunDesign) NewTimer() (*timer.Timer, error) {
	k, err := timer.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}

	i, err := time.ParseDuration(d.Interval)
	if err != nil {
		return nil, errors.Wrapf(err, "interval=%q", d.Interval)
	}

	interval := timer.TimeValueFromDuration(i)

	value := interval

	if len(d.Value) > 0 {
		v, err := time.ParseDuration(d.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "value=%q", d.Value)
		}

		value = timer.TimeValueFromDuration(v)
	}

	t, err := timer.NewTimerWithValue(k, interval, value)
	if err != nil {
		return nil, err
	}

	if d.SpeedFactor > 0 {
		if err := t.SetSpeedFactor(d.SpeedFactor); err != nil {
			_ = t.Close()

			return nil, err
		}
	}

	return t, nil
}
