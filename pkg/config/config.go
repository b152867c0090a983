package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/henderiw/sortviz/pkg/algorithm"
	"github.com/henderiw/sortviz/pkg/sequence"
)

// MaxSpeed is one step per nanosecond, the finest pace the driver keeps.
const MaxSpeed = 1e9

// Config holds everything needed to set up one sort run.
type Config struct {
	Algorithm    string        `yaml:"algorithm"`
	Count        int           `yaml:"count"`
	Mode         string        `yaml:"mode"`
	Range        string        `yaml:"range,omitempty"` // lo-hi, empty sorts the whole sequence
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Border       int           `yaml:"border"`
	Speed        float64       `yaml:"speed"` // steps per second
	Frame        time.Duration `yaml:"frame"`
	Seed         int64         `yaml:"seed,omitempty"` // 0 seeds from the clock
	StopOnSorted bool          `yaml:"stopOnSorted"`
	MaxSteps     uint64        `yaml:"maxSteps,omitempty"`
}

func Default() *Config {
	return &Config{
		Algorithm:    string(algorithm.Merge),
		Count:        100,
		Mode:         string(sequence.Shuffle),
		Width:        100,
		Height:       31,
		Border:       1,
		Speed:        10,
		Frame:        16 * time.Millisecond,
		StopOnSorted: true,
	}
}

func (r *Config) Kind() (algorithm.Kind, error) {
	return algorithm.ParseKind(r.Algorithm)
}

func (r *Config) SequenceMode() (sequence.Mode, error) {
	return sequence.ParseMode(r.Mode)
}

// SortRange returns the configured range, or the whole sequence.
func (r *Config) SortRange() (sequence.Range, error) {
	if r.Range == "" {
		return sequence.RangeFrom(0, r.Count-1), nil
	}
	return sequence.ParseRange(r.Range)
}

// SetDimensions parses "width,height".
func (r *Config) SetDimensions(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("invalid dimensions %q, want width,height", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("invalid width %q in dimensions %q", parts[0], s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("invalid height %q in dimensions %q", parts[1], s)
	}
	r.Width, r.Height = w, h
	return nil
}

// Validate returns every problem found, joined.
func (r *Config) Validate() error {
	var errm error
	if _, err := r.Kind(); err != nil {
		errm = errors.Join(errm, err)
	}
	if _, err := r.SequenceMode(); err != nil {
		errm = errors.Join(errm, err)
	}
	if r.Count < 1 {
		errm = errors.Join(errm, fmt.Errorf("count %d must be at least 1", r.Count))
	}
	if rng, err := r.SortRange(); err != nil {
		errm = errors.Join(errm, err)
	} else if r.Count >= 1 && !(rng.IsValid() && rng.CoveredBy(sequence.RangeFrom(0, r.Count-1))) {
		errm = errors.Join(errm, fmt.Errorf("range %s is not within 0-%d", rng, r.Count-1))
	}
	if r.Width < 1 || r.Height < 1 {
		errm = errors.Join(errm, fmt.Errorf("dimensions %dx%d must be positive", r.Width, r.Height))
	}
	if r.Border < 0 {
		errm = errors.Join(errm, fmt.Errorf("border %d must not be negative", r.Border))
	}
	if r.Speed <= 0 || r.Speed > MaxSpeed {
		errm = errors.Join(errm, fmt.Errorf("speed %v must be positive and at most %v", r.Speed, MaxSpeed))
	}
	if r.Frame <= 0 {
		errm = errors.Join(errm, fmt.Errorf("frame %s must be positive", r.Frame))
	}
	return errm
}
