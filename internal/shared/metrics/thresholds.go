package metrics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Band holds a pair of cutoffs. Values strictly below Low or strictly above High
// leave the neutral zone.
type Band struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// Thresholds are the cutoffs used to classify fundamentals and oscillators.
type Thresholds struct {
	PE    Band `yaml:"pe"`
	Beta  Band `yaml:"beta"`
	Yield Band `yaml:"yield"`
	RSI   Band `yaml:"rsi"`
}

var defaultThresholds = DefaultThresholds()

// DefaultThresholds returns the cutoffs the dashboard ships with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		PE:    Band{Low: 15, High: 30},
		Beta:  Band{Low: 1, High: 1.5},
		Yield: Band{Low: 1, High: 3},
		RSI:   Band{Low: 30, High: 70},
	}
}

// LoadThresholds reads a YAML file on top of the defaults. Bands missing from the
// file keep their default cutoffs. An empty path returns the defaults.
func LoadThresholds(path string) (Thresholds, error) {
	t := DefaultThresholds()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read thresholds: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse thresholds: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate reports bands whose low cutoff is above the high cutoff.
func (t Thresholds) Validate() error {
	bands := []struct {
		name string
		band Band
	}{
		{"pe", t.PE},
		{"beta", t.Beta},
		{"yield", t.Yield},
		{"rsi", t.RSI},
	}
	for _, b := range bands {
		if b.band.Low > b.band.High {
			return fmt.Errorf("thresholds: %s low %v is above high %v", b.name, b.band.Low, b.band.High)
		}
	}
	return nil
}
