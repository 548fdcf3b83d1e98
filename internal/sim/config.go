package sim

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/dreamware/brigade/internal/actor"
)

// Duration wraps time.Duration so TOML files can spell delays the Go way,
// e.g. mean = "150ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// DelayConfig describes one randomized pause: a mean and the deviation of
// its Gaussian jitter.
type DelayConfig struct {
	Mean Duration `toml:"mean"`
	Dev  Duration `toml:"dev"`
}

func (d DelayConfig) delay() actor.Delay {
	return actor.Delay{Mean: d.Mean.Duration, Dev: d.Dev.Duration}
}

// Config is the full simulation configuration. The topology is fixed for
// the lifetime of a run: the counts never change once the run starts.
type Config struct {
	// Groups is the number of dining groups.
	Groups int `toml:"groups"`
	// Tables is the number of tables. May be smaller than Groups, in
	// which case late groups queue at reception.
	Tables int `toml:"tables"`

	// Travel is each group's pause before arriving at the restaurant.
	Travel DelayConfig `toml:"travel"`
	// Eat is each group's pause between food arriving and checkout.
	Eat DelayConfig `toml:"eat"`
	// Cook is the chef's pause per order.
	Cook DelayConfig `toml:"cook"`
}

// Default returns the configuration used when no file or flags override
// it: five groups contending for two tables, with sub-second delays.
func Default() Config {
	return Config{
		Groups: 5,
		Tables: 2,
		Travel: DelayConfig{Mean: Duration{100 * time.Millisecond}, Dev: Duration{25 * time.Millisecond}},
		Eat:    DelayConfig{Mean: Duration{200 * time.Millisecond}, Dev: Duration{50 * time.Millisecond}},
		Cook:   DelayConfig{Mean: Duration{150 * time.Millisecond}, Dev: Duration{30 * time.Millisecond}},
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("sim: load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the protocol cannot run with.
// Configuration errors are detected before any actor starts; a run never
// begins on a bad topology.
func (c Config) Validate() error {
	if c.Groups < 1 {
		return fmt.Errorf("sim: config: groups must be at least 1, got %d", c.Groups)
	}
	if c.Tables < 1 {
		return fmt.Errorf("sim: config: tables must be at least 1, got %d", c.Tables)
	}
	for _, d := range []struct {
		name string
		d    DelayConfig
	}{{"travel", c.Travel}, {"eat", c.Eat}, {"cook", c.Cook}} {
		if d.d.Mean.Duration < 0 {
			return fmt.Errorf("sim: config: %s mean must not be negative", d.name)
		}
		if d.d.Dev.Duration < 0 {
			return fmt.Errorf("sim: config: %s dev must not be negative", d.name)
		}
	}
	return nil
}
