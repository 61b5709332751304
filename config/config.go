package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every setting the engine needs, however it arrived:
// flag, environment variable, or config file, in that precedence
// order (flags win).
type Config struct {
	GraphFile       string `mapstructure:"graph_file"`
	AgentFile       string `mapstructure:"agent_file"`
	Steps           int    `mapstructure:"steps"`
	Seed            uint32 `mapstructure:"seed"`
	Quiet           bool   `mapstructure:"quiet"`
	DisplayInterval int    `mapstructure:"display_interval"`
	Instrument      bool   `mapstructure:"instrument"`
	ZonePreview     int    `mapstructure:"zone_preview"`
	ZoneCount       int    `mapstructure:"zone_count"`
}

// BindFlags registers every CLI flag from spec.md's §6 onto fs:
// -g/-r (required), -n/-s/-q/-i/-I, plus the supplemented -z
// partition-preview flag (its value is the number of zones to preview)
// and --zone-count, the number of zones the simulation runs across.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP("graph", "g", "", "grid graph file (required)")
	fs.StringP("agents", "r", "", "agent file (required)")
	fs.IntP("steps", "n", 1, "number of simulation steps")
	fs.Uint32P("seed", "s", 618, "global RNG seed")
	fs.BoolP("quiet", "q", false, "omit per-node counts from display frames")
	fs.IntP("interval", "i", 1, "display interval in steps (0 disables)")
	fs.BoolP("instrument", "I", false, "enable activity instrumentation")
	fs.IntP("zones", "z", 0, "print the partition for this many zones and exit, without running the simulation")
	fs.Int("zone-count", 1, "number of zones to run the simulation across")
}

// Load reads bound flags, environment variables prefixed RATSIM_, and
// an optional config file into a Config, then validates it.
func Load(fs *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RATSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlag("graph_file", fs.Lookup("graph")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("agent_file", fs.Lookup("agents")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("steps", fs.Lookup("steps")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("seed", fs.Lookup("seed")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("quiet", fs.Lookup("quiet")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("display_interval", fs.Lookup("interval")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("instrument", fs.Lookup("instrument")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("zone_preview", fs.Lookup("zones")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("zone_count", fs.Lookup("zone-count")); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces spec.md §6's required-flag and range rules.
func (c *Config) Validate() error {
	if c.GraphFile == "" {
		return fmt.Errorf("%w: -g/--graph", ErrRequiredFlagMissing)
	}
	if c.ZonePreview > 0 {
		return nil
	}

	if c.AgentFile == "" {
		return fmt.Errorf("%w: -r/--agents", ErrRequiredFlagMissing)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: -n/--steps must be >= 0", ErrInvalidValue)
	}
	if c.ZoneCount < 1 {
		return fmt.Errorf("%w: --zone-count must be >= 1", ErrInvalidValue)
	}

	return nil
}
