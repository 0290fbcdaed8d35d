// Package config loads rmxfret settings from defaults, an optional YAML
// file, RMXFRET_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/theory"
)

const EnvPrefix = "RMXFRET"

type (
	Config struct {
		// Optional starting point for the TUI. Empty values keep the
		// store's initial state.
		Instrument string `mapstructure:"instrument"`
		Key        string `mapstructure:"key"`
		Scale      string `mapstructure:"scale"`
		Tuning     string `mapstructure:"tuning"`

		Frets       FretsConfig       `mapstructure:"frets"`
		Dictionary  DictionaryConfig  `mapstructure:"dictionary"`
		PowerChords PowerChordsConfig `mapstructure:"power_chords"`
		Server      ServerConfig      `mapstructure:"server"`
		UI          UIConfig          `mapstructure:"ui"`
		Log         LogConfig         `mapstructure:"log"`
	}

	FretsConfig struct {
		Start   int `mapstructure:"start"`
		Visible int `mapstructure:"visible"`
		// Fit the visible frets to the terminal width.
		Fit bool `mapstructure:"fit"`
	}

	DictionaryConfig struct {
		// JSON or YAML file overriding the built in chords, scales or tunings.
		Path string `mapstructure:"path"`
	}

	PowerChordsConfig struct {
		// Check for a root and perfect fifth instead of a "5" suffixed name.
		Intervals bool `mapstructure:"intervals"`
	}

	ServerConfig struct {
		Addr    string   `mapstructure:"addr"`
		Origins []string `mapstructure:"origins"`
	}

	UIConfig struct {
		ResizeDebounce time.Duration `mapstructure:"resize_debounce"`
	}

	LogConfig struct {
		Level string `mapstructure:"level"`
		// Log file. Empty logs to stderr, except in the TUI which always
		// needs a file.
		File string `mapstructure:"file"`
	}
)

// New returns a viper instance with defaults and environment bindings set.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("instrument", "")
	v.SetDefault("key", "")
	v.SetDefault("scale", "")
	v.SetDefault("tuning", "")

	v.SetDefault("frets.start", theory.DefaultStartFret)
	v.SetDefault("frets.visible", theory.DefaultVisibleFrets)
	v.SetDefault("frets.fit", true)

	v.SetDefault("dictionary.path", "")
	v.SetDefault("power_chords.intervals", false)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.origins", []string{})

	v.SetDefault("ui.resize_debounce", 150*time.Millisecond)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads file, when given, into v and decodes the result.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that can be checked without a catalog.
func (c *Config) Validate() error {
	var errs []error
	if c.Instrument != "" {
		if _, err := dictionary.ParseInstrument(c.Instrument); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Key != "" {
		if _, err := theory.ParseNote(c.Key); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := theory.FretRange(c.Frets.Start, c.Frets.Visible); err != nil {
		errs = append(errs, err)
	}
	if c.UI.ResizeDebounce < 0 {
		errs = append(errs, fmt.Errorf("ui.resize_debounce must not be negative: %s", c.UI.ResizeDebounce))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Catalog loads the built in dictionaries, overridden by Dictionary.Path.
func (c *Config) Catalog() (*dictionary.Catalog, error) {
	if c.Dictionary.Path == "" {
		return dictionary.Default()
	}
	return dictionary.LoadFile(c.Dictionary.Path)
}

// State applies the configured starting point to st through the reducer.
// On error st is returned as it was.
func (c *Config) State(s *store.Store, st store.State) (store.State, error) {
	var actions []store.Action
	if c.Instrument != "" {
		actions = append(actions, store.SetInstrument{Instrument: dictionary.Instrument(c.Instrument)})
	}
	if c.Tuning != "" {
		actions = append(actions, store.SetTuning{Name: c.Tuning})
	}
	if c.Key != "" {
		key, err := theory.ParseNote(c.Key)
		if err != nil {
			return st, err
		}
		actions = append(actions, store.SetKey{Key: key})
	}
	if c.Scale != "" {
		actions = append(actions, store.SetScale{Scale: c.Scale})
	}
	actions = append(actions,
		store.SetStartFret{Fret: c.Frets.Start},
		store.SetVisibleFrets{Frets: c.Frets.Visible},
	)

	next := st
	for _, a := range actions {
		var err error
		if next, err = s.Reduce(next, a); err != nil {
			return st, fmt.Errorf("config: %w", err)
		}
	}
	return next, nil
}
