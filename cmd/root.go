package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rapidmidiex/rmxfret/config"
	"github.com/rapidmidiex/rmxfret/matcher"
	"github.com/rapidmidiex/rmxfret/store"
)

var (
	cfgFile string
	v       = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "rmxfret",
	Short: "Scales and chords on the fretboard",
	Long: `rmxfret shows scales over a guitar, bass or ukulele fretboard, lists
the chords that fit them and names the chord you fret.

Without a subcommand it starts the terminal UI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml or json)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("dictionary", "", "file overriding the built in chords, scales or tunings")
	flags.Bool("interval-power-chords", false, "detect power chords by their intervals instead of their name")

	cobra.CheckErr(v.BindPFlag("log.level", flags.Lookup("log-level")))
	cobra.CheckErr(v.BindPFlag("dictionary.path", flags.Lookup("dictionary")))
	cobra.CheckErr(v.BindPFlag("power_chords.intervals", flags.Lookup("interval-power-chords")))
}

// Execute runs the command line.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// setup loads the configuration and builds the store every command works on.
func setup() (*config.Config, *store.Store, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, nil, err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, nil, fmt.Errorf("load dictionaries: %w", err)
	}

	var opts []matcher.Option
	if cfg.PowerChords.Intervals {
		opts = append(opts, matcher.WithPowerChordDetector(matcher.IntervalCheck{}))
	}
	return cfg, store.New(cat, matcher.New(cat.Chords, cat.Scales, opts...)), nil
}
