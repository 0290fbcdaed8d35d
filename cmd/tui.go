package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rapidmidiex/rmxfret"
)

const defaultTUILog = "rmxfret.log"

func init() {
	flags := tuiCmd.Flags()
	flags.String("instrument", "", "guitar, bass or ukulele")
	flags.String("key", "", "key to start in, ex: A")
	flags.String("scale", "", "scale to start with")
	flags.String("tuning", "", "tuning name")
	flags.Int("visible-frets", 0, "visible frets, disables fitting to the terminal width")

	cobra.CheckErr(v.BindPFlag("instrument", flags.Lookup("instrument")))
	cobra.CheckErr(v.BindPFlag("key", flags.Lookup("key")))
	cobra.CheckErr(v.BindPFlag("scale", flags.Lookup("scale")))
	cobra.CheckErr(v.BindPFlag("tuning", flags.Lookup("tuning")))

	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the terminal UI (default)",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, s, err := setup()
	if err != nil {
		return err
	}
	if visible, _ := cmd.Flags().GetInt("visible-frets"); visible > 0 {
		cfg.Frets.Visible = visible
		cfg.Frets.Fit = false
	}

	// The alt screen owns stdout, so logs go to a file.
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = defaultTUILog
	}
	f, err := tea.LogToFile(logFile, "rmxfret")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	logger := cfg.Logger(f)
	slog.SetDefault(logger)

	initial, err := s.Initial()
	if err != nil {
		return err
	}
	st, err := cfg.State(s, initial)
	if err != nil {
		return err
	}

	return rmxfret.Run(s, rmxfret.Options{
		State:          &st,
		FitWidth:       cfg.Frets.Fit,
		ResizeDebounce: cfg.UI.ResizeDebounce,
		Logger:         logger,
	})
}
