package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rapidmidiex/rmxfret/theory"
)

var asJSON bool

func init() {
	for _, c := range []*cobra.Command{scalesCmd, chordsCmd, nameCmd} {
		c.Flags().BoolVar(&asJSON, "json", false, "print JSON")
		rootCmd.AddCommand(c)
	}
	scalesCmd.Flags().String("exclude", "", "leave out this root")
	chordsCmd.Flags().String("scale", "Major (Ionian)", "scale name")
	chordsCmd.Flags().String("key", string(theory.DefaultRoot), "key")
	chordsCmd.Flags().Int("strings", 6, "strings available, longer chords are left out")
}

var scalesCmd = &cobra.Command{
	Use:     "scales <note>...",
	Short:   "List the keys and scales containing the given notes",
	Example: "  rmxfret scales C E G",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := setup()
		if err != nil {
			return err
		}
		notes, err := theory.ParseNotes(args)
		if err != nil {
			return err
		}
		var exclude *theory.Note
		if raw, _ := cmd.Flags().GetString("exclude"); raw != "" {
			n, err := theory.ParseNote(raw)
			if err != nil {
				return err
			}
			exclude = &n
		}

		res, err := s.Matcher().CompatibleScalesForNotes(notes, exclude)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), res)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, rs := range res {
			fmt.Fprintf(w, "%s\t%s\n", rs.Root, strings.Join(rs.Scales, ", "))
		}
		return w.Flush()
	},
}

var chordsCmd = &cobra.Command{
	Use:     "chords",
	Short:   "List the chords playable within a scale",
	Example: `  rmxfret chords --scale "Minor pentatonic" --key A --strings 4`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := setup()
		if err != nil {
			return err
		}
		scale, _ := cmd.Flags().GetString("scale")
		rawKey, _ := cmd.Flags().GetString("key")
		strs, _ := cmd.Flags().GetInt("strings")

		key, err := theory.ParseNote(rawKey)
		if err != nil {
			return err
		}
		chords, err := s.Matcher().ScaleChords(scale, key, strs)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), chords)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, c := range chords {
			power := ""
			if s.Matcher().IsPowerChord(c) {
				power = "power chord"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, strings.Join(theory.Strings(c.Notes), " "), power)
		}
		return w.Flush()
	},
}

var nameCmd = &cobra.Command{
	Use:     "name <note>...",
	Short:   "Name the chord made of the given notes, lowest first",
	Example: "  rmxfret name E G C",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := setup()
		if err != nil {
			return err
		}
		notes, err := theory.ParseNotes(args)
		if err != nil {
			return err
		}
		naming, err := s.Matcher().NameChord(notes)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd.OutOrStdout(), naming)
		}

		out := cmd.OutOrStdout()
		if !naming.Found {
			fmt.Fprintf(out, "unknown chord, intervals %v\n", theory.Ints(naming.Intervals))
			return nil
		}
		fmt.Fprintln(out, naming.Name)
		return nil
	},
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
