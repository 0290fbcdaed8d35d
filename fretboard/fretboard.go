// Package fretboard lays out the notes of a tuned instrument over a window
// of frets and renders it for the terminal.
package fretboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/rmxfret/styles"
	"github.com/rapidmidiex/rmxfret/theory"
)

const (
	MinVisibleFrets = 1
	MaxVisibleFrets = 24

	// Columns used by the open string label and document padding.
	margin = 8
)

type (
	Cell struct {
		Fret int
		Note theory.Note
		// Note belongs to the highlighted set, ex: the scale.
		InSet bool
		// Note is the key or chord root.
		Root bool
		// The string is fretted here.
		Fretted bool
	}

	String struct {
		Open  theory.Note
		Cells []Cell
	}

	Board struct {
		Frets   []int
		Strings []String
	}

	Options struct {
		// Open notes, top string first.
		Tuning []theory.Note
		Frets  []int
		// Notes to highlight.
		Set  []theory.Note
		Root theory.Note
		// Fret per string, negative when the string is not fretted.
		Chord []int
	}

	Cursor struct {
		String int
		Fret   int
		Active bool
	}
)

// Build computes every cell on the board. Strings keep the tuning's order.
func Build(o Options) (Board, error) {
	b := Board{
		Frets:   append([]int(nil), o.Frets...),
		Strings: make([]String, 0, len(o.Tuning)),
	}
	for i, open := range o.Tuning {
		s := String{Open: open, Cells: make([]Cell, 0, len(o.Frets))}
		for _, fret := range o.Frets {
			n, err := theory.Transpose(open, fret)
			if err != nil {
				return Board{}, fmt.Errorf("string %d: %w", i, err)
			}
			s.Cells = append(s.Cells, Cell{
				Fret:    fret,
				Note:    n,
				InSet:   theory.Contains(o.Set, n),
				Root:    o.Root != "" && n == o.Root,
				Fretted: i < len(o.Chord) && o.Chord[i] == fret,
			})
		}
		b.Strings = append(b.Strings, s)
	}
	return b, nil
}

// Render draws the board. With showNotes the highlighted cells show their
// note name, otherwise their fret number.
func (b Board) Render(showNotes bool, cursor Cursor) string {
	rows := make([]string, 0, len(b.Strings)+1)

	header := []string{styles.OpenString.Render("")}
	for _, f := range b.Frets {
		header = append(header, styles.FretCell.Render(fmt.Sprint(f)))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for i, s := range b.Strings {
		cells := []string{styles.OpenString.Render(string(s.Open))}
		for j, c := range s.Cells {
			onCursor := cursor.Active && cursor.String == i && cursor.Fret == b.Frets[j]
			cells = append(cells, renderCell(c, showNotes, onCursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func renderCell(c Cell, showNotes, onCursor bool) string {
	label := "─"
	if c.InSet || c.Fretted {
		if showNotes {
			label = string(c.Note)
		} else {
			label = fmt.Sprint(c.Fret)
		}
	}

	style := styles.FretCell
	switch {
	case c.Fretted:
		style = styles.FrettedNote
	case c.Root && c.InSet:
		style = styles.RootNote
	case c.InSet:
		style = styles.ScaleNote
	}
	if onCursor {
		style = style.Copy().Underline(true)
		if label == "─" {
			label = "·"
		}
	}
	return style.Render(label)
}

// VisibleFretsFor returns how many frets beyond the start fret fit in a
// terminal of the given width.
func VisibleFretsFor(width int) int {
	n := (width-margin)/styles.FretWidth - 1
	if n < MinVisibleFrets {
		return MinVisibleFrets
	}
	if n > MaxVisibleFrets {
		return MaxVisibleFrets
	}
	return n
}
