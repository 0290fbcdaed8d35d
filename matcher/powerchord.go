package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/rapidmidiex/rmxfret/theory"
)

// PowerChordDetector decides whether a chord instance is a power chord.
type PowerChordDetector interface {
	IsPowerChord(c ChordInstance) bool
}

// NameHeuristic only looks at the chord name: with spaces removed it must be
// exactly two characters, the second being "5" (ex: "A 5"). The notes are
// not inspected, so sharps such as "C# 5" are not recognised.
type NameHeuristic struct{}

func (NameHeuristic) IsPowerChord(c ChordInstance) bool {
	name := strings.ReplaceAll(c.Name, " ", "")
	if utf8.RuneCountInString(name) != 2 {
		return false
	}
	return strings.HasSuffix(name, "5")
}

// IntervalCheck inspects the notes instead: a root and its perfect fifth,
// in any voicing, and nothing else.
type IntervalCheck struct{}

func (IntervalCheck) IsPowerChord(c ChordInstance) bool {
	if len(c.Notes) == 0 {
		return false
	}
	root := c.Root
	if root == "" {
		root = c.Notes[0]
	}
	fifth, err := theory.Transpose(root, 7)
	if err != nil {
		return false
	}
	hasFifth := false
	for _, n := range c.Notes {
		switch n {
		case root:
		case fifth:
			hasFifth = true
		default:
			return false
		}
	}
	return hasFifth
}
