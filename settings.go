package rmxfret

import (
	"github.com/rapidmidiex/rmxfret/dictionary"
	"github.com/rapidmidiex/rmxfret/store"
	"github.com/rapidmidiex/rmxfret/theory"
)

// Cycling helpers for the settings keys. Each returns the value after
// current, wrapping around, or the first value when current is unknown.

func nextMode(current store.AppMode) store.AppMode {
	if current == store.ScaleMode {
		return store.ChordMode
	}
	return store.ScaleMode
}

func nextView(current store.ViewOption) store.ViewOption {
	if current == store.ViewFrets {
		return store.ViewNotes
	}
	return store.ViewFrets
}

func nextInstrument(current dictionary.Instrument) dictionary.Instrument {
	return cycle(dictionary.Instruments, current)
}

func nextStringAmount(counts []int, current int) int {
	if len(counts) == 0 {
		return current
	}
	return cycle(counts, current)
}

func nextTuning(tunings []dictionary.Tuning, current string) string {
	names := make([]string, 0, len(tunings))
	for _, t := range tunings {
		names = append(names, t.Name)
	}
	if len(names) == 0 {
		return current
	}
	return cycle(names, current)
}

func cycle[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// tuningNames lists the open strings from the lowest one up, the way
// tunings are usually spelled.
func tuningNames(st store.State) []string {
	names := theory.Strings(st.Tuning.Strings)
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}
