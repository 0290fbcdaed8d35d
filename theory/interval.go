package theory

// Normalize reduces i into [0, 11].
func Normalize(i Interval) Interval {
	return Interval(wrap(int(i)))
}

// NormalizeAll returns a normalized copy of intervals.
func NormalizeAll(intervals []Interval) []Interval {
	out := make([]Interval, len(intervals))
	for i, v := range intervals {
		out[i] = Normalize(v)
	}
	return out
}

// IntervalsToNotes maps every interval onto the octave relative to root.
// The order of intervals is kept; nothing is sorted or deduplicated.
func IntervalsToNotes(intervals []Interval, root Note) ([]Note, error) {
	rootIndex, err := IndexOf(root)
	if err != nil {
		return nil, err
	}
	notes := make([]Note, len(intervals))
	for i, interval := range intervals {
		notes[i] = Octave[wrap(rootIndex+int(interval))]
	}
	return notes, nil
}

// NotesToIntervals returns the distance of every note from the first one,
// which is treated as the root. The first interval is always 0.
func NotesToIntervals(notes []Note) ([]Interval, error) {
	intervals := make([]Interval, 0, len(notes))
	if len(notes) == 0 {
		return intervals, nil
	}
	rootIndex, err := IndexOf(notes[0])
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		noteIndex, err := IndexOf(n)
		if err != nil {
			return nil, err
		}
		if noteIndex < rootIndex {
			noteIndex += NotesInOctave
		}
		intervals = append(intervals, Interval(noteIndex-rootIndex))
	}
	return intervals, nil
}

// Ints converts intervals to plain ints, mostly for JSON and display.
func Ints(intervals []Interval) []int {
	out := make([]int, len(intervals))
	for i, v := range intervals {
		out[i] = int(v)
	}
	return out
}

// FromInts is the inverse of Ints.
func FromInts(ints []int) []Interval {
	out := make([]Interval, len(ints))
	for i, v := range ints {
		out[i] = Interval(v)
	}
	return out
}
