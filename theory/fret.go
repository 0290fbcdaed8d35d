package theory

const (
	DefaultStartFret    = 0
	DefaultVisibleFrets = 4

	// MaxFret is the highest fret a range may reach.
	MaxFret = 36
)

// FretRange returns visibleFrets+1 consecutive frets starting at startFret.
// Both ends are inclusive: FretRange(0, 4) is [0 1 2 3 4]. The last fret
// may not exceed MaxFret.
func FretRange(startFret, visibleFrets int) ([]int, error) {
	if visibleFrets < 0 || visibleFrets > MaxFret {
		return nil, &InvalidRangeError{Field: "visibleFrets", Value: visibleFrets}
	}
	if startFret < 0 || startFret > MaxFret-visibleFrets {
		return nil, &InvalidRangeError{Field: "startFret", Value: startFret}
	}
	frets := make([]int, visibleFrets+1)
	for i := range frets {
		frets[i] = startFret + i
	}
	return frets, nil
}
