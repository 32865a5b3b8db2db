package internal

// ScrollState tracks the horizontal marquee position of a single overflowing
// line. Offset counts the cells scrolled off the left edge of the entry
// region; the controller owns at most one of these, for the selected row.
type ScrollState struct {
	Entry  string // entry text being scrolled
	Window int    // visible entry width in cells
	Offset int
	Active bool
}

// MaxOffset returns the offset at which the end of the entry is visible.
func (s *ScrollState) MaxOffset() int {
	max := Width(s.Entry) - s.Window
	if max < 0 {
		return 0
	}
	return max
}

// Advance moves the window one cell and reports whether the sweep reached
// the end of the entry.
func (s *ScrollState) Advance() bool {
	if s.Offset < s.MaxOffset() {
		s.Offset++
	}
	return s.Offset >= s.MaxOffset()
}

// Matches reports whether the state still belongs to the same entry text and
// window width. Used to decide if an in-progress sweep survives an update.
func (s *ScrollState) Matches(entry string, window int) bool {
	return s.Entry == entry && s.Window == window
}

// Reset clears the state.
func (s *ScrollState) Reset() {
	*s = ScrollState{}
}
