package display

import (
	"fmt"
	"strings"
)

// Memory is an in-memory Display for tests and simulators. It records the
// grid contents and the last cursor placement.
type Memory struct {
	geom      Geometry
	rows      [][]rune
	cursorRow int
	cursorCol int
	cursorSet bool
}

// NewMemory creates a blank in-memory display.
func NewMemory(geom Geometry) *Memory {
	m := &Memory{geom: geom}
	m.blank()
	return m
}

func (m *Memory) blank() {
	m.rows = make([][]rune, m.geom.Rows)
	for r := range m.rows {
		m.rows[r] = []rune(strings.Repeat(" ", m.geom.Cols))
	}
}

func (m *Memory) WriteLine(row int, text string) error {
	if row < 0 || row >= m.geom.Rows {
		return fmt.Errorf("display: row %d out of range [0,%d)", row, m.geom.Rows)
	}
	cells := []rune(text)
	for c := 0; c < m.geom.Cols; c++ {
		if c < len(cells) {
			m.rows[row][c] = cells[c]
		} else {
			m.rows[row][c] = ' '
		}
	}
	return nil
}

func (m *Memory) SetCursor(row, col int) error {
	if row < 0 || row >= m.geom.Rows || col < 0 || col >= m.geom.Cols {
		return fmt.Errorf("display: cursor (%d,%d) out of range %dx%d", row, col, m.geom.Rows, m.geom.Cols)
	}
	m.cursorRow, m.cursorCol = row, col
	m.cursorSet = true
	return nil
}

func (m *Memory) Clear() error {
	m.blank()
	m.cursorSet = false
	return nil
}

// Lines returns the grid contents row by row, each exactly Cols wide.
func (m *Memory) Lines() []string {
	lines := make([]string, m.geom.Rows)
	for r, row := range m.rows {
		lines[r] = string(row)
	}
	return lines
}

// Line returns one row of the grid.
func (m *Memory) Line(row int) string {
	if row < 0 || row >= m.geom.Rows {
		return ""
	}
	return string(m.rows[row])
}

// Cursor returns the last cursor placement; ok is false when no placement
// happened since the last Clear.
func (m *Memory) Cursor() (row, col int, ok bool) {
	return m.cursorRow, m.cursorCol, m.cursorSet
}
