// Package display defines the character-grid sink a rotini controller
// renders to, plus adapters for real and simulated hardware. The controller
// never talks to display transport protocols; it only needs the three
// primitives below.
package display

// Geometry is the fixed (columns, rows) size of a character display.
type Geometry struct {
	Cols int
	Rows int
}

// Display is a fixed-size character grid.
type Display interface {
	// WriteLine writes text to a row. The controller always supplies a
	// string exactly Cols cells wide.
	WriteLine(row int, text string) error
	// SetCursor places the hardware cursor at (row, col).
	SetCursor(row, col int) error
	// Clear blanks the whole grid.
	Clear() error
}
