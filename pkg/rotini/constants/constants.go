// Package constants defines shared constants and default values used
// throughout the rotini menu engine.
package constants

// Divider is the fixed 3-character token separating the prefix, entry, and
// suffix regions of a slot source string. Every slot source must contain it
// exactly twice; this is a non-negotiable format contract.
const Divider = "#+#"

// Default geometry matches the common 2004 character module.
const (
	DefaultCols = 20
	DefaultRows = 4
)

// CursorGlyph is the character drawn in column 0 of the selected row.
const CursorGlyph = ">"

// ParentEntry is the directory listing entry that navigates one level up.
const ParentEntry = ".."
