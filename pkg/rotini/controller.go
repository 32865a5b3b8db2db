package rotini

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/rotini/pkg/rotini/constants"
	"github.com/BrandonKowalski/rotini/pkg/rotini/display"
	"github.com/BrandonKowalski/rotini/pkg/rotini/input"
	"github.com/BrandonKowalski/rotini/pkg/rotini/internal"
)

// Controller owns the active menu, the display geometry, and all transient
// navigation state: the selected index into the slot sequence, the vertical
// shift of the visible window, and the display row carrying the cursor.
// It converts input events into state transitions, dispatches value
// callbacks to the active menu, and writes rendered lines to the display.
//
// The controller is strictly single-threaded: each event is processed to
// completion before the next, and overlapping deliveries are dropped.
type Controller struct {
	display display.Display
	geom    display.Geometry
	logger  *slog.Logger

	main    Menu
	current Menu

	index     int
	shift     int
	cursorRow int

	busy   atomic.Bool
	scroll internal.ScrollState
	lines  []string // composed line cache for the current slot sequence
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger overrides the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController creates a controller over the given display and geometry and
// activates the main menu, firing its setup callbacks and rendering the
// first view.
func NewController(d display.Display, geom display.Geometry, main Menu, opts ...Option) (*Controller, error) {
	if d == nil {
		return nil, &ConfigurationError{Field: "Display", Reason: "nil display sink"}
	}
	if geom.Cols < 2 || geom.Rows < 1 {
		return nil, &ConfigurationError{Field: "Geometry", Reason: fmt.Sprintf("unusable geometry %dx%d", geom.Cols, geom.Rows)}
	}
	if main == nil {
		return nil, &ConfigurationError{Field: "Menu", Reason: "nil main menu"}
	}

	c := &Controller{
		display: d,
		geom:    geom,
		logger:  internal.Logger(),
		main:    main,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Set(main); err != nil {
		return nil, err
	}
	return c, nil
}

// Geometry returns the display geometry.
func (c *Controller) Geometry() display.Geometry {
	return c.geom
}

// CurrentMenu returns the active menu.
func (c *Controller) CurrentMenu() Menu {
	return c.current
}

// Index returns the selected slot index.
func (c *Controller) Index() int {
	return c.index
}

// Shift returns the index of the first visible slot.
func (c *Controller) Shift() int {
	return c.shift
}

// CursorRow returns the display row carrying the cursor.
func (c *Controller) CursorRow() int {
	return c.cursorRow
}

func (c *Controller) slotCount() int {
	return len(c.current.Slots())
}

// MaxIndex returns the highest valid index, or -1 when the menu is empty
// and no navigation is possible.
func (c *Controller) MaxIndex() int {
	return c.slotCount() - 1
}

// MaxShift returns max(0, N - rows).
func (c *Controller) MaxShift() int {
	if s := c.slotCount() - c.geom.Rows; s > 0 {
		return s
	}
	return 0
}

// MaxCursorRow returns min(rows, N) - 1, or -1 when the menu is empty.
func (c *Controller) MaxCursorRow() int {
	n := c.slotCount()
	if n > c.geom.Rows {
		n = c.geom.Rows
	}
	return n - 1
}

// Overflows reports whether the composed text of the slot at index is wider
// than the row it renders into (the display width minus the cursor column).
func (c *Controller) Overflows(index int) bool {
	slots := c.current.Slots()
	if index < 0 || index >= len(slots) {
		return false
	}
	parts, err := slots[index].Resolve()
	if err != nil {
		return false
	}
	return internal.Width(parts.Compose()) > c.geom.Cols-1
}

// Handle processes one input event to completion: state update, callback
// dispatch, and any display writes. Overlapping deliveries are dropped;
// serializing concurrent input signals is the caller's responsibility.
func (c *Controller) Handle(ev input.Event) error {
	if !c.busy.CompareAndSwap(false, true) {
		return nil
	}
	defer c.busy.Store(false)

	switch ev {
	case input.RotateLeft:
		return c.rotate(DirectionLeft)
	case input.RotateRight:
		return c.rotate(DirectionRight)
	case input.Press:
		return c.press()
	default:
		return fmt.Errorf("rotini: unknown input event %d", ev)
	}
}

func (c *Controller) rotate(dir Direction) error {
	if c.slotCount() == 0 {
		// No navigation possible; custom-cursor menus may still care.
		c.dispatch(Event{Kind: EventDirection, Direction: dir})
		return nil
	}

	prevIndex, prevShift, prevCursor := c.index, c.shift, c.cursorRow
	moved := false

	switch dir {
	case DirectionRight:
		if c.index < c.MaxIndex() {
			c.index++
			moved = true
			if c.index > c.shift+c.geom.Rows-1 {
				c.shift++
			} else if c.cursorRow < c.MaxCursorRow() {
				c.cursorRow++
			}
		}
	case DirectionLeft:
		if c.index > 0 {
			c.index--
			moved = true
			if c.index < c.shift {
				c.shift--
			} else if c.cursorRow > 0 {
				c.cursorRow--
			}
		}
	}

	var renderErr error
	if moved {
		if c.scroll.Active {
			// Restore the de-selected row to its unscrolled form.
			if parts, err := c.current.Slots()[prevIndex].Resolve(); err == nil {
				c.setLine(prevIndex, c.composeLine(parts, 0))
			}
		}
		c.scroll.Reset()
		switch {
		case c.shift != prevShift:
			renderErr = c.redraw()
		case c.cursorRow != prevCursor && !c.current.Options().CustomCursor:
			if err := c.writeRow(prevCursor); err != nil {
				return err
			}
			if err := c.writeRow(c.cursorRow); err != nil {
				return err
			}
			if err := c.placeCursor(); err != nil {
				return err
			}
		}
	}

	c.dispatch(Event{Kind: EventDirection, Direction: dir})
	return renderErr
}

func (c *Controller) press() error {
	if c.slotCount() == 0 {
		return nil
	}
	if fm, ok := c.current.(*FileMenu); ok {
		return c.pressFileMenu(fm)
	}
	c.dispatch(Event{Kind: EventPress, Index: c.index})
	return nil
}

func (c *Controller) pressFileMenu(m *FileMenu) error {
	switch {
	case c.index <= m.fixedLast:
		c.dispatch(Event{Kind: EventPress, Index: c.index})

	case m.parentIdx >= 0 && c.index == m.parentIdx:
		if err := m.ReturnToParent(); err != nil {
			return err
		}
		return c.resetState()

	default:
		entry, ok := m.entryAt(c.index)
		if !ok {
			c.dispatch(Event{Kind: EventPress, Index: c.index})
			return nil
		}
		full := filepath.Join(m.CurrentPath(), entry.Name)
		if entry.Dir {
			if m.cfg.CustomFolderBehavior {
				c.dispatch(Event{Kind: EventDirPress, Path: full})
				return nil
			}
			// Auto-navigation suppresses the generic press event.
			if err := m.EnterDirectory(entry.Name); err != nil {
				return err
			}
			return c.resetState()
		}
		c.dispatch(Event{Kind: EventPress, Index: c.index})
		c.dispatch(Event{Kind: EventFilePress, Path: full})
	}
	return nil
}

// Set makes menu the active one, firing its setup callback first and its
// after-setup callback once the switch completed. A nil menu selects the
// main menu. Navigation state resets to (0, 0, 0).
func (c *Controller) Set(menu Menu) error {
	if menu == nil {
		menu = c.main
	}
	c.current = menu
	if menu.Options().SetupCallback {
		c.dispatch(Event{Kind: EventSetup})
	}
	if fm, ok := menu.(*FileMenu); ok {
		if err := fm.RefreshSlots(); err != nil {
			return err
		}
	}
	if err := c.resetState(); err != nil {
		return err
	}
	if menu.Options().AfterSetupCallback {
		c.dispatch(Event{Kind: EventAfterSetup})
	}
	c.logger.Debug("menu set", "kind", menu.Kind().String(), "slots", len(menu.Slots()))
	return nil
}

// ResetMenu acknowledges an out-of-band structural change to the active
// menu's slot sequence: slots are refreshed for file menus, navigation state
// is clamped back into range (keeping the index when still valid, otherwise
// clamping to the new maximum), and the display is redrawn.
func (c *Controller) ResetMenu() error {
	if fm, ok := c.current.(*FileMenu); ok {
		if err := fm.RefreshSlots(); err != nil {
			return err
		}
	}
	c.clampState()
	c.scroll.Reset()
	if err := c.display.Clear(); err != nil {
		return fmt.Errorf("rotini: clear display: %w", err)
	}
	return c.Render()
}

// Restore positions the selection at index with the given shift, clamps both
// into range, and redraws. Used for scroll restoration when returning to a
// previously shown menu.
func (c *Controller) Restore(index, shift int) error {
	c.index, c.shift = index, shift
	c.clampState()
	c.scroll.Reset()
	if err := c.display.Clear(); err != nil {
		return fmt.Errorf("rotini: clear display: %w", err)
	}
	return c.Render()
}

// ResetCursor realigns the cursor to the top visible row, decreasing the
// index by the rows the cursor moved, without losing the vertical scroll
// position.
func (c *Controller) ResetCursor() error {
	prev := c.cursorRow
	if prev == 0 {
		return nil
	}
	c.index -= prev
	c.cursorRow = 0
	c.scroll.Reset()
	if c.current.Options().CustomCursor {
		return nil
	}
	if err := c.writeRow(prev); err != nil {
		return err
	}
	if err := c.writeRow(0); err != nil {
		return err
	}
	return c.placeCursor()
}

// UpdateOption configures UpdateCurrentSlot.
type UpdateOption func(*updateOptions)

type updateOptions struct {
	keepScroll bool
}

// KeepScroll preserves an in-progress marquee offset across the update when
// the entry text and the affix widths are unchanged.
func KeepScroll() UpdateOption {
	return func(o *updateOptions) {
		o.keepScroll = true
	}
}

// UpdateCurrentSlot re-resolves the slot under the cursor and rewrites only
// its row, avoiding a full render pass after ReplaceSlot.
func (c *Controller) UpdateCurrentSlot(opts ...UpdateOption) error {
	var o updateOptions
	for _, opt := range opts {
		opt(&o)
	}

	slots := c.current.Slots()
	if c.index < 0 || c.index >= len(slots) {
		return nil
	}

	parts, err := slots[c.index].Resolve()
	if err != nil {
		c.setLine(c.index, internal.Pad(rawSource(slots[c.index]), c.geom.Cols-1))
		werr := c.writeRow(c.cursorRow)
		return errors.Join(fmt.Errorf("slot %d: %w", c.index, err), werr)
	}

	offset := 0
	window := c.entryWindow(parts)
	if o.keepScroll && c.scroll.Active && c.scroll.Matches(parts.Entry, window) {
		offset = c.scroll.Offset
	} else {
		c.scroll.Reset()
	}

	c.setLine(c.index, c.composeLine(parts, offset))
	return c.writeRow(c.cursorRow)
}

// AdvanceScroll shifts the selected overflowing entry one cell to the left
// and rewrites its row. The core owns no timers; an external clock drives
// the marquee by calling this periodically. It reports done=true when the
// sweep reached the end of the entry or no scrolling applies. Truncation is
// the baseline; callers that never call this simply get truncated lines.
func (c *Controller) AdvanceScroll() (done bool, err error) {
	if c.slotCount() == 0 || c.current.Options().CustomCursor {
		return true, nil
	}
	if !c.Overflows(c.index) {
		return true, nil
	}

	parts, err := c.current.Slots()[c.index].Resolve()
	if err != nil {
		return true, err
	}
	window := c.entryWindow(parts)
	if window <= 0 {
		return true, nil
	}

	if !c.scroll.Active || !c.scroll.Matches(parts.Entry, window) {
		// First tick shows the start of the entry.
		c.scroll = internal.ScrollState{Entry: parts.Entry, Window: window, Active: true}
	} else {
		c.scroll.Advance()
	}

	c.setLine(c.index, c.composeLine(parts, c.scroll.Offset))
	if err := c.writeRow(c.cursorRow); err != nil {
		return false, err
	}
	return c.scroll.Offset >= c.scroll.MaxOffset(), nil
}

// Render composes every slot and writes the visible rows plus the cursor.
// A slot whose source fails the divider contract renders its raw source and
// contributes to the returned error; the rest of the pass still completes.
func (c *Controller) Render() error {
	lines, composeErr := c.composeLines()
	c.lines = lines
	for r := 0; r < c.geom.Rows; r++ {
		if err := c.writeRow(r); err != nil {
			return err
		}
	}
	if err := c.placeCursor(); err != nil {
		return err
	}
	if composeErr != nil {
		c.logger.Error("render completed with slot errors", "error", composeErr)
	}
	return composeErr
}

// resetState zeroes the navigation state and redraws from a cleared display.
func (c *Controller) resetState() error {
	c.index, c.shift, c.cursorRow = 0, 0, 0
	c.scroll.Reset()
	if err := c.display.Clear(); err != nil {
		return fmt.Errorf("rotini: clear display: %w", err)
	}
	return c.Render()
}

// clampState forces (index, shift, cursorRow) back into valid range for the
// current slot count, restoring the index = shift + cursorRow invariant.
func (c *Controller) clampState() {
	n := c.slotCount()
	if n == 0 {
		c.index, c.shift, c.cursorRow = 0, 0, 0
		return
	}
	if c.index > n-1 {
		c.index = n - 1
	}
	if c.index < 0 {
		c.index = 0
	}
	if c.shift > c.MaxShift() {
		c.shift = c.MaxShift()
	}
	if c.shift < 0 {
		c.shift = 0
	}
	if c.index < c.shift {
		c.shift = c.index
	}
	if c.index > c.shift+c.geom.Rows-1 {
		c.shift = c.index - c.geom.Rows + 1
	}
	c.cursorRow = c.index - c.shift
}

// redraw recomposes all lines and rewrites the whole pane.
func (c *Controller) redraw() error {
	lines, composeErr := c.composeLines()
	c.lines = lines
	for r := 0; r < c.geom.Rows; r++ {
		if err := c.writeRow(r); err != nil {
			return err
		}
	}
	if err := c.placeCursor(); err != nil {
		return err
	}
	return composeErr
}

func (c *Controller) composeLines() ([]string, error) {
	slots := c.current.Slots()
	lines := make([]string, len(slots))
	var errs []error
	for i, s := range slots {
		parts, err := s.Resolve()
		if err != nil {
			errs = append(errs, fmt.Errorf("slot %d: %w", i, err))
			// Raw source keeps the authoring mistake visible on the device.
			lines[i] = internal.Pad(rawSource(s), c.geom.Cols-1)
			continue
		}
		lines[i] = c.composeLine(parts, 0)
	}
	return lines, errors.Join(errs...)
}

// entryWindow is the cell width available to the entry region: the display
// width minus the cursor column and the affixes.
func (c *Controller) entryWindow(p Parts) int {
	return c.geom.Cols - 1 - internal.Width(p.Prefix) - internal.Width(p.Suffix)
}

// composeLine lays prefix, entry, and suffix into the cells right of the
// cursor column. offset shifts an overflowing entry left for the marquee.
func (c *Controller) composeLine(p Parts, offset int) string {
	width := c.geom.Cols - 1
	window := c.entryWindow(p)
	if window < 0 {
		// Affixes alone exceed the row; hard truncate the whole line.
		return internal.Pad(p.Compose(), width)
	}
	return p.Prefix + internal.Window(p.Entry, offset, window) + p.Suffix
}

func (c *Controller) setLine(index int, line string) {
	for index >= len(c.lines) {
		c.lines = append(c.lines, "")
	}
	c.lines[index] = line
}

// writeRow writes one display row from the line cache, prepending the cursor
// column: the glyph on the cursor row, a space elsewhere, and always a space
// in custom-cursor mode.
func (c *Controller) writeRow(row int) error {
	if row < 0 || row >= c.geom.Rows {
		return nil
	}
	idx := c.shift + row
	var text string
	if idx >= 0 && idx < len(c.lines) {
		glyph := " "
		if row == c.cursorRow && !c.current.Options().CustomCursor && c.slotCount() > 0 {
			glyph = constants.CursorGlyph
		}
		text = glyph + c.lines[idx]
	} else {
		text = strings.Repeat(" ", c.geom.Cols)
	}
	if err := c.display.WriteLine(row, text); err != nil {
		return fmt.Errorf("rotini: write row %d: %w", row, err)
	}
	return nil
}

// placeCursor parks the hardware cursor on the selected row. An empty menu
// has no cursor; custom-cursor menus own their own presentation.
func (c *Controller) placeCursor() error {
	if c.slotCount() == 0 || c.current.Options().CustomCursor {
		return nil
	}
	if err := c.display.SetCursor(c.cursorRow, 0); err != nil {
		return fmt.Errorf("rotini: set cursor: %w", err)
	}
	return nil
}

func (c *Controller) dispatch(ev Event) {
	cb := c.current.Callback()
	if cb == nil {
		return
	}
	ev.Menu = c.current
	c.logger.Debug("dispatch", "kind", ev.Kind.String(), "index", ev.Index, "path", ev.Path)
	cb(ev)
}
