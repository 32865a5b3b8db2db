// Package rotini is a menu engine for character LCDs driven by a rotary
// encoder with a push button. It renders a navigable list of slots onto a
// fixed-geometry character grid and maps rotate-left, rotate-right, and
// press events into navigation state transitions and value callbacks.
//
// The package owns no hardware: displays and input sources are small
// interfaces (see the display and input subpackages for an HD44780 adapter
// and an evdev reader), and everything in the core is synchronous and
// single-threaded.
package rotini

import "fmt"

// MenuKind tags the menu variants so callers and callbacks can distinguish
// the top-level menu from pushed submenus and filesystem menus. The core
// itself keeps no menu stack; that is caller territory (see the router
// package).
type MenuKind int

const (
	MenuKindMain MenuKind = iota
	MenuKindSub
	MenuKindFile
)

func (k MenuKind) String() string {
	switch k {
	case MenuKindMain:
		return "main"
	case MenuKindSub:
		return "sub"
	case MenuKindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Direction is the rotation direction reported to direction callbacks.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// String returns the wire form used by callbacks: "L" or "R".
func (d Direction) String() string {
	if d == DirectionRight {
		return "R"
	}
	return "L"
}

// EventKind identifies a value-callback dispatch.
type EventKind int

const (
	EventSetup      EventKind = iota // menu is about to become active; no value
	EventAfterSetup                  // menu became active; no value
	EventPress                       // button press; carries Index
	EventDirPress                    // directory selected; carries Path
	EventFilePress                   // file selected; carries Path
	EventDirection                   // rotation; carries Direction
)

func (k EventKind) String() string {
	switch k {
	case EventSetup:
		return "setup"
	case EventAfterSetup:
		return "after_setup"
	case EventPress:
		return "press"
	case EventDirPress:
		return "dir_press"
	case EventFilePress:
		return "file_press"
	case EventDirection:
		return "direction"
	default:
		return "unknown"
	}
}

// Event describes a single value-callback dispatch. Kind determines which
// payload field is meaningful; Menu is always the menu that was active when
// the event fired.
type Event struct {
	Kind      EventKind
	Index     int       // EventPress
	Path      string    // EventDirPress, EventFilePress
	Direction Direction // EventDirection
	Menu      Menu
}

// Callback receives navigation and selection events from a Controller.
// Callbacks are invoked synchronously on the event path and are expected to
// return promptly; a slow callback stalls the whole dispatch pipeline.
type Callback func(Event)

// MenuOptions are the per-menu behavior flags shared by all variants.
type MenuOptions struct {
	// SetupCallback fires an EventSetup before the menu becomes active,
	// letting the menu initialize external state lazily on first display.
	SetupCallback bool
	// AfterSetupCallback fires an EventAfterSetup after the menu became
	// active and its first render completed.
	AfterSetupCallback bool
	// CustomCursor disables the controller's own cursor glyph. Navigation
	// state still updates and direction events still fire; presentation of
	// the cursor is then owned by the callback.
	CustomCursor bool
}

// Menu is the contract shared by all menu variants. The interface is closed:
// the variants are MainMenu, SubMenu, and FileMenu.
type Menu interface {
	// Slots returns the current display-order slot sequence.
	Slots() []Slot
	// ReplaceSlot swaps the slot at index wholesale. It does not trigger a
	// render; follow with Controller.UpdateCurrentSlot or a full redraw.
	ReplaceSlot(index int, slot Slot) error
	// Kind tags the variant.
	Kind() MenuKind
	// Callback returns the menu's value callback, which may be nil.
	Callback() Callback
	// Options returns the menu's behavior flags.
	Options() MenuOptions

	base() *menuBase
}

type menuBase struct {
	slots    []Slot
	callback Callback
	options  MenuOptions
}

func (m *menuBase) Slots() []Slot {
	return m.slots
}

func (m *menuBase) ReplaceSlot(index int, slot Slot) error {
	if index < 0 || index >= len(m.slots) {
		return fmt.Errorf("rotini: replace slot %d out of range [0,%d)", index, len(m.slots))
	}
	m.slots[index] = slot
	return nil
}

func (m *menuBase) Callback() Callback {
	return m.callback
}

func (m *menuBase) Options() MenuOptions {
	return m.options
}

func (m *menuBase) base() *menuBase {
	return m
}

// MainMenu is the top-level menu a controller falls back to, e.g. on idle
// timeout. Structurally identical to SubMenu; the tag exists for
// caller-owned navigation logic.
type MainMenu struct {
	menuBase
}

// NewMainMenu creates the top-level menu.
func NewMainMenu(slots []Slot, callback Callback, options MenuOptions) *MainMenu {
	return &MainMenu{menuBase{slots: slots, callback: callback, options: options}}
}

func (m *MainMenu) Kind() MenuKind {
	return MenuKindMain
}

// SubMenu is a pushed menu below the top level.
type SubMenu struct {
	menuBase
}

// NewSubMenu creates a nested menu.
func NewSubMenu(slots []Slot, callback Callback, options MenuOptions) *SubMenu {
	return &SubMenu{menuBase{slots: slots, callback: callback, options: options}}
}

func (m *SubMenu) Kind() MenuKind {
	return MenuKindSub
}
