package rotini

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BrandonKowalski/rotini/pkg/rotini/constants"
)

// Entry is one filtered directory listing entry.
type Entry struct {
	Name string
	Dir  bool
}

// Filesystem is the directory access a FileMenu needs. The default
// implementation reads the OS filesystem; tests substitute a fake.
type Filesystem interface {
	// List returns the entries directly under path, in any order.
	List(path string) ([]Entry, error)
	// Parent returns the parent of path, or ok=false when path is a root.
	Parent(path string) (parent string, ok bool)
}

// OSFilesystem is the Filesystem backed by the operating system.
type OSFilesystem struct{}

func (OSFilesystem) List(path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		entries = append(entries, Entry{Name: de.Name(), Dir: de.IsDir()})
	}
	return entries, nil
}

func (OSFilesystem) Parent(path string) (string, bool) {
	parent := filepath.Dir(path)
	if parent == path {
		return "", false
	}
	return parent, true
}

// FileMenuConfig configures a FileMenu.
type FileMenuConfig struct {
	// Path is the default/starting directory.
	Path string
	// Extensions lists the file name suffixes shown (e.g. ".py"). Nil or
	// empty shows every file.
	Extensions []string
	// ShowFolders includes directories in the listing.
	ShowFolders bool
	// PrefixSlots are shown before all directory-derived slots. Pressing
	// one fires a plain press event with its index.
	PrefixSlots []Slot
	// HomeSlots are shown after PrefixSlots, but only while the menu is at
	// its default depth (depth 0).
	HomeSlots []Slot
	// DirAffix is a "prefix#+#suffix" pair wrapped around directory names
	// (and the ".." parent entry). Empty means no affix. Must contain the
	// divider exactly once when set.
	DirAffix string
	// FileAffixes maps a file name suffix (e.g. ".py", ".tar.gz") to a
	// "prefix#+#suffix" pair. The longest matching suffix wins; files with
	// no match render in the bare divider-only format.
	FileAffixes map[string]string
	// CustomFolderBehavior suppresses auto-navigation into directories;
	// selecting one fires an EventDirPress instead.
	CustomFolderBehavior bool
	// Filesystem overrides directory access. Nil means the OS filesystem.
	Filesystem Filesystem
}

// FileMenu is a menu whose slots are derived from a directory listing.
// The exposed slot sequence is always PrefixSlots ++ HomeSlots (depth 0
// only) ++ parent entry (depth > 0 only) ++ one static slot per filtered
// entry, rebuilt by RefreshSlots. Path-changing operations refresh
// automatically; after changing PrefixSlots or affixes, call RefreshSlots
// before trusting the rendered view.
type FileMenu struct {
	menuBase
	cfg FileMenuConfig
	fs  Filesystem

	current string
	depth   int

	entries   []Entry // last listing; selection dispatch resolves against it
	fixedLast int     // index of the last prefix/home slot, -1 when none
	parentIdx int     // index of the ".." slot, -1 when absent

	dirPrefix string
	dirSuffix string
}

// NewFileMenu creates a file menu rooted at cfg.Path. It validates the affix
// overrides and reads the starting directory once; a malformed affix or an
// unreadable path is a *ConfigurationError.
func NewFileMenu(cfg FileMenuConfig, callback Callback, options MenuOptions) (*FileMenu, error) {
	m := &FileMenu{
		menuBase: menuBase{callback: callback, options: options},
		cfg:      cfg,
		fs:       cfg.Filesystem,
		current:  cfg.Path,
	}
	if m.fs == nil {
		m.fs = OSFilesystem{}
	}

	if cfg.DirAffix != "" {
		pre, suf, err := splitAffix(cfg.DirAffix)
		if err != nil {
			return nil, &ConfigurationError{Field: "DirAffix", Reason: "want exactly one divider", Err: err}
		}
		m.dirPrefix, m.dirSuffix = pre, suf
	}
	for ext, affix := range cfg.FileAffixes {
		if _, _, err := splitAffix(affix); err != nil {
			return nil, &ConfigurationError{Field: "FileAffixes[" + ext + "]", Reason: "want exactly one divider", Err: err}
		}
	}

	if err := m.RefreshSlots(); err != nil {
		return nil, &ConfigurationError{Field: "Path", Reason: "unreadable starting path " + cfg.Path, Err: err}
	}
	return m, nil
}

func (m *FileMenu) Kind() MenuKind {
	return MenuKindFile
}

// CurrentPath returns the directory the menu is showing.
func (m *FileMenu) CurrentPath() string {
	return m.current
}

// DefaultPath returns the starting directory.
func (m *FileMenu) DefaultPath() string {
	return m.cfg.Path
}

// Depth returns the navigation depth relative to the default path. It is
// negative when SetPath moved to an ancestor of the default path.
func (m *FileMenu) Depth() int {
	return m.depth
}

// ListEntries reads the current directory and applies the extension and
// folder filters. Order is deterministic: directories sorted by name, then
// files sorted by name.
func (m *FileMenu) ListEntries() ([]Entry, error) {
	raw, err := m.fs.List(m.current)
	if err != nil {
		return nil, err
	}
	var dirs, files []Entry
	for _, e := range raw {
		if e.Dir {
			if m.cfg.ShowFolders {
				dirs = append(dirs, e)
			}
			continue
		}
		if m.matchesExtension(e.Name) {
			files = append(files, e)
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return append(dirs, files...), nil
}

// RefreshSlots rebuilds the exposed slot sequence from the current directory
// contents. Prefix slots are preserved; callers must invoke it after
// changing PrefixSlots, HomeSlots, or the affix tables.
func (m *FileMenu) RefreshSlots() error {
	entries, err := m.ListEntries()
	if err != nil {
		return err
	}

	slots := make([]Slot, 0, len(m.cfg.PrefixSlots)+len(m.cfg.HomeSlots)+len(entries)+1)
	slots = append(slots, m.cfg.PrefixSlots...)
	if m.depth == 0 {
		slots = append(slots, m.cfg.HomeSlots...)
	}
	m.fixedLast = len(slots) - 1

	m.parentIdx = -1
	if m.depth > 0 {
		m.parentIdx = len(slots)
		slots = append(slots, m.entrySlot(constants.ParentEntry, true))
	}

	for _, e := range entries {
		slots = append(slots, m.entrySlot(e.Name, e.Dir))
	}

	m.entries = entries
	m.slots = slots
	return nil
}

// EnterDirectory moves into a directory present in the last listing,
// incrementing the depth. Unknown or non-directory names fail with a
// *NotFoundError. The slot sequence refreshes immediately.
func (m *FileMenu) EnterDirectory(name string) error {
	for _, e := range m.entries {
		if e.Dir && e.Name == name {
			m.current = filepath.Join(m.current, name)
			m.depth++
			return m.RefreshSlots()
		}
	}
	return &NotFoundError{Name: name, Path: m.current}
}

// ReturnToParent pops one path segment and decrements the depth. At a
// filesystem root it fails with ErrAtRoot.
func (m *FileMenu) ReturnToParent() error {
	parent, ok := m.fs.Parent(m.current)
	if !ok {
		return ErrAtRoot
	}
	m.current = parent
	m.depth--
	return m.RefreshSlots()
}

// SetPath jumps to an arbitrary absolute path. Depth is recomputed as the
// segment-count difference from the default path and may go negative when
// path is an ancestor of it.
func (m *FileMenu) SetPath(path string) error {
	return m.SetPathDepth(path, segments(path)-segments(m.cfg.Path))
}

// SetPathDepth jumps to an arbitrary absolute path with an explicit depth.
func (m *FileMenu) SetPathDepth(path string, depth int) error {
	m.current = path
	m.depth = depth
	return m.RefreshSlots()
}

// ReturnToDefault resets to the default path and depth 0.
func (m *FileMenu) ReturnToDefault() error {
	return m.SetPathDepth(m.cfg.Path, 0)
}

func (m *FileMenu) matchesExtension(name string) bool {
	if len(m.cfg.Extensions) == 0 {
		return true
	}
	for _, ext := range m.cfg.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// entrySlot wraps a listing entry name in its affix pair.
func (m *FileMenu) entrySlot(name string, dir bool) Static {
	pre, suf := m.dirPrefix, m.dirSuffix
	if !dir {
		pre, suf = m.fileAffix(name)
	}
	return NewStatic(pre + constants.Divider + name + constants.Divider + suf)
}

// fileAffix returns the affix pair for a file name, preferring the longest
// matching suffix so ".tar.gz" beats ".gz".
func (m *FileMenu) fileAffix(name string) (string, string) {
	best := ""
	for ext := range m.cfg.FileAffixes {
		if strings.HasSuffix(name, ext) && len(ext) > len(best) {
			best = ext
		}
	}
	if best == "" {
		return "", ""
	}
	pre, suf, _ := splitAffix(m.cfg.FileAffixes[best])
	return pre, suf
}

// entryAt maps a controller slot index to the listing entry behind it.
func (m *FileMenu) entryAt(index int) (Entry, bool) {
	first := m.fixedLast + 1
	if m.parentIdx >= 0 {
		first++
	}
	i := index - first
	if i < 0 || i >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[i], true
}

func splitAffix(affix string) (prefix, suffix string, err error) {
	if n := strings.Count(affix, constants.Divider); n != 1 {
		return "", "", fmt.Errorf("affix %q contains %q %d times, want 1", affix, constants.Divider, n)
	}
	fields := strings.SplitN(affix, constants.Divider, 2)
	return fields[0], fields[1], nil
}

// segments counts the path segments of a cleaned absolute path; "/" has 0.
func segments(path string) int {
	clean := filepath.Clean(path)
	sep := string(filepath.Separator)
	if clean == sep || clean == "." {
		return 0
	}
	return strings.Count(strings.TrimPrefix(clean, sep), sep) + 1
}
