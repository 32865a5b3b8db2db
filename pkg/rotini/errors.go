package rotini

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/rotini/pkg/rotini/constants"
)

// ErrAtRoot indicates a return-to-parent request while the current path is a
// filesystem root with no parent.
var ErrAtRoot = errors.New("rotini: already at filesystem root")

// FormatError reports a slot source that does not contain the divider token
// exactly twice. It is an authoring error and is never swallowed: the slot
// fails its own resolution and the controller surfaces it to the caller.
type FormatError struct {
	Source string // the (possibly template-substituted) slot source
	Count  int    // number of divider occurrences found
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("rotini: slot source %q contains %q %d times, want 2", e.Source, constants.Divider, e.Count)
}

// NotFoundError reports a directory navigation target that is not present in
// the file menu's last listing.
type NotFoundError struct {
	Name string // requested directory name
	Path string // directory the lookup ran against
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("rotini: no directory %q under %s", e.Name, e.Path)
}

// ConfigurationError reports an invalid menu or controller configuration,
// such as a malformed affix override or an unreadable starting path.
type ConfigurationError struct {
	Field  string // configuration field at fault (e.g. "DirAffix")
	Reason string
	Err    error // underlying error, if any
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rotini: config %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("rotini: config %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsFormat checks if an error is a slot format error.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsNotFound checks if an error is a directory lookup failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsAtRoot checks if an error indicates navigation past the filesystem root.
func IsAtRoot(err error) bool {
	return errors.Is(err, ErrAtRoot)
}
