package rotini

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/rotini/pkg/rotini/constants"
)

// Parts is the resolved form of a slot: the text before the first divider,
// between the two dividers, and after the second.
type Parts struct {
	Prefix string
	Entry  string
	Suffix string
}

// Compose returns the display text of the triple, prefix + entry + suffix.
func (p Parts) Compose() string {
	return p.Prefix + p.Entry + p.Suffix
}

// Slot is one logical entry in a menu, resolving on demand to a
// (prefix, entry, suffix) triple. The two variants are Static and Dynamic;
// the interface is closed to keep the variant set known to the controller.
type Slot interface {
	// Resolve renders the slot. It fails with a *FormatError when the
	// (possibly template-substituted) source does not contain the divider
	// token exactly twice.
	Resolve() (Parts, error)

	slot()
}

// Static is a slot whose source text is fixed at construction.
type Static struct {
	Source string
}

// NewStatic creates a static slot from a divider-formatted source string.
func NewStatic(source string) Static {
	return Static{Source: source}
}

func (s Static) Resolve() (Parts, error) {
	return splitSource(s.Source)
}

func (Static) slot() {}

// Binding pairs a callable with the fixed arguments it is invoked with.
// The callable may have side effects; dynamic slots make no purity
// assumption, which is what makes the external-counter idiom work.
type Binding struct {
	Fn   func(args ...interface{}) interface{}
	Args []interface{}
}

// Dynamic is a slot whose template contains {name} placeholders bound to
// callables. Each resolution invokes every binding's callable exactly once
// and substitutes the string form of its result wherever {name} appears;
// placeholders are not limited to the entry region. Results are never cached
// across resolutions.
type Dynamic struct {
	Template string
	Bindings map[string]Binding
}

// NewDynamic creates a dynamic slot from a divider-formatted template and
// its placeholder bindings.
func NewDynamic(template string, bindings map[string]Binding) Dynamic {
	return Dynamic{Template: template, Bindings: bindings}
}

func (d Dynamic) Resolve() (Parts, error) {
	source := d.Template
	for name, binding := range d.Bindings {
		if binding.Fn == nil {
			continue
		}
		value := fmt.Sprint(binding.Fn(binding.Args...))
		source = strings.ReplaceAll(source, "{"+name+"}", value)
	}
	return splitSource(source)
}

func (Dynamic) slot() {}

func splitSource(source string) (Parts, error) {
	if n := strings.Count(source, constants.Divider); n != 2 {
		return Parts{}, &FormatError{Source: source, Count: n}
	}
	fields := strings.SplitN(source, constants.Divider, 3)
	return Parts{Prefix: fields[0], Entry: fields[1], Suffix: fields[2]}, nil
}

// rawSource returns the unresolved source text of a slot, used to keep a
// malformed slot visible on the device instead of blanking its row.
func rawSource(s Slot) string {
	switch v := s.(type) {
	case Static:
		return v.Source
	case Dynamic:
		return v.Template
	}
	return ""
}
