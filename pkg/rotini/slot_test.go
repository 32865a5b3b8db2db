package rotini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolve(t *testing.T) {
	parts, err := NewStatic("<#+#Brightness#+#>").Resolve()
	require.NoError(t, err)
	assert.Equal(t, "<", parts.Prefix)
	assert.Equal(t, "Brightness", parts.Entry)
	assert.Equal(t, ">", parts.Suffix)
	assert.Equal(t, "<Brightness>", parts.Compose())
}

func TestStaticResolveEmptyAffixes(t *testing.T) {
	parts, err := NewStatic("#+#Settings#+#").Resolve()
	require.NoError(t, err)
	assert.Equal(t, Parts{Entry: "Settings"}, parts)
}

func TestStaticResolveFormatError(t *testing.T) {
	for _, source := range []string{"", "no divider", "#+#only one", "a#+#b#+#c#+#d"} {
		_, err := NewStatic(source).Resolve()
		require.Error(t, err, "source %q", source)
		assert.True(t, IsFormat(err))

		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, source, fe.Source)
	}
}

func TestDynamicResolveSubstitutesBindings(t *testing.T) {
	slot := NewDynamic("{arrow}#+#Volume: {v}#+#{arrow}", map[string]Binding{
		"arrow": {Fn: func(args ...interface{}) interface{} { return "*" }},
		"v": {
			Fn:   func(args ...interface{}) interface{} { return args[0] },
			Args: []interface{}{42},
		},
	})
	parts, err := slot.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "*", parts.Prefix)
	assert.Equal(t, "Volume: 42", parts.Entry)
	assert.Equal(t, "*", parts.Suffix)
}

func TestDynamicResolveInvokesBindingEachTime(t *testing.T) {
	calls := 0
	slot := NewDynamic("#+#n={n}#+#", map[string]Binding{
		"n": {Fn: func(args ...interface{}) interface{} {
			calls++
			return calls
		}},
	})

	parts, err := slot.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "n=1", parts.Entry)

	parts, err = slot.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "n=2", parts.Entry)
	assert.Equal(t, 2, calls)
}

func TestDynamicResolveFormatErrorAfterSubstitution(t *testing.T) {
	// The binding result itself can break the divider contract.
	slot := NewDynamic("#+#{v}#+#", map[string]Binding{
		"v": {Fn: func(args ...interface{}) interface{} { return "#+#" }},
	})
	_, err := slot.Resolve()
	require.Error(t, err)
	assert.True(t, IsFormat(err))
}

func TestDynamicResolveUnboundPlaceholderKept(t *testing.T) {
	slot := NewDynamic("#+#{missing}#+#", nil)
	parts, err := slot.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "{missing}", parts.Entry)
}
