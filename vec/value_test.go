package vec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexdb/memcol/types"
)

func TestValue_Str(t *testing.T) {
	v := Str("hello")
	require.Equal(t, types.String, v.Kind())
	require.False(t, v.IsNull())

	s, ok := v.StringVal()
	require.True(t, ok)
	require.Equal(t, "hello", s)
	require.Equal(t, "hello", v.String())
}

func TestValue_Null(t *testing.T) {
	v := Null()
	require.Equal(t, types.Null, v.Kind())
	require.True(t, v.IsNull())

	s, ok := v.StringVal()
	require.False(t, ok)
	require.Empty(t, s)
	require.Equal(t, "<null>", v.String())
}

func TestValue_EmptyStringIsNotNull(t *testing.T) {
	v := Str("")
	require.False(t, v.IsNull())

	s, ok := v.StringVal()
	require.True(t, ok)
	require.Empty(t, s)
}

func TestValue_Comparable(t *testing.T) {
	// Values must be usable as map keys for the dictionary reverse lookup.
	m := map[Value]int{
		Str("a"): 0,
		Str("b"): 1,
		Null():   2,
	}
	require.Equal(t, 0, m[Str("a")])
	require.Equal(t, 2, m[Null()])

	// The empty string and null must hash to different keys.
	_, exists := m[Str("")]
	require.False(t, exists)
}
