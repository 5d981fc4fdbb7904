package column

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexdb/memcol/compress"
	"github.com/vexdb/memcol/vec"
)

func TestBuildStringColumn_SelectsDictWhenBounded(t *testing.T) {
	// The example from the selection contract: 5 rows with 4 distinct
	// values (including null) and a generous ceiling.
	values := []vec.Value{vec.Str("a"), vec.Str("b"), vec.Str("a"), vec.Null(), vec.Str("c")}
	uniques := CollectUnique(values, MaxUniqueStrings)

	col, err := BuildStringColumn(values, uniques)
	require.NoError(t, err)

	dict, ok := col.(*DictEncodedStrings)
	require.True(t, ok)
	require.LessOrEqual(t, len(dict.mapping), 4)

	decoded := col.DecodeAll()
	require.Equal(t, []string{"a", "b", "a", "", "c"}, decoded.Strings())
	require.True(t, decoded.NullAt(3))
	require.NotNil(t, col.Codec())
}

func TestBuildStringColumn_SelectsPackerWhenUnbounded(t *testing.T) {
	values := make([]vec.Value, 0, 50)
	for i := 0; i < 50; i++ {
		values = append(values, vec.Str(fmt.Sprintf("v%d", i)))
	}

	col, err := BuildStringColumn(values, CollectUnique(values, 10))
	require.NoError(t, err)

	_, ok := col.(*StringPacker)
	require.True(t, ok)
	require.Nil(t, col.Codec())

	decoded := col.DecodeAll()
	require.Equal(t, 50, decoded.Len())
	require.Equal(t, "v0", decoded.Strings()[0])
	require.Equal(t, "v49", decoded.Strings()[49])
}

func TestBuildStringColumn_BothEncodingsAgree(t *testing.T) {
	values := []vec.Value{vec.Str("x"), vec.Str("y"), vec.Str("x"), vec.Str("z")}

	dict, err := BuildStringColumn(values, CollectUnique(values, MaxUniqueStrings))
	require.NoError(t, err)

	packed, err := BuildStringColumn(values, Unbounded())
	require.NoError(t, err)

	require.Equal(t, dict.DecodeAll().Strings(), packed.DecodeAll().Strings())
	require.Equal(t, dict.DecodedType(), packed.DecodedType())
}

func TestBuildStringColumn_WithCompression(t *testing.T) {
	values := make([]vec.Value, 0, 200)
	for i := 0; i < 200; i++ {
		values = append(values, vec.Str(fmt.Sprintf("row-value-%d", i%7)))
	}

	col, err := BuildStringColumn(values, Unbounded(), WithCompression(compress.S2))
	require.NoError(t, err)

	p, ok := col.(*StringPacker)
	require.True(t, ok)
	require.True(t, p.Compressed())
	require.Equal(t, 200, col.DecodeAll().Len())
}

func TestBuildStringColumn_CompressionIgnoredForDict(t *testing.T) {
	values := strValues("a", "b", "a")

	col, err := BuildStringColumn(values, CollectUnique(values, MaxUniqueStrings), WithCompression(compress.Zstd))
	require.NoError(t, err)

	_, ok := col.(*DictEncodedStrings)
	require.True(t, ok)
}

func TestBuildStringColumn_InvalidOption(t *testing.T) {
	_, err := BuildStringColumn(strValues("a"), Unbounded(), WithCompression(compress.Kind(0xff)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid compression kind")
}

func TestBuildStringColumn_EmptyColumn(t *testing.T) {
	col, err := BuildStringColumn(nil, CollectUnique(nil, MaxUniqueStrings))
	require.NoError(t, err)
	require.Equal(t, 0, col.Len())
	require.Empty(t, col.DecodeAll().Strings())
}
