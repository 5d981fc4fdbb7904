package column

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vexdb/memcol/bitmap"
	"github.com/vexdb/memcol/compress"
	"github.com/vexdb/memcol/types"
	"github.com/vexdb/memcol/vec"
)

func strValues(ss ...string) []vec.Value {
	values := make([]vec.Value, len(ss))
	for i, s := range ss {
		values[i] = vec.Str(s)
	}

	return values
}

func TestStringPacker_RoundTrip(t *testing.T) {
	values := strValues("alpha", "beta", "gamma", "alpha", "")

	p, err := newStringPacker(values, nil)
	require.NoError(t, err)
	require.Equal(t, 5, p.Len())
	require.Equal(t, types.String, p.DecodedType())

	decoded := p.DecodeAll()
	require.Equal(t, types.String, decoded.Type())
	require.Equal(t, []string{"alpha", "beta", "gamma", "alpha", ""}, decoded.Strings())
	require.Nil(t, decoded.Nulls())
}

func TestStringPacker_NullCollapsesToEmptyString(t *testing.T) {
	// The packer stores nulls as empty segments: after a round trip a null
	// and an empty string are indistinguishable. This is characterized
	// behavior of the representation.
	values := []vec.Value{vec.Str("a"), vec.Null(), vec.Str(""), vec.Null()}

	p, err := newStringPacker(values, nil)
	require.NoError(t, err)

	decoded := p.DecodeAll()
	require.Equal(t, []string{"a", "", "", ""}, decoded.Strings())
	require.Nil(t, decoded.Nulls(), "the packer cannot report nulls")
}

func TestStringPacker_DecodeFiltered(t *testing.T) {
	values := strValues("a", "b", "c", "d", "e")
	p, err := newStringPacker(values, nil)
	require.NoError(t, err)

	mask := bitmap.FromBools([]bool{true, false, true, false, true})
	filtered := p.DecodeFiltered(mask)

	require.Equal(t, mask.Count(), filtered.Len())
	require.Equal(t, []string{"a", "c", "e"}, filtered.Strings())

	// A filtered decode is the sub-sequence of DecodeAll at set-bit
	// positions.
	all := p.DecodeAll().Strings()
	want := make([]string, 0, mask.Count())
	for i, s := range all {
		if mask.Get(i) {
			want = append(want, s)
		}
	}
	require.Equal(t, want, filtered.Strings())
}

func TestStringPacker_DecodeFiltered_EmptyAndFullMasks(t *testing.T) {
	values := strValues("a", "b", "c")
	p, err := newStringPacker(values, nil)
	require.NoError(t, err)

	none := bitmap.New(3)
	require.Empty(t, p.DecodeFiltered(none).Strings())

	every := bitmap.FromBools([]bool{true, true, true})
	require.Equal(t, []string{"a", "b", "c"}, p.DecodeFiltered(every).Strings())
}

func TestStringPacker_MaskLengthMismatchPanics(t *testing.T) {
	p, err := newStringPacker(strValues("a", "b"), nil)
	require.NoError(t, err)

	require.Panics(t, func() {
		p.DecodeFiltered(bitmap.New(3))
	})
}

func TestStringPacker_RejectsNULByte(t *testing.T) {
	require.Panics(t, func() {
		_, _ = newStringPacker([]vec.Value{vec.Str("a\x00b")}, nil)
	})
}

func TestStringPacker_IteratorRestartable(t *testing.T) {
	p, err := newStringPacker(strValues("x", "y"), nil)
	require.NoError(t, err)

	// A single iterator is single-pass, but a fresh one re-reads the
	// column from the start.
	for range 3 {
		var got []string
		for s := range p.Strings() {
			got = append(got, s)
		}
		require.Equal(t, []string{"x", "y"}, got)
	}
}

func TestStringPacker_IteratorEarlyStop(t *testing.T) {
	p, err := newStringPacker(strValues("a", "b", "c"), nil)
	require.NoError(t, err)

	var got []string
	for s := range p.Strings() {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, got)
}

func TestStringPacker_EmptyColumn(t *testing.T) {
	p, err := newStringPacker(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, p.Len())
	require.Empty(t, p.DecodeAll().Strings())
	require.Equal(t, 0, p.HeapSize())
}

func TestStringPacker_NoCodecCapability(t *testing.T) {
	p, err := newStringPacker(strValues("a"), nil)
	require.NoError(t, err)
	require.Nil(t, p.Codec())
}

func TestStringPacker_Idempotence(t *testing.T) {
	p, err := newStringPacker(strValues("a", "b", "a"), nil)
	require.NoError(t, err)

	first := p.DecodeAll().Strings()
	second := p.DecodeAll().Strings()
	require.Equal(t, first, second)

	mask := bitmap.FromBools([]bool{true, true, false})
	require.Equal(t, p.DecodeFiltered(mask).Strings(), p.DecodeFiltered(mask).Strings())
}

func TestStringPacker_Fingerprint(t *testing.T) {
	a, err := newStringPacker(strValues("a", "b"), nil)
	require.NoError(t, err)
	b, err := newStringPacker(strValues("a", "b"), nil)
	require.NoError(t, err)
	c, err := newStringPacker(strValues("ab", ""), nil)
	require.NoError(t, err)

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	// The terminator framing keeps ["a","b"] and ["ab",""] distinct.
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestStringPacker_Compressed(t *testing.T) {
	values := make([]vec.Value, 0, 500)
	for i := 0; i < 500; i++ {
		values = append(values, vec.Str(strings.Repeat("payload", 3)))
	}

	for _, kind := range []compress.Kind{compress.Zstd, compress.S2, compress.LZ4} {
		t.Run(kind.String(), func(t *testing.T) {
			codec, err := compress.NewCodec(kind)
			require.NoError(t, err)

			p, err := newStringPacker(values, codec)
			require.NoError(t, err)
			require.True(t, p.Compressed())

			// Before the first decode only the compressed buffer is
			// resident.
			compressedSize := p.HeapSize()

			plain, err := newStringPacker(values, nil)
			require.NoError(t, err)
			require.Less(t, compressedSize, plain.HeapSize())

			decoded := p.DecodeAll()
			require.Equal(t, plain.DecodeAll().Strings(), decoded.Strings())

			// The inflated buffer is accounted for after first decode.
			require.Greater(t, p.HeapSize(), compressedSize)

			// Compression does not change column identity.
			require.Equal(t, plain.Fingerprint(), p.Fingerprint())
		})
	}
}

func TestStringPacker_CompressedFiltered(t *testing.T) {
	codec, err := compress.NewCodec(compress.S2)
	require.NoError(t, err)

	p, err := newStringPacker(strValues("a", "b", "c", "d"), codec)
	require.NoError(t, err)

	mask := bitmap.FromBools([]bool{false, true, true, false})
	require.Equal(t, []string{"b", "c"}, p.DecodeFiltered(mask).Strings())
}
