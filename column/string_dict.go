package column

import (
	"encoding/binary"
	"fmt"

	"github.com/vexdb/memcol/bitmap"
	"github.com/vexdb/memcol/internal/hash"
	"github.com/vexdb/memcol/types"
	"github.com/vexdb/memcol/vec"
)

// maxDictSize is the number of dictionary positions addressable by a
// uint16 index.
const maxDictSize = 1 << 16

// DictEncodedStrings stores each distinct value of a column once, in an
// ordered dictionary of at most 65536 entries, plus one uint16 index per
// row pointing into it. One dictionary entry may be the null value.
//
// Null policy: decoding a null entry yields the empty string in the
// decoded vector with the row's bit set in the null bitmap; a scalar
// decode of a null entry yields the null value. This keeps null handling
// exhaustive instead of assuming every entry is a string.
//
// DictEncodedStrings is its own encoded-access capability and decode
// authority: Codec returns the column itself, and the encoded vectors it
// hands out reference it as their vec.U16Decoder.
type DictEncodedStrings struct {
	mapping     []vec.Value
	encoded     []uint16
	fingerprint uint64
}

var (
	_ Data           = (*DictEncodedStrings)(nil)
	_ Codec          = (*DictEncodedStrings)(nil)
	_ vec.U16Decoder = (*DictEncodedStrings)(nil)
)

// newDictColumn builds the dictionary representation from the full row
// sequence and its distinct value set.
//
// Preconditions, violated only by defects in the construction pipeline:
//   - len(uniques) must fit the uint16 index space (≤ 65536)
//   - uniques must cover every row value
//
// Both violations panic.
func newDictColumn(values []vec.Value, uniques []vec.Value) *DictEncodedStrings {
	if len(uniques) > maxDictSize {
		panic(fmt.Sprintf("column: %d unique values exceed uint16 index space (%d)", len(uniques), maxDictSize))
	}

	mapping := make([]vec.Value, len(uniques))
	copy(mapping, uniques)

	reverse := make(map[vec.Value]uint16, len(mapping))
	for i, v := range mapping {
		reverse[v] = uint16(i) //nolint:gosec
	}

	encoded := make([]uint16, len(values))
	for i, v := range values {
		idx, ok := reverse[v]
		if !ok {
			panic(fmt.Sprintf("column: row %d value %q missing from dictionary", i, v))
		}
		encoded[i] = idx
	}

	return &DictEncodedStrings{
		mapping:     mapping,
		encoded:     encoded,
		fingerprint: dictFingerprint(mapping, encoded),
	}
}

// dictFingerprint streams the dictionary entries and index array into one
// xxHash64. Entries are framed with a kind byte and a length prefix so
// adjacent strings cannot alias each other.
func dictFingerprint(mapping []vec.Value, encoded []uint16) uint64 {
	digest := hash.NewDigest()
	var scratch [binary.MaxVarintLen64]byte

	for _, v := range mapping {
		if s, ok := v.StringVal(); ok {
			_, _ = digest.Write([]byte{0x01})
			n := binary.PutUvarint(scratch[:], uint64(len(s)))
			_, _ = digest.Write(scratch[:n])
			_, _ = digest.WriteString(s)
		} else {
			_, _ = digest.Write([]byte{0x00})
		}
	}
	for _, idx := range encoded {
		binary.LittleEndian.PutUint16(scratch[:2], idx)
		_, _ = digest.Write(scratch[:2])
	}

	return digest.Sum64()
}

// decode maps each index to its dictionary entry, building the decoded
// string vector in input order. The null bitmap is allocated only when a
// null entry is actually decoded.
func (d *DictEncodedStrings) decode(indices []uint16) vec.TypedVec {
	strs := make([]string, len(indices))
	var nulls *bitmap.Bitmap

	for i, idx := range indices {
		entry := d.entry(idx)
		if s, ok := entry.StringVal(); ok {
			strs[i] = s
			continue
		}
		if nulls == nil {
			nulls = bitmap.New(len(indices))
		}
		nulls.Set(i)
	}

	return vec.NewStringVec(strs, nulls)
}

func (d *DictEncodedStrings) entry(idx uint16) vec.Value {
	if int(idx) >= len(d.mapping) {
		panic(fmt.Sprintf("column: index %d out of dictionary range %d", idx, len(d.mapping)))
	}

	return d.mapping[idx]
}

func (d *DictEncodedStrings) checkMask(mask *bitmap.Bitmap) {
	if mask.Len() != len(d.encoded) {
		panic(fmt.Sprintf("column: mask length %d does not match row count %d", mask.Len(), len(d.encoded)))
	}
}

// DecodeAll returns every row as an ordered string vector.
func (d *DictEncodedStrings) DecodeAll() vec.TypedVec {
	return d.decode(d.encoded)
}

// DecodeFiltered returns the rows selected by the mask, preserving order.
// Panics if the mask length does not match the row count.
func (d *DictEncodedStrings) DecodeFiltered(mask *bitmap.Bitmap) vec.TypedVec {
	d.checkMask(mask)

	return d.decode(d.filterIndices(mask))
}

// DecodedType returns types.String.
func (d *DictEncodedStrings) DecodedType() types.Type {
	return types.String
}

// Codec returns the column itself: the dictionary representation supports
// encoded access.
func (d *DictEncodedStrings) Codec() Codec {
	return d
}

// Len returns the number of rows.
func (d *DictEncodedStrings) Len() int {
	return len(d.encoded)
}

// HeapSize returns the bytes retained by the index array and the
// dictionary's string payloads.
func (d *DictEncodedStrings) HeapSize() int {
	size := 2 * len(d.encoded)
	for _, v := range d.mapping {
		if s, ok := v.StringVal(); ok {
			size += len(s)
		}
	}

	return size
}

// Fingerprint returns the xxHash64 over the dictionary and index array.
func (d *DictEncodedStrings) Fingerprint() uint64 {
	return d.fingerprint
}

// Encoded returns the raw index array as a borrowed encoded vector with
// this column as decode authority. The indices alias the column's
// internal array and must be treated as read-only.
func (d *DictEncodedStrings) Encoded() vec.TypedVec {
	return vec.NewBorrowedEncodedU16(d.encoded, d)
}

// FilterEncoded returns the index array restricted by the mask as an
// owned encoded vector, preserving row order. Panics if the mask length
// does not match the row count.
func (d *DictEncodedStrings) FilterEncoded(mask *bitmap.Bitmap) vec.TypedVec {
	d.checkMask(mask)

	return vec.NewEncodedU16(d.filterIndices(mask), d)
}

// EncodedType returns types.U16, the index width.
func (d *DictEncodedStrings) EncodedType() types.Type {
	return types.U16
}

// RefEncodedType returns types.RefU16, the width used for borrowed index
// arrays.
func (d *DictEncodedStrings) RefEncodedType() types.Type {
	return types.RefU16
}

// DecodeU16 decodes an arbitrary index sequence through the dictionary,
// in input order. This is the decode-authority entry point for consumers
// holding raw indices; decoding the unmodified index array is equivalent
// to DecodeAll.
func (d *DictEncodedStrings) DecodeU16(indices []uint16) vec.TypedVec {
	return d.decode(indices)
}

// ScalarU16 decodes a single index to a tagged scalar value, for
// single-row lookups. A null dictionary entry decodes to the null value.
func (d *DictEncodedStrings) ScalarU16(index uint16) vec.Value {
	return d.entry(index)
}

func (d *DictEncodedStrings) filterIndices(mask *bitmap.Bitmap) []uint16 {
	out := make([]uint16, 0, mask.Count())
	for i, idx := range d.encoded {
		if mask.Get(i) {
			out = append(out, idx)
		}
	}

	return out
}
