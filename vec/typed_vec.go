package vec

import (
	"fmt"

	"github.com/vexdb/memcol/bitmap"
	"github.com/vexdb/memcol/types"
)

// U16Decoder resolves 16-bit dictionary indices back to string values.
//
// A column representation that exposes encoded vectors acts as its own
// decode authority: the TypedVec it hands out references the column, and
// the column must therefore outlive every vector derived from it. Columns
// are immutable after construction, so concurrent DecodeU16 and ScalarU16
// calls are safe without synchronization.
type U16Decoder interface {
	// DecodeU16 decodes an arbitrary sequence of indices into a string
	// vector, in input order. An out-of-range index is an internal
	// consistency violation and panics.
	DecodeU16(indices []uint16) TypedVec

	// ScalarU16 decodes a single index into a tagged scalar value. A null
	// dictionary entry decodes to the null Value.
	ScalarU16(index uint16) Value
}

// TypedVec is an ordered sequence of column values tagged with its element
// type.
//
// A TypedVec is one of:
//
//   - A string vector (types.String): decoded strings in row order, with
//     an optional null bitmap marking rows whose original value was null.
//   - An encoded vector (types.U16 or types.RefU16): 16-bit dictionary
//     indices paired with the U16Decoder that can resolve them. RefU16
//     marks an index slice borrowed from the column's internal array and
//     must not be modified; U16 marks an owned copy.
//
// TypedVec values are read-only snapshots; none of the accessors mutate
// state, so a TypedVec may be shared freely across goroutines.
type TypedVec struct {
	kind    types.Type
	strs    []string
	nulls   *bitmap.Bitmap
	indices []uint16
	decoder U16Decoder
}

// NewStringVec creates a decoded string vector.
//
// The nulls bitmap may be nil when no row is null; when present, its
// length must equal len(strs) and a set bit i marks strs[i] as the decoded
// placeholder of a null row (the placeholder is always the empty string).
func NewStringVec(strs []string, nulls *bitmap.Bitmap) TypedVec {
	if nulls != nil && nulls.Len() != len(strs) {
		panic(fmt.Sprintf("vec: null bitmap length %d does not match value count %d", nulls.Len(), len(strs)))
	}

	return TypedVec{kind: types.String, strs: strs, nulls: nulls}
}

// NewEncodedU16 creates an encoded vector owning its index slice.
// The decoder is the authority that resolves the indices on demand.
func NewEncodedU16(indices []uint16, decoder U16Decoder) TypedVec {
	return TypedVec{kind: types.U16, indices: indices, decoder: decoder}
}

// NewBorrowedEncodedU16 creates an encoded vector whose index slice aliases
// the column's internal array. Callers must treat the indices as read-only.
func NewBorrowedEncodedU16(indices []uint16, decoder U16Decoder) TypedVec {
	return TypedVec{kind: types.RefU16, indices: indices, decoder: decoder}
}

// Type returns the element type tag of the vector.
func (tv TypedVec) Type() types.Type {
	return tv.kind
}

// Len returns the number of elements in the vector.
func (tv TypedVec) Len() int {
	switch tv.kind {
	case types.U16, types.RefU16:
		return len(tv.indices)
	default:
		return len(tv.strs)
	}
}

// Strings returns the decoded string values in row order.
// Panics if the vector is not a string vector; call Resolve first when the
// vector may still be encoded.
func (tv TypedVec) Strings() []string {
	if tv.kind != types.String {
		panic(fmt.Sprintf("vec: Strings called on %s vector", tv.kind))
	}

	return tv.strs
}

// Nulls returns the null bitmap of a string vector, or nil when no row is
// null. Panics if the vector is not a string vector.
func (tv TypedVec) Nulls() *bitmap.Bitmap {
	if tv.kind != types.String {
		panic(fmt.Sprintf("vec: Nulls called on %s vector", tv.kind))
	}

	return tv.nulls
}

// NullAt reports whether row i of a string vector was null before
// decoding. Panics if the vector is not a string vector.
func (tv TypedVec) NullAt(i int) bool {
	if tv.kind != types.String {
		panic(fmt.Sprintf("vec: NullAt called on %s vector", tv.kind))
	}
	if tv.nulls == nil {
		return false
	}

	return tv.nulls.Get(i)
}

// Encoded returns the index slice and decode authority of an encoded
// vector. Panics if the vector is already decoded.
func (tv TypedVec) Encoded() ([]uint16, U16Decoder) {
	if tv.kind != types.U16 && tv.kind != types.RefU16 {
		panic(fmt.Sprintf("vec: Encoded called on %s vector", tv.kind))
	}

	return tv.indices, tv.decoder
}

// Resolve materializes the vector as strings.
//
// A string vector is returned unchanged; an encoded vector is decoded
// through its authority. This is the single call sites use when they no
// longer want to defer decoding.
func (tv TypedVec) Resolve() TypedVec {
	switch tv.kind {
	case types.U16, types.RefU16:
		return tv.decoder.DecodeU16(tv.indices)
	default:
		return tv
	}
}
