// Package column implements the string-column encoding layer of the
// in-memory store.
//
// A column is built exactly once from a fully materialized sequence of
// optional string row values plus a cardinality analysis, and is immutable
// afterward. Two representations exist:
//
//   - StringPacker: every row's bytes concatenated into one buffer with a
//     zero-byte terminator per row. Chosen for high-cardinality columns.
//   - DictEncodedStrings: each distinct value stored once in an ordered
//     dictionary, with one uint16 index per row. Chosen when the
//     cardinality analysis reports a bounded unique-value set.
//
// The query engine consumes columns only through the capability
// interfaces below, so it never needs to know which representation was
// selected.
//
// # Concurrency
//
// Columns are immutable after construction: every operation defined here
// is read-only and safe for unsynchronized concurrent use. The only
// internal mutation is a compressed packer inflating its buffer on first
// decode, which is guarded by sync.Once.
package column

import (
	"github.com/vexdb/memcol/bitmap"
	"github.com/vexdb/memcol/types"
	"github.com/vexdb/memcol/vec"
)

// Data is the capability every column representation exposes to the query
// engine.
type Data interface {
	// DecodeAll returns the entire column as an ordered string vector.
	DecodeAll() vec.TypedVec

	// DecodeFiltered returns the rows selected by the mask, in row order.
	// The result length equals the mask's set-bit count. The mask length
	// must equal the column's row count; a mismatch is an internal
	// consistency bug and panics.
	DecodeFiltered(mask *bitmap.Bitmap) vec.TypedVec

	// DecodedType returns the semantic type of decoded values, always
	// types.String for the representations in this package.
	DecodedType() types.Type

	// Codec returns the encoded-access capability, or nil for
	// representations without a compact per-row index.
	Codec() Codec

	// Len returns the number of rows in the column.
	Len() int

	// HeapSize returns the approximate number of heap bytes retained by
	// the column's payload buffers.
	HeapSize() int

	// Fingerprint returns a 64-bit content hash of the column. Two
	// columns bound to identical content report identical fingerprints,
	// making the fingerprint usable as a cache key for derived results.
	Fingerprint() uint64
}

// Codec is the optional encoded-access capability: it exposes the per-row
// index array and a decode authority, letting a consumer operate on
// encoded values and defer string materialization until needed.
//
// Only the dictionary representation supports this capability; the raw
// packer has no compact index array to defer.
type Codec interface {
	// Encoded returns the raw index array as a borrowed encoded vector
	// (kind types.RefU16) paired with this column as decode authority.
	Encoded() vec.TypedVec

	// FilterEncoded returns the index array restricted by the mask as an
	// owned encoded vector (kind types.U16), preserving row order. Mask
	// semantics match Data.DecodeFiltered.
	FilterEncoded(mask *bitmap.Bitmap) vec.TypedVec

	// EncodedType returns the index width type, types.U16.
	EncodedType() types.Type

	// RefEncodedType returns the width type used when the index array is
	// held by reference, types.RefU16.
	RefEncodedType() types.Type
}
