// Package vec provides the tagged value containers exchanged between
// column representations and their consumers.
//
// Two containers are defined:
//
//   - Value: a single tagged scalar, either a UTF-8 string or null. It is
//     the row-value type consumed from ingestion and the result type of
//     single-row decodes.
//   - TypedVec: an ordered sequence of values tagged with its element
//     type. It carries either fully decoded strings (with an explicit
//     null bitmap) or undecoded 16-bit dictionary indices paired with a
//     decode authority, letting consumers defer string materialization.
//
// The U16Decoder interface is the decode authority for encoded vectors:
// a column that hands out raw indices also hands out the U16Decoder that
// can resolve them later.
package vec

import "github.com/vexdb/memcol/types"

// Value is a tagged scalar row value: either a string or null.
//
// Value is a small comparable struct, so it can be used directly as a map
// key; the dictionary encoder relies on this for its reverse lookup.
type Value struct {
	kind types.Type
	str  string
}

// Str creates a string Value.
func Str(s string) Value {
	return Value{kind: types.String, str: s}
}

// Null creates a null Value.
func Null() Value {
	return Value{kind: types.Null}
}

// Kind returns the value's type tag: types.String or types.Null.
func (v Value) Kind() types.Type {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == types.Null
}

// StringVal returns the string payload. The second return value is false
// when the value is null, in which case the string is empty.
func (v Value) StringVal() (string, bool) {
	return v.str, v.kind == types.String
}

// String implements fmt.Stringer for debugging output.
func (v Value) String() string {
	if v.kind == types.Null {
		return "<null>"
	}

	return v.str
}
