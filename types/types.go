// Package types defines the semantic and encoded type tags used by column
// representations and decoded value containers.
//
// Every column reports two kinds of type information:
//
//   - The decoded (semantic) type of its values, e.g. String.
//   - For representations with a compact encoded form, the encoded type of
//     the per-row indices (U16) and the type used when the index array is
//     exposed by reference rather than owned (RefU16).
//
// The tag set is closed: representations are selected once at build time
// and never switched, so consumers can switch exhaustively over Type.
package types

// Type identifies the element type carried by a decoded or encoded value
// container.
type Type uint8

const (
	// Null represents the absence of a value.
	Null Type = 0x0
	// String represents UTF-8 string values.
	String Type = 0x1
	// U16 represents owned 16-bit unsigned dictionary indices.
	U16 Type = 0x2
	// RefU16 represents borrowed 16-bit unsigned dictionary indices that
	// alias a column's internal index array.
	RefU16 Type = 0x3
)

func (t Type) String() string {
	switch t {
	case Null:
		return "Null"
	case String:
		return "String"
	case U16:
		return "U16"
	case RefU16:
		return "RefU16"
	default:
		return "Unknown"
	}
}
