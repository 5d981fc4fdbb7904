// Package memcol provides the string-column encoding layer of an in-memory
// columnar analytical store.
//
// Given a column of ingested string (or null) values plus a cardinality
// analysis, memcol selects and builds a compact immutable representation
// supporting full decode, mask-filtered decode, and deferred (encoded)
// access for dictionary-encoded columns.
//
// # Core Features
//
//   - Two encodings, selected per column: dictionary encoding (uint16
//     index per row, ≤65536 distinct values) and raw delimiter packing
//     (one contiguous byte buffer)
//   - Uniform capability interfaces, so the query engine never needs to
//     know which encoding was chosen
//   - Encoded access for dictionary columns: consumers can operate on raw
//     indices and defer string materialization
//   - Optional in-memory compression (Zstd, S2, LZ4) for packed columns
//   - xxHash64 column fingerprints for caching derived results
//   - Lock-free concurrent reads; columns are immutable after build
//
// # Basic Usage
//
// Building and decoding a column:
//
//	import "github.com/vexdb/memcol"
//
//	values := memcol.Strings([]string{"a", "b", "a", "c"})
//	col, _ := memcol.BuildStringColumn(values)
//
//	decoded := col.DecodeAll()
//	fmt.Println(decoded.Strings()) // [a b a c]
//
// Filtered decode with a row mask:
//
//	mask := bitmap.FromBools([]bool{true, false, true, false})
//	fmt.Println(col.DecodeFiltered(mask).Strings()) // [a a]
//
// Deferred decoding through the encoded-access capability:
//
//	if codec := col.Codec(); codec != nil {
//	    encoded := codec.Encoded()       // uint16 indices, no strings yet
//	    resolved := encoded.Resolve()    // materialize when needed
//	    fmt.Println(resolved.Strings())
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the column
// package, covering the most common use cases. For fine-grained control
// (explicit cardinality analyses, builder options), use the column,
// bitmap, vec and compress packages directly.
package memcol

import (
	"github.com/vexdb/memcol/column"
	"github.com/vexdb/memcol/vec"
)

// MaxUniqueStrings is the default distinct-value ceiling used by
// BuildStringColumn when running its own cardinality analysis.
const MaxUniqueStrings = column.MaxUniqueStrings

// Str creates a string row value.
func Str(s string) vec.Value {
	return vec.Str(s)
}

// Null creates a null row value.
func Null() vec.Value {
	return vec.Null()
}

// Strings converts a plain string slice into row values, one per row.
func Strings(ss []string) []vec.Value {
	values := make([]vec.Value, len(ss))
	for i, s := range ss {
		values[i] = vec.Str(s)
	}

	return values
}

// BuildStringColumn analyzes the row values and builds the best column
// representation for them.
//
// It runs the cardinality analysis with the MaxUniqueStrings ceiling and
// dispatches to the dictionary encoding when the distinct-value set is
// bounded, or to the raw packer otherwise. To supply a precomputed
// analysis from the ingestion pipeline, call column.BuildStringColumn
// directly.
//
// Parameters:
//   - values: Full row sequence, in row order; elements are strings or nulls
//   - opts: Optional builder settings, e.g. column.WithCompression
//
// Returns:
//   - column.Data: The immutable column
//   - error: Invalid option or compression failure
func BuildStringColumn(values []vec.Value, opts ...column.BuilderOption) (column.Data, error) {
	return column.BuildStringColumn(values, column.CollectUnique(values, MaxUniqueStrings), opts...)
}
