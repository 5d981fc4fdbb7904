// Package bitmap provides a fixed-length bitset used as a row mask.
//
// A row mask selects a subset of rows from a column: bit i corresponds to
// row i, and the mask length must equal the column's row count. Masks are
// plain value containers with no synchronization; a mask must not be
// mutated while a filtered decode that references it is in progress.
package bitmap

import (
	"fmt"
	"math/bits"
)

const wordBits = 64

// Bitmap is a fixed-length sequence of bits, one per row.
//
// The zero value is an empty bitmap of length 0; use New to create a
// bitmap sized for a column.
type Bitmap struct {
	words  []uint64
	length int
}

// New creates a bitmap of the given length with all bits unset.
//
// Parameters:
//   - length: Number of bits (rows); must be non-negative
//
// Returns:
//   - *Bitmap: A new bitmap with every bit cleared
func New(length int) *Bitmap {
	if length < 0 {
		panic(fmt.Sprintf("bitmap.New: negative length %d", length))
	}

	return &Bitmap{
		words:  make([]uint64, (length+wordBits-1)/wordBits),
		length: length,
	}
}

// FromBools creates a bitmap from a slice of booleans, one bit per element.
// This is primarily a convenience for constructing masks in tests and
// examples.
func FromBools(selected []bool) *Bitmap {
	bm := New(len(selected))
	for i, sel := range selected {
		if sel {
			bm.Set(i)
		}
	}

	return bm
}

// Len returns the number of bits in the bitmap.
func (b *Bitmap) Len() int {
	return b.length
}

// Set sets bit i. Panics if i is out of range.
func (b *Bitmap) Set(i int) {
	b.check(i)
	b.words[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// Clear unsets bit i. Panics if i is out of range.
func (b *Bitmap) Clear(i int) {
	b.check(i)
	b.words[i/wordBits] &^= 1 << (uint(i) % wordBits)
}

// Get reports whether bit i is set. Panics if i is out of range.
func (b *Bitmap) Get(i int) bool {
	b.check(i)

	return b.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Count returns the number of set bits (the population count).
//
// A filtered decode over this mask produces exactly Count() values.
func (b *Bitmap) Count() int {
	total := 0
	for _, w := range b.words {
		total += bits.OnesCount64(w)
	}

	return total
}

func (b *Bitmap) check(i int) {
	if i < 0 || i >= b.length {
		panic(fmt.Sprintf("bitmap: index %d out of range [0, %d)", i, b.length))
	}
}
