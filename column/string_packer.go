package column

import (
	"fmt"
	"iter"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/vexdb/memcol/bitmap"
	"github.com/vexdb/memcol/compress"
	"github.com/vexdb/memcol/internal/hash"
	"github.com/vexdb/memcol/internal/pool"
	"github.com/vexdb/memcol/types"
	"github.com/vexdb/memcol/vec"
)

// terminator delimits packed strings. A stored string must not contain
// this byte; the builder rejects it at construction time.
const terminator byte = 0x00

// StringPacker stores all strings of a column concatenated in a single
// byte buffer, each terminated by a zero byte. Null rows are stored as
// empty segments, so after a packer round trip a null and an empty string
// are indistinguishable: both decode to "". This collapse is a
// characterized property of the representation, not an accident of the
// implementation.
//
// StringPacker supports decoding only; it has no compact per-row index,
// so Codec returns nil.
//
// When built with a compression codec, the packed buffer is held
// compressed and inflated once, on first decode, under sync.Once.
type StringPacker struct {
	rows        int
	fingerprint uint64

	// data is the packed buffer. For compressed packers it stays nil
	// until the first decode inflates it.
	data []byte

	// packed is the compressed form of data; nil for uncompressed packers.
	packed      []byte
	codec       compress.Codec
	inflateOnce sync.Once
	inflatedLen atomic.Int64
}

var _ Data = (*StringPacker)(nil)

// newStringPacker packs the row values into a fresh buffer. A nil codec
// produces an uncompressed packer; otherwise the buffer is compressed and
// the uncompressed copy discarded until first decode.
func newStringPacker(values []vec.Value, codec compress.Codec) (*StringPacker, error) {
	buf := pool.GetColumnBuffer()
	defer pool.PutColumnBuffer(buf)

	for _, v := range values {
		s, _ := v.StringVal() // null packs as the empty segment
		for i := 0; i < len(s); i++ {
			if s[i] == terminator {
				panic(fmt.Sprintf("column: string value contains NUL byte at offset %d", i))
			}
		}
		buf.Grow(len(s) + 1)
		buf.WriteString(s)
		_ = buf.WriteByte(terminator)
	}

	// Shrink to fit: the column owns an exact-size copy, the pooled
	// buffer goes back for reuse.
	data := buf.CopyBytes()

	p := &StringPacker{
		rows:        len(values),
		fingerprint: hash.Fingerprint(data),
	}

	if codec == nil {
		p.data = data
		return p, nil
	}

	packed, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("column: compress packed strings: %w", err)
	}
	if len(packed) == 0 && len(data) > 0 {
		// Incompressible input (LZ4 block mode signals this with an
		// empty result); keep the column uncompressed.
		p.data = data
		return p, nil
	}
	p.packed = packed
	p.codec = codec

	return p, nil
}

// buffer returns the packed byte buffer, inflating it first when the
// packer was built compressed. Safe for concurrent callers.
func (p *StringPacker) buffer() []byte {
	if p.codec == nil {
		return p.data
	}

	p.inflateOnce.Do(func() {
		data, err := p.codec.Decompress(p.packed)
		if err != nil {
			// The packer compressed this buffer itself at construction;
			// failing to inflate it signals a defect, not a user error.
			panic(fmt.Sprintf("column: inflate packed strings: %v", err))
		}
		p.data = data
		p.inflatedLen.Store(int64(len(data)))
	})

	return p.data
}

// Strings returns a lazy forward-only iterator over the packed strings,
// one row per step, in row order.
//
// Each yielded string is a zero-copy view into the packed buffer: the
// bytes between terminators were copied verbatim from input Go strings,
// so they are valid UTF-8 by construction and are reinterpreted without
// re-validation. The views remain valid for the lifetime of the column.
//
// A single iterator is single-pass; create a new one to re-read the
// column.
func (p *StringPacker) Strings() iter.Seq[string] {
	data := p.buffer()

	return func(yield func(string) bool) {
		start := 0
		for i := 0; i < len(data); i++ {
			if data[i] != terminator {
				continue
			}
			if !yield(viewString(data[start:i])) {
				return
			}
			start = i + 1
		}
	}
}

// DecodeAll returns every row as an ordered string vector.
//
// The packer cannot distinguish null rows from empty strings, so the
// result never carries a null bitmap; both decode to "".
func (p *StringPacker) DecodeAll() vec.TypedVec {
	strs := make([]string, 0, p.rows)
	for s := range p.Strings() {
		strs = append(strs, s)
	}

	return vec.NewStringVec(strs, nil)
}

// DecodeFiltered returns the rows selected by the mask, preserving order.
// Panics if the mask length does not match the row count.
func (p *StringPacker) DecodeFiltered(mask *bitmap.Bitmap) vec.TypedVec {
	if mask.Len() != p.rows {
		panic(fmt.Sprintf("column: mask length %d does not match row count %d", mask.Len(), p.rows))
	}

	strs := make([]string, 0, mask.Count())
	row := 0
	for s := range p.Strings() {
		if mask.Get(row) {
			strs = append(strs, s)
		}
		row++
	}

	return vec.NewStringVec(strs, nil)
}

// DecodedType returns types.String.
func (p *StringPacker) DecodedType() types.Type {
	return types.String
}

// Codec returns nil: the packer has no encoded-access capability.
func (p *StringPacker) Codec() Codec {
	return nil
}

// Len returns the number of rows.
func (p *StringPacker) Len() int {
	return p.rows
}

// HeapSize returns the bytes retained by the packed buffer. For a
// compressed packer this counts the compressed buffer plus the inflated
// copy once a decode has materialized it.
func (p *StringPacker) HeapSize() int {
	if p.codec == nil {
		return len(p.data)
	}

	return len(p.packed) + int(p.inflatedLen.Load())
}

// Fingerprint returns the xxHash64 of the uncompressed packed buffer.
// Compression does not change a column's identity.
func (p *StringPacker) Fingerprint() uint64 {
	return p.fingerprint
}

// Compressed reports whether the packer holds its buffer compressed.
func (p *StringPacker) Compressed() bool {
	return p.codec != nil
}

// viewString reinterprets a sub-slice of the packed buffer as a string
// without copying. The buffer is immutable for the column's lifetime,
// which is the aliasing guarantee unsafe.String requires.
func viewString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}
