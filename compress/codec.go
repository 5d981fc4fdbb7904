// Package compress provides the compression codecs a column builder can
// apply to a raw packer's byte buffer.
//
// A packed string column is one contiguous byte buffer; for large, cold
// columns it can be cheaper to hold that buffer compressed in memory and
// inflate it on first read. The codecs here cover that trade-off space:
//
//   - S2: fastest, moderate ratio; best default for hot columns
//   - LZ4: fast, slightly better ratio than S2 on text
//   - Zstd: best ratio, slower; best for cold or archival columns
//   - None: pass-through for uncompressed columns
//
// All codecs operate on whole buffers, are stateless at the API surface,
// and are safe for concurrent use.
package compress

import "fmt"

// Kind identifies a compression algorithm.
type Kind uint8

const (
	// None disables compression.
	None Kind = 0x1
	// Zstd selects Zstandard compression.
	Zstd Kind = 0x2
	// S2 selects S2 (Snappy-compatible) compression.
	S2 Kind = 0x3
	// LZ4 selects LZ4 block compression.
	LZ4 Kind = 0x4
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a complete column buffer.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//     (except the no-op codec, which returns the input as-is)
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a compressed column buffer.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// result. Returns an error if the data is corrupted or was compressed
	// with an incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// NewCodec is a factory that creates the Codec for the given kind.
//
// Parameters:
//   - kind: Compression algorithm (None, Zstd, S2, or LZ4)
//
// Returns:
//   - Codec: Codec instance for the specified kind
//   - error: Invalid kind error
func NewCodec(kind Kind) (Codec, error) {
	switch kind {
	case None:
		return NewNoOpCompressor(), nil
	case Zstd:
		return NewZstdCompressor(), nil
	case S2:
		return NewS2Compressor(), nil
	case LZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid compression kind: %v", kind)
	}
}
