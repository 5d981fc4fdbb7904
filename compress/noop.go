package compress

// NoOpCompressor is a pass-through codec for uncompressed columns.
//
// It returns input slices unchanged in both directions, which keeps the
// builder's compression path uniform: an uncompressed column is simply a
// column whose codec is the no-op codec.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is without copying.
//
// The returned slice shares the input's underlying memory; callers must
// not modify the input after handing it to a column.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
