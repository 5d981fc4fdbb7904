package column

import (
	"fmt"

	"github.com/vexdb/memcol/compress"
	"github.com/vexdb/memcol/internal/options"
	"github.com/vexdb/memcol/vec"
)

// MaxUniqueStrings is the default ceiling on distinct values worth
// dictionary encoding. Columns whose cardinality analysis exceeds it are
// packed raw instead. The ceiling is enforced by the analysis, well below
// the uint16 index space hard limit.
const MaxUniqueStrings = 10000

// BuilderConfig holds the builder settings applied through functional
// options.
type BuilderConfig struct {
	compression compress.Kind
}

// BuilderOption represents a functional option for configuring the
// column builder.
type BuilderOption = options.Option[*BuilderConfig]

// WithCompression keeps the raw packer's buffer compressed in memory with
// the given codec, inflating it lazily on first decode. Useful for large,
// rarely read columns.
//
// Dictionary-encoded columns are already compact and ignore this option.
func WithCompression(kind compress.Kind) BuilderOption {
	return options.New(func(cfg *BuilderConfig) error {
		switch kind {
		case compress.None, compress.Zstd, compress.S2, compress.LZ4:
			cfg.compression = kind
			return nil
		default:
			return fmt.Errorf("invalid compression kind: %v", kind)
		}
	})
}

// BuildStringColumn builds the column representation for the given row
// values.
//
// The choice is deterministic and total: when the cardinality analysis
// reports a bounded unique-value set, the dictionary encoding is built;
// otherwise every row is packed raw. No error arises from the selection
// itself; the returned error covers invalid options and compression
// failures only.
//
// Parameters:
//   - values: Full row sequence, in row order; elements are strings or nulls
//   - uniques: Cardinality analysis, typically from CollectUnique
//   - opts: Optional builder settings, e.g. WithCompression
//
// Returns:
//   - Data: The immutable column, consumed through the capability interfaces
//   - error: Invalid option or compression failure
func BuildStringColumn(values []vec.Value, uniques UniqueValues, opts ...BuilderOption) (Data, error) {
	cfg := &BuilderConfig{compression: compress.None}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("column: %w", err)
	}

	if unique, ok := uniques.Values(); ok {
		return newDictColumn(values, unique), nil
	}

	var codec compress.Codec
	if cfg.compression != compress.None {
		var err error
		codec, err = compress.NewCodec(cfg.compression)
		if err != nil {
			return nil, fmt.Errorf("column: %w", err)
		}
	}

	return newStringPacker(values, codec)
}
