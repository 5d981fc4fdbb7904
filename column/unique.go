package column

import "github.com/vexdb/memcol/vec"

// UniqueValues is the cardinality analysis consumed by the builder: the
// set of distinct values observed in a column, or the signal that the set
// grew past the configured ceiling and was abandoned.
type UniqueValues struct {
	values  []vec.Value
	bounded bool
}

// CollectUnique scans the row values and collects their distinct set, in
// first-appearance order, up to the given ceiling.
//
// When the number of distinct values exceeds the ceiling, collection stops
// and the result reports no bounded set; the builder then falls back to
// the raw packer instead of dictionary encoding.
//
// Parameters:
//   - values: Full row sequence, in row order
//   - ceiling: Maximum distinct-value count worth dictionary encoding
//
// Returns:
//   - UniqueValues: The analysis result to pass to BuildStringColumn
func CollectUnique(values []vec.Value, ceiling int) UniqueValues {
	seen := make(map[vec.Value]struct{}, min(len(values), ceiling+1))
	unique := make([]vec.Value, 0, min(len(values), ceiling+1))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		if len(unique) == ceiling {
			return UniqueValues{bounded: false}
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}

	return UniqueValues{values: unique, bounded: true}
}

// BoundedUnique creates an analysis from an externally computed distinct
// set, for ingestion pipelines that track cardinality themselves. The
// caller guarantees the set covers every row value the column will be
// built from.
func BoundedUnique(values []vec.Value) UniqueValues {
	return UniqueValues{values: values, bounded: true}
}

// Unbounded creates an analysis reporting that no bounded set is
// available.
func Unbounded() UniqueValues {
	return UniqueValues{bounded: false}
}

// Values returns the distinct value set and true, or nil and false when
// the set exceeded the ceiling.
func (u UniqueValues) Values() ([]vec.Value, bool) {
	if !u.bounded {
		return nil, false
	}

	return u.values, true
}
