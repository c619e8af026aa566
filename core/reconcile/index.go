package reconcile

// Index is a lookup table from device identifier to the records carrying it.
// Multiple records sharing a key are preserved in input order, not
// deduplicated. Lookup is O(1) amortized; the engine performs one lookup per
// source per authoritative record, so a linear scan here would degrade the
// whole pass to O(n*m).
//
// An Index is built once and never mutated afterwards, so it is safe for
// concurrent readers.
type Index[T any] struct {
	byKey map[string][]T
}

// BuildIndex builds an Index over records in a single pass. keyOf extracts the
// join key; records yielding an empty key are unindexable and silently
// dropped (they could never match an authoritative record).
func BuildIndex[T any](records []T, keyOf func(T) string) Index[T] {
	byKey := make(map[string][]T, len(records))
	for _, r := range records {
		key := keyOf(r)
		if key == "" {
			continue
		}
		byKey[key] = append(byKey[key], r)
	}
	return Index[T]{byKey: byKey}
}

// Lookup returns all records carrying the given key, in input order. A nil
// result is a valid, expected outcome, not an error.
func (ix Index[T]) Lookup(key string) []T {
	return ix.byKey[key]
}

// Keys returns the number of distinct keys in the index.
func (ix Index[T]) Keys() int {
	return len(ix.byKey)
}
