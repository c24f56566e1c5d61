package dart

// KeyValue pairs a byte-string key with the value to associate with it in
// the built trie.
type KeyValue struct {
	Key   []byte
	Value uint32
}

// normalizeKeyset appends an implicit terminator to every key that lacks
// a trailing terminator byte, then validates the result is strictly
// ascending with no duplicates and every value fits the 31-bit value
// range. It returns a new slice; the input is not mutated.
//
// Grounded on spec.md §4.4's normalization rules (see DESIGN.md, Open
// Question 1) and urkle/builder.go::InsertMonotone's validate-then-build
// shape, adapted from a streaming single-key call to a batch pass since
// the double-array builder needs the whole sorted keyset up front.
func normalizeKeyset(kvs []KeyValue) ([]KeyValue, error) {
	out := make([]KeyValue, len(kvs))
	for i, kv := range kvs {
		if kv.Value > maxValue {
			return nil, wrapValueOutOfRange(kv.Value, maxValue)
		}
		out[i] = KeyValue{Key: withTerminator(kv.Key), Value: kv.Value}
	}
	for i := 1; i < len(out); i++ {
		switch compareKeys(out[i-1].Key, out[i].Key) {
		case 0:
			return nil, wrapDuplicateKey(i)
		case 1:
			return nil, wrapNotSorted(i)
		}
	}
	return out, nil
}

func withTerminator(key []byte) []byte {
	if len(key) > 0 && key[len(key)-1] == terminator {
		return key
	}
	withTerm := make([]byte, len(key)+1)
	copy(withTerm, key)
	withTerm[len(key)] = terminator
	return withTerm
}

// compareKeys returns -1, 0, or 1 as a <, ==, or > b lexicographically.
func compareKeys(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
