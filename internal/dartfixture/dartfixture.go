// Package dartfixture loads and saves CBOR-encoded keyset fixtures used
// by dart's tests, grounded on forestrie-go-merklelog/massifs'
// signedrootreader.go cbor.CBORCodec usage.
package dartfixture

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/forestrie/go-dartrie/dart"
)

// Entry is one key/value pair in a fixture keyset.
type Entry struct {
	Key   []byte `cbor:"key"`
	Value uint32 `cbor:"value"`
}

// Keyset is a named, CBOR-serializable collection of fixture entries,
// used in place of literal Go slices inline in test files.
type Keyset struct {
	Name    string  `cbor:"name"`
	Entries []Entry `cbor:"entries"`
}

// Encode serializes ks as CBOR.
func Encode(ks Keyset) ([]byte, error) {
	data, err := cbor.Marshal(ks)
	if err != nil {
		return nil, fmt.Errorf("dartfixture: encode %q: %w", ks.Name, err)
	}
	return data, nil
}

// Decode deserializes a Keyset previously produced by Encode.
func Decode(data []byte) (Keyset, error) {
	var ks Keyset
	if err := cbor.Unmarshal(data, &ks); err != nil {
		return Keyset{}, fmt.Errorf("dartfixture: decode: %w", err)
	}
	return ks, nil
}

// KeyValues converts ks to the []dart.KeyValue shape dart.Build expects.
// Entries must already be sorted ascending by Key; KeyValues does not
// sort them.
func (ks Keyset) KeyValues() []dart.KeyValue {
	out := make([]dart.KeyValue, len(ks.Entries))
	for i, e := range ks.Entries {
		out[i] = dart.KeyValue{Key: e.Key, Value: e.Value}
	}
	return out
}
