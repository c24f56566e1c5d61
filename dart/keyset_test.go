package dart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeKeysetAddsImplicitTerminator(t *testing.T) {
	out, err := normalizeKeyset([]KeyValue{
		{Key: []byte("a"), Value: 1},
		{Key: []byte("ab"), Value: 2},
	})
	require.NoError(t, err)
	require.Equal(t, []byte("a\x00"), out[0].Key)
	require.Equal(t, []byte("ab\x00"), out[1].Key)
}

func TestNormalizeKeysetRejectsUnsorted(t *testing.T) {
	_, err := normalizeKeyset([]KeyValue{
		{Key: []byte("b"), Value: 1},
		{Key: []byte("a"), Value: 2},
	})
	require.ErrorIs(t, err, ErrInputNotSorted)
}

func TestNormalizeKeysetRejectsDuplicate(t *testing.T) {
	_, err := normalizeKeyset([]KeyValue{
		{Key: []byte("a"), Value: 1},
		{Key: []byte("a"), Value: 2},
	})
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestNormalizeKeysetRejectsImplicitDuplicateViaTerminator(t *testing.T) {
	_, err := normalizeKeyset([]KeyValue{
		{Key: []byte("a"), Value: 1},
		{Key: []byte("a\x00"), Value: 2},
	})
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestNormalizeKeysetRejectsValueOutOfRange(t *testing.T) {
	_, err := normalizeKeyset([]KeyValue{
		{Key: []byte("a"), Value: maxValue + 1},
	})
	require.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestCompareKeysPrefixOrdering(t *testing.T) {
	require.Equal(t, -1, compareKeys([]byte("a"), []byte("ab")))
	require.Equal(t, 1, compareKeys([]byte("ab"), []byte("a")))
	require.Equal(t, 0, compareKeys([]byte("ab"), []byte("ab")))
}
