package dart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTestImage constructs a minimal hand-wired trie for "a"->7 and
// "ab"->9, exercising the codec and search logic independently of Builder.
//
// Layout (unit index: role):
//
//	0:  root, base=96          (96 ^ 'a' == 1)
//	1:  internal, check='a', hasLeaf=true, base=2   (2^0x00==2, 2^'b'==96)
//	2:  leaf, value=7          (terminator child of unit 1)
//	3:  leaf, value=9          (terminator child of unit 96)
//	96: internal, check='b', hasLeaf=true, base=3   (3^0x00==3)
func buildTestImage(t *testing.T) *Image {
	t.Helper()
	im, err := NewImage(make([]byte, 97*unitSize))
	require.NoError(t, err)

	root, err := newInternalUnit(false, 96, 0)
	require.NoError(t, err)
	im.setUnitAt(0, root)

	u1, err := newInternalUnit(true, 2, 'a')
	require.NoError(t, err)
	im.setUnitAt(1, u1)

	leaf7, err := newLeafUnit(7)
	require.NoError(t, err)
	im.setUnitAt(2, leaf7)

	leaf9, err := newLeafUnit(9)
	require.NoError(t, err)
	im.setUnitAt(3, leaf9)

	u96, err := newInternalUnit(true, 3, 'b')
	require.NoError(t, err)
	im.setUnitAt(96, u96)

	return im
}

func TestExactMatchSearchFound(t *testing.T) {
	im := buildTestImage(t)

	v, ok, err := ExactMatchSearch(im, []byte("a"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(7), v)

	v, ok, err = ExactMatchSearch(im, []byte("ab"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(9), v)
}

// TestStepByteRejectsLeafTarget covers a unit whose check byte, read as a
// label, coincidentally equals the transition byte it was not reached by:
// the unit at the candidate child index is a leaf, so the apparent match
// on check must still be rejected.
func TestStepByteRejectsLeafTarget(t *testing.T) {
	im, err := NewImage(make([]byte, 2*unitSize))
	require.NoError(t, err)

	root, err := newInternalUnit(false, 0, 0)
	require.NoError(t, err)
	im.setUnitAt(0, root)

	c := byte(1)
	leaf, err := newLeafUnit(uint32(c) << 23) // leaf.check() == c by construction
	require.NoError(t, err)
	im.setUnitAt(uint32(c), leaf)

	_, found := stepByte(im, root, c)
	require.False(t, found, "a leaf unit must never be accepted as a byte-transition target")
}

func TestExactMatchSearchNotFound(t *testing.T) {
	im := buildTestImage(t)

	_, ok, err := ExactMatchSearch(im, []byte("x"))
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = ExactMatchSearch(im, []byte("abc"))
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = ExactMatchSearch(im, []byte(""))
	require.NoError(t, err)
	require.False(t, ok, "root has no terminator child in this fixture")
}
