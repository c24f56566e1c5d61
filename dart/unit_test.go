package dart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafUnitValueRoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 5, 255, 1 << 10, 1<<22 - 1, 1 << 22, 1<<22 + 1, maxValue}
	for _, v := range cases {
		u, err := newLeafUnit(v)
		require.NoError(t, err)
		require.True(t, u.isLeaf())
		require.Equal(t, v, u.value())
	}
}

func TestLeafUnitValueOutOfRange(t *testing.T) {
	_, err := newLeafUnit(maxValue + 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValueOutOfRange))
}

func TestInternalUnitRoundTrip(t *testing.T) {
	u, err := newInternalUnit(true, 12345, 0x5a)
	require.NoError(t, err)
	require.False(t, u.isLeaf())
	require.True(t, u.hasLeaf())
	require.Equal(t, uint32(12345), u.base())
	require.Equal(t, byte(0x5a), u.check())

	u2, err := newInternalUnit(false, maxInternalBase, 0x00)
	require.NoError(t, err)
	require.False(t, u2.hasLeaf())
	require.Equal(t, maxInternalBase, u2.base())
}

func TestInternalUnitOffsetOverflow(t *testing.T) {
	_, err := newInternalUnit(false, maxInternalBase+1, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOffsetOverflow))
}

func TestUnitWithCheckAndHasLeaf(t *testing.T) {
	u, err := newInternalUnit(false, 7, 0x10)
	require.NoError(t, err)
	require.False(t, u.hasLeaf())

	u = u.withHasLeaf(true)
	require.True(t, u.hasLeaf())
	require.Equal(t, uint32(7), u.base())

	u = u.withCheck(0x20)
	require.Equal(t, byte(0x20), u.check())
	require.Equal(t, uint32(7), u.base())
}
