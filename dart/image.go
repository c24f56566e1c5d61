package dart

import (
	"encoding/binary"
)

// unitSize is the width in bytes of one serialized unit.
const unitSize = 4

// Image is a zero-copy view over a serialized double-array trie: a flat
// sequence of little-endian 32-bit units. Search reads units through an
// Image; Builder writes them through one backed by a growable buffer.
//
// Grounded on urkle's IndexView: validate total length once at
// construction, then slice and index without further copying.
type Image struct {
	buf []byte
}

// NewImage wraps data as an Image. data's length must be a multiple of
// unitSize; data is retained, not copied.
func NewImage(data []byte) (*Image, error) {
	if len(data)%unitSize != 0 {
		return nil, wrapImageMalformed("length is not a multiple of the unit size")
	}
	return &Image{buf: data}, nil
}

// Len reports the number of units in the image.
func (im *Image) Len() int {
	return len(im.buf) / unitSize
}

// Bytes returns the image's underlying byte buffer, little-endian encoded.
func (im *Image) Bytes() []byte {
	return im.buf
}

// unitAt decodes the unit stored at index, which must be < Len().
func (im *Image) unitAt(index uint32) unit {
	off := int(index) * unitSize
	return unit(binary.LittleEndian.Uint32(im.buf[off : off+unitSize]))
}

// UnitAt decodes the unit stored at index, returning ErrImageMalformed if
// index is out of bounds.
func (im *Image) UnitAt(index uint32) (unit, error) {
	if index >= uint32(im.Len()) {
		return 0, wrapImageMalformed("unit index out of bounds")
	}
	return im.unitAt(index), nil
}

func (im *Image) setUnitAt(index uint32, u unit) {
	off := int(index) * unitSize
	binary.LittleEndian.PutUint32(im.buf[off:off+unitSize], uint32(u))
}

// grow appends n zero units to the image, returning the index of the first
// appended unit. Used by Builder when the free list runs out of room.
func (im *Image) grow(n uint32) uint32 {
	first := uint32(im.Len())
	im.buf = append(im.buf, make([]byte, int(n)*unitSize)...)
	return first
}
