package dart

// terminator is the implicit byte value appended to every key before it is
// stored, used to reach a node's associated leaf/value.
const terminator = byte(0x00)

// ExactMatchSearch walks im from the root by each byte of key in turn,
// returning the stored value and true if key was present at build time.
// A probe that runs off the end of the image, or whose check byte doesn't
// match, is treated as "not present" rather than an error: only an image
// with no root unit (zero length) is reported as an error.
//
// Grounded on original_source/src/lib.rs::exact_match_search_bytes,
// adapted to Image's bounds-checked accessor in place of raw slice
// indexing.
func ExactMatchSearch(im *Image, key []byte) (value uint32, ok bool, err error) {
	cur, err := im.UnitAt(0)
	if err != nil {
		return 0, false, err
	}
	for _, c := range key {
		next, found := stepByte(im, cur, c)
		if !found {
			return 0, false, nil
		}
		cur = next
	}
	// The terminal transition skips stepByte's check-byte comparison: a
	// leaf unit's check field holds the value's high bits, not a label,
	// so hasLeaf (set by the builder only when this exact slot is the
	// node's terminator leaf) is the only guard available or needed.
	if cur.isLeaf() || !cur.hasLeaf() {
		return 0, false, nil
	}
	leaf, err := im.UnitAt(cur.base() ^ uint32(terminator))
	if err != nil || !leaf.isLeaf() {
		return 0, false, nil
	}
	return leaf.value(), true, nil
}

// stepByte attempts the transition from cur labeled by c, reporting the
// child unit and whether the transition is valid: in bounds and guarded by
// a matching check byte.
func stepByte(im *Image, cur unit, c byte) (unit, bool) {
	if cur.isLeaf() {
		return 0, false
	}
	childIndex := cur.base() ^ uint32(c)
	child, err := im.UnitAt(childIndex)
	if err != nil {
		return 0, false
	}
	if child.isLeaf() {
		// A byte transition never targets a leaf; check's low 8 bits on a
		// leaf unit are the value's high bits, not a label, so they can
		// coincidentally equal c without this being a real transition.
		return 0, false
	}
	if child.check() != c {
		return 0, false
	}
	return child, true
}
