package dart

// PrefixCursor performs a lazy common-prefix search: it walks key one byte
// at a time and yields a (value, length) pair each time the walked-so-far
// prefix is itself a stored key, without allocating and without
// re-walking already-consumed bytes on repeated calls. Only prefixes of at
// least one byte are reported: a stored empty key is never yielded.
//
// Grounded on original_source/src/lib.rs::CommonPrefixSearch, whose next()
// method this mirrors; adapted to a Next() pull method since Go has no
// Iterator trait to implement against.
type PrefixCursor struct {
	im   *Image
	key  []byte
	pos  int
	cur  unit
	done bool
}

// NewPrefixCursor starts a cursor over key against im, rooted at unit 0.
func NewPrefixCursor(im *Image, key []byte) (*PrefixCursor, error) {
	root, err := im.UnitAt(0)
	if err != nil {
		return nil, err
	}
	return &PrefixCursor{im: im, key: key, cur: root}, nil
}

// Next advances the cursor by as many key bytes as needed to reach the
// next stored prefix. ok is false once key is exhausted or a transition
// fails to match; a failed transition is permanent - once Next returns
// ok=false because of it, every later call also returns ok=false, even if
// bytes of key remain unconsumed.
func (c *PrefixCursor) Next() (value uint32, length int, ok bool) {
	if c.done {
		return 0, 0, false
	}
	for c.pos < len(c.key) {
		next, found := stepByte(c.im, c.cur, c.key[c.pos])
		if !found {
			c.done = true
			return 0, 0, false
		}
		c.cur = next
		c.pos++
		if !next.hasLeaf() {
			continue
		}
		leaf, err := c.im.UnitAt(next.base() ^ uint32(terminator))
		if err != nil || !leaf.isLeaf() {
			continue
		}
		return leaf.value(), c.pos, true
	}
	c.done = true
	return 0, 0, false
}
