package dart

// freeList is a circular doubly linked list of unused unit indices in an
// image under construction. It starts out covering every tracked index
// and shrinks as the builder reserves slots for nodes; it grows when the
// image itself grows.
//
// Grounded on original_source/src/builder.rs::DoubleArrayBlock's
// head_unused/next_unused/prev_unused ring, de-blocked into one list
// spanning the whole image rather than original_source's 256-unit
// partitions (see DESIGN.md, Open Question 2).
type freeList struct {
	next []uint32
	prev []uint32
	used []bool
	head uint32
}

const noFreeIndex = ^uint32(0)

func newFreeList(n uint32) *freeList {
	fl := &freeList{
		next: make([]uint32, n),
		prev: make([]uint32, n),
		used: make([]bool, n),
		head: noFreeIndex,
	}
	if n > 0 {
		fl.head = 0
		for i := uint32(0); i < n; i++ {
			fl.next[i] = (i + 1) % n
			fl.prev[i] = (i - 1 + n) % n
		}
	}
	return fl
}

// grow appends n additional free indices, splicing them into the ring
// right before the current head (i.e. after the current tail).
func (fl *freeList) grow(n uint32) {
	if n == 0 {
		return
	}
	base := uint32(len(fl.next))
	fl.next = append(fl.next, make([]uint32, n)...)
	fl.prev = append(fl.prev, make([]uint32, n)...)
	fl.used = append(fl.used, make([]bool, n)...)
	newLen := base + n
	for i := base; i < newLen; i++ {
		fl.next[i] = i + 1
		fl.prev[i] = i - 1
	}
	if fl.head == noFreeIndex {
		fl.head = base
		fl.next[newLen-1] = base
		fl.prev[base] = newLen - 1
		return
	}
	tail := fl.prev[fl.head]
	fl.next[tail] = base
	fl.prev[base] = tail
	fl.next[newLen-1] = fl.head
	fl.prev[fl.head] = newLen - 1
}

// isFree reports whether index is unused. An index beyond the list's
// tracked range is considered free: the image will grow to cover it.
func (fl *freeList) isFree(index uint32) bool {
	if index >= uint32(len(fl.used)) {
		return true
	}
	return !fl.used[index]
}

// reserve marks index as used, unlinking it from the free ring. A no-op
// if index is already used or untracked.
func (fl *freeList) reserve(index uint32) {
	if index >= uint32(len(fl.used)) || fl.used[index] {
		return
	}
	fl.used[index] = true
	n, p := fl.next[index], fl.prev[index]
	if n == index {
		fl.head = noFreeIndex
		return
	}
	fl.next[p] = n
	fl.prev[n] = p
	if fl.head == index {
		fl.head = n
	}
}

// firstFree returns the ring's current head, or noFreeIndex if every
// tracked index is reserved.
func (fl *freeList) firstFree() uint32 {
	return fl.head
}

// walkFree visits tracked free indices starting at head, in ring order,
// until visit returns false or every tracked free index has been seen
// once.
func (fl *freeList) walkFree(visit func(index uint32) bool) {
	if fl.head == noFreeIndex {
		return
	}
	i := fl.head
	for {
		if !visit(i) {
			return
		}
		i = fl.next[i]
		if i == fl.head {
			return
		}
	}
}
