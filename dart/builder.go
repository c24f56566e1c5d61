package dart

import (
	"github.com/google/uuid"

	"github.com/forestrie/go-dartrie/internal/tracelog"
)

// Builder constructs a double-array trie image from a sorted keyset.
// Build is the package-level convenience for the common case of a
// Builder with no diagnostics attached.
type Builder struct {
	logger *tracelog.Logger
}

// NewBuilder returns a Builder that logs through logger. A nil logger is
// accepted and behaves like tracelog.Nop().
func NewBuilder(logger *tracelog.Logger) *Builder {
	if logger == nil {
		logger = tracelog.Nop()
	}
	return &Builder{logger: logger}
}

// Build normalizes and partitions kvs into a double-array trie image.
// Build is a package-level shorthand for NewBuilder(nil).Build(kvs).
func Build(kvs []KeyValue) (*Image, error) {
	return NewBuilder(nil).Build(kvs)
}

// Build normalizes kvs (see normalizeKeyset) and recursively partitions
// the result into a freshly allocated Image.
//
// Grounded on original_source/src/builder.rs::DoubleArrayBuilder::build,
// with the per-sibling-group base search cross-checked against
// other_examples/wyfcoding-pkg__double_array_trie.go's findBase loop.
func (b *Builder) Build(kvs []KeyValue) (*Image, error) {
	normalized, err := normalizeKeyset(kvs)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New()
	logger := b.logger.With("build_session", sessionID.String())
	logger.Debugf("building trie: %d keys", len(normalized))

	bs := newBuildState(normalized, logger)
	if len(normalized) > 0 {
		if err := bs.buildRecursive(0, len(normalized), 0, 0); err != nil {
			logger.Errorf("build failed: %v", err)
			return nil, err
		}
	}

	logger.Debugf("build complete: %d units", bs.im.Len())
	return bs.im, nil
}

// buildState carries the mutable working storage for one Build call: the
// normalized keyset, the image under construction, and the free list
// tracking which of its units are still unassigned.
type buildState struct {
	keys      []KeyValue
	im        *Image
	free      *freeList
	usedBases map[uint32]struct{}
	logger    *tracelog.Logger
}

func newBuildState(keys []KeyValue, logger *tracelog.Logger) *buildState {
	im, _ := NewImage(make([]byte, unitSize)) // unit 0 is the root
	free := newFreeList(1)
	free.reserve(0)
	return &buildState{
		keys:      keys,
		im:        im,
		free:      free,
		usedBases: make(map[uint32]struct{}),
		logger:    logger,
	}
}

// labelGroup is the contiguous run of keys[begin:end] that share the same
// byte at a given depth.
type labelGroup struct {
	label      byte
	begin, end int
}

// collectLabels groups keys[begin:end], which must be sorted ascending,
// into runs sharing the same byte at position depth. Every key in range
// is at least depth+1 bytes long, since normalizeKeyset terminates every
// key and sorting places a key strictly before any of its own extensions.
func collectLabels(keys []KeyValue, begin, end, depth int) []labelGroup {
	var groups []labelGroup
	i := begin
	for i < end {
		label := keys[i].Key[depth]
		j := i + 1
		for j < end && keys[j].Key[depth] == label {
			j++
		}
		groups = append(groups, labelGroup{label: label, begin: i, end: j})
		i = j
	}
	return groups
}

// buildRecursive assigns the node at nodeIndex its base offset and, for
// every byte value present at depth across keys[begin:end], reserves and
// fills a child slot - either a leaf holding a stored value (for the
// terminator label) or a placeholder internal unit recursed into next.
func (bs *buildState) buildRecursive(begin, end, depth int, nodeIndex uint32) error {
	groups := collectLabels(bs.keys, begin, end, depth)

	labels := make([]byte, len(groups))
	for i, g := range groups {
		labels[i] = g.label
	}

	offset, err := bs.findOffset(labels)
	if err != nil {
		return err
	}
	bs.usedBases[offset] = struct{}{}

	var maxIndex uint32
	for _, l := range labels {
		if idx := offset ^ uint32(l); idx > maxIndex {
			maxIndex = idx
		}
	}
	bs.ensureCapacity(maxIndex)

	hasLeaf := false
	for _, g := range groups {
		idx := offset ^ uint32(g.label)
		bs.free.reserve(idx)
		if g.label == terminator {
			hasLeaf = true
			leaf, err := newLeafUnit(bs.keys[g.begin].Value)
			if err != nil {
				return err
			}
			bs.im.setUnitAt(idx, leaf)
			continue
		}
		placeholder, err := newInternalUnit(false, 0, g.label)
		if err != nil {
			return err
		}
		bs.im.setUnitAt(idx, placeholder)
	}

	cur, err := bs.im.UnitAt(nodeIndex)
	if err != nil {
		return err
	}
	self, err := newInternalUnit(hasLeaf, offset, cur.check())
	if err != nil {
		return err
	}
	bs.im.setUnitAt(nodeIndex, self)

	bs.logger.Debugf("node %d: depth=%d base=%d labels=%d hasLeaf=%t", nodeIndex, depth, offset, len(groups), hasLeaf)

	for _, g := range groups {
		if g.label == terminator {
			continue
		}
		idx := offset ^ uint32(g.label)
		if err := bs.buildRecursive(g.begin, g.end, depth+1, idx); err != nil {
			return err
		}
	}
	return nil
}

// findOffset searches for a base such that offset^label is an unused
// (or not-yet-allocated) unit index for every label in labels, and offset
// itself is not already assigned as another node's base, scanning
// candidates starting at the free list's head. Grounded on
// original_source/src/builder.rs::DoubleArrayBlock::find_offset, with
// the per-block search de-blocked into a single bounded linear scan per
// Open Question 2 (see DESIGN.md).
//
// The used-base check matters even though every label's target slot is
// checked for freeness: check stores the label a unit was reached by,
// not which parent owns it, so two different parents sharing the same
// base with disjoint label sets would not collide at reservation time,
// yet a query from one parent on a byte that happens to be the other
// parent's label would compute the same base^b index and wrongly accept
// the other parent's child as its own.
func (bs *buildState) findOffset(labels []byte) (uint32, error) {
	start := bs.free.firstFree()
	if start == noFreeIndex {
		start = uint32(bs.im.Len())
	}
	first := uint32(labels[0])

	const searchSlack = 256
	limit := maxInternalBase + searchSlack
	for candidate := start; candidate < limit; candidate++ {
		offset := candidate ^ first
		if offset > maxInternalBase {
			continue
		}
		if bs.offsetFits(offset, labels) {
			return offset, nil
		}
	}
	return 0, wrapOffsetOverflow(limit, maxInternalBase)
}

// offsetFits reports whether offset is unassigned and offset^label is
// free for every label.
func (bs *buildState) offsetFits(offset uint32, labels []byte) bool {
	if _, used := bs.usedBases[offset]; used {
		return false
	}
	for _, l := range labels {
		if !bs.free.isFree(offset ^ uint32(l)) {
			return false
		}
	}
	return true
}

// ensureCapacity grows the image and free list so that every index up to
// and including maxIndex is tracked.
func (bs *buildState) ensureCapacity(maxIndex uint32) {
	need := int64(maxIndex) + 1 - int64(bs.im.Len())
	if need <= 0 {
		return
	}
	bs.im.grow(uint32(need))
	bs.free.grow(uint32(need))
}
