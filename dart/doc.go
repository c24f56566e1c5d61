// Package dart implements a static double-array trie: a compact,
// immutable mapping from byte-string keys to 31-bit unsigned values,
// encoded as a flat sequence of 32-bit units addressed by XOR-offset
// transitions.
//
// Build constructs an Image from a sorted, duplicate-free keyset.
// ExactMatchSearch and PrefixCursor read an Image without allocating
// beyond the cursor itself; neither mutates it. An Image built by this
// package, or loaded from bytes produced by one, is safe for concurrent
// reads from multiple goroutines with no further synchronization.
//
// Functional primitives style: small composable functions operating on
// unit and Image rather than a heap of node objects, explicit bit
// layouts, and index arithmetic in the hot paths (search, prefix walk).
package dart
