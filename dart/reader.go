package dart

// Reader is a read-only handle on a trie image, wrapping the functions
// search.go and prefix.go implement directly on Image. It exists so
// callers that only ever search (never build) can hold one handle rather
// than threading an *Image through their own code.
type Reader struct {
	im *Image
}

// NewReader wraps data, previously produced by Build or Image.Bytes, as a
// Reader. data is retained, not copied.
func NewReader(data []byte) (*Reader, error) {
	im, err := NewImage(data)
	if err != nil {
		return nil, err
	}
	return &Reader{im: im}, nil
}

// ExactMatchSearch reports the value stored for key, if any.
func (r *Reader) ExactMatchSearch(key []byte) (value uint32, ok bool, err error) {
	return ExactMatchSearch(r.im, key)
}

// CommonPrefixSearch returns a cursor over every non-empty stored prefix
// of key.
func (r *Reader) CommonPrefixSearch(key []byte) (*PrefixCursor, error) {
	return NewPrefixCursor(r.im, key)
}

// Image returns the underlying image, for callers that need direct
// access (serialization, inspection).
func (r *Reader) Image() *Image {
	return r.im
}
