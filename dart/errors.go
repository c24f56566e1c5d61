package dart

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Build and the decode path. Callers should
// match against these with errors.Is; wrapped context is attached with
// fmt.Errorf("%w: ...") so the underlying sentinel survives.
var (
	ErrInputNotSorted  = errors.New("dart: input keys not sorted ascending")
	ErrDuplicateKey    = errors.New("dart: duplicate key after terminator normalization")
	ErrValueOutOfRange = errors.New("dart: value exceeds 31-bit range")
	ErrOffsetOverflow  = errors.New("dart: base offset exceeds addressable range")
	ErrImageMalformed  = errors.New("dart: image is malformed")
)

func wrapValueOutOfRange(value, max uint32) error {
	return fmt.Errorf("%w: value %d exceeds max %d", ErrValueOutOfRange, value, max)
}

func wrapOffsetOverflow(base, max uint32) error {
	return fmt.Errorf("%w: base %d exceeds max %d", ErrOffsetOverflow, base, max)
}

func wrapImageMalformed(reason string) error {
	return fmt.Errorf("%w: %s", ErrImageMalformed, reason)
}

func wrapNotSorted(index int) error {
	return fmt.Errorf("%w: at key index %d", ErrInputNotSorted, index)
}

func wrapDuplicateKey(index int) error {
	return fmt.Errorf("%w: at key index %d", ErrDuplicateKey, index)
}
