package frozenmap

import "errors"

// Bytes constrains keys to string- or byte-slice-like types.
type Bytes interface{ ~string | ~[]byte }

// Entry is a single key-value record accepted by NewMap.
type Entry[K Bytes, V any] struct {
	Key   K
	Value V
}

var (
	// ErrEmptyInput is returned when construction is attempted with
	// zero keys. Capacity computation is undefined at zero.
	ErrEmptyInput = errors.New("frozenmap: input must not be empty")

	// ErrDuplicateKey is returned when two inputs share identical key
	// bytes, regardless of their position in the input order.
	ErrDuplicateKey = errors.New("frozenmap: duplicate key")
)
