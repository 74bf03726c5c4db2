package frozenmap

import "github.com/cespare/xxhash/v2"

// HashFunc maps an arbitrary byte sequence to a 64-bit value. It must
// be deterministic: equal inputs always produce equal outputs. No
// collision resistance is required beyond keeping probe chains short.
type HashFunc func([]byte) uint64

// DefaultHashFunc is used when no WithHashFunc option is given.
func DefaultHashFunc() HashFunc {
	return xxhash.Sum64
}
