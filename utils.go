package frozenmap

import (
	"math/bits"
	"unsafe"
)

// Returns the smallest power of 2 >= v.
func nextPowerOf2(v uint64) uint64 {
	return uint64(1) << bits.Len64(v-1)
}

// asBytes reinterprets a string- or byte-slice-like key as a byte
// slice without copying. Both representations start with a data
// pointer followed by a length, so reading the first two words of the
// header is valid for either.
//
//go:nocheckptr
func asBytes[K Bytes](key K) []byte {
	h := (*struct {
		data unsafe.Pointer
		n    int
	})(unsafe.Pointer(&key))

	return unsafe.Slice((*byte)(h.data), h.n)
}
