package frozenmap

import "bytes"

const (
	slotEmpty uint8 = 0
	slotFull  uint8 = 1
)

type options struct {
	hashFunc HashFunc
}

type Option func(*options)

// Override the default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(o *options) {
		o.hashFunc = f
	}
}

// table is the engine shared by Map and Set. It is built once over a
// fixed key set and never grows, rehashes or removes entries. Slot
// descriptors are manipulated through the nodeRef capability, so the
// engine does not know whether a payload exists.
type table[N any, P nodeRef[N]] struct {
	ctrl  []uint8
	nodes []N
	bytes []byte

	mask     uint64
	numKeys  int
	hashFunc HashFunc
}

func (t *table[N, P]) init(opts ...Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.hashFunc == nil {
		o.hashFunc = DefaultHashFunc()
	}
	t.hashFunc = o.hashFunc
}

// build places every key into a power-of-two slot ring via linear
// probing with wraparound, then walks the slots in index order and
// packs the key bytes into one contiguous buffer. Duplicate inputs
// occupy distinct slots; uniqueness is an adapter concern.
//
// Callers must reject an empty key list before build; the capacity
// mask is undefined at zero keys.
func (t *table[N, P]) build(keys [][]byte) {
	numKeys := len(keys)
	// Smallest power of two keeping numKeys/capacity <= 0.8, i.e.
	// capacity >= ceil(numKeys*5/4).
	capacity := nextPowerOf2(uint64(numKeys*5+3) / 4)
	mask := capacity - 1

	mapping := make([]int, capacity)
	for i := range mapping {
		mapping[i] = -1
	}

	total := 0
	for i, key := range keys {
		pos := t.hashFunc(key) & mask
		for mapping[pos] >= 0 {
			pos = (pos + 1) & mask
		}
		mapping[pos] = i
		total += len(key)
	}

	t.ctrl = make([]uint8, capacity)
	t.nodes = make([]N, capacity)
	t.bytes = make([]byte, 0, total)
	t.mask = mask
	t.numKeys = numKeys

	for pos, i := range mapping {
		if i < 0 {
			continue
		}

		key := keys[i]
		P(&t.nodes[pos]).init(len(t.bytes), len(key))
		t.bytes = append(t.bytes, key...)
		t.ctrl[pos] = slotFull
	}
}

// lookup returns the first slot along the probe sequence whose stored
// bytes equal key. An empty slot terminates the probe; at least a
// fifth of the ring stays empty by construction, so the loop cannot
// wrap forever. The first-match semantics are what lets the adapters
// detect duplicates after build.
func (t *table[N, P]) lookup(key []byte) (int, bool) {
	pos := t.hashFunc(key) & t.mask
	for t.ctrl[pos] == slotFull {
		if bytes.Equal(key, t.keyAt(pos)) {
			return int(pos), true
		}

		pos = (pos + 1) & t.mask
	}

	return 0, false
}

// keyAt reproduces the key bytes stored in an occupied slot. A
// zero-length key yields an empty view at a valid offset.
func (t *table[N, P]) keyAt(pos uint64) []byte {
	ptr, n := P(&t.nodes[pos]).span()
	return t.bytes[ptr : ptr+n]
}

func (t *table[N, P]) stats() Stats {
	s := Stats{
		NumKeys:  t.numKeys,
		Capacity: len(t.ctrl),
		Load:     float64(t.numKeys) / float64(len(t.ctrl)),
		BytesLen: len(t.bytes),
	}

	for pos := range t.ctrl {
		if t.ctrl[pos] != slotFull {
			continue
		}

		home := t.hashFunc(t.keyAt(uint64(pos))) & t.mask
		if probe := int((uint64(pos) - home) & t.mask); probe > s.MaxProbe {
			s.MaxProbe = probe
		}
	}

	return s
}
