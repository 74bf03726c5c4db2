package frozenmap

import "fmt"

// Map is a build-once hash map for byte-string keys. The key set is
// frozen at construction; values can be replaced in place via GetPtr.
type Map[K Bytes, V any] struct {
	t table[mapNode[V], *mapNode[V]]
}

// NewMap builds a map from records. Placement uses the keys only;
// values are written in a second pass.
//
// Returns ErrEmptyInput when records is empty and ErrDuplicateKey when
// two records share identical key bytes. On error no map is returned.
func NewMap[K Bytes, V any](records []Entry[K, V], opts ...Option) (*Map[K, V], error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	keys := make([][]byte, len(records))
	for i := range records {
		keys[i] = asBytes(records[i].Key)
	}

	var m Map[K, V]
	m.t.init(opts...)
	m.t.build(keys)

	// A duplicate's second occurrence resolves to the same slot as its
	// first, because lookup returns the first matching slot along the
	// probe sequence.
	seen := make([]bool, len(m.t.nodes))
	for i := range records {
		pos, _ := m.t.lookup(keys[i])
		if seen[pos] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, keys[i])
		}

		m.t.nodes[pos].val = records[i].Value
		seen[pos] = true
	}

	return &m, nil
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if pos, ok := m.t.lookup(asBytes(key)); ok {
		return m.t.nodes[pos].val, true
	}

	var zero V
	return zero, false
}

// GetPtr returns a pointer to the value stored for key, or nil if the
// key is absent. Writing through the pointer replaces the value in
// place; key bytes and table shape never change.
func (m *Map[K, V]) GetPtr(key K) *V {
	if pos, ok := m.t.lookup(asBytes(key)); ok {
		return &m.t.nodes[pos].val
	}

	return nil
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.t.lookup(asBytes(key))
	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.t.numKeys }

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.Len() == 0 }

// Stats returns construction diagnostics for the underlying table.
func (m *Map[K, V]) Stats() Stats { return m.t.stats() }
