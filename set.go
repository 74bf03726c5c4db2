package frozenmap

import "fmt"

// Set is a build-once hash set for byte-string keys. It follows the
// same construction discipline as Map but stores no payload.
type Set[K Bytes] struct {
	t table[setNode, *setNode]
}

// NewSet builds a set from keys.
//
// Returns ErrEmptyInput when keys is empty and ErrDuplicateKey when
// two keys share identical bytes. On error no set is returned.
func NewSet[K Bytes](keys []K, opts ...Option) (*Set[K], error) {
	if len(keys) == 0 {
		return nil, ErrEmptyInput
	}

	raw := make([][]byte, len(keys))
	for i := range keys {
		raw[i] = asBytes(keys[i])
	}

	var s Set[K]
	s.t.init(opts...)
	s.t.build(raw)

	seen := make([]bool, len(s.t.nodes))
	for i := range raw {
		pos, _ := s.t.lookup(raw[i])
		if seen[pos] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, raw[i])
		}

		seen[pos] = true
	}

	return &s, nil
}

// Has reports whether key is present.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.t.lookup(asBytes(key))
	return ok
}

// Len returns the number of keys.
func (s *Set[K]) Len() int { return s.t.numKeys }

// IsEmpty reports whether the set has no keys.
func (s *Set[K]) IsEmpty() bool { return s.Len() == 0 }

// Stats returns construction diagnostics for the underlying table.
func (s *Set[K]) Stats() Stats { return s.t.stats() }
