package frozenmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confRecords() []Entry[string, int] {
	return []Entry[string, int]{
		{"icdm", 0},
		{"idce", 1},
		{"sigmod", 2},
		{"sigir", 3},
		{"acl", 4},
	}
}

func TestMap_Basic(t *testing.T) {
	m, err := NewMap(confRecords())
	require.NoError(t, err)

	v, ok := m.Get("idce")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = m.Get("sigkdd")
	assert.False(t, ok)

	assert.Equal(t, 5, m.Len())
	assert.False(t, m.IsEmpty())
}

func TestMap_RoundTrip(t *testing.T) {
	records := append(confRecords(), Entry[string, int]{"", 5})

	m, err := NewMap(records)
	require.NoError(t, err)

	for _, r := range records {
		v, ok := m.Get(r.Key)
		require.True(t, ok, "key %q not found", r.Key)
		assert.Equal(t, r.Value, v)
		assert.True(t, m.Has(r.Key))
	}

	for _, miss := range []string{"sigkdd", "idml"} {
		_, ok := m.Get(miss)
		assert.False(t, ok)
		assert.False(t, m.Has(miss))
	}
}

func TestMap_GetPtr(t *testing.T) {
	m, err := NewMap(confRecords())
	require.NoError(t, err)

	p := m.GetPtr("idce")
	require.NotNil(t, p)
	*p = 100

	// The write is visible and isolated to its key.
	v, ok := m.Get("idce")
	require.True(t, ok)
	assert.Equal(t, 100, v)

	for _, r := range confRecords() {
		if r.Key == "idce" {
			continue
		}

		v, ok := m.Get(r.Key)
		require.True(t, ok)
		assert.Equal(t, r.Value, v)
	}

	assert.Nil(t, m.GetPtr("sigkdd"))
}

func TestMap_Duplicate(t *testing.T) {
	_, err := NewMap([]Entry[string, int]{{"icdm", 0}, {"icdm", 1}})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestMap_Duplicate_NonAdjacent(t *testing.T) {
	_, err := NewMap([]Entry[string, int]{{"icdm", 0}, {"idce", 1}, {"icdm", 2}})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestMap_EmptyInput(t *testing.T) {
	_, err := NewMap[string, int](nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestMap_BinaryKeys(t *testing.T) {
	records := []Entry[[]byte, string]{
		{[]byte{0x00}, "zero"},
		{[]byte{0x00, 0x00}, "zeros"},
		{[]byte{0xFF, 0x00, 0x7F}, "mixed"},
	}

	m, err := NewMap(records)
	require.NoError(t, err)

	for _, r := range records {
		v, ok := m.Get(r.Key)
		require.True(t, ok)
		assert.Equal(t, r.Value, v)
	}

	_, ok := m.Get([]byte{0x01})
	assert.False(t, ok)
}

func TestMap_WithHashFunc(t *testing.T) {
	// A terrible hash still yields a correct map, just longer chains.
	constHash := func([]byte) uint64 { return 7 }

	m, err := NewMap(confRecords(), WithHashFunc(constHash))
	require.NoError(t, err)

	for _, r := range confRecords() {
		v, ok := m.Get(r.Key)
		require.True(t, ok)
		assert.Equal(t, r.Value, v)
	}
}

func TestMap_WithHashFunc_Duplicate(t *testing.T) {
	constHash := func([]byte) uint64 { return 7 }

	_, err := NewMap([]Entry[string, int]{{"icdm", 0}, {"icdm", 1}}, WithHashFunc(constHash))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestMap_Stats(t *testing.T) {
	m, err := NewMap(confRecords())
	require.NoError(t, err)

	s := m.Stats()
	assert.Equal(t, 5, s.NumKeys)
	assert.Equal(t, 8, s.Capacity)
	assert.Equal(t, 0.625, s.Load)
	assert.Equal(t, len("icdm")+len("idce")+len("sigmod")+len("sigir")+len("acl"), s.BytesLen)
}
