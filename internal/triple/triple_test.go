package triple

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeIsSixteenBytes(t *testing.T) {
	require.Equal(t, uintptr(16), unsafe.Sizeof(Triple{}))
	require.Equal(t, 16, Size)
}

func TestNewPacksFields(t *testing.T) {
	tr := New(1, 2, 3, Literal, 7)
	assert.Equal(t, uint32(1), tr.Subject)
	assert.Equal(t, uint32(2), tr.Predicate)
	assert.Equal(t, uint32(3), tr.Object)
	assert.Equal(t, Literal, tr.Kind())
	assert.Equal(t, uint16(7), tr.GraphID)
	assert.False(t, tr.Inferred())
	assert.False(t, tr.Tombstoned())
}

func TestPatternMatchesWildcards(t *testing.T) {
	tr := New(1, 2, 3, IRI, 0)

	cases := []struct {
		name string
		pat  Pattern
		want bool
	}{
		{"exact", Pattern{1, 2, 3}, true},
		{"subject wildcard", Pattern{Wildcard, 2, 3}, true},
		{"all wildcard", Pattern{Wildcard, Wildcard, Wildcard}, true},
		{"object mismatch", Pattern{1, 2, 9}, false},
		{"predicate mismatch", Pattern{1, 9, 3}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.pat.Matches(tr))
		})
	}
}

func TestIdentity(t *testing.T) {
	tr := New(10, 20, 30, Blank, 1)
	s, p, o := tr.Identity()
	assert.Equal(t, uint32(10), s)
	assert.Equal(t, uint32(20), p)
	assert.Equal(t, uint32(30), o)
}

func TestMarshalBinaryLength(t *testing.T) {
	tr := New(1, 2, 3, IRI, 0)
	assert.Len(t, tr.MarshalBinary(), Size)
}
