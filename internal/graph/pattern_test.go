package graph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arx-os/tripcore/internal/triple"
)

// TestSIMDMatchesScalar is the P6 check (SIMD ≡ scalar): for a nontrivial
// random graph, the batched and scalar matchers must return identical
// index sequences for the same set of patterns.
func TestSIMDMatchesScalar(t *testing.T) {
	const n = 10000
	rng := rand.New(rand.NewSource(42))

	simdGraph, err := New(n, true)
	require.NoError(t, err)
	scalarGraph, err := New(n, false)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		s := uint32(rng.Intn(1000))
		p := uint32(rng.Intn(10))
		o := uint32(rng.Intn(1000))
		// Duplicate draws return (Duplicate, nil) from both graphs in
		// lockstep, so no special-casing is needed to keep them identical.
		_, err := simdGraph.Insert(s, p, o, triple.IRI, 0)
		require.NoError(t, err)
		_, err = scalarGraph.Insert(s, p, o, triple.IRI, 0)
		require.NoError(t, err)
	}

	bufA := make([]uint32, n)
	bufB := make([]uint32, n)

	for i := 0; i < 1000; i++ {
		pat := randomPattern(rng)
		na := simdGraph.FindPattern(pat, bufA, n)
		nb := scalarGraph.FindPattern(pat, bufB, n)
		require.Equal(t, nb, na, "pattern %+v", pat)
		require.Equal(t, bufB[:nb], bufA[:na], "pattern %+v", pat)
	}
}

func randomPattern(rng *rand.Rand) triple.Pattern {
	pick := func(max int) uint32 {
		if rng.Intn(4) == 0 {
			return triple.Wildcard
		}
		return uint32(rng.Intn(max))
	}
	return triple.Pattern{
		Subject:   pick(1000),
		Predicate: pick(10),
		Object:    pick(1000),
	}
}

func TestBatchedMatchFallsBackWhenTailShort(t *testing.T) {
	g, err := New(5, true)
	require.NoError(t, err)
	for i := uint32(0); i < 5; i++ {
		_, err := g.Insert(i, 1, i, triple.IRI, 0)
		require.NoError(t, err)
	}
	buf := make([]uint32, 5)
	n := g.FindPattern(triple.Pattern{Subject: triple.Wildcard, Predicate: 1, Object: triple.Wildcard}, buf, 5)
	require.Equal(t, 5, n)
}
