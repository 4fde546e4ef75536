// Package graph implements the append-only triple store: a capacity-
// bounded arena of triples plus a Robin-Hood open-addressing index
// keyed by (subject, predicate, object). It is the authoritative owner
// of all triple storage for a single logical graph.
package graph

import (
	"sync/atomic"

	"github.com/arx-os/tripcore/internal/errdefs"
	"github.com/arx-os/tripcore/internal/triple"
)

// InsertResult is the outcome of Insert.
type InsertResult int

const (
	Inserted InsertResult = iota
	Duplicate
	Full
)

func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "Inserted"
	case Duplicate:
		return "Duplicate"
	case Full:
		return "Full"
	default:
		return "Unknown"
	}
}

// hashSlot is one entry of the Robin-Hood table. It references a
// triple by array index rather than by pointer so the data array can
// stay a flat, append-only arena.
type hashSlot struct {
	hash     uint64
	index    uint32
	dist     int32
	occupied bool
}

// Stats is a snapshot of a Graph's performance counters.
type Stats struct {
	Hits    uint64
	Misses  uint64
	SIMDOps uint64
}

// Graph owns the triple arena and its Robin-Hood index. It is intended
// for single-writer use: Insert mutates the arena and table in place
// with no internal locking, so concurrent writers (or a writer
// overlapping a reader) must be serialized by the caller. Concurrent
// readers of an otherwise-idle Graph are safe. The zero value is not
// usable; construct with New.
type Graph struct {
	triples []triple.Triple
	slots   []hashSlot
	mask    uint64
	cap     int
	simd    bool

	hits    atomic.Uint64
	misses  atomic.Uint64
	simdOps atomic.Uint64
}

// New creates a Graph sized for initialCapacity triples. The hash
// table is sized to the next power of two strictly greater than
// 2*initialCapacity, so sustained load factor stays <= 0.5.
//
// enableSIMD requests the batched matcher path in FindPattern; it is
// advisory, the matcher still falls back to scalar for hardware that
// doesn't support it or tails shorter than the lane width.
func New(initialCapacity int, enableSIMD bool) (*Graph, error) {
	if initialCapacity <= 0 {
		return nil, errdefs.New(errdefs.KindCapacity, "initial capacity must be positive")
	}
	tableSize := nextPow2(2*initialCapacity + 1)
	return &Graph{
		triples: make([]triple.Triple, 0, initialCapacity),
		slots:   make([]hashSlot, tableSize),
		mask:    uint64(tableSize - 1),
		cap:     initialCapacity,
		simd:    enableSIMD,
	}, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Len returns the number of triples currently stored.
func (g *Graph) Len() int { return len(g.triples) }

// Cap returns the arena's fixed capacity.
func (g *Graph) Cap() int { return g.cap }

// Insert adds (s, p, o) to the graph. None of s, p, o may equal
// triple.Wildcard; doing so is a contract violation (err != nil),
// reported without mutating state.
func (g *Graph) Insert(s, p, o uint32, kind triple.TermKind, graphID uint16) (InsertResult, error) {
	if s == triple.Wildcard || p == triple.Wildcard || o == triple.Wildcard {
		return Full, errdefs.New(errdefs.KindWildcardID, "triple fields may not equal the wildcard sentinel")
	}
	if len(g.triples) >= cap(g.triples) {
		return Full, nil
	}

	h := hashSPO(s, p, o)
	tableLen := len(g.slots)
	pos := h & g.mask
	var d int32

	// Fused duplicate check + insertion-point search: the first slot
	// that is empty or whose resident has a strictly smaller probe
	// distance than ours is, by the Robin-Hood invariant, the point at
	// which (s,p,o) would have been inserted had it been present —
	// so reaching it without a match proves no duplicate exists.
	for {
		slot := g.slots[pos]
		if !slot.occupied || slot.dist < d {
			break
		}
		if slot.hash == h {
			cand := g.triples[slot.index]
			if cand.Subject == s && cand.Predicate == p && cand.Object == o {
				g.hits.Add(1)
				return Duplicate, nil
			}
		}
		d++
		pos = (pos + 1) & g.mask
		if int(d) >= tableLen {
			return Full, nil
		}
	}

	idx := uint32(len(g.triples))
	g.triples = append(g.triples, triple.New(s, p, o, kind, graphID))
	entry := hashSlot{hash: h, index: idx, dist: d, occupied: true}

	for {
		slot := &g.slots[pos]
		if !slot.occupied {
			*slot = entry
			g.misses.Add(1)
			return Inserted, nil
		}
		if entry.dist > slot.dist {
			entry, *slot = *slot, entry
		}
		entry.dist++
		pos = (pos + 1) & g.mask
		if int(entry.dist) >= tableLen {
			// Unreachable in a correctly sized table (load factor is
			// kept <= 0.5 by New), kept as a defensive backstop.
			g.triples = g.triples[:len(g.triples)-1]
			return Full, nil
		}
	}
}

// Contains reports whether (s, p, o) is stored exactly. Wildcards are
// not accepted here; since no real triple can ever contain the
// wildcard sentinel (Insert rejects it), passing one simply can never
// match and costs nothing extra to allow.
func (g *Graph) Contains(s, p, o uint32) bool {
	h := hashSPO(s, p, o)
	tableLen := len(g.slots)
	pos := h & g.mask
	var d int32

	for {
		slot := g.slots[pos]
		if !slot.occupied || slot.dist < d {
			g.misses.Add(1)
			return false
		}
		if slot.hash == h {
			cand := g.triples[slot.index]
			if cand.Subject == s && cand.Predicate == p && cand.Object == o {
				g.hits.Add(1)
				return true
			}
		}
		d++
		pos = (pos + 1) & g.mask
		if int(d) >= tableLen {
			g.misses.Add(1)
			return false
		}
	}
}

// PrefetchRange is a hint that the caller is about to scan
// [start, start+count) of the triple array; it has no semantic effect
// and never fails. A hint with a negative or past-the-end start, or a
// non-positive count, is ignored; an end past the array is clamped.
func (g *Graph) PrefetchRange(start, count int) {
	if start < 0 || start >= len(g.triples) || count <= 0 {
		return
	}
	end := start + count
	if end > len(g.triples) {
		end = len(g.triples)
	}
	var sink uint32
	for i := start; i < end; i++ {
		sink += g.triples[i].Subject
	}
	_ = sink
}

// Stats returns a snapshot of the hit/miss/SIMD-op counters. They are
// advisory and relaxed-ordered; correctness never depends on them.
func (g *Graph) Stats() Stats {
	return Stats{
		Hits:    g.hits.Load(),
		Misses:  g.misses.Load(),
		SIMDOps: g.simdOps.Load(),
	}
}

// SIMDEnabled reports whether this graph was constructed with the
// batched matcher path requested.
func (g *Graph) SIMDEnabled() bool { return g.simd }

// TripleAt returns the triple stored at arena index idx, as produced by
// FindPattern's out slice. It panics if idx is out of range, matching
// slice indexing semantics rather than returning a zero value a caller
// could mistake for a real triple.
func (g *Graph) TripleAt(idx uint32) triple.Triple { return g.triples[idx] }
