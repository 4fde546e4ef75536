package graph

import (
	"github.com/dgraph-io/ristretto"

	"github.com/arx-os/tripcore/internal/triple"
)

// ShadowCache is an optional admission-controlled L1 read cache layered
// on top of a Graph's Robin-Hood index. The Robin-Hood index stays
// authoritative: ShadowCache only memoizes Contains results and
// invalidates nothing on insert beyond the one entry it can fill in
// for free, so it can never diverge from correctness — a stale false
// cannot happen because entries are only ever written with a value
// just proven true by the Graph itself, and a hash collision between
// two distinct triples can never surface as a false positive because
// the cached value carries the full (s,p,o) and is re-checked on hit,
// the same way the Robin-Hood index re-checks a stored triple before
// trusting a hash match.
type ShadowCache struct {
	g     *Graph
	cache *ristretto.Cache
}

// cachedSPO is the value stored per cache key: the exact triple the
// key was computed from, so a hit can be verified before being trusted.
type cachedSPO struct {
	s, p, o uint32
}

// ShadowCacheConfig sizes the ristretto cache backing a ShadowCache.
// NumCounters should be roughly 10x the number of keys expected to be
// hot at once; MaxCost bounds total admitted cost (here, simply a
// count of cached keys, since every entry is one (s,p,o) value set
// with cost 1); BufferItems sizes ristretto's internal Get buffer.
type ShadowCacheConfig struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
}

// NewShadowCache wraps g with a bounded read cache sized per cfg.
func NewShadowCache(g *Graph, cfg ShadowCacheConfig) (*ShadowCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &ShadowCache{g: g, cache: cache}, nil
}

func cacheKey(s, p, o uint32) uint64 {
	return hashSPO(s, p, o)
}

// Contains first consults the shadow cache; a miss falls through to
// the Graph's Robin-Hood lookup and, only for a positive result,
// populates the cache. Negative results are never cached, since a
// later Insert of that exact triple must be observable without an
// explicit invalidation path. A cache hit whose stored triple doesn't
// match (s,p,o) — a 64-bit hash collision between two distinct
// triples — falls through to the Robin-Hood lookup exactly as a miss
// would, rather than being trusted.
func (s *ShadowCache) Contains(subject, predicate, object uint32) bool {
	key := cacheKey(subject, predicate, object)
	if v, ok := s.cache.Get(key); ok {
		cached := v.(cachedSPO)
		if cached.s == subject && cached.p == predicate && cached.o == object {
			return true
		}
	}
	found := s.g.Contains(subject, predicate, object)
	if found {
		s.cache.Set(key, cachedSPO{subject, predicate, object}, 1)
	}
	return found
}

// Insert delegates to the underlying Graph and warms the cache on a
// fresh insertion.
func (s *ShadowCache) Insert(subject, predicate, object uint32, kind triple.TermKind, graphID uint16) (InsertResult, error) {
	res, err := s.g.Insert(subject, predicate, object, kind, graphID)
	if err == nil && res == Inserted {
		s.cache.Set(cacheKey(subject, predicate, object), cachedSPO{subject, predicate, object}, 1)
	}
	return res, err
}

// Graph exposes the underlying Graph for operations the shadow cache
// does not wrap (FindPattern, Stats, ...).
func (s *ShadowCache) Graph() *Graph { return s.g }
