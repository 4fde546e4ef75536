package main

import (
	"github.com/arx-os/tripcore/internal/engineconfig"
	"github.com/arx-os/tripcore/internal/graph"
	"github.com/arx-os/tripcore/internal/shacl"
	"github.com/arx-os/tripcore/internal/triple"
	"github.com/arx-os/tripcore/internal/validator"
)

// debugStore bundles the in-memory engine instances tripledebug's
// subcommands all operate on. It lives for the duration of one process
// invocation; there is no persistence between runs, by design (the
// engine itself has none).
type debugStore struct {
	graph    *graph.Graph
	registry *shacl.Registry
	shadow   *graph.ShadowCache
}

func newDebugStore(cfg engineconfig.Config) (*debugStore, error) {
	g, err := graph.New(int(cfg.Graph.InitialCapacity), cfg.Graph.EnableSIMD)
	if err != nil {
		return nil, err
	}

	s := &debugStore{graph: g, registry: shacl.NewRegistry()}

	if cfg.Cache.Enabled {
		shadow, err := graph.NewShadowCache(g, graph.ShadowCacheConfig{
			NumCounters: cfg.Cache.NumCounters,
			MaxCost:     cfg.Cache.MaxCostBytes,
			BufferItems: cfg.Cache.BufferItems,
		})
		if err != nil {
			return nil, err
		}
		s.shadow = shadow
	}
	return s, nil
}

// reader returns the shadow cache when enabled, otherwise the raw
// graph — both satisfy validator.GraphReader.
func (s *debugStore) reader() validator.GraphReader {
	if s.shadow != nil {
		return s.shadow
	}
	return s.graph
}

func (s *debugStore) insert(subject, predicate, object uint32, kind triple.TermKind) (graph.InsertResult, error) {
	if s.shadow != nil {
		return s.shadow.Insert(subject, predicate, object, kind, 0)
	}
	return s.graph.Insert(subject, predicate, object, kind, 0)
}
