// Package engineconfig defines and loads the tunables a Graph/Validator
// pair is constructed from: initial capacity, SIMD enablement, and the
// validator's bounded-scan ceiling.
package engineconfig

import "time"

// Config is the complete set of engine tunables. Every field has a
// usable zero-value-adjacent default, applied by Default.
type Config struct {
	Graph     GraphConfig     `yaml:"graph"`
	Validator ValidatorConfig `yaml:"validator"`
	Cache     CacheConfig     `yaml:"cache"`
}

// GraphConfig controls the Robin-Hood index.
type GraphConfig struct {
	// InitialCapacity is the number of triple slots to allocate up
	// front. graph.New allocates exactly this many triple slots and sizes
	// its hash table to the next power of two above twice this value.
	InitialCapacity uint32 `yaml:"initial_capacity"`

	// EnableSIMD toggles the batched 8-wide matcher. When false,
	// FindPattern always uses the scalar path even on hardware that
	// supports AVX2.
	EnableSIMD bool `yaml:"enable_simd"`
}

// ValidatorConfig controls Validator construction.
type ValidatorConfig struct {
	// ScanMax bounds the MinCount/MaxCount object-ID scan. Zero means
	// "use validator.DefaultScanMax".
	ScanMax uint32 `yaml:"scan_max"`
}

// CacheConfig controls the optional ristretto-backed shadow cache.
type CacheConfig struct {
	Enabled       bool          `yaml:"enabled"`
	NumCounters   int64         `yaml:"num_counters"`
	MaxCostBytes  int64         `yaml:"max_cost_bytes"`
	BufferItems   int64         `yaml:"buffer_items"`
	MetricsPeriod time.Duration `yaml:"metrics_period"`
}

// Default returns the configuration used when no file or override is
// supplied: a modest preallocated graph, SIMD on, the validator's
// default scan bound, and the shadow cache disabled (correctness-first;
// callers opt into the cache explicitly).
func Default() Config {
	return Config{
		Graph: GraphConfig{
			InitialCapacity: 1 << 16,
			EnableSIMD:      true,
		},
		Validator: ValidatorConfig{
			ScanMax: 0,
		},
		Cache: CacheConfig{
			Enabled:       false,
			NumCounters:   1e7,
			MaxCostBytes:  1 << 26,
			BufferItems:   64,
			MetricsPeriod: 30 * time.Second,
		},
	}
}

// merge overlays non-zero fields of override onto base, used when a
// partial YAML document should only touch the keys it mentions. Bool
// fields are always taken from override since false is indistinguishable
// from unset; a partial file that cares must still restate them.
func merge(base, override Config) Config {
	out := base
	if override.Graph.InitialCapacity != 0 {
		out.Graph.InitialCapacity = override.Graph.InitialCapacity
	}
	out.Graph.EnableSIMD = override.Graph.EnableSIMD
	if override.Validator.ScanMax != 0 {
		out.Validator.ScanMax = override.Validator.ScanMax
	}
	out.Cache.Enabled = override.Cache.Enabled
	if override.Cache.NumCounters != 0 {
		out.Cache.NumCounters = override.Cache.NumCounters
	}
	if override.Cache.MaxCostBytes != 0 {
		out.Cache.MaxCostBytes = override.Cache.MaxCostBytes
	}
	if override.Cache.BufferItems != 0 {
		out.Cache.BufferItems = override.Cache.BufferItems
	}
	if override.Cache.MetricsPeriod != 0 {
		out.Cache.MetricsPeriod = override.Cache.MetricsPeriod
	}
	return out
}
