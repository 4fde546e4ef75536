// Package tripcore is the public surface of the in-memory triple
// engine: a cache-aligned Graph with a Robin-Hood index, an optional
// ristretto-backed shadow cache, and a SHACL-subset shape validator.
// It re-exports the internal/* types callers need so external code
// never imports internal packages directly.
package tripcore

import (
	"github.com/arx-os/tripcore/internal/errdefs"
	"github.com/arx-os/tripcore/internal/graph"
	"github.com/arx-os/tripcore/internal/shacl"
	"github.com/arx-os/tripcore/internal/triple"
	"github.com/arx-os/tripcore/internal/validator"
)

// Triple, Pattern, and TermKind are the wire-level vocabulary every
// other type in this package is built from.
type (
	Triple   = triple.Triple
	Pattern  = triple.Pattern
	TermKind = triple.TermKind
)

// Term kinds.
const (
	KindIRI     = triple.IRI
	KindLiteral = triple.Literal
	KindBlank   = triple.Blank
)

// Wildcard is the sentinel matching any value in a Pattern field; see
// triple.Wildcard.
const Wildcard = triple.Wildcard

// RDFType is the well-known predicate ID naming an rdf:type triple.
const RDFType = triple.RDFType

// Graph is the cache-aligned triple store. Construct with NewGraph.
type Graph = graph.Graph

// InsertResult values.
const (
	Inserted  = graph.Inserted
	Duplicate = graph.Duplicate
	Full      = graph.Full
)

// GraphStats is a snapshot of a Graph's performance counters.
type GraphStats = graph.Stats

// NewGraph constructs a Graph sized for initialCapacity triples, with
// the batched matcher enabled or disabled per enableSIMD.
func NewGraph(initialCapacity int, enableSIMD bool) (*Graph, error) {
	return graph.New(initialCapacity, enableSIMD)
}

// ShadowCache layers a ristretto-backed lookup cache over a Graph.
type ShadowCache = graph.ShadowCache

// ShadowCacheConfig sizes a ShadowCache's underlying ristretto cache.
type ShadowCacheConfig = graph.ShadowCacheConfig

// NewShadowCache wraps g with a shadow cache sized per cfg.
func NewShadowCache(g *Graph, cfg ShadowCacheConfig) (*ShadowCache, error) {
	return graph.NewShadowCache(g, cfg)
}

// Shape validation vocabulary.
type (
	Shape      = shacl.Shape
	Constraint = shacl.Constraint
	Registry   = shacl.Registry
)

// DefineResult and AddResult values.
const (
	Defined       = shacl.Defined
	DuplicateID   = shacl.DuplicateID
	Added         = shacl.Added
	UnknownShape  = shacl.UnknownShape
	OutOfCapacity = shacl.OutOfCapacity
)

// NewRegistry creates an empty shape registry.
func NewRegistry() *Registry { return shacl.NewRegistry() }

// Class, MinCount, and MaxCount build shape constraints.
func Class(classID uint32) Constraint           { return shacl.Class(classID) }
func MinCount(property, bound uint32) Constraint { return shacl.MinCount(property, bound) }
func MaxCount(property, bound uint32) Constraint { return shacl.MaxCount(property, bound) }

// Validator checks nodes against a Registry's shapes.
type Validator = validator.Validator

// ValidationOutcome is the result of Validator.Validate.
type ValidationOutcome = validator.Outcome

// ValidationOk is the zero-violation outcome.
var ValidationOk = validator.Ok

// ObjectCounter is the optional exact-counting strategy a Validator can
// use instead of its bounded object-ID scan.
type ObjectCounter = validator.ObjectCounter

// NewValidator builds a Validator for registry over reader (a *Graph or
// *ShadowCache, both of which satisfy validator.GraphReader).
func NewValidator(registry *Registry, reader validator.GraphReader) *Validator {
	return validator.New(registry, reader)
}

// Error kinds of contract-violation errors: NewGraph reports
// KindCapacity, Graph.Insert reports KindWildcardID, and
// Registry.MustDefine reports KindDuplicateShapeID.
const (
	KindWildcardID       = errdefs.KindWildcardID
	KindUnknownShape     = errdefs.KindUnknownShape
	KindDuplicateShapeID = errdefs.KindDuplicateShapeID
	KindNilBuffer        = errdefs.KindNilBuffer
	KindCapacity         = errdefs.KindCapacity
)

// KindOf extracts the errdefs.Kind from an error tripcore returned, if
// any.
func KindOf(err error) (errdefs.Kind, bool) { return errdefs.KindOf(err) }
