// Package validator composes Graph probes to check whether a node
// satisfies every constraint of every shape whose target class it
// belongs to — a small, precise subset of SHACL shape validation.
package validator

import (
	"github.com/arx-os/tripcore/internal/shacl"
	"github.com/arx-os/tripcore/internal/triple"
)

// GraphReader is the read-only surface of graph.Graph the validator
// depends on. It is an interface, rather than a concrete *graph.Graph,
// so a graph.ShadowCache (or a test double) can stand in for it
// without the validator caring which one it's talking to.
type GraphReader interface {
	Contains(subject, predicate, object uint32) bool
}

// ObjectCounter is an optional, exact alternative to the bounded
// [0, ScanMax) probe scan MinCount/MaxCount otherwise use. A Graph
// wrapped with a secondary predicate index can implement this to
// trade the bounded scan's O(ScanMax) worst case for an O(1) or
// O(log n) exact count. When a Validator has no ObjectCounter, it
// always uses the bounded scan.
type ObjectCounter interface {
	CountObjects(node, property uint32, atLeast uint32) (count uint32, exact bool)
}

// Outcome is the result of Validate: either Ok or a Violation naming
// the first shape and zero-based constraint index that failed.
type Outcome struct {
	Ok            bool
	ShapeID       uint32
	ConstraintIdx int
}

// Ok is the zero-violation result.
var Ok = Outcome{Ok: true}

// DefaultScanMax bounds the MinCount/MaxCount object-ID scan. It is a
// deliberate worst-case-latency trade: counting stops looking at
// object ID ScanMax even if the true count lies beyond it. Callers
// needing full correctness over the ID universe should supply an
// ObjectCounter instead of relying on a larger bound.
const DefaultScanMax = 1 << 16

// Validator evaluates a Registry's shapes against a Graph (or
// ShadowCache) for a given node. Each Validate call allocates one
// slice, the registry's shape list returned by Registry.Shapes; the
// constraint checks themselves allocate nothing. It never fails: every
// outcome is Ok or Violation.
type Validator struct {
	registry *shacl.Registry
	reader   GraphReader
	counter  ObjectCounter
	scanMax  uint32
}

// New builds a Validator with the default scan bound.
func New(registry *shacl.Registry, reader GraphReader) *Validator {
	return &Validator{registry: registry, reader: reader, scanMax: DefaultScanMax}
}

// WithScanMax overrides the MinCount/MaxCount bounded-scan ceiling.
func (v *Validator) WithScanMax(scanMax uint32) *Validator {
	v.scanMax = scanMax
	return v
}

// WithObjectCounter attaches an exact counting strategy, preferred over
// the bounded scan whenever present.
func (v *Validator) WithObjectCounter(counter ObjectCounter) *Validator {
	v.counter = counter
	return v
}

// Validate checks node against every shape whose target class it
// belongs to, in registry definition order, returning the first
// failing constraint. Results are deterministic for a fixed Graph and
// Registry (P8).
func (v *Validator) Validate(node uint32) Outcome {
	for _, shape := range v.registry.Shapes() {
		if !v.classOf(node, shape.TargetClass) {
			continue
		}
		for idx, c := range shape.Constraints {
			if !v.evalConstraint(node, c) {
				return Outcome{ShapeID: shape.ID, ConstraintIdx: idx}
			}
		}
	}
	return Ok
}

func (v *Validator) evalConstraint(node uint32, c shacl.Constraint) bool {
	switch c.Tag {
	case shacl.TagClass:
		return v.classOf(node, c.ClassID)
	case shacl.TagMinCount:
		count := v.countObjects(node, c.Property, c.Bound)
		return count >= c.Bound
	case shacl.TagMaxCount:
		count := v.countObjects(node, c.Property, c.Bound+1)
		return count <= c.Bound
	default:
		return true
	}
}

// classOf is Class(c): node has class c iff (node, rdf:type, c) is
// stored, realized as a single Contains probe.
func (v *Validator) classOf(node, class uint32) bool {
	return v.reader.Contains(node, triple.RDFType, class)
}

// countObjects counts distinct objects o with (node, property, o)
// stored, stopping as soon as the count reaches stopAt. It prefers an
// attached ObjectCounter's exact answer; otherwise it early-exit scans
// object IDs [0, scanMax).
func (v *Validator) countObjects(node, property, stopAt uint32) uint32 {
	if v.counter != nil {
		if count, exact := v.counter.CountObjects(node, property, stopAt); exact {
			return count
		}
	}
	var count uint32
	for o := uint32(0); o < v.scanMax && count < stopAt; o++ {
		if v.reader.Contains(node, property, o) {
			count++
		}
	}
	return count
}
