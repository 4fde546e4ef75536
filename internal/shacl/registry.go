package shacl

import "github.com/arx-os/tripcore/internal/errdefs"

// DefineResult is the outcome of Registry.Define.
type DefineResult int

const (
	Defined DefineResult = iota
	DuplicateID
)

// AddResult is the outcome of Registry.AddConstraint.
type AddResult int

const (
	Added AddResult = iota
	UnknownShape
	OutOfCapacity
)

// maxConstraintsPerShape bounds a single shape's constraint list, so
// validation (which the concurrency contract disallows growth during)
// never has to reallocate mid-check; it only needs to be generous
// enough that real shape definitions never hit it in practice.
const maxConstraintsPerShape = 256

// Registry owns Shapes keyed by unique shape ID. It is append-only:
// shapes are never removed once defined, and constraints are never
// removed from a shape once added.
type Registry struct {
	shapes map[uint32]*Shape
	order  []uint32
}

// NewRegistry creates an empty shape registry.
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[uint32]*Shape)}
}

// Define registers a new shape with the given ID and target class.
// Defining an ID a second time is reported as DuplicateID rather than
// overwriting the existing shape.
func (r *Registry) Define(shapeID, targetClass uint32) DefineResult {
	if _, exists := r.shapes[shapeID]; exists {
		return DuplicateID
	}
	r.shapes[shapeID] = &Shape{ID: shapeID, TargetClass: targetClass}
	r.order = append(r.order, shapeID)
	return Defined
}

// AddConstraint appends c to shapeID's constraint list, in the order
// callers add them.
func (r *Registry) AddConstraint(shapeID uint32, c Constraint) AddResult {
	shape, ok := r.shapes[shapeID]
	if !ok {
		return UnknownShape
	}
	if len(shape.Constraints) >= maxConstraintsPerShape {
		return OutOfCapacity
	}
	shape.Constraints = append(shape.Constraints, c)
	return Added
}

// Shape looks up a shape by ID.
func (r *Registry) Shape(shapeID uint32) (*Shape, bool) {
	s, ok := r.shapes[shapeID]
	return s, ok
}

// Shapes returns all shapes in insertion (definition) order. The
// validator depends on stable order for deterministic first-violation
// semantics across shapes targeting the same class.
func (r *Registry) Shapes() []*Shape {
	out := make([]*Shape, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.shapes[id])
	}
	return out
}

// MustDefine is a convenience for registry setup code (tests, fixture
// loaders) where a duplicate ID is a programmer error worth failing
// loudly on rather than a recoverable condition.
func (r *Registry) MustDefine(shapeID, targetClass uint32) error {
	if r.Define(shapeID, targetClass) == DuplicateID {
		return errdefs.New(errdefs.KindDuplicateShapeID, "shape ID already defined")
	}
	return nil
}
