package shacl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefineShapeAndDuplicate(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, Defined, r.Define(1, 100))
	assert.Equal(t, DuplicateID, r.Define(1, 200))

	shape, ok := r.Shape(1)
	assert.True(t, ok)
	assert.Equal(t, uint32(100), shape.TargetClass)
}

func TestAddConstraintUnknownShape(t *testing.T) {
	r := NewRegistry()
	result := r.AddConstraint(99, MinCount(5, 1))
	assert.Equal(t, UnknownShape, result)
}

func TestAddConstraintOrderPreserved(t *testing.T) {
	r := NewRegistry()
	r.Define(1, 100)
	r.AddConstraint(1, Class(100))
	r.AddConstraint(1, MinCount(5, 1))
	r.AddConstraint(1, MaxCount(7, 2))

	shape, _ := r.Shape(1)
	assert.Len(t, shape.Constraints, 3)
	assert.Equal(t, TagClass, shape.Constraints[0].Tag)
	assert.Equal(t, TagMinCount, shape.Constraints[1].Tag)
	assert.Equal(t, TagMaxCount, shape.Constraints[2].Tag)
}

func TestShapesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Define(3, 1)
	r.Define(1, 1)
	r.Define(2, 1)

	ids := make([]uint32, 0, 3)
	for _, s := range r.Shapes() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []uint32{3, 1, 2}, ids)
}
