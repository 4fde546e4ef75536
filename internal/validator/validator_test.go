package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arx-os/tripcore/internal/graph"
	"github.com/arx-os/tripcore/internal/shacl"
	"github.com/arx-os/tripcore/internal/triple"
)

// MockGraphReader lets the deterministic (P8) and fixed-scan-bound
// behavior of Validate be exercised without standing up a real Graph.
type MockGraphReader struct {
	mock.Mock
}

func (m *MockGraphReader) Contains(subject, predicate, object uint32) bool {
	args := m.Called(subject, predicate, object)
	return args.Bool(0)
}

func newGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(1000, false)
	require.NoError(t, err)
	return g
}

func mustInsert(t *testing.T, g *graph.Graph, s, p, o uint32) {
	t.Helper()
	_, err := g.Insert(s, p, o, triple.IRI, 0)
	require.NoError(t, err)
}

func TestValidateMinCountScenario(t *testing.T) {
	g := newGraph(t)
	mustInsert(t, g, 10, triple.RDFType, 100)
	mustInsert(t, g, 10, 5, 200)

	reg := shacl.NewRegistry()
	reg.Define(1, 100)
	reg.AddConstraint(1, shacl.MinCount(5, 1))

	v := New(reg, g)
	assert.Equal(t, Ok, v.Validate(10))

	reg.AddConstraint(1, shacl.MinCount(5, 2))
	got := v.Validate(10)
	assert.False(t, got.Ok)
	assert.Equal(t, uint32(1), got.ShapeID)
	assert.Equal(t, 1, got.ConstraintIdx)
}

func TestValidateMaxCountScenario(t *testing.T) {
	g := newGraph(t)
	mustInsert(t, g, 20, triple.RDFType, 100)
	mustInsert(t, g, 20, 7, 301)
	mustInsert(t, g, 20, 7, 302)
	mustInsert(t, g, 20, 7, 303)

	reg := shacl.NewRegistry()
	reg.Define(2, 100)
	reg.AddConstraint(2, shacl.MaxCount(7, 2))

	v := New(reg, g)
	got := v.Validate(20)
	assert.False(t, got.Ok)
	assert.Equal(t, uint32(2), got.ShapeID)
	assert.Equal(t, 0, got.ConstraintIdx)
}

func TestValidateNodeNotInTargetClassSkipsShape(t *testing.T) {
	g := newGraph(t)
	// node 30 has no rdf:type triple at all.
	reg := shacl.NewRegistry()
	reg.Define(1, 100)
	reg.AddConstraint(1, shacl.MinCount(5, 100))

	v := New(reg, g)
	assert.Equal(t, Ok, v.Validate(30))
}

func TestValidateDeterministic(t *testing.T) {
	reader := new(MockGraphReader)
	reader.On("Contains", uint32(10), triple.RDFType, uint32(100)).Return(true)
	reader.On("Contains", uint32(10), uint32(5), mock.Anything).Return(false)

	reg := shacl.NewRegistry()
	reg.Define(1, 100)
	reg.AddConstraint(1, shacl.MinCount(5, 1))

	v := New(reg, reader)
	first := v.Validate(10)
	second := v.Validate(10)
	assert.Equal(t, first, second)
	assert.False(t, first.Ok)
}

func TestWithObjectCounterPreferredOverScan(t *testing.T) {
	reader := new(MockGraphReader)
	reader.On("Contains", uint32(10), triple.RDFType, uint32(100)).Return(true)

	reg := shacl.NewRegistry()
	reg.Define(1, 100)
	reg.AddConstraint(1, shacl.MinCount(5, 3))

	counter := exactCounterFunc(func(node, property, atLeast uint32) (uint32, bool) {
		return 10, true
	})

	v := New(reg, reader).WithObjectCounter(counter)
	assert.Equal(t, Ok, v.Validate(10))
	reader.AssertNotCalled(t, "Contains", uint32(10), uint32(5), mock.Anything)
}

type exactCounterFunc func(node, property, atLeast uint32) (uint32, bool)

func (f exactCounterFunc) CountObjects(node, property, atLeast uint32) (uint32, bool) {
	return f(node, property, atLeast)
}
