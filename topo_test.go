// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapgraph is a Graph built directly from a list of variables and a map of
// parents.
type mapgraph struct {
	vars    []string
	parents map[string][]string
}

func (g mapgraph) Variables() []string          { return g.vars }
func (g mapgraph) Parents(name string) []string { return g.parents[name] }

var sortTests = []struct {
	name     string
	g        mapgraph
	expected []string
}{
	{"empty", mapgraph{}, []string{}},
	{"collider", mapgraph{[]string{"A", "B", "C"}, map[string][]string{"C": {"A", "B"}}}, []string{"A", "B", "C"}},
	{"declaration order", mapgraph{[]string{"B", "A", "C"}, map[string][]string{"C": {"A", "B"}}}, []string{"B", "A", "C"}},
	{"child first", mapgraph{[]string{"C", "A", "B"}, map[string][]string{"C": {"A", "B"}}}, []string{"A", "B", "C"}},
	{"chain reversed", mapgraph{[]string{"Z", "Y", "X"}, map[string][]string{"Z": {"Y"}, "Y": {"X"}}}, []string{"X", "Y", "Z"}},
	{"duplicate parent", mapgraph{[]string{"B", "A"}, map[string][]string{"B": {"A", "A"}}}, []string{"A", "B"}},
	{"diamond", mapgraph{[]string{"D", "C", "B", "A"}, map[string][]string{
		"D": {"B", "C"}, "C": {"A"}, "B": {"A"}}}, []string{"A", "C", "B", "D"}},
}

func TestTopologicalSort(t *testing.T) {
	for _, tt := range sortTests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := TopologicalSort(tt.g)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestTopologicalSortErrors(t *testing.T) {
	_, err := TopologicalSort(mapgraph{[]string{"A", "B", "C"}, map[string][]string{
		"A": {"C"}, "B": {"A"}, "C": {"B"}}})
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, CyclicDependency, e.Kind)
	assert.Equal(t, "A", e.Variable)
	assert.Contains(t, e.Msg, "{A, B, C}")

	// D depends on the cycle but is not part of it; it cannot be ordered
	_, err = TopologicalSort(mapgraph{[]string{"R", "A", "B", "D"}, map[string][]string{
		"A": {"B"}, "B": {"A"}, "D": {"A", "R"}}})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "no order exists for {A, B, D}", e.Msg)

	_, err = TopologicalSort(mapgraph{[]string{"A"}, map[string][]string{"A": {"Z"}}})
	assert.ErrorIs(t, err, UnknownParent)

	_, err = TopologicalSort(mapgraph{[]string{"A", "A"}, nil})
	assert.True(t, errors.Is(err, MalformedInput))
}

// TestTopologicalProperty checks that every parent comes before its children
// in the order computed for our fixtures.
func TestTopologicalProperty(t *testing.T) {
	for _, name := range []string{"collider.json", "asia.json", "ternary.json"} {
		n := load(t, name)
		order, err := TopologicalSort(n)
		require.NoError(t, err)
		assert.Equal(t, n.TopologicalOrder(), order)
		assert.ElementsMatch(t, n.Variables(), order)
		pos := make(map[string]int)
		for k, v := range order {
			pos[v] = k
		}
		for _, v := range order {
			for _, p := range n.Parents(v) {
				if pos[p] >= pos[v] {
					t.Errorf("%s: parent %s of %s comes after it", name, p, v)
				}
			}
		}
	}
}

func TestAsiaOrder(t *testing.T) {
	n := load(t, "asia.json")
	// declaration order is already topological
	assert.Equal(t, n.Variables(), n.TopologicalOrder())
}
