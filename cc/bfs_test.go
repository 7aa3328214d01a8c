package cc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atpapadop/ccbench/cc"
	"github.com/atpapadop/ccbench/csr"
)

func TestBFS_Empty(t *testing.T) {
	g, err := csr.BuildFromEdges(0, nil, csr.Options{})
	require.NoError(t, err)
	labels := make([]int32, 0)
	cc.BFS(g, labels) // must not panic
}

func TestBFS_SingleVertexNoEdges(t *testing.T) {
	g, err := csr.BuildFromEdges(1, nil, csr.Options{})
	require.NoError(t, err)
	labels := make([]int32, 1)
	cc.BFS(g, labels)
	require.Equal(t, []int32{0}, labels)
	require.EqualValues(t, 1, cc.CountUnique(labels, g.N))
}

func TestBFS_Triangle(t *testing.T) {
	g := buildGraph(t, 3, []csr.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}})
	labels := make([]int32, 3)
	cc.BFS(g, labels)
	require.Equal(t, []int32{0, 0, 0}, labels)
	require.EqualValues(t, 1, cc.CountUnique(labels, g.N))
}

func TestBFS_TwoDisjointEdges(t *testing.T) {
	g := buildGraph(t, 4, []csr.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	labels := make([]int32, 4)
	cc.BFS(g, labels)
	require.Equal(t, []int32{0, 0, 1, 1}, labels)
	require.EqualValues(t, 2, cc.CountUnique(labels, g.N))
}

func TestBFS_FullyDisconnected(t *testing.T) {
	g, err := csr.BuildFromEdges(5, nil, csr.Options{})
	require.NoError(t, err)
	labels := make([]int32, 5)
	cc.BFS(g, labels)
	require.EqualValues(t, 5, cc.CountUnique(labels, g.N))
}

// buildGraph is a small shared helper for tests across this package.
func buildGraph(t *testing.T, n int32, edges []csr.Edge) *csr.Graph {
	t.Helper()
	g, err := csr.BuildFromEdges(n, edges, csr.Options{Symmetrize: true, DropSelfLoops: true})
	require.NoError(t, err)
	return g
}
