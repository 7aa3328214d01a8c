// Package csr provides the compressed-sparse-row adjacency representation
// that every connected-components kernel in this module consumes, and the
// edge-list ingest path that builds one.
//
// A Graph is immutable once built: n (vertex count), m (edge count), a
// row-pointer slice of length n+1, and a column-index slice of length m.
// No duplicate edges survive the build and each row's column indices are
// sorted ascending. With Options.Symmetrize, for every stored edge (u,v)
// with u != v the reverse (v,u) is also stored (undirected closure); with
// Options.DropSelfLoops, no self-loops survive.
//
// Construction:
//
//	BuildFromEdges(n int32, edges []Edge, opts Options) (*Graph, error)
//
// takes a coordinate edge list, symmetrizes and deduplicates it, and scatters
// it into row-pointer/column-index form. Ownership of the two backing slices
// belongs exclusively to the Graph; callers hold a read-only borrow for the
// duration of a kernel call — see package cc, ccparallel, ccpool.
package csr
