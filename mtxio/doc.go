// Package mtxio parses Matrix Market coordinate files into the edge list
// csr.BuildFromEdges consumes.
//
// Only the sparse coordinate format is supported — pattern, real, integer,
// and complex value records are all accepted, since only the (i,j)
// structure is used and the value field (when present) is discarded.
// Symmetric/skew-symmetric/Hermitian matrices are auto-symmetrized in
// addition to any caller-requested Symmetrize, mirroring
// load_csr_from_mtx's symmetric_in_file handling.
package mtxio
