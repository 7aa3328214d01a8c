// Package ccerr defines the sentinel error taxonomy shared by every
// collaborator around the connected-components core: the CSR ingest path,
// the Matrix Market reader, the results writer, and the CLI surface.
//
// Kernels (cc, ccparallel, ccpool) never return these: per the kernel
// contract they either run to completion or, on allocation failure inside
// the hot path, terminate the process. Everything upstream and downstream
// of a kernel call propagates one of these instead of retrying.
package ccerr

import "errors"

var (
	// ErrBadFormat indicates a malformed header or dimension line.
	ErrBadFormat = errors.New("ccerr: bad format")

	// ErrUnsupported indicates the input matrix is not a sparse coordinate matrix.
	ErrUnsupported = errors.New("ccerr: unsupported matrix type")

	// ErrOutOfMemory indicates a buffer allocation failed.
	ErrOutOfMemory = errors.New("ccerr: out of memory")

	// ErrIOError indicates an underlying file read or write failed.
	ErrIOError = errors.New("ccerr: io error")

	// ErrBadArgument indicates an invalid CLI option or API argument.
	ErrBadArgument = errors.New("ccerr: bad argument")
)
