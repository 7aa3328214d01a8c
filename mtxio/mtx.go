package mtxio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atpapadop/ccbench/ccerr"
	"github.com/atpapadop/ccbench/csr"
)

// banner is the fixed first token pair every Matrix Market file starts with.
const (
	bannerObject = "%%matrixmarket"
	bannerStruct = "matrix"
	bannerFormat = "coordinate"
)

// typecode is the parsed banner line: object/structure/format are fixed to
// "matrix"/"coordinate" by bannerStruct/bannerFormat (anything else is
// ccerr.ErrUnsupported); field and symmetry vary.
type typecode struct {
	field    string // pattern | real | integer | complex
	symmetry string // general | symmetric | skew-symmetric | hermitian
}

// Result is the parsed matrix, ready for csr.BuildFromEdges.
type Result struct {
	N     int32
	Edges []csr.Edge
}

// ParseFile opens path and parses it as a Matrix Market coordinate file.
func ParseFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: opening %s: %v", ccerr.ErrIOError, path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a Matrix Market coordinate stream and produces the edge list
// csr.BuildFromEdges consumes. A symmetric/skew-symmetric/hermitian
// declaration in the banner is honored automatically (each record also
// yields its reverse); the caller still passes csr.Options.Symmetrize to
// BuildFromEdges for its own bookkeeping — Parse pre-expands the banner's
// implied symmetry here because BuildFromEdges has no notion of "symmetric
// in the source file".
func Parse(r io.Reader) (Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	tc, err := readBanner(scanner)
	if err != nil {
		return Result{}, err
	}

	m, n, nz, err := readDimensions(scanner)
	if err != nil {
		return Result{}, err
	}

	declaredN := m
	if n > declaredN {
		declaredN = n
	}

	fileSymmetric := tc.symmetry != "general"

	edges := make([]csr.Edge, 0, nz)
	for k := 0; k < nz; k++ {
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			k-- // comment/blank line between records: does not count toward nz
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return Result{}, fmt.Errorf("%w: record %d has too few fields", ccerr.ErrBadFormat, k)
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return Result{}, fmt.Errorf("%w: record %d: %v", ccerr.ErrBadFormat, k, err)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return Result{}, fmt.Errorf("%w: record %d: %v", ccerr.ErrBadFormat, k, err)
		}
		// Value field (fields[2], when present) is discarded: only structure
		// matters for connected components.

		i--
		j-- // 1-based in file, 0-based in CSR
		if i < 0 || j < 0 || i >= declaredN || j >= declaredN {
			continue
		}

		edges = append(edges, csr.Edge{U: int32(i), V: int32(j)})
		if fileSymmetric && i != j {
			edges = append(edges, csr.Edge{U: int32(j), V: int32(i)})
		}
	}

	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ccerr.ErrIOError, err)
	}

	return Result{N: int32(declaredN), Edges: edges}, nil
}

func readBanner(scanner *bufio.Scanner) (typecode, error) {
	if !scanner.Scan() {
		return typecode{}, fmt.Errorf("%w: empty file, missing banner", ccerr.ErrBadFormat)
	}
	fields := strings.Fields(strings.ToLower(scanner.Text()))
	if len(fields) != 5 || fields[0] != bannerObject {
		return typecode{}, fmt.Errorf("%w: malformed %%%%MatrixMarket banner", ccerr.ErrBadFormat)
	}
	if fields[1] != bannerStruct || fields[2] != bannerFormat {
		return typecode{}, fmt.Errorf("%w: only sparse coordinate matrices are supported", ccerr.ErrUnsupported)
	}

	switch fields[3] {
	case "pattern", "real", "integer", "complex":
	default:
		return typecode{}, fmt.Errorf("%w: unknown field type %q", ccerr.ErrUnsupported, fields[3])
	}
	switch fields[4] {
	case "general", "symmetric", "skew-symmetric", "hermitian":
	default:
		return typecode{}, fmt.Errorf("%w: unknown symmetry %q", ccerr.ErrUnsupported, fields[4])
	}

	return typecode{field: fields[3], symmetry: fields[4]}, nil
}

// readDimensions skips comment lines and parses the "M N nz" size line.
func readDimensions(scanner *bufio.Scanner) (m, n, nz int, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return 0, 0, 0, fmt.Errorf("%w: malformed dimension line %q", ccerr.ErrBadFormat, line)
		}
		m, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: dimension line: %v", ccerr.ErrBadFormat, err)
		}
		n, err = strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: dimension line: %v", ccerr.ErrBadFormat, err)
		}
		nz, err = strconv.Atoi(fields[2])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: dimension line: %v", ccerr.ErrBadFormat, err)
		}
		return m, n, nz, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ccerr.ErrIOError, err)
	}
	return 0, 0, 0, fmt.Errorf("%w: missing dimension line", ccerr.ErrBadFormat)
}
