package resultsio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/atpapadop/ccbench/ccerr"
)

// WriteLabels writes one label per line, newline-terminated, in vertex
// order.
func WriteLabels(path string, labels []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ccerr.ErrIOError, path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range labels {
		if _, err := fmt.Fprintf(w, "%d\n", v); err != nil {
			return fmt.Errorf("%w: writing %s: %v", ccerr.ErrIOError, path, err)
		}
	}
	return flush(w, path)
}

// AppendTimesColumn appends a column of per-run timings to a CSV file,
// creating it if it does not exist. Existing columns are preserved; rows are padded
// with empty values when the new column's row count differs from the
// existing ones.
func AppendTimesColumn(path, columnName string, values []float64) error {
	header, rows, err := readExistingCSV(path)
	if err != nil {
		return err
	}

	header = append(header, columnName)
	rowCount := len(rows)
	if len(values) > rowCount {
		rowCount = len(values)
	}

	out := make([][]string, rowCount)
	for i := 0; i < rowCount; i++ {
		var row []string
		if i < len(rows) {
			row = append([]string(nil), rows[i]...)
		}
		for len(row) < len(header)-1 {
			row = append(row, "")
		}
		if i < len(values) {
			row = append(row, strconv.FormatFloat(values[i], 'g', -1, 64))
		} else {
			row = append(row, "")
		}
		out[i] = row
	}

	return writeCSV(path, header, out)
}

// SurfaceRow is one configuration's averaged timing in a parameter sweep.
type SurfaceRow struct {
	Threads        int
	ChunkSize      int32
	AverageSeconds float64
}

// WriteSurfaceCSV writes the sweep tool's threads,chunk_size,average_seconds
// surface CSV, overwriting any existing file at path.
func WriteSurfaceCSV(path string, rows []SurfaceRow) error {
	header := []string{"threads", "chunk_size", "average_seconds"}
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			strconv.Itoa(r.Threads),
			strconv.FormatInt(int64(r.ChunkSize), 10),
			strconv.FormatFloat(r.AverageSeconds, 'g', -1, 64),
		}
	}
	return writeCSV(path, header, out)
}

// EnsureDirectory creates path (and any missing parents) if it does not
// already exist (results_writer_ensure_directory).
func EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("%w: creating directory %s: %v", ccerr.ErrIOError, path, err)
	}
	return nil
}

// JoinPath joins dir and file the way the platform's path separator
// requires (results_writer_join_path, simplified: filepath.Join already
// handles overflow-free joining in Go).
func JoinPath(dir, file string) string {
	return filepath.Join(dir, file)
}

// MatrixStem extracts the matrix filename without directory or extension
// (results_writer_matrix_stem), e.g. "/data/road-usa.mtx" -> "road-usa".
func MatrixStem(matrixPath string) string {
	base := filepath.Base(matrixPath)
	return base[:len(base)-len(filepath.Ext(base))]
}

// BuildResultsPath composes outputDir/prefix-stem.csv from the matrix path's
// stem (results_writer_build_results_path).
func BuildResultsPath(outputDir, prefix, matrixPath string) string {
	stem := MatrixStem(matrixPath)
	return filepath.Join(outputDir, fmt.Sprintf("%s-%s.csv", prefix, stem))
}

func readExistingCSV(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening %s: %v", ccerr.ErrIOError, path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %s: %v", ccerr.ErrIOError, path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ccerr.ErrIOError, path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ccerr.ErrIOError, path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: writing %s: %v", ccerr.ErrIOError, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: flushing %s: %v", ccerr.ErrIOError, path, err)
	}
	return nil
}

func flush(w *bufio.Writer, path string) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: flushing %s: %v", ccerr.ErrIOError, path, err)
	}
	return nil
}
