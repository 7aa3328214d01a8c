package resultsio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atpapadop/ccbench/resultsio"
)

func TestWriteLabels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.txt")

	require.NoError(t, resultsio.WriteLabels(path, []int32{0, 0, 1, 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0\n0\n1\n1\n", string(data))
}

func TestAppendTimesColumn_CreatesNewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timings.csv")

	require.NoError(t, resultsio.AppendTimesColumn(path, "bfs", []float64{0.1, 0.2}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "bfs\n0.1\n0.2\n", string(data))
}

func TestAppendTimesColumn_PreservesExistingColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timings.csv")

	require.NoError(t, resultsio.AppendTimesColumn(path, "bfs", []float64{0.1, 0.2, 0.3}))
	require.NoError(t, resultsio.AppendTimesColumn(path, "lp", []float64{0.05, 0.06, 0.07}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "bfs,lp\n0.1,0.05\n0.2,0.06\n0.3,0.07\n", string(data))
}

func TestAppendTimesColumn_PadsShorterColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timings.csv")

	require.NoError(t, resultsio.AppendTimesColumn(path, "bfs", []float64{0.1, 0.2, 0.3}))
	require.NoError(t, resultsio.AppendTimesColumn(path, "lp", []float64{0.05}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "bfs,lp\n0.1,0.05\n0.2,\n0.3,\n", string(data))
}

func TestAppendTimesColumn_PadsExistingRowsWhenNewColumnLonger(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timings.csv")

	require.NoError(t, resultsio.AppendTimesColumn(path, "bfs", []float64{0.1}))
	require.NoError(t, resultsio.AppendTimesColumn(path, "lp", []float64{0.05, 0.06}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "bfs,lp\n0.1,0.05\n,0.06\n", string(data))
}

func TestWriteSurfaceCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surface.csv")

	rows := []resultsio.SurfaceRow{
		{Threads: 1, ChunkSize: 1, AverageSeconds: 1.5},
		{Threads: 4, ChunkSize: 1024, AverageSeconds: 0.4},
	}
	require.NoError(t, resultsio.WriteSurfaceCSV(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "threads,chunk_size,average_seconds\n1,1,1.5\n4,1024,0.4\n", string(data))
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	require.NoError(t, resultsio.EnsureDirectory(nested))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestJoinPath(t *testing.T) {
	require.Equal(t, filepath.Join("out", "results.csv"), resultsio.JoinPath("out", "results.csv"))
}

func TestMatrixStem(t *testing.T) {
	require.Equal(t, "road-usa", resultsio.MatrixStem("/data/matrices/road-usa.mtx"))
	require.Equal(t, "road-usa", resultsio.MatrixStem("road-usa.mtx"))
}

func TestBuildResultsPath(t *testing.T) {
	got := resultsio.BuildResultsPath("out", "bfs", "/data/road-usa.mtx")
	require.Equal(t, filepath.Join("out", "bfs-road-usa.csv"), got)
}
