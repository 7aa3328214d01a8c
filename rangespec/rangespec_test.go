package rangespec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atpapadop/ccbench/ccerr"
	"github.com/atpapadop/ccbench/rangespec"
)

func TestParse_CommaList(t *testing.T) {
	got, err := rangespec.Parse("1,2,4,8", "--threads")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4, 8}, got)
}

func TestParse_CommaListDedupsAndSorts(t *testing.T) {
	got, err := rangespec.Parse("8,1,4,1,2", "--threads")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4, 8}, got)
}

func TestParse_RangeNoStep(t *testing.T) {
	got, err := rangespec.Parse("1:5", "--threads")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestParse_RangeWithStep(t *testing.T) {
	got, err := rangespec.Parse("1:8:2", "--chunk-size")
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 5, 7}, got)
}

func TestParse_RejectsEmptySpec(t *testing.T) {
	_, err := rangespec.Parse("", "--threads")
	require.ErrorIs(t, err, ccerr.ErrBadArgument)
}

func TestParse_RejectsNonPositive(t *testing.T) {
	_, err := rangespec.Parse("0,1,2", "--threads")
	require.ErrorIs(t, err, ccerr.ErrBadArgument)
}

func TestParse_RejectsNonInteger(t *testing.T) {
	_, err := rangespec.Parse("1,abc,3", "--threads")
	require.ErrorIs(t, err, ccerr.ErrBadArgument)
}

func TestParse_RejectsInvertedRange(t *testing.T) {
	_, err := rangespec.Parse("8:1", "--threads")
	require.ErrorIs(t, err, ccerr.ErrBadArgument)
}

func TestParse_RejectsMalformedRange(t *testing.T) {
	_, err := rangespec.Parse("1:2:3:4", "--threads")
	require.ErrorIs(t, err, ccerr.ErrBadArgument)
}
