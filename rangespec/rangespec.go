package rangespec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/atpapadop/ccbench/ccerr"
)

// Parse parses a SPEC string: either a comma-separated list of positive
// integers ("1,2,4,8") or a start:end[:step] range ("1:8:2"), with step
// defaulting to 1 when omitted. The result is sorted ascending with
// duplicates removed. label identifies the flag in error messages (e.g.
// "--threads").
func Parse(spec, label string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("%w: %s: empty spec", ccerr.ErrBadArgument, label)
	}

	var values []int
	var err error
	if strings.Contains(spec, ":") {
		values, err = parseRange(spec, label)
	} else {
		values, err = parseList(spec, label)
	}
	if err != nil {
		return nil, err
	}

	return sortUnique(values), nil
}

func parseList(spec, label string) ([]int, error) {
	parts := strings.Split(spec, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := parsePositiveInt(strings.TrimSpace(p), label)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func parseRange(spec, label string) ([]int, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, fmt.Errorf("%w: %s: range must be start:end or start:end:step, got %q", ccerr.ErrBadArgument, label, spec)
	}

	start, err := parsePositiveInt(parts[0], label)
	if err != nil {
		return nil, err
	}
	end, err := parsePositiveInt(parts[1], label)
	if err != nil {
		return nil, err
	}
	step := 1
	if len(parts) == 3 {
		step, err = parsePositiveInt(parts[2], label)
		if err != nil {
			return nil, err
		}
	}
	if end < start {
		return nil, fmt.Errorf("%w: %s: range end %d is before start %d", ccerr.ErrBadArgument, label, end, start)
	}

	values := make([]int, 0, (end-start)/step+1)
	for v := start; v <= end; v += step {
		values = append(values, v)
	}
	return values, nil
}

func parsePositiveInt(text, label string) (int, error) {
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ccerr.ErrBadArgument, label, text)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s: value %d must be positive", ccerr.ErrBadArgument, label, v)
	}
	return v, nil
}

func sortUnique(values []int) []int {
	sort.Ints(values)
	out := values[:0]
	for i, v := range values {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
