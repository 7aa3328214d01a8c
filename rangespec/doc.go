// Package rangespec parses the CLI's range-valued flags (--threads SPEC,
// --chunk-size N|SPEC): a comma-separated integer list or a start:end[:step]
// range, always returned sorted with duplicates removed.
package rangespec
