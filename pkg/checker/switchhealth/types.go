// Package switchhealth pkg/checker/switchhealth/types.go

package switchhealth

import "strconv"

// RawKind discriminates the wire value union handed over by a MetricSource.
type RawKind int

const (
	RawAbsent RawKind = iota
	RawInteger
	RawString
)

// RawValue is a single value as retrieved from the device, before any
// decoding. It is consumed immediately by the codec and never stored.
type RawValue struct {
	Kind RawKind
	Int  int64
	Str  string
}

// IntValue wraps an integer wire value.
func IntValue(v int64) RawValue {
	return RawValue{Kind: RawInteger, Int: v}
}

// StringValue wraps a textual wire value.
func StringValue(s string) RawValue {
	return RawValue{Kind: RawString, Str: s}
}

// AbsentValue marks a value the device did not return.
func AbsentValue() RawValue {
	return RawValue{Kind: RawAbsent}
}

// Text renders the value as it would appear on the wire. Absent values
// render empty.
func (v RawValue) Text() string {
	switch v.Kind {
	case RawInteger:
		return strconv.FormatInt(v.Int, 10)
	case RawString:
		return v.Str
	default:
		return ""
	}
}

// Table holds the result of walking one OID subtree. Row indices are opaque
// strings, kept in the order the walk first returned them; they are not
// guaranteed to be numeric or contiguous.
type Table struct {
	indices []string
	rows    map[string]RawValue
}

// NewTable returns an empty table. An empty table is a valid walk result
// meaning zero rows.
func NewTable() *Table {
	return &Table{rows: make(map[string]RawValue)}
}

// Add records a row value under index. A repeated index overwrites the value
// but keeps its original position.
func (t *Table) Add(index string, value RawValue) {
	if _, ok := t.rows[index]; !ok {
		t.indices = append(t.indices, index)
	}

	t.rows[index] = value
}

// Get returns the value stored under index.
func (t *Table) Get(index string) (RawValue, bool) {
	v, ok := t.rows[index]
	return v, ok
}

// Indices returns the row keys in order of first appearance.
func (t *Table) Indices() []string {
	return t.indices
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.indices)
}

// Severity is the outcome rank of a health check. The integer values double
// as process exit codes and define the total order for the worst-wins fold:
// UNKNOWN outranks CRITICAL, so an unreachable metric is never masked by a
// known-bad one.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityCritical
	SeverityUnknown
)

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "OK"
	case SeverityWarning:
		return "WARNING"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Merge returns the worse of the two severities.
func (s Severity) Merge(other Severity) Severity {
	if other > s {
		return other
	}

	return s
}

// ExitCode returns the process exit code encoding this severity.
func (s Severity) ExitCode() int {
	return int(s)
}

// CheckResult is the outcome of one check category: its message lines in
// output order plus the severity it contributes. Immutable once produced.
type CheckResult struct {
	Category string
	Lines    []string
	Severity Severity
}
