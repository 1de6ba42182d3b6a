// Package switchhealth pkg/checker/switchhealth/report.go

package switchhealth

import "strings"

// Report accumulates per-check results in the fixed category order and
// renders them into the probe's final output.
type Report struct {
	results []CheckResult
}

func NewReport() *Report {
	return &Report{}
}

// Add appends a check result. Output order is insertion order, regardless
// of severity.
func (r *Report) Add(result CheckResult) {
	r.results = append(r.results, result)
}

// Results returns the accumulated check results.
func (r *Report) Results() []CheckResult {
	return r.results
}

// Severity folds the per-check severities, worst wins. An empty report is OK.
func (r *Report) Severity() Severity {
	overall := SeverityOK

	for _, result := range r.results {
		overall = overall.Merge(result.Severity)
	}

	return overall
}

// Render joins all message lines with newlines, category order preserved.
func (r *Report) Render() string {
	var lines []string

	for _, result := range r.results {
		lines = append(lines, result.Lines...)
	}

	return strings.Join(lines, "\n")
}
