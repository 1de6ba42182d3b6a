// Package switchhealth pkg/checker/switchhealth/evaluator.go

package switchhealth

import (
	"context"
	"fmt"
)

// Category labels, used in both report lines and failure diagnostics.
const (
	categoryUptime      = "uptime"
	categoryTemperature = "temperature"
	categoryInterfaces  = "interfaces"
	categoryPSU         = "PSU status"
	categoryFan         = "fan status"
)

// Evaluator runs the fixed set of health checks against one device through
// a MetricSource. It holds no state between runs.
type Evaluator struct {
	source     MetricSource
	thresholds Thresholds
}

// NewEvaluator creates an evaluator for the given source and temperature
// policy.
func NewEvaluator(source MetricSource, thresholds Thresholds) *Evaluator {
	return &Evaluator{
		source:     source,
		thresholds: thresholds,
	}
}

// Run executes all checks sequentially in the fixed category order. Checks
// are isolated: one failing check contributes a single diagnostic line and
// UNKNOWN severity, and never stops the others.
func (e *Evaluator) Run(ctx context.Context) *Report {
	checks := []struct {
		category string
		run      func(context.Context) (CheckResult, error)
	}{
		{categoryUptime, e.checkUptime},
		{categoryTemperature, e.checkTemperature},
		{categoryInterfaces, e.checkInterfaces},
		{categoryPSU, e.checkPSUs},
		{categoryFan, e.checkFans},
	}

	report := NewReport()

	for _, c := range checks {
		result, err := c.run(ctx)
		if err != nil {
			result = failedCheck(c.category, err)
		}

		report.Add(result)
	}

	return report
}

// failedCheck converts a check-level error into the single diagnostic line
// that stands in for the category's output.
func failedCheck(category string, err error) CheckResult {
	return CheckResult{
		Category: category,
		Lines:    []string{fmt.Sprintf("Failed to get %s: %v", category, err)},
		Severity: SeverityUnknown,
	}
}

// checkUptime reports device uptime. Informational only; it never raises
// severity.
func (e *Evaluator) checkUptime(ctx context.Context) (CheckResult, error) {
	raw, err := e.source.GetScalar(ctx, OIDSysUptime)
	if err != nil {
		return CheckResult{}, err
	}

	ticks, err := intValue(raw)
	if err != nil {
		return CheckResult{}, err
	}

	up := decodeUptime(ticks)

	return CheckResult{
		Category: categoryUptime,
		Lines: []string{
			fmt.Sprintf("Uptime: %dd %dh %dm %ds", up.Days, up.Hours, up.Minutes, up.Seconds),
		},
		Severity: SeverityOK,
	}, nil
}

func (e *Evaluator) checkTemperature(ctx context.Context) (CheckResult, error) {
	raw, err := e.source.GetScalar(ctx, OIDTemperature)
	if err != nil {
		return CheckResult{}, err
	}

	milli, err := intValue(raw)
	if err != nil {
		return CheckResult{}, err
	}

	temp := decodeTemperature(milli)

	return CheckResult{
		Category: categoryTemperature,
		Lines:    []string{fmt.Sprintf("Temperature: %.2f°C", temp)},
		Severity: e.thresholds.Classify(temp),
	}, nil
}

// checkInterfaces joins four table walks on row index. The description table
// is authoritative for which rows exist; rows missing from the status or
// octet tables degrade to down / zero bytes. Link state is informational and
// never raises severity.
func (e *Evaluator) checkInterfaces(ctx context.Context) (CheckResult, error) {
	descr, err := e.source.WalkTable(ctx, OIDIfDescr)
	if err != nil {
		return CheckResult{}, err
	}

	status, err := e.source.WalkTable(ctx, OIDIfOperStatus)
	if err != nil {
		return CheckResult{}, err
	}

	inOctets, err := e.source.WalkTable(ctx, OIDIfInOctets)
	if err != nil {
		return CheckResult{}, err
	}

	outOctets, err := e.source.WalkTable(ctx, OIDIfOutOctets)
	if err != nil {
		return CheckResult{}, err
	}

	rows := make([]string, 0, descr.Len())
	countUp := 0

	for _, index := range descr.Indices() {
		name, _ := descr.Get(index)

		// Up iff the raw status renders exactly "1"; anything else,
		// including a missing row, is down.
		state := "down"
		if sv, ok := status.Get(index); ok && sv.Text() == "1" {
			state = "up"
			countUp++
		}

		rows = append(rows, fmt.Sprintf("IF%s (%s): %s, In: %s, Out: %s",
			index, name.Text(), state,
			decodeByteSize(tableInt(inOctets, index)),
			decodeByteSize(tableInt(outOctets, index))))
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, fmt.Sprintf("Interfaces up: %d/%d", countUp, descr.Len()))
	lines = append(lines, rows...)

	return CheckResult{
		Category: categoryInterfaces,
		Lines:    lines,
		Severity: SeverityOK,
	}, nil
}

func (e *Evaluator) checkPSUs(ctx context.Context) (CheckResult, error) {
	return e.checkComponents(ctx, categoryPSU, "PSU", OIDPSUStatus)
}

func (e *Evaluator) checkFans(ctx context.Context) (CheckResult, error) {
	return e.checkComponents(ctx, categoryFan, "Fan", OIDFanStatus)
}

// checkComponents walks a component status table and classifies each row.
// Any failed row forces the category to CRITICAL; opaque vendor states are
// reported without affecting severity.
func (e *Evaluator) checkComponents(ctx context.Context, category, label, oid string) (CheckResult, error) {
	table, err := e.source.WalkTable(ctx, oid)
	if err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{
		Category: category,
		Severity: SeverityOK,
	}

	for _, index := range table.Indices() {
		raw, _ := table.Get(index)

		switch cs := classifyComponentState(raw); cs.State {
		case ComponentOK:
			result.Lines = append(result.Lines, fmt.Sprintf("%s %s: OK", label, index))
		case ComponentFailed:
			result.Lines = append(result.Lines, fmt.Sprintf("%s %s: FAIL (value: %d)", label, index, cs.Value))
			result.Severity = result.Severity.Merge(SeverityCritical)
		case ComponentOther:
			result.Lines = append(result.Lines, fmt.Sprintf("%s %s: %s", label, index, cs.Text))
		}
	}

	return result, nil
}

// tableInt reads an integer cell; missing or unparseable cells count as zero.
func tableInt(t *Table, index string) int64 {
	raw, ok := t.Get(index)
	if !ok {
		return 0
	}

	n, err := intValue(raw)
	if err != nil {
		return 0
	}

	return n
}
