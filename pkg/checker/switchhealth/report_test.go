package switchhealth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityMerge(t *testing.T) {
	assert.Equal(t, SeverityWarning, SeverityOK.Merge(SeverityWarning))
	assert.Equal(t, SeverityWarning, SeverityWarning.Merge(SeverityOK))
	assert.Equal(t, SeverityCritical, SeverityCritical.Merge(SeverityWarning))

	// UNKNOWN is the worst rank and wins over CRITICAL.
	assert.Equal(t, SeverityUnknown, SeverityCritical.Merge(SeverityUnknown))
	assert.Equal(t, SeverityUnknown, SeverityUnknown.Merge(SeverityCritical))
}

func TestSeverityExitCode(t *testing.T) {
	assert.Equal(t, 0, SeverityOK.ExitCode())
	assert.Equal(t, 1, SeverityWarning.ExitCode())
	assert.Equal(t, 2, SeverityCritical.ExitCode())
	assert.Equal(t, 3, SeverityUnknown.ExitCode())
}

func TestReportSeverityFoldIsOrderIndependent(t *testing.T) {
	severities := []Severity{SeverityOK, SeverityCritical, SeverityWarning, SeverityUnknown, SeverityOK}

	permutations := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
	}

	for _, perm := range permutations {
		report := NewReport()
		for _, i := range perm {
			report.Add(CheckResult{Severity: severities[i]})
		}

		assert.Equal(t, SeverityUnknown, report.Severity())
	}
}

func TestReportSeverityMonotonic(t *testing.T) {
	report := NewReport()
	assert.Equal(t, SeverityOK, report.Severity())

	previous := report.Severity()
	for _, s := range []Severity{SeverityOK, SeverityCritical, SeverityWarning, SeverityOK} {
		report.Add(CheckResult{Severity: s})

		assert.GreaterOrEqual(t, report.Severity(), previous)
		previous = report.Severity()
	}

	assert.Equal(t, SeverityCritical, report.Severity())
}

func TestReportRenderPreservesOrder(t *testing.T) {
	report := NewReport()
	report.Add(CheckResult{Category: "uptime", Lines: []string{"Uptime: 1d 2h 3m 4s"}})
	report.Add(CheckResult{Category: "temperature", Lines: []string{"Temperature: 42.00°C"}, Severity: SeverityCritical})
	report.Add(CheckResult{Category: "interfaces", Lines: []string{"Interfaces up: 1/1", "IF1 (eth0): up, In: 1.00 KB, Out: 2.00 KB"}})

	want := "Uptime: 1d 2h 3m 4s\n" +
		"Temperature: 42.00°C\n" +
		"Interfaces up: 1/1\n" +
		"IF1 (eth0): up, In: 1.00 KB, Out: 2.00 KB"

	assert.Equal(t, want, report.Render())
}

func TestTableOrderOfFirstAppearance(t *testing.T) {
	table := NewTable()
	table.Add("10", StringValue("a"))
	table.Add("2", StringValue("b"))
	table.Add("1", StringValue("c"))
	table.Add("2", StringValue("d")) // overwrite keeps position

	assert.Equal(t, []string{"10", "2", "1"}, table.Indices())
	assert.Equal(t, 3, table.Len())

	v, ok := table.Get("2")
	assert.True(t, ok)
	assert.Equal(t, "d", v.Text())

	_, ok = table.Get("missing")
	assert.False(t, ok)
}
