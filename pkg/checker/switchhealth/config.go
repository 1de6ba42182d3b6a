// Package switchhealth pkg/checker/switchhealth/config.go

package switchhealth

const (
	defaultWarnTemp = 50.0
	defaultCritTemp = 70.0
)

// Thresholds holds the temperature policy. Crit is expected to be at or
// above Warn; that relationship is the caller's responsibility and is not
// validated here.
type Thresholds struct {
	WarnTemp float64 `json:"warn_temp"`
	CritTemp float64 `json:"crit_temp"`
}

// Validate implements config.Validator, filling unset thresholds with the
// defaults.
func (t *Thresholds) Validate() error {
	if t.WarnTemp == 0 {
		t.WarnTemp = defaultWarnTemp
	}

	if t.CritTemp == 0 {
		t.CritTemp = defaultCritTemp
	}

	return nil
}

// Classify rates a temperature reading. Both boundaries are inclusive on
// the high side.
func (t Thresholds) Classify(temp float64) Severity {
	switch {
	case temp >= t.CritTemp:
		return SeverityCritical
	case temp >= t.WarnTemp:
		return SeverityWarning
	default:
		return SeverityOK
	}
}
