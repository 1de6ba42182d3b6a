// Package switchhealth pkg/checker/switchhealth/codec.go

package switchhealth

import (
	"fmt"
	"strconv"
	"strings"
)

const ticksPerSecond = 100 // sysUpTime counts hundredths of a second

// Uptime is a device uptime broken into calendar components.
// Hours < 24, minutes and seconds < 60.
type Uptime struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// decodeUptime converts a raw tick count into calendar components, largest
// unit first. Negative ticks are a caller contract violation.
func decodeUptime(ticks int64) Uptime {
	secs := ticks / ticksPerSecond

	up := Uptime{Days: secs / 86400}
	secs %= 86400
	up.Hours = secs / 3600
	secs %= 3600
	up.Minutes = secs / 60
	up.Seconds = secs % 60

	return up
}

// decodeTemperature converts a raw milli-degree reading to degrees Celsius.
func decodeTemperature(raw int64) float64 {
	return float64(raw) / 1000
}

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// ByteSize is a byte count scaled to the largest unit not exceeding its
// magnitude. TB is a clamp: values past it keep the TB unit.
type ByteSize struct {
	Value float64
	Unit  string
}

func (b ByteSize) String() string {
	return fmt.Sprintf("%.2f %s", b.Value, b.Unit)
}

func decodeByteSize(raw int64) ByteSize {
	value := float64(raw)
	unit := 0

	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return ByteSize{Value: value, Unit: byteUnits[unit]}
}

// ComponentState classifies a PSU or fan status value.
type ComponentState int

const (
	ComponentOK ComponentState = iota
	ComponentFailed
	ComponentOther
)

// ComponentStatus is the classified state of one PSU or fan row. Value is
// set for ComponentFailed, Text for ComponentOther.
type ComponentStatus struct {
	State ComponentState
	Value int64
	Text  string
}

// classifyComponentState maps a raw status value: a numeric 1 is OK, any
// other numeric is a failure carrying the value, and anything else is an
// opaque vendor state name shown upper-cased. A value the device did not
// return shows as "N/A" rather than a blank.
func classifyComponentState(raw RawValue) ComponentStatus {
	if raw.Kind == RawAbsent {
		return ComponentStatus{State: ComponentOther, Text: "N/A"}
	}

	text := raw.Text()

	if isDigits(text) {
		n, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			if n == 1 {
				return ComponentStatus{State: ComponentOK}
			}

			return ComponentStatus{State: ComponentFailed, Value: n}
		}
	}

	return ComponentStatus{State: ComponentOther, Text: strings.ToUpper(text)}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// intValue extracts an integer from a raw wire value. Digit strings count;
// anything else is a parse failure.
func intValue(raw RawValue) (int64, error) {
	switch raw.Kind {
	case RawInteger:
		return raw.Int, nil
	case RawString:
		n, err := strconv.ParseInt(strings.TrimSpace(raw.Str), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, raw.Str)
		}

		return n, nil
	default:
		return 0, ErrValueAbsent
	}
}
