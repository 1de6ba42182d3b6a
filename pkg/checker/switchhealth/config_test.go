package switchhealth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholdsValidateFillsDefaults(t *testing.T) {
	var th Thresholds

	require.NoError(t, th.Validate())
	assert.InDelta(t, 50.0, th.WarnTemp, 0.0001)
	assert.InDelta(t, 70.0, th.CritTemp, 0.0001)

	custom := Thresholds{WarnTemp: 40, CritTemp: 60}
	require.NoError(t, custom.Validate())
	assert.InDelta(t, 40.0, custom.WarnTemp, 0.0001)
	assert.InDelta(t, 60.0, custom.CritTemp, 0.0001)
}

func TestThresholdsClassify(t *testing.T) {
	th := Thresholds{WarnTemp: 50, CritTemp: 70}

	assert.Equal(t, SeverityOK, th.Classify(49.99))
	assert.Equal(t, SeverityWarning, th.Classify(50))
	assert.Equal(t, SeverityWarning, th.Classify(69.99))
	assert.Equal(t, SeverityCritical, th.Classify(70))
	assert.Equal(t, SeverityCritical, th.Classify(120))
	assert.Equal(t, SeverityOK, th.Classify(-10))
}
