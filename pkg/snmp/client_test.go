package snmp

import (
	"math"
	"testing"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/switchprobe/pkg/checker/switchhealth"
	"github.com/carverauto/switchprobe/pkg/config"
)

func TestTargetValidate(t *testing.T) {
	t.Run("host required", func(t *testing.T) {
		target := &Target{}
		require.ErrorIs(t, target.Validate(), ErrTargetHostRequired)
	})

	t.Run("defaults filled", func(t *testing.T) {
		target := &Target{Host: "192.0.2.1"}
		require.NoError(t, target.Validate())

		assert.Equal(t, uint16(161), target.Port)
		assert.Equal(t, "public", target.Community)
		assert.Equal(t, Version2c, target.Version)
		assert.Equal(t, time.Second, time.Duration(target.Timeout))
		assert.Equal(t, 3, target.Retries)
	})

	t.Run("explicit values kept", func(t *testing.T) {
		target := &Target{
			Host:      "switch.example.net",
			Port:      1161,
			Community: "ops",
			Version:   Version1,
			Timeout:   config.Duration(5 * time.Second),
			Retries:   1,
		}
		require.NoError(t, target.Validate())

		assert.Equal(t, uint16(1161), target.Port)
		assert.Equal(t, "ops", target.Community)
		assert.Equal(t, Version1, target.Version)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("v2c", func(t *testing.T) {
		client, err := NewClient(&Target{Host: "192.0.2.1"})
		require.NoError(t, err)
		require.NotNil(t, client)
	})

	t.Run("v3 not implemented", func(t *testing.T) {
		_, err := NewClient(&Target{Host: "192.0.2.1", Version: Version3})
		require.ErrorIs(t, err, ErrSNMPv3NotImplemented)
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := NewClient(&Target{Host: "192.0.2.1", Version: "v4"})
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("invalid target", func(t *testing.T) {
		_, err := NewClient(&Target{})
		require.ErrorIs(t, err, ErrTargetHostRequired)
	})
}

func TestRowIndex(t *testing.T) {
	assert.Equal(t, "1", rowIndex("1.3.6.1.2.1.2.2.1.2.1"))
	assert.Equal(t, "10101", rowIndex(".1.3.6.1.2.1.2.2.1.2.10101"))
	assert.Equal(t, "opaque", rowIndex("opaque"))
}

func TestConvertPDU(t *testing.T) {
	tests := []struct {
		name    string
		pdu     gosnmp.SnmpPDU
		want    switchhealth.RawValue
		wantErr error
	}{
		{
			name: "octet string",
			pdu:  gosnmp.SnmpPDU{Type: gosnmp.OctetString, Value: []byte("GigabitEthernet1")},
			want: switchhealth.StringValue("GigabitEthernet1"),
		},
		{
			name: "integer",
			pdu:  gosnmp.SnmpPDU{Type: gosnmp.Integer, Value: 1},
			want: switchhealth.IntValue(1),
		},
		{
			name: "counter32",
			pdu:  gosnmp.SnmpPDU{Type: gosnmp.Counter32, Value: uint(4096)},
			want: switchhealth.IntValue(4096),
		},
		{
			name: "gauge32",
			pdu:  gosnmp.SnmpPDU{Type: gosnmp.Gauge32, Value: uint(45320)},
			want: switchhealth.IntValue(45320),
		},
		{
			name: "timeticks",
			pdu:  gosnmp.SnmpPDU{Type: gosnmp.TimeTicks, Value: uint32(123456789)},
			want: switchhealth.IntValue(123456789),
		},
		{
			name: "counter64",
			pdu:  gosnmp.SnmpPDU{Type: gosnmp.Counter64, Value: uint64(1 << 40)},
			want: switchhealth.IntValue(1 << 40),
		},
		{
			name: "counter64 saturates instead of wrapping negative",
			pdu:  gosnmp.SnmpPDU{Type: gosnmp.Counter64, Value: uint64(math.MaxUint64)},
			want: switchhealth.IntValue(math.MaxInt64),
		},
		{
			name: "null",
			pdu:  gosnmp.SnmpPDU{Type: gosnmp.Null},
			want: switchhealth.AbsentValue(),
		},
		{
			name:    "no such object",
			pdu:     gosnmp.SnmpPDU{Type: gosnmp.NoSuchObject},
			wantErr: ErrNoSuchObject,
		},
		{
			name:    "no such instance",
			pdu:     gosnmp.SnmpPDU{Type: gosnmp.NoSuchInstance},
			wantErr: ErrNoSuchInstance,
		},
		{
			name:    "end of mib view",
			pdu:     gosnmp.SnmpPDU{Type: gosnmp.EndOfMibView},
			wantErr: ErrEndOfMibView,
		},
		{
			name:    "unsupported type",
			pdu:     gosnmp.SnmpPDU{Type: gosnmp.Opaque, Value: []byte{0x01}},
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertPDU(tt.pdu)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSNMPErrorWrapping(t *testing.T) {
	err := &SNMPError{Op: "get", Target: "192.0.2.1", Wrapped: ErrNoSuchObject}

	assert.Equal(t, "SNMP get failed for target 192.0.2.1: SNMP NoSuchObject", err.Error())
	require.ErrorIs(t, err, ErrNoSuchObject)
}
