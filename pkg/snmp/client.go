// Package snmp pkg/snmp/client.go

package snmp

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/carverauto/switchprobe/pkg/checker/switchhealth"
	"github.com/carverauto/switchprobe/pkg/config"
)

// Version represents supported SNMP versions.
type Version string

const (
	Version1  Version = "v1"
	Version2c Version = "v2c"
	Version3  Version = "v3"
)

const (
	defaultPort      = 161
	defaultCommunity = "public"
	defaultTimeout   = 1 * time.Second
	defaultRetries   = 3
)

// Target describes the device to query.
type Target struct {
	Host      string          `json:"host"`
	Port      uint16          `json:"port"`
	Community string          `json:"community"`
	Version   Version         `json:"version"`
	Timeout   config.Duration `json:"timeout"`
	Retries   int             `json:"retries"`
}

// Validate implements config.Validator, filling defaults for unset fields.
func (t *Target) Validate() error {
	if t == nil {
		return ErrNilTarget
	}

	if t.Host == "" {
		return ErrTargetHostRequired
	}

	if t.Port == 0 {
		t.Port = defaultPort
	}

	if t.Community == "" {
		t.Community = defaultCommunity
	}

	if t.Version == "" {
		t.Version = Version2c
	}

	if time.Duration(t.Timeout) == 0 {
		t.Timeout = config.Duration(defaultTimeout)
	}

	if t.Retries == 0 {
		t.Retries = defaultRetries
	}

	return nil
}

// SNMPError wraps SNMP-specific errors with additional context.
type SNMPError struct {
	Op      string
	Target  string
	Wrapped error
}

func (e *SNMPError) Error() string {
	return fmt.Sprintf("SNMP %s failed for target %s: %v", e.Op, e.Target, e.Wrapped)
}

func (e *SNMPError) Unwrap() error {
	return e.Wrapped
}

// Client implements switchhealth.MetricSource using gosnmp. Timeouts and
// retries are handled by the underlying library per the Target settings.
type Client struct {
	client    *gosnmp.GoSNMP
	target    *Target
	mu        sync.Mutex
	connected bool
}

// NewClient creates a client for the target. No network traffic happens
// until the first query.
func NewClient(target *Target) (*Client, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("invalid target: %w", err)
	}

	client := &gosnmp.GoSNMP{
		Target:             target.Host,
		Port:               target.Port,
		Community:          target.Community,
		Timeout:            time.Duration(target.Timeout),
		Retries:            target.Retries,
		ExponentialTimeout: true,
		MaxOids:            gosnmp.MaxOids,
	}

	switch target.Version {
	case Version1:
		client.Version = gosnmp.Version1
	case Version2c:
		client.Version = gosnmp.Version2c
	case Version3:
		return nil, ErrSNMPv3NotImplemented
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, target.Version)
	}

	return &Client{
		client: client,
		target: target,
	}, nil
}

// Close shuts down the underlying connection if one was established.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}

	c.connected = false

	return c.client.Conn.Close()
}

func (c *Client) ensureConnected(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.client.Context = ctx

	if c.connected {
		return nil
	}

	if err := c.client.Connect(); err != nil {
		return &SNMPError{
			Op:      "connect",
			Target:  c.target.Host,
			Wrapped: err,
		}
	}

	c.connected = true

	return nil
}

// GetScalar implements switchhealth.MetricSource.
func (c *Client) GetScalar(ctx context.Context, oid string) (switchhealth.RawValue, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return switchhealth.AbsentValue(), err
	}

	result, err := c.client.Get([]string{oid})
	if err != nil {
		return switchhealth.AbsentValue(), &SNMPError{
			Op:      "get",
			Target:  c.target.Host,
			Wrapped: err,
		}
	}

	if result.Error != gosnmp.NoError {
		return switchhealth.AbsentValue(), &SNMPError{
			Op:      "get",
			Target:  c.target.Host,
			Wrapped: fmt.Errorf("%w: %v", ErrDeviceError, result.Error),
		}
	}

	if len(result.Variables) == 0 {
		return switchhealth.AbsentValue(), &SNMPError{
			Op:      "get",
			Target:  c.target.Host,
			Wrapped: ErrEmptyResponse,
		}
	}

	value, err := convertPDU(result.Variables[0])
	if err != nil {
		return switchhealth.AbsentValue(), &SNMPError{
			Op:      "convert",
			Target:  c.target.Host,
			Wrapped: err,
		}
	}

	return value, nil
}

// WalkTable implements switchhealth.MetricSource. Row indices come from the
// last dot-separated component of each walked OID and are treated as opaque
// strings.
func (c *Client) WalkTable(ctx context.Context, prefix string) (*switchhealth.Table, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	var (
		pdus []gosnmp.SnmpPDU
		err  error
	)

	if c.client.Version == gosnmp.Version1 {
		pdus, err = c.client.WalkAll(prefix)
	} else {
		pdus, err = c.client.BulkWalkAll(prefix)
	}

	if err != nil {
		return nil, &SNMPError{
			Op:      "walk",
			Target:  c.target.Host,
			Wrapped: err,
		}
	}

	table := switchhealth.NewTable()

	for _, pdu := range pdus {
		value, err := convertPDU(pdu)
		if err != nil {
			return nil, &SNMPError{
				Op:      "convert",
				Target:  c.target.Host,
				Wrapped: err,
			}
		}

		table.Add(rowIndex(pdu.Name), value)
	}

	return table, nil
}

// rowIndex derives the opaque row key from a walked OID.
func rowIndex(oid string) string {
	if i := strings.LastIndex(oid, "."); i >= 0 {
		return oid[i+1:]
	}

	return oid
}

// convertPDU converts an SNMP variable into the checker's value union.
func convertPDU(pdu gosnmp.SnmpPDU) (switchhealth.RawValue, error) {
	switch pdu.Type {
	case gosnmp.OctetString:
		return switchhealth.StringValue(string(pdu.Value.([]byte))), nil
	case gosnmp.Integer:
		return switchhealth.IntValue(int64(pdu.Value.(int))), nil
	case gosnmp.Counter32, gosnmp.Gauge32:
		return switchhealth.IntValue(int64(pdu.Value.(uint))), nil
	case gosnmp.TimeTicks:
		return switchhealth.IntValue(int64(pdu.Value.(uint32))), nil
	case gosnmp.Counter64:
		// Saturate rather than wrap negative; downstream decoding
		// expects non-negative counters.
		v := pdu.Value.(uint64)
		if v > math.MaxInt64 {
			v = math.MaxInt64
		}

		return switchhealth.IntValue(int64(v)), nil
	case gosnmp.IPAddress, gosnmp.ObjectIdentifier:
		return switchhealth.StringValue(pdu.Value.(string)), nil
	case gosnmp.Null:
		return switchhealth.AbsentValue(), nil
	case gosnmp.NoSuchObject:
		return switchhealth.AbsentValue(), ErrNoSuchObject
	case gosnmp.NoSuchInstance:
		return switchhealth.AbsentValue(), ErrNoSuchInstance
	case gosnmp.EndOfMibView:
		return switchhealth.AbsentValue(), ErrEndOfMibView
	default:
		return switchhealth.AbsentValue(), fmt.Errorf("%w: %v", ErrUnsupportedType, pdu.Type)
	}
}
