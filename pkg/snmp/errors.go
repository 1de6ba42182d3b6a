package snmp

import "errors"

var (
	ErrNilTarget            = errors.New("target configuration is nil")
	ErrTargetHostRequired   = errors.New("target host is required")
	ErrUnsupportedVersion   = errors.New("unsupported SNMP version")
	ErrSNMPv3NotImplemented = errors.New("SNMPv3 not yet implemented")
	ErrDeviceError          = errors.New("device reported error status")
	ErrNoSuchObject         = errors.New("SNMP NoSuchObject")
	ErrNoSuchInstance       = errors.New("SNMP NoSuchInstance")
	ErrEndOfMibView         = errors.New("SNMP EndOfMibView")
	ErrEmptyResponse        = errors.New("empty SNMP response")
	ErrUnsupportedType      = errors.New("unsupported SNMP type")
)
