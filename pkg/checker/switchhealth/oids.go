package switchhealth

// Object identifiers queried by the probe. The interface and uptime OIDs are
// standard IF-MIB/SNMPv2-MIB; the temperature, PSU and fan OIDs are from the
// switch vendor's enterprise subtree. These are wire constants and must not
// be altered.
const (
	OIDSysUptime    = "1.3.6.1.2.1.1.3.0"
	OIDTemperature  = "1.3.6.1.2.1.99.1.1.1.4.7001"
	OIDIfDescr      = "1.3.6.1.2.1.2.2.1.2"
	OIDIfOperStatus = "1.3.6.1.2.1.2.2.1.8"
	OIDIfInOctets   = "1.3.6.1.2.1.2.2.1.10"
	OIDIfOutOctets  = "1.3.6.1.2.1.2.2.1.16"
	OIDPSUStatus    = "1.3.6.1.4.1.47196.4.1.1.3.11.2.1.1.4"
	OIDFanStatus    = "1.3.6.1.4.1.47196.4.1.1.3.11.5.1.1.5"
)
