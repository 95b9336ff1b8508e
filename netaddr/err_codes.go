package netaddr

const (
	// CodeInvalidAddressFormat is returned when a string cannot be parsed as host:port.
	CodeInvalidAddressFormat = "INVALID_ADDRESS_FORMAT"
)
