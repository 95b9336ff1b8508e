package elasticache

import "github.com/rise-and-shine/redisgroup/netaddr"

// Error codes for replication group configuration.
const (
	// CodeInvalidAddressFormat is returned by AddNodeAddress when an input is not host:port.
	CodeInvalidAddressFormat = netaddr.CodeInvalidAddressFormat

	// CodeInvalidConfig is returned by Validate.
	CodeInvalidConfig = "INVALID_ELASTICACHE_CONFIG"
)
