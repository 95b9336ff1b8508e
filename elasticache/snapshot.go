package elasticache

import (
	"slices"
	"time"

	"github.com/rise-and-shine/redisgroup/masterslave"
	"github.com/rise-and-shine/redisgroup/netaddr"
)

// Snapshot is a frozen copy of a Config.
// It has no setters, so it can be shared with the topology scanner and connection pool.
type Snapshot struct {
	base          masterslave.Config
	nodeAddresses []netaddr.Address
	scanInterval  time.Duration
	database      int
}

// Freeze returns a Snapshot of the current configuration.
// Later changes to c are not visible through the Snapshot.
func (c *Config) Freeze() Snapshot {
	return Snapshot{
		base:          c.Config.Clone(),
		nodeAddresses: slices.Clone(c.nodeAddresses),
		scanInterval:  c.ScanIntervalDuration(),
		database:      c.database,
	}
}

// NodeAddresses returns a copy of the seed nodes in insertion order.
func (s Snapshot) NodeAddresses() []netaddr.Address {
	return slices.Clone(s.nodeAddresses)
}

// ScanInterval returns the topology scan period.
func (s Snapshot) ScanInterval() time.Duration {
	return s.scanInterval
}

// Database returns the logical database index.
func (s Snapshot) Database() int {
	return s.database
}

// Base returns the master/replica connection settings.
func (s Snapshot) Base() masterslave.Config {
	return s.base
}
