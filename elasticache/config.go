// Package elasticache configures a Redis client for an AWS ElastiCache replication group:
// one master endpoint plus read replicas, discovered from a list of seed nodes
// and periodically re-resolved by a topology scanner.
//
// A Config is built once during startup and then treated as read-only.
// It has no internal locking; hand concurrent readers a Snapshot from Freeze instead.
package elasticache

import (
	"slices"
	"time"

	"github.com/rise-and-shine/redisgroup/masterslave"
	"github.com/rise-and-shine/redisgroup/netaddr"
	"github.com/rise-and-shine/redisgroup/val"
)

const (
	// DefaultScanInterval is the topology scan period in milliseconds.
	DefaultScanInterval = 1000
	// DefaultDatabase is the logical database selected on every connection.
	DefaultDatabase = 0
)

// Config holds replication group connection parameters.
// Use New to get a Config with defaults; the zero value has a zero scan interval.
type Config struct {
	masterslave.Config

	nodeAddresses []netaddr.Address
	scanInterval  int
	database      int
}

// New returns a Config with default values and no node addresses.
func New() *Config {
	return &Config{
		Config:       masterslave.Defaults(),
		scanInterval: DefaultScanInterval,
		database:     DefaultDatabase,
	}
}

// AddNodeAddress appends seed nodes given in host:port form, in argument order.
//
// Either every address is appended or none is: on the first malformed input
// it returns an error with code CodeInvalidAddressFormat and leaves the config unchanged.
func (c *Config) AddNodeAddress(addresses ...string) error {
	parsed, err := netaddr.ParseAll(addresses...)
	if err != nil {
		return err
	}
	c.nodeAddresses = append(c.nodeAddresses, parsed...)
	return nil
}

// MustAddNodeAddress is AddNodeAddress for fluent bootstrap code. It panics on a malformed address.
func (c *Config) MustAddNodeAddress(addresses ...string) *Config {
	if err := c.AddNodeAddress(addresses...); err != nil {
		panic(err)
	}
	return c
}

// NodeAddresses returns a copy of the seed nodes in insertion order.
func (c *Config) NodeAddresses() []netaddr.Address {
	return slices.Clone(c.nodeAddresses)
}

// setNodeAddresses replaces the node list with a private copy of addrs.
func (c *Config) setNodeAddresses(addrs []netaddr.Address) {
	c.nodeAddresses = slices.Clone(addrs)
}

// ScanInterval returns the topology scan interval in milliseconds.
func (c *Config) ScanInterval() int {
	return c.scanInterval
}

// ScanIntervalDuration returns the scan interval as a time.Duration.
func (c *Config) ScanIntervalDuration() time.Duration {
	return time.Duration(c.scanInterval) * time.Millisecond
}

// SetScanInterval sets the topology scan interval in milliseconds.
// The value is not checked here; see Validate.
func (c *Config) SetScanInterval(ms int) *Config {
	c.scanInterval = ms
	return c
}

// Database returns the logical database index.
func (c *Config) Database() int {
	return c.database
}

// SetDatabase sets the logical database index used on every connection.
// The value is not checked here; see Validate.
func (c *Config) SetDatabase(index int) *Config {
	c.database = index
	return c
}

// Clone returns a copy that shares no mutable state with c.
func (c *Config) Clone() *Config {
	cp := &Config{
		Config: c.Config.Clone(),
	}
	cp.setNodeAddresses(c.nodeAddresses)
	cp.SetScanInterval(c.scanInterval)
	cp.SetDatabase(c.database)
	return cp
}

// Validate applies the checks setters skip: at least one node address,
// a positive scan interval, a non-negative database and a valid base config.
func (c *Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}

	return val.ValidateStruct(struct {
		NodeAddresses []netaddr.Address `yaml:"node_addresses" validate:"min=1"`
		ScanInterval  int               `yaml:"scan_interval"  validate:"gt=0"`
		Database      int               `yaml:"database"       validate:"gte=0"`
	}{
		NodeAddresses: c.nodeAddresses,
		ScanInterval:  c.scanInterval,
		Database:      c.database,
	}, CodeInvalidConfig)
}
