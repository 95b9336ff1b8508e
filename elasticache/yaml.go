package elasticache

import (
	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/rise-and-shine/redisgroup/masterslave"
	"github.com/rise-and-shine/redisgroup/netaddr"
)

// fileConfig is the YAML shape of Config. Base settings are inlined at the same level.
type fileConfig struct {
	masterslave.Config `yaml:",inline"`

	NodeAddresses []string `yaml:"node_addresses"`
	ScanInterval  int      `yaml:"scan_interval"  default:"1000"`
	Database      int      `yaml:"database"       default:"0"`
}

// UnmarshalYAML decodes a Config. Defaults are applied before decoding,
// so absent keys keep their defaults and explicit values, zero included, are kept.
// Node addresses go through AddNodeAddress.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var fc fileConfig
	if err := defaults.Set(&fc); err != nil {
		return errx.Wrap(err)
	}
	if err := node.Decode(&fc); err != nil {
		return errx.Wrap(err)
	}

	decoded := New()
	decoded.Config = fc.Config
	if err := decoded.AddNodeAddress(fc.NodeAddresses...); err != nil {
		return err
	}
	decoded.SetScanInterval(fc.ScanInterval).SetDatabase(fc.Database)

	*c = *decoded
	return nil
}

// MarshalYAML encodes a Config in the same shape UnmarshalYAML reads.
// Value receiver so Config held by value inside another struct still marshals through it.
func (c Config) MarshalYAML() (any, error) {
	return fileConfig{
		Config:        c.Config,
		NodeAddresses: netaddr.Strings(c.nodeAddresses),
		ScanInterval:  c.scanInterval,
		Database:      c.database,
	}, nil
}
