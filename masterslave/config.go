// Package masterslave holds the connection settings shared by every
// master/replica Redis topology: credentials, timeouts, pool sizes and read routing.
package masterslave

import (
	"time"

	"github.com/creasty/defaults"

	"github.com/rise-and-shine/redisgroup/val"
)

// Config defines the connection options for a master with read replicas.
type Config struct {
	// Username is the ACL user. Empty means the default user.
	Username string `yaml:"username"`
	// Password is the AUTH password.
	Password string `yaml:"password"    mask:"true"`
	// ClientName is sent with CLIENT SETNAME on every new connection.
	ClientName string `yaml:"client_name"`
	// TLS enables TLS on every connection.
	TLS bool `yaml:"tls" default:"false"`

	// ConnectTimeout bounds establishing a new connection.
	ConnectTimeout time.Duration `yaml:"connect_timeout"         default:"10s"    validate:"gte=0"`
	// Timeout bounds waiting for a command response.
	Timeout time.Duration `yaml:"timeout"                 default:"3s"     validate:"gte=0"`
	// IdleConnectionTimeout closes pooled connections idle for longer than this.
	IdleConnectionTimeout time.Duration `yaml:"idle_connection_timeout" default:"10s"    validate:"gte=0"`
	// RetryAttempts is how many times a failed command is retried.
	RetryAttempts int `yaml:"retry_attempts"          default:"3"      validate:"gte=0"`
	// RetryInterval is the delay between retries.
	RetryInterval time.Duration `yaml:"retry_interval"          default:"1500ms" validate:"gte=0"`

	MasterConnectionPoolSize        int `yaml:"master_connection_pool_size"         default:"64" validate:"gte=1"`
	MasterConnectionMinimumIdleSize int `yaml:"master_connection_minimum_idle_size" default:"24" validate:"gte=0,ltefield=MasterConnectionPoolSize"`
	SlaveConnectionPoolSize         int `yaml:"slave_connection_pool_size"          default:"64" validate:"gte=1"`
	SlaveConnectionMinimumIdleSize  int `yaml:"slave_connection_minimum_idle_size"  default:"24" validate:"gte=0,ltefield=SlaveConnectionPoolSize"`

	// ReadMode selects where reads go.
	// Valid values: slave, master, master_slave.
	ReadMode ReadMode `yaml:"read_mode" default:"slave" validate:"oneof=slave master master_slave"`

	// FailedSlaveReconnectionInterval is the delay before a failed replica is retried.
	FailedSlaveReconnectionInterval time.Duration `yaml:"failed_slave_reconnection_interval" default:"3s" validate:"gte=0"`
}

// Defaults returns a Config with every field set to its default value.
func Defaults() Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		// Tags are static; a failure here is a programming error.
		panic("[masterslave]: invalid default tags: " + err.Error())
	}
	return c
}

// Clone returns an independent copy. All fields are values, so a plain copy suffices.
func (c Config) Clone() Config {
	return c
}

// Validate checks value ranges. It is not called by setters; callers opt in.
func (c Config) Validate() error {
	return val.ValidateStruct(c, CodeInvalidConfig)
}
