package rediswr

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rise-and-shine/redisgroup/elasticache"
	"github.com/rise-and-shine/redisgroup/masterslave"
	"github.com/rise-and-shine/redisgroup/netaddr"
)

const (
	firstSlot = 0
	lastSlot  = 16383

	noBackoff = -1
)

// ClusterOptions maps a replication group snapshot onto go-redis cluster options.
//
// ElastiCache replication groups without cluster mode are exposed through a
// manual slot map: one range covering every slot, served by the seed nodes in
// order. The first seed is the master candidate and the rest are replicas.
// Building the options opens no connections.
//
// The slot map is fixed at build time: it does not follow failovers and the
// snapshot's ScanInterval is not used here. After an ElastiCache failover,
// writes keep going to the first seed until the client is rebuilt, so seed the
// group's primary endpoint first and let the topology scanner rebuild or reload
// the client on its own schedule.
//
// A zero RetryInterval means no delay between retries.
func ClusterOptions(snap elasticache.Snapshot) *redis.ClusterOptions {
	base := snap.Base()
	addrs := netaddr.Strings(snap.NodeAddresses())
	db := snap.Database()

	opts := &redis.ClusterOptions{
		Addrs:        addrs,
		ClusterSlots: staticSlots(addrs),
		NewClient: func(opt *redis.Options) *redis.Client {
			opt.DB = db
			return redis.NewClient(opt)
		},

		ReadOnly:      base.ReadMode.ReadsFromReplicas(),
		RouteRandomly: base.ReadMode == masterslave.ReadModeMasterSlave,

		ClientName: base.ClientName,
		Username:   base.Username,
		Password:   base.Password,

		MaxRetries:      base.RetryAttempts,
		MinRetryBackoff: retryBackoff(base.RetryInterval),
		MaxRetryBackoff: retryBackoff(base.RetryInterval),

		DialTimeout:     base.ConnectTimeout,
		ReadTimeout:     base.Timeout,
		WriteTimeout:    base.Timeout,
		ConnMaxIdleTime: base.IdleConnectionTimeout,

		PoolSize:     max(base.MasterConnectionPoolSize, base.SlaveConnectionPoolSize),
		MinIdleConns: max(base.MasterConnectionMinimumIdleSize, base.SlaveConnectionMinimumIdleSize),
	}

	if base.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return opts
}

// retryBackoff maps zero to go-redis's "no backoff" value; go-redis reads zero as its 8ms default.
func retryBackoff(d time.Duration) time.Duration {
	if d == 0 {
		return noBackoff
	}
	return d
}

func staticSlots(addrs []string) func(context.Context) ([]redis.ClusterSlot, error) {
	nodes := make([]redis.ClusterNode, 0, len(addrs))
	for _, addr := range addrs {
		nodes = append(nodes, redis.ClusterNode{Addr: addr})
	}

	return func(context.Context) ([]redis.ClusterSlot, error) {
		return []redis.ClusterSlot{{
			Start: firstSlot,
			End:   lastSlot,
			Nodes: nodes,
		}}, nil
	}
}
