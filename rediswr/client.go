// Package rediswr builds go-redis clients for an ElastiCache replication group.
package rediswr

import (
	"github.com/code19m/errx"
	"github.com/redis/go-redis/v9"

	"github.com/rise-and-shine/redisgroup/elasticache"
)

// CodeNoNodeAddresses is returned by New when the snapshot has no seed nodes.
const CodeNoNodeAddresses = "NO_NODE_ADDRESSES"

// New creates a Redis client for the replication group described by snap.
// Connections are opened lazily on the first command.
func New(snap elasticache.Snapshot) (*redis.ClusterClient, error) {
	if len(snap.NodeAddresses()) == 0 {
		return nil, errx.New(
			"[rediswr]: replication group has no node addresses",
			errx.WithType(errx.T_Validation),
			errx.WithCode(CodeNoNodeAddresses),
		)
	}

	return redis.NewClusterClient(ClusterOptions(snap)), nil
}
