package elasticache_test

import (
	"fmt"

	"github.com/rise-and-shine/redisgroup/elasticache"
	"github.com/rise-and-shine/redisgroup/netaddr"
)

func Example() {
	cfg := elasticache.New()
	if err := cfg.AddNodeAddress("primary.example.cache.amazonaws.com:6379", "replica.example.cache.amazonaws.com:6379"); err != nil {
		panic(err)
	}
	cfg.SetScanInterval(2000).SetDatabase(1)

	snap := cfg.Freeze()
	fmt.Println(netaddr.Strings(snap.NodeAddresses()))
	fmt.Println(snap.ScanInterval(), snap.Database())
	// Output:
	// [primary.example.cache.amazonaws.com:6379 replica.example.cache.amazonaws.com:6379]
	// 2s 1
}
