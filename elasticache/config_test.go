package elasticache_test

import (
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/redisgroup/elasticache"
	"github.com/rise-and-shine/redisgroup/masterslave"
	"github.com/rise-and-shine/redisgroup/netaddr"
)

func addrStrings(c *elasticache.Config) []string {
	return netaddr.Strings(c.NodeAddresses())
}

func TestNew_Defaults(t *testing.T) {
	c := elasticache.New()

	assert.Equal(t, 1000, c.ScanInterval())
	assert.Equal(t, time.Second, c.ScanIntervalDuration())
	assert.Equal(t, 0, c.Database())
	assert.Empty(t, c.NodeAddresses())
	assert.Equal(t, masterslave.Defaults(), c.Config)
}

func TestAddNodeAddress_AppendsOne(t *testing.T) {
	inputs := []struct {
		raw  string
		host string
		port int
	}{
		{raw: "localhost:6379", host: "localhost", port: 6379},
		{raw: "10.0.0.1:6380", host: "10.0.0.1", port: 6380},
		{raw: "[2001:db8::1]:7000", host: "2001:db8::1", port: 7000},
		{raw: "primary.my-group.abc123.use1.cache.amazonaws.com:6379", host: "primary.my-group.abc123.use1.cache.amazonaws.com", port: 6379},
	}

	c := elasticache.New()
	for i, in := range inputs {
		require.NoError(t, c.AddNodeAddress(in.raw))

		addrs := c.NodeAddresses()
		require.Len(t, addrs, i+1)
		assert.Equal(t, in.host, addrs[i].Host)
		assert.Equal(t, in.port, addrs[i].Port)
	}
}

func TestAddNodeAddress_PreservesOrder(t *testing.T) {
	c := elasticache.New()
	require.NoError(t, c.AddNodeAddress("a:1", "b:2", "c:3"))
	require.NoError(t, c.AddNodeAddress("d:4"))

	assert.Equal(t, []string{"a:1", "b:2", "c:3", "d:4"}, addrStrings(c))
}

func TestAddNodeAddress_FailFast(t *testing.T) {
	tests := []struct {
		name      string
		addresses []string
	}{
		{name: "missing colon", addresses: []string{"localhost"}},
		{name: "non numeric port", addresses: []string{"localhost:abc"}},
		{name: "port out of range", addresses: []string{"localhost:70000"}},
		{name: "malformed last of many", addresses: []string{"b:2", "c:3", "d"}},
		{name: "malformed middle of many", addresses: []string{"b:2", "c:x", "d:4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := elasticache.New()
			require.NoError(t, c.AddNodeAddress("a:1"))

			err := c.AddNodeAddress(tt.addresses...)
			require.Error(t, err)
			assert.True(t, errx.IsCodeIn(err, elasticache.CodeInvalidAddressFormat))

			// No address from the failed call is applied.
			assert.Equal(t, []string{"a:1"}, addrStrings(c))
		})
	}
}

func TestMustAddNodeAddress(t *testing.T) {
	c := elasticache.New().MustAddNodeAddress("a:1", "b:2").SetDatabase(2)
	assert.Equal(t, []string{"a:1", "b:2"}, addrStrings(c))
	assert.Equal(t, 2, c.Database())

	assert.Panics(t, func() {
		elasticache.New().MustAddNodeAddress("nope")
	})
}

func TestNodeAddresses_DefensiveCopy(t *testing.T) {
	c := elasticache.New().MustAddNodeAddress("a:1", "b:2")

	first := c.NodeAddresses()
	second := c.NodeAddresses()
	assert.Equal(t, first, second)

	first[0] = netaddr.Address{Host: "evil", Port: 1}
	_ = append(first, netaddr.Address{Host: "extra", Port: 2})

	assert.Equal(t, []string{"a:1", "b:2"}, addrStrings(c))
}

func TestSetters_Chaining(t *testing.T) {
	chained := elasticache.New().SetScanInterval(250).SetDatabase(5).SetScanInterval(500)

	sequential := elasticache.New()
	sequential.SetScanInterval(250)
	sequential.SetDatabase(5)
	sequential.SetScanInterval(500)

	assert.Equal(t, sequential.ScanInterval(), chained.ScanInterval())
	assert.Equal(t, sequential.Database(), chained.Database())
	assert.Equal(t, 500, chained.ScanInterval())
	assert.Equal(t, 5, chained.Database())
}

// Setters keep values the server or scanner would reject. Validate is the opt-in check.
func TestSetters_Permissive(t *testing.T) {
	c := elasticache.New().SetScanInterval(-10).SetDatabase(-1)

	assert.Equal(t, -10, c.ScanInterval())
	assert.Equal(t, -1, c.Database())

	c.SetScanInterval(0)
	assert.Equal(t, 0, c.ScanInterval())
}

func TestClone_Isolation(t *testing.T) {
	src := elasticache.New().MustAddNodeAddress("a:1", "b:2").SetScanInterval(2000).SetDatabase(3)
	src.Password = "secret"
	src.ReadMode = masterslave.ReadModeMasterSlave

	cp := src.Clone()
	assert.Equal(t, addrStrings(src), addrStrings(cp))
	assert.Equal(t, 2000, cp.ScanInterval())
	assert.Equal(t, 3, cp.Database())
	assert.Equal(t, "secret", cp.Password)
	assert.Equal(t, masterslave.ReadModeMasterSlave, cp.ReadMode)

	require.NoError(t, src.AddNodeAddress("c:3"))
	assert.Equal(t, []string{"a:1", "b:2"}, addrStrings(cp))

	require.NoError(t, cp.AddNodeAddress("z:9"))
	assert.Equal(t, []string{"a:1", "b:2", "c:3"}, addrStrings(src))
	assert.Equal(t, []string{"a:1", "b:2", "z:9"}, addrStrings(cp))

	cp.SetScanInterval(1).SetDatabase(9)
	cp.Password = "changed"
	assert.Equal(t, 2000, src.ScanInterval())
	assert.Equal(t, 3, src.Database())
	assert.Equal(t, "secret", src.Password)
}

func TestClone_SharedBackingArray(t *testing.T) {
	// Spare capacity in the source slice must not leak appends between copies.
	src := elasticache.New()
	for _, a := range []string{"a:1", "b:2", "c:3"} {
		require.NoError(t, src.AddNodeAddress(a))
	}

	cp1 := src.Clone()
	cp2 := src.Clone()
	require.NoError(t, cp1.AddNodeAddress("x:1"))
	require.NoError(t, cp2.AddNodeAddress("y:2"))

	assert.Equal(t, []string{"a:1", "b:2", "c:3", "x:1"}, addrStrings(cp1))
	assert.Equal(t, []string{"a:1", "b:2", "c:3", "y:2"}, addrStrings(cp2))
}

func TestValidate(t *testing.T) {
	valid := func() *elasticache.Config {
		return elasticache.New().MustAddNodeAddress("a:1")
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name  string
		cfg   *elasticache.Config
		field string
	}{
		{name: "no node addresses", cfg: elasticache.New(), field: "node_addresses"},
		{name: "zero scan interval", cfg: valid().SetScanInterval(0), field: "scan_interval"},
		{name: "negative scan interval", cfg: valid().SetScanInterval(-1), field: "scan_interval"},
		{name: "negative database", cfg: valid().SetDatabase(-1), field: "database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.True(t, errx.IsCodeIn(err, elasticache.CodeInvalidConfig))
			assert.Contains(t, errx.AsErrorX(err).Fields(), tt.field)
		})
	}

	t.Run("invalid base config", func(t *testing.T) {
		c := valid()
		c.ReadMode = "nearest"

		err := c.Validate()
		require.Error(t, err)
		assert.True(t, errx.IsCodeIn(err, masterslave.CodeInvalidConfig))
	})
}

func TestFreeze(t *testing.T) {
	c := elasticache.New().MustAddNodeAddress("a:1", "b:2").SetScanInterval(1500).SetDatabase(4)
	c.Username = "app"

	snap := c.Freeze()

	require.NoError(t, c.AddNodeAddress("c:3"))
	c.SetScanInterval(10).SetDatabase(0)
	c.Username = "other"

	assert.Equal(t, []string{"a:1", "b:2"}, netaddr.Strings(snap.NodeAddresses()))
	assert.Equal(t, 1500*time.Millisecond, snap.ScanInterval())
	assert.Equal(t, 4, snap.Database())
	assert.Equal(t, "app", snap.Base().Username)

	addrs := snap.NodeAddresses()
	addrs[0].Host = "mutated"
	assert.Equal(t, "a", snap.NodeAddresses()[0].Host)
}
