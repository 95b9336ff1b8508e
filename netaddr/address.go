// Package netaddr parses and represents Redis node addresses in host:port form.
package netaddr

import (
	"net"
	"strconv"
	"strings"

	"github.com/code19m/errx"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/rise-and-shine/redisgroup/val"
)

// Address is a parsed node endpoint. It is a value type and never changes after parsing.
type Address struct {
	Host string
	Port int
}

// String returns the address in host:port form. IPv6 hosts are bracketed.
func (a Address) String() string {
	return net.JoinHostPort(a.Host, cast.ToString(a.Port))
}

// Parse parses s in host:port form.
// The host must be an IP literal (IPv6 in brackets) or a host name whose labels
// hold letters, digits, hyphens and underscores and do not start or end with a hyphen.
// All-numeric dotted hosts that are not valid IPv4 are rejected.
// The port must be a decimal number between 1 and 65535.
func Parse(s string) (Address, error) {
	raw := strings.TrimSpace(s)

	host, portStr, err := net.SplitHostPort(raw)
	if err != nil {
		return Address{}, invalidAddress(s, "missing or malformed host:port separator")
	}

	if !val.Var(host, "redis_host") {
		return Address{}, invalidAddress(s, "malformed host")
	}

	if !val.Var(portStr, "required,number") {
		return Address{}, invalidAddress(s, "port is not a decimal number")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || !val.Var(port, "tcp_port") {
		return Address{}, invalidAddress(s, "port is out of range")
	}

	return Address{Host: host, Port: port}, nil
}

// ParseAll parses every input and returns either all addresses in input order
// or the first error with no partial result.
func ParseAll(ss ...string) ([]Address, error) {
	out := make([]Address, 0, len(ss))
	for _, s := range ss {
		addr, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}

// Strings renders addresses in host:port form, preserving order.
func Strings(addrs []Address) []string {
	return lo.Map(addrs, func(a Address, _ int) string {
		return a.String()
	})
}

func invalidAddress(input, reason string) error {
	return errx.New(
		"[netaddr]: invalid address format, expected host:port",
		errx.WithType(errx.T_Validation),
		errx.WithCode(CodeInvalidAddressFormat),
		errx.WithDetails(errx.D{
			"address": input,
			"reason":  reason,
		}),
	)
}
