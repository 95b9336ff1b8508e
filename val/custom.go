package val

import (
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	tagTCPPort   = "tcp_port"
	tagRedisHost = "redis_host"

	minTCPPort = 1
	maxTCPPort = 65535

	maxHostLen  = 253
	maxLabelLen = 63
)

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation(tagTCPPort, isTCPPort)
	_ = v.RegisterValidation(tagRedisHost, isRedisHost)
}

// isTCPPort accepts integers in 1..65535.
func isTCPPort(fl validator.FieldLevel) bool {
	if !fl.Field().CanInt() {
		return false
	}
	port := fl.Field().Int()
	return port >= minTCPPort && port <= maxTCPPort
}

// isRedisHost accepts an IP literal or a DNS name made of dot-separated labels.
// Labels are letters, digits, hyphens and underscores; a label must not start or
// end with a hyphen. Underscores are allowed because container and service
// discovery names (docker compose, consul) use them and resolve fine.
// A name whose labels are all numeric is a malformed IPv4 literal and is rejected.
func isRedisHost(fl validator.FieldLevel) bool {
	host := fl.Field().String()
	if host == "" || len(host) > maxHostLen {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}

	allNumeric := true
	for _, label := range strings.Split(host, ".") {
		if !isHostLabel(label) {
			return false
		}
		if strings.Trim(label, "0123456789") != "" {
			allNumeric = false
		}
	}
	return !allNumeric
}

func isHostLabel(label string) bool {
	if label == "" || len(label) > maxLabelLen {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
