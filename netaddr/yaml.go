package netaddr

import (
	"github.com/code19m/errx"
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the address as a host:port scalar.
func (a Address) MarshalYAML() (any, error) {
	return a.String(), nil
}

// UnmarshalYAML decodes a host:port scalar through Parse.
func (a *Address) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return errx.Wrap(err)
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}
