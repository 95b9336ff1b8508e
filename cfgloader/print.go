package cfgloader

import (
	"reflect"
	"slices"
	"strings"

	"github.com/code19m/errx"
	"gopkg.in/yaml.v3"

	"github.com/rise-and-shine/redisgroup/observability/logger"
)

func printConfig(config any, env string) {
	log := logger.Named("cfgloader").With("environment", env)

	out, err := maskedYAML(config)
	if err != nil {
		log.Errorx(err)
		return
	}
	log.Infof("loaded config:\n%s", out)
}

// maskedYAML renders config as YAML with fields tagged `mask:"true"` replaced by asterisks.
func maskedYAML(config any) (string, error) {
	node, err := maskNode(reflect.ValueOf(config))
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", errx.Wrap(err)
	}
	return string(out), nil
}

func maskNode(val reflect.Value) (*yaml.Node, error) {
	if !val.IsValid() || ((val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface) && val.IsNil()) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}

	// Types with their own YAML shape, like elasticache.Config, are masked through that shape.
	if val.CanInterface() {
		if m, ok := val.Interface().(yaml.Marshaler); ok {
			rep, err := m.MarshalYAML()
			if err != nil {
				return nil, errx.Wrap(err)
			}
			if _, isNode := rep.(*yaml.Node); !isNode {
				return maskNode(reflect.ValueOf(rep))
			}
		}
	}

	switch val.Kind() { //nolint:exhaustive // only kinds relevant to masking
	case reflect.Ptr, reflect.Interface:
		return maskNode(val.Elem())

	case reflect.Struct:
		if !hasYAMLFields(val.Type()) {
			return encodeNode(val)
		}
		return maskStruct(val)

	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return encodeNode(val)
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for i := range val.Len() {
			item, err := maskNode(val.Index(i))
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, item)
		}
		return seq, nil

	default:
		return encodeNode(val)
	}
}

func maskStruct(val reflect.Value) (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	typ := val.Type()

	for i := range val.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name, inline, skip := yamlName(field)
		if skip {
			continue
		}

		var (
			value *yaml.Node
			err   error
		)
		if field.Tag.Get("mask") == "true" {
			value = maskedScalar(val.Field(i))
		} else {
			value, err = maskNode(val.Field(i))
			if err != nil {
				return nil, err
			}
		}

		if inline && value.Kind == yaml.MappingNode {
			mapping.Content = append(mapping.Content, value.Content...)
			continue
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			value,
		)
	}
	return mapping, nil
}

func maskedScalar(val reflect.Value) *yaml.Node {
	s := ""
	if val.Kind() == reflect.String {
		s = val.String()
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: strings.Repeat("*", max(len(s), 1))}
}

func encodeNode(val reflect.Value) (*yaml.Node, error) {
	node := &yaml.Node{}
	if !val.CanInterface() {
		return node, nil
	}
	if err := node.Encode(val.Interface()); err != nil {
		return nil, errx.Wrap(err)
	}
	return node, nil
}

func yamlName(field reflect.StructField) (name string, inline, skip bool) {
	tag := field.Tag.Get("yaml")
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	inline = slices.Contains(parts[1:], "inline")
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, inline, false
}

// hasYAMLFields reports whether a struct has exported fields to walk.
// Structs like time.Time have none and are encoded as a whole.
func hasYAMLFields(typ reflect.Type) bool {
	for i := range typ.NumField() {
		if typ.Field(i).IsExported() {
			return true
		}
	}
	return false
}
