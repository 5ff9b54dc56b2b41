// Package pipeline loads the riboviz pipeline YAML configuration. The
// configuration is a flat mapping from parameter name to value; it is
// read once and immutable thereafter. Mapping order is preserved so
// that derived sample lists keep the order samples were configured in.
package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rasilab/riboviz/environment"
	"github.com/rasilab/riboviz/params"
)

// Config is a loaded pipeline configuration.
type Config struct {
	root *yaml.Node
}

// Load reads the configuration at path and resolves environment
// variable tokens in the parameter values that support them.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse parses a configuration document and resolves environment
// variable tokens in the parameter values that support them.
func Parse(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if len(doc.Content) == 0 {
		return &Config{root: &yaml.Node{Kind: yaml.MappingNode}}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("config is not a mapping (line %d)", root.Line)
	}
	cfg := &Config{root: root}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv rewrites environment-variable tokens in the values of the
// parameters that support them.
func (c *Config) applyEnv() {
	values := environment.Values()
	for _, name := range params.EnvParams {
		node := c.lookup(name)
		if node == nil || node.Kind != yaml.ScalarNode || node.Tag != "!!str" {
			continue
		}
		node.Value = environment.Apply(node.Value, values)
	}
}

// lookup returns the value node for name, or nil if absent.
func (c *Config) lookup(name string) *yaml.Node {
	content := c.root.Content
	for i := 0; i+1 < len(content); i += 2 {
		if content[i].Value == name {
			return content[i+1]
		}
	}
	return nil
}

// Has reports whether name is present in the configuration, including
// with a null or empty value.
func (c *Config) Has(name string) bool {
	return c.lookup(name) != nil
}

// NonEmpty reports whether name is present with a usable value: not
// null, not an empty string, and not an empty sequence or mapping.
func (c *Config) NonEmpty(name string) bool {
	node := c.lookup(name)
	if node == nil {
		return false
	}
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Tag != "!!null" && node.Value != ""
	case yaml.SequenceNode, yaml.MappingNode:
		return len(node.Content) > 0
	default:
		return true
	}
}

// Value returns the decoded value for name.
func (c *Config) Value(name string) (interface{}, bool) {
	node := c.lookup(name)
	if node == nil {
		return nil, false
	}
	var value interface{}
	if err := node.Decode(&value); err != nil {
		return nil, false
	}
	return value, true
}

// String returns the string value for name, or "" if absent or not a
// string.
func (c *Config) String(name string) string {
	node := c.lookup(name)
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return ""
	}
	return node.Value
}

// Bool returns the boolean value for name, or false if absent or not a
// boolean.
func (c *Config) Bool(name string) bool {
	node := c.lookup(name)
	if node == nil {
		return false
	}
	var value bool
	if err := node.Decode(&value); err != nil {
		return false
	}
	return value
}

// StringSlice returns the sequence value for name as strings, or nil
// if absent or not a sequence.
func (c *Config) StringSlice(name string) []string {
	node := c.lookup(name)
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}
	values := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		values = append(values, item.Value)
	}
	return values
}

// MappingKeys returns the keys of the mapping value for name in
// document order, or nil if absent or not a mapping.
func (c *Config) MappingKeys(name string) []string {
	node := c.lookup(name)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return keys
}

// Mapping returns the mapping value for name as a string-to-string
// map, or nil if absent or not a mapping.
func (c *Config) Mapping(name string) map[string]string {
	node := c.lookup(name)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	values := make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		values[node.Content[i].Value] = node.Content[i+1].Value
	}
	return values
}
