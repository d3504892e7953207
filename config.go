package middlegem

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// TypeRegistry maps configuration names to middleware types, so definitions
// can be declared in config files by name.
//
// Example:
//
//	registry := middlegem.TypeRegistry{
//		"multiplier":  middlegem.TypeOf[*Multiplier](),
//		"parentheses": middlegem.TypeOf[*Parentheses](),
//	}
type TypeRegistry map[string]reflect.Type

// DefinitionConfig is the YAML shape of an array definition.
//
//	permitted:
//	  - multiplier
//	  - parentheses
type DefinitionConfig struct {
	// Permitted lists middleware type names in execution order.
	// Duplicates are allowed and keep their positional meaning.
	Permitted []string `yaml:"permitted"`
}

// LoadDefinition reads a YAML definition config from path and builds an
// ArrayDefinition from it, resolving type names through registry.
func LoadDefinition(path string, registry TypeRegistry, opts ...ArrayDefinitionOption) (*ArrayDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return ParseDefinition(data, registry, opts...)
}

// ParseDefinition builds an ArrayDefinition from YAML definition config
// data, resolving type names through registry. An empty permitted list is
// valid and produces a definition that sorts every sequence to empty.
func ParseDefinition(data []byte, registry TypeRegistry, opts ...ArrayDefinitionOption) (*ArrayDefinition, error) {
	var cfg DefinitionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	permitted := make([]reflect.Type, len(cfg.Permitted))
	for i, name := range cfg.Permitted {
		t, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("definition entry %d: unknown middleware type %q", i, name)
		}
		permitted[i] = t
	}
	return NewArrayDefinition(permitted, opts...), nil
}
