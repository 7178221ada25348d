package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects config layers in priority order. Earlier layers
// win: build merges with mergo, which only fills zero-valued fields.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 4)}
}

func (b *configBuilder) add(layer *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if layer != nil {
		b.layers = append(b.layers, layer)
	}
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error collecting config sources: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging config layers: %w", err)
		}
	}

	return merged, merged.validate()
}

// withDotEnv only exports variables into the process environment, so it must
// run before withEnv and adds no layer of its own.
func (b *configBuilder) withDotEnv() *configBuilder {
	return b.add(nil, loadDotEnv(dotEnvPath()))
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := new(StructuredConfig)
	if err := parseEnv(layer); err != nil {
		return b.add(nil, err)
	}
	return b.add(layer, nil)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags(), nil)
}

// withJSON loads the file named by the first layer that sets JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			return b.add(parseJSON(layer.JSONFilePath))
		}
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaults(), nil)
}
