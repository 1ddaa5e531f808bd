package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configLayer is one configuration source.
type configLayer struct {
	source string
	cfg    *StructuredConfig
}

// configBuilder collects layers and merges them in insertion order; non-zero
// fields of a later layer override the earlier ones. Errors of all sources
// are joined and reported by build.
type configBuilder struct {
	layers []configLayer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]configLayer, 0, 4)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.layers = append(b.layers, configLayer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error loading config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", layer.source, err)
		}
	}
	return merged, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", defaultConfig(), nil)
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	return b.add("env", cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags() *configBuilder {
	cfg, err := ParseFlags(os.Args[1:])
	return b.add("flags", cfg, err)
}

// withJSON loads the file named by the last layer that sets JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.layers {
		if layer.cfg.JSONFilePath != "" {
			path = layer.cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	return b.add("json", cfg, err)
}

// load runs every source in priority order.
func load() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
