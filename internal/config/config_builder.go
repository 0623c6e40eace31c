package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from each source in priority order.
// Source failures are accumulated and reported by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 5)}
}

// add records either a parsed source or its failure.
func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}

	return b
}

// build folds the sources left to right. A non-zero field in a later source
// replaces the earlier value.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("collect config sources: %w", b.err)
	}

	merged := &StructuredConfig{}
	for _, src := range b.configs {
		if err := mergo.Merge(merged, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config sources: %w", err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaultConfig(), nil)
}

// withEnv adds JWT_SECRET/PORT first so the structured variables win.
func (b *configBuilder) withEnv() *configBuilder {
	legacy, err := parseLegacyEnv()
	if err != nil {
		return b.add(nil, err)
	}

	structured := &StructuredConfig{}
	if err := parseEnv(structured); err != nil {
		return b.add(nil, err)
	}

	return b.add(legacy, nil).add(structured, nil)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(parseFlags(args))
}

// withJSON loads the file named by the last source that set a path.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	return b.add(parseJSON(path))
}
