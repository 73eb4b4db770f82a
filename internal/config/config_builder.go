package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type configBuilder struct {
	configs  []*ServerConfig
	warnings []error
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*ServerConfig, 0, 2),
	}
}

// build merges the collected configs. mergo only fills zero fields, so the
// first source that sets a field wins.
func (b *configBuilder) build() (ServerConfig, error) {
	if b.err != nil {
		return ServerConfig{}, fmt.Errorf("error occured during building config: %w", b.err)
	}

	var config ServerConfig
	for _, cfg := range b.configs {
		if err := mergo.Merge(&config, cfg); err != nil {
			return ServerConfig{}, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDotEnv(files ...string) *configBuilder {
	for _, file := range files {
		err := godotenv.Load(file)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}

		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", file, err))
	}

	return b
}

func (b *configBuilder) withPlainEnv() *configBuilder {
	var envCfg plainEnv
	if err := parseEnv(&envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, &ServerConfig{Name: envCfg.Name})
	return b
}

func (b *configBuilder) withRoutedEnv() *configBuilder {
	var envCfg routedEnv
	if err := parseEnv(&envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	cfg := &ServerConfig{Name: envCfg.Name}
	if envCfg.Port != "" {
		port, err := parsePort(envCfg.Port)
		if err != nil {
			b.warnings = append(b.warnings, err)
		}
		cfg.Port = port
	}

	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

// parsePort returns 0 together with an error for anything that is not an
// integer in the 1..65535 range.
func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPort, raw)
	}
	if !isValidPort(port) {
		return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidPort, port)
	}

	return port, nil
}

func isValidPort(port int) bool {
	return port >= 1 && port <= 65535
}
