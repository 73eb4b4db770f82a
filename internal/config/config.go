// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/hola-servers/internal/logger"
)

const (
	// DefaultName is the greeting subject used when no name is configured.
	DefaultName = "Usuario"

	// DefaultPort is the listen port of both greeting servers.
	DefaultPort = 3000

	// DefaultDotEnvFile is the file read by [LoadPlainConfig] before the
	// environment is parsed.
	DefaultDotEnvFile = ".env"
)

// ServerConfig is the immutable configuration of a greeting server. It is
// built once at process startup and handed to the greeting service by value.
type ServerConfig struct {
	// Name is the greeting subject interpolated into the response body.
	Name string

	// Port is the TCP port the server binds to.
	Port int
}

// plainEnv maps the environment of the plain greeting server.
type plainEnv struct {
	// Env: NOMBRE
	Name string `env:"NOMBRE"`
}

// routedEnv maps the environment of the routed greeting server. Port is kept
// as a raw string so that an invalid value can fall back to [DefaultPort]
// instead of failing the whole parse.
type routedEnv struct {
	// Env: NAME
	Name string `env:"NAME"`

	// Env: PORT
	Port string `env:"PORT"`
}

// defaults returns the values applied to every field left empty by the
// environment.
func defaults() *ServerConfig {
	return &ServerConfig{
		Name: DefaultName,
		Port: DefaultPort,
	}
}

// LoadPlainConfig loads the configuration of the plain greeting server.
//
// The given .env files (or [DefaultDotEnvFile] when none are passed) are
// loaded into the process environment first; variables that are already set
// are not overridden and a missing file is not an error. The name is read
// from NOMBRE and the port is always [DefaultPort].
func LoadPlainConfig(log *logger.Logger, dotEnvFiles ...string) (ServerConfig, error) {
	if len(dotEnvFiles) == 0 {
		dotEnvFiles = []string{DefaultDotEnvFile}
	}

	return load(log, newConfigBuilder().
		withDotEnv(dotEnvFiles...).
		withPlainEnv().
		withDefaults())
}

// LoadRoutedConfig loads the configuration of the routed greeting server:
// the name from NAME and the port from PORT. A PORT value that is not a
// valid port number is reported as a warning and replaced by [DefaultPort].
func LoadRoutedConfig(log *logger.Logger) (ServerConfig, error) {
	return load(log, newConfigBuilder().
		withRoutedEnv().
		withDefaults())
}

func load(log *logger.Logger, b *configBuilder) (ServerConfig, error) {
	cfg, err := b.build()
	for _, warning := range b.warnings {
		log.Warn().Err(warning).Msg("configuration value ignored")
	}
	if err != nil {
		return ServerConfig{}, err
	}

	return cfg, nil
}
