// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [ServerConfig]. Defaults always fill both
// fields, so a failure here means a builder was assembled without
// withDefaults.
func (cfg *ServerConfig) validate() error {
	if cfg.Name == "" {
		return ErrEmptyName
	}

	if !isValidPort(cfg.Port) {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}

	return nil
}

func (cfg *PingConfig) validate() error {
	if !isValidPort(cfg.Port) {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}

	return nil
}

func (cfg *GatewayConfig) validate() error {
	if !isValidPort(cfg.Port) {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}

	if cfg.ServiceB.Host == "" || !isValidPort(cfg.ServiceB.Port) || cfg.ServiceB.Timeout <= 0 {
		return fmt.Errorf("%w: service b is %s:%d with timeout %s",
			ErrInvalidServiceConfigs, cfg.ServiceB.Host, cfg.ServiceB.Port, cfg.ServiceB.Timeout)
	}

	if cfg.Postgres.Host == "" || cfg.Postgres.DB == "" {
		return fmt.Errorf("%w: postgres host and database are required", ErrInvalidServiceConfigs)
	}

	return nil
}

func (cfg *PersonasConfig) validate() error {
	if !isValidPort(cfg.Port) {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}

	return nil
}
