// Package config provides configuration loading for the greeting servers
// and the companion lab services.
//
// Greeting server configuration is assembled from the following sources
// (earlier sources win for non-zero fields):
//  1. Environment variables (optionally pre-populated from a .env file)
//  2. Built-in defaults
//
// The main entry points are [LoadPlainConfig] and [LoadRoutedConfig] for the
// two greeting variants, and [LoadPingConfig], [LoadGatewayConfig] and
// [LoadPersonasConfig] for the lab services.
package config
