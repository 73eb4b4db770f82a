// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for calling other
// lab services.
//
// The primary abstraction is [PeerAdapter], which decouples the gateway's
// service layer from HTTP. The package ships a REST implementation built on
// resty ([NewHTTPPeerAdapter]).
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/peer_adapter_mock.go -package=mock

// PeerAdapter calls the ping endpoint of a peer service.
type PeerAdapter interface {
	// Ping returns the peer's HTTP status code and its JSON body verbatim.
	// Transport failures and non-JSON bodies are reported as errors.
	Ping(ctx context.Context) (int, json.RawMessage, error)
}
