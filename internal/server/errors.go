// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrBindFailed is returned when the listening socket cannot be bound.
	ErrBindFailed = errors.New("error binding listener")

	errNotListening     = errors.New("server is not listening")
	errAlreadyListening = errors.New("server is already listening")
)
