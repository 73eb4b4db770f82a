// Package http implements the HTTP transport layer of every binary in this
// repository.
//
// It exposes one route set per binary (Init* methods on [Handler]), the
// request handlers behind them and the middleware they share: request
// tracing, access logging and the 404 rewrite for unsupported methods.
// Handlers only translate between HTTP and the service layer.
package http
