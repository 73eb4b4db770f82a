// Package server binds and runs the HTTP servers of this repository.
//
// An [HTTPServer] binds its listener in [HTTPServer.Listen], so callers can
// report the listening URL before serving, and serves until the process
// exits or, through [HTTPServer.Run], until its context is cancelled.
package server
