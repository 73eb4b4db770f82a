package adapter

import "errors"

var (
	// ErrPeerUnreachable is returned when the request never produced a
	// response (DNS failure, refused connection, timeout).
	ErrPeerUnreachable = errors.New("peer unreachable")
	// ErrInvalidPeerResponse is returned when the peer answered with a body
	// that is not valid JSON.
	ErrInvalidPeerResponse = errors.New("invalid peer response")
)
