package http

import "errors"

// Request parsing errors. All of them map to 400 Bad Request.
var (
	errInvalidJSON   = errors.New("invalid JSON was passed")
	errInvalidRut    = errors.New("rut must be an integer")
	errInvalidOffset = errors.New("offset must be a non-negative integer")
	errInvalidLimit  = errors.New("limit must be a non-negative integer")
)
