package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code carried by err, or "" when err is
// not a PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isConnectionError reports whether err means the server could not be
// reached, as opposed to the server rejecting the statement.
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// wrapQueryError wraps a driver-level failure in [ErrOpeningConnection] when
// the database is unreachable and in [ErrExecutingQuery] otherwise.
func wrapQueryError(err error) error {
	if isConnectionError(err) {
		return fmt.Errorf("%w: %w", ErrOpeningConnection, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
