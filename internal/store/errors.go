package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPersonaNotFound is returned when no persona has the requested rut.
	ErrPersonaNotFound = errors.New("persona was not found")

	// ErrPersonaAlreadyExists is returned when inserting a persona whose rut
	// is already stored.
	ErrPersonaAlreadyExists = errors.New("persona already exists")

	// ErrPersonaDataTooLong is returned when a text field exceeds its column
	// length.
	ErrPersonaDataTooLong = errors.New("persona field value is too long")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the database rejects or fails to
	// execute a query.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when a single result row cannot be scanned.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("error scanning rows")

	// ErrOpeningConnection is returned when a connection cannot be opened or
	// the database does not answer a ping.
	ErrOpeningConnection = errors.New("error opening database connection")
)
