package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup targets a user row that
	// does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrFavoriteNotFound is returned when a lookup targets a favorite row
	// (identified by user_id and song_id) that does not exist.
	ErrFavoriteNotFound = errors.New("favorite was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrStoreUnavailable is returned when the database cannot be reached,
	// e.g. by the health check's ping.
	ErrStoreUnavailable = errors.New("record store unavailable")
)
