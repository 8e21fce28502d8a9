package store

import "errors"

// Sentinel errors returned by [EntryStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrDuplicateID is returned by Insert when an entry with the same id
	// already exists. The store is left unchanged.
	ErrDuplicateID = errors.New("entry id already exists")

	// ErrEntryNotFound is returned when no entry satisfies a lookup.
	ErrEntryNotFound = errors.New("entry was not found")
)

// Low-level database operation errors, wrapped by the SQL store when a
// query fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan entry rows")

	// ErrPersistentDSN is returned when the sqlite backend is pointed at a
	// file instead of an in-memory database.
	ErrPersistentDSN = errors.New("sqlite dsn must be in-memory")
)
