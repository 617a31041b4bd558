package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrShareNotFound is returned when a query or update targets a share
	// token that does not exist in the database.
	ErrShareNotFound = errors.New("share token was not found")

	// ErrShareNotSaved is returned when an INSERT of a share token completes
	// without error but the number of affected rows is zero, indicating that
	// no data was actually persisted.
	ErrShareNotSaved = errors.New("share token was not saved")

	// ErrDocumentNotFound is returned when a queried document does not exist
	// or does not belong to the requesting owner.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrTrustedPersonNotFound is returned when a queried trusted person
	// record does not exist or does not belong to the requesting owner.
	ErrTrustedPersonNotFound = errors.New("trusted person was not found")

	// ErrVaultKeysNotFound is returned when a user has not uploaded wrapped
	// vault key material yet.
	ErrVaultKeysNotFound = errors.New("vault key material was not found")

	// ErrBlobNotFound is returned when the encrypted blob referenced by a
	// document record is missing from the blob store.
	ErrBlobNotFound = errors.New("encrypted blob was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
