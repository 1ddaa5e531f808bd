package store

import "errors"

// Sentinel errors returned by [CredentialStore] implementations to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrUserAlreadyExists is returned when a user with the same username or
	// email already exists.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrFieldMismatch is returned by SwapField when the current value of the
	// field differs from the expected one.
	ErrFieldMismatch = errors.New("field value mismatch")

	// ErrUnknownField is returned when a field name is not one of the known
	// user columns.
	ErrUnknownField = errors.New("unknown user field")

	// ErrInvalidFieldValue is returned when a field value has the wrong type.
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrInvalidUser is returned by Save when a required field (username,
	// email or password hash) is empty and validation is not skipped.
	ErrInvalidUser = errors.New("user record is missing required fields")

	// ErrUnsupportedDriver is returned when the configured storage driver is
	// not known.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
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
)
