package custom_errors

import "errors"

// Error kinds. The HTTP layer maps each kind to a status code.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrDatabaseQuery = errors.New("database query failed")
	ErrCacheMiss     = errors.New("cache miss")
)

var (
	ErrEmptySearchKey  = newPublic(ErrValidation, "Search key is required and cannot be empty.")
	ErrInvalidBanner   = newPublic(ErrValidation, "Banner must be a JSON object.")
	ErrEmptyCategory   = newPublic(ErrValidation, "Category is required.")
	ErrNoSearchResults = newPublic(ErrNotFound, "No results found matching the search key.")
)

// PublicError carries a message that is safe to return to callers. It
// unwraps to its kind so errors.Is works against the kind sentinels.
type PublicError struct {
	kind    error
	message string
}

func newPublic(kind error, message string) *PublicError {
	return &PublicError{kind: kind, message: message}
}

func (e *PublicError) Error() string {
	return e.kind.Error() + ": " + e.message
}

func (e *PublicError) Message() string {
	return e.message
}

func (e *PublicError) Unwrap() error {
	return e.kind
}

// PublicMessage returns the caller-facing message carried by err, if any.
func PublicMessage(err error) (string, bool) {
	var pe *PublicError
	if errors.As(err, &pe) {
		return pe.Message(), true
	}
	return "", false
}
