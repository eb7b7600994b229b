package apperr

import "errors"

// Sentinel errors shared by services and repositories. Handlers translate
// them to HTTP status codes in one place instead of matching on strings.
var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidID         = errors.New("invalid id")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyApplied    = errors.New("already applied")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmailTaken        = errors.New("email already registered")
)

// StatusCode maps a service error onto the HTTP status the API contract
// promises. Unknown errors are treated as storage/internal failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return 401
	case errors.Is(err, ErrForbidden):
		return 403
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidTransition):
		return 400
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrAlreadyApplied), errors.Is(err, ErrEmailTaken):
		return 409
	default:
		return 500
	}
}
