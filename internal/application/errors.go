package application

import "errors"

// Error taxonomy shared by all services. Handlers map these to HTTP
// statuses via pkg/response; anything unrecognized becomes a 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
)

// Classified reports whether err belongs to the taxonomy above. Anything
// unclassified is logged by the handler layer and surfaced as a 500.
func Classified(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidCredentials, ErrUnauthorized, ErrForbidden,
		ErrNotFound, ErrConflict, ErrValidation,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
